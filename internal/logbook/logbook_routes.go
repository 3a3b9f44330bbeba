package logbook

import (
	"go-magang/internal/middleware"
	"go-magang/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	logbooks := r.Group("/logbook")
	{
		logbooks.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceLogbook, rbac.ActionRead), h.List)
		logbooks.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceLogbook, rbac.ActionCreate),
			h.Create,
		)
		logbooks.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLogbook, rbac.ActionUpdate), h.Update)
		logbooks.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceLogbook, rbac.ActionDelete), h.Delete)
	}

	r.GET("/mentor/logbook/student/:studentId",
		middleware.RBACAuthorize(rbacService, rbac.ResourceLogbookReview, rbac.ActionRead),
		h.Student,
	)
}
