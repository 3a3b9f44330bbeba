package schedule

import (
	"go-magang/internal/middleware"
	"go-magang/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	schedules := r.Group("/mentor/schedule")
	{
		schedules.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSchedule, rbac.ActionRead),
			handler.List,
		)
		schedules.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSchedule, rbac.ActionCreate),
			handler.Create,
		)
		schedules.PUT("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSchedule, rbac.ActionUpdate),
			handler.Update,
		)
	}
}
