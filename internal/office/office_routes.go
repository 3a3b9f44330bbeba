package office

import (
	"go-magang/internal/middleware"
	"go-magang/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	loc := r.Group("/office/location")
	{
		loc.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceOffice, rbac.ActionRead),
			handler.Get,
		)
		loc.PUT("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOffice, rbac.ActionUpdate),
			handler.Update,
		)
	}
}
