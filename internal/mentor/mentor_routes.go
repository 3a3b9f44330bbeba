package mentor

import (
	"go-magang/internal/middleware"
	"go-magang/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	r.GET("/mentor/students",
		middleware.RBACAuthorize(rbacService, rbac.ResourceMentorship, rbac.ActionRead),
		handler.Students,
	)

	users := r.Group("/pengurus/users")
	{
		users.POST("/:id/assign-mentor",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceMentorship, rbac.ActionUpdate),
			handler.Assign,
		)
		users.POST("/:id/unassign-mentor",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceMentorship, rbac.ActionUpdate),
			handler.Unassign,
		)
	}

	mentors := r.Group("/pengurus/mentors")
	{
		mentors.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead),
			handler.Mentors,
		)
		mentors.GET("/:id/students",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead),
			handler.StudentsByMentor,
		)
	}
}
