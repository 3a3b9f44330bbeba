package attendance

import (
	"go-magang/internal/middleware"
	"go-magang/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already run the auth middleware. idempotency guards
// the clock endpoints against double submits and runs after RBAC.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, idempotency gin.HandlerFunc) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("/clock-in",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			idempotency,
			h.ClockIn,
		)
		attendance.POST("/clock-out",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionCreate),
			idempotency,
			h.ClockOut,
		)
		attendance.GET("/history",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			h.History,
		)
	}

	review := r.Group("/mentor/attendance")
	{
		review.POST("/approve",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendanceReview, rbac.ActionApprove),
			h.Approve,
		)
		review.POST("/manual",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendanceReview, rbac.ActionCreate),
			h.Manual,
		)
		review.GET("/pending",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendanceReview, rbac.ActionRead),
			h.Pending,
		)
		review.GET("/student/:studentId",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendanceReview, rbac.ActionRead),
			h.Student,
		)
	}
}
