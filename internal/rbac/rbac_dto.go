package rbac

const (
	RoleStudent = "mahasiswa"
	RoleMentor  = "mentor"
	RoleAdmin   = "pengurus"
)

const (
	ResourceAttendance       = "attendance"
	ResourceAttendanceReview = "attendance_review"
	ResourceLogbook          = "logbook"
	ResourceLogbookReview    = "logbook_review"
	ResourceSchedule         = "schedule"
	ResourceOffice           = "office"
	ResourceUser             = "user"
	ResourceMentorship       = "mentorship"
)

const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type PermissionsResponse struct {
	Role        string       `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// ValidRole reports one of the three account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleMentor, RoleAdmin:
		return true
	}
	return false
}
