package mentor

import "go-magang/internal/user"

// Actor is the authenticated caller of a mentor-scoped operation.
type Actor struct {
	ID   string
	Role string
}

// Unit is an ue2/ue3 organisational unit.
type Unit struct {
	UE2 string
	UE3 string
}

type AssignMentorRequest struct {
	MentorID string `json:"mentor_id" binding:"required,uuid"`
}

type RelationResponse struct {
	ID        string `json:"id"`
	MentorID  string `json:"mentor_id"`
	StudentID string `json:"student_id"`
	IsActive  bool   `json:"is_active"`
}

type MentorResponse struct {
	user.UserResponse
	StudentCount int64 `json:"student_count"`
}
