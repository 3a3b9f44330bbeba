package mentor

import (
	"time"

	"github.com/google/uuid"
)

// MentorStudent links a student to a mentor. A student has at most one active relation.
type MentorStudent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MentorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_active_mentor_student,where:is_active = true"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MentorStudent) TableName() string {
	return "mentor_student_relations"
}
