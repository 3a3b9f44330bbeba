package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Schedule overrides the default clock-in/clock-out windows for one date.
type Schedule struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null"`
	Date          time.Time `gorm:"type:date;not null;index:idx_schedule_date_active"`
	ClockInStart  string    `gorm:"size:5;not null"`
	ClockInEnd    string    `gorm:"size:5;not null"`
	ClockOutStart string    `gorm:"size:5;not null"`
	ClockOutEnd   string    `gorm:"size:5;not null"`
	Note          string    `gorm:"type:text"`
	IsActive      bool      `gorm:"not null;default:true;index:idx_schedule_date_active"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Schedule) TableName() string {
	return "attendance_schedules"
}
