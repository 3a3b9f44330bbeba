package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusWFO    = "WFO"
	StatusManual = "MANUAL"
)

// Attendance is one clock-in or clock-out. A user has at most one row per date and kind.
type Attendance struct {
	ID             uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID   `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_date_kind,priority:1"`
	AttendanceDate time.Time   `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_user_date_kind,priority:2;index"`
	Kind           string      `gorm:"column:kind;type:varchar(10);not null;uniqueIndex:uq_attendance_user_date_kind,priority:3"`
	ClockTime      string      `gorm:"column:clock_time;type:varchar(5);not null"`
	Latitude       float64     `gorm:"column:latitude;type:decimal(10,8);not null;default:0"`
	Longitude      float64     `gorm:"column:longitude;type:decimal(11,8);not null;default:0"`
	DistanceMeters int         `gorm:"column:distance_meters;not null;default:0"`
	Note           string      `gorm:"column:note;type:text"`
	Status         string      `gorm:"column:status;type:varchar(20);not null;default:WFO"`
	Approved       *bool       `gorm:"column:approved"`
	ApprovedBy     *uuid.UUID  `gorm:"column:approved_by;type:uuid"`
	ApprovedAt     *time.Time  `gorm:"column:approved_at;type:timestamptz"`
	CreatedAt      time.Time   `gorm:"column:created_at"`
	UpdatedAt      time.Time   `gorm:"column:updated_at"`
	Student        *StudentRef `gorm:"foreignKey:UserID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type StudentRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
	UE2      string    `gorm:"column:ue2"`
	UE3      string    `gorm:"column:ue3"`
}

func (StudentRef) TableName() string {
	return "users"
}
