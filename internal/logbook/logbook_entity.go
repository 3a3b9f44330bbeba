package logbook

import (
	"time"

	"github.com/google/uuid"
)

type Logbook struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_logbooks_user_date,priority:1"`
	Date      time.Time `gorm:"column:date;type:date;not null;index:idx_logbooks_user_date,priority:2"`
	Activity  string    `gorm:"column:activity;type:text;not null"`
	Duration  string    `gorm:"column:duration;type:varchar(50);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Logbook) TableName() string {
	return "logbooks"
}
