package office

import (
	"time"

	"github.com/google/uuid"
)

type OfficeLocation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Latitude          float64    `gorm:"type:decimal(10,8);not null"`
	Longitude         float64    `gorm:"type:decimal(11,8);not null"`
	Name              string     `gorm:"size:100;not null"`
	Address           string     `gorm:"type:text"`
	MaxDistanceMeters float64    `gorm:"not null;default:500"`
	IsActive          bool       `gorm:"not null;default:true;index"`
	CreatedBy         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (OfficeLocation) TableName() string {
	return "office_locations"
}
