package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName   string         `gorm:"column:full_name;type:varchar(255);not null"`
	Email      string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Phone      string         `gorm:"column:phone;type:varchar(32)"`
	University string         `gorm:"column:university;type:varchar(255)"`
	Major      string         `gorm:"column:major;type:varchar(255)"`
	BirthPlace string         `gorm:"column:birth_place;type:varchar(255)"`
	BirthDate  *time.Time     `gorm:"column:birth_date;type:date"`
	Address    string         `gorm:"column:address;type:text"`
	Religion   string         `gorm:"column:religion;type:varchar(32)"`
	UE2        string         `gorm:"column:ue2;type:varchar(255);index:idx_users_unit"`
	UE3        string         `gorm:"column:ue3;type:varchar(255);index:idx_users_unit"`
	Password   string         `gorm:"column:password;type:text;not null"`
	Role       string         `gorm:"column:role;type:varchar(20);not null;default:mahasiswa"`
	IsActive   bool           `gorm:"column:is_active;default:true"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

// SameUnit reports whether both users sit in the same ue2/ue3 organisational unit.
func (u User) SameUnit(o User) bool {
	return u.UE2 == o.UE2 && u.UE3 == o.UE3
}
