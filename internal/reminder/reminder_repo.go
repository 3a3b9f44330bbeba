package reminder

import (
	"context"
	"time"

	"go-magang/internal/geofence"
	"go-magang/internal/rbac"
	"go-magang/internal/user"

	"gorm.io/gorm"
)

type ClockOutCandidate struct {
	user.User   `gorm:"embedded"`
	ClockInTime string `gorm:"column:clock_in_time"`
}

//go:generate mockgen -source=reminder_repo.go -destination=mock/reminder_repo_mock.go -package=mock
type Repository interface {
	// MissingClockIn lists active students with no clock in on date.
	MissingClockIn(ctx context.Context, date time.Time) ([]user.User, error)
	// MissingClockOut lists active students who clocked in on date but not out.
	MissingClockOut(ctx context.Context, date time.Time) ([]ClockOutCandidate, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func activeStudents(db *gorm.DB) *gorm.DB {
	return db.Where("users.role = ? AND users.is_active = ?", rbac.RoleStudent, true)
}

func (r *repository) MissingClockIn(ctx context.Context, date time.Time) ([]user.User, error) {
	var rows []user.User
	err := r.db.WithContext(ctx).
		Scopes(activeStudents).
		Where(`NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.user_id = users.id AND a.attendance_date = ? AND a.kind = ?)`,
			date.Format("2006-01-02"), string(geofence.ClockIn)).
		Order("users.full_name").
		Find(&rows).Error
	return rows, err
}

func (r *repository) MissingClockOut(ctx context.Context, date time.Time) ([]ClockOutCandidate, error) {
	day := date.Format("2006-01-02")

	var rows []ClockOutCandidate
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.*, ci.clock_time AS clock_in_time").
		Joins("JOIN attendances ci ON ci.user_id = users.id AND ci.attendance_date = ? AND ci.kind = ?",
			day, string(geofence.ClockIn)).
		Scopes(activeStudents).
		Where("users.deleted_at IS NULL").
		Where(`NOT EXISTS (
			SELECT 1 FROM attendances co
			WHERE co.user_id = users.id AND co.attendance_date = ? AND co.kind = ?)`,
			day, string(geofence.ClockOut)).
		Order("users.full_name").
		Scan(&rows).Error
	return rows, err
}
