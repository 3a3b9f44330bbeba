package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-magang/internal/geofence"
	"go-magang/internal/mentor"
	"go-magang/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	RecordedKinds(ctx context.Context, userID string, date time.Time) (map[geofence.EventKind]bool, error)
	FindByID(ctx context.Context, id string) (*Attendance, error)
	History(ctx context.Context, userID string, filter HistoryFilter) ([]Attendance, error)
	Pending(ctx context.Context, kind geofence.EventKind, unit *mentor.Unit) ([]Attendance, error)
	SetApproval(ctx context.Context, id string, approved bool, approvedBy string, at time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Omit("Student").Create(a).Error
}

func (r *repository) RecordedKinds(ctx context.Context, userID string, date time.Time) (map[geofence.EventKind]bool, error) {
	var kinds []string
	err := r.conn(ctx).
		Model(&Attendance{}).
		Scopes(scope.Owner(userID)).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Pluck("kind", &kinds).Error
	if err != nil {
		return nil, err
	}

	recorded := make(map[geofence.EventKind]bool, len(kinds))
	for _, k := range kinds {
		recorded[geofence.EventKind(k)] = true
	}
	return recorded, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	if err := r.conn(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) History(ctx context.Context, userID string, filter HistoryFilter) ([]Attendance, error) {
	var rows []Attendance
	q := r.conn(ctx).
		Scopes(scope.Owner(userID), scope.Period("attendance_date", filter.Month, filter.Year))
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	err := q.Order("attendance_date DESC, clock_time DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) Pending(ctx context.Context, kind geofence.EventKind, unit *mentor.Unit) ([]Attendance, error) {
	var rows []Attendance
	q := r.conn(ctx).
		Joins("Student").
		Where("attendances.approved IS NULL").
		Where("attendances.kind = ?", string(kind))
	if unit != nil {
		q = q.Where(`"Student"."ue2" = ? AND "Student"."ue3" = ?`, unit.UE2, unit.UE3)
	}
	err := q.Order("attendances.attendance_date DESC, attendances.clock_time DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) SetApproval(ctx context.Context, id string, approved bool, approvedBy string, at time.Time) error {
	res := r.conn(ctx).
		Model(&Attendance{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved":    approved,
			"approved_by": approvedBy,
			"approved_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
