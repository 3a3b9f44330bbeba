package schedule

import (
	"context"
	"time"

	"go-magang/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, filter Filter) ([]Schedule, error)
	FindByID(ctx context.Context, id string) (*Schedule, error)
	FindActiveByDate(ctx context.Context, date time.Time) (*Schedule, error)
	Create(ctx context.Context, s *Schedule) error
	Update(ctx context.Context, s *Schedule) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context, filter Filter) ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.WithContext(ctx).
		Scopes(scope.Period("date", filter.Month, filter.Year)).
		Order("date DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Schedule, error) {
	var s Schedule
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindActiveByDate returns the most recently created active schedule for the date.
func (r *repository) FindActiveByDate(ctx context.Context, date time.Time) (*Schedule, error) {
	var s Schedule
	err := r.db.WithContext(ctx).
		Where("date = ? AND is_active = ?", date.Format("2006-01-02"), true).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Schedule) error {
	return r.db.WithContext(ctx).Save(s).Error
}
