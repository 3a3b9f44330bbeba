package logbook

import (
	"context"
	"database/sql"
	"time"

	"go-magang/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=logbook_repo.go -destination=mock/logbook_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// LockUserDay serializes writers for one user and date until the tx ends.
	LockUserDay(ctx context.Context, userID string, date time.Time) error
	CountByDate(ctx context.Context, userID string, date time.Time) (int64, error)
	Create(ctx context.Context, l *Logbook) error
	FindOwned(ctx context.Context, id, userID string) (*Logbook, error)
	FindAll(ctx context.Context, userID string, filter Filter) ([]Logbook, error)
	Update(ctx context.Context, l *Logbook) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) LockUserDay(ctx context.Context, userID string, date time.Time) error {
	return r.conn(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "logbook:"+userID+":"+date.Format("2006-01-02")).
		Error
}

func (r *repository) CountByDate(ctx context.Context, userID string, date time.Time) (int64, error) {
	var n int64
	err := r.conn(ctx).
		Model(&Logbook{}).
		Scopes(scope.Owner(userID)).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&n).Error
	return n, err
}

func (r *repository) Create(ctx context.Context, l *Logbook) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindOwned(ctx context.Context, id, userID string) (*Logbook, error) {
	var l Logbook
	err := r.conn(ctx).
		Scopes(scope.Owner(userID)).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindAll(ctx context.Context, userID string, filter Filter) ([]Logbook, error) {
	var rows []Logbook
	err := r.conn(ctx).
		Scopes(scope.Owner(userID), scope.Period("date", filter.Month, filter.Year)).
		Order("date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *Logbook) error {
	return r.conn(ctx).
		Model(l).
		Select("activity", "duration", "updated_at").
		Updates(l).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Logbook{}, "id = ?", id).Error
}
