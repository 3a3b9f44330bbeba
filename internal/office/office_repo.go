package office

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=office_repo.go -destination=mock/office_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindActive(ctx context.Context) (*OfficeLocation, error)
	DeactivateAll(ctx context.Context) error
	Create(ctx context.Context, loc *OfficeLocation) error
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

// FindActive returns gorm.ErrRecordNotFound when no location has been saved.
func (r *repository) FindActive(ctx context.Context) (*OfficeLocation, error) {
	var loc OfficeLocation
	err := r.conn(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *repository) DeactivateAll(ctx context.Context) error {
	return r.conn(ctx).
		Model(&OfficeLocation{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}

func (r *repository) Create(ctx context.Context, loc *OfficeLocation) error {
	return r.conn(ctx).Create(loc).Error
}
