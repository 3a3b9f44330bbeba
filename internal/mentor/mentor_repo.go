package mentor

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=mentor_repo.go -destination=mock/mentor_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ActiveByStudent(ctx context.Context, studentID string) (*MentorStudent, error)
	DeactivateByStudent(ctx context.Context, studentID string) (int64, error)
	Create(ctx context.Context, rel *MentorStudent) error
	ActiveMentorIDs(ctx context.Context, studentID string) ([]string, error)
	ActiveStudentIDs(ctx context.Context, mentorID string) ([]string, error)
	CountActiveByMentor(ctx context.Context) (map[string]int64, error)
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

func (r *repository) ActiveByStudent(ctx context.Context, studentID string) (*MentorStudent, error) {
	var rel MentorStudent
	err := r.conn(ctx).
		Where("student_id = ? AND is_active = ?", studentID, true).
		First(&rel).Error
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *repository) DeactivateByStudent(ctx context.Context, studentID string) (int64, error) {
	res := r.conn(ctx).
		Model(&MentorStudent{}).
		Where("student_id = ? AND is_active = ?", studentID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *repository) Create(ctx context.Context, rel *MentorStudent) error {
	return r.conn(ctx).Create(rel).Error
}

func (r *repository) ActiveMentorIDs(ctx context.Context, studentID string) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&MentorStudent{}).
		Where("student_id = ? AND is_active = ?", studentID, true).
		Pluck("mentor_id", &ids).Error
	return ids, err
}

func (r *repository) ActiveStudentIDs(ctx context.Context, mentorID string) ([]string, error) {
	var ids []string
	err := r.conn(ctx).
		Model(&MentorStudent{}).
		Where("mentor_id = ? AND is_active = ?", mentorID, true).
		Pluck("student_id", &ids).Error
	return ids, err
}

func (r *repository) CountActiveByMentor(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		MentorID string
		Total    int64
	}
	err := r.conn(ctx).
		Model(&MentorStudent{}).
		Select("mentor_id, COUNT(*) AS total").
		Where("is_active = ?", true).
		Group("mentor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.MentorID] = row.Total
	}
	return counts, nil
}
