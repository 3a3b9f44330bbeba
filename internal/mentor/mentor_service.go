package mentor

import (
	"context"
	"database/sql"
	"errors"

	mentorerrors "go-magang/internal/mentor/errors"
	"go-magang/internal/rbac"
	"go-magang/internal/shared/contextutil"
	"go-magang/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=mentor_service.go -destination=mock/mentor_service_mock.go -package=mock
type Service interface {
	Students(ctx context.Context, actor Actor) ([]user.UserResponse, error)
	// CanAccessStudent returns the student when actor may review them: 404 for an
	// unknown student, 403 for a mentor outside the student's unit.
	CanAccessStudent(ctx context.Context, actor Actor, studentID string) (*user.User, error)
	// ReviewUnit is the unit a mentor is limited to; nil means no limit.
	ReviewUnit(ctx context.Context, actor Actor) (*Unit, error)
	Assign(ctx context.Context, studentID string, req AssignMentorRequest) (RelationResponse, error)
	Unassign(ctx context.Context, studentID string) error
	Mentors(ctx context.Context) ([]MentorResponse, error)
	StudentsByMentor(ctx context.Context, mentorID string) ([]user.UserResponse, error)
	MentorsOf(ctx context.Context, studentID string) ([]user.User, error)
	ActiveMentorOf(ctx context.Context, studentID string) (*user.MentorSummary, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  user.Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("mentor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mentor.service")
	}
	return &service{db: db, repo: repo, users: users, logger: l}
}

func (s *service) Students(ctx context.Context, actor Actor) ([]user.UserResponse, error) {
	filter := user.Filter{Role: rbac.RoleStudent}

	if actor.Role == rbac.RoleMentor {
		me, err := s.users.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, mentorerrors.ErrMentorNotFound
			}
			return nil, err
		}
		filter.UE2, filter.UE3, filter.ByUnit = me.UE2, me.UE3, true
	}

	students, err := s.users.FindAll(ctx, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list students failed",
			zap.String("actor_id", actor.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return toResponses(students), nil
}

func (s *service) CanAccessStudent(ctx context.Context, actor Actor, studentID string) (*user.User, error) {
	student, err := s.findByRole(ctx, studentID, rbac.RoleStudent, mentorerrors.ErrStudentNotFound)
	if err != nil {
		return nil, err
	}

	if actor.Role != rbac.RoleMentor {
		return student, nil
	}

	me, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mentorerrors.ErrStudentOutOfScope
		}
		return nil, err
	}
	if !me.SameUnit(*student) {
		contextutil.GetLogger(ctx, s.logger).Warn("mentor accessed student outside unit",
			zap.String("mentor_id", actor.ID),
			zap.String("student_id", studentID),
		)
		return nil, mentorerrors.ErrStudentOutOfScope
	}
	return student, nil
}

func (s *service) ReviewUnit(ctx context.Context, actor Actor) (*Unit, error) {
	if actor.Role != rbac.RoleMentor {
		return nil, nil
	}

	me, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mentorerrors.ErrMentorNotFound
		}
		return nil, err
	}
	return &Unit{UE2: me.UE2, UE3: me.UE3}, nil
}

func (s *service) Assign(ctx context.Context, studentID string, req AssignMentorRequest) (RelationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	student, err := s.findByRole(ctx, studentID, rbac.RoleStudent, mentorerrors.ErrStudentNotFound)
	if err != nil {
		return RelationResponse{}, err
	}
	mentor, err := s.findByRole(ctx, req.MentorID, rbac.RoleMentor, mentorerrors.ErrMentorNotFound)
	if err != nil {
		return RelationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("assign mentor begin tx failed", zap.Error(err))
		return RelationResponse{}, err
	}
	defer tx.Rollback()

	// relasi lama dinonaktifkan dulu
	qtx := s.repo.WithTx(tx)
	if _, err := qtx.DeactivateByStudent(ctx, studentID); err != nil {
		l.Error("deactivate previous mentor failed", zap.String("student_id", studentID), zap.Error(err))
		return RelationResponse{}, err
	}

	rel := &MentorStudent{
		ID:        uuid.New(),
		MentorID:  mentor.ID,
		StudentID: student.ID,
		IsActive:  true,
	}
	if err := qtx.Create(ctx, rel); err != nil {
		l.Error("create mentor relation failed", zap.Error(err))
		return RelationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("assign mentor commit failed", zap.Error(err))
		return RelationResponse{}, err
	}

	l.Info("mentor assigned",
		zap.String("student_id", studentID),
		zap.String("mentor_id", req.MentorID),
	)
	return RelationResponse{
		ID:        rel.ID.String(),
		MentorID:  rel.MentorID.String(),
		StudentID: rel.StudentID.String(),
		IsActive:  true,
	}, nil
}

func (s *service) Unassign(ctx context.Context, studentID string) error {
	if _, err := uuid.Parse(studentID); err != nil {
		return mentorerrors.ErrInvalidID
	}

	n, err := s.repo.DeactivateByStudent(ctx, studentID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("unassign mentor failed", zap.Error(err))
		return err
	}
	if n == 0 {
		return mentorerrors.ErrNoActiveMentor
	}

	contextutil.GetLogger(ctx, s.logger).Info("mentor unassigned", zap.String("student_id", studentID))
	return nil
}

func (s *service) Mentors(ctx context.Context) ([]MentorResponse, error) {
	mentors, err := s.users.FindAll(ctx, user.Filter{Role: rbac.RoleMentor})
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.CountActiveByMentor(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]MentorResponse, len(mentors))
	for i, m := range mentors {
		resp[i] = MentorResponse{
			UserResponse: user.ToResponse(m),
			StudentCount: counts[m.ID.String()],
		}
	}
	return resp, nil
}

func (s *service) StudentsByMentor(ctx context.Context, mentorID string) ([]user.UserResponse, error) {
	if _, err := s.findByRole(ctx, mentorID, rbac.RoleMentor, mentorerrors.ErrMentorNotFound); err != nil {
		return nil, err
	}

	ids, err := s.repo.ActiveStudentIDs(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	students, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toResponses(students), nil
}

func (s *service) MentorsOf(ctx context.Context, studentID string) ([]user.User, error) {
	ids, err := s.repo.ActiveMentorIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}
	mentors, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	active := mentors[:0]
	for _, m := range mentors {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (s *service) ActiveMentorOf(ctx context.Context, studentID string) (*user.MentorSummary, error) {
	rel, err := s.repo.ActiveByStudent(ctx, studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m, err := s.users.FindByID(ctx, rel.MentorID.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user.MentorSummary{ID: m.ID.String(), FullName: m.FullName, Email: m.Email}, nil
}

func (s *service) findByRole(ctx context.Context, id, role string, notFound error) (*user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, mentorerrors.ErrInvalidID
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	if u.Role != role {
		return nil, notFound
	}
	return u, nil
}

func toResponses(users []user.User) []user.UserResponse {
	resp := make([]user.UserResponse, len(users))
	for i, u := range users {
		resp[i] = user.ToResponse(u)
	}
	return resp
}
