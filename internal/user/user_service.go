package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"
	usererrors "go-magang/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context, filter Filter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserDetailResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

// MentorLookup resolves the active mentor of a student.
type MentorLookup interface {
	ActiveMentorOf(ctx context.Context, studentID string) (*MentorSummary, error)
}

type service struct {
	repo    Repository
	mentors MentorLookup
	logger  *zap.Logger
}

func NewService(repo Repository, mentors MentorLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, mentors: mentors, logger: l}
}

func (s *service) GetAll(ctx context.Context, filter Filter) ([]UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if filter.Role != "" && !validRole(filter.Role) {
		return nil, usererrors.ErrInvalidRole
	}

	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		l.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserDetailResponse, error) {
	u, err := s.findUser(ctx, id)
	if err != nil {
		return UserDetailResponse{}, err
	}

	resp := UserDetailResponse{UserResponse: mapToResponse(*u)}
	if u.Role == "mahasiswa" && s.mentors != nil {
		mentor, err := s.mentors.ActiveMentorOf(ctx, id)
		if err != nil {
			return UserDetailResponse{}, err
		}
		resp.Mentor = mentor
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Info("creating user", zap.String("email", req.Email), zap.String("role", req.Role))

	if !validRole(req.Role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return UserResponse{}, err
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return UserResponse{}, usererrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:         uuid.New(),
		FullName:   strings.TrimSpace(req.FullName),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      req.Phone,
		University: req.University,
		Major:      req.Major,
		BirthPlace: req.BirthPlace,
		BirthDate:  birthDate,
		Address:    req.Address,
		Religion:   req.Religion,
		UE2:        req.UE2,
		UE3:        req.UE3,
		Password:   string(hashed),
		Role:       req.Role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err) {
			return UserResponse{}, usererrors.ErrEmailAlreadyExists
		}
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created", zap.String("user_id", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.findUser(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != u.Email {
			if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != u.ID {
				return UserResponse{}, usererrors.ErrEmailAlreadyExists
			}
			u.Email = email
		}
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
		u.Role = *req.Role
	}
	if req.BirthDate != nil {
		bd, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return UserResponse{}, err
		}
		u.BirthDate = bd
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hashed)
	}

	assign(&u.FullName, req.FullName)
	assign(&u.Phone, req.Phone)
	assign(&u.University, req.University)
	assign(&u.Major, req.Major)
	assign(&u.BirthPlace, req.BirthPlace)
	assign(&u.Address, req.Address)
	assign(&u.Religion, req.Religion)
	assign(&u.UE2, req.UE2)
	assign(&u.UE3, req.UE3)
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err) {
			return UserResponse{}, usererrors.ErrEmailAlreadyExists
		}
		l.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return usererrors.ErrCannotDeleteSelf
	}
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) findUser(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func validRole(role string) bool {
	return role == "mahasiswa" || role == "mentor" || role == "pengurus"
}

func parseBirthDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, usererrors.ErrInvalidBirthDate
	}
	return &t, nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:         u.ID.String(),
		FullName:   u.FullName,
		Email:      u.Email,
		Phone:      u.Phone,
		University: u.University,
		Major:      u.Major,
		BirthPlace: u.BirthPlace,
		Address:    u.Address,
		Religion:   u.Religion,
		UE2:        u.UE2,
		UE3:        u.UE3,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.BirthDate != nil {
		resp.BirthDate = u.BirthDate.Format("2006-01-02")
	}
	return resp
}

// ToResponse exposes the profile mapping to sibling modules.
func ToResponse(u User) UserResponse {
	return mapToResponse(u)
}
