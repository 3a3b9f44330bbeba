package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-magang/internal/auth/errors"
	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"
	"go-magang/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (user.UserResponse, error)
}

type service struct {
	repo     user.Repository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo user.Repository, secret string, tokenTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "mahasiswa"
	}
	// pengurus accounts are created from user management only
	if role != "mahasiswa" && role != "mentor" {
		return RegisterResponse{}, autherrors.ErrRoleNotAllowed
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return RegisterResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RegisterResponse{}, err
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		t, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return RegisterResponse{}, apperror.InvalidField("Tanggal Lahir")
		}
		birthDate = &t
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, err
	}

	u := &user.User{
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
		Role:       role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err) {
			return RegisterResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		l.Error("register failed", zap.String("email", u.Email), zap.Error(err))
		return RegisterResponse{}, err
	}

	l.Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", role))
	return RegisterResponse{Message: "Registrasi berhasil", UserID: u.ID.String()}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	// 1. Ambil user
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	// 3. Generate token
	token, err := s.generateToken(*u)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Message: "Login berhasil",
		Token:   token,
		User:    user.ToResponse(*u),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return user.UserResponse{}, autherrors.ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}
	return user.ToResponse(*u), nil
}

func (s *service) generateToken(u user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"role":    u.Role,
		"iat":     s.now().Unix(),
		"exp":     s.now().Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
