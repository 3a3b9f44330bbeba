package office

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-magang/internal/geofence"
	officeerrors "go-magang/internal/office/errors"
	"go-magang/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultMaxDistance = 500

type Service interface {
	Get(ctx context.Context) (OfficeLocationResponse, error)
	Update(ctx context.Context, actorID string, req UpdateOfficeRequest) (OfficeLocationResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	provider Provider
	fallback geofence.OfficeConfig
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	provider Provider,
	fallback geofence.OfficeConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("office.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("office.service")
	}
	if fallback.Name == "" {
		fallback.Name = DefaultName
	}
	return &service{
		db:       db,
		repo:     repo,
		provider: provider,
		fallback: fallback,
		logger:   l,
	}
}

func (s *service) Get(ctx context.Context) (OfficeLocationResponse, error) {
	loc, err := s.repo.FindActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OfficeLocationResponse{
			Latitude:          s.fallback.Location.Latitude,
			Longitude:         s.fallback.Location.Longitude,
			Name:              s.fallback.Name,
			MaxDistanceMeters: s.fallback.MaxDistanceMeters,
			IsDefault:         true,
		}, nil
	}
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get office location failed", zap.Error(err))
		return OfficeLocationResponse{}, err
	}
	return mapToResponse(*loc), nil
}

func (s *service) Update(ctx context.Context, actorID string, req UpdateOfficeRequest) (OfficeLocationResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("update office location requested", zap.String("actor_id", actorID))

	if err := validateUpdate(req); err != nil {
		return OfficeLocationResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = DefaultName
	}
	maxDistance := req.MaxDistanceMeters
	if maxDistance == 0 {
		maxDistance = defaultMaxDistance
	}

	loc := &OfficeLocation{
		ID:                uuid.New(),
		Latitude:          *req.Latitude,
		Longitude:         *req.Longitude,
		Name:              name,
		Address:           strings.TrimSpace(req.Address),
		MaxDistanceMeters: maxDistance,
		IsActive:          true,
	}
	if id, err := uuid.Parse(actorID); err == nil {
		loc.CreatedBy = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update office begin tx failed", zap.Error(err))
		return OfficeLocationResponse{}, err
	}
	defer tx.Rollback()

	// hanya satu lokasi aktif
	qtx := s.repo.WithTx(tx)
	if err := qtx.DeactivateAll(ctx); err != nil {
		l.Error("deactivate office locations failed", zap.Error(err))
		return OfficeLocationResponse{}, err
	}
	if err := qtx.Create(ctx, loc); err != nil {
		l.Error("create office location failed", zap.Error(err))
		return OfficeLocationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		l.Error("update office commit failed", zap.Error(err))
		return OfficeLocationResponse{}, err
	}

	if err := s.provider.Invalidate(ctx); err != nil {
		l.Error("failed to invalidate office cache", zap.Error(err))
	}

	l.Info("office location updated",
		zap.String("office_id", loc.ID.String()),
		zap.Float64("latitude", loc.Latitude),
		zap.Float64("longitude", loc.Longitude),
		zap.Float64("max_distance", loc.MaxDistanceMeters),
	)
	return mapToResponse(*loc), nil
}

func validateUpdate(req UpdateOfficeRequest) error {
	if req.Latitude == nil || *req.Latitude < -90 || *req.Latitude > 90 {
		return officeerrors.ErrInvalidLatitude
	}
	if req.Longitude == nil || *req.Longitude < -180 || *req.Longitude > 180 {
		return officeerrors.ErrInvalidLongitude
	}
	if req.MaxDistanceMeters < 0 {
		return officeerrors.ErrInvalidMaxDistance
	}
	return nil
}

func mapToResponse(loc OfficeLocation) OfficeLocationResponse {
	resp := OfficeLocationResponse{
		ID:                loc.ID.String(),
		Latitude:          loc.Latitude,
		Longitude:         loc.Longitude,
		Name:              loc.Name,
		Address:           loc.Address,
		MaxDistanceMeters: loc.MaxDistanceMeters,
	}
	if !loc.UpdatedAt.IsZero() {
		updated := loc.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
