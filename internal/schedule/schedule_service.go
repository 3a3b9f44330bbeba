package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-magang/internal/geofence"
	geofenceerrors "go-magang/internal/geofence/errors"
	scheduleerrors "go-magang/internal/schedule/errors"
	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter Filter) ([]ScheduleResponse, error)
	Create(ctx context.Context, actorID string, req CreateScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error)
	// ResolveWindow returns the window for kind on date: the active schedule when one
	// exists, otherwise the built-in default.
	ResolveWindow(ctx context.Context, date time.Time, kind geofence.EventKind) (geofence.TimeWindowSpec, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, filter Filter) ([]ScheduleResponse, error) {
	schedules, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list schedules failed", zap.Error(err))
		return nil, err
	}

	resp := make([]ScheduleResponse, len(schedules))
	for i, sc := range schedules {
		resp[i] = mapToResponse(sc)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, actorID string, req CreateScheduleRequest) (ScheduleResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidDate
	}
	creator, err := uuid.Parse(actorID)
	if err != nil {
		return ScheduleResponse{}, apperror.ErrUnauthorized
	}

	sc := &Schedule{
		ID:            uuid.New(),
		CreatedBy:     creator,
		Date:          date,
		ClockInStart:  req.ClockInStart,
		ClockInEnd:    req.ClockInEnd,
		ClockOutStart: req.ClockOutStart,
		ClockOutEnd:   req.ClockOutEnd,
		Note:          strings.TrimSpace(req.Note),
		IsActive:      true,
	}
	if err := normalizeTimes(sc); err != nil {
		return ScheduleResponse{}, err
	}

	if err := s.repo.Create(ctx, sc); err != nil {
		l.Error("create schedule failed", zap.Error(err))
		return ScheduleResponse{}, err
	}

	l.Info("schedule created",
		zap.String("schedule_id", sc.ID.String()),
		zap.String("date", req.Date),
		zap.String("created_by", actorID),
	)
	return mapToResponse(*sc), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (ScheduleResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return ScheduleResponse{}, scheduleerrors.ErrInvalidScheduleID
	}

	sc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ScheduleResponse{}, scheduleerrors.ErrScheduleNotFound
		}
		return ScheduleResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return ScheduleResponse{}, scheduleerrors.ErrInvalidDate
		}
		sc.Date = date
	}
	assign(&sc.ClockInStart, req.ClockInStart)
	assign(&sc.ClockInEnd, req.ClockInEnd)
	assign(&sc.ClockOutStart, req.ClockOutStart)
	assign(&sc.ClockOutEnd, req.ClockOutEnd)
	assign(&sc.Note, req.Note)
	if req.IsActive != nil {
		sc.IsActive = *req.IsActive
	}

	if err := normalizeTimes(sc); err != nil {
		return ScheduleResponse{}, err
	}

	if err := s.repo.Update(ctx, sc); err != nil {
		l.Error("update schedule failed", zap.String("schedule_id", id), zap.Error(err))
		return ScheduleResponse{}, err
	}
	return mapToResponse(*sc), nil
}

func (s *service) ResolveWindow(ctx context.Context, date time.Time, kind geofence.EventKind) (geofence.TimeWindowSpec, error) {
	if !kind.Valid() {
		return geofence.TimeWindowSpec{}, geofenceerrors.ErrInvalidEventKind
	}

	sc, err := s.repo.FindActiveByDate(ctx, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return geofence.DefaultWindow(kind), nil
	}
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("resolve schedule window failed", zap.Error(err))
		return geofence.TimeWindowSpec{}, err
	}

	start, end := sc.ClockInStart, sc.ClockInEnd
	if kind == geofence.ClockOut {
		start, end = sc.ClockOutStart, sc.ClockOutEnd
	}

	w, err := geofence.NewWindow(start, end)
	if err != nil {
		// rows written before validation existed
		s.logger.Warn("stored schedule window invalid, using default",
			zap.String("schedule_id", sc.ID.String()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return geofence.DefaultWindow(kind), nil
	}
	return w, nil
}

// normalizeTimes validates both windows and rewrites the times as HH:MM.
func normalizeTimes(sc *Schedule) error {
	fields := []*string{&sc.ClockInStart, &sc.ClockInEnd, &sc.ClockOutStart, &sc.ClockOutEnd}
	for _, f := range fields {
		t, err := geofence.ParseTimeOfDay(*f)
		if err != nil {
			return scheduleerrors.ErrInvalidTime
		}
		*f = t.String()
	}

	if _, err := geofence.NewWindow(sc.ClockInStart, sc.ClockInEnd); err != nil {
		return scheduleerrors.ErrInvalidWindow
	}
	if _, err := geofence.NewWindow(sc.ClockOutStart, sc.ClockOutEnd); err != nil {
		return scheduleerrors.ErrInvalidWindow
	}
	return nil
}

func assign(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func mapToResponse(sc Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            sc.ID.String(),
		Date:          sc.Date.Format(dateLayout),
		ClockInStart:  sc.ClockInStart,
		ClockInEnd:    sc.ClockInEnd,
		ClockOutStart: sc.ClockOutStart,
		ClockOutEnd:   sc.ClockOutEnd,
		Note:          sc.Note,
		IsActive:      sc.IsActive,
		CreatedBy:     sc.CreatedBy.String(),
	}
}
