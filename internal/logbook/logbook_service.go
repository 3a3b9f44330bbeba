package logbook

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-magang/internal/geofence"
	logbookerrors "go-magang/internal/logbook/errors"
	"go-magang/internal/mentor"
	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"
	"go-magang/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultDailyLimit = 4

//go:generate mockgen -source=logbook_service.go -destination=mock/logbook_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateLogbookRequest) (LogbookResponse, error)
	List(ctx context.Context, userID string, filter Filter) ([]LogbookResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateLogbookRequest) (LogbookResponse, error)
	Delete(ctx context.Context, userID, id string) error
	StudentLogbooks(ctx context.Context, actor mentor.Actor, studentID string, filter Filter) ([]LogbookResponse, error)
}

type StudentAccess interface {
	CanAccessStudent(ctx context.Context, actor mentor.Actor, studentID string) (*user.User, error)
}

type Options struct {
	DailyLimit int
	Location   *time.Location
	// Now is time.Now unless a test pins it.
	Now func() time.Time
}

type service struct {
	db       *sql.DB
	repo     Repository
	students StudentAccess
	limit    int
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, students StudentAccess, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("logbook.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("logbook.service")
	}
	if opts.DailyLimit <= 0 {
		opts.DailyLimit = DefaultDailyLimit
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:       db,
		repo:     repo,
		students: students,
		limit:    opts.DailyLimit,
		loc:      opts.Location,
		now:      opts.Now,
		logger:   l,
	}
}

// checkWindow applies the same inclusive window rule as the attendance gate.
func (s *service) checkWindow(verb string) (time.Time, error) {
	now := s.now().In(s.loc)
	if !geofence.InWindow(geofence.NewTimeOfDay(now.Hour(), now.Minute()), geofence.DefaultLogbookWindow) {
		return now, logbookerrors.OutsideWindow(verb, geofence.DefaultLogbookWindow.String())
	}
	return now, nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateLogbookRequest) (LogbookResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return LogbookResponse{}, apperror.ErrUnauthorized
	}
	now, err := s.checkWindow("diisi")
	if err != nil {
		return LogbookResponse{}, err
	}
	if strings.TrimSpace(req.Activity) == "" {
		return LogbookResponse{}, apperror.RequiredField("activity")
	}
	if strings.TrimSpace(req.Duration) == "" {
		return LogbookResponse{}, apperror.RequiredField("duration")
	}

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return LogbookResponse{}, logbookerrors.ErrInvalidDate
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LogbookResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// 1. kunci per user per tanggal, lalu cek batas harian
	if err := qtx.LockUserDay(ctx, userID, date); err != nil {
		return LogbookResponse{}, err
	}
	count, err := qtx.CountByDate(ctx, userID, date)
	if err != nil {
		return LogbookResponse{}, err
	}
	if count >= int64(s.limit) {
		log.Warn("logbook daily limit reached",
			zap.String("user_id", userID),
			zap.String("date", date.Format("2006-01-02")),
		)
		return LogbookResponse{}, logbookerrors.DailyLimitReached(s.limit)
	}

	// 2. simpan
	row := &Logbook{
		ID:       uuid.New(),
		UserID:   uid,
		Date:     date,
		Activity: strings.TrimSpace(req.Activity),
		Duration: strings.TrimSpace(req.Duration),
	}
	if err := qtx.Create(ctx, row); err != nil {
		log.Error("create logbook failed", zap.String("user_id", userID), zap.Error(err))
		return LogbookResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LogbookResponse{}, err
	}

	log.Info("logbook created", zap.String("user_id", userID), zap.String("logbook_id", row.ID.String()))
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, userID string, filter Filter) ([]LogbookResponse, error) {
	rows, err := s.repo.FindAll(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

func (s *service) Update(ctx context.Context, userID, id string, req UpdateLogbookRequest) (LogbookResponse, error) {
	if _, err := s.checkWindow("diupdate"); err != nil {
		return LogbookResponse{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return LogbookResponse{}, logbookerrors.ErrInvalidLogbookID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LogbookResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LogbookResponse{}, logbookerrors.ErrLogbookNotFound
		}
		return LogbookResponse{}, err
	}

	row.Activity = strings.TrimSpace(req.Activity)
	row.Duration = strings.TrimSpace(req.Duration)
	if err := qtx.Update(ctx, row); err != nil {
		return LogbookResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LogbookResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.checkWindow("dihapus"); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return logbookerrors.ErrInvalidLogbookID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindOwned(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return logbookerrors.ErrLogbookNotFound
		}
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("logbook deleted",
		zap.String("user_id", userID),
		zap.String("logbook_id", id),
	)
	return nil
}

func (s *service) StudentLogbooks(ctx context.Context, actor mentor.Actor, studentID string, filter Filter) ([]LogbookResponse, error) {
	if _, err := s.students.CanAccessStudent(ctx, actor, studentID); err != nil {
		return nil, err
	}
	return s.List(ctx, studentID, filter)
}

func mapToResponses(rows []Logbook) []LogbookResponse {
	out := make([]LogbookResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out
}

func mapToResponse(l Logbook) LogbookResponse {
	return LogbookResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		Date:      l.Date.Format("2006-01-02"),
		Activity:  l.Activity,
		Duration:  l.Duration,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
