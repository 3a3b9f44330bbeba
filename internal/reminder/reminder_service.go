package reminder

import (
	"context"
	"time"

	"go-magang/internal/config"
	"go-magang/internal/geofence"
	"go-magang/internal/notification"
	"go-magang/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Result struct {
	Type   string `json:"type"`
	Sent   int    `json:"sent"`
	Errors int    `json:"errors"`
	// Filled when no reminder type applies; only the status counts are reported.
	MissingClockIn  int `json:"missing_clock_in"`
	MissingClockOut int `json:"missing_clock_out"`
}

// Schedule holds the reminder times and the tolerance around them.
type Schedule struct {
	ClockInAt  geofence.TimeOfDay
	ClockOutAt geofence.TimeOfDay
	Tolerance  time.Duration
}

var DefaultSchedule = Schedule{
	ClockInAt:  geofence.NewTimeOfDay(7, 15),
	ClockOutAt: geofence.NewTimeOfDay(16, 45),
	Tolerance:  5 * time.Minute,
}

func ScheduleFromConfig(cfg config.ReminderConfig) (Schedule, error) {
	s := DefaultSchedule
	var err error
	if cfg.ClockInAt != "" {
		if s.ClockInAt, err = geofence.ParseTimeOfDay(cfg.ClockInAt); err != nil {
			return Schedule{}, err
		}
	}
	if cfg.ClockOutAt != "" {
		if s.ClockOutAt, err = geofence.ParseTimeOfDay(cfg.ClockOutAt); err != nil {
			return Schedule{}, err
		}
	}
	if cfg.Tolerance > 0 {
		s.Tolerance = cfg.Tolerance
	}
	return s, nil
}

func around(at geofence.TimeOfDay, tol time.Duration) geofence.TimeWindowSpec {
	center := at.Hour*60 + at.Minute
	t := int(tol / time.Minute)
	lo, hi := center-t, center+t
	if lo < 0 {
		lo = 0
	}
	if hi > 23*60+59 {
		hi = 23*60 + 59
	}
	return geofence.TimeWindowSpec{
		Start: geofence.NewTimeOfDay(lo/60, lo%60),
		End:   geofence.NewTimeOfDay(hi/60, hi%60),
	}
}

// DetectType returns clock_in or clock_out when now falls within the tolerance
// of a reminder time, "" otherwise.
func (s Schedule) DetectType(now time.Time) string {
	tod := geofence.NewTimeOfDay(now.Hour(), now.Minute())
	switch {
	case geofence.InWindow(tod, around(s.ClockInAt, s.Tolerance)):
		return string(geofence.ClockIn)
	case geofence.InWindow(tod, around(s.ClockOutAt, s.Tolerance)):
		return string(geofence.ClockOut)
	}
	return ""
}

type Service interface {
	// Run sends reminders of kind for the date of now. An empty kind is detected
	// from now; when nothing applies only status counts are returned.
	Run(ctx context.Context, kind string, now time.Time) (Result, error)
}

type service struct {
	repo     Repository
	notifier notification.Notifier
	schedule Schedule
	loc      *time.Location
	logger   *zap.Logger
}

func NewService(repo Repository, notifier notification.Notifier, schedule Schedule, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("reminder.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reminder.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, notifier: notifier, schedule: schedule, loc: loc, logger: l}
}

func (s *service) Run(ctx context.Context, kind string, now time.Time) (Result, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	now = now.In(s.loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if kind != "" {
		if _, err := geofence.ParseEventKind(kind); err != nil {
			return Result{}, err
		}
	} else {
		kind = s.schedule.DetectType(now)
	}

	switch geofence.EventKind(kind) {
	case geofence.ClockIn:
		return s.clockIn(ctx, log, date, now)
	case geofence.ClockOut:
		return s.clockOut(ctx, log, date, now)
	}

	log.Info("no reminder scheduled for current time",
		zap.String("now", now.Format("15:04")),
		zap.String("clock_in_at", s.schedule.ClockInAt.String()),
		zap.String("clock_out_at", s.schedule.ClockOutAt.String()),
	)
	in, err := s.repo.MissingClockIn(ctx, date)
	if err != nil {
		return Result{}, err
	}
	out, err := s.repo.MissingClockOut(ctx, date)
	if err != nil {
		return Result{}, err
	}
	res := Result{MissingClockIn: len(in), MissingClockOut: len(out)}
	log.Info("reminder status",
		zap.Int("missing_clock_in", res.MissingClockIn),
		zap.Int("missing_clock_out", res.MissingClockOut),
	)
	return res, nil
}

func (s *service) clockIn(ctx context.Context, log *zap.Logger, date, now time.Time) (Result, error) {
	students, err := s.repo.MissingClockIn(ctx, date)
	if err != nil {
		return Result{}, err
	}
	res := Result{Type: string(geofence.ClockIn)}
	for _, st := range students {
		if err := s.notifier.ClockInReminder(ctx, st, now); err != nil {
			log.Error("clock in reminder failed", zap.String("email", st.Email), zap.Error(err))
			res.Errors++
			continue
		}
		res.Sent++
	}
	log.Info("clock in reminders done", zap.Int("sent", res.Sent), zap.Int("errors", res.Errors))
	return res, nil
}

func (s *service) clockOut(ctx context.Context, log *zap.Logger, date, now time.Time) (Result, error) {
	candidates, err := s.repo.MissingClockOut(ctx, date)
	if err != nil {
		return Result{}, err
	}
	res := Result{Type: string(geofence.ClockOut)}
	for _, c := range candidates {
		if err := s.notifier.ClockOutReminder(ctx, c.User, c.ClockInTime, now); err != nil {
			log.Error("clock out reminder failed", zap.String("email", c.Email), zap.Error(err))
			res.Errors++
			continue
		}
		res.Sent++
	}
	log.Info("clock out reminders done", zap.Int("sent", res.Sent), zap.Int("errors", res.Errors))
	return res, nil
}
