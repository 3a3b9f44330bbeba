package notification

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"go-magang/internal/events"
	"go-magang/internal/geofence"
	"go-magang/internal/shared/contextutil"
	"go-magang/internal/user"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "02 January 2006"
	sentTTL    = 48 * time.Hour
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Notifier interface {
	// AttendanceRecorded mails the student and every active mentor of the student.
	AttendanceRecorded(ctx context.Context, event events.AttendanceRecordedEvent) error
	ClockInReminder(ctx context.Context, student user.User, now time.Time) error
	ClockOutReminder(ctx context.Context, student user.User, clockInTime string, now time.Time) error
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

type MentorFinder interface {
	MentorsOf(ctx context.Context, studentID string) ([]user.User, error)
}

// WindowResolver gives the clock window of a date; the reminder mail shows it.
type WindowResolver interface {
	ResolveWindow(ctx context.Context, date time.Time, kind geofence.EventKind) (geofence.TimeWindowSpec, error)
}

type notifier struct {
	users    UserFinder
	mentors  MentorFinder
	windows  WindowResolver
	renderer *Renderer
	sender   Sender
	rdb      redis.Cmdable
	loc      *time.Location
	logger   *zap.Logger
}

// NewNotifier: rdb may be nil, then redelivered events are mailed again. windows
// may be nil, then reminders show the default windows.
func NewNotifier(
	users UserFinder,
	mentors MentorFinder,
	windows WindowResolver,
	renderer *Renderer,
	sender Sender,
	rdb redis.Cmdable,
	loc *time.Location,
	logger ...*zap.Logger,
) Notifier {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &notifier{
		users:    users,
		mentors:  mentors,
		windows:  windows,
		renderer: renderer,
		sender:   sender,
		rdb:      rdb,
		loc:      loc,
		logger:   l,
	}
}

func SentKey(attendanceID, email string) string {
	return fmt.Sprintf("notif:sent:%s:%s", attendanceID, email)
}

func (n *notifier) AttendanceRecorded(ctx context.Context, event events.AttendanceRecordedEvent) error {
	log := contextutil.GetLogger(ctx, n.logger)

	kind, err := geofence.ParseEventKind(event.Kind)
	if err != nil {
		return err
	}

	student, err := n.users.FindByID(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("student for attendance not found, skipping", zap.String("user_id", event.UserID))
			return nil
		}
		return err
	}
	if !student.IsActive {
		return nil
	}

	date := event.Date
	if d, err := time.Parse("2006-01-02", event.Date); err == nil {
		date = d.Format(dateLayout)
	}
	title := kindTitle(kind)
	data := templateData{
		Name:     student.FullName,
		Kind:     title,
		Date:     date,
		Time:     event.Time,
		Status:   event.Status,
		Distance: event.DistanceMeters,
		Note:     orDash(event.Note),
	}

	var errs []error

	// 1. konfirmasi ke mahasiswa
	tpl := TemplateClockIn
	if kind == geofence.ClockOut {
		tpl = TemplateClockOut
	}
	data.Title = title + " Berhasil"
	msg, err := n.renderer.Render(tpl, fmt.Sprintf("%s Berhasil - %s", title, date), data, addressOf(*student))
	if err != nil {
		return err
	}
	errs = append(errs, n.sendOnce(ctx, event.AttendanceID, msg))

	// 2. notifikasi ke mentor aktif
	mentors, err := n.mentors.MentorsOf(ctx, student.ID.String())
	if err != nil {
		return errors.Join(append(errs, err)...)
	}
	data.Title = "Notifikasi " + title
	for _, m := range mentors {
		msg, err := n.renderer.Render(TemplateMentor, fmt.Sprintf("Notifikasi %s - %s", title, student.FullName), data, addressOf(m))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, n.sendOnce(ctx, event.AttendanceID, msg))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info("attendance notifications sent",
		zap.String("attendance_id", event.AttendanceID),
		zap.Int("mentors", len(mentors)),
	)
	return nil
}

// sendOnce skips recipients already mailed for this attendance.
func (n *notifier) sendOnce(ctx context.Context, attendanceID string, msg Message) error {
	if n.rdb == nil || attendanceID == "" || !msg.HasRecipients() {
		return n.sender.Send(ctx, msg)
	}

	key := SentKey(attendanceID, msg.To[0].Address)
	ok, err := n.rdb.SetNX(ctx, key, "1", sentTTL).Result()
	if err != nil {
		contextutil.GetLogger(ctx, n.logger).Warn("dedupe check failed, sending anyway", zap.Error(err))
		return n.sender.Send(ctx, msg)
	}
	if !ok {
		return nil
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		_ = n.rdb.Del(ctx, key).Err()
		return err
	}
	return nil
}

func (n *notifier) ClockInReminder(ctx context.Context, student user.User, now time.Time) error {
	now = now.In(n.loc)
	date := now.Format(dateLayout)
	msg, err := n.renderer.Render(TemplateReminderClockIn,
		"Reminder: Clock In Hari Ini - "+date,
		templateData{
			Title:  "Reminder Clock In",
			Name:   student.FullName,
			Date:   date,
			Time:   now.Format("15:04"),
			Window: n.window(ctx, now, geofence.ClockIn).String(),
		},
		addressOf(student),
	)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, msg)
}

func (n *notifier) ClockOutReminder(ctx context.Context, student user.User, clockInTime string, now time.Time) error {
	now = now.In(n.loc)
	date := now.Format(dateLayout)
	msg, err := n.renderer.Render(TemplateReminderClockOut,
		"Reminder: Clock Out Hari Ini - "+date,
		templateData{
			Title:        "Reminder Clock Out",
			Name:         student.FullName,
			Date:         date,
			Time:         now.Format("15:04"),
			Window:       n.window(ctx, now, geofence.ClockOut).String(),
			ClockInTime:  orDash(clockInTime),
			WorkDuration: workDuration(clockInTime, now),
		},
		addressOf(student),
	)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, msg)
}

// window falls back to the default window when the schedule lookup fails.
func (n *notifier) window(ctx context.Context, now time.Time, kind geofence.EventKind) geofence.TimeWindowSpec {
	if n.windows == nil {
		return geofence.DefaultWindow(kind)
	}
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	w, err := n.windows.ResolveWindow(ctx, date, kind)
	if err != nil {
		contextutil.GetLogger(ctx, n.logger).Warn("resolve reminder window failed, using default",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return geofence.DefaultWindow(kind)
	}
	return w
}

// workDuration renders "H jam M menit" from clockIn (HH:MM) to now, "" if unknown.
func workDuration(clockIn string, now time.Time) string {
	t, err := geofence.ParseTimeOfDay(clockIn)
	if err != nil {
		return ""
	}
	mins := now.Hour()*60 + now.Minute() - (t.Hour*60 + t.Minute)
	if mins < 0 {
		return ""
	}
	return fmt.Sprintf("%d jam %d menit", mins/60, mins%60)
}

func kindTitle(k geofence.EventKind) string {
	if k == geofence.ClockOut {
		return "Clock Out"
	}
	return "Clock In"
}

func addressOf(u user.User) mail.Address {
	return mail.Address{Name: u.FullName, Address: u.Email}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
