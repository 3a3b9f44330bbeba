package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-magang/internal/attendance/errors"
	"go-magang/internal/events"
	"go-magang/internal/geofence"
	"go-magang/internal/mentor"
	"go-magang/internal/messaging/kafka"
	"go-magang/internal/office"
	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"
	"go-magang/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "attendance"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, userID string, req ClockRequest) (ClockResponse, error)
	ClockOut(ctx context.Context, userID string, req ClockRequest) (ClockResponse, error)
	History(ctx context.Context, userID string, filter HistoryFilter) ([]AttendanceResponse, error)
	ManualRecord(ctx context.Context, actor mentor.Actor, req ManualRequest) (AttendanceResponse, error)
	Approve(ctx context.Context, actor mentor.Actor, req ApproveRequest) (AttendanceResponse, error)
	Pending(ctx context.Context, actor mentor.Actor, kind string) ([]AttendanceResponse, error)
	StudentAttendance(ctx context.Context, actor mentor.Actor, studentID string, filter HistoryFilter) ([]AttendanceResponse, error)
}

// WindowResolver gives the clock window for a date, e.g. from the daily schedule.
type WindowResolver interface {
	ResolveWindow(ctx context.Context, date time.Time, kind geofence.EventKind) (geofence.TimeWindowSpec, error)
}

// Reviewers decides which students a mentor or pengurus may review.
type Reviewers interface {
	CanAccessStudent(ctx context.Context, actor mentor.Actor, studentID string) (*user.User, error)
	ReviewUnit(ctx context.Context, actor mentor.Actor) (*mentor.Unit, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	offices   office.Provider
	schedules WindowResolver
	reviewers Reviewers
	loc       *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	offices office.Provider,
	schedules WindowResolver,
	reviewers Reviewers,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, outbox, offices, schedules, reviewers, loc, time.Now, logger...)
}

func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	offices office.Provider,
	schedules WindowResolver,
	reviewers Reviewers,
	loc *time.Location,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outbox,
		offices:   offices,
		schedules: schedules,
		reviewers: reviewers,
		loc:       loc,
		now:       now,
		logger:    l,
	}
}

func (s *service) ClockIn(ctx context.Context, userID string, req ClockRequest) (ClockResponse, error) {
	return s.clock(ctx, geofence.ClockIn, userID, req)
}

func (s *service) ClockOut(ctx context.Context, userID string, req ClockRequest) (ClockResponse, error) {
	return s.clock(ctx, geofence.ClockOut, userID, req)
}

func (s *service) clock(ctx context.Context, kind geofence.EventKind, userID string, req ClockRequest) (ClockResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	uid, err := uuid.Parse(userID)
	if err != nil {
		return ClockResponse{}, apperror.ErrUnauthorized
	}
	if req.Latitude == nil || req.Longitude == nil {
		return ClockResponse{}, apperror.RequiredField("latitude dan longitude")
	}

	now := s.now().In(s.loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tod := geofence.NewTimeOfDay(now.Hour(), now.Minute())

	officeCfg, err := s.offices.Active(ctx)
	if err != nil {
		return ClockResponse{}, err
	}
	window, err := s.schedules.ResolveWindow(ctx, date, kind)
	if err != nil {
		return ClockResponse{}, err
	}
	recorded, err := s.repo.RecordedKinds(ctx, userID, date)
	if err != nil {
		return ClockResponse{}, err
	}

	position := geofence.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	decision, err := geofence.Evaluate(geofence.Request{
		Event:            kind,
		ObservedAt:       tod,
		Position:         position,
		Office:           officeCfg,
		Window:           window,
		PriorEventExists: recorded[kind],
		HasPriorClockIn:  recorded[geofence.ClockIn],
	})
	if err != nil {
		return ClockResponse{}, err
	}
	if !decision.Admissible {
		log.Warn("attendance rejected",
			zap.String("user_id", userID),
			zap.String("kind", string(kind)),
			zap.String("reason", string(decision.Reason)),
			zap.Int("distance_meters", decision.DistanceMeters),
		)
		return ClockResponse{}, rejection(kind, decision, window, officeCfg)
	}

	row := &Attendance{
		ID:             uuid.New(),
		UserID:         uid,
		AttendanceDate: date,
		Kind:           string(kind),
		ClockTime:      tod.String(),
		Latitude:       position.Latitude,
		Longitude:      position.Longitude,
		DistanceMeters: decision.DistanceMeters,
		Note:           defaultNote(req.Note),
		Status:         StatusWFO,
	}
	if err := s.store(ctx, row, false); err != nil {
		if apperror.IsUniqueViolation(err, "uq_attendance_user_date_kind") {
			return ClockResponse{}, alreadyRecorded(kind)
		}
		log.Error("store attendance failed", zap.String("user_id", userID), zap.Error(err))
		return ClockResponse{}, err
	}

	log.Info("attendance recorded",
		zap.String("user_id", userID),
		zap.String("kind", string(kind)),
		zap.Int("distance_meters", decision.DistanceMeters),
	)
	return ClockResponse{
		Message:      capitalize(kind.Label()) + " berhasil",
		AttendanceID: row.ID.String(),
		Time:         row.ClockTime,
		Distance:     row.DistanceMeters,
	}, nil
}

// store inserts the row and its outbox event in one transaction.
func (s *service) store(ctx context.Context, row *Attendance, manual bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return err
	}

	requestID := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(
		requestID,
		aggregateType,
		row.ID.String(),
		events.AttendanceRecordedEventType,
		events.AttendanceRecordedTopic,
		events.AttendanceRecordedEvent{
			EventType:      events.AttendanceRecordedEventType,
			RequestID:      requestID,
			AttendanceID:   row.ID.String(),
			UserID:         row.UserID.String(),
			Kind:           row.Kind,
			Date:           row.AttendanceDate.Format("2006-01-02"),
			Time:           row.ClockTime,
			Status:         row.Status,
			Note:           row.Note,
			DistanceMeters: row.DistanceMeters,
			Manual:         manual,
			OccurredAt:     s.now().UTC(),
		},
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) History(ctx context.Context, userID string, filter HistoryFilter) ([]AttendanceResponse, error) {
	if filter.Kind != "" {
		if _, err := geofence.ParseEventKind(filter.Kind); err != nil {
			return nil, attendanceerrors.ErrInvalidType
		}
	}
	rows, err := s.repo.History(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

func (s *service) ManualRecord(ctx context.Context, actor mentor.Actor, req ManualRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	kind, err := geofence.ParseEventKind(req.Type)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidType
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}
	tod, err := geofence.ParseTimeOfDay(req.Time)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidTime
	}
	approver, err := uuid.Parse(actor.ID)
	if err != nil {
		return AttendanceResponse{}, apperror.ErrUnauthorized
	}

	student, err := s.reviewers.CanAccessStudent(ctx, actor, req.UserID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	recorded, err := s.repo.RecordedKinds(ctx, student.ID.String(), date)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if d := geofence.EvaluateManual(kind, recorded[kind]); !d.Admissible {
		return AttendanceResponse{}, attendanceerrors.ErrManualDuplicate
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusManual
	}
	approved := true
	approvedAt := s.now().UTC()
	row := &Attendance{
		ID:             uuid.New(),
		UserID:         student.ID,
		AttendanceDate: date,
		Kind:           string(kind),
		ClockTime:      geofence.NewTimeOfDay(tod.Hour, tod.Minute).String(),
		Note:           req.Note,
		Status:         status,
		Approved:       &approved,
		ApprovedBy:     &approver,
		ApprovedAt:     &approvedAt,
		Student:        &StudentRef{ID: student.ID, FullName: student.FullName, UE2: student.UE2, UE3: student.UE3},
	}
	if err := s.store(ctx, row, true); err != nil {
		if apperror.IsUniqueViolation(err, "uq_attendance_user_date_kind") {
			return AttendanceResponse{}, attendanceerrors.ErrManualDuplicate
		}
		log.Error("store manual attendance failed", zap.String("student_id", req.UserID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	log.Info("manual attendance recorded",
		zap.String("actor_id", actor.ID),
		zap.String("student_id", req.UserID),
		zap.String("kind", string(kind)),
	)
	return mapToResponse(*row), nil
}

func (s *service) Approve(ctx context.Context, actor mentor.Actor, req ApproveRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(req.AttendanceID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	if req.Approved == nil {
		return AttendanceResponse{}, apperror.RequiredField("approved")
	}
	approver, err := uuid.Parse(actor.ID)
	if err != nil {
		return AttendanceResponse{}, apperror.ErrUnauthorized
	}

	row, err := s.repo.FindByID(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	if _, err := s.reviewers.CanAccessStudent(ctx, actor, row.UserID.String()); err != nil {
		return AttendanceResponse{}, err
	}

	at := s.now().UTC()
	if err := s.repo.SetApproval(ctx, req.AttendanceID, *req.Approved, actor.ID, at); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("attendance approval updated",
		zap.String("actor_id", actor.ID),
		zap.String("attendance_id", req.AttendanceID),
		zap.Bool("approved", *req.Approved),
	)

	row.Approved = req.Approved
	row.ApprovedBy = &approver
	row.ApprovedAt = &at
	return mapToResponse(*row), nil
}

func (s *service) Pending(ctx context.Context, actor mentor.Actor, kind string) ([]AttendanceResponse, error) {
	k := geofence.ClockIn
	if kind != "" {
		parsed, err := geofence.ParseEventKind(kind)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidType
		}
		k = parsed
	}

	unit, err := s.reviewers.ReviewUnit(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Pending(ctx, k, unit)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

func (s *service) StudentAttendance(ctx context.Context, actor mentor.Actor, studentID string, filter HistoryFilter) ([]AttendanceResponse, error) {
	if _, err := s.reviewers.CanAccessStudent(ctx, actor, studentID); err != nil {
		return nil, err
	}
	return s.History(ctx, studentID, filter)
}

func rejection(kind geofence.EventKind, d geofence.Decision, w geofence.TimeWindowSpec, o geofence.OfficeConfig) error {
	switch d.Reason {
	case geofence.ReasonAlreadyRecordedToday:
		return alreadyRecorded(kind)
	case geofence.ReasonMissingClockIn:
		return attendanceerrors.ErrMissingClockIn
	case geofence.ReasonOutsideTimeWindow:
		return attendanceerrors.OutsideWindow(capitalize(kind.Label()), w.String())
	case geofence.ReasonTooFarFromOffice:
		return attendanceerrors.TooFarFromOffice(d.DistanceMeters, o.MaxDistanceMeters)
	}
	return apperror.ErrInternal
}

func alreadyRecorded(kind geofence.EventKind) error {
	if kind == geofence.ClockOut {
		return attendanceerrors.ErrAlreadyClockedOut
	}
	return attendanceerrors.ErrAlreadyClockedIn
}

func defaultNote(note string) string {
	if strings.TrimSpace(note) == "" {
		return StatusWFO
	}
	return note
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func mapToResponses(rows []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToResponse(r))
	}
	return out
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		UserID:         a.UserID.String(),
		Type:           a.Kind,
		Date:           a.AttendanceDate.Format("2006-01-02"),
		Time:           a.ClockTime,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		DistanceMeters: a.DistanceMeters,
		Note:           a.Note,
		Status:         a.Status,
		Approved:       a.Approved,
		ApprovedAt:     a.ApprovedAt,
	}
	if a.ApprovedBy != nil {
		by := a.ApprovedBy.String()
		resp.ApprovedBy = &by
	}
	if a.Student != nil {
		resp.StudentName = a.Student.FullName
	}
	return resp
}
