package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-magang/internal/events"
	"go-magang/internal/notification"
	"go-magang/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// RetryPolicy bounds how long one message is retried before it is given up.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	MaxBackoff  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 5,
	Backoff:     2 * time.Second,
	MaxBackoff:  30 * time.Second,
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	d := p.Backoff << (attempt - 1)
	if p.MaxBackoff > 0 && (d > p.MaxBackoff || d <= 0) {
		d = p.MaxBackoff
	}
	return d
}

func ConsumeAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	notifier notification.Notifier,
	policy RetryPolicy,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_recorded")
	log.Info("attendance notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance notification consumer stopped")
				return
			}
			log.Error("fetch attendance message failed", zap.Error(err))
			continue
		}

		HandleAttendanceRecorded(ctx, reader, msg, notifier, policy, log)
		if ctx.Err() != nil {
			log.Info("attendance notification consumer stopped")
			return
		}
	}
}

// HandleAttendanceRecorded retries a failed notification in place, so no later
// offset is committed past it. After MaxAttempts the message is logged and
// committed. It is left uncommitted only when ctx ends mid-retry; the next
// group member starts from it again.
func HandleAttendanceRecorded(
	ctx context.Context,
	reader MessageReader,
	msg kafkago.Message,
	notifier notification.Notifier,
	policy RetryPolicy,
	log *zap.Logger,
) bool {
	var event events.AttendanceRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode attendance_recorded event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return false
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		if err = notifier.AttendanceRecorded(ctx, event); err == nil {
			break
		}
		log.Warn("send attendance notification failed",
			zap.String("attendance_id", event.AttendanceID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == policy.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(policy.delay(attempt)):
		}
	}

	if err != nil {
		log.Error("attendance notification dropped after retries",
			zap.String("attendance_id", event.AttendanceID),
			zap.String("user_id", event.UserID),
			zap.Int64("offset", msg.Offset),
			zap.Int("attempts", policy.MaxAttempts),
			zap.Error(err),
		)
	}

	if cerr := reader.CommitMessages(ctx, msg); cerr != nil {
		log.Error("commit attendance message failed", zap.Error(cerr))
		return false
	}
	if err != nil {
		return false
	}

	log.Info("attendance notification sent",
		zap.String("attendance_id", event.AttendanceID),
		zap.String("kind", event.Kind),
	)
	return true
}
