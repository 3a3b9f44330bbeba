package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-magang/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := kafka.NewOutboxEvent("req-1", "attendance", "a-1", "attendance_recorded", "topic", map[string]string{"k": "v"})

	assert.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"k":"v"}`, string(ev.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))

	_, err = kafka.NewOutboxEvent("", "a", "b", "c", "d", make(chan int))
	assert.Error(t, err)
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create inside tx", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		ev, _ := kafka.NewOutboxEvent("req-1", "attendance", "a-1", "attendance_recorded", "topic", map[string]int{"n": 1})

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs(ev.ID, "req-1", "attendance", "a-1", "attendance_recorded", "topic", ev.Payload, kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(ctx, nil)
		assert.NoError(t, err)
		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		assert.NoError(t, repo.Create(ctx, ev))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create rejects invalid event", func(t *testing.T) {
		db, _, _ := sqlmock.New()
		defer db.Close()

		err := kafka.NewOutboxRepository(db).Create(ctx, kafka.OutboxEvent{ID: "x"})
		assert.Error(t, err)
	})

	t.Run("list pending", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow("o-1", "", "attendance", "a-1", "attendance_recorded", "topic", []byte(`{}`), kafka.OutboxStatusFailed, 2, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
			WillReturnRows(rows)

		events, err := kafka.NewOutboxRepository(db).ListPending(ctx, 50)

		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, 2, events[0].RetryCount)
		assert.Equal(t, "a-1", events[0].AggregateID)
	})

	t.Run("mark failed passes dead threshold", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
			WithArgs("o-1", kafka.OutboxStatusFailed, "boom", kafka.MaxOutboxRetries, kafka.OutboxStatusDead).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(ctx, "o-1", "boom"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mark sent", func(t *testing.T) {
		db, mock, _ := sqlmock.New()
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
			WithArgs("o-1", kafka.OutboxStatusSent).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, kafka.NewOutboxRepository(db).MarkSent(ctx, "o-1"))
	})
}
