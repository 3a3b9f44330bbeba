package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-magang/internal/messaging/kafka"
	kafkaMock "go-magang/internal/messaging/kafka/mock"
	"go-magang/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	writeFn func(ctx context.Context, msgs ...kafkago.Message) error
	written []kafkago.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if f.writeFn != nil {
		if err := f.writeFn(ctx, msgs...); err != nil {
			return err
		}
	}
	f.written = append(f.written, msgs...)
	return nil
}

func TestProcessPending(t *testing.T) {
	ctx := context.Background()
	events := []kafka.OutboxEvent{
		{ID: "o-1", RequestID: "req-1", AggregateType: "attendance", AggregateID: "a-1", EventType: "attendance_recorded", Topic: "t", Payload: []byte(`{}`)},
		{ID: "o-2", AggregateType: "attendance", AggregateID: "a-2", EventType: "attendance_recorded", Topic: "t", Payload: []byte(`{}`)},
	}

	t.Run("publishes and marks sent", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return(events, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, []byte("a-1"), writer.written[0].Key)
		assert.Contains(t, writer.written[0].Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
		assert.Len(t, writer.written[1].Headers, 3)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{writeFn: func(_ context.Context, msgs ...kafkago.Message) error {
			if string(msgs[0].Key) == "a-1" {
				return errors.New("broker down")
			}
			return nil
		}}

		repo.EXPECT().ListPending(ctx, 50).Return(events, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "broker down").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPending(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.Error(t, err)
	})
}
