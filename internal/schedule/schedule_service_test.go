package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-magang/internal/geofence"
	"go-magang/internal/schedule"
	scheduleerrors "go-magang/internal/schedule/errors"
	scheduleMock "go-magang/internal/schedule/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setup(t *testing.T) (schedule.Service, *scheduleMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := scheduleMock.NewMockRepository(ctrl)
	return schedule.NewService(repo), repo
}

func TestScheduleService_ResolveWindow(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no schedule gives defaults", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveByDate(ctx, date).Return(nil, gorm.ErrRecordNotFound).Times(2)

		in, err := svc.ResolveWindow(ctx, date, geofence.ClockIn)
		assert.NoError(t, err)
		assert.Equal(t, "07:30 - 08:00", in.String())

		out, err := svc.ResolveWindow(ctx, date, geofence.ClockOut)
		assert.NoError(t, err)
		assert.Equal(t, "17:00 - 17:30", out.String())
	})

	t.Run("active schedule overrides per kind", func(t *testing.T) {
		svc, repo := setup(t)
		sc := &schedule.Schedule{
			ID:            uuid.New(),
			Date:          date,
			ClockInStart:  "08:00",
			ClockInEnd:    "09:00",
			ClockOutStart: "15:00",
			ClockOutEnd:   "16:00",
			IsActive:      true,
		}
		repo.EXPECT().FindActiveByDate(ctx, date).Return(sc, nil).Times(2)

		in, err := svc.ResolveWindow(ctx, date, geofence.ClockIn)
		assert.NoError(t, err)
		assert.Equal(t, "08:00 - 09:00", in.String())

		out, err := svc.ResolveWindow(ctx, date, geofence.ClockOut)
		assert.NoError(t, err)
		assert.Equal(t, "15:00 - 16:00", out.String())
	})

	t.Run("corrupt stored window falls back", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveByDate(ctx, date).Return(&schedule.Schedule{
			ID:           uuid.New(),
			ClockInStart: "09:00",
			ClockInEnd:   "08:00",
		}, nil)

		w, err := svc.ResolveWindow(ctx, date, geofence.ClockIn)
		assert.NoError(t, err)
		assert.Equal(t, geofence.DefaultClockInWindow, w)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindActiveByDate(ctx, date).Return(nil, errors.New("timeout"))

		_, err := svc.ResolveWindow(ctx, date, geofence.ClockIn)
		assert.EqualError(t, err, "timeout")
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.ResolveWindow(ctx, date, geofence.EventKind("lunch"))
		assert.Error(t, err)
	})
}

func TestScheduleService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	valid := schedule.CreateScheduleRequest{
		Date:          "2025-03-10",
		ClockInStart:  "08:00",
		ClockInEnd:    "08:30:00",
		ClockOutStart: "16:00",
		ClockOutEnd:   "16:30",
		Note:          " Rapat pagi ",
	}

	t.Run("success normalizes times", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, sc *schedule.Schedule) error {
			assert.Equal(t, "08:30", sc.ClockInEnd)
			assert.Equal(t, "Rapat pagi", sc.Note)
			assert.Equal(t, actorID, sc.CreatedBy.String())
			assert.True(t, sc.IsActive)
			return nil
		})

		resp, err := svc.Create(ctx, actorID, valid)

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-10", resp.Date)
	})

	t.Run("invalid time", func(t *testing.T) {
		svc, _ := setup(t)
		req := valid
		req.ClockOutEnd = "4:30"

		_, err := svc.Create(ctx, actorID, req)
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidTime)
	})

	t.Run("start after end", func(t *testing.T) {
		svc, _ := setup(t)
		req := valid
		req.ClockInStart = "09:00"

		_, err := svc.Create(ctx, actorID, req)
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidWindow)
	})
}

func TestScheduleService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("not found", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, id.String(), schedule.UpdateScheduleRequest{})
		assert.ErrorIs(t, err, scheduleerrors.ErrScheduleNotFound)
	})

	t.Run("deactivate", func(t *testing.T) {
		svc, repo := setup(t)
		repo.EXPECT().FindByID(ctx, id.String()).Return(&schedule.Schedule{
			ID:            id,
			ClockInStart:  "07:30",
			ClockInEnd:    "08:00",
			ClockOutStart: "17:00",
			ClockOutEnd:   "17:30",
			IsActive:      true,
		}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		off := false
		resp, err := svc.Update(ctx, id.String(), schedule.UpdateScheduleRequest{IsActive: &off})

		assert.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Update(ctx, "abc", schedule.UpdateScheduleRequest{})
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidScheduleID)
	})
}
