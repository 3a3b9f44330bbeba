package office_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-magang/internal/office"
	officeerrors "go-magang/internal/office/errors"
	officeMock "go-magang/internal/office/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  office.Service
	repo     *officeMock.MockRepository
	provider *officeMock.MockProvider
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := officeMock.NewMockRepository(ctrl)
	provider := officeMock.NewMockProvider(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  office.NewService(db, repo, provider, fallbackOffice),
		repo:     repo,
		provider: provider,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func ptr(f float64) *float64 { return &f }

func TestOfficeService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing saved", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindActive(ctx).Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, "Kantor Utama", resp.Name)
		assert.Equal(t, 106.8650, resp.Longitude)
	})

	t.Run("active row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.repo.EXPECT().FindActive(ctx).Return(&office.OfficeLocation{
			ID: id, Latitude: -6.2, Longitude: 106.8, Name: "Gedung B", MaxDistanceMeters: 200,
		}, nil)

		resp, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, 200.0, resp.MaxDistanceMeters)
	})
}

func TestOfficeService_Update(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("success replaces active location and invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeactivateAll(ctx).Return(nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, loc *office.OfficeLocation) error {
			assert.Equal(t, "Kantor Utama", loc.Name)
			assert.Equal(t, 500.0, loc.MaxDistanceMeters)
			assert.True(t, loc.IsActive)
			assert.Equal(t, actorID, loc.CreatedBy.String())
			return nil
		})
		deps.provider.EXPECT().Invalidate(ctx).Return(nil)

		resp, err := deps.service.Update(ctx, actorID, office.UpdateOfficeRequest{
			Latitude:  ptr(-6.18),
			Longitude: ptr(106.87),
		})

		assert.NoError(t, err)
		assert.Equal(t, -6.18, resp.Latitude)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("create failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeactivateAll(ctx).Return(nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		deps.provider.EXPECT().Invalidate(gomock.Any()).Times(0)

		_, err := deps.service.Update(ctx, actorID, office.UpdateOfficeRequest{
			Latitude:          ptr(-6.18),
			Longitude:         ptr(106.87),
			MaxDistanceMeters: 300,
		})

		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		tests := []struct {
			name string
			req  office.UpdateOfficeRequest
			want error
		}{
			{"latitude out of range", office.UpdateOfficeRequest{Latitude: ptr(91), Longitude: ptr(106)}, officeerrors.ErrInvalidLatitude},
			{"longitude out of range", office.UpdateOfficeRequest{Latitude: ptr(-6), Longitude: ptr(-181)}, officeerrors.ErrInvalidLongitude},
			{"negative radius", office.UpdateOfficeRequest{Latitude: ptr(-6), Longitude: ptr(106), MaxDistanceMeters: -1}, officeerrors.ErrInvalidMaxDistance},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := deps.service.Update(ctx, actorID, tt.req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}
