package office_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-magang/internal/geofence"
	"go-magang/internal/office"
	officeMock "go-magang/internal/office/mock"
	"go-magang/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var fallbackOffice = geofence.OfficeConfig{
	Location:          geofence.GeoPoint{Latitude: -6.1751, Longitude: 106.8650},
	MaxDistanceMeters: 500,
}

func TestProvider_Active(t *testing.T) {
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("cache hit skips database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := officeMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		p := office.NewProvider(repo, rdb, ttl, fallbackOffice)

		cached := geofence.OfficeConfig{
			Location:          geofence.GeoPoint{Latitude: -6.2, Longitude: 106.8},
			MaxDistanceMeters: 300,
			Name:              "Gedung B",
		}
		payload, _ := json.Marshal(cached)
		redisMock.ExpectGet(office.ActiveOfficeCacheKey).SetVal(string(payload))
		repo.EXPECT().FindActive(gomock.Any()).Times(0)

		cfg, err := p.Active(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 300.0, cfg.MaxDistanceMeters)
		assert.Equal(t, "Gedung B", cfg.Name)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads row and stores it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := officeMock.NewMockRepository(ctrl)
		rdb, redisMock := redismock.NewClientMock()
		p := office.NewProvider(repo, rdb, ttl, fallbackOffice)

		updated := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
		loc := &office.OfficeLocation{
			ID:                uuid.New(),
			Latitude:          -6.18,
			Longitude:         106.87,
			Name:              "Kantor Pusat",
			MaxDistanceMeters: 250,
			IsActive:          true,
			UpdatedAt:         updated,
		}
		expected := geofence.OfficeConfig{
			Location:          geofence.GeoPoint{Latitude: -6.18, Longitude: 106.87},
			MaxDistanceMeters: 250,
			Name:              "Kantor Pusat",
			EffectiveFrom:     updated,
		}
		payload, _ := json.Marshal(expected)

		redisMock.ExpectGet(office.ActiveOfficeCacheKey).RedisNil()
		repo.EXPECT().FindActive(gomock.Any()).Return(loc, nil)
		redisMock.ExpectSet(office.ActiveOfficeCacheKey, payload, ttl).SetVal("OK")

		cfg, err := p.Active(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, cfg)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("no saved location uses fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := officeMock.NewMockRepository(ctrl)
		p := office.NewProvider(repo, nil, ttl, fallbackOffice)

		repo.EXPECT().FindActive(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		cfg, err := p.Active(ctx)

		assert.NoError(t, err)
		assert.Equal(t, -6.1751, cfg.Location.Latitude)
		assert.Equal(t, 500.0, cfg.MaxDistanceMeters)
		assert.Equal(t, office.DefaultName, cfg.Name)
	})

	t.Run("stored row with invalid radius uses fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := officeMock.NewMockRepository(ctrl)
		p := office.NewProvider(repo, nil, ttl, fallbackOffice)

		repo.EXPECT().FindActive(gomock.Any()).Return(&office.OfficeLocation{
			ID:        uuid.New(),
			Latitude:  -6.18,
			Longitude: 106.87,
		}, nil)

		cfg, err := p.Active(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 500.0, cfg.MaxDistanceMeters)
	})

	t.Run("database error is an internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := officeMock.NewMockRepository(ctrl)
		p := office.NewProvider(repo, nil, ttl, fallbackOffice)

		repo.EXPECT().FindActive(gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := p.Active(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})
}

func TestProvider_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	p := office.NewProvider(officeMock.NewMockRepository(ctrl), rdb, time.Minute, fallbackOffice)

	redisMock.ExpectDel(office.ActiveOfficeCacheKey).SetVal(1)

	assert.NoError(t, p.Invalidate(context.Background()))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
