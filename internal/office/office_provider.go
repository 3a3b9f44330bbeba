package office

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-magang/internal/geofence"
	officeerrors "go-magang/internal/office/errors"
	"go-magang/internal/shared/apperror"
	"go-magang/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ActiveOfficeCacheKey = "office:active"

// Provider resolves the office configuration in force for the geofence gate.
//
//go:generate mockgen -source=office_provider.go -destination=mock/office_provider_mock.go -package=mock
type Provider interface {
	Active(ctx context.Context) (geofence.OfficeConfig, error)
	Invalidate(ctx context.Context) error
}

type cachedProvider struct {
	repo     Repository
	rdb      redis.Cmdable
	sf       *singleflight.Group
	ttl      time.Duration
	fallback geofence.OfficeConfig
	logger   *zap.Logger
}

// NewProvider returns a Provider backed by the repository. rdb may be nil, in which
// case every call reads the database.
func NewProvider(
	repo Repository,
	rdb redis.Cmdable,
	ttl time.Duration,
	fallback geofence.OfficeConfig,
	logger ...*zap.Logger,
) Provider {
	l := zap.L().Named("office.provider")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("office.provider")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if fallback.Name == "" {
		fallback.Name = DefaultName
	}
	return &cachedProvider{
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		ttl:      ttl,
		fallback: fallback,
		logger:   l,
	}
}

func (p *cachedProvider) Active(ctx context.Context) (geofence.OfficeConfig, error) {
	l := contextutil.GetLogger(ctx, p.logger)

	// 1. Cek Redis
	if p.rdb != nil {
		if cached, err := p.rdb.Get(ctx, ActiveOfficeCacheKey).Bytes(); err == nil {
			var cfg geofence.OfficeConfig
			if json.Unmarshal(cached, &cfg) == nil && cfg.Validate() == nil {
				return cfg, nil
			}
			l.Warn("discarding malformed office cache entry")
		} else if !errors.Is(err, redis.Nil) {
			l.Warn("office cache read failed", zap.Error(err))
		}
	}

	// 2. Satu query per key walaupun banyak clock-in bersamaan
	v, err, _ := p.sf.Do(ActiveOfficeCacheKey, func() (interface{}, error) {
		cfg, err := p.load(ctx)
		if err != nil {
			return geofence.OfficeConfig{}, err
		}

		if p.rdb != nil {
			if payload, err := json.Marshal(cfg); err == nil {
				if err := p.rdb.Set(ctx, ActiveOfficeCacheKey, payload, p.ttl).Err(); err != nil {
					l.Warn("office cache write failed", zap.Error(err))
				}
			}
		}
		return cfg, nil
	})
	if err != nil {
		l.Error("load active office failed", zap.Error(err))
		return geofence.OfficeConfig{}, err
	}

	return v.(geofence.OfficeConfig), nil
}

func (p *cachedProvider) load(ctx context.Context) (geofence.OfficeConfig, error) {
	loc, err := p.repo.FindActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p.fallback, nil
	}
	if err != nil {
		return geofence.OfficeConfig{}, apperror.Wrap(err,
			officeerrors.ErrOfficeUnavailable.Code,
			officeerrors.ErrOfficeUnavailable.Message,
			officeerrors.ErrOfficeUnavailable.HTTPStatus,
		)
	}

	cfg := toOfficeConfig(*loc)
	if err := cfg.Validate(); err != nil {
		p.logger.Warn("stored office location invalid, using fallback",
			zap.String("office_id", loc.ID.String()),
			zap.Error(err),
		)
		return p.fallback, nil
	}
	return cfg, nil
}

func (p *cachedProvider) Invalidate(ctx context.Context) error {
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Del(ctx, ActiveOfficeCacheKey).Err()
}

func toOfficeConfig(loc OfficeLocation) geofence.OfficeConfig {
	return geofence.OfficeConfig{
		Location: geofence.GeoPoint{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
		MaxDistanceMeters: loc.MaxDistanceMeters,
		Name:              loc.Name,
		EffectiveFrom:     loc.UpdatedAt,
	}
}
