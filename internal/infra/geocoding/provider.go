package geocoding

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// GeocoderParams defines the dependencies of the composed geocoder
type GeocoderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder composes provider client, circuit breaker and cache according to configuration.
func NewGeocoder(params GeocoderParams) service.Geocoder {
	cfg := params.Config.Geocoding
	logger := params.Logger.With(slog.String("component", "geocoder"))

	if cfg.APIKey == "" {
		logger.Warn("Geocoding API key is empty, provider calls will be denied")
	}

	geocoder := NewGoogleGeocoder(cfg, logger)

	if cfg.Breaker.Enabled {
		geocoder = NewBreakerGeocoder(geocoder, cfg.Breaker, logger)
	}

	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		geocoder = NewCachedGeocoder(geocoder, rdb, cfg.Cache.TTL, cfg.Cache.Prefix, logger)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				// The cache is optional; a missing redis only costs provider calls.
				if err := rdb.Ping(ctx).Err(); err != nil {
					logger.Warn("Geocode cache unreachable", slog.Any("error", err))
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return errors.Wrap(rdb.Close(), "failed to close geocode cache")
			},
		})
	}

	return geocoder
}
