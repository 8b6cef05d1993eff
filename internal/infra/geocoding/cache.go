package geocoding

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/infra/metrics"

	"github.com/paulmach/orb"
	"github.com/redis/go-redis/v9"
)

// cacheStore is the subset of redis.Cmdable the cache needs.
type cacheStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type cachedResult struct {
	Lng              float64         `json:"lng"`
	Lat              float64         `json:"lat"`
	FormattedAddress string          `json:"formattedAddress"`
	Address          *entity.Address `json:"address,omitempty"`
}

// cachedGeocoder serves successful lookups from redis. Failures are never cached and
// cache errors fall through to the wrapped geocoder.
type cachedGeocoder struct {
	next   service.Geocoder
	store  cacheStore
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCachedGeocoder wraps next with a redis read-through cache.
func NewCachedGeocoder(next service.Geocoder, store cacheStore, ttl time.Duration, prefix string, logger *slog.Logger) service.Geocoder {
	return &cachedGeocoder{
		next:   next,
		store:  store,
		ttl:    ttl,
		prefix: prefix,
		logger: logger,
	}
}

func (c *cachedGeocoder) Forward(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	key := c.prefix + "fwd:" + strings.ToLower(strings.Join(strings.Fields(address), " "))

	return c.through(ctx, operationForward, key, func() (*entity.GeocodeResult, error) {
		return c.next.Forward(ctx, address)
	})
}

func (c *cachedGeocoder) Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error) {
	key := c.prefix + "rev:" + strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lng, 'f', 6, 64)

	return c.through(ctx, operationReverse, key, func() (*entity.GeocodeResult, error) {
		return c.next.Reverse(ctx, lat, lng)
	})
}

func (c *cachedGeocoder) through(
	ctx context.Context,
	operation, key string,
	load func() (*entity.GeocodeResult, error),
) (*entity.GeocodeResult, error) {
	if result, ok := c.get(ctx, key); ok {
		metrics.GeocodeCacheHits.WithLabelValues(operation).Inc()

		return result, nil
	}
	metrics.GeocodeCacheMisses.WithLabelValues(operation).Inc()

	result, err := load()
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, result)

	return result, nil
}

func (c *cachedGeocoder) get(ctx context.Context, key string) (*entity.GeocodeResult, bool) {
	raw, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var cached cachedResult
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.logger.WarnContext(ctx, "Geocode cache entry is corrupt", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}

	return &entity.GeocodeResult{
		Coordinates:      orb.Point{cached.Lng, cached.Lat},
		FormattedAddress: cached.FormattedAddress,
		Address:          cached.Address,
	}, true
}

func (c *cachedGeocoder) set(ctx context.Context, key string, result *entity.GeocodeResult) {
	raw, err := json.Marshal(cachedResult{
		Lng:              result.Coordinates.Lon(),
		Lat:              result.Coordinates.Lat(),
		FormattedAddress: result.FormattedAddress,
		Address:          result.Address,
	})
	if err != nil {
		return
	}

	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
