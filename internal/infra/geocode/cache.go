package geocode

import (
	"context"
	"log/slog"
	"time"

	"agenda/internal/domain/service"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"
	"agenda/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix   = "geocode:cep:"
	unresolvableMark = "-"
)

// errCacheMiss is returned by a store when the key is absent.
var errCacheMiss = errors.New("cache miss")

// store is the subset of a key/value cache the decorator needs.
type store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func (s redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errCacheMiss
	}

	return value, errors.WithStack(err)
}

func (s redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.WithStack(s.client.Set(ctx, key, value, ttl).Err())
}

// cachedGeocoder is a read-through cache in front of another geocoder.
// Provider failures are never cached. Cache errors degrade to a direct lookup.
type cachedGeocoder struct {
	next    service.Geocoder
	store   store
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewCachedGeocoder wraps next with a Redis-backed cache.
func NewCachedGeocoder(next service.Geocoder, client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) service.Geocoder {
	return newCachedGeocoder(next, redisStore{client: client}, ttl, m, logger)
}

func newCachedGeocoder(next service.Geocoder, s store, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *cachedGeocoder {
	return &cachedGeocoder{next: next, store: s, ttl: ttl, metrics: m, logger: logger}
}

func (g *cachedGeocoder) Resolve(ctx context.Context, postalCode string) service.GeocodeResult {
	key := cacheKeyPrefix + validation.Digits(postalCode)

	value, err := g.store.Get(ctx, key)
	switch {
	case err == nil:
		if result, ok := decodeCached(value); ok {
			g.metrics.IncrementGeocodeLookup(result.Status.String(), sourceCache)

			return result
		}
		g.logger.Warn("Discarding malformed geocode cache entry", slog.String("key", key))
	case !errors.Is(err, errCacheMiss):
		g.logger.Warn("Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	result := g.next.Resolve(ctx, postalCode)
	if result.Status == service.GeocodeProviderFailure {
		return result
	}

	if err := g.store.Set(ctx, key, encodeCached(result), g.ttl); err != nil {
		g.logger.Warn("Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return result
}

func encodeCached(result service.GeocodeResult) string {
	if result.Status == service.GeocodeResolved {
		return formatLatLon(result.Point)
	}

	return unresolvableMark
}

func decodeCached(value string) (service.GeocodeResult, bool) {
	if value == unresolvableMark {
		return service.Unresolvable(), true
	}

	point, err := parseLatLon(value)
	if err != nil {
		return service.GeocodeResult{}, false
	}

	return service.Resolved(point), true
}
