package geocode

import (
	"context"
	"testing"
	"time"

	"agenda/internal/domain/service"
	"agenda/internal/errors"
	mockservice "agenda/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type memoryStore struct {
	values  map[string]string
	ttls    map[string]time.Duration
	readErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	if s.readErr != nil {
		return "", s.readErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", errCacheMiss
	}

	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.values[key] = value
	s.ttls[key] = ttl

	return nil
}

func TestCachedGeocoder_ReadThrough(t *testing.T) {
	ctx := context.Background()
	next := mockservice.NewMockGeocoder(t)
	next.EXPECT().Resolve(mock.Anything, "01310-100").
		Return(service.Resolved(orb.Point{-46.6544, -23.5632})).Once()

	store := newMemoryStore()
	geocoder := newCachedGeocoder(next, store, time.Hour, nil, discardLogger())

	first := geocoder.Resolve(ctx, "01310-100")
	second := geocoder.Resolve(ctx, "01310100")

	assert.Equal(t, first, second)
	assert.Equal(t, service.GeocodeResolved, second.Status)
	assert.Equal(t, time.Hour, store.ttls["geocode:cep:01310100"])
}

func TestCachedGeocoder_CachesUnresolvable(t *testing.T) {
	ctx := context.Background()
	next := mockservice.NewMockGeocoder(t)
	next.EXPECT().Resolve(mock.Anything, "99999999").Return(service.Unresolvable()).Once()

	store := newMemoryStore()
	geocoder := newCachedGeocoder(next, store, time.Hour, nil, discardLogger())

	assert.Equal(t, service.GeocodeUnresolvable, geocoder.Resolve(ctx, "99999999").Status)
	assert.Equal(t, service.GeocodeUnresolvable, geocoder.Resolve(ctx, "99999999").Status)
	assert.Equal(t, unresolvableMark, store.values["geocode:cep:99999999"])
}

func TestCachedGeocoder_DoesNotCacheProviderFailure(t *testing.T) {
	ctx := context.Background()
	next := mockservice.NewMockGeocoder(t)
	next.EXPECT().Resolve(mock.Anything, "20040002").
		Return(service.ProviderFailure(errors.New("timeout"))).Twice()

	store := newMemoryStore()
	geocoder := newCachedGeocoder(next, store, time.Hour, nil, discardLogger())

	assert.Equal(t, service.GeocodeProviderFailure, geocoder.Resolve(ctx, "20040002").Status)
	assert.Equal(t, service.GeocodeProviderFailure, geocoder.Resolve(ctx, "20040002").Status)
	assert.Empty(t, store.values)
}

func TestCachedGeocoder_StoreErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	next := mockservice.NewMockGeocoder(t)
	next.EXPECT().Resolve(mock.Anything, "01310100").
		Return(service.Resolved(orb.Point{-46.6544, -23.5632})).Once()

	store := newMemoryStore()
	store.readErr = errors.New("connection refused")
	geocoder := newCachedGeocoder(next, store, time.Hour, nil, discardLogger())

	assert.Equal(t, service.GeocodeResolved, geocoder.Resolve(ctx, "01310100").Status)
}

func TestCachedGeocoder_MalformedEntryIsRefreshed(t *testing.T) {
	ctx := context.Background()
	next := mockservice.NewMockGeocoder(t)
	next.EXPECT().Resolve(mock.Anything, "01310100").
		Return(service.Resolved(orb.Point{-46.6544, -23.5632})).Once()

	store := newMemoryStore()
	store.values["geocode:cep:01310100"] = "garbage"
	geocoder := newCachedGeocoder(next, store, time.Hour, nil, discardLogger())

	assert.Equal(t, service.GeocodeResolved, geocoder.Resolve(ctx, "01310100").Status)
	assert.Equal(t, "-23.5632,-46.6544", store.values["geocode:cep:01310100"])
}
