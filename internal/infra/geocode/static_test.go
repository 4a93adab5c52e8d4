package geocode

import (
	"context"
	"testing"

	"agenda/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGeocoder(t *testing.T) {
	geocoder, err := NewStaticGeocoder(map[string]string{
		"01310-100": "-23.5632, -46.6544",
	}, nil)
	require.NoError(t, err)

	result := geocoder.Resolve(context.Background(), "01310100")
	assert.Equal(t, service.GeocodeResolved, result.Status)
	assert.Equal(t, orb.Point{-46.6544, -23.5632}, result.Point)

	result = geocoder.Resolve(context.Background(), "20040002")
	assert.Equal(t, service.GeocodeUnresolvable, result.Status)
}

func TestNewStaticGeocoder_RejectsMalformedEntry(t *testing.T) {
	_, err := NewStaticGeocoder(map[string]string{"01310100": "-23.5"}, nil)
	require.Error(t, err)

	_, err = NewStaticGeocoder(map[string]string{"01310100": "north,-46.6"}, nil)
	require.Error(t, err)
}

func TestLatLonRoundTrip(t *testing.T) {
	point := orb.Point{-46.6544, -23.5632}

	parsed, err := parseLatLon(formatLatLon(point))
	require.NoError(t, err)
	assert.Equal(t, point, parsed)
}
