package geocode

import (
	"context"
	"strconv"
	"strings"

	"agenda/internal/domain/service"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"
	"agenda/internal/infra/metrics"

	"github.com/paulmach/orb"
)

// staticGeocoder answers from a fixed table; unknown codes are unresolvable.
type staticGeocoder struct {
	points  map[string]orb.Point
	metrics *metrics.Metrics
}

// NewStaticGeocoder builds a geocoder from postal code digits to "lat,lon" entries.
func NewStaticGeocoder(entries map[string]string, m *metrics.Metrics) (service.Geocoder, error) {
	points := make(map[string]orb.Point, len(entries))
	for code, raw := range entries {
		point, err := parseLatLon(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "static geocode entry %s", code)
		}
		points[validation.Digits(code)] = point
	}

	return &staticGeocoder{points: points, metrics: m}, nil
}

func (g *staticGeocoder) Resolve(_ context.Context, postalCode string) service.GeocodeResult {
	result := service.Unresolvable()
	if point, ok := g.points[validation.Digits(postalCode)]; ok {
		result = service.Resolved(point)
	}
	g.metrics.IncrementGeocodeLookup(result.Status.String(), sourceStatic)

	return result
}

// parseLatLon reads "lat,lon" into an orb.Point (lon, lat).
func parseLatLon(raw string) (orb.Point, error) {
	lat, lon, ok := strings.Cut(raw, ",")
	if !ok {
		return orb.Point{}, errors.Errorf("expected \"lat,lon\", got %q", raw)
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	return orb.Point{longitude, latitude}, nil
}

func formatLatLon(point orb.Point) string {
	return strconv.FormatFloat(point.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(point.Lon(), 'f', -1, 64)
}
