// Package geocode resolves postal codes to coordinates.
package geocode

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"agenda/internal/domain/service"
	"agenda/internal/domain/validation"
	"agenda/internal/errors"
	"agenda/internal/infra/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/paulmach/orb"
)

const (
	sourceProvider = "provider"
	sourceCache    = "cache"
	sourceStatic   = "static"
)

// errUnresolvable marks an answer that retrying cannot change.
var errUnresolvable = errors.New("postal code has no coordinates")

// BrasilAPIOptions configures the HTTP lookup.
type BrasilAPIOptions struct {
	BaseURL    string
	Timeout    time.Duration // whole lookup, retries included
	MaxRetries int
	RetryWait  time.Duration
	HTTPClient *http.Client
}

// brasilAPIGeocoder calls GET {baseURL}/api/cep/v2/{cep}.
type brasilAPIGeocoder struct {
	opts    BrasilAPIOptions
	client  *http.Client
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewBrasilAPIGeocoder creates a geocoder backed by the BrasilAPI CEP v2 endpoint.
func NewBrasilAPIGeocoder(opts BrasilAPIOptions, m *metrics.Metrics, logger *slog.Logger) service.Geocoder {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &brasilAPIGeocoder{
		opts:    opts,
		client:  client,
		metrics: m,
		logger:  logger,
	}
}

type cepResponse struct {
	CEP      string `json:"cep"`
	Location struct {
		Type        string `json:"type"`
		Coordinates struct {
			Longitude coordinate `json:"longitude"`
			Latitude  coordinate `json:"latitude"`
		} `json:"coordinates"`
	} `json:"location"`
}

// coordinate accepts a JSON number, a numeric string, or an empty string.
type coordinate struct {
	value *float64
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		c.value = nil

		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid coordinate %q", raw)
	}
	c.value = &v

	return nil
}

func (g *brasilAPIGeocoder) Resolve(ctx context.Context, postalCode string) service.GeocodeResult {
	digits := validation.Digits(postalCode)

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	result := g.lookup(ctx, digits)
	g.metrics.ObserveGeocodeLatency(time.Since(start))
	g.metrics.IncrementGeocodeLookup(result.Status.String(), sourceProvider)

	return result
}

func (g *brasilAPIGeocoder) lookup(ctx context.Context, digits string) service.GeocodeResult {
	policy := backoff.NewExponentialBackOff()
	if g.opts.RetryWait > 0 {
		policy.InitialInterval = g.opts.RetryWait
	}
	retries := uint64(0)
	if g.opts.MaxRetries > 0 {
		retries = uint64(g.opts.MaxRetries)
	}

	attempt := func() (orb.Point, error) {
		return g.fetch(ctx, digits)
	}
	notify := func(err error, wait time.Duration) {
		g.logger.Debug("Retrying postal code lookup",
			slog.String("cep", digits),
			slog.Duration("wait", wait),
			slog.Any("error", err),
		)
	}

	point, err := backoff.RetryNotifyWithData(attempt,
		backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx),
		notify,
	)
	switch {
	case err == nil:
		return service.Resolved(point)
	case errors.Is(err, errUnresolvable):
		return service.Unresolvable()
	default:
		g.logger.Warn("Postal code lookup failed",
			slog.String("cep", digits),
			slog.Any("error", err),
		)

		return service.ProviderFailure(err)
	}
}

// fetch performs one attempt. Answers that retrying cannot change are permanent.
func (g *brasilAPIGeocoder) fetch(ctx context.Context, digits string) (orb.Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.opts.BaseURL+"/api/cep/v2/"+digits, nil)
	if err != nil {
		return orb.Point{}, backoff.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusBadRequest:
		return orb.Point{}, backoff.Permanent(errUnresolvable)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= http.StatusInternalServerError:
		return orb.Point{}, errors.Errorf("geocode provider returned status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return orb.Point{}, backoff.Permanent(errors.Errorf("geocode provider returned status %d", resp.StatusCode))
	}

	var body cepResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return orb.Point{}, backoff.Permanent(errors.Wrap(err, "decode geocode response"))
	}

	lat, lng := body.Location.Coordinates.Latitude.value, body.Location.Coordinates.Longitude.value
	if lat == nil || lng == nil {
		return orb.Point{}, backoff.Permanent(errUnresolvable)
	}

	return orb.Point{*lng, *lat}, nil
}
