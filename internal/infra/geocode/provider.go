package geocode

import (
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/constants"
	"agenda/internal/domain/service"
	"agenda/internal/errors"
	"agenda/internal/infra/metrics"
	redisclient "agenda/internal/infra/redis"

	"go.uber.org/fx"
)

const defaultBaseURL = "https://brasilapi.com.br"

// Params holds dependencies for the geocoder, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Redis   *redisclient.Client `optional:"true"`
	Metrics *metrics.Metrics    `optional:"true"`
}

// NewGeocoder builds the configured geocoder, cached when Redis is available.
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocode
	if cfg == nil {
		cfg = &config.GeocodeConfig{}
	}

	var geocoder service.Geocoder
	switch cfg.Provider {
	case constants.GeocodeProviderStatic:
		static, err := NewStaticGeocoder(cfg.Static, params.Metrics)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using static geocoder", slog.Int("entries", len(cfg.Static)))

		// A fixed table gains nothing from a cache.
		return static, nil

	case constants.GeocodeProviderBrasilAPI, "":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		geocoder = NewBrasilAPIGeocoder(BrasilAPIOptions{
			BaseURL:    baseURL,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryWait:  cfg.RetryWait,
		}, params.Metrics, params.Logger)
		params.Logger.Info("Using BrasilAPI geocoder", slog.String("base_url", baseURL))

	default:
		return nil, errors.Errorf("unknown geocode provider: %s", cfg.Provider)
	}

	if params.Redis == nil {
		return geocoder, nil
	}

	ttl := params.Config.Redis.GeocodeTTL
	params.Logger.Info("Geocode cache enabled", slog.Duration("ttl", ttl))

	return NewCachedGeocoder(geocoder, params.Redis.Client, ttl, params.Metrics, params.Logger), nil
}

// Module provides the geocoder FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
