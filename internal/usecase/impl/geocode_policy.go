package impl

import (
	"context"
	"log/slog"

	"agenda/config"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/service"
	"agenda/internal/domain/validation"

	"github.com/paulmach/orb"
)

// GeocodeMode decides what a failed lookup does to the operation.
type GeocodeMode string

const (
	// GeocodeSoft stores the record without fresh coordinates.
	GeocodeSoft GeocodeMode = config.GeocodePolicySoft
	// GeocodeStrict rejects the record on the postal code field.
	GeocodeStrict GeocodeMode = config.GeocodePolicyStrict
)

// GeocodePolicy holds the mode of every operation that resolves a postal code.
type GeocodePolicy struct {
	IndividualCreate   GeocodeMode
	OrganizationCreate GeocodeMode
	Update             GeocodeMode
}

// NewGeocodePolicy reads the policy from configuration.
func NewGeocodePolicy(cfg *config.Config) GeocodePolicy {
	p := config.GeocodePolicyConfig{}
	if cfg != nil && cfg.Geocode != nil {
		p = cfg.Geocode.Policy
	}
	p = withPolicyDefaults(p)

	return GeocodePolicy{
		IndividualCreate:   GeocodeMode(p.IndividualCreate),
		OrganizationCreate: GeocodeMode(p.OrganizationCreate),
		Update:             GeocodeMode(p.Update),
	}
}

func withPolicyDefaults(p config.GeocodePolicyConfig) config.GeocodePolicyConfig {
	if p.IndividualCreate == "" {
		p.IndividualCreate = config.GeocodePolicySoft
	}
	if p.OrganizationCreate == "" {
		p.OrganizationCreate = config.GeocodePolicyStrict
	}
	if p.Update == "" {
		p.Update = config.GeocodePolicySoft
	}

	return p
}

// resolveCoordinates looks postalCode up and applies mode to the outcome.
// A nil point with a nil error means the lookup failed softly.
func resolveCoordinates(ctx context.Context, geocoder service.Geocoder, mode GeocodeMode, postalCode string, logger *slog.Logger) (*orb.Point, error) {
	result := geocoder.Resolve(ctx, postalCode)

	switch result.Status {
	case service.GeocodeResolved:
		point := result.Point

		return &point, nil
	case service.GeocodeUnresolvable:
		if mode == GeocodeStrict {
			return nil, domainerrors.SingleFieldError(validation.FieldPostalCode, validation.MsgPostalCodeUnresolvable)
		}
		logger.Warn("Postal code could not be resolved, continuing without coordinates",
			slog.String("postalCode", postalCode))

		return nil, nil
	default:
		if mode == GeocodeStrict {
			return nil, domainerrors.NewExternalServiceError(validation.FieldPostalCode, validation.MsgPostalCodeUnresolvable, result.Err)
		}
		logger.Warn("Geocode provider failed, continuing without coordinates",
			slog.String("postalCode", postalCode),
			slog.Any("error", result.Err))

		return nil, nil
	}
}
