package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeocodeStatus classifies the outcome of a postal code lookup.
type GeocodeStatus int

const (
	// GeocodeResolved means the provider returned coordinates.
	GeocodeResolved GeocodeStatus = iota
	// GeocodeUnresolvable means the provider answered but has no coordinates for the code.
	GeocodeUnresolvable
	// GeocodeProviderFailure means the provider could not be reached or kept failing.
	GeocodeProviderFailure
)

func (s GeocodeStatus) String() string {
	switch s {
	case GeocodeResolved:
		return "resolved"
	case GeocodeUnresolvable:
		return "unresolvable"
	case GeocodeProviderFailure:
		return "provider_failure"
	default:
		return "unknown"
	}
}

// GeocodeResult is the outcome of a lookup. Point is set only when Status is GeocodeResolved.
type GeocodeResult struct {
	Status GeocodeStatus
	Point  orb.Point
	Err    error // cause of a provider failure
}

// Resolved builds a successful result.
func Resolved(p orb.Point) GeocodeResult {
	return GeocodeResult{Status: GeocodeResolved, Point: p}
}

// Unresolvable builds a result for a code the provider does not know.
func Unresolvable() GeocodeResult {
	return GeocodeResult{Status: GeocodeUnresolvable}
}

// ProviderFailure builds a result for a lookup that could not complete.
func ProviderFailure(err error) GeocodeResult {
	return GeocodeResult{Status: GeocodeProviderFailure, Err: err}
}

// Geocoder resolves a postal code to coordinates. Implementations never return
// an error; every failure mode is expressed in the result status.
type Geocoder interface {
	Resolve(ctx context.Context, postalCode string) GeocodeResult
}
