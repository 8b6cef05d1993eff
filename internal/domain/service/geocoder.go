package service

import (
	"context"

	"bazaar/internal/domain/entity"
)

// Geocoder translates between free-text addresses and coordinates.
//
// Implementations return errors matching domainerrors.ErrGeocodeFailed when the provider
// answered but could not resolve the input, and domainerrors.ErrProviderUnavailable when
// the provider could not be reached.
type Geocoder interface {
	// Forward resolves an address to coordinates.
	Forward(ctx context.Context, address string) (*entity.GeocodeResult, error)

	// Reverse resolves coordinates to an address.
	Reverse(ctx context.Context, lat, lng float64) (*entity.GeocodeResult, error)
}
