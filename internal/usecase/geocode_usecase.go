package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// GeocodeUsecase exposes the geocoding adapter to clients
type GeocodeUsecase interface {
	// Geocode resolves an address to coordinates
	Geocode(ctx context.Context, address string) (*entity.GeocodeResult, error)

	// ReverseGeocode resolves coordinates to an address
	ReverseGeocode(ctx context.Context, lat, lng *float64) (*entity.GeocodeResult, error)
}
