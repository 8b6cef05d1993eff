package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductLocationResult is the outcome of a product location update
type ProductLocationResult = entity.LocationUpdateResult[*entity.Product]

// UserLocationResult is the outcome of a user location update
type UserLocationResult = entity.LocationUpdateResult[entity.UserLocation]

// LocationUsecase defines the location update workflow
type LocationUsecase interface {
	// UpdateProductLocation merges the payload into a product owned by requesterID
	UpdateProductLocation(ctx context.Context, productID, requesterID uuid.UUID, raw entity.RawLocation) (*ProductLocationResult, error)

	// UpdateUserLocation merges the payload into the user's own location
	UpdateUserLocation(ctx context.Context, userID uuid.UUID, raw entity.RawLocation) (*UserLocationResult, error)
}
