// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the catalog operations the location features need.
type ProductRepository interface {
	// FindProductByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if it does not exist.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindNearby returns available, unsold products with coordinates inside the filter radius,
	// nearest first, with seller and category summaries populated, plus the total match count
	// ignoring Offset and Limit.
	FindNearby(ctx context.Context, filter entity.NearbyFilter) ([]*entity.NearbyProduct, int64, error)

	// PopularLocations groups available, unsold products by their location label and returns
	// the largest groups first, at most limit of them. Empty labels are not counted.
	PopularLocations(ctx context.Context, limit int) ([]entity.PopularLocation, error)

	// UpdateProductLocation overwrites only the location fields of a product.
	// Returns ErrProductNotFound if it does not exist.
	UpdateProductLocation(ctx context.Context, id uuid.UUID, location entity.LocationFields) error
}
