package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// SortDistance is the only ordering proximity queries support
const SortDistance = "distance"

// SearchFilters are the filter and paging options shared by proximity queries.
// Nil pointers mean "not supplied" and fall back to configured defaults.
type SearchFilters struct {
	RadiusKm  *float64
	Category  string
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
	Sort      string
	Page      *int
	Limit     *int
}

// NearbyInput represents a proximity query around a point
type NearbyInput struct {
	Lat *float64
	Lng *float64
	SearchFilters
}

// NearbyPage is one page of proximity results
type NearbyPage struct {
	Items     []*entity.NearbyProduct
	Total     int64
	Page      int
	PageSize  int
	PageCount int
}

// ResolvedCenter is the geocoded center of a search by location name
type ResolvedCenter struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
}

// LocationSearchResult is a proximity page around a geocoded place
type LocationSearchResult struct {
	*NearbyPage
	Center ResolvedCenter
}

// ProximityUsecase defines the proximity query engine
type ProximityUsecase interface {
	// FindNearby returns available, unsold products around a point, nearest first
	FindNearby(ctx context.Context, input *NearbyInput) (*NearbyPage, error)

	// SearchByLocation geocodes a place name and runs FindNearby around it
	SearchByLocation(ctx context.Context, location string, filters *SearchFilters) (*LocationSearchResult, error)

	// PopularLocations returns the most common location labels of discoverable products
	PopularLocations(ctx context.Context) ([]entity.PopularLocation, error)
}
