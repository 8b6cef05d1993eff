package handler

import (
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CoordinatesResponse is a point in the API's lat/lng form
type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func toCoordinates(p *orb.Point) *CoordinatesResponse {
	if p == nil {
		return nil
	}

	return &CoordinatesResponse{Lat: p.Lat(), Lng: p.Lon()}
}

// ProductResponse is the API representation of a catalog item
type ProductResponse struct {
	ID           uuid.UUID            `json:"id"`
	Title        string               `json:"title"`
	Category     string               `json:"category"`
	Price        float64              `json:"price"`
	Description  string               `json:"description,omitempty"`
	Condition    entity.Condition     `json:"condition"`
	Location     string               `json:"location"`
	Address      *entity.Address      `json:"address,omitempty"`
	Coordinates  *CoordinatesResponse `json:"coordinates,omitempty"`
	IsAvailable  bool                 `json:"isAvailable"`
	IsSold       bool                 `json:"isSold"`
	IsNegotiable bool                 `json:"isNegotiable"`
	SellerID     uuid.UUID            `json:"sellerId"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		Category:     p.Category,
		Price:        p.Price,
		Description:  p.Description,
		Condition:    p.Condition,
		Location:     p.Location,
		Address:      p.Address,
		Coordinates:  toCoordinates(p.Coordinates),
		IsAvailable:  p.IsAvailable,
		IsSold:       p.IsSold,
		IsNegotiable: p.IsNegotiable,
		SellerID:     p.SellerID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NearbyProductResponse is a proximity hit with its populated relations
type NearbyProductResponse struct {
	ProductResponse
	Seller          *entity.SellerSummary   `json:"seller,omitempty"`
	CategoryDetails *entity.CategorySummary `json:"categoryDetails,omitempty"`
	Distance        float64                 `json:"distance"`
}

func toNearbyResponses(items []*entity.NearbyProduct) []NearbyProductResponse {
	out := make([]NearbyProductResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NearbyProductResponse{
			ProductResponse: toProductResponse(&item.Product),
			Seller:          item.Seller,
			CategoryDetails: item.CategoryDetail,
			Distance:        item.Distance,
		})
	}

	return out
}

// LocationSearchResponse is the body of /search
type LocationSearchResponse struct {
	Center   usecase.ResolvedCenter  `json:"center"`
	Products []NearbyProductResponse `json:"products"`
}

// GeocodeResponse is a geocode result in the API's form
type GeocodeResponse struct {
	Lat              float64         `json:"lat"`
	Lng              float64         `json:"lng"`
	FormattedAddress string          `json:"formattedAddress"`
	Address          *entity.Address `json:"address,omitempty"`
}

func toGeocodeResponse(r *entity.GeocodeResult) GeocodeResponse {
	return GeocodeResponse{
		Lat:              r.Coordinates.Lat(),
		Lng:              r.Coordinates.Lon(),
		FormattedAddress: r.FormattedAddress,
		Address:          r.Address,
	}
}

// UserLocationResponse is the API representation of a user's location
type UserLocationResponse struct {
	FormattedAddress string               `json:"formattedAddress"`
	Address          *entity.Address      `json:"address,omitempty"`
	Coordinates      *CoordinatesResponse `json:"coordinates,omitempty"`
}

func toUserLocationResponse(l entity.UserLocation) UserLocationResponse {
	return UserLocationResponse{
		FormattedAddress: l.FormattedAddress,
		Address:          l.Address,
		Coordinates:      toCoordinates(l.Coordinates),
	}
}
