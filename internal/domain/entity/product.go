package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Condition is the physical state a seller declares for a product.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
	ConditionUsed    Condition = "Used"
)

var conditions = []Condition{ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionUsed}

// ParseCondition matches s case-insensitively against the known conditions.
func ParseCondition(s string) (Condition, bool) {
	s = strings.TrimSpace(s)
	for _, c := range conditions {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}

	return "", false
}

// Product is a catalog item listed by a student seller.
type Product struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the product.
	Title        string     // Listing title.
	Category     string     // Free-text category key, resolved against the categories table for display.
	Price        float64    // Asking price, never negative.
	Description  string     // Long-form description.
	Condition    Condition  // Declared condition.
	Location     string     // Human readable location label, e.g. "Koramangala, Bangalore".
	Address      *Address   // Structured address. Nil when unknown.
	Coordinates  *orb.Point // [lng, lat]. Nil items never appear in proximity results.
	IsAvailable  bool       // Listed and visible.
	IsSold       bool       // Sold items are excluded from discovery.
	IsNegotiable bool       // Seller accepts offers.
	SellerID     uuid.UUID  // Owner of the listing.
	CreatedAt    time.Time  // Timestamp of when this product was listed.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}

// LocationFields returns the location fields of the product.
func (p *Product) LocationFields() LocationFields {
	return LocationFields{
		Label:       p.Location,
		Address:     p.Address,
		Coordinates: p.Coordinates,
	}
}

// ApplyLocation overwrites the location fields of the product.
func (p *Product) ApplyLocation(l LocationFields) {
	p.Location = l.Label
	p.Address = l.Address
	p.Coordinates = l.Coordinates
}

// SellerSummary is the read-side projection of a product's seller.
type SellerSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Rating       float64   `json:"rating"`
}

// CategorySummary is the read-side projection of a product's category.
type CategorySummary struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NearbyProduct is a proximity query hit: the product, its populated relations
// and the distance in meters from the query center.
type NearbyProduct struct {
	Product
	Seller         *SellerSummary
	CategoryDetail *CategorySummary
	Distance       float64
}

// NearbyFilter is the store-level form of a proximity query.
type NearbyFilter struct {
	Center       orb.Point
	RadiusMeters float64
	Category     string
	Condition    Condition
	MinPrice     *float64
	MaxPrice     *float64
	Offset       int
	Limit        int
}

// PopularLocation is one bucket of the popular locations aggregate.
type PopularLocation struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}
