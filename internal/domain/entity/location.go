package entity

import (
	"strings"

	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrLocationRequired is returned when an update carries neither coordinates nor an address.
var ErrLocationRequired = errors.New("either coordinates or address required")

// LocationFields are the location attributes shared by products and users.
// Label is the product's location string or the user's formatted address.
type LocationFields struct {
	Label       string
	Address     *Address
	Coordinates *orb.Point
}

// RawLocation is a location update payload as decoded from a request.
type RawLocation struct {
	Address        *Address // Structured address, when sent as an object.
	AddressText    string   // Address sent as a plain string.
	Lat            *float64
	Lng            *float64
	LocationString string
	Invalid        string // Why the payload could not be decoded, if it could not.
}

// LocationInput is a normalized location update. It is one of
// CoordinatesInput, AddressInput or FreeTextInput.
type LocationInput interface {
	isLocationInput()
}

// CoordinatesInput carries explicit coordinates with an optional address.
type CoordinatesInput struct {
	Point   orb.Point
	Address *Address
	Label   string
}

// AddressInput carries a structured address that must be forward geocoded.
type AddressInput struct {
	Address Address
	Label   string
}

// FreeTextInput carries a free-text location that must be forward geocoded.
type FreeTextInput struct {
	Text string
}

func (CoordinatesInput) isLocationInput() {}
func (AddressInput) isLocationInput()     {}
func (FreeTextInput) isLocationInput()    {}

// Normalize turns the raw payload into exactly one LocationInput variant.
// Coordinates win when both lat and lng are present; a lone lat or lng is ignored.
func (r RawLocation) Normalize() (LocationInput, error) {
	if r.Invalid != "" {
		return nil, errors.New(r.Invalid)
	}

	label := strings.TrimSpace(r.LocationString)
	if label == "" {
		label = strings.TrimSpace(r.AddressText)
	}

	var address *Address
	if r.Address != nil && !r.Address.IsZero() {
		a := *r.Address
		address = &a
	}

	if r.Lat != nil && r.Lng != nil {
		p, err := NewPoint(*r.Lat, *r.Lng)
		if err != nil {
			return nil, err
		}

		return CoordinatesInput{Point: p, Address: address, Label: label}, nil
	}

	if address != nil {
		return AddressInput{Address: *address, Label: label}, nil
	}

	if label != "" {
		return FreeTextInput{Text: label}, nil
	}

	return nil, ErrLocationRequired
}

// Enrichment reports what happened to the optional reverse geocode of an update.
type Enrichment string

const (
	// EnrichmentNotNeeded means the request already carried an address or was geocoded forward.
	EnrichmentNotNeeded Enrichment = "not_needed"
	// EnrichmentApplied means reverse geocoding filled in the address.
	EnrichmentApplied Enrichment = "applied"
	// EnrichmentSkipped means reverse geocoding failed and the address was left as it was.
	EnrichmentSkipped Enrichment = "skipped"
)

// LocationUpdateResult is the outcome of a location update.
type LocationUpdateResult[T any] struct {
	Record     T
	Enrichment Enrichment
	// EnrichmentErr is the swallowed reverse geocode error when Enrichment is skipped.
	EnrichmentErr error
}

// Subject types of a location change event.
const (
	SubjectProduct = "product"
	SubjectUser    = "user"
)

// LocationUpdatedEvent is published after a location has been persisted.
type LocationUpdatedEvent struct {
	SubjectType string    `json:"subjectType"`
	SubjectID   uuid.UUID `json:"subjectId"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Label       string    `json:"label"`
	RequestID   string    `json:"requestId,omitempty"`
}
