package entity

import (
	"bazaar/internal/errors"

	"github.com/paulmach/orb"
)

// ErrInvalidCoordinates is returned when a latitude/longitude pair is outside WGS84 bounds.
var ErrInvalidCoordinates = errors.New("latitude must be within [-90, 90] and longitude within [-180, 180]")

// NewPoint builds an orb.Point ([lng, lat]) after validating both ranges.
func NewPoint(lat, lng float64) (orb.Point, error) {
	p := orb.Point{lng, lat}
	if !ValidPoint(p) {
		return orb.Point{}, ErrInvalidCoordinates
	}

	return p, nil
}

// ValidPoint reports whether p is a valid [lng, lat] pair.
func ValidPoint(p orb.Point) bool {
	lng, lat := p.Lon(), p.Lat()

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// KmToMeters converts a radius in kilometers to meters.
func KmToMeters(km float64) float64 {
	return km * 1000
}
