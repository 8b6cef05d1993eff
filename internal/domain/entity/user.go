// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// User is a marketplace account. Only the fields this service reads or writes are modelled.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Name         string       // The user's display name.
	Email        string       // The user's primary contact email.
	ProfileImage string       // Avatar URL, shown in seller summaries.
	Rating       float64      // Average seller rating.
	Location     UserLocation // The user's home location, empty until first set.
	CreatedAt    time.Time    // Timestamp of when this user account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this user's data.
}

// UserLocation is the location embedded in a user record.
type UserLocation struct {
	FormattedAddress string     `json:"formattedAddress"`
	Address          *Address   `json:"address,omitempty"`
	Coordinates      *orb.Point `json:"-"`
}

// LocationFields returns the location as generic location fields.
func (l UserLocation) LocationFields() LocationFields {
	return LocationFields{
		Label:       l.FormattedAddress,
		Address:     l.Address,
		Coordinates: l.Coordinates,
	}
}

// UserLocationFrom converts generic location fields into a user location.
func UserLocationFrom(l LocationFields) UserLocation {
	return UserLocation{
		FormattedAddress: l.Label,
		Address:          l.Address,
		Coordinates:      l.Coordinates,
	}
}
