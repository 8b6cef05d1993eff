package entity

import "github.com/paulmach/orb"

// GeocodeResult is what the geocoding provider resolved for an address or a point.
type GeocodeResult struct {
	Coordinates      orb.Point
	FormattedAddress string
	// Address holds the structured components when the provider returned any.
	Address *Address
}

// Label returns the short "city, state, country" label of the result, or "".
func (r GeocodeResult) Label() string {
	if r.Address == nil {
		return ""
	}

	return r.Address.ShortLabel()
}
