// Package entity contains the core business objects of the project.
package entity

import "strings"

// Address is a structured postal address attached to a product or a user.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}

// IsZero reports whether no field is set.
func (a Address) IsZero() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.State) == "" &&
		strings.TrimSpace(a.Country) == "" &&
		strings.TrimSpace(a.Zipcode) == ""
}

// ShortLabel composes "city, state, country", skipping empty parts.
func (a Address) ShortLabel() string {
	return joinNonEmpty(a.City, a.State, a.Country)
}

// FullAddress composes every non-empty field into a single geocodable query.
func (a Address) FullAddress() string {
	return joinNonEmpty(a.Street, a.City, a.State, a.Zipcode, a.Country)
}

// ParseFreeText splits a comma separated location string into address parts.
// It never fails; missing segments stay empty.
//
//	"Bangalore"                              -> city
//	"Bangalore, India"                       -> city, country
//	"Bangalore, Karnataka, India"            -> city, state, country
//	"12 MG Road, Bangalore, Karnataka, India" -> street, city, state, country
func ParseFreeText(text string) Address {
	var segments []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}

	switch len(segments) {
	case 0:
		return Address{}
	case 1:
		return Address{City: segments[0]}
	case 2:
		return Address{City: segments[0], Country: segments[1]}
	case 3:
		return Address{City: segments[0], State: segments[1], Country: segments[2]}
	default:
		n := len(segments)

		return Address{
			Street:  strings.Join(segments[:n-3], ", "),
			City:    segments[n-3],
			State:   segments[n-2],
			Country: segments[n-1],
		}
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ", ")
}
