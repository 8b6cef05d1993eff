package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFreeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Address
	}{
		{name: "empty", in: "", want: Address{}},
		{name: "only separators", in: " , ,", want: Address{}},
		{name: "city", in: "Bangalore", want: Address{City: "Bangalore"}},
		{name: "city and country", in: "Bangalore, India", want: Address{City: "Bangalore", Country: "India"}},
		{
			name: "city state country",
			in:   " Bangalore ,Karnataka,  India ",
			want: Address{City: "Bangalore", State: "Karnataka", Country: "India"},
		},
		{
			name: "leading segments become street",
			in:   "12, MG Road, Bangalore, Karnataka, India",
			want: Address{Street: "12, MG Road", City: "Bangalore", State: "Karnataka", Country: "India"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFreeText(tt.in))
		})
	}
}

func TestAddress_Labels(t *testing.T) {
	a := Address{Street: "1600 Amphitheatre Parkway", City: "Mountain View", State: "CA", Country: "USA", Zipcode: "94043"}

	assert.Equal(t, "Mountain View, CA, USA", a.ShortLabel())
	assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, CA, 94043, USA", a.FullAddress())
	assert.Equal(t, "Mountain View, USA", Address{City: "Mountain View", Country: "USA"}.ShortLabel())
	assert.True(t, Address{Street: "  "}.IsZero())
	assert.False(t, a.IsZero())
}
