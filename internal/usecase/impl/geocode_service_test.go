package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockService "bazaar/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeService_Geocode(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	service := NewGeocodeService(geocoder, newDiscardLogger())
	ctx := context.Background()
	want := &entity.GeocodeResult{
		Coordinates:      orb.Point{-122.0842, 37.4224},
		FormattedAddress: "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
	}

	geocoder.EXPECT().Forward(ctx, "1600 Amphitheatre Parkway, Mountain View, CA").Return(want, nil)

	got, err := service.Geocode(ctx, "  1600 Amphitheatre Parkway, Mountain View, CA ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGeocodeService_Geocode_Errors(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	service := NewGeocodeService(geocoder, newDiscardLogger())
	ctx := context.Background()

	_, err := service.Geocode(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	geocoder.EXPECT().Forward(ctx, "somewhere").Return(nil, domainerrors.ErrProviderUnavailable)

	_, err = service.Geocode(ctx, "somewhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestGeocodeService_ReverseGeocode(t *testing.T) {
	geocoder := mockService.NewMockGeocoder(t)
	service := NewGeocodeService(geocoder, newDiscardLogger())
	ctx := context.Background()
	want := &entity.GeocodeResult{
		Coordinates:      orb.Point{-122.0842, 37.4224},
		FormattedAddress: "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
	}

	geocoder.EXPECT().Reverse(ctx, 37.4224, -122.0842).Return(want, nil)

	got, err := service.ReverseGeocode(ctx, floatPtr(37.4224), floatPtr(-122.0842))
	require.NoError(t, err)
	assert.Contains(t, got.FormattedAddress, "Mountain View")
}

func TestGeocodeService_ReverseGeocode_Validation(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng *float64
	}{
		{name: "missing lat", lng: floatPtr(1)},
		{name: "missing lng", lat: floatPtr(1)},
		{name: "longitude out of range", lat: floatPtr(10), lng: floatPtr(181)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewGeocodeService(mockService.NewMockGeocoder(t), newDiscardLogger())

			_, err := service.ReverseGeocode(context.Background(), tt.lat, tt.lng)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
