package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

type geocodeService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewGeocodeService creates a new geocode service instance
func NewGeocodeService(geocoder service.Geocoder, logger *slog.Logger) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode resolves an address to coordinates. Provider failures surface as validation errors.
func (s *geocodeService) Geocode(ctx context.Context, address string) (*entity.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.NewValidationError("address is required")
	}

	result, err := s.geocoder.Forward(ctx, address)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Geocoding failed",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewValidationError("could not geocode address").WithDetails(err.Error())
	}

	return result, nil
}

// ReverseGeocode resolves coordinates to an address
func (s *geocodeService) ReverseGeocode(ctx context.Context, lat, lng *float64) (*entity.GeocodeResult, error) {
	if lat == nil || lng == nil {
		return nil, domainerrors.NewValidationError("lat and lng are required")
	}

	point, err := entity.NewPoint(*lat, *lng)
	if err != nil {
		return nil, domainerrors.NewValidationError(err.Error())
	}

	result, err := s.geocoder.Reverse(ctx, point.Lat(), point.Lon())
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Reverse geocoding failed",
			slog.Float64("lat", point.Lat()),
			slog.Float64("lng", point.Lon()),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewValidationError("could not reverse geocode coordinates").WithDetails(err.Error())
	}

	return result, nil
}
