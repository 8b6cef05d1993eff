package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/infra/metrics"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
)

// Location sources reported in metrics
const (
	sourceCoordinates = "coordinates"
	sourceAddress     = "address"
	sourceText        = "text"
)

type locationService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	geocoder    service.Geocoder
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewLocationService creates a new location update service instance
func NewLocationService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	geocoder service.Geocoder,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		productRepo: productRepo,
		userRepo:    userRepo,
		geocoder:    geocoder,
		publisher:   publisher,
		logger:      logger,
	}
}

// resolution is the merged location plus how it was obtained.
type resolution struct {
	fields        entity.LocationFields
	source        string
	enrichment    entity.Enrichment
	enrichmentErr error
}

func (s *locationService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// UpdateProductLocation updates the location of a product owned by the requester
func (s *locationService) UpdateProductLocation(
	ctx context.Context,
	productID, requesterID uuid.UUID,
	raw entity.RawLocation,
) (*usecase.ProductLocationResult, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	// Ownership is checked before the payload is validated.
	if product.SellerID != requesterID {
		return nil, domainerrors.ErrProductOwnershipViolation
	}

	input, err := normalizeLocation(raw)
	if err != nil {
		return nil, err
	}

	res, err := s.resolve(ctx, entity.SubjectProduct, product.LocationFields(), input)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.UpdateProductLocation(ctx, productID, res.fields); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to update product location: %w", err)
	}
	product.ApplyLocation(res.fields)

	s.afterUpdate(ctx, entity.SubjectProduct, productID, res)

	return &usecase.ProductLocationResult{
		Record:        product,
		Enrichment:    res.enrichment,
		EnrichmentErr: res.enrichmentErr,
	}, nil
}

// UpdateUserLocation updates the embedded location of a user
func (s *locationService) UpdateUserLocation(
	ctx context.Context,
	userID uuid.UUID,
	raw entity.RawLocation,
) (*usecase.UserLocationResult, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	input, err := normalizeLocation(raw)
	if err != nil {
		return nil, err
	}

	res, err := s.resolve(ctx, entity.SubjectUser, user.Location.LocationFields(), input)
	if err != nil {
		return nil, err
	}

	location := entity.UserLocationFrom(res.fields)
	if err := s.userRepo.UpdateUserLocation(ctx, userID, location); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to update user location: %w", err)
	}

	s.afterUpdate(ctx, entity.SubjectUser, userID, res)

	return &usecase.UserLocationResult{
		Record:        location,
		Enrichment:    res.enrichment,
		EnrichmentErr: res.enrichmentErr,
	}, nil
}

func normalizeLocation(raw entity.RawLocation) (entity.LocationInput, error) {
	input, err := raw.Normalize()
	if err != nil {
		return nil, domainerrors.NewValidationError(err.Error())
	}

	return input, nil
}

// resolve runs the three-branch merge. Only a forward geocode failure is fatal;
// a reverse geocode failure is reported through the enrichment fields.
func (s *locationService) resolve(
	ctx context.Context,
	subject string,
	current entity.LocationFields,
	input entity.LocationInput,
) (*resolution, error) {
	switch in := input.(type) {
	case entity.CoordinatesInput:
		return s.resolveCoordinates(ctx, subject, current, in), nil

	case entity.AddressInput:
		geo, err := s.forward(ctx, in.Address.FullAddress())
		if err != nil {
			return nil, err
		}

		address := in.Address
		label := firstNonEmpty(in.Label, address.ShortLabel())
		if subject == entity.SubjectUser {
			label = firstNonEmpty(geo.FormattedAddress, in.Label, address.FullAddress())
		}

		return &resolution{
			fields:     entity.LocationFields{Label: label, Address: &address, Coordinates: &geo.Coordinates},
			source:     sourceAddress,
			enrichment: entity.EnrichmentNotNeeded,
		}, nil

	case entity.FreeTextInput:
		geo, err := s.forward(ctx, in.Text)
		if err != nil {
			return nil, err
		}

		address := entity.ParseFreeText(in.Text)
		label := in.Text
		if subject == entity.SubjectUser {
			label = firstNonEmpty(geo.FormattedAddress, in.Text)
		}

		return &resolution{
			fields:     entity.LocationFields{Label: label, Address: &address, Coordinates: &geo.Coordinates},
			source:     sourceText,
			enrichment: entity.EnrichmentNotNeeded,
		}, nil
	}

	return nil, domainerrors.NewValidationError(entity.ErrLocationRequired.Error())
}

func (s *locationService) resolveCoordinates(
	ctx context.Context,
	subject string,
	current entity.LocationFields,
	in entity.CoordinatesInput,
) *resolution {
	point := in.Point
	res := &resolution{
		fields: entity.LocationFields{
			Label:       current.Label,
			Address:     current.Address,
			Coordinates: &point,
		},
		source: sourceCoordinates,
	}

	if in.Address != nil {
		res.fields.Address = in.Address
		res.fields.Label = firstNonEmpty(in.Label, in.Address.ShortLabel())
		if subject == entity.SubjectUser {
			res.fields.Label = firstNonEmpty(in.Label, in.Address.FullAddress())
		}
		res.enrichment = entity.EnrichmentNotNeeded

		return res
	}

	geo, err := s.geocoder.Reverse(ctx, point.Lat(), point.Lon())
	if err != nil {
		s.getLogger(ctx).Warn("Reverse geocoding failed, keeping previous address",
			slog.String("subject", subject),
			slog.Float64("lat", point.Lat()),
			slog.Float64("lng", point.Lon()),
			slog.Any("error", err),
		)
		res.enrichment = entity.EnrichmentSkipped
		res.enrichmentErr = err

		return res
	}

	if geo.Address != nil {
		res.fields.Address = geo.Address
	}
	res.fields.Label = firstNonEmpty(geo.Label(), in.Label, current.Label)
	if subject == entity.SubjectUser {
		res.fields.Label = firstNonEmpty(geo.FormattedAddress, in.Label, current.Label)
	}
	res.enrichment = entity.EnrichmentApplied

	return res
}

func (s *locationService) forward(ctx context.Context, query string) (*entity.GeocodeResult, error) {
	geo, err := s.geocoder.Forward(ctx, query)
	if err != nil {
		s.getLogger(ctx).Warn("Forward geocoding failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewValidationError("could not geocode address").WithDetails(err.Error())
	}
	if !entity.ValidPoint(geo.Coordinates) {
		return nil, domainerrors.NewValidationError("could not geocode address").
			WithDetails("provider returned invalid coordinates")
	}

	return geo, nil
}

// afterUpdate records the update and announces it. Publishing never fails the request.
func (s *locationService) afterUpdate(ctx context.Context, subject string, id uuid.UUID, res *resolution) {
	metrics.RecordLocationUpdate(subject, res.source, string(res.enrichment))

	logger := s.getLogger(ctx)
	logger.Info("Location updated",
		slog.String("subject", subject),
		slog.String("id", id.String()),
		slog.String("source", res.source),
		slog.String("enrichment", string(res.enrichment)),
	)

	if s.publisher == nil {
		return
	}

	point := res.fields.Coordinates
	event := &entity.LocationUpdatedEvent{
		SubjectType: subject,
		SubjectID:   id,
		Lat:         point.Lat(),
		Lng:         point.Lon(),
		Label:       res.fields.Label,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := s.publisher.PublishLocationUpdated(ctx, event); err != nil {
		metrics.EventPublishFailures.Inc()
		logger.Error("Failed to publish location updated event",
			slog.String("subject", subject),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
