package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/paulmach/orb"
)

type proximityService struct {
	productRepo repository.ProductRepository
	geocoder    service.Geocoder
	search      *config.SearchConfig
	logger      *slog.Logger
}

// NewProximityService creates a new proximity query service
func NewProximityService(
	productRepo repository.ProductRepository,
	geocoder service.Geocoder,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProximityUsecase {
	search := cfg.Search
	if search == nil {
		search = &config.SearchConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     100,
			DefaultPageSize: 10,
			MaxPageSize:     100,
			PopularLimit:    10,
		}
	}

	return &proximityService{
		productRepo: productRepo,
		geocoder:    geocoder,
		search:      search,
		logger:      logger,
	}
}

func (s *proximityService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FindNearby returns discoverable products around the given point
func (s *proximityService) FindNearby(ctx context.Context, input *usecase.NearbyInput) (*usecase.NearbyPage, error) {
	if input == nil || input.Lat == nil || input.Lng == nil {
		return nil, domainerrors.NewValidationError("lat and lng are required")
	}

	center, err := entity.NewPoint(*input.Lat, *input.Lng)
	if err != nil {
		return nil, domainerrors.NewValidationError(err.Error())
	}

	return s.findAround(ctx, center, &input.SearchFilters)
}

// SearchByLocation geocodes the place name and searches around the result
func (s *proximityService) SearchByLocation(
	ctx context.Context,
	location string,
	filters *usecase.SearchFilters,
) (*usecase.LocationSearchResult, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domainerrors.NewValidationError("location is required")
	}
	if filters == nil {
		filters = &usecase.SearchFilters{}
	}

	// Reject bad filters before spending a provider call.
	if _, err := s.buildFilter(orb.Point{}, filters); err != nil {
		return nil, err
	}

	geo, err := s.geocoder.Forward(ctx, location)
	if err != nil {
		s.getLogger(ctx).Warn("Failed to geocode search location",
			slog.String("location", location),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewValidationError("could not geocode location").WithDetails(err.Error())
	}

	page, err := s.findAround(ctx, geo.Coordinates, filters)
	if err != nil {
		return nil, err
	}

	return &usecase.LocationSearchResult{
		NearbyPage: page,
		Center: usecase.ResolvedCenter{
			Lat:              geo.Coordinates.Lat(),
			Lng:              geo.Coordinates.Lon(),
			FormattedAddress: geo.FormattedAddress,
		},
	}, nil
}

// PopularLocations returns the most common location labels
func (s *proximityService) PopularLocations(ctx context.Context) ([]entity.PopularLocation, error) {
	locations, err := s.productRepo.PopularLocations(ctx, s.search.PopularLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular locations: %w", err)
	}
	if locations == nil {
		locations = []entity.PopularLocation{}
	}

	return locations, nil
}

func (s *proximityService) findAround(
	ctx context.Context,
	center orb.Point,
	filters *usecase.SearchFilters,
) (*usecase.NearbyPage, error) {
	filter, err := s.buildFilter(center, filters)
	if err != nil {
		return nil, err
	}

	items, total, err := s.productRepo.FindNearby(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby products: %w", err)
	}
	if items == nil {
		items = []*entity.NearbyProduct{}
	}

	page := filter.Offset/filter.Limit + 1

	return &usecase.NearbyPage{
		Items:     items,
		Total:     total,
		Page:      page,
		PageSize:  filter.Limit,
		PageCount: util.PageCount(total, filter.Limit),
	}, nil
}

// buildFilter validates the request filters and applies configured defaults.
func (s *proximityService) buildFilter(center orb.Point, f *usecase.SearchFilters) (entity.NearbyFilter, error) {
	radiusKm := s.search.DefaultRadiusKm
	if f.RadiusKm != nil {
		radiusKm = *f.RadiusKm
	}
	if !finite(radiusKm) || radiusKm <= 0 || radiusKm > s.search.MaxRadiusKm {
		return entity.NearbyFilter{}, domainerrors.NewValidationError(
			fmt.Sprintf("radius must be greater than 0 and at most %g km", s.search.MaxRadiusKm))
	}

	var condition entity.Condition
	if strings.TrimSpace(f.Condition) != "" {
		c, ok := entity.ParseCondition(f.Condition)
		if !ok {
			return entity.NearbyFilter{}, domainerrors.NewValidationError("unknown condition: " + f.Condition)
		}
		condition = c
	}

	if (f.MinPrice != nil && !finite(*f.MinPrice)) || (f.MaxPrice != nil && !finite(*f.MaxPrice)) {
		return entity.NearbyFilter{}, domainerrors.NewValidationError("price bounds must be finite numbers")
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return entity.NearbyFilter{}, domainerrors.NewValidationError("minPrice must not be negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return entity.NearbyFilter{}, domainerrors.NewValidationError("maxPrice must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return entity.NearbyFilter{}, domainerrors.NewValidationError("minPrice must not exceed maxPrice")
	}

	if f.Sort != "" && f.Sort != usecase.SortDistance {
		return entity.NearbyFilter{}, domainerrors.NewValidationError("unsupported sort: " + f.Sort)
	}

	page := 1
	if f.Page != nil {
		page = *f.Page
	}
	if page < 1 {
		return entity.NearbyFilter{}, domainerrors.NewValidationError("page must be at least 1")
	}

	limit := s.search.DefaultPageSize
	if f.Limit != nil {
		limit = *f.Limit
	}
	if limit < 1 || limit > s.search.MaxPageSize {
		return entity.NearbyFilter{}, domainerrors.NewValidationError(
			fmt.Sprintf("limit must be between 1 and %d", s.search.MaxPageSize))
	}
	if page > maxPage(limit) {
		return entity.NearbyFilter{}, domainerrors.NewValidationError(
			fmt.Sprintf("page must be at most %d", maxPage(limit)))
	}

	return entity.NearbyFilter{
		Center:       center,
		RadiusMeters: entity.KmToMeters(radiusKm),
		Category:     strings.TrimSpace(f.Category),
		Condition:    condition,
		MinPrice:     f.MinPrice,
		MaxPrice:     f.MaxPrice,
		Offset:       util.PageOffset(page, limit),
		Limit:        limit,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// maxPage is the largest page whose row offset fits in an int32 at the given limit.
func maxPage(limit int) int {
	return math.MaxInt32/limit + 1
}
