package impl

import (
	"context"
	"errors"
	"math"
	"sort"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type proximityServiceFixture struct {
	service     usecase.ProximityUsecase
	productRepo *mockRepo.MockProductRepository
	geocoder    *mockService.MockGeocoder
}

func createTestProximityService(t *testing.T) *proximityServiceFixture {
	t.Helper()

	f := &proximityServiceFixture{
		productRepo: mockRepo.NewMockProductRepository(t),
		geocoder:    mockService.NewMockGeocoder(t),
	}
	f.service = NewProximityService(f.productRepo, f.geocoder, newTestConfig(), newDiscardLogger())

	return f
}

func intPtr(v int) *int { return &v }

func TestProximityService_FindNearby_Defaults(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()
	items := []*entity.NearbyProduct{{Product: entity.Product{ID: uuid.New()}, Distance: 120}}

	f.productRepo.EXPECT().
		FindNearby(ctx, entity.NearbyFilter{
			Center:       orb.Point{77.6, 12.9},
			RadiusMeters: 10000,
			Offset:       0,
			Limit:        10,
		}).
		Return(items, int64(23), nil)

	page, err := f.service.FindNearby(ctx, &usecase.NearbyInput{Lat: floatPtr(12.9), Lng: floatPtr(77.6)})
	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 3, page.PageCount)
}

func TestProximityService_FindNearby_Filters(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().
		FindNearby(ctx, entity.NearbyFilter{
			Center:       orb.Point{77.6, 12.9},
			RadiusMeters: 2500,
			Category:     "books",
			Condition:    entity.ConditionLikeNew,
			MinPrice:     floatPtr(100),
			MaxPrice:     floatPtr(500),
			Offset:       40,
			Limit:        20,
		}).
		Return(nil, int64(0), nil)

	page, err := f.service.FindNearby(ctx, &usecase.NearbyInput{
		Lat: floatPtr(12.9),
		Lng: floatPtr(77.6),
		SearchFilters: usecase.SearchFilters{
			RadiusKm:  floatPtr(2.5),
			Category:  " books ",
			Condition: "like new",
			MinPrice:  floatPtr(100),
			MaxPrice:  floatPtr(500),
			Sort:      usecase.SortDistance,
			Page:      intPtr(3),
			Limit:     intPtr(20),
		},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 0, page.PageCount)
}

func TestProximityService_FindNearby_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.NearbyInput
	}{
		{name: "nil input", input: nil},
		{name: "missing lat", input: &usecase.NearbyInput{Lng: floatPtr(77.6)}},
		{name: "latitude out of range", input: &usecase.NearbyInput{Lat: floatPtr(-91), Lng: floatPtr(77.6)}},
		{name: "zero radius", input: withFilters(usecase.SearchFilters{RadiusKm: floatPtr(0)})},
		{name: "radius above maximum", input: withFilters(usecase.SearchFilters{RadiusKm: floatPtr(101)})},
		{name: "negative min price", input: withFilters(usecase.SearchFilters{MinPrice: floatPtr(-1)})},
		{name: "min above max", input: withFilters(usecase.SearchFilters{MinPrice: floatPtr(10), MaxPrice: floatPtr(5)})},
		{name: "unknown condition", input: withFilters(usecase.SearchFilters{Condition: "Broken"})},
		{name: "unsupported sort", input: withFilters(usecase.SearchFilters{Sort: "price"})},
		{name: "page zero", input: withFilters(usecase.SearchFilters{Page: intPtr(0)})},
		{name: "limit zero", input: withFilters(usecase.SearchFilters{Limit: intPtr(0)})},
		{name: "limit above maximum", input: withFilters(usecase.SearchFilters{Limit: intPtr(101)})},
		{name: "NaN radius", input: withFilters(usecase.SearchFilters{RadiusKm: floatPtr(math.NaN())})},
		{name: "infinite radius", input: withFilters(usecase.SearchFilters{RadiusKm: floatPtr(math.Inf(1))})},
		{name: "NaN min price", input: withFilters(usecase.SearchFilters{MinPrice: floatPtr(math.NaN())})},
		{name: "infinite max price", input: withFilters(usecase.SearchFilters{MaxPrice: floatPtr(math.Inf(1))})},
		{name: "page offset overflows", input: withFilters(usecase.SearchFilters{Page: intPtr(math.MaxInt), Limit: intPtr(10)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProximityService(t)

			_, err := f.service.FindNearby(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func withFilters(filters usecase.SearchFilters) *usecase.NearbyInput {
	return &usecase.NearbyInput{Lat: floatPtr(12.9), Lng: floatPtr(77.6), SearchFilters: filters}
}

func TestProximityService_FindNearby_StoreError(t *testing.T) {
	f := createTestProximityService(t)
	dbErr := errors.New("no such index")

	f.productRepo.EXPECT().FindNearby(mock.Anything, mock.Anything).Return(nil, int64(0), dbErr)

	_, err := f.service.FindNearby(context.Background(), withFilters(usecase.SearchFilters{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

// memoryCatalog applies NearbyFilter the way the stores do, for paging checks.
type memoryCatalog struct {
	products []*entity.Product
}

func (m *memoryCatalog) FindNearby(_ context.Context, f entity.NearbyFilter) ([]*entity.NearbyProduct, int64, error) {
	var hits []*entity.NearbyProduct
	for _, p := range m.products {
		if p.Coordinates == nil || !p.IsAvailable || p.IsSold {
			continue
		}
		d := geo.Distance(f.Center, *p.Coordinates)
		if d > f.RadiusMeters {
			continue
		}
		hits = append(hits, &entity.NearbyProduct{Product: *p, Distance: d})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	total := int64(len(hits))
	if f.Offset >= len(hits) {
		return []*entity.NearbyProduct{}, total, nil
	}
	end := min(f.Offset+f.Limit, len(hits))

	return hits[f.Offset:end], total, nil
}

func TestProximityService_FindNearby_PagesAreConsistent(t *testing.T) {
	catalog := &memoryCatalog{}
	for i := range 30 {
		point := orb.Point{77.6 + float64(i)*0.001, 12.9}
		catalog.products = append(catalog.products, &entity.Product{
			ID:          uuid.New(),
			Coordinates: &point,
			IsAvailable: true,
			IsSold:      i%7 == 3,
		})
	}
	outside := orb.Point{80.0, 15.0}
	catalog.products = append(catalog.products, &entity.Product{ID: uuid.New(), Coordinates: &outside, IsAvailable: true})

	f := createTestProximityService(t)
	f.productRepo.EXPECT().FindNearby(mock.Anything, mock.Anything).RunAndReturn(catalog.FindNearby)

	ctx := context.Background()
	query := func(page, limit int) *usecase.NearbyPage {
		in := withFilters(usecase.SearchFilters{RadiusKm: floatPtr(5), Page: intPtr(page), Limit: intPtr(limit)})
		res, err := f.service.FindNearby(ctx, in)
		require.NoError(t, err)

		return res
	}

	first, second, both := query(1, 10), query(2, 10), query(1, 20)

	var paged []uuid.UUID
	for _, item := range append(first.Items, second.Items...) {
		paged = append(paged, item.ID)
	}
	var combined []uuid.UUID
	for _, item := range both.Items {
		combined = append(combined, item.ID)
	}
	assert.Equal(t, combined, paged)

	center := orb.Point{77.6, 12.9}
	last := 0.0
	for _, item := range both.Items {
		assert.True(t, item.IsAvailable)
		assert.False(t, item.IsSold)
		d := geo.Distance(center, *item.Coordinates)
		assert.LessOrEqual(t, d, 5000.0+1e-6)
		assert.GreaterOrEqual(t, d, last)
		last = d
	}
	assert.Equal(t, int64(26), first.Total)
	assert.Equal(t, 3, first.PageCount)
}

func TestProximityService_SearchByLocation(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()
	items := []*entity.NearbyProduct{{Product: entity.Product{ID: uuid.New()}}}

	f.geocoder.EXPECT().Forward(ctx, "Koramangala").Return(&entity.GeocodeResult{
		Coordinates:      orb.Point{77.62, 12.93},
		FormattedAddress: "Koramangala, Bengaluru, Karnataka, India",
	}, nil)
	f.productRepo.EXPECT().
		FindNearby(ctx, entity.NearbyFilter{Center: orb.Point{77.62, 12.93}, RadiusMeters: 10000, Limit: 10}).
		Return(items, int64(1), nil)

	res, err := f.service.SearchByLocation(ctx, " Koramangala ", nil)
	require.NoError(t, err)
	assert.Equal(t, items, res.Items)
	assert.Equal(t, 12.93, res.Center.Lat)
	assert.Equal(t, 77.62, res.Center.Lng)
	assert.Equal(t, "Koramangala, Bengaluru, Karnataka, India", res.Center.FormattedAddress)
}

func TestProximityService_SearchByLocation_GeocodeFailure(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()

	f.geocoder.EXPECT().
		Forward(ctx, "Nowhere").
		Return(nil, domainerrors.ErrGeocodeFailed.WithDetails("ZERO_RESULTS"))

	_, err := f.service.SearchByLocation(ctx, "Nowhere", &usecase.SearchFilters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "could not geocode location", appErr.Message())
}

func TestProximityService_SearchByLocation_RejectsBeforeGeocoding(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()

	_, err := f.service.SearchByLocation(ctx, "   ", nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.SearchByLocation(ctx, "Bangalore", &usecase.SearchFilters{Page: intPtr(0)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	f.geocoder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestProximityService_PopularLocations(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()
	want := []entity.PopularLocation{
		{Location: "B", Count: 5},
		{Location: "A", Count: 3},
		{Location: "C", Count: 1},
	}

	f.productRepo.EXPECT().PopularLocations(ctx, 10).Return(want, nil)

	got, err := f.service.PopularLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProximityService_PopularLocations_Empty(t *testing.T) {
	f := createTestProximityService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().PopularLocations(ctx, 10).Return(nil, nil)

	got, err := f.service.PopularLocations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
