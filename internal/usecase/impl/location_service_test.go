package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixture struct {
	service     usecase.LocationUsecase
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	geocoder    *mockService.MockGeocoder
	publisher   *mockService.MockEventPublisher
}

func createTestLocationService(t *testing.T) *locationServiceFixture {
	t.Helper()

	f := &locationServiceFixture{
		productRepo: mockRepo.NewMockProductRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		geocoder:    mockService.NewMockGeocoder(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.service = NewLocationService(f.productRepo, f.userRepo, f.geocoder, f.publisher, newDiscardLogger())

	return f
}

func (f *locationServiceFixture) expectPublish(subject string, id uuid.UUID) {
	f.publisher.EXPECT().
		PublishLocationUpdated(mock.Anything, mock.MatchedBy(func(e *entity.LocationUpdatedEvent) bool {
			return e.SubjectType == subject && e.SubjectID == id
		})).
		Return(nil)
}

func floatPtr(v float64) *float64 { return &v }

func newOwnedProduct(sellerID uuid.UUID) *entity.Product {
	previous := orb.Point{77.5, 13.0}

	return &entity.Product{
		ID:          uuid.New(),
		Title:       "Desk lamp",
		Location:    "Old Place",
		Address:     &entity.Address{City: "Old City"},
		Coordinates: &previous,
		IsAvailable: true,
		SellerID:    sellerID,
	}
}

func TestLocationService_UpdateProductLocation_CoordinatesWithAddress(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	var saved entity.LocationFields
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.LocationFields) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectProduct, product.ID)

	result, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Lat:     floatPtr(12.9),
		Lng:     floatPtr(77.6),
		Address: &entity.Address{City: "Bangalore", State: "Karnataka", Country: "India"},
	})
	require.NoError(t, err)

	require.NotNil(t, saved.Coordinates)
	assert.Equal(t, orb.Point{77.6, 12.9}, *saved.Coordinates)
	assert.Equal(t, "Bangalore, Karnataka, India", saved.Label)
	assert.Equal(t, "Bangalore", saved.Address.City)
	assert.Equal(t, entity.EnrichmentNotNeeded, result.Enrichment)
	assert.NoError(t, result.EnrichmentErr)
	assert.Equal(t, "Bangalore, Karnataka, India", result.Record.Location)
}

func TestLocationService_UpdateProductLocation_CoordinatesReverseGeocoded(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.geocoder.EXPECT().Reverse(ctx, 12.9, 77.6).Return(&entity.GeocodeResult{
		Coordinates:      orb.Point{77.6, 12.9},
		FormattedAddress: "80 Feet Rd, Koramangala, Bengaluru, Karnataka 560034, India",
		Address:          &entity.Address{City: "Bengaluru", State: "Karnataka", Country: "India"},
	}, nil)

	var saved entity.LocationFields
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.LocationFields) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectProduct, product.ID)

	result, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Lat: floatPtr(12.9),
		Lng: floatPtr(77.6),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bengaluru, Karnataka, India", saved.Label)
	assert.Equal(t, "Bengaluru", saved.Address.City)
	assert.Equal(t, entity.EnrichmentApplied, result.Enrichment)
}

func TestLocationService_UpdateProductLocation_ReverseFailureKeepsAddress(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)
	previousAddress := product.Address

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.geocoder.EXPECT().Reverse(ctx, 12.9, 77.6).Return(nil, domainerrors.ErrProviderUnavailable)

	var saved entity.LocationFields
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.LocationFields) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectProduct, product.ID)

	result, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Lat: floatPtr(12.9),
		Lng: floatPtr(77.6),
	})
	require.NoError(t, err)

	require.NotNil(t, saved.Coordinates)
	assert.Equal(t, orb.Point{77.6, 12.9}, *saved.Coordinates)
	assert.Equal(t, "Old Place", saved.Label)
	assert.Equal(t, previousAddress, saved.Address)
	assert.Equal(t, entity.EnrichmentSkipped, result.Enrichment)
	assert.ErrorIs(t, result.EnrichmentErr, domainerrors.ErrProviderUnavailable)
}

func TestLocationService_UpdateProductLocation_ForwardZeroResultsIsFatal(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.geocoder.EXPECT().
		Forward(ctx, "Nonexistent Place 99999").
		Return(nil, domainerrors.ErrGeocodeFailed.WithDetails("ZERO_RESULTS"))

	result, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		LocationString: "Nonexistent Place 99999",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "could not geocode address", appErr.Message())

	f.productRepo.AssertNotCalled(t, "UpdateProductLocation", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, "Old Place", product.Location)
}

func TestLocationService_UpdateProductLocation_StructuredAddress(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.geocoder.EXPECT().
		Forward(ctx, "12 MG Road, Bangalore, Karnataka, 560001, India").
		Return(&entity.GeocodeResult{Coordinates: orb.Point{77.61, 12.97}}, nil)

	var saved entity.LocationFields
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.LocationFields) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectProduct, product.ID)

	result, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Address: &entity.Address{
			Street:  "12 MG Road",
			City:    "Bangalore",
			State:   "Karnataka",
			Country: "India",
			Zipcode: "560001",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, orb.Point{77.61, 12.97}, *saved.Coordinates)
	assert.Equal(t, "Bangalore, Karnataka, India", saved.Label)
	assert.Equal(t, "12 MG Road", saved.Address.Street)
	assert.Equal(t, entity.EnrichmentNotNeeded, result.Enrichment)
}

func TestLocationService_UpdateProductLocation_FreeText(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.geocoder.EXPECT().
		Forward(ctx, "Koramangala, Bangalore, India").
		Return(&entity.GeocodeResult{Coordinates: orb.Point{77.62, 12.93}}, nil)

	var saved entity.LocationFields
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.LocationFields) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectProduct, product.ID)

	_, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		AddressText: "Koramangala, Bangalore, India",
	})
	require.NoError(t, err)

	assert.Equal(t, "Koramangala, Bangalore, India", saved.Label)
	assert.Equal(t, entity.Address{City: "Koramangala", State: "Bangalore", Country: "India"}, *saved.Address)
}

func TestLocationService_UpdateProductLocation_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     entity.RawLocation
		message string
	}{
		{
			name:    "empty payload",
			raw:     entity.RawLocation{},
			message: "either coordinates or address required",
		},
		{
			name:    "lone latitude",
			raw:     entity.RawLocation{Lat: floatPtr(12.9)},
			message: "either coordinates or address required",
		},
		{
			name:    "latitude out of range",
			raw:     entity.RawLocation{Lat: floatPtr(91), Lng: floatPtr(77.6)},
			message: entity.ErrInvalidCoordinates.Error(),
		},
		{
			name:    "undecodable body",
			raw:     entity.RawLocation{Invalid: "coordinates must be numeric"},
			message: "coordinates must be numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestLocationService(t)
			ctx := context.Background()
			sellerID := uuid.New()
			product := newOwnedProduct(sellerID)

			f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

			_, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestLocationService_UpdateProductLocation_NotOwner(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	product := newOwnedProduct(uuid.New())

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	// The payload is invalid on purpose; ownership must win.
	_, err := f.service.UpdateProductLocation(ctx, product.ID, uuid.New(), entity.RawLocation{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
	assert.Equal(t, "Old Place", product.Location)
}

func TestLocationService_UpdateProductLocation_NotOwnerWithUndecodableBody(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	product := newOwnedProduct(uuid.New())

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	_, err := f.service.UpdateProductLocation(ctx, product.ID, uuid.New(), entity.RawLocation{
		Lng:     floatPtr(77.6),
		Invalid: "coordinates must be numeric",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLocationService_UpdateProductLocation_NotFound(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.UpdateProductLocation(ctx, productID, uuid.New(), entity.RawLocation{
		Lat: floatPtr(12.9),
		Lng: floatPtr(77.6),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestLocationService_UpdateUserLocation_ReverseGeocoded(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Asha"}

	f.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	f.geocoder.EXPECT().Reverse(ctx, 12.9, 77.6).Return(&entity.GeocodeResult{
		Coordinates:      orb.Point{77.6, 12.9},
		FormattedAddress: "Koramangala, Bengaluru, Karnataka, India",
		Address:          &entity.Address{City: "Bengaluru", State: "Karnataka", Country: "India"},
	}, nil)

	var saved entity.UserLocation
	f.userRepo.EXPECT().
		UpdateUserLocation(ctx, user.ID, mock.AnythingOfType("entity.UserLocation")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.UserLocation) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectUser, user.ID)

	result, err := f.service.UpdateUserLocation(ctx, user.ID, entity.RawLocation{
		Lat: floatPtr(12.9),
		Lng: floatPtr(77.6),
	})
	require.NoError(t, err)

	assert.Equal(t, "Koramangala, Bengaluru, Karnataka, India", saved.FormattedAddress)
	assert.Equal(t, orb.Point{77.6, 12.9}, *saved.Coordinates)
	assert.Equal(t, saved, result.Record)
	assert.Equal(t, entity.EnrichmentApplied, result.Enrichment)
}

func TestLocationService_UpdateUserLocation_ReverseFailureKeepsAddress(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	user := &entity.User{
		ID: uuid.New(),
		Location: entity.UserLocation{
			FormattedAddress: "Indiranagar, Bengaluru",
			Address:          &entity.Address{City: "Bengaluru"},
		},
	}

	f.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	f.geocoder.EXPECT().Reverse(ctx, 12.9, 77.6).Return(nil, domainerrors.ErrProviderUnavailable)

	var saved entity.UserLocation
	f.userRepo.EXPECT().
		UpdateUserLocation(ctx, user.ID, mock.AnythingOfType("entity.UserLocation")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.UserLocation) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectUser, user.ID)

	result, err := f.service.UpdateUserLocation(ctx, user.ID, entity.RawLocation{
		Lat: floatPtr(12.9),
		Lng: floatPtr(77.6),
	})
	require.NoError(t, err)

	assert.Equal(t, "Indiranagar, Bengaluru", saved.FormattedAddress)
	assert.Equal(t, "Bengaluru", saved.Address.City)
	assert.Equal(t, orb.Point{77.6, 12.9}, *saved.Coordinates)
	assert.Equal(t, entity.EnrichmentSkipped, result.Enrichment)
}

func TestLocationService_UpdateUserLocation_FreeTextUsesFormattedAddress(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	f.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	f.geocoder.EXPECT().Forward(ctx, "MG Road, Bangalore").Return(&entity.GeocodeResult{
		Coordinates:      orb.Point{77.6, 12.97},
		FormattedAddress: "MG Road, Bengaluru, Karnataka, India",
	}, nil)

	var saved entity.UserLocation
	f.userRepo.EXPECT().
		UpdateUserLocation(ctx, user.ID, mock.AnythingOfType("entity.UserLocation")).
		Run(func(_ context.Context, _ uuid.UUID, location entity.UserLocation) { saved = location }).
		Return(nil)
	f.expectPublish(entity.SubjectUser, user.ID)

	_, err := f.service.UpdateUserLocation(ctx, user.ID, entity.RawLocation{LocationString: "MG Road, Bangalore"})
	require.NoError(t, err)

	assert.Equal(t, "MG Road, Bengaluru, Karnataka, India", saved.FormattedAddress)
	assert.Equal(t, entity.Address{City: "MG Road", Country: "Bangalore"}, *saved.Address)
}

func TestLocationService_UpdateUserLocation_ForwardFailureIsFatal(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	f.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	f.geocoder.EXPECT().
		Forward(ctx, "Atlantis").
		Return(nil, domainerrors.ErrGeocodeFailed.WithDetails("ZERO_RESULTS"))

	_, err := f.service.UpdateUserLocation(ctx, user.ID, entity.RawLocation{LocationString: "Atlantis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	f.userRepo.AssertNotCalled(t, "UpdateUserLocation", mock.Anything, mock.Anything, mock.Anything)
}
