package impl

import (
	"context"
	"errors"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_UpdateProductLocation_FindError(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	productID := uuid.New()
	dbErr := errors.New("connection reset")

	f.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, dbErr)

	_, err := f.service.UpdateProductLocation(ctx, productID, uuid.New(), entity.RawLocation{})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to find product")
}

func TestLocationService_UpdateProductLocation_PersistError(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)
	dbErr := errors.New("write conflict")

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Return(dbErr)

	_, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Lat:     floatPtr(12.9),
		Lng:     floatPtr(77.6),
		Address: &entity.Address{City: "Bangalore"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	f.publisher.AssertNotCalled(t, "PublishLocationUpdated", mock.Anything, mock.Anything)
}

func TestLocationService_UpdateProductLocation_DeletedBeforeWrite(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Return(repository.ErrProductNotFound)

	_, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Lat:     floatPtr(12.9),
		Lng:     floatPtr(77.6),
		Address: &entity.Address{City: "Bangalore"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestLocationService_UpdateProductLocation_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	product := newOwnedProduct(sellerID)

	f.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	f.productRepo.EXPECT().
		UpdateProductLocation(ctx, product.ID, mock.AnythingOfType("entity.LocationFields")).
		Return(nil)
	f.publisher.EXPECT().
		PublishLocationUpdated(ctx, mock.AnythingOfType("*entity.LocationUpdatedEvent")).
		Return(errors.New("topic not found"))

	result, err := f.service.UpdateProductLocation(ctx, product.ID, sellerID, entity.RawLocation{
		Lat:     floatPtr(12.9),
		Lng:     floatPtr(77.6),
		Address: &entity.Address{City: "Bangalore"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", result.Record.Location)
}

func TestLocationService_UpdateUserLocation_NotFound(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.UpdateUserLocation(ctx, userID, entity.RawLocation{LocationString: "Bangalore"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestLocationService_UpdateUserLocation_WithoutPublisher(t *testing.T) {
	f := createTestLocationService(t)
	svc := NewLocationService(f.productRepo, f.userRepo, f.geocoder, nil, newDiscardLogger())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	f.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	f.userRepo.EXPECT().
		UpdateUserLocation(ctx, user.ID, mock.AnythingOfType("entity.UserLocation")).
		Return(nil)

	result, err := svc.UpdateUserLocation(ctx, user.ID, entity.RawLocation{
		Lat:     floatPtr(12.9),
		Lng:     floatPtr(77.6),
		Address: &entity.Address{City: "Bangalore", Country: "India"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bangalore, India", result.Record.FormattedAddress)
}
