package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a user and the embedded location.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (_ *entity.User, err error) {
	defer observe("find_user", time.Now(), &err)

	var userM model.UserModel
	result := repo.db.WithContext(ctx).
		Raw(`SELECT u.*, ST_AsBinary(u.location_coordinates::geometry) AS location_wkb FROM users u WHERE u.id = ?`, id).
		Scan(&userM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find user by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM)
}

// UpdateUserLocation overwrites the location columns of a user.
func (repo *userRepository) UpdateUserLocation(ctx context.Context, id uuid.UUID, location entity.UserLocation) (err error) {
	defer observe("update_user_location", time.Now(), &err)

	address := fromAddressDomain(location.Address)
	result := repo.db.WithContext(ctx).Exec(`
		UPDATE users
		SET location_formatted_address = ?,
		    location_address_street = ?, location_address_city = ?, location_address_state = ?,
		    location_address_country = ?, location_address_zipcode = ?,
		    location_coordinates = `+pointExpr(location.Coordinates)+`,
		    updated_at = NOW()
		WHERE id = ?`,
		append([]any{
			location.FormattedAddress,
			address.Street, address.City, address.State, address.Country, address.Zipcode,
		}, append(pointArgs(location.Coordinates), id)...)...,
	)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isInvalidGeometry(result.Error) {
			return domainerrors.NewValidationError(entity.ErrInvalidCoordinates.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) (*entity.User, error) {
	coordinates, err := toPoint(data.LocationWKB)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		ProfileImage: data.ProfileImage,
		Rating:       data.Rating,
		Location: entity.UserLocation{
			FormattedAddress: data.LocationFormattedAddress,
			Address:          toAddressDomain(data.LocationAddress),
			Coordinates:      coordinates,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
