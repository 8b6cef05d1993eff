// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/metrics"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const driverName = "postgres"

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (_ *entity.Product, err error) {
	defer observe("find_product", time.Now(), &err)

	var productM model.ProductModel
	result := repo.db.WithContext(ctx).
		Raw(`SELECT p.*, ST_AsBinary(p.coordinates::geometry) AS coordinates_wkb FROM products p WHERE p.id = ?`, id).
		Scan(&productM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find product by ID")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(&productM)
}

// FindNearby runs the PostGIS proximity query and the matching count query.
func (repo *productRepository) FindNearby(
	ctx context.Context,
	filter entity.NearbyFilter,
) (_ []*entity.NearbyProduct, _ int64, err error) {
	defer observe("find_nearby", time.Now(), &err)

	var total int64
	countSQL, countArgs := nearbyCountQuery(filter)
	if err := repo.db.WithContext(ctx).Raw(countSQL, countArgs...).Scan(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count nearby products")
	}
	if total == 0 {
		return []*entity.NearbyProduct{}, 0, nil
	}

	var rows []*model.NearbyProductRow
	pageSQL, pageArgs := nearbyPageQuery(filter)
	if err := repo.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find nearby products")
	}

	products := make([]*entity.NearbyProduct, 0, len(rows))
	for _, row := range rows {
		product, err := toNearbyDomain(row)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}

	return products, total, nil
}

// PopularLocations groups discoverable products by their location label.
func (repo *productRepository) PopularLocations(ctx context.Context, limit int) (_ []entity.PopularLocation, err error) {
	defer observe("popular_locations", time.Now(), &err)

	var rows []model.PopularLocationRow
	if err := repo.db.WithContext(ctx).Raw(popularLocationsQuery, limit).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate popular locations")
	}

	locations := make([]entity.PopularLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, entity.PopularLocation{Location: row.Location, Count: row.Count})
	}

	return locations, nil
}

// UpdateProductLocation overwrites the location columns of a product.
func (repo *productRepository) UpdateProductLocation(
	ctx context.Context,
	id uuid.UUID,
	location entity.LocationFields,
) (err error) {
	defer observe("update_product_location", time.Now(), &err)

	address := fromAddressDomain(location.Address)
	result := repo.db.WithContext(ctx).Exec(`
		UPDATE products
		SET location = ?,
		    address_street = ?, address_city = ?, address_state = ?, address_country = ?, address_zipcode = ?,
		    coordinates = `+pointExpr(location.Coordinates)+`,
		    updated_at = NOW()
		WHERE id = ?`,
		append([]any{
			location.Label,
			address.Street, address.City, address.State, address.Country, address.Zipcode,
		}, append(pointArgs(location.Coordinates), id)...)...,
	)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isInvalidGeometry(result.Error) {
			return domainerrors.NewValidationError(entity.ErrInvalidCoordinates.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// pointExpr returns the SQL for a nullable geography point.
func pointExpr(p *orb.Point) string {
	if p == nil {
		return "NULL"
	}

	return "ST_GeomFromWKB(?, 4326)::geography"
}

func pointArgs(p *orb.Point) []any {
	if p == nil {
		return nil
	}

	return []any{wkb.Value(*p)}
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordStoreQuery(driverName, operation, time.Since(start), *err)
}

// --- Mapper Functions ---

func toPoint(data []byte) (*orb.Point, error) {
	if len(data) == 0 {
		return nil, nil
	}

	geom, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode coordinates")
	}

	point, ok := geom.(orb.Point)
	if !ok {
		return nil, errors.Errorf("unexpected geometry type %s", geom.GeoJSONType())
	}

	return &point, nil
}

func toAddressDomain(data model.AddressColumns) *entity.Address {
	address := entity.Address{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		Country: data.Country,
		Zipcode: data.Zipcode,
	}
	if address.IsZero() {
		return nil
	}

	return &address
}

func fromAddressDomain(data *entity.Address) model.AddressColumns {
	if data == nil {
		return model.AddressColumns{}
	}

	return model.AddressColumns{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		Country: data.Country,
		Zipcode: data.Zipcode,
	}
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	coordinates, err := toPoint(data.CoordinatesWKB)
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:           data.ID,
		Title:        data.Title,
		Category:     data.Category,
		Price:        data.Price,
		Description:  data.Description,
		Condition:    entity.Condition(data.Condition),
		Location:     data.Location,
		Address:      toAddressDomain(data.Address),
		Coordinates:  coordinates,
		IsAvailable:  data.IsAvailable,
		IsSold:       data.IsSold,
		IsNegotiable: data.IsNegotiable,
		SellerID:     data.SellerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// toNearbyDomain converts a proximity row, including its optional joins.
func toNearbyDomain(row *model.NearbyProductRow) (*entity.NearbyProduct, error) {
	product, err := toProductDomain(&row.ProductModel)
	if err != nil {
		return nil, err
	}

	nearby := &entity.NearbyProduct{Product: *product, Distance: row.Distance}
	if row.SellerName != nil {
		nearby.Seller = &entity.SellerSummary{ID: row.SellerID, Name: *row.SellerName}
		if row.SellerProfileImage != nil {
			nearby.Seller.ProfileImage = *row.SellerProfileImage
		}
		if row.SellerRating != nil {
			nearby.Seller.Rating = *row.SellerRating
		}
	}
	if row.CategorySlug != nil {
		nearby.CategoryDetail = &entity.CategorySummary{Slug: *row.CategorySlug}
		if row.CategoryName != nil {
			nearby.CategoryDetail.Name = *row.CategoryName
		}
	}

	return nearby, nil
}
