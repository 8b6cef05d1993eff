package mongodb

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type productRepository struct {
	products    *mongo.Collection
	collections Collections
}

// NewProductRepository is the constructor for the MongoDB product repository.
func NewProductRepository(db *mongo.Database, collections Collections) repository.ProductRepository {
	return &productRepository{
		products:    db.Collection(collections.Products),
		collections: collections,
	}
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordStoreQuery(driverName, operation, time.Since(start), *err)
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (_ *entity.Product, err error) {
	defer observe("find_product", time.Now(), &err)

	var doc productDoc
	if err := repo.products.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return doc.toProduct()
}

// FindNearby runs the $geoNear aggregation and the matching count.
func (repo *productRepository) FindNearby(
	ctx context.Context,
	filter entity.NearbyFilter,
) (_ []*entity.NearbyProduct, _ int64, err error) {
	defer observe("find_nearby", time.Now(), &err)

	total, err := repo.products.CountDocuments(ctx, nearbyCountFilter(filter))
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count nearby products")
	}
	if total == 0 {
		return []*entity.NearbyProduct{}, 0, nil
	}

	cursor, err := repo.products.Aggregate(ctx, nearbyPipeline(filter, repo.collections))
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find nearby products")
	}

	var docs []nearbyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, errors.Wrap(err, "failed to decode nearby products")
	}

	products := make([]*entity.NearbyProduct, 0, len(docs))
	for i := range docs {
		product, err := docs[i].toNearby()
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

	cursor, err := repo.products.Aggregate(ctx, popularPipeline(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate popular locations")
	}

	var docs []popularDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode popular locations")
	}

	locations := make([]entity.PopularLocation, 0, len(docs))
	for _, doc := range docs {
		locations = append(locations, entity.PopularLocation{Location: doc.Location, Count: doc.Count})
	}

	return locations, nil
}

// UpdateProductLocation overwrites only the location fields of a product.
func (repo *productRepository) UpdateProductLocation(
	ctx context.Context,
	id uuid.UUID,
	location entity.LocationFields,
) (err error) {
	defer observe("update_product_location", time.Now(), &err)

	update := locationUpdate("", "location", location.Label, location.Address, location.Coordinates)
	result, err := repo.products.UpdateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
	if err != nil {
		return errors.Wrap(err, "failed to update product location")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
