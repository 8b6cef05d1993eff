// Package mongodb implements the catalog store on MongoDB with 2dsphere indexes.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	driverName            = "mongo"
	defaultConnectTimeout = 10 * time.Second

	defaultProductsColl   = "products"
	defaultUsersColl      = "users"
	defaultCategoriesColl = "categories"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Collections names the collections the catalog uses.
type Collections struct {
	Products   string
	Users      string
	Categories string
}

// CollectionsFrom applies defaults to the configured collection names.
func CollectionsFrom(cfg *config.MongoConfig) Collections {
	c := Collections{Products: defaultProductsColl, Users: defaultUsersColl, Categories: defaultCategoriesColl}
	if cfg == nil {
		return c
	}
	if cfg.ProductsColl != "" {
		c.Products = cfg.ProductsColl
	}
	if cfg.UsersColl != "" {
		c.Users = cfg.UsersColl
	}
	if cfg.CategoriesColl != "" {
		c.Categories = cfg.CategoriesColl
	}

	return c
}

// New connects to MongoDB and returns the catalog database.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo storage selected without mongo.uri")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetAppName(params.Config.Env.ServiceName)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)
	collections := CollectionsFrom(cfg)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if cfg.EnsureIndexes {
				if err := EnsureIndexes(ctx, db, collections); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes ensured", slog.String("database", cfg.Database))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// EnsureIndexes creates the geospatial and lookup indexes the queries rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database, c Collections) error {
	productIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "coordinates", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "isAvailable", Value: 1}, {Key: "isSold", Value: 1}, {Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "seller", Value: 1}}},
	}
	if _, err := db.Collection(c.Products).Indexes().CreateMany(ctx, productIndexes); err != nil {
		return errors.Wrap(err, "failed to create product indexes")
	}

	userIndex := mongo.IndexModel{Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}}}
	if _, err := db.Collection(c.Users).Indexes().CreateOne(ctx, userIndex); err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(c.Categories).Indexes().CreateOne(ctx, categoryIndex); err != nil {
		return errors.Wrap(err, "failed to create category indexes")
	}

	return nil
}
