package mongodb

import (
	"bazaar/internal/domain/entity"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// earthRadiusMeters is the radius MongoDB uses to convert $centerSphere radians.
const earthRadiusMeters = 6378100.0

// discoverableFilter matches products that may appear in discovery, plus the optional equality
// and price filters.
func discoverableFilter(f entity.NearbyFilter) bson.D {
	filter := bson.D{
		{Key: "isAvailable", Value: true},
		{Key: "isSold", Value: false},
	}
	if f.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: f.Category})
	}
	if f.Condition != "" {
		filter = append(filter, bson.E{Key: "condition", Value: string(f.Condition)})
	}

	price := bson.D{}
	if f.MinPrice != nil {
		price = append(price, bson.E{Key: "$gte", Value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		price = append(price, bson.E{Key: "$lte", Value: *f.MaxPrice})
	}
	if len(price) > 0 {
		filter = append(filter, bson.E{Key: "price", Value: price})
	}

	return filter
}

func centerOf(f entity.NearbyFilter) bson.D {
	return bson.D{
		{Key: "type", Value: "Point"},
		{Key: "coordinates", Value: bson.A{f.Center.Lon(), f.Center.Lat()}},
	}
}

// nearbyPipeline returns $geoNear (nearest first, distance in meters) followed by paging and
// the seller and category lookups. $geoNear must stay the first stage.
func nearbyPipeline(f entity.NearbyFilter, c Collections) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: centerOf(f)},
			{Key: "key", Value: "coordinates"},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: f.RadiusMeters},
			{Key: "spherical", Value: true},
			{Key: "query", Value: discoverableFilter(f)},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "distance", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(f.Offset)}},
		{{Key: "$limit", Value: int64(f.Limit)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: c.Users},
			{Key: "let", Value: bson.D{{Key: "sellerId", Value: "$seller"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$_id", "$$sellerId"}},
				}}}}},
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "name", Value: 1},
					{Key: "profileImage", Value: 1},
					{Key: "rating", Value: 1},
				}}},
			}},
			{Key: "as", Value: "sellerInfo"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: c.Categories},
			{Key: "localField", Value: "category"},
			{Key: "foreignField", Value: "slug"},
			{Key: "as", Value: "categoryInfo"},
		}}},
	}
}

// nearbyCountFilter matches the same set as nearbyPipeline without ordering, so it can be
// used with CountDocuments, which rejects $near.
func nearbyCountFilter(f entity.NearbyFilter) bson.D {
	filter := discoverableFilter(f)

	return append(filter, bson.E{Key: "coordinates", Value: bson.D{
		{Key: "$geoWithin", Value: bson.D{
			{Key: "$centerSphere", Value: bson.A{
				bson.A{f.Center.Lon(), f.Center.Lat()},
				f.RadiusMeters / earthRadiusMeters,
			}},
		}},
	}})
}

// popularPipeline groups discoverable products by label, largest group first,
// ties by label so the order is stable.
func popularPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "isAvailable", Value: true},
			{Key: "isSold", Value: false},
			{Key: "location", Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: int64(limit)}},
	}
}

// locationUpdate builds the $set/$unset document for the location fields under prefix.
func locationUpdate(prefix, labelField, label string, address *entity.Address, point *orb.Point) bson.D {
	set := bson.D{{Key: prefix + labelField, Value: label}}
	unset := bson.D{}

	if doc := fromAddress(address); doc != nil {
		set = append(set, bson.E{Key: prefix + "address", Value: doc})
	} else {
		unset = append(unset, bson.E{Key: prefix + "address", Value: ""})
	}
	if doc := fromPoint(point); doc != nil {
		set = append(set, bson.E{Key: prefix + "coordinates", Value: doc})
	} else {
		unset = append(unset, bson.E{Key: prefix + "coordinates", Value: ""})
	}

	update := bson.D{{Key: "$set", Value: set}, {Key: "$currentDate", Value: bson.D{{Key: "updatedAt", Value: true}}}}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}

	return update
}
