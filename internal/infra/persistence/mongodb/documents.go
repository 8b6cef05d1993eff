package mongodb

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// geoPoint is a GeoJSON Point as stored under a 2dsphere index.
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type addressDoc struct {
	Street  string `bson:"street,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	Country string `bson:"country,omitempty"`
	Zipcode string `bson:"zipcode,omitempty"`
}

type productDoc struct {
	ID           string      `bson:"_id"`
	Title        string      `bson:"title"`
	Category     string      `bson:"category"`
	Price        float64     `bson:"price"`
	Description  string      `bson:"description"`
	Condition    string      `bson:"condition"`
	Location     string      `bson:"location"`
	Address      *addressDoc `bson:"address,omitempty"`
	Coordinates  *geoPoint   `bson:"coordinates,omitempty"`
	IsAvailable  bool        `bson:"isAvailable"`
	IsSold       bool        `bson:"isSold"`
	IsNegotiable bool        `bson:"isNegotiable"`
	SellerID     string      `bson:"seller"`
	CreatedAt    time.Time   `bson:"createdAt"`
	UpdatedAt    time.Time   `bson:"updatedAt"`
}

type sellerDoc struct {
	ID           string  `bson:"_id"`
	Name         string  `bson:"name"`
	ProfileImage string  `bson:"profileImage"`
	Rating       float64 `bson:"rating"`
}

type categoryDoc struct {
	Name string `bson:"name"`
	Slug string `bson:"slug"`
}

// nearbyDoc is one $geoNear result with its $lookup arrays.
type nearbyDoc struct {
	Product      productDoc    `bson:",inline"`
	Distance     float64       `bson:"distance"`
	SellerInfo   []sellerDoc   `bson:"sellerInfo"`
	CategoryInfo []categoryDoc `bson:"categoryInfo"`
}

type userLocationDoc struct {
	FormattedAddress string      `bson:"formattedAddress"`
	Address          *addressDoc `bson:"address,omitempty"`
	Coordinates      *geoPoint   `bson:"coordinates,omitempty"`
}

type userDoc struct {
	ID           string          `bson:"_id"`
	Name         string          `bson:"name"`
	Email        string          `bson:"email"`
	ProfileImage string          `bson:"profileImage"`
	Rating       float64         `bson:"rating"`
	Location     userLocationDoc `bson:"location"`
	CreatedAt    time.Time       `bson:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt"`
}

type popularDoc struct {
	Location string `bson:"_id"`
	Count    int64  `bson:"count"`
}

// --- Mapper Functions ---

func fromPoint(p *orb.Point) *geoPoint {
	if p == nil {
		return nil
	}

	return &geoPoint{Type: "Point", Coordinates: []float64{p.Lon(), p.Lat()}}
}

func (g *geoPoint) toPoint() (*orb.Point, error) {
	if g == nil {
		return nil, nil
	}
	if len(g.Coordinates) != 2 {
		return nil, errors.Errorf("malformed GeoJSON point with %d coordinates", len(g.Coordinates))
	}

	p := orb.Point{g.Coordinates[0], g.Coordinates[1]}

	return &p, nil
}

func fromAddress(a *entity.Address) *addressDoc {
	if a == nil || a.IsZero() {
		return nil
	}

	return &addressDoc{Street: a.Street, City: a.City, State: a.State, Country: a.Country, Zipcode: a.Zipcode}
}

func (d *addressDoc) toAddress() *entity.Address {
	if d == nil {
		return nil
	}

	return &entity.Address{Street: d.Street, City: d.City, State: d.State, Country: d.Country, Zipcode: d.Zipcode}
}

func parseID(raw, kind string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s id %q", kind, raw)
	}

	return id, nil
}

func (d *productDoc) toProduct() (*entity.Product, error) {
	id, err := parseID(d.ID, "product")
	if err != nil {
		return nil, err
	}
	sellerID, err := parseID(d.SellerID, "seller")
	if err != nil {
		return nil, err
	}
	coordinates, err := d.Coordinates.toPoint()
	if err != nil {
		return nil, err
	}

	return &entity.Product{
		ID:           id,
		Title:        d.Title,
		Category:     d.Category,
		Price:        d.Price,
		Description:  d.Description,
		Condition:    entity.Condition(d.Condition),
		Location:     d.Location,
		Address:      d.Address.toAddress(),
		Coordinates:  coordinates,
		IsAvailable:  d.IsAvailable,
		IsSold:       d.IsSold,
		IsNegotiable: d.IsNegotiable,
		SellerID:     sellerID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func (d *nearbyDoc) toNearby() (*entity.NearbyProduct, error) {
	product, err := d.Product.toProduct()
	if err != nil {
		return nil, err
	}

	nearby := &entity.NearbyProduct{Product: *product, Distance: d.Distance}
	if len(d.SellerInfo) > 0 {
		s := d.SellerInfo[0]
		nearby.Seller = &entity.SellerSummary{
			ID:           product.SellerID,
			Name:         s.Name,
			ProfileImage: s.ProfileImage,
			Rating:       s.Rating,
		}
	}
	if len(d.CategoryInfo) > 0 {
		c := d.CategoryInfo[0]
		nearby.CategoryDetail = &entity.CategorySummary{Name: c.Name, Slug: c.Slug}
	}

	return nearby, nil
}

func (d *userDoc) toUser() (*entity.User, error) {
	id, err := parseID(d.ID, "user")
	if err != nil {
		return nil, err
	}
	coordinates, err := d.Location.Coordinates.toPoint()
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		ProfileImage: d.ProfileImage,
		Rating:       d.Rating,
		Location: entity.UserLocation{
			FormattedAddress: d.Location.FormattedAddress,
			Address:          d.Location.Address.toAddress(),
			Coordinates:      coordinates,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
