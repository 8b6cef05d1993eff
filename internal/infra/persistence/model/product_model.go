package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The coordinates live in a
// geography(Point, 4326) column that is read and written through raw SQL only.
type ProductModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string         `gorm:"type:varchar(200);not null"`
	Category       string         `gorm:"type:varchar(100);not null;index"`
	Price          float64        `gorm:"type:numeric(12,2);not null"`
	Description    string         `gorm:"type:text"`
	Condition      string         `gorm:"type:varchar(20);not null"`
	Location       string         `gorm:"type:varchar(255);index"`
	Address        AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	CoordinatesWKB []byte         `gorm:"->;-:migration;column:coordinates_wkb"`
	IsAvailable    bool           `gorm:"not null;default:true"`
	IsSold         bool           `gorm:"not null;default:false"`
	IsNegotiable   bool           `gorm:"not null;default:false"`
	SellerID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// NearbyProductRow is one row of the proximity query: the product, the joined
// seller and category summaries and the distance in meters.
type NearbyProductRow struct {
	ProductModel
	Distance           float64
	SellerName         *string
	SellerProfileImage *string
	SellerRating       *float64
	CategoryName       *string
	CategorySlug       *string
}

// PopularLocationRow is one bucket of the popular locations aggregate.
type PopularLocationRow struct {
	Location string
	Count    int64
}
