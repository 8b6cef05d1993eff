package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressColumns is the structured address embedded into the products and users tables.
type AddressColumns struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	Country string `gorm:"type:varchar(100)"`
	Zipcode string `gorm:"type:varchar(20)"`
}

// UserModel mirrors the 'users' table. Only the columns the catalog reads or writes are mapped.
// LocationWKB is never a table column; raw queries select the geography as WKB into it.
type UserModel struct {
	ID                       uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                     string         `gorm:"type:varchar(100)"`
	Email                    string         `gorm:"type:varchar(255);unique;not null"`
	ProfileImage             string         `gorm:"type:text"`
	Rating                   float64        `gorm:"type:numeric(3,2);not null;default:0"`
	LocationFormattedAddress string         `gorm:"type:text"`
	LocationAddress          AddressColumns `gorm:"embedded;embeddedPrefix:location_address_"`
	LocationWKB              []byte         `gorm:"->;-:migration;column:location_wkb"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
