package model

import (
	"time"
)

// AddressCacheModel is the GORM-specific struct for the 'customer_address_cache'
// table. Rows are keyed by (customer_id, address); coordinates, distance and
// status are NULL until a geocoding attempt resolves them.
type AddressCacheModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64  `gorm:"not null;uniqueIndex:uq_customer_address"`
	Address         string `gorm:"type:text;not null;uniqueIndex:uq_customer_address"`
	SurveyID        *int64
	Latitude        *float64
	Longitude       *float64
	DistanceKm      *float64
	Province        *string `gorm:"type:varchar(10);index"`
	GeocodingStatus *string `gorm:"type:varchar(20);index"`
	GeocodingError  *string `gorm:"type:text"`
	LastVerifiedAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressCacheModel) TableName() string {
	return "customer_address_cache"
}
