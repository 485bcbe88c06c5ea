package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// GeocodeStatus is the closed set of resolution states for a cache row.
// Unresolved is persisted as NULL so rows written before this service existed
// keep their meaning.
type GeocodeStatus string

const (
	// GeocodeStatusUnresolved marks a row that was never sent to the geocoder,
	// e.g. a placeholder address.
	GeocodeStatusUnresolved GeocodeStatus = ""
	// GeocodeStatusSuccess marks a row with verified coordinates and distance.
	GeocodeStatusSuccess GeocodeStatus = "success"
	// GeocodeStatusFailed marks a row the geocoder could not resolve.
	GeocodeStatusFailed GeocodeStatus = "failed"
)

// IsSuccess reports whether the status is a successful resolution.
func (s GeocodeStatus) IsSuccess() bool {
	return s == GeocodeStatusSuccess
}

// AddressCache is the durable resolution record for one (customer, address)
// pair. A customer may accumulate rows as its effective address changes over
// time; re-resolving the same pair updates the row in place.
type AddressCache struct {
	ID         int64
	CustomerID int64
	Address    string     // Normalized address string, part of the logical key.
	SurveyID   *int64     // Link to the survey the address came from, when any.
	Location   *orb.Point // Resolved coordinate; nil on failure or placeholder.
	DistanceKm *float64   // Haversine distance from the store; set iff Status is success.
	Province   *string    // Province short form extracted from text; may survive failures.
	Status     GeocodeStatus
	Error      *string // Human-readable failure description.

	LastVerifiedAt *time.Time // When the geocoder last confirmed the coordinate.
	UpdatedAt      time.Time
}

// NewSuccessCache builds a cache row for a successful resolution.
func NewSuccessCache(customerID int64, address string, location orb.Point, distanceKm float64, province string) *AddressCache {
	now := time.Now()
	row := &AddressCache{
		CustomerID:     customerID,
		Address:        address,
		Location:       &location,
		DistanceKm:     &distanceKm,
		Status:         GeocodeStatusSuccess,
		LastVerifiedAt: &now,
		UpdatedAt:      now,
	}
	if province != "" {
		row.Province = &province
	}

	return row
}

// NewFailedCache builds a cache row for a failed resolution. Coordinates and
// distance are explicitly nil so a stale success never leaks through.
func NewFailedCache(customerID int64, address, province, errMsg string) *AddressCache {
	row := &AddressCache{
		CustomerID: customerID,
		Address:    address,
		Status:     GeocodeStatusFailed,
		Error:      &errMsg,
		UpdatedAt:  time.Now(),
	}
	if province != "" {
		row.Province = &province
	}

	return row
}

// NewUnresolvedCache builds a cache row for a placeholder address that is
// intentionally never geocoded.
func NewUnresolvedCache(customerID int64, address string) *AddressCache {
	return &AddressCache{
		CustomerID: customerID,
		Address:    address,
		Status:     GeocodeStatusUnresolved,
		UpdatedAt:  time.Now(),
	}
}
