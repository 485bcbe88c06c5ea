package repository

import (
	"context"

	"rangefinder/internal/domain/entity"
)

// CacheFilter narrows cache rows when listing customer IDs for the query layer.
// Nil fields are not applied.
type CacheFilter struct {
	Province    *string
	MinKm       *float64
	MaxKm       *float64
	Status      *entity.GeocodeStatus
	HasDistance *bool
}

// AddressCacheRepository defines the interface for the geocoding cache table.
// Rows are keyed by (customer_id, address); a customer accumulates one row per
// distinct address they have been geocoded under.
type AddressCacheRepository interface {
	// Find retrieves the cache row for (customerID, address).
	// Returns (nil, nil) when no row exists.
	Find(ctx context.Context, customerID int64, address string) (*entity.AddressCache, error)

	// Upsert inserts the row or, on (customer_id, address) conflict, updates
	// it in place. Failure rows explicitly null out coordinates and distance.
	Upsert(ctx context.Context, cache *entity.AddressCache) error

	// DeleteByCustomer removes every cache row for a customer.
	DeleteByCustomer(ctx context.Context, customerID int64) error

	// FindByCustomerIDs retrieves all cache rows for the given customer IDs.
	FindByCustomerIDs(ctx context.Context, ids []int64) ([]*entity.AddressCache, error)

	// ListCustomerIDsResolved returns distinct customer IDs that have at
	// least one successful row with a computed distance.
	ListCustomerIDsResolved(ctx context.Context) ([]int64, error)

	// FilterCustomerIDs returns the subset of ids that have at least one
	// cache row matching the filter.
	FilterCustomerIDs(ctx context.Context, ids []int64, filter CacheFilter) ([]int64, error)
}
