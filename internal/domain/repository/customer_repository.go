// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"rangefinder/internal/domain/entity"
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// FindByID retrieves a customer by its unique ID.
	// Returns domain errors.ErrCustomerNotFound when no row exists.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindByIDs retrieves customers for the given IDs. Missing IDs are
	// silently absent from the result.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Customer, error)

	// ListIDs returns all customer IDs ordered by updated_at descending.
	ListIDs(ctx context.Context) ([]int64, error)

	// Count returns the total number of customers.
	Count(ctx context.Context) (int64, error)

	// SearchIDs returns IDs of customers whose name, phone or address
	// contains the given term.
	SearchIDs(ctx context.Context, term string) ([]int64, error)

	// FindIDsByPhoneDigits returns IDs of customers whose digits-only phone
	// matches any of the given digit strings.
	FindIDsByPhoneDigits(ctx context.Context, digits []string) ([]int64, error)

	// FindGeocodable retrieves customers whose address column is present,
	// non-empty and not an obvious placeholder, most recently updated first.
	// When ids is non-empty the result is restricted to those IDs and limit
	// is ignored; otherwise at most limit rows are returned.
	FindGeocodable(ctx context.Context, ids []int64, limit int) ([]*entity.Customer, error)

	// UpdateAddress overwrites the stored address for a customer.
	UpdateAddress(ctx context.Context, id int64, address string) error
}
