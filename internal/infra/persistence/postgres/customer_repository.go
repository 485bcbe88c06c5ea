// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rangefinder/internal/domain/entity"
	domainerrors "rangefinder/internal/domain/errors"
	"rangefinder/internal/domain/repository"
	"rangefinder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// phoneDigitsExpr normalizes a stored phone column to bare digits in SQL, so
// lookups match the digits-only keys used across the service.
const phoneDigitsExpr = "regexp_replace(phone, '[^0-9]', '', 'g')"

// geocodableAddressCond keeps rows whose address column is worth sending to
// the geocoder: present, non-blank, not a bracketed placeholder, not N/A.
const geocodableAddressCond = "address IS NOT NULL AND btrim(address) <> '' AND address NOT LIKE '[%' AND address <> 'N/A'"

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByIDs retrieves customers for the given IDs.
func (repo *customerRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0, len(ids))

	for _, chunk := range chunkInt64s(ids) {
		var customerModels []*model.CustomerModel

		if err := repo.db.WithContext(ctx).
			Where("id IN ?", chunk).
			Find(&customerModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find customers by IDs")
		}

		for _, customerM := range customerModels {
			customers = append(customers, toCustomerDomain(customerM))
		}
	}

	return customers, nil
}

// ListIDs returns all customer IDs ordered by updated_at descending.
func (repo *customerRepository) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Order("updated_at DESC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customer IDs")
	}

	return ids, nil
}

// Count returns the total number of customers.
func (repo *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

// SearchIDs returns IDs of customers whose name, phone or address contains the term.
func (repo *customerRepository) SearchIDs(ctx context.Context, term string) ([]int64, error) {
	pattern := "%" + term + "%"

	query := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("name ILIKE ? OR address ILIKE ?", pattern, pattern)

	if digits := entity.DigitsOnly(term); digits != "" {
		query = repo.db.WithContext(ctx).
			Model(&model.CustomerModel{}).
			Where("name ILIKE ? OR address ILIKE ? OR "+phoneDigitsExpr+" LIKE ?", pattern, pattern, "%"+digits+"%")
	}

	var ids []int64
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search customer IDs")
	}

	return ids, nil
}

// FindIDsByPhoneDigits returns IDs of customers whose digits-only phone matches any of the given digit strings.
func (repo *customerRepository) FindIDsByPhoneDigits(ctx context.Context, digits []string) ([]int64, error) {
	var ids []int64

	for _, chunk := range chunkStrings(digits) {
		var chunkIDs []int64

		if err := repo.db.WithContext(ctx).
			Model(&model.CustomerModel{}).
			Where(phoneDigitsExpr+" IN ?", chunk).
			Pluck("id", &chunkIDs).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find customer IDs by phone digits")
		}

		ids = append(ids, chunkIDs...)
	}

	return ids, nil
}

// FindGeocodable retrieves customers with a usable address, most recently updated first.
func (repo *customerRepository) FindGeocodable(ctx context.Context, ids []int64, limit int) ([]*entity.Customer, error) {
	if len(ids) > 0 {
		customers := make([]*entity.Customer, 0, len(ids))

		for _, chunk := range chunkInt64s(ids) {
			var customerModels []*model.CustomerModel

			if err := repo.db.WithContext(ctx).
				Where(geocodableAddressCond).
				Where("id IN ?", chunk).
				Order("updated_at DESC").
				Find(&customerModels).Error; err != nil {
				return nil, errors.Wrap(err, "failed to find geocodable customers by IDs")
			}

			for _, customerM := range customerModels {
				customers = append(customers, toCustomerDomain(customerM))
			}
		}

		return customers, nil
	}

	var customerModels []*model.CustomerModel

	query := repo.db.WithContext(ctx).
		Where(geocodableAddressCond).
		Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geocodable customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// UpdateAddress overwrites the stored address for a customer.
func (repo *customerRepository) UpdateAddress(ctx context.Context, id int64, address string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Update("address", address)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer address")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Address:   data.Address,
		UpdatedAt: data.UpdatedAt,
	}
}
