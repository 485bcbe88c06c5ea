package postgres

import (
	"context"
	"time"

	"rangefinder/internal/domain/entity"
	domainerrors "rangefinder/internal/domain/errors"
	"rangefinder/internal/domain/repository"
	"rangefinder/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressCacheRepository implements the repository.AddressCacheRepository interface.
type addressCacheRepository struct {
	db *gorm.DB
}

// NewAddressCacheRepository is the constructor for addressCacheRepository.
func NewAddressCacheRepository(db *gorm.DB) repository.AddressCacheRepository {
	return &addressCacheRepository{
		db: db,
	}
}

// Find retrieves the cache row for (customerID, address). Returns (nil, nil) when absent.
func (repo *addressCacheRepository) Find(ctx context.Context, customerID int64, address string) (*entity.AddressCache, error) {
	var cacheM model.AddressCacheModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND address = ?", customerID, address).
		First(&cacheM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find address cache row")
	}

	return toCacheDomain(&cacheM), nil
}

// Upsert inserts the row or updates it in place on (customer_id, address)
// conflict. All resolution columns are assigned so a failed attempt nulls out
// the coordinates of a previous success.
func (repo *addressCacheRepository) Upsert(ctx context.Context, cache *entity.AddressCache) error {
	cacheM := fromCacheDomain(cache)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}, {Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"survey_id",
				"latitude",
				"longitude",
				"distance_km",
				"province",
				"geocoding_status",
				"geocoding_error",
				"last_verified_at",
				"updated_at",
			}),
		}).
		Create(cacheM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert address cache row")
	}

	cache.ID = cacheM.ID
	cache.UpdatedAt = cacheM.UpdatedAt

	return nil
}

// DeleteByCustomer removes every cache row for a customer.
func (repo *addressCacheRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.AddressCacheModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete address cache rows")
	}

	return nil
}

// FindByCustomerIDs retrieves all cache rows for the given customer IDs.
func (repo *addressCacheRepository) FindByCustomerIDs(ctx context.Context, ids []int64) ([]*entity.AddressCache, error) {
	var rows []*entity.AddressCache

	for _, chunk := range chunkInt64s(ids) {
		var cacheModels []*model.AddressCacheModel

		if err := repo.db.WithContext(ctx).
			Where("customer_id IN ?", chunk).
			Order("updated_at DESC").
			Find(&cacheModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to find address cache rows by customer IDs")
		}

		for _, cacheM := range cacheModels {
			rows = append(rows, toCacheDomain(cacheM))
		}
	}

	return rows, nil
}

// ListCustomerIDsResolved returns distinct customer IDs that have at least one
// successful row with a computed distance.
func (repo *addressCacheRepository) ListCustomerIDsResolved(ctx context.Context) ([]int64, error) {
	var ids []int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AddressCacheModel{}).
		Distinct().
		Where("geocoding_status = ? AND distance_km IS NOT NULL", string(entity.GeocodeStatusSuccess)).
		Pluck("customer_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list resolved customer IDs")
	}

	return ids, nil
}

// FilterCustomerIDs returns the subset of ids with at least one cache row matching the filter.
func (repo *addressCacheRepository) FilterCustomerIDs(ctx context.Context, ids []int64, filter repository.CacheFilter) ([]int64, error) {
	var matched []int64

	for _, chunk := range chunkInt64s(ids) {
		query := repo.db.WithContext(ctx).
			Model(&model.AddressCacheModel{}).
			Distinct().
			Where("customer_id IN ?", chunk)

		if filter.Province != nil {
			query = query.Where("province = ?", *filter.Province)
		}
		if filter.MinKm != nil {
			query = query.Where("distance_km >= ?", *filter.MinKm)
		}
		if filter.MaxKm != nil {
			query = query.Where("distance_km <= ?", *filter.MaxKm)
		}
		if filter.Status != nil {
			if *filter.Status == entity.GeocodeStatusUnresolved {
				query = query.Where("geocoding_status IS NULL")
			} else {
				query = query.Where("geocoding_status = ?", string(*filter.Status))
			}
		}
		if filter.HasDistance != nil {
			if *filter.HasDistance {
				query = query.Where("distance_km IS NOT NULL")
			} else {
				query = query.Where("distance_km IS NULL")
			}
		}

		var chunkIDs []int64
		if err := query.Pluck("customer_id", &chunkIDs).Error; err != nil {
			return nil, errors.Wrap(err, "failed to filter customer IDs by cache")
		}

		matched = append(matched, chunkIDs...)
	}

	return matched, nil
}

// --- Mapper Functions ---

// toCacheDomain converts a GORM AddressCacheModel to a domain AddressCache entity.
func toCacheDomain(data *model.AddressCacheModel) *entity.AddressCache {
	if data == nil {
		return nil
	}

	row := &entity.AddressCache{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		Address:        data.Address,
		SurveyID:       data.SurveyID,
		DistanceKm:     data.DistanceKm,
		Province:       data.Province,
		Error:          data.GeocodingError,
		LastVerifiedAt: data.LastVerifiedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		point := orb.Point{*data.Longitude, *data.Latitude}
		row.Location = &point
	}

	if data.GeocodingStatus != nil {
		row.Status = entity.GeocodeStatus(*data.GeocodingStatus)
	}

	return row
}

// fromCacheDomain converts a domain AddressCache entity to a GORM AddressCacheModel.
func fromCacheDomain(data *entity.AddressCache) *model.AddressCacheModel {
	if data == nil {
		return nil
	}

	cacheM := &model.AddressCacheModel{
		ID:             data.ID,
		CustomerID:     data.CustomerID,
		Address:        data.Address,
		SurveyID:       data.SurveyID,
		DistanceKm:     data.DistanceKm,
		Province:       data.Province,
		GeocodingError: data.Error,
		LastVerifiedAt: data.LastVerifiedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Location != nil {
		lat := data.Location.Lat()
		lng := data.Location.Lon()
		cacheM.Latitude = &lat
		cacheM.Longitude = &lng
	}

	if data.Status != entity.GeocodeStatusUnresolved {
		status := string(data.Status)
		cacheM.GeocodingStatus = &status
	}

	if cacheM.UpdatedAt.IsZero() {
		cacheM.UpdatedAt = time.Now()
	}

	return cacheM
}
