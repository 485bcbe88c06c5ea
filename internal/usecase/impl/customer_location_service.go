package impl

import (
	"context"
	"sort"
	"strings"

	"rangefinder/internal/domain/address"
	"rangefinder/internal/domain/entity"
	"rangefinder/internal/domain/repository"
	"rangefinder/internal/usecase"
)

const defaultPageLimit = 50

type customerLocationService struct {
	customerRepo repository.CustomerRepository
	surveyRepo   repository.SurveyRepository
	cacheRepo    repository.AddressCacheRepository
}

// NewCustomerLocationService creates a new customer location query service instance
func NewCustomerLocationService(
	customerRepo repository.CustomerRepository,
	surveyRepo repository.SurveyRepository,
	cacheRepo repository.AddressCacheRepository,
) usecase.CustomerLocationUsecase {
	return &customerLocationService{
		customerRepo: customerRepo,
		surveyRepo:   surveyRepo,
		cacheRepo:    cacheRepo,
	}
}

// List pages customers joined with survey addresses and cache rows.
//
// Candidate customer IDs are materialized first, narrowed through the cache
// table in batched IN queries, then assembled and sorted in memory before
// pagination. This holds the full candidate set in memory and is sized for
// tens of thousands of customers, not millions.
func (s *customerLocationService) List(ctx context.Context, input *usecase.ListInput) (*usecase.ListResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	total, err := s.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := s.candidateIDs(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	ids, err = s.applyStatusFilter(ctx, ids, input.Status)
	if err != nil {
		return nil, err
	}

	ids, err = s.applyCacheFilter(ctx, ids, input)
	if err != nil {
		return nil, err
	}

	rows, err := s.assembleRows(ctx, ids)
	if err != nil {
		return nil, err
	}

	sortRows(rows, input.SortBy, input.SortOrder)

	filteredTotal := len(rows)

	if offset >= len(rows) {
		rows = nil
	} else {
		end := offset + limit
		if end > len(rows) {
			end = len(rows)
		}
		rows = rows[offset:end]
	}

	return &usecase.ListResult{
		Rows:          rows,
		FilteredTotal: filteredTotal,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// candidateIDs materializes the starting ID set: all customers, or those
// matched by free-text search over name/phone/address including survey
// addresses.
func (s *customerLocationService) candidateIDs(ctx context.Context, query string) ([]int64, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return s.customerRepo.ListIDs(ctx)
	}

	ids, err := s.customerRepo.SearchIDs(ctx, term)
	if err != nil {
		return nil, err
	}

	// Surveys are an address source too; a hit on a survey address pulls in
	// the customers sharing that phone.
	phones, err := s.surveyRepo.SearchPhones(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(phones) > 0 {
		extra, err := s.customerRepo.FindIDsByPhoneDigits(ctx, phones)
		if err != nil {
			return nil, err
		}
		ids = unionIDs(ids, extra)
	}

	return ids, nil
}

// applyStatusFilter narrows ids by resolution status. The without_distance and
// missing buckets are complements over the candidate set, so customers with no
// cache row at all are included.
func (s *customerLocationService) applyStatusFilter(ctx context.Context, ids []int64, status string) ([]int64, error) {
	switch status {
	case "", usecase.ListStatusAll:
		return ids, nil

	case usecase.ListStatusWithDistance:
		hasDistance := true

		return s.cacheRepo.FilterCustomerIDs(ctx, ids, repository.CacheFilter{HasDistance: &hasDistance})

	case usecase.ListStatusWithoutDistance:
		resolved, err := s.cacheRepo.ListCustomerIDsResolved(ctx)
		if err != nil {
			return nil, err
		}

		return subtractIDs(ids, resolved), nil

	case usecase.ListStatusSuccess:
		success := entity.GeocodeStatusSuccess

		return s.cacheRepo.FilterCustomerIDs(ctx, ids, repository.CacheFilter{Status: &success})

	case usecase.ListStatusFailed:
		failed := entity.GeocodeStatusFailed

		return s.cacheRepo.FilterCustomerIDs(ctx, ids, repository.CacheFilter{Status: &failed})

	case usecase.ListStatusMissing:
		attempted, err := s.cacheRepo.FilterCustomerIDs(ctx, ids, repository.CacheFilter{})
		if err != nil {
			return nil, err
		}

		return subtractIDs(ids, attempted), nil
	}

	return ids, nil
}

// applyCacheFilter narrows ids by province and distance range in one pass.
func (s *customerLocationService) applyCacheFilter(ctx context.Context, ids []int64, input *usecase.ListInput) ([]int64, error) {
	filter := repository.CacheFilter{
		MinKm: input.DistanceMin,
		MaxKm: input.DistanceMax,
	}
	if input.Province != "" {
		filter.Province = &input.Province
	}

	if filter.Province == nil && filter.MinKm == nil && filter.MaxKm == nil {
		return ids, nil
	}

	return s.cacheRepo.FilterCustomerIDs(ctx, ids, filter)
}

// assembleRows joins customers with their survey address and best cache row.
func (s *customerLocationService) assembleRows(ctx context.Context, ids []int64) ([]*usecase.CustomerLocationRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	customers, err := s.customerRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	caches, err := s.cacheRepo.FindByCustomerIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	cacheByCustomer := pickCacheRows(caches)

	digits := make([]string, 0, len(customers))
	seen := make(map[string]struct{}, len(customers))
	for _, customer := range customers {
		d := customer.PhoneDigits()
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		digits = append(digits, d)
	}

	surveys, err := s.surveyRepo.FindByPhones(ctx, digits)
	if err != nil {
		return nil, err
	}
	surveyByPhone := make(map[string]*entity.Survey, len(surveys))
	for _, survey := range surveys {
		d := survey.PhoneDigits()
		if _, ok := surveyByPhone[d]; !ok {
			surveyByPhone[d] = survey
		}
	}

	rows := make([]*usecase.CustomerLocationRow, 0, len(customers))
	for _, customer := range customers {
		row := &usecase.CustomerLocationRow{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Phone:      customer.Phone,
			Address:    customer.Address,
			UpdatedAt:  customer.UpdatedAt,
		}

		if survey, ok := surveyByPhone[customer.PhoneDigits()]; ok {
			row.SurveyAddress = survey.Address
		}

		if cache, ok := cacheByCustomer[customer.ID]; ok {
			row.Status = cache.Status
			row.DistanceKm = cache.DistanceKm
			row.LastVerifiedAt = cache.LastVerifiedAt
			if cache.Location != nil {
				lat := cache.Location.Lat()
				lng := cache.Location.Lon()
				row.Latitude = &lat
				row.Longitude = &lng
			}
			if cache.Province != nil {
				row.Province = *cache.Province
			}
			if cache.Error != nil {
				row.Error = *cache.Error
			}
		}

		// Province backfill from address text for rows the cache never
		// resolved or resolved without a province.
		if row.Province == "" {
			source := row.SurveyAddress
			if source == "" {
				source = customer.Address
			}
			row.Province = address.ExtractProvince(source)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// pickCacheRows chooses one row per customer: the newest successful row when
// any exists, else the newest row of any status. Input is ordered newest first.
func pickCacheRows(caches []*entity.AddressCache) map[int64]*entity.AddressCache {
	byCustomer := make(map[int64]*entity.AddressCache, len(caches))
	for _, cache := range caches {
		current, ok := byCustomer[cache.CustomerID]
		if !ok {
			byCustomer[cache.CustomerID] = cache

			continue
		}
		if !current.Status.IsSuccess() && cache.Status.IsSuccess() {
			byCustomer[cache.CustomerID] = cache
		}
	}

	return byCustomer
}

// sortRows orders rows in memory. Distance sorting keeps rows without a
// distance at the end regardless of direction.
func sortRows(rows []*usecase.CustomerLocationRow, sortBy, sortOrder string) {
	desc := sortOrder == "desc" || (sortOrder == "" && (sortBy == "" || sortBy == "updated_at"))

	less := func(a, b *usecase.CustomerLocationRow) bool {
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "address":
			return a.Address < b.Address
		case "status":
			return a.Status < b.Status
		case "distance":
			// handled below
			return false
		default:
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	}

	if sortBy == "distance" {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].DistanceKm, rows[j].DistanceKm
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			if desc {
				return *a > *b
			}

			return *a < *b
		})

		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}

		return less(rows[i], rows[j])
	})
}

// unionIDs merges two ID lists preserving first-seen order.
func unionIDs(a, b []int64) []int64 {
	seen := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range b {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// subtractIDs removes every ID in b from a, preserving order.
func subtractIDs(a, b []int64) []int64 {
	drop := make(map[int64]struct{}, len(b))
	for _, id := range b {
		drop[id] = struct{}{}
	}

	out := make([]int64, 0, len(a))
	for _, id := range a {
		if _, ok := drop[id]; ok {
			continue
		}
		out = append(out, id)
	}

	return out
}
