package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rangefinder/config"
	"rangefinder/internal/domain/address"
	"rangefinder/internal/domain/entity"
	domainerrors "rangefinder/internal/domain/errors"
	"rangefinder/internal/domain/geo"
	"rangefinder/internal/domain/repository"
	"rangefinder/internal/domain/service"
	"rangefinder/internal/usecase"
	"rangefinder/internal/util"

	"github.com/paulmach/orb"
	"golang.org/x/time/rate"
)

const genericGeocodeFailure = "주소를 좌표로 변환하지 못했습니다"

type geocodingService struct {
	customerRepo repository.CustomerRepository
	surveyRepo   repository.SurveyRepository
	cacheRepo    repository.AddressCacheRepository
	geocoder     service.GeocoderService
	limiter      *rate.Limiter
	store        orb.Point
	batchLimit   int
	maxErrors    int
	logger       *slog.Logger
}

// NewGeocodingService creates a new geocoding service instance
func NewGeocodingService(
	customerRepo repository.CustomerRepository,
	surveyRepo repository.SurveyRepository,
	cacheRepo repository.AddressCacheRepository,
	geocoder service.GeocoderService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeocodingUsecase {
	interval := cfg.Kakao.RequestInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	return &geocodingService{
		customerRepo: customerRepo,
		surveyRepo:   surveyRepo,
		cacheRepo:    cacheRepo,
		geocoder:     geocoder,
		limiter:      rate.NewLimiter(rate.Every(interval), 1),
		store:        orb.Point{cfg.Store.Longitude, cfg.Store.Latitude},
		batchLimit:   cfg.Batch.DefaultLimit,
		maxErrors:    cfg.Batch.MaxErrors,
		logger:       logger,
	}
}

// Reconcile resolves one customer's address and persists the outcome.
func (s *geocodingService) Reconcile(ctx context.Context, input *usecase.ReconcileInput) (*usecase.ReconcileResult, error) {
	trimmed := strings.TrimSpace(input.Address)
	if trimmed == "" {
		return nil, domainerrors.ErrEmptyAddress
	}

	normalized := address.Normalize(trimmed)

	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	// Placeholder addresses invalidate every prior resolution for the
	// customer. This reset path never calls the geocoder.
	if address.IsPlaceholder(normalized) {
		if err := s.cacheRepo.DeleteByCustomer(ctx, customer.ID); err != nil {
			return nil, err
		}
		if err := s.cacheRepo.Upsert(ctx, entity.NewUnresolvedCache(customer.ID, normalized)); err != nil {
			return nil, err
		}

		s.syncAddresses(ctx, customer, normalized)

		return &usecase.ReconcileResult{
			Resolved: false,
			Status:   entity.GeocodeStatusUnresolved,
			Message:  fmt.Sprintf("지오코딩 대상이 아닌 주소입니다: %s", normalized),
		}, nil
	}

	if !address.IsGeocodable(normalized) {
		return nil, domainerrors.ErrAddressNotUsable
	}

	effective := normalized
	var surveyID *int64

	// A survey record matched by digits-only phone is preferred over the
	// user-supplied address when its own address is usable.
	digits := customer.PhoneDigits()
	if digits != "" {
		survey, err := s.surveyRepo.FindFirstByPhone(ctx, digits)
		if err != nil {
			return nil, err
		}
		if survey != nil {
			surveyAddr := address.Normalize(survey.Address)
			if address.IsGeocodable(surveyAddr) {
				effective = surveyAddr
				surveyID = &survey.ID
			}
		}
	}

	province := address.ExtractProvince(effective)

	point, geocodeErr := s.geocoder.Geocode(ctx, effective)
	if geocodeErr != nil || point == nil {
		errMsg := genericGeocodeFailure
		if geocodeErr != nil {
			s.logger.ErrorContext(ctx, "geocode request failed",
				slog.Int64("customerID", customer.ID),
				slog.Any("error", geocodeErr))
		}

		row := entity.NewFailedCache(customer.ID, effective, province, errMsg)
		row.SurveyID = surveyID
		if err := s.cacheRepo.Upsert(ctx, row); err != nil {
			return nil, err
		}

		return &usecase.ReconcileResult{
			Resolved: false,
			Status:   entity.GeocodeStatusFailed,
			Province: province,
			Message:  fmt.Sprintf("지오코딩에 실패했습니다: %s", errMsg),
		}, nil
	}

	distance := geo.DistanceKm(s.store, *point)

	row := entity.NewSuccessCache(customer.ID, effective, *point, distance, province)
	row.SurveyID = surveyID
	if err := s.cacheRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}

	s.syncAddresses(ctx, customer, effective)

	lat := point.Lat()
	lng := point.Lon()

	return &usecase.ReconcileResult{
		Resolved:   true,
		Status:     entity.GeocodeStatusSuccess,
		Latitude:   &lat,
		Longitude:  &lng,
		DistanceKm: &distance,
		Province:   province,
		Message:    fmt.Sprintf("지오코딩 완료: 매장까지 거리 %.2fkm", distance),
	}, nil
}

// syncAddresses back-propagates the effective address to the customer record
// and any surveys sharing the phone number. Best-effort; failures are logged
// and never fail the reconciliation.
func (s *geocodingService) syncAddresses(ctx context.Context, customer *entity.Customer, effective string) {
	if customer.Address != effective {
		if err := s.customerRepo.UpdateAddress(ctx, customer.ID, effective); err != nil {
			s.logger.WarnContext(ctx, "failed to sync customer address",
				slog.Int64("customerID", customer.ID),
				slog.Any("error", err))
		}
	}

	digits := customer.PhoneDigits()
	if digits == "" {
		return
	}
	if err := s.surveyRepo.UpdateAddressByPhone(ctx, digits, effective); err != nil {
		s.logger.WarnContext(ctx, "failed to sync survey address",
			slog.Int64("customerID", customer.ID),
			slog.Any("error", err))
	}
}

// ReconcileBatch resolves many customers sequentially with rate limiting.
func (s *geocodingService) ReconcileBatch(ctx context.Context, input *usecase.BatchInput) (*usecase.BatchResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = s.batchLimit
	}
	explicit := len(input.CustomerIDs) > 0

	customers, err := s.customerRepo.FindGeocodable(ctx, input.CustomerIDs, limit)
	if err != nil {
		return nil, err
	}

	if len(customers) == 0 {
		return &usecase.BatchResult{Message: "지오코딩할 고객이 없습니다."}, nil
	}

	surveyByPhone, err := s.loadSurveys(ctx, customers)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	result := &usecase.BatchResult{}

	for _, customer := range customers {
		effective, surveyID := effectiveAddress(customer, surveyByPhone)
		if effective == "" {
			// Neither the survey nor the stored address is usable; the
			// customer is skipped and not counted as processed.
			continue
		}

		// A fresh successful row short-circuits a catch-up run. Explicit ID
		// lists and force runs always re-resolve.
		if !input.ForceReRun && !explicit {
			existing, findErr := s.cacheRepo.Find(ctx, customer.ID, effective)
			if findErr != nil {
				s.logger.WarnContext(ctx, "failed to check cache row, re-resolving",
					slog.Int64("customerID", customer.ID),
					slog.Any("error", findErr))
			} else if existing != nil && existing.Status.IsSuccess() {
				continue
			}
		}

		if err := s.limiter.Wait(ctx); err != nil {
			// Context cancelled mid-batch; report what was done so far.
			s.logger.WarnContext(ctx, "batch geocoding interrupted", slog.Any("error", err))

			break
		}

		result.Processed++

		province := address.ExtractProvince(effective)

		point, geocodeErr := s.geocoder.Geocode(ctx, effective)
		if geocodeErr != nil || point == nil {
			result.Failed++
			s.recordBatchError(result, customer.ID, geocodeErr)

			row := entity.NewFailedCache(customer.ID, effective, province, genericGeocodeFailure)
			row.SurveyID = surveyID
			if err := s.cacheRepo.Upsert(ctx, row); err != nil {
				s.logger.WarnContext(ctx, "failed to persist failed cache row",
					slog.Int64("customerID", customer.ID),
					slog.Any("error", err))
			}

			continue
		}

		distance := geo.DistanceKm(s.store, *point)

		row := entity.NewSuccessCache(customer.ID, effective, *point, distance, province)
		row.SurveyID = surveyID
		if err := s.cacheRepo.Upsert(ctx, row); err != nil {
			result.Failed++
			s.recordBatchError(result, customer.ID, err)

			continue
		}

		result.Succeeded++
	}

	result.Message = fmt.Sprintf("지오코딩 완료: 처리 %d건, 성공 %d건, 실패 %d건",
		result.Processed, result.Succeeded, result.Failed)

	s.logger.InfoContext(ctx, "batch geocoding finished",
		slog.Int("processed", result.Processed),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed),
		slog.String("elapsed", util.FormatDuration(time.Since(started))))

	return result, nil
}

// loadSurveys fetches the newest survey per phone for the given customers.
func (s *geocodingService) loadSurveys(ctx context.Context, customers []*entity.Customer) (map[string]*entity.Survey, error) {
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

	// Surveys arrive newest first; keep the first per phone.
	byPhone := make(map[string]*entity.Survey, len(surveys))
	for _, survey := range surveys {
		d := survey.PhoneDigits()
		if _, ok := byPhone[d]; !ok {
			byPhone[d] = survey
		}
	}

	return byPhone, nil
}

// effectiveAddress picks the survey address when usable, else the customer's
// own. Returns "" when neither can be geocoded.
func effectiveAddress(customer *entity.Customer, surveyByPhone map[string]*entity.Survey) (string, *int64) {
	if survey, ok := surveyByPhone[customer.PhoneDigits()]; ok {
		surveyAddr := address.Normalize(survey.Address)
		if address.IsGeocodable(surveyAddr) {
			return surveyAddr, &survey.ID
		}
	}

	own := address.Normalize(customer.Address)
	if address.IsGeocodable(own) {
		return own, nil
	}

	return "", nil
}

// recordBatchError appends a capped, human-readable error sample.
func (s *geocodingService) recordBatchError(result *usecase.BatchResult, customerID int64, err error) {
	if len(result.Errors) >= s.maxErrors {
		return
	}

	msg := genericGeocodeFailure
	if err != nil {
		msg = err.Error()
	}
	result.Errors = append(result.Errors, fmt.Sprintf("고객 %d: %s", customerID, msg))
}
