package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rangefinder/config"
	"rangefinder/internal/domain/entity"
	domainerrors "rangefinder/internal/domain/errors"
	"rangefinder/internal/domain/geo"
	mockRepo "rangefinder/internal/mocks/repository"
	mockService "rangefinder/internal/mocks/service"
	"rangefinder/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testStore = orb.Point{127.0498, 37.2808}

func newTestConfig() *config.Config {
	return &config.Config{
		Kakao: &config.KakaoConfig{RequestInterval: time.Millisecond},
		Store: &config.StoreConfig{Latitude: testStore.Lat(), Longitude: testStore.Lon()},
		Batch: &config.BatchConfig{DefaultLimit: 10000, MaxErrors: 10},
	}
}

type geocodingMocks struct {
	customerRepo *mockRepo.MockCustomerRepository
	surveyRepo   *mockRepo.MockSurveyRepository
	cacheRepo    *mockRepo.MockAddressCacheRepository
	geocoder     *mockService.MockGeocoderService
}

func newGeocodingService(t *testing.T) (usecase.GeocodingUsecase, *geocodingMocks) {
	t.Helper()

	m := &geocodingMocks{
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		surveyRepo:   mockRepo.NewMockSurveyRepository(t),
		cacheRepo:    mockRepo.NewMockAddressCacheRepository(t),
		geocoder:     mockService.NewMockGeocoderService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewGeocodingService(m.customerRepo, m.surveyRepo, m.cacheRepo, m.geocoder, newTestConfig(), logger)

	return service, m
}

func TestGeocodingService_Reconcile_EmptyAddress(t *testing.T) {
	service, _ := newGeocodingService(t)

	_, err := service.Reconcile(context.Background(), &usecase.ReconcileInput{
		CustomerID: 1,
		Address:    "   ",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyAddress)
}

func TestGeocodingService_Reconcile_CustomerNotFound(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	m.customerRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, domainerrors.ErrCustomerNotFound)

	_, err := service.Reconcile(ctx, &usecase.ReconcileInput{
		CustomerID: 99,
		Address:    "서울특별시 강남구",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestGeocodingService_Reconcile_Success(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 1, Name: "홍길동", Phone: "010-1234-5678", Address: "옛 주소"}
	inputAddr := "서울특별시 강남구 테헤란로 123"
	point := orb.Point{127.0276, 37.4979}

	m.customerRepo.EXPECT().FindByID(ctx, int64(1)).Return(customer, nil)
	m.surveyRepo.EXPECT().FindFirstByPhone(ctx, "01012345678").Return(nil, nil)
	m.geocoder.EXPECT().Geocode(ctx, inputAddr).Return(&point, nil)

	var savedRow *entity.AddressCache
	m.cacheRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).
		Run(func(_ context.Context, cache *entity.AddressCache) {
			savedRow = cache
		}).
		Return(nil)

	m.customerRepo.EXPECT().UpdateAddress(ctx, int64(1), inputAddr).Return(nil)
	m.surveyRepo.EXPECT().UpdateAddressByPhone(ctx, "01012345678", inputAddr).Return(nil)

	result, err := service.Reconcile(ctx, &usecase.ReconcileInput{CustomerID: 1, Address: inputAddr})
	require.NoError(t, err)

	assert.True(t, result.Resolved)
	assert.Equal(t, entity.GeocodeStatusSuccess, result.Status)
	assert.Equal(t, "서울", result.Province)
	require.NotNil(t, result.DistanceKm)

	wantDistance := geo.DistanceKm(testStore, point)
	assert.InDelta(t, wantDistance, *result.DistanceKm, 1e-9)
	assert.Contains(t, result.Message, "km")

	require.NotNil(t, savedRow)
	assert.Equal(t, int64(1), savedRow.CustomerID)
	assert.Equal(t, inputAddr, savedRow.Address)
	assert.Equal(t, entity.GeocodeStatusSuccess, savedRow.Status)
	require.NotNil(t, savedRow.DistanceKm)
	assert.InDelta(t, wantDistance, *savedRow.DistanceKm, 1e-9)
	require.NotNil(t, savedRow.Province)
	assert.Equal(t, "서울", *savedRow.Province)
	assert.Nil(t, savedRow.SurveyID)
}

func TestGeocodingService_Reconcile_PrefersSurveyAddress(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 2, Phone: "010-9999-8888", Address: "서울특별시 강남구"}
	survey := &entity.Survey{ID: 7, Phone: "01099998888", Address: "경기도 수원시 영통구 광교로 1"}
	point := orb.Point{127.0498, 37.2808}

	m.customerRepo.EXPECT().FindByID(ctx, int64(2)).Return(customer, nil)
	m.surveyRepo.EXPECT().FindFirstByPhone(ctx, "01099998888").Return(survey, nil)
	m.geocoder.EXPECT().Geocode(ctx, survey.Address).Return(&point, nil)

	var savedRow *entity.AddressCache
	m.cacheRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).
		Run(func(_ context.Context, cache *entity.AddressCache) {
			savedRow = cache
		}).
		Return(nil)

	m.customerRepo.EXPECT().UpdateAddress(ctx, int64(2), survey.Address).Return(nil)
	m.surveyRepo.EXPECT().UpdateAddressByPhone(ctx, "01099998888", survey.Address).Return(nil)

	result, err := service.Reconcile(ctx, &usecase.ReconcileInput{CustomerID: 2, Address: "서울특별시 강남구"})
	require.NoError(t, err)

	assert.True(t, result.Resolved)
	assert.Equal(t, "경기", result.Province)

	require.NotNil(t, savedRow)
	assert.Equal(t, survey.Address, savedRow.Address)
	require.NotNil(t, savedRow.SurveyID)
	assert.Equal(t, int64(7), *savedRow.SurveyID)
}

func TestGeocodingService_Reconcile_GeocoderMiss(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 3, Phone: "010-1111-2222", Address: ""}
	inputAddr := "경기도 수원시 영통구 없는길 99"

	m.customerRepo.EXPECT().FindByID(ctx, int64(3)).Return(customer, nil)
	m.surveyRepo.EXPECT().FindFirstByPhone(ctx, "01011112222").Return(nil, nil)
	m.geocoder.EXPECT().Geocode(ctx, inputAddr).Return(nil, nil)

	var savedRow *entity.AddressCache
	m.cacheRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).
		Run(func(_ context.Context, cache *entity.AddressCache) {
			savedRow = cache
		}).
		Return(nil)

	result, err := service.Reconcile(ctx, &usecase.ReconcileInput{CustomerID: 3, Address: inputAddr})
	require.NoError(t, err)

	assert.False(t, result.Resolved)
	assert.Equal(t, entity.GeocodeStatusFailed, result.Status)
	assert.Equal(t, "경기", result.Province)
	assert.Nil(t, result.DistanceKm)
	assert.Contains(t, result.Message, "실패")

	require.NotNil(t, savedRow)
	assert.Equal(t, entity.GeocodeStatusFailed, savedRow.Status)
	assert.Nil(t, savedRow.Location)
	assert.Nil(t, savedRow.DistanceKm)
	require.NotNil(t, savedRow.Province)
	assert.Equal(t, "경기", *savedRow.Province)
	require.NotNil(t, savedRow.Error)
	assert.NotEmpty(t, *savedRow.Error)
}

func TestGeocodingService_Reconcile_PlaceholderResetsCache(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customer := &entity.Customer{ID: 4, Phone: "010-3333-4444", Address: "경기도 수원시"}

	m.customerRepo.EXPECT().FindByID(ctx, int64(4)).Return(customer, nil)
	m.cacheRepo.EXPECT().DeleteByCustomer(ctx, int64(4)).Return(nil)

	var savedRow *entity.AddressCache
	m.cacheRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).
		Run(func(_ context.Context, cache *entity.AddressCache) {
			savedRow = cache
		}).
		Return(nil)

	m.customerRepo.EXPECT().UpdateAddress(ctx, int64(4), "[직접방문]").Return(nil)
	m.surveyRepo.EXPECT().UpdateAddressByPhone(ctx, "01033334444", "[직접방문]").Return(nil)

	result, err := service.Reconcile(ctx, &usecase.ReconcileInput{CustomerID: 4, Address: "직접 방문"})
	require.NoError(t, err)

	assert.False(t, result.Resolved)
	assert.Equal(t, entity.GeocodeStatusUnresolved, result.Status)

	require.NotNil(t, savedRow)
	assert.Equal(t, "[직접방문]", savedRow.Address)
	assert.Equal(t, entity.GeocodeStatusUnresolved, savedRow.Status)
	assert.Nil(t, savedRow.Location)
	assert.Nil(t, savedRow.DistanceKm)
}

func TestGeocodingService_ReconcileBatch_NothingToDo(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	m.customerRepo.EXPECT().
		FindGeocodable(ctx, mock.Anything, 10000).
		Return(nil, nil)

	result, err := service.ReconcileBatch(ctx, &usecase.BatchInput{})
	require.NoError(t, err)

	assert.Zero(t, result.Processed)
	assert.Equal(t, "지오코딩할 고객이 없습니다.", result.Message)
}

func TestGeocodingService_ReconcileBatch_SkipsExistingSuccess(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 1, Phone: "010-1111-1111", Address: "서울특별시 강남구 테헤란로 1"},
		{ID: 2, Phone: "010-2222-2222", Address: "경기도 수원시 영통구 광교로 2"},
	}
	point := orb.Point{127.0, 37.5}

	m.customerRepo.EXPECT().
		FindGeocodable(ctx, mock.Anything, 10000).
		Return(customers, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	dist := 12.3
	m.cacheRepo.EXPECT().
		Find(ctx, int64(1), customers[0].Address).
		Return(&entity.AddressCache{
			CustomerID: 1,
			Address:    customers[0].Address,
			Status:     entity.GeocodeStatusSuccess,
			DistanceKm: &dist,
		}, nil)
	m.cacheRepo.EXPECT().
		Find(ctx, int64(2), customers[1].Address).
		Return(nil, nil)

	m.geocoder.EXPECT().Geocode(ctx, customers[1].Address).Return(&point, nil)
	m.cacheRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).Return(nil)

	result, err := service.ReconcileBatch(ctx, &usecase.BatchInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Succeeded)
	assert.Zero(t, result.Failed)
}

func TestGeocodingService_ReconcileBatch_ForceReRunReprocesses(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 1, Phone: "010-1111-1111", Address: "서울특별시 강남구 테헤란로 1"},
	}
	point := orb.Point{127.0, 37.5}

	m.customerRepo.EXPECT().
		FindGeocodable(ctx, mock.Anything, 10000).
		Return(customers, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	// No cache lookup happens on a force run.
	m.geocoder.EXPECT().Geocode(ctx, customers[0].Address).Return(&point, nil)
	m.cacheRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).Return(nil)

	result, err := service.ReconcileBatch(ctx, &usecase.BatchInput{ForceReRun: true})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Succeeded)
}

func TestGeocodingService_ReconcileBatch_ExplicitIDsAlwaysReprocess(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 5, Phone: "010-5555-5555", Address: "서울특별시 강남구 테헤란로 5"},
	}
	point := orb.Point{127.0, 37.5}

	m.customerRepo.EXPECT().
		FindGeocodable(ctx, []int64{5}, 10000).
		Return(customers, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	m.geocoder.EXPECT().Geocode(ctx, customers[0].Address).Return(&point, nil)
	m.cacheRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).Return(nil)

	result, err := service.ReconcileBatch(ctx, &usecase.BatchInput{CustomerIDs: []int64{5}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Succeeded)
}

func TestGeocodingService_ReconcileBatch_CollectsErrors(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 1, Phone: "010-1111-1111", Address: "서울특별시 강남구 테헤란로 1"},
		{ID: 2, Phone: "010-2222-2222", Address: "경기도 수원시 영통구 광교로 2"},
	}
	point := orb.Point{127.0, 37.5}

	m.customerRepo.EXPECT().
		FindGeocodable(ctx, mock.Anything, 10000).
		Return(customers, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	m.geocoder.EXPECT().
		Geocode(ctx, customers[0].Address).
		Return(nil, errors.New("provider unavailable"))
	m.geocoder.EXPECT().Geocode(ctx, customers[1].Address).Return(&point, nil)

	m.cacheRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.AddressCache")).Return(nil).Times(2)

	result, err := service.ReconcileBatch(ctx, &usecase.BatchInput{ForceReRun: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "고객 1")
	assert.Contains(t, result.Message, "처리 2건")
}

func TestGeocodingService_ReconcileBatch_SkipsUnusableAddresses(t *testing.T) {
	service, m := newGeocodingService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 1, Phone: "010-1111-1111", Address: "[주소 미제공]"},
	}

	m.customerRepo.EXPECT().
		FindGeocodable(ctx, mock.Anything, 10000).
		Return(customers, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.ReconcileBatch(ctx, &usecase.BatchInput{ForceReRun: true})
	require.NoError(t, err)

	assert.Zero(t, result.Processed)
	assert.Zero(t, result.Succeeded)
	assert.Zero(t, result.Failed)
}
