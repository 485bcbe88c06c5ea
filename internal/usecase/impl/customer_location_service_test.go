package impl

import (
	"context"
	"testing"
	"time"

	"rangefinder/internal/domain/entity"
	"rangefinder/internal/domain/repository"
	mockRepo "rangefinder/internal/mocks/repository"
	"rangefinder/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationMocks struct {
	customerRepo *mockRepo.MockCustomerRepository
	surveyRepo   *mockRepo.MockSurveyRepository
	cacheRepo    *mockRepo.MockAddressCacheRepository
}

func newLocationService(t *testing.T) (usecase.CustomerLocationUsecase, *locationMocks) {
	t.Helper()

	m := &locationMocks{
		customerRepo: mockRepo.NewMockCustomerRepository(t),
		surveyRepo:   mockRepo.NewMockSurveyRepository(t),
		cacheRepo:    mockRepo.NewMockAddressCacheRepository(t),
	}
	service := NewCustomerLocationService(m.customerRepo, m.surveyRepo, m.cacheRepo)

	return service, m
}

func successCache(customerID int64, addr string, lat, lng, distance float64, province string) *entity.AddressCache {
	point := orb.Point{lng, lat}
	now := time.Now()

	return &entity.AddressCache{
		CustomerID:     customerID,
		Address:        addr,
		Location:       &point,
		DistanceKm:     &distance,
		Province:       &province,
		Status:         entity.GeocodeStatusSuccess,
		LastVerifiedAt: &now,
		UpdatedAt:      now,
	}
}

func TestCustomerLocationService_List_JoinsCacheAndSurvey(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 1, Name: "홍길동", Phone: "010-1111-1111", Address: "서울특별시 강남구"},
		{ID: 2, Name: "김철수", Phone: "010-2222-2222", Address: "경기도 수원시 영통구"},
	}

	m.customerRepo.EXPECT().Count(ctx).Return(int64(2), nil)
	m.customerRepo.EXPECT().ListIDs(ctx).Return([]int64{1, 2}, nil)
	m.customerRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return(customers, nil)
	m.cacheRepo.EXPECT().
		FindByCustomerIDs(ctx, []int64{1, 2}).
		Return([]*entity.AddressCache{
			successCache(1, "서울특별시 강남구", 37.4979, 127.0276, 24.2, "서울"),
		}, nil)
	m.surveyRepo.EXPECT().
		FindByPhones(ctx, mock.Anything).
		Return([]*entity.Survey{
			{ID: 9, Phone: "01022222222", Address: "경기도 수원시 영통구 광교로 1"},
		}, nil)

	result, err := service.List(ctx, &usecase.ListInput{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 2, result.FilteredTotal)
	require.Len(t, result.Rows, 2)

	byID := make(map[int64]*usecase.CustomerLocationRow, len(result.Rows))
	for _, row := range result.Rows {
		byID[row.CustomerID] = row
	}

	resolved := byID[1]
	require.NotNil(t, resolved)
	assert.Equal(t, entity.GeocodeStatusSuccess, resolved.Status)
	require.NotNil(t, resolved.DistanceKm)
	assert.InDelta(t, 24.2, *resolved.DistanceKm, 1e-9)
	assert.Equal(t, "서울", resolved.Province)

	unresolved := byID[2]
	require.NotNil(t, unresolved)
	assert.Equal(t, entity.GeocodeStatusUnresolved, unresolved.Status)
	assert.Nil(t, unresolved.DistanceKm)
	assert.Equal(t, "경기도 수원시 영통구 광교로 1", unresolved.SurveyAddress)
	// Province is backfilled from address text when no cache row resolved it.
	assert.Equal(t, "경기", unresolved.Province)
}

func TestCustomerLocationService_List_WithoutDistanceIncludesNeverAttempted(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	customers := []*entity.Customer{
		{ID: 2, Name: "김철수", Phone: "010-2222-2222", Address: "경기도 수원시"},
		{ID: 3, Name: "이영희", Phone: "010-3333-3333", Address: "부산광역시 해운대구"},
	}

	m.customerRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	m.customerRepo.EXPECT().ListIDs(ctx).Return([]int64{1, 2, 3}, nil)
	// Customer 1 has a successful distance row, 2 has only a failed row,
	// 3 has no cache row at all.
	m.cacheRepo.EXPECT().ListCustomerIDsResolved(ctx).Return([]int64{1}, nil)
	m.customerRepo.EXPECT().FindByIDs(ctx, []int64{2, 3}).Return(customers, nil)
	errMsg := "주소를 좌표로 변환하지 못했습니다"
	m.cacheRepo.EXPECT().
		FindByCustomerIDs(ctx, []int64{2, 3}).
		Return([]*entity.AddressCache{
			{CustomerID: 2, Address: "경기도 수원시", Status: entity.GeocodeStatusFailed, Error: &errMsg},
		}, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.List(ctx, &usecase.ListInput{Status: usecase.ListStatusWithoutDistance})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	ids := []int64{result.Rows[0].CustomerID, result.Rows[1].CustomerID}
	assert.ElementsMatch(t, []int64{2, 3}, ids)
}

func TestCustomerLocationService_List_MissingMeansNoCacheRow(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	m.customerRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	m.customerRepo.EXPECT().ListIDs(ctx).Return([]int64{1, 2, 3}, nil)
	// Customers 1 and 2 have cache rows of some status; only 3 is missing.
	m.cacheRepo.EXPECT().
		FilterCustomerIDs(ctx, []int64{1, 2, 3}, repository.CacheFilter{}).
		Return([]int64{1, 2}, nil)
	m.customerRepo.EXPECT().
		FindByIDs(ctx, []int64{3}).
		Return([]*entity.Customer{{ID: 3, Name: "이영희", Phone: "010-3333-3333"}}, nil)
	m.cacheRepo.EXPECT().FindByCustomerIDs(ctx, []int64{3}).Return(nil, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.List(ctx, &usecase.ListInput{Status: usecase.ListStatusMissing})
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, int64(3), result.Rows[0].CustomerID)
}

func TestCustomerLocationService_List_SearchIncludesSurveyAddresses(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	m.customerRepo.EXPECT().Count(ctx).Return(int64(10), nil)
	m.customerRepo.EXPECT().SearchIDs(ctx, "수원").Return([]int64{1}, nil)
	m.surveyRepo.EXPECT().SearchPhones(ctx, "수원").Return([]string{"01022222222"}, nil)
	m.customerRepo.EXPECT().FindIDsByPhoneDigits(ctx, []string{"01022222222"}).Return([]int64{2}, nil)

	m.customerRepo.EXPECT().
		FindByIDs(ctx, []int64{1, 2}).
		Return([]*entity.Customer{
			{ID: 1, Name: "홍길동", Address: "경기도 수원시"},
			{ID: 2, Name: "김철수", Phone: "010-2222-2222"},
		}, nil)
	m.cacheRepo.EXPECT().FindByCustomerIDs(ctx, []int64{1, 2}).Return(nil, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.List(ctx, &usecase.ListInput{Query: "수원"})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, 2, result.FilteredTotal)
}

func TestCustomerLocationService_List_DistanceSortKeepsNullsLast(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	d30, d10 := 30.0, 10.0
	customers := []*entity.Customer{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
		{ID: 3, Name: "c"},
	}

	m.customerRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	m.customerRepo.EXPECT().ListIDs(ctx).Return([]int64{1, 2, 3}, nil)
	m.customerRepo.EXPECT().FindByIDs(ctx, []int64{1, 2, 3}).Return(customers, nil)
	m.cacheRepo.EXPECT().
		FindByCustomerIDs(ctx, []int64{1, 2, 3}).
		Return([]*entity.AddressCache{
			{CustomerID: 1, Status: entity.GeocodeStatusSuccess, DistanceKm: &d30},
			{CustomerID: 3, Status: entity.GeocodeStatusSuccess, DistanceKm: &d10},
		}, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.List(ctx, &usecase.ListInput{SortBy: "distance", SortOrder: "asc"})
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, int64(3), result.Rows[0].CustomerID)
	assert.Equal(t, int64(1), result.Rows[1].CustomerID)
	// The row without a distance sorts last even ascending.
	assert.Equal(t, int64(2), result.Rows[2].CustomerID)
}

func TestCustomerLocationService_List_ProvinceAndDistanceFilter(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	minKm := 10.0
	province := "경기"

	m.customerRepo.EXPECT().Count(ctx).Return(int64(5), nil)
	m.customerRepo.EXPECT().ListIDs(ctx).Return([]int64{1, 2, 3, 4, 5}, nil)
	m.cacheRepo.EXPECT().
		FilterCustomerIDs(ctx, []int64{1, 2, 3, 4, 5}, repository.CacheFilter{Province: &province, MinKm: &minKm}).
		Return([]int64{2, 4}, nil)
	m.customerRepo.EXPECT().
		FindByIDs(ctx, []int64{2, 4}).
		Return([]*entity.Customer{{ID: 2}, {ID: 4}}, nil)
	m.cacheRepo.EXPECT().FindByCustomerIDs(ctx, []int64{2, 4}).Return(nil, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.List(ctx, &usecase.ListInput{Province: province, DistanceMin: &minKm})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilteredTotal)
}

func TestCustomerLocationService_List_Pagination(t *testing.T) {
	service, m := newLocationService(t)
	ctx := context.Background()

	customers := []*entity.Customer{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}

	m.customerRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	m.customerRepo.EXPECT().ListIDs(ctx).Return([]int64{1, 2, 3}, nil)
	m.customerRepo.EXPECT().FindByIDs(ctx, []int64{1, 2, 3}).Return(customers, nil)
	m.cacheRepo.EXPECT().FindByCustomerIDs(ctx, []int64{1, 2, 3}).Return(nil, nil)
	m.surveyRepo.EXPECT().FindByPhones(ctx, mock.Anything).Return(nil, nil)

	result, err := service.List(ctx, &usecase.ListInput{SortBy: "name", SortOrder: "asc", Limit: 2, Offset: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilteredTotal)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "c", result.Rows[0].Name)
}
