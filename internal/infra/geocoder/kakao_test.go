package geocoder

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rangefinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, apiKey, baseURL string) *KakaoGeocoder {
	t.Helper()

	cfg := &config.Config{
		Kakao: &config.KakaoConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Timeout: 5 * time.Second,
		},
	}

	svc := NewKakaoGeocoder(cfg, slog.Default())
	geocoder, ok := svc.(*KakaoGeocoder)
	require.True(t, ok)

	return geocoder
}

func TestKakaoGeocoder_Success(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		assert.Equal(t, addressSearchPath, r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[{"x":"127.0276","y":"37.4979"},{"x":"1","y":"2"}]}`))
	}))
	defer server.Close()

	g := newTestGeocoder(t, "test-key", server.URL)

	point, err := g.Geocode(context.Background(), "서울특별시 강남구 테헤란로 123")
	require.NoError(t, err)
	require.NotNil(t, point)

	assert.Equal(t, "KakaoAK test-key", gotAuth)
	assert.Equal(t, "서울특별시 강남구 테헤란로 123", gotQuery)
	assert.InDelta(t, 127.0276, point.Lon(), 1e-9)
	assert.InDelta(t, 37.4979, point.Lat(), 1e-9)
}

func TestKakaoGeocoder_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[]}`))
	}))
	defer server.Close()

	g := newTestGeocoder(t, "test-key", server.URL)

	point, err := g.Geocode(context.Background(), "존재하지 않는 주소")
	require.NoError(t, err)
	assert.Nil(t, point)
}

func TestKakaoGeocoder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[],"errorType":"AccessDeniedError","message":"wrong appKey"}`))
	}))
	defer server.Close()

	g := newTestGeocoder(t, "bad-key", server.URL)

	point, err := g.Geocode(context.Background(), "서울특별시 강남구")
	assert.Error(t, err)
	assert.Nil(t, point)
	assert.Contains(t, err.Error(), "AccessDeniedError")
}

func TestKakaoGeocoder_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := newTestGeocoder(t, "test-key", server.URL)

	point, err := g.Geocode(context.Background(), "서울특별시 강남구")
	assert.Error(t, err)
	assert.Nil(t, point)
	assert.Contains(t, err.Error(), "429")
}

func TestKakaoGeocoder_MissingKeyFailsClosed(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer server.Close()

	g := newTestGeocoder(t, "", server.URL)

	point, err := g.Geocode(context.Background(), "서울특별시 강남구")
	assert.Error(t, err)
	assert.Nil(t, point)
	assert.False(t, called, "geocoder must not call the provider without an api key")
}

func TestKakaoGeocoder_InvalidCoordinate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"documents":[{"x":"not-a-number","y":"37.5"}]}`))
	}))
	defer server.Close()

	g := newTestGeocoder(t, "test-key", server.URL)

	point, err := g.Geocode(context.Background(), "서울특별시 강남구")
	assert.Error(t, err)
	assert.Nil(t, point)
}
