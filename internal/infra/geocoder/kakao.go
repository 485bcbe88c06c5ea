// Package geocoder implements the geocoder service against the Kakao Local API.
package geocoder

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"rangefinder/config"
	"rangefinder/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const addressSearchPath = "/v2/local/search/address.json"

// KakaoGeocoder resolves addresses through the Kakao Local address search API.
type KakaoGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewKakaoGeocoder creates a Kakao-backed geocoder service.
func NewKakaoGeocoder(cfg *config.Config, logger *slog.Logger) service.GeocoderService {
	return &KakaoGeocoder{
		apiKey:  cfg.Kakao.APIKey,
		baseURL: cfg.Kakao.BaseURL,
		client:  &http.Client{Timeout: cfg.Kakao.Timeout},
		logger:  logger,
	}
}

type kakaoDocument struct {
	X string `json:"x"` // longitude
	Y string `json:"y"` // latitude
}

type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
	ErrorType string          `json:"errorType"`
	Message   string          `json:"message"`
}

// Geocode resolves the address to a WGS84 coordinate. Returns (nil, nil) when
// the provider has no match; transport and provider faults are errors.
func (g *KakaoGeocoder) Geocode(ctx context.Context, address string) (*orb.Point, error) {
	if g.apiKey == "" {
		g.logger.ErrorContext(ctx, "kakao api key is not configured, skipping geocode request")

		return nil, errors.New("kakao api key is not configured")
	}

	endpoint := g.baseURL + addressSearchPath + "?query=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create geocode request")
	}

	req.Header.Set("Authorization", "KakaoAK "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call kakao address search")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("kakao address search failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode kakao response")
	}

	if payload.ErrorType != "" {
		return nil, errors.Errorf("kakao address search error %s: %s", payload.ErrorType, payload.Message)
	}

	if len(payload.Documents) == 0 {
		return nil, nil
	}

	doc := payload.Documents[0]

	lng, err := strconv.ParseFloat(doc.X, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid longitude %q in kakao response", doc.X)
	}

	lat, err := strconv.ParseFloat(doc.Y, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid latitude %q in kakao response", doc.Y)
	}

	return &orb.Point{lng, lat}, nil
}
