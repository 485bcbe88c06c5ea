// Package service defines interfaces for external service integrations.
package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeocoderService resolves a free-text address to a WGS84 coordinate.
type GeocoderService interface {
	// Geocode resolves the address through the provider. Returns (nil, nil)
	// when the provider knows no match for the address, and a non-nil error
	// for transport or provider failures.
	Geocode(ctx context.Context, address string) (*orb.Point, error)
}
