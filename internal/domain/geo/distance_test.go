package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	points := []orb.Point{
		{127.0498, 37.2808},
		{0, 0},
		{-151.2093, -33.8688},
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	store := orb.Point{127.0498, 37.2808}  // Suwon
	gangnam := orb.Point{127.0276, 37.4979} // Seoul Gangnam

	assert.InDelta(t, DistanceKm(store, gangnam), DistanceKm(gangnam, store), 1e-12)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Store (Suwon) to Gangnam station is roughly 24km as the crow flies.
	store := orb.Point{127.0498, 37.2808}
	gangnam := orb.Point{127.0276, 37.4979}

	d := DistanceKm(store, gangnam)
	assert.Greater(t, d, 20.0)
	assert.Less(t, d, 30.0)
}

func TestDistanceKm_SeoulBusan(t *testing.T) {
	seoul := orb.Point{126.9780, 37.5665}
	busan := orb.Point{129.0756, 35.1796}

	// Straight-line Seoul-Busan is ~325km.
	d := DistanceKm(seoul, busan)
	assert.InDelta(t, 325, d, 15)
}
