package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := Coordinate{Latitude: 52.52, Longitude: 13.405}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKmSymmetricAndNonNegative(t *testing.T) {
	a := Coordinate{Latitude: 52.52, Longitude: 13.405}
	b := Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
	assert.Greater(t, DistanceKm(a, b), 0.0)
}

func TestDistanceKmKnownValue(t *testing.T) {
	// One degree of longitude on the equator is about 111.19 km.
	a := Coordinate{Latitude: 0, Longitude: 0}
	b := Coordinate{Latitude: 0, Longitude: 1}

	assert.InDelta(t, 111.19, DistanceKm(a, b), 0.1)
}

func TestDistanceKmBerlinParis(t *testing.T) {
	berlin := Coordinate{Latitude: 52.52, Longitude: 13.405}
	paris := Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	assert.InDelta(t, 878, DistanceKm(berlin, paris), 5)
}
