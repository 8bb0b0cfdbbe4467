package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Tokyo to New York is roughly 10,850 km
	d := HaversineKm(35.6762, 139.6503, 40.7128, -74.0060)
	assert.InDelta(t, 10850, d, 100)

	// zero distance
	assert.Zero(t, HaversineKm(35.6762, 139.6503, 35.6762, 139.6503))

	// one degree of longitude at the equator
	d = HaversineKm(0, 0, 0, 1)
	assert.InDelta(t, 111.19, d, 0.1)
}

func TestHaversineSymmetric(t *testing.T) {
	ab := HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	ba := HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestWithinRadiusInclusiveBoundary(t *testing.T) {
	d := HaversineKm(0, 0, 0, 1)

	assert.True(t, WithinRadius(0, 0, 0, 1, d))
	assert.True(t, WithinRadius(0, 0, 0, 1, d+0.01))
	assert.False(t, WithinRadius(0, 0, 0, 1, d-0.01))
}
