package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mem "travelmate/pkg/memcache"
	"travelmate/pkg/utils"
)

type failingPositionSource struct{}

func (failingPositionSource) Fetch(ctx context.Context, userID string) (float64, float64, error) {
	return 0, 0, errors.New("no signal")
}

func TestCurrentPositionResolvesNearestCity(t *testing.T) {
	provider := NewLocationProvider(
		StaticPositionSource{Lat: 35.7, Lng: 139.7},
		mem.NewLocationFixes(),
		testLogger(),
	)

	fix, err := provider.CurrentPosition(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Tokyo", fix.City)
	assert.Equal(t, "Japan", fix.Country)
	assert.Equal(t, 35.7, fix.Latitude)
	assert.Equal(t, 139.7, fix.Longitude)
}

func TestCurrentPositionServesCachedFix(t *testing.T) {
	cache := mem.NewLocationFixes()
	provider := NewLocationProvider(StaticPositionSource{Lat: 35.7, Lng: 139.7}, cache, testLogger())

	first, err := provider.CurrentPosition(context.Background(), "user-1")
	require.NoError(t, err)

	// a cached fix survives even when the source goes dark
	broken := NewLocationProvider(failingPositionSource{}, cache, testLogger())
	second, err := broken.CurrentPosition(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCurrentPositionUnavailable(t *testing.T) {
	provider := NewLocationProvider(failingPositionSource{}, mem.NewLocationFixes(), testLogger())

	_, err := provider.CurrentPosition(context.Background(), "user-1")
	assert.ErrorIs(t, err, utils.ErrLocationUnavailable)
}

func TestReverseGeocodeNearestCity(t *testing.T) {
	provider := NewLocationProvider(StaticPositionSource{}, mem.NewLocationFixes(), testLogger())

	tests := []struct {
		lat, lng float64
		city     string
	}{
		{48.85, 2.35, "Paris"},
		{51.5, -0.1, "London"},
		{-33.9, 151.2, "Sydney"},
		{40.7, -74.0, "New York"},
	}

	for _, tt := range tests {
		fix := provider.ReverseGeocode(tt.lat, tt.lng)
		assert.Equal(t, tt.city, fix.City, "coordinates %.2f,%.2f", tt.lat, tt.lng)
	}
}
