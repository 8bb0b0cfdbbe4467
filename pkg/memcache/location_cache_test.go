package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"travelmate/internal/models/db_models"
)

func TestLocationFixesSetGet(t *testing.T) {
	cache := NewLocationFixes()
	fix := db_models.GeoPoint{Latitude: 35.6762, Longitude: 139.6503, City: "Tokyo"}

	cache.Set("user-1", fix, time.Minute)

	got, ok := cache.Get("user-1")
	assert.True(t, ok)
	assert.Equal(t, fix, got)

	_, ok = cache.Get("user-2")
	assert.False(t, ok)
}

func TestLocationFixesExpiry(t *testing.T) {
	cache := NewLocationFixes()
	cache.Set("user-1", db_models.GeoPoint{City: "Tokyo"}, 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("user-1")
	assert.False(t, ok)
}

func TestLocationFixesInvalidate(t *testing.T) {
	cache := NewLocationFixes()
	cache.Set("user-1", db_models.GeoPoint{City: "Tokyo"}, time.Minute)

	cache.Invalidate("user-1")

	_, ok := cache.Get("user-1")
	assert.False(t, ok)
}
