// pkg/memcache/location_cache.go
package mem

import (
	"sync"
	"time"

	"travelmate/internal/models/db_models"
)

// LocationCache keeps the last resolved position fix per user so repeated
// lookups inside the staleness window skip the provider round trip.
type LocationCache interface {
	Set(userID string, fix db_models.GeoPoint, ttl time.Duration)

	// Get returns the cached fix for userID if it has not expired.
	Get(userID string) (db_models.GeoPoint, bool)

	// Invalidate drops the cached fix, forcing the next lookup to refetch.
	Invalidate(userID string)
}

type entry struct {
	fix       db_models.GeoPoint
	expiresAt time.Time
}

type LocationFixes struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewLocationFixes() *LocationFixes {
	return &LocationFixes{
		data: make(map[string]entry),
	}
}

func (s *LocationFixes) Set(userID string, fix db_models.GeoPoint, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = entry{
		fix:       fix,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *LocationFixes) Get(userID string) (db_models.GeoPoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[userID]
	if !ok || time.Now().After(e.expiresAt) {
		return db_models.GeoPoint{}, false
	}
	return e.fix, true
}

func (s *LocationFixes) Invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
