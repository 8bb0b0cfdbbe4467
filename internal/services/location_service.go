package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	mem "travelmate/pkg/memcache"
	"travelmate/pkg/utils"
)

const (
	positionTimeout = 10 * time.Second
	// A one-shot fix stays valid for 5 minutes; in continuous-tracking mode
	// it goes stale after 1 minute.
	oneShotFixTTL  = 5 * time.Minute
	trackingFixTTL = time.Minute
)

// PositionSource produces raw coordinates for a user, typically from a device
// or gateway. Implementations must respect ctx cancellation.
type PositionSource interface {
	Fetch(ctx context.Context, userID string) (lat, lng float64, err error)
}

type LocationProviderInterface interface {
	// CurrentPosition returns a reverse-geocoded fix for the user, serving a
	// cached value inside the staleness window. Returns
	// utils.ErrLocationUnavailable when no fix can be obtained in time;
	// callers degrade to non-location behavior.
	CurrentPosition(ctx context.Context, userID string) (db_models.GeoPoint, error)
	ReverseGeocode(lat, lng float64) db_models.GeoPoint
}

type LocationProvider struct {
	source   PositionSource
	cache    mem.LocationCache
	logger   *zap.SugaredLogger
	tracking bool
}

type LocationProviderOption func(*LocationProvider)

// WithContinuousTracking shortens the fix staleness window to the tracking
// TTL.
func WithContinuousTracking() LocationProviderOption {
	return func(p *LocationProvider) { p.tracking = true }
}

func NewLocationProvider(source PositionSource, cache mem.LocationCache, logger *zap.SugaredLogger, opts ...LocationProviderOption) LocationProviderInterface {
	p := &LocationProvider{
		source: source,
		cache:  cache,
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *LocationProvider) CurrentPosition(ctx context.Context, userID string) (db_models.GeoPoint, error) {
	if fix, ok := p.cache.Get(userID); ok {
		return fix, nil
	}

	ctx, cancel := context.WithTimeout(ctx, positionTimeout)
	defer cancel()

	lat, lng, err := p.source.Fetch(ctx, userID)
	if err != nil {
		p.logger.Debugw("position fetch failed", "user_id", userID, "error", err)
		return db_models.GeoPoint{}, utils.ErrLocationUnavailable
	}

	fix := p.ReverseGeocode(lat, lng)
	ttl := oneShotFixTTL
	if p.tracking {
		ttl = trackingFixTTL
	}
	p.cache.Set(userID, fix, ttl)
	return fix, nil
}

// knownCities is the reverse-geocoding table; a fix resolves to the nearest
// entry.
var knownCities = []db_models.GeoPoint{
	{Latitude: 35.6762, Longitude: 139.6503, City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
	{Latitude: 40.7128, Longitude: -74.0060, City: "New York", Country: "USA", Timezone: "America/New_York"},
	{Latitude: 51.5074, Longitude: -0.1278, City: "London", Country: "UK", Timezone: "Europe/London"},
	{Latitude: 48.8566, Longitude: 2.3522, City: "Paris", Country: "France", Timezone: "Europe/Paris"},
	{Latitude: -33.8688, Longitude: 151.2093, City: "Sydney", Country: "Australia", Timezone: "Australia/Sydney"},
}

func (p *LocationProvider) ReverseGeocode(lat, lng float64) db_models.GeoPoint {
	closest := knownCities[0]
	minDistance := utils.HaversineKm(lat, lng, closest.Latitude, closest.Longitude)

	for _, city := range knownCities[1:] {
		distance := utils.HaversineKm(lat, lng, city.Latitude, city.Longitude)
		if distance < minDistance {
			minDistance = distance
			closest = city
		}
	}

	return db_models.GeoPoint{
		Latitude:  lat,
		Longitude: lng,
		City:      closest.City,
		Country:   closest.Country,
		Timezone:  closest.Timezone,
	}
}

// StaticPositionSource always reports the same coordinates. Used for demo
// seeding and tests.
type StaticPositionSource struct {
	Lat float64
	Lng float64
}

func (s StaticPositionSource) Fetch(ctx context.Context, userID string) (float64, float64, error) {
	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	default:
		return s.Lat, s.Lng, nil
	}
}
