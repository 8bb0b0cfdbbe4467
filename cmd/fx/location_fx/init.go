package location_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelmate/internal/services"
	mem "travelmate/pkg/memcache"
)

var Module = fx.Provide(
	provideLocationCache, providePositionSource, provideLocationProvider)

func provideLocationCache() mem.LocationCache {
	return mem.NewLocationFixes()
}

// providePositionSource reads demo coordinates from the environment,
// defaulting to central Tokyo.
func providePositionSource() services.PositionSource {
	lat := envFloat("DEMO_POSITION_LAT", 35.6762)
	lng := envFloat("DEMO_POSITION_LNG", 139.6503)
	return services.StaticPositionSource{Lat: lat, Lng: lng}
}

func provideLocationProvider(source services.PositionSource, cache mem.LocationCache, logger *zap.SugaredLogger) services.LocationProviderInterface {
	return services.NewLocationProvider(source, cache, logger)
}

func envFloat(key string, fallback float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}
