package utils

import "math"

// Earth radius in km, spherical approximation.
const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius reports whether the target lies within radiusKm of the center.
// The boundary is inclusive.
func WithinRadius(centerLat, centerLng, targetLat, targetLng, radiusKm float64) bool {
	return HaversineKm(centerLat, centerLng, targetLat, targetLng) <= radiusKm
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
