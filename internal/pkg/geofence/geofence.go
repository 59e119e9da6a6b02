package geofence

import "math"

const earthRadius = 6371000 // Jari-jari bumi dalam Meter

// Distance menghitung jarak antara dua titik koordinat dalam Meter (haversine).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	// Konversi ke Radian
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	// Rumus Haversine
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Evaluate returns the distance from the observed position to the office
// anchor and whether that position is inside the admission radius.
// Both coordinates are assumed valid; callers reject the operation before
// this point when geolocation is unavailable.
func Evaluate(lat, lon, anchorLat, anchorLon, radiusMeters float64) (distance float64, admitted bool) {
	distance = Distance(lat, lon, anchorLat, anchorLon)
	return distance, distance <= radiusMeters
}
