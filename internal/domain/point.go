package domain

import "math"

// Mean Earth radius used by the great-circle fallback distance.
const EarthRadiusKm = 6371.0

// Immutable geographic waypoint (latitude, longitude) in decimal degrees.
// Within one planning run a point is identified by its index in the input.
type Point struct {
	Lat float64
	Lon float64
}

// Return the point as [lat, lon] for API payloads.
func (p Point) CoordsToList() []float64 { return []float64{p.Lat, p.Lon} }

// Valid reports whether the point lies inside the WGS84 coordinate ranges.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Haversine computes the great-circle distance between two points in kilometers.
// It is the closed-form fallback used when the routing service is unavailable.
func Haversine(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
