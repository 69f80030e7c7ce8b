package cache

import (
	"fmt"

	"trip-route-service/internal/domain"
)

// pointKey renders a waypoint with 5-decimal precision (~1m), so nearby
// floating-point representations of the same place share a cache entry.
func pointKey(p domain.Point) string {
	return fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lon)
}
