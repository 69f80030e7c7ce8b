package domain

// Represents the planned visiting order over a set of waypoints.
// A RoutePlan is the output of the planning pipeline and describes the order
// in which waypoints are visited, the accumulated travel distance, and the
// detailed road geometry for each hop between consecutive waypoints.
// It is immutable planning data and contains no side effects.
type RoutePlan struct {
	// VisitingOrder is a permutation of the input indices, starting at 0.
	VisitingOrder []int
	// RouteCoords holds the input points reordered by VisitingOrder.
	RouteCoords []Point
	// TotalDistanceKm is the accumulated hop distance, rounded to 2 decimals.
	TotalDistanceKm float64
	// RoadSegments holds one geometry polyline per consecutive hop
	// (len(VisitingOrder)-1 entries).
	RoadSegments [][]Point
}
