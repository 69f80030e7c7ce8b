package dto

// Coordinates are [lat, lon] pairs in decimal degrees, matching the map UI.
type PlanRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type PlanResponse struct {
	Success       bool          `json:"success"`
	VisitingOrder []int         `json:"visiting_order"`
	RouteCoords   [][]float64   `json:"route_coords"`
	TotalDistance float64       `json:"total_distance"`
	RoadSegments  [][][]float64 `json:"road_segments"`
}

// Returned with HTTP 400 when fewer than two waypoints are submitted. The
// shape mirrors PlanResponse so map clients can render the degenerate state.
type ShortInputResponse struct {
	Error         string      `json:"error"`
	VisitingOrder []int       `json:"visiting_order"`
	RouteCoords   [][]float64 `json:"route_coords"`
	TotalDistance float64     `json:"total_distance"`
}
