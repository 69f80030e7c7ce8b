package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

type PlanHandler struct {
	Provider ports.DistanceProvider
}

// Plan validates the submitted waypoints and runs the planning pipeline.
// Input validation is a boundary concern: the planner itself is never called
// with fewer than two waypoints or out-of-range coordinates.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Coordinates) < 2 {
		writeJSON(w, r, http.StatusBadRequest, dto.ShortInputResponse{
			Error:         "Please select at least 2 waypoints",
			VisitingOrder: []int{0},
			RouteCoords:   truncateCoords(req.Coordinates),
			TotalDistance: 0,
		})
		return
	}

	points := make([]domain.Point, 0, len(req.Coordinates))
	for _, c := range req.Coordinates {
		if len(c) != 2 {
			writeError(w, r, http.StatusBadRequest, "each coordinate must be a [lat, lon] pair")
			return
		}

		p := domain.Point{Lat: c[0], Lon: c[1]}
		if !p.Valid() {
			writeError(w, r, http.StatusBadRequest, "coordinates must satisfy lat in [-90,90] and lon in [-180,180]")
			return
		}
		points = append(points, p)
	}

	plan, err := services.PlanRoute(r.Context(), points, h.Provider)
	if err != nil {
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PlanResponse{
		Success:       true,
		VisitingOrder: plan.VisitingOrder,
		RouteCoords:   pointsToLists(plan.RouteCoords),
		TotalDistance: plan.TotalDistanceKm,
		RoadSegments:  make([][][]float64, 0, len(plan.RoadSegments)),
	}
	for _, seg := range plan.RoadSegments {
		res.RoadSegments = append(res.RoadSegments, pointsToLists(seg))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func pointsToLists(pts []domain.Point) [][]float64 {
	out := make([][]float64, 0, len(pts))
	for _, p := range pts {
		out = append(out, p.CoordsToList())
	}
	return out
}

// Echo back at most the first coordinate, as the map UI expects.
func truncateCoords(coords [][]float64) [][]float64 {
	if len(coords) == 0 {
		return [][]float64{}
	}
	return coords[:1]
}
