package api

import (
	"net/http"

	"trip-route-service/internal/api/handlers"
	"trip-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.DistanceProvider) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{Provider: provider}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plan_route", planHandler.Plan)

	return loggingMiddleware(mux)
}
