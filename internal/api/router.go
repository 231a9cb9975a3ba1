package api

import (
	"context"
	"net/http"
	"trip-log-service/internal/api/handlers"
	"trip-log-service/internal/ports"
)

// Deps are the collaborators the HTTP layer needs. Events and HealthCheck
// may be nil.
type Deps struct {
	Repo            ports.TripRepository
	Provider        ports.RouteProvider
	Events          ports.TripEventPublisher
	AverageSpeedMPH float64
	HealthCheck     func(ctx context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Check: d.HealthCheck}
	tripHandler := &handlers.TripHandler{
		Repo:            d.Repo,
		Provider:        d.Provider,
		Events:          d.Events,
		AverageSpeedMPH: d.AverageSpeedMPH,
	}
	scheduleHandler := &handlers.ScheduleHandler{}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/trips", tripHandler.Trips)
	mux.HandleFunc("/trips/{id}", tripHandler.Get)
	mux.HandleFunc("/schedules", scheduleHandler.Generate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
