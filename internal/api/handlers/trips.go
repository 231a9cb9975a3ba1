package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"
	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/ports"
	"trip-log-service/internal/services"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// TripHandler plans, stores and retrieves trips.
type TripHandler struct {
	Repo            ports.TripRepository
	Provider        ports.RouteProvider
	Events          ports.TripEventPublisher
	AverageSpeedMPH float64
	// Now supplies the default start time; nil means time.Now.
	Now func() time.Time
}

// Trips dispatches /trips by method.
func (h *TripHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPost:
		h.Create(w, r)
	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Create routes current -> pickup -> dropoff, builds the duty log and
// stores the trip.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanTripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.CurrentCycleUsed == nil {
		writeError(w, r, http.StatusBadRequest, "current_cycle_used is required")
		return
	}

	trip, err := services.PlanTrip(r.Context(), services.PlanTripRequest{
		CurrentLocation:  req.CurrentLocation,
		PickupLocation:   req.PickupLocation,
		DropoffLocation:  req.DropoffLocation,
		CurrentCycleUsed: *req.CurrentCycleUsed,
		StartAt:          startAt(req.StartAt, h.Now),
		AverageSpeedMPH:  h.AverageSpeedMPH,
	}, h.Provider, h.Repo, h.Events)
	if err != nil {
		writeServiceError(w, r, "plan trip", err)
		return
	}

	w.Header().Set("Location", "/trips/"+trip.ID)
	writeJSON(w, r, http.StatusCreated, tripResponse(trip))
}

// List returns recent trips without their log entries.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	trips, err := h.Repo.ListTrips(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, "list trips", err)
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get returns one trip with its log entries and daily sheets.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "trip id is required")
		return
	}

	trip, err := h.Repo.GetTrip(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get trip", err)
		return
	}

	writeJSON(w, r, http.StatusOK, tripResponse(trip))
}

// startAt picks the requested start time or the current time, truncated
// to the minute so log sheet times stay on the grid.
func startAt(requested *time.Time, now func() time.Time) time.Time {
	if requested != nil {
		return *requested
	}
	if now == nil {
		now = time.Now
	}
	return now().UTC().Truncate(time.Minute)
}
