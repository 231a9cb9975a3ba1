package handlers

import (
	"net/http"
	"time"
	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/services"
)

// ScheduleHandler runs the duty schedule generator on caller-supplied
// figures, without routing or persistence.
type ScheduleHandler struct {
	Now func() time.Time
}

func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	logs, summary, err := services.GenerateSchedule(services.ScheduleRequest{
		Origin:                 req.CurrentLocation,
		Pickup:                 req.PickupLocation,
		Dropoff:                req.DropoffLocation,
		TotalDistanceMiles:     req.TotalDistanceMiles,
		TotalDrivingHours:      req.TotalDrivingHours,
		StartingCycleHoursUsed: req.CurrentCycleUsed,
		SimulationStart:        startAt(req.StartAt, h.Now),
	})
	if err != nil {
		writeServiceError(w, r, "generate schedule", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ScheduleResponse{
		Summary:   summaryResponse(summary),
		Logs:      logEntriesResponse(logs),
		DailyLogs: dailyLogsResponse(logs),
	})
}
