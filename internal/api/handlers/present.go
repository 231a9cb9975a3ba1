package handlers

import (
	"time"
	"trip-log-service/internal/api/dto"
	"trip-log-service/internal/domain"
)

const clockLayout = "15:04"

func logEntryResponse(iv domain.DutyInterval) dto.LogEntryResponse {
	return dto.LogEntryResponse{
		Date:      iv.Date().Format(time.DateOnly),
		Status:    string(iv.Status),
		StartTime: iv.Start.Format(clockLayout),
		EndTime:   iv.End.Format(clockLayout),
		StartAt:   iv.Start,
		EndAt:     iv.End,
		Location:  iv.Location,
		Remarks:   iv.Remarks,
	}
}

func logEntriesResponse(intervals []domain.DutyInterval) []dto.LogEntryResponse {
	out := make([]dto.LogEntryResponse, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, logEntryResponse(iv))
	}
	return out
}

func dailyLogsResponse(intervals []domain.DutyInterval) []dto.DailyLogResponse {
	days := domain.DailyLogs(intervals)
	out := make([]dto.DailyLogResponse, 0, len(days))
	for _, d := range days {
		hours := make(map[string]float64, len(domain.DutyStatuses))
		for _, s := range domain.DutyStatuses {
			hours[string(s)] = d.Hours(s)
		}
		out = append(out, dto.DailyLogResponse{
			Date:    d.Date.Format(time.DateOnly),
			Entries: logEntriesResponse(d.Entries),
			Hours:   hours,
		})
	}
	return out
}

func summaryResponse(s domain.TripSummary) dto.SummaryResponse {
	return dto.SummaryResponse{
		TotalDistanceMiles: s.TotalDistanceMiles,
		TotalDrivingHours:  s.TotalDrivingHours,
		TotalOnDutyHours:   s.TotalOnDutyHours,
		TotalElapsedHours:  s.TotalElapsedHours,
		RestBreaks:         s.RestBreaks,
		DailyResets:        s.DailyResets,
		Restarts:           s.Restarts,
		FuelingStops:       s.FuelingStops,
		Stops:              s.Stops,
		StartAt:            s.StartAt,
		EndAt:              s.EndAt,
	}
}

// tripResponse renders a trip. Logs and daily sheets are included only
// when the trip was loaded with its log entries.
func tripResponse(t *domain.Trip) dto.TripResponse {
	res := dto.TripResponse{
		ID:               t.ID,
		CurrentLocation:  t.CurrentLocation,
		PickupLocation:   t.PickupLocation,
		DropoffLocation:  t.DropoffLocation,
		CurrentCycleUsed: t.CurrentCycleUsed,
		DistanceMiles:    t.DistanceMiles,
		DrivingHours:     t.DrivingHours,
		Summary:          summaryResponse(t.Summary),
		CreatedAt:        t.CreatedAt,
	}
	if t.Route != nil {
		res.Route = &dto.RouteResponse{
			DistanceMeters:  t.Route.DistanceMeters,
			DurationSeconds: t.Route.DurationSeconds,
			Geometry:        t.Route.Geometry,
		}
	}
	if len(t.Logs) > 0 {
		res.Logs = logEntriesResponse(t.Logs)
		res.DailyLogs = dailyLogsResponse(t.Logs)
	}
	return res
}
