package dto

import "time"

type ScheduleRequest struct {
	CurrentLocation    string     `json:"current_location"`
	PickupLocation     string     `json:"pickup_location"`
	DropoffLocation    string     `json:"dropoff_location"`
	TotalDistanceMiles float64    `json:"total_distance_miles"`
	TotalDrivingHours  float64    `json:"total_driving_hours"`
	CurrentCycleUsed   float64    `json:"current_cycle_used"`
	StartAt            *time.Time `json:"start_at"`
}

// LogEntryResponse is one duty status change. Date, StartTime and EndTime
// are rendered in the schedule's time zone.
type LogEntryResponse struct {
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Location  string    `json:"location"`
	Remarks   string    `json:"remarks"`
}

type DailyLogResponse struct {
	Date    string             `json:"date"`
	Entries []LogEntryResponse `json:"entries"`
	Hours   map[string]float64 `json:"hours"`
}

type SummaryResponse struct {
	TotalDistanceMiles float64   `json:"total_distance_miles"`
	TotalDrivingHours  float64   `json:"total_driving_hours"`
	TotalOnDutyHours   float64   `json:"total_on_duty_hours"`
	TotalElapsedHours  float64   `json:"total_elapsed_hours"`
	RestBreaks         int       `json:"rest_breaks"`
	DailyResets        int       `json:"daily_resets"`
	Restarts           int       `json:"restarts"`
	FuelingStops       int       `json:"fueling_stops"`
	Stops              int       `json:"stops"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
}

type ScheduleResponse struct {
	Summary   SummaryResponse    `json:"summary"`
	Logs      []LogEntryResponse `json:"logs"`
	DailyLogs []DailyLogResponse `json:"daily_logs"`
}
