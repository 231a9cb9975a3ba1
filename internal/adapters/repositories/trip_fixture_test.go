package repositories

import (
	"time"
	"trip-log-service/internal/domain"
)

func sampleTrip(id string, createdAt time.Time) *domain.Trip {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	at := func(h float64) time.Time { return start.Add(time.Duration(h * float64(time.Hour))) }

	logs := []domain.DutyInterval{
		{Status: domain.StatusOnDutyNotDriving, Start: at(0), End: at(1), Location: "Denver, CO", Remarks: "Pickup at Denver, CO"},
		{Status: domain.StatusDriving, Start: at(1), End: at(2), Location: "Denver, CO", Remarks: "Driving from Denver, CO"},
		{Status: domain.StatusOnDutyNotDriving, Start: at(2), End: at(3), Location: "Boulder, CO", Remarks: "Dropoff at Boulder, CO"},
	}

	return &domain.Trip{
		ID:               id,
		CurrentLocation:  "Golden, CO",
		PickupLocation:   "Denver, CO",
		DropoffLocation:  "Boulder, CO",
		CurrentCycleUsed: 12.5,
		DistanceMiles:    55,
		DrivingHours:     1,
		Logs:             logs,
		Summary: domain.TripSummary{
			TotalDistanceMiles: 55,
			TotalDrivingHours:  1,
			TotalOnDutyHours:   3,
			TotalElapsedHours:  3,
			Stops:              2,
			StartAt:            at(0),
			EndAt:              at(3),
		},
		Route:     &domain.Route{DistanceMeters: 88513, DurationSeconds: 3600, Geometry: [][2]float64{{-104.99, 39.74}, {-105.27, 40.01}}},
		CreatedAt: createdAt,
	}
}
