package services

import (
	"errors"
	"fmt"
	"math"
	"time"
	"trip-log-service/internal/domain"
)

// ErrInvalidInput is returned when schedule inputs are out of range.
var ErrInvalidInput = errors.New("invalid input")

// maxDrivingHours bounds a single trip so the schedule stays within
// time.Duration range.
const maxDrivingHours = 100_000

// MaxAverageSpeedMPH bounds distance over driving hours. Faster implied
// speeds would make the fuel point arbitrarily short.
const MaxAverageSpeedMPH = 150.0

// ScheduleRequest carries already-resolved route figures into the
// schedule generator. Location labels are never interpreted.
type ScheduleRequest struct {
	Origin                 string
	Pickup                 string
	Dropoff                string
	TotalDistanceMiles     float64
	TotalDrivingHours      float64
	StartingCycleHoursUsed float64
	SimulationStart        time.Time
}

func (r ScheduleRequest) validate() error {
	switch {
	case math.IsNaN(r.TotalDistanceMiles) || math.IsInf(r.TotalDistanceMiles, 0):
		return fmt.Errorf("%w: total distance must be a finite number", ErrInvalidInput)
	case r.TotalDistanceMiles < 0:
		return fmt.Errorf("%w: total distance must be non-negative, got %v", ErrInvalidInput, r.TotalDistanceMiles)
	case math.IsNaN(r.TotalDrivingHours) || math.IsInf(r.TotalDrivingHours, 0):
		return fmt.Errorf("%w: total driving hours must be a finite number", ErrInvalidInput)
	case r.TotalDrivingHours < 0:
		return fmt.Errorf("%w: total driving hours must be non-negative, got %v", ErrInvalidInput, r.TotalDrivingHours)
	case r.TotalDrivingHours > maxDrivingHours:
		return fmt.Errorf("%w: total driving hours must not exceed %d, got %v", ErrInvalidInput, maxDrivingHours, r.TotalDrivingHours)
	case r.TotalDrivingHours > 0 && r.TotalDistanceMiles/r.TotalDrivingHours > MaxAverageSpeedMPH:
		return fmt.Errorf("%w: average speed must not exceed %v mph, got %v", ErrInvalidInput,
			MaxAverageSpeedMPH, r.TotalDistanceMiles/r.TotalDrivingHours)
	case math.IsNaN(r.StartingCycleHoursUsed):
		return fmt.Errorf("%w: cycle hours used must be a number", ErrInvalidInput)
	case r.StartingCycleHoursUsed < 0 || r.StartingCycleHoursUsed >= CycleLimit.Hours():
		return fmt.Errorf("%w: cycle hours used must be in [0, %v), got %v", ErrInvalidInput, CycleLimit.Hours(), r.StartingCycleHoursUsed)
	}
	return nil
}

// GenerateSchedule walks simulated time forward from req.SimulationStart and
// returns the record of duty status for the trip: a pickup hour, driving
// broken up by the rest, restart and fueling rules, and a dropoff hour.
//
// Rules are checked in a fixed order before each increment: 14-hour window,
// 8-hour break, 70-hour cycle, fueling, then driving. Driving goes in one
// hour steps, so the last step before a rest can end past a limit.
// The result depends only on req, so identical requests yield identical
// schedules.
//
// It returns ErrInvalidInput for negative or non-finite figures, a starting
// cycle outside [0, 70), more than maxDrivingHours of driving, or an average
// speed above MaxAverageSpeedMPH.
func GenerateSchedule(req ScheduleRequest) ([]domain.DutyInterval, domain.TripSummary, error) {
	if err := req.validate(); err != nil {
		return nil, domain.TripSummary{}, fmt.Errorf("generate schedule: %w", err)
	}

	leg := tripLeg{dropoff: req.Dropoff}
	if req.TotalDistanceMiles > 0 && req.TotalDrivingHours > 0 {
		leg.fuelEvery = max(
			hoursToDuration(FuelingIntervalMiles*req.TotalDrivingHours/req.TotalDistanceMiles),
			time.Second,
		)
	}

	s := dutyState{
		clock:     req.SimulationStart,
		cycle:     hoursToDuration(req.StartingCycleHoursUsed),
		remaining: hoursToDuration(req.TotalDrivingHours),
		location:  req.Origin,
	}

	intervals := make([]domain.DutyInterval, 0, int(req.TotalDrivingHours)+8)

	pickup := domain.DutyInterval{
		Status:   domain.StatusOnDutyNotDriving,
		Start:    s.clock,
		End:      s.clock.Add(PickupDuration),
		Location: req.Pickup,
		Remarks:  fmt.Sprintf("Pickup at %s", req.Pickup),
	}
	intervals = append(intervals, pickup)
	s.clock = pickup.End
	s.window += PickupDuration

	var counts [actionDrive + 1]int
	for s.remaining > 0 {
		a := nextAction(leg, s)

		var iv domain.DutyInterval
		s, iv = apply(leg, s, a)

		intervals = append(intervals, iv)
		counts[a]++
	}

	dropoff := domain.DutyInterval{
		Status:   domain.StatusOnDutyNotDriving,
		Start:    s.clock,
		End:      s.clock.Add(DropoffDuration),
		Location: req.Dropoff,
		Remarks:  fmt.Sprintf("Dropoff at %s", req.Dropoff),
	}
	intervals = append(intervals, dropoff)

	summary := summarize(intervals, req.TotalDistanceMiles)
	summary.DailyResets = counts[actionDailyReset]
	summary.RestBreaks = counts[actionRestBreak]
	summary.Restarts = counts[actionRestart]
	summary.FuelingStops = counts[actionFuel]
	summary.Stops = summary.DailyResets + summary.RestBreaks + summary.Restarts + summary.FuelingStops

	return intervals, summary, nil
}

func summarize(intervals []domain.DutyInterval, distanceMiles float64) domain.TripSummary {
	summary := domain.TripSummary{TotalDistanceMiles: distanceMiles}
	if len(intervals) == 0 {
		return summary
	}

	var driving, onDuty time.Duration
	for _, iv := range intervals {
		if iv.Status == domain.StatusDriving {
			driving += iv.Duration()
		}
		if iv.Status.OnDuty() {
			onDuty += iv.Duration()
		}
	}

	summary.StartAt = intervals[0].Start
	summary.EndAt = intervals[len(intervals)-1].End
	summary.TotalDrivingHours = driving.Hours()
	summary.TotalOnDutyHours = onDuty.Hours()
	summary.TotalElapsedHours = summary.EndAt.Sub(summary.StartAt).Hours()

	return summary
}
