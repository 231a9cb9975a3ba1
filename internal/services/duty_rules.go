package services

import (
	"fmt"
	"math"
	"time"
	"trip-log-service/internal/domain"
)

// Hours-of-service limits and fixed overheads applied by GenerateSchedule.
const (
	OnDutyWindowLimit  = 14 * time.Hour
	DrivingBeforeBreak = 8 * time.Hour
	CycleLimit         = 70 * time.Hour

	DailyResetDuration = 10 * time.Hour
	RestBreakDuration  = 30 * time.Minute
	RestartDuration    = 34 * time.Hour
	FuelingDuration    = 30 * time.Minute

	PickupDuration    = time.Hour
	DropoffDuration   = time.Hour
	MaxDriveIncrement = time.Hour

	FuelingIntervalMiles = 1000.0
)

// dutyAction is the outcome of evaluating the rules against a state.
type dutyAction int

const (
	actionDailyReset dutyAction = iota
	actionRestBreak
	actionRestart
	actionFuel
	actionDrive
)

func (a dutyAction) String() string {
	switch a {
	case actionDailyReset:
		return "daily_reset"
	case actionRestBreak:
		return "rest_break"
	case actionRestart:
		return "restart"
	case actionFuel:
		return "fuel"
	case actionDrive:
		return "drive"
	}
	return fmt.Sprintf("dutyAction(%d)", int(a))
}

// tripLeg holds the per-run constants the rules read but never change.
type tripLeg struct {
	dropoff string
	// fuelEvery is the driving time that covers FuelingIntervalMiles at the
	// trip's average speed. Zero disables fueling.
	fuelEvery time.Duration
}

// dutyState is one snapshot of the simulation. Every counter is a
// time.Duration so limit comparisons are exact.
type dutyState struct {
	clock      time.Time
	window     time.Duration
	sinceBreak time.Duration
	cycle      time.Duration
	remaining  time.Duration
	sinceFuel  time.Duration
	location   string
}

// nextAction evaluates the rules in priority order; the first one due wins.
func nextAction(leg tripLeg, s dutyState) dutyAction {
	switch {
	case s.window >= OnDutyWindowLimit:
		return actionDailyReset
	case s.sinceBreak >= DrivingBeforeBreak:
		return actionRestBreak
	case s.cycle >= CycleLimit:
		return actionRestart
	case leg.fuelEvery > 0 && s.sinceFuel >= leg.fuelEvery:
		return actionFuel
	default:
		return actionDrive
	}
}

// driveIncrement is the next stretch of driving: a full hour, or what is
// left. A stretch may carry a counter past its limit; the rest rule then
// fires before the next one.
func driveIncrement(s dutyState) time.Duration {
	return min(MaxDriveIncrement, s.remaining)
}

// apply emits the interval for action a and returns the state after it.
// The input state is not modified.
func apply(leg tripLeg, s dutyState, a dutyAction) (dutyState, domain.DutyInterval) {
	next := s
	var iv domain.DutyInterval

	switch a {
	case actionDailyReset:
		iv = emit(s, domain.StatusOffDuty, DailyResetDuration, "Required 10-hour rest at %s")
		next.window = 0

	case actionRestBreak:
		iv = emit(s, domain.StatusOffDuty, RestBreakDuration, "30-minute rest break at %s")
		next.sinceBreak = 0
		next.window += RestBreakDuration

	case actionRestart:
		iv = emit(s, domain.StatusOffDuty, RestartDuration, "34-hour restart at %s")
		next.cycle = 0
		next.window = 0

	case actionFuel:
		iv = emit(s, domain.StatusOnDutyNotDriving, FuelingDuration, "Fueling at %s")
		next.window += FuelingDuration
		next.sinceFuel -= leg.fuelEvery

	default:
		d := driveIncrement(s)
		iv = emit(s, domain.StatusDriving, d, "Driving from %s")
		next.remaining -= d
		next.window += d
		next.sinceBreak += d
		next.cycle += d
		next.sinceFuel += d
		if next.remaining <= 0 {
			next.remaining = 0
			next.location = leg.dropoff
		}
	}

	next.clock = iv.End
	return next, iv
}

func emit(s dutyState, status domain.DutyStatus, d time.Duration, remarks string) domain.DutyInterval {
	return domain.DutyInterval{
		Status:   status,
		Start:    s.clock,
		End:      s.clock.Add(d),
		Location: s.location,
		Remarks:  fmt.Sprintf(remarks, s.location),
	}
}

// hoursToDuration converts fractional hours to a duration rounded to the
// second.
func hoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h*3600)) * time.Second
}
