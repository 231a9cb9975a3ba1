package domain

import "time"

// DutyStatus classifies a logged interval of the driver's day.
type DutyStatus string

const (
	StatusOffDuty          DutyStatus = "Off Duty"
	StatusDriving          DutyStatus = "Driving"
	StatusOnDutyNotDriving DutyStatus = "On Duty (Not Driving)"
)

// DutyStatuses lists every status in log-sheet order.
var DutyStatuses = []DutyStatus{StatusOffDuty, StatusDriving, StatusOnDutyNotDriving}

func (s DutyStatus) Valid() bool {
	switch s {
	case StatusOffDuty, StatusDriving, StatusOnDutyNotDriving:
		return true
	}
	return false
}

// OnDuty reports whether time in this status counts as on-duty time.
func (s DutyStatus) OnDuty() bool {
	return s == StatusDriving || s == StatusOnDutyNotDriving
}

// Represents one contiguous entry of a driver's record of duty status.
// Start and End are absolute; an interval may cross midnight, in which
// case Date() still reports the day it started on.
type DutyInterval struct {
	Status   DutyStatus
	Start    time.Time
	End      time.Time
	Location string
	Remarks  string
}

// Date returns the calendar date the interval starts on, at midnight in
// the interval's location.
func (d DutyInterval) Date() time.Time {
	y, m, day := d.Start.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Start.Location())
}

func (d DutyInterval) Duration() time.Duration {
	return d.End.Sub(d.Start)
}
