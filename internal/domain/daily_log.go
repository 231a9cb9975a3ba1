package domain

import "time"

// One calendar day of a record of duty status, as drawn on a paper log
// sheet. Entries never cross midnight; Totals sums each status for the day.
type DailyLog struct {
	Date    time.Time
	Entries []DutyInterval
	Totals  map[DutyStatus]time.Duration
}

// Hours returns the logged hours for a status on this day.
func (d DailyLog) Hours(s DutyStatus) float64 {
	return d.Totals[s].Hours()
}

// DailyLogs groups a contiguous interval sequence into per-day sheets,
// splitting any interval that crosses midnight. Days are computed in the
// location of each interval's start time.
func DailyLogs(intervals []DutyInterval) []DailyLog {
	logs := make([]DailyLog, 0)

	for _, iv := range intervals {
		start := iv.Start
		for start.Before(iv.End) {
			day := DutyInterval{Start: start}.Date()
			next := day.AddDate(0, 0, 1)

			end := iv.End
			if end.After(next) {
				end = next
			}

			piece := iv
			piece.Start = start
			piece.End = end

			if len(logs) == 0 || !logs[len(logs)-1].Date.Equal(day) {
				logs = append(logs, DailyLog{
					Date:   day,
					Totals: make(map[DutyStatus]time.Duration, len(DutyStatuses)),
				})
			}
			cur := &logs[len(logs)-1]
			cur.Entries = append(cur.Entries, piece)
			cur.Totals[piece.Status] += piece.Duration()

			start = end
		}
	}

	return logs
}
