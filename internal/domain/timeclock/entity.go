package timeclock

import (
	"time"
)

// ClockState is derived from the day's records, never stored.
type ClockState string

const (
	StateUnknown    ClockState = "unknown"     // no record today
	StateCheckedIn  ClockState = "checked-in"  // an open record exists
	StateCheckedOut ClockState = "checked-out" // records exist, none open
)

// TimeRecord is one clock-in, possibly still open. It is created by a
// clock-in and mutated exactly once, to set ClockOut, by a clock-out.
type TimeRecord struct {
	ID       string
	UserID   string
	Date     time.Time // calendar day the record belongs to
	ClockIn  time.Time
	ClockOut *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
}

// Open reports whether the record has no clock-out yet.
func (r TimeRecord) Open() bool {
	return r.ClockOut == nil
}

// Duration returns the closed span, or zero for open or chronologically
// invalid records (clock-out before clock-in is a data anomaly, not an error).
func (r TimeRecord) Duration() time.Duration {
	if r.ClockOut == nil {
		return 0
	}
	d := r.ClockOut.Sub(r.ClockIn)
	if d < 0 {
		return 0
	}
	return d
}

// DeriveClockState scans the day's records for the authenticated user and
// returns the current state plus the id of the open record if any. At most
// one record per user may be open; if several are (bad data), the first one
// found wins.
func DeriveClockState(records []TimeRecord) (ClockState, string) {
	for _, r := range records {
		if r.Open() {
			return StateCheckedIn, r.ID
		}
	}
	if len(records) > 0 {
		return StateCheckedOut, ""
	}
	return StateUnknown, ""
}

// ClockAction is the direction a toggle resolved to.
type ClockAction string

const (
	ActionIn  ClockAction = "in"
	ActionOut ClockAction = "out"
)

// DayWindow returns the inclusive start and exclusive end of now's calendar
// day in loc. All "today" queries use these bounds.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns the bounds of now's week, starting on Sunday (weekday
// index 0), matching the dashboard's weekly chart.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	dayStart, _ := DayWindow(now, loc)
	start := dayStart.AddDate(0, 0, -int(dayStart.Weekday()))
	return start, start.AddDate(0, 0, 7)
}
