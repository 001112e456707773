package timeclock

import (
	"testing"
	"time"
)

func tsPtr(t time.Time) *time.Time { return &t }

func TestDeriveClockState(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		records    []TimeRecord
		wantState  ClockState
		wantActive string
	}{
		{
			name:      "no records",
			records:   nil,
			wantState: StateUnknown,
		},
		{
			name: "one open record",
			records: []TimeRecord{
				{ID: "r1", ClockIn: base},
			},
			wantState:  StateCheckedIn,
			wantActive: "r1",
		},
		{
			name: "one closed record",
			records: []TimeRecord{
				{ID: "r1", ClockIn: base, ClockOut: tsPtr(base.Add(4 * time.Hour))},
			},
			wantState: StateCheckedOut,
		},
		{
			name: "closed then open",
			records: []TimeRecord{
				{ID: "r2", ClockIn: base.Add(5 * time.Hour)},
				{ID: "r1", ClockIn: base, ClockOut: tsPtr(base.Add(4 * time.Hour))},
			},
			wantState:  StateCheckedIn,
			wantActive: "r2",
		},
		{
			name: "several closed records",
			records: []TimeRecord{
				{ID: "r2", ClockIn: base.Add(5 * time.Hour), ClockOut: tsPtr(base.Add(8 * time.Hour))},
				{ID: "r1", ClockIn: base, ClockOut: tsPtr(base.Add(4 * time.Hour))},
			},
			wantState: StateCheckedOut,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state, active := DeriveClockState(c.records)
			if state != c.wantState {
				t.Errorf("state = %q, want %q", state, c.wantState)
			}
			if active != c.wantActive {
				t.Errorf("active record = %q, want %q", active, c.wantActive)
			}
		})
	}
}

func TestTimeRecordDuration(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	open := TimeRecord{ClockIn: in}
	if open.Duration() != 0 {
		t.Errorf("open record duration = %v, want 0", open.Duration())
	}

	closed := TimeRecord{ClockIn: in, ClockOut: tsPtr(in.Add(8 * time.Hour))}
	if closed.Duration() != 8*time.Hour {
		t.Errorf("closed record duration = %v, want 8h", closed.Duration())
	}

	// clock-out before clock-in is a data anomaly and contributes zero
	inverted := TimeRecord{ClockIn: in, ClockOut: tsPtr(in.Add(-time.Hour))}
	if inverted.Duration() != 0 {
		t.Errorf("inverted record duration = %v, want 0", inverted.Duration())
	}
}

func TestDayWindow(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 3, 10, 15, 42, 7, 0, loc)

	start, end := DayWindow(now, loc)
	if !start.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, loc)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, loc)) {
		t.Errorf("end = %v", end)
	}
}

func TestWeekWindowStartsOnSunday(t *testing.T) {
	loc := time.UTC
	// 2025-03-12 is a Wednesday
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, loc)

	start, end := WeekWindow(now, loc)
	if start.Weekday() != time.Sunday {
		t.Errorf("week start weekday = %v, want Sunday", start.Weekday())
	}
	if !start.Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, loc)) {
		t.Errorf("week start = %v, want 2025-03-09", start)
	}
	if !end.Equal(start.AddDate(0, 0, 7)) {
		t.Errorf("week end = %v, want start+7d", end)
	}
}
