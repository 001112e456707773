package leave

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestDays(t *testing.T) {
	l := LeaveRequest{StartDate: d(2025, 3, 10), EndDate: d(2025, 3, 12)}
	if got := l.Days(); got != 3 {
		t.Errorf("Days() = %d, want 3", got)
	}

	single := LeaveRequest{StartDate: d(2025, 3, 10), EndDate: d(2025, 3, 10)}
	if got := single.Days(); got != 1 {
		t.Errorf("single day Days() = %d, want 1", got)
	}

	inverted := LeaveRequest{StartDate: d(2025, 3, 12), EndDate: d(2025, 3, 10)}
	if got := inverted.Days(); got != 0 {
		t.Errorf("inverted Days() = %d, want 0", got)
	}
}

func TestOverlapDays(t *testing.T) {
	winStart := d(2025, 3, 1)
	winEnd := d(2025, 3, 31)

	cases := []struct {
		name  string
		leave LeaveRequest
		want  int
	}{
		{
			name:  "fully inside window",
			leave: LeaveRequest{StartDate: d(2025, 3, 10), EndDate: d(2025, 3, 12)},
			want:  3,
		},
		{
			name:  "spans previous month into window",
			leave: LeaveRequest{StartDate: d(2025, 2, 25), EndDate: d(2025, 3, 5)},
			want:  5,
		},
		{
			name:  "spans past window end",
			leave: LeaveRequest{StartDate: d(2025, 3, 30), EndDate: d(2025, 4, 3)},
			want:  2,
		},
		{
			name:  "entirely before window",
			leave: LeaveRequest{StartDate: d(2025, 2, 1), EndDate: d(2025, 2, 28)},
			want:  0,
		},
		{
			name:  "entirely after window",
			leave: LeaveRequest{StartDate: d(2025, 4, 1), EndDate: d(2025, 4, 5)},
			want:  0,
		},
		{
			name:  "covers whole window",
			leave: LeaveRequest{StartDate: d(2025, 2, 1), EndDate: d(2025, 4, 30)},
			want:  31,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.leave.OverlapDays(winStart, winEnd); got != c.want {
				t.Errorf("OverlapDays = %d, want %d", got, c.want)
			}
		})
	}
}
