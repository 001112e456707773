package timeclock

import (
	"fmt"
	"math"
	"time"
)

// DayBucket is one weekday's worked hours for the weekly chart.
type DayBucket struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// TodayWorkTime sums the day's records into a "{H}h {M}m" display figure.
// Closed pairs contribute their span in whole minutes; the open record
// contributes now - clockIn while state is checked-in, which makes the figure
// advance live on each tick. Invalid spans contribute zero. The result does
// not depend on record order.
func TodayWorkTime(records []TimeRecord, state ClockState, now time.Time) string {
	totalMinutes := 0
	for _, r := range records {
		switch {
		case r.ClockOut != nil:
			totalMinutes += wholeMinutes(r.ClockIn, *r.ClockOut)
		case state == StateCheckedIn:
			totalMinutes += wholeMinutes(r.ClockIn, now)
		}
	}
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}

// WeeklyStats folds a week's records into exactly 7 buckets in Sun..Sat
// order, hours rounded to 2 decimal places. Open records are excluded; only
// the live today figure estimates open time. The total over the 7 buckets is
// returned for the dashboard summary.
func WeeklyStats(records []TimeRecord, loc *time.Location) ([7]DayBucket, float64) {
	var minutes [7]int
	for _, r := range records {
		if r.ClockOut == nil {
			continue
		}
		m := wholeMinutes(r.ClockIn, *r.ClockOut)
		if m == 0 {
			continue
		}
		idx := int(r.ClockIn.In(loc).Weekday())
		minutes[idx] += m
	}

	var buckets [7]DayBucket
	total := 0.0
	for i := range buckets {
		hours := round2(float64(minutes[i]) / 60)
		buckets[i] = DayBucket{Day: weekdayLabels[i], Hours: hours}
		total += hours
	}
	return buckets, round2(total)
}

// wholeMinutes floors the span between two instants to whole minutes,
// clamping negative (anomalous) spans to zero.
func wholeMinutes(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(d.Minutes())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
