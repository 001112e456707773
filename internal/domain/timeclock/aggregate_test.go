package timeclock

import (
	"math/rand"
	"testing"
	"time"
)

func TestTodayWorkTime(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := day.Add(15 * time.Hour)

	cases := []struct {
		name    string
		records []TimeRecord
		state   ClockState
		want    string
	}{
		{
			name:  "no records",
			state: StateUnknown,
			want:  "0h 0m",
		},
		{
			name: "single closed pair",
			records: []TimeRecord{
				{ClockIn: day.Add(9 * time.Hour), ClockOut: tsPtr(day.Add(17 * time.Hour))},
			},
			state: StateCheckedOut,
			want:  "8h 0m",
		},
		{
			name: "partial minutes floor",
			records: []TimeRecord{
				{ClockIn: day.Add(9 * time.Hour), ClockOut: tsPtr(day.Add(10*time.Hour + 30*time.Minute + 45*time.Second))},
			},
			state: StateCheckedOut,
			want:  "1h 30m",
		},
		{
			name: "open record ticks against now",
			records: []TimeRecord{
				{ClockIn: day.Add(13 * time.Hour)},
			},
			state: StateCheckedIn,
			want:  "2h 0m",
		},
		{
			name: "closed pair plus open record",
			records: []TimeRecord{
				{ClockIn: day.Add(14 * time.Hour)},
				{ClockIn: day.Add(9 * time.Hour), ClockOut: tsPtr(day.Add(12 * time.Hour))},
			},
			state: StateCheckedIn,
			want:  "4h 0m",
		},
		{
			name: "open record ignored when not checked in",
			records: []TimeRecord{
				{ClockIn: day.Add(13 * time.Hour)},
			},
			state: StateUnknown,
			want:  "0h 0m",
		},
		{
			name: "inverted pair contributes zero",
			records: []TimeRecord{
				{ClockIn: day.Add(10 * time.Hour), ClockOut: tsPtr(day.Add(9 * time.Hour))},
				{ClockIn: day.Add(11 * time.Hour), ClockOut: tsPtr(day.Add(12 * time.Hour))},
			},
			state: StateCheckedOut,
			want:  "1h 0m",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TodayWorkTime(c.records, c.state, now)
			if got != c.want {
				t.Errorf("TodayWorkTime = %q, want %q", got, c.want)
			}
		})
	}
}

func TestTodayWorkTimeOrderIndependent(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := day.Add(18 * time.Hour)

	records := []TimeRecord{
		{ClockIn: day.Add(9 * time.Hour), ClockOut: tsPtr(day.Add(12 * time.Hour))},
		{ClockIn: day.Add(13 * time.Hour), ClockOut: tsPtr(day.Add(17*time.Hour + 24*time.Minute))},
		{ClockIn: day.Add(17*time.Hour + 30*time.Minute)},
	}

	want := TodayWorkTime(records, StateCheckedIn, now)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]TimeRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := TodayWorkTime(shuffled, StateCheckedIn, now); got != want {
			t.Fatalf("permutation %d: TodayWorkTime = %q, want %q", i, got, want)
		}
	}
}

func TestWeeklyStats(t *testing.T) {
	loc := time.UTC
	// Week of Sunday 2025-03-09
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)
	monday := sunday.AddDate(0, 0, 1)
	wednesday := sunday.AddDate(0, 0, 3)

	records := []TimeRecord{
		{ClockIn: monday.Add(9 * time.Hour), ClockOut: tsPtr(monday.Add(17 * time.Hour))},
		{ClockIn: wednesday.Add(9 * time.Hour), ClockOut: tsPtr(wednesday.Add(13*time.Hour + 15*time.Minute))},
		// open record must not contribute
		{ClockIn: wednesday.Add(14 * time.Hour)},
	}

	buckets, total := WeeklyStats(records, loc)

	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}
	if buckets[0].Day != "Sun" || buckets[6].Day != "Sat" {
		t.Errorf("bucket order wrong: first %q last %q", buckets[0].Day, buckets[6].Day)
	}
	if buckets[1].Hours != 8 {
		t.Errorf("Monday hours = %v, want 8", buckets[1].Hours)
	}
	if buckets[3].Hours != 4.25 {
		t.Errorf("Wednesday hours = %v, want 4.25", buckets[3].Hours)
	}
	if total != 12.25 {
		t.Errorf("total = %v, want 12.25", total)
	}
	for _, i := range []int{0, 2, 4, 5, 6} {
		if buckets[i].Hours != 0 {
			t.Errorf("%s hours = %v, want 0", buckets[i].Day, buckets[i].Hours)
		}
	}
}

func TestWeeklyStatsOrderIndependent(t *testing.T) {
	loc := time.UTC
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)

	var records []TimeRecord
	for d := 0; d < 7; d++ {
		day := sunday.AddDate(0, 0, d)
		records = append(records, TimeRecord{
			ClockIn:  day.Add(9 * time.Hour),
			ClockOut: tsPtr(day.Add(time.Duration(9+d) * time.Hour)),
		})
	}

	wantBuckets, wantTotal := WeeklyStats(records, loc)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]TimeRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		buckets, total := WeeklyStats(shuffled, loc)
		if buckets != wantBuckets || total != wantTotal {
			t.Fatalf("permutation %d changed the result", i)
		}
	}
}
