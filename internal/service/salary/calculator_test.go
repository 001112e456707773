package salary

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func closedRecord(day time.Time, inHour, outHour int) timeclock.TimeRecord {
	in := day.Add(time.Duration(inHour) * time.Hour)
	out := day.Add(time.Duration(outHour) * time.Hour)
	return timeclock.TimeRecord{
		UserID:   "u1",
		Date:     day,
		ClockIn:  in,
		ClockOut: &out,
	}
}

func openRecord(day time.Time, inHour int) timeclock.TimeRecord {
	return timeclock.TimeRecord{
		UserID:  "u1",
		Date:    day,
		ClockIn: day.Add(time.Duration(inHour) * time.Hour),
	}
}

func marchWindow() salary.MonthWindow {
	return salary.MonthWindowOf(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
}

func TestCalculateSingleClosedDay(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	records := []timeclock.TimeRecord{closedRecord(day, 9, 17)}

	stats := Calculate(records, nil, salary.DefaultSettings(), marchWindow())

	assert.Equal(t, 1, stats.WorkedDays)
	assert.Equal(t, 8.0, stats.WorkedHours)
	assert.Equal(t, 1, stats.PresentDays)
}

func TestCalculateOpenRecordCountsFullDay(t *testing.T) {
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	settings := salary.DefaultSettings()

	open := Calculate([]timeclock.TimeRecord{openRecord(day, 9)}, nil, settings, marchWindow())
	closed := Calculate([]timeclock.TimeRecord{closedRecord(day, 9, 17)}, nil, settings, marchWindow())

	assert.Equal(t, closed.WorkedDays, open.WorkedDays)
	assert.Equal(t, closed.WorkedHours, open.WorkedHours)
	assert.True(t, closed.FinalSalary.Equal(open.FinalSalary))
}

func TestCalculateDailyWithPaidLeaveAndFixedPenalty(t *testing.T) {
	// 20 worked days + 2 paid leave days against a 24-day month leaves
	// 2 unjustified absences at 50 each.
	var records []timeclock.TimeRecord
	for i := 0; i < 20; i++ {
		day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		records = append(records, closedRecord(day, 9, 17))
	}
	leaves := []leave.LeaveRequest{{
		UserID:    "u1",
		Status:    leave.StatusApproved,
		StartDate: time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
	}}
	settings := salary.DefaultSettings()
	settings.WorkingDaysPerMonth = 24

	stats := Calculate(records, leaves, settings, marchWindow())

	assert.Equal(t, 20, stats.WorkedDays)
	assert.Equal(t, 2, stats.LeaveDays)
	assert.Equal(t, 2, stats.UnjustifiedAbsences)
	assert.Equal(t, "8800", stats.TotalSalary.String())
	assert.Equal(t, "100", stats.PenaltyAmount.String())
	assert.Equal(t, "8700", stats.FinalSalary.String())
}

func TestCalculateHourlyWithPercentagePenalty(t *testing.T) {
	// 20 days of 8 hours = 160 hours at 50/h, 10% penalty on the base.
	var records []timeclock.TimeRecord
	for i := 0; i < 20; i++ {
		day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		records = append(records, closedRecord(day, 9, 17))
	}
	settings := salary.DefaultSettings()
	settings.SalaryType = salary.SalaryTypeHourly
	settings.AbsencePenaltyType = salary.PenaltyTypePercentage
	settings.AbsencePenalty = decimal.NewFromInt(10)
	settings.LeavesPaid = false

	stats := Calculate(records, nil, settings, marchWindow())

	assert.Equal(t, 160.0, stats.WorkedHours)
	assert.Equal(t, "8000", stats.TotalSalary.String())
	assert.Equal(t, "800", stats.PenaltyAmount.String())
	assert.Equal(t, "7200", stats.FinalSalary.String())
}

func TestCalculateLeaveClipsToWindow(t *testing.T) {
	// Feb 25 to Mar 5 contributes exactly 5 days to March.
	leaves := []leave.LeaveRequest{{
		UserID:    "u1",
		Status:    leave.StatusApproved,
		StartDate: time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}}

	stats := Calculate(nil, leaves, salary.DefaultSettings(), marchWindow())

	assert.Equal(t, 5, stats.LeaveDays)
}

func TestCalculatePendingLeaveIgnored(t *testing.T) {
	leaves := []leave.LeaveRequest{{
		UserID:    "u1",
		Status:    leave.StatusPending,
		StartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}}

	stats := Calculate(nil, leaves, salary.DefaultSettings(), marchWindow())

	assert.Equal(t, 0, stats.LeaveDays)
}

func TestCalculateUnpunchedNeverNegative(t *testing.T) {
	// More worked plus leave days than the configured month length.
	var records []timeclock.TimeRecord
	for i := 0; i < 28; i++ {
		day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		records = append(records, closedRecord(day, 9, 17))
	}
	settings := salary.DefaultSettings()
	settings.WorkingDaysPerMonth = 22

	stats := Calculate(records, nil, settings, marchWindow())

	assert.Equal(t, 0, stats.UnpunchedDays)
	assert.Equal(t, 0, stats.UnjustifiedAbsences)
}

func TestCalculateFinalSalaryNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	window := marchWindow()

	for i := 0; i < 500; i++ {
		settings := salary.Settings{
			SalaryType:          salary.SalaryTypeDaily,
			DailyRate:           decimal.NewFromInt(rng.Int63n(1000)),
			HourlyRate:          decimal.NewFromInt(rng.Int63n(200)),
			AbsencePenalty:      decimal.NewFromInt(rng.Int63n(5000)),
			AbsencePenaltyType:  salary.PenaltyTypeFixed,
			LeavesPaid:          rng.Intn(2) == 0,
			WorkingHoursPerDay:  1 + rng.Intn(12),
			WorkingDaysPerMonth: 1 + rng.Intn(31),
		}
		if rng.Intn(2) == 0 {
			settings.SalaryType = salary.SalaryTypeHourly
		}
		if rng.Intn(2) == 0 {
			settings.AbsencePenaltyType = salary.PenaltyTypePercentage
		}

		var records []timeclock.TimeRecord
		for d := 0; d < rng.Intn(10); d++ {
			day := window.Start.AddDate(0, 0, rng.Intn(28))
			records = append(records, closedRecord(day, 9, 9+rng.Intn(10)))
		}

		stats := Calculate(records, nil, settings, window)
		assert.False(t, stats.FinalSalary.IsNegative(), "settings=%+v", settings)
	}
}
