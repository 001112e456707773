package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalaryType string

const (
	SalaryTypeDaily  SalaryType = "daily"
	SalaryTypeHourly SalaryType = "hourly"
)

type PenaltyType string

const (
	PenaltyTypeFixed      PenaltyType = "fixed"
	PenaltyTypePercentage PenaltyType = "percentage"
)

// Settings is the admin-supplied salary configuration, passed by value into
// the calculator.
type Settings struct {
	SalaryType          SalaryType
	DailyRate           decimal.Decimal
	HourlyRate          decimal.Decimal
	AbsencePenalty      decimal.Decimal
	AbsencePenaltyType  PenaltyType
	LeavesPaid          bool
	WorkingHoursPerDay  int
	WorkingDaysPerMonth int
}

// DefaultSettings returns the configuration used until the admin saves one.
func DefaultSettings() Settings {
	return Settings{
		SalaryType:          SalaryTypeDaily,
		DailyRate:           decimal.NewFromInt(400),
		HourlyRate:          decimal.NewFromInt(50),
		AbsencePenalty:      decimal.NewFromInt(50),
		AbsencePenaltyType:  PenaltyTypeFixed,
		LeavesPaid:          true,
		WorkingHoursPerDay:  8,
		WorkingDaysPerMonth: 22,
	}
}

// MonthStats is the calculator's pure output, recomputed on every settings or
// selection change.
type MonthStats struct {
	WorkedDays          int
	WorkedHours         float64
	UnjustifiedAbsences int
	LeaveDays           int
	UnpunchedDays       int
	PresentDays         int
	TotalSalary         decimal.Decimal // base, before penalty
	PenaltyAmount       decimal.Decimal
	FinalSalary         decimal.Decimal // max(0, total - penalty)
}

// MonthWindow is an inclusive calendar-month range of logical dates.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// MonthWindowOf returns the window covering the month that t falls in.
func MonthWindowOf(t time.Time) MonthWindow {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return MonthWindow{Start: start, End: end}
}
