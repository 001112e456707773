package salary

import (
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/shopspring/decimal"
)

// Calculate folds one month of records and approved leaves into the payroll
// statistics for a single employee. It is pure; callers fetch the inputs.
//
// An open record counts as one full working day at the configured daily
// hours. Leaving it at zero would penalize an employee who forgot to clock
// out, so the lenient reading wins.
func Calculate(
	records []timeclock.TimeRecord,
	leaves []leave.LeaveRequest,
	settings salary.Settings,
	window salary.MonthWindow,
) salary.MonthStats {
	var stats salary.MonthStats

	presentDates := map[string]struct{}{}
	var workedHours float64

	for _, r := range records {
		presentDates[r.Date.Format("2006-01-02")] = struct{}{}
		if r.Open() {
			workedHours += float64(settings.WorkingHoursPerDay)
			stats.WorkedDays++
			continue
		}
		workedHours += r.Duration().Hours()
		stats.WorkedDays++
	}
	stats.PresentDays = len(presentDates)

	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		stats.LeaveDays += l.OverlapDays(window.Start, window.End)
	}

	stats.UnpunchedDays = settings.WorkingDaysPerMonth - stats.WorkedDays - stats.LeaveDays
	if stats.UnpunchedDays < 0 {
		stats.UnpunchedDays = 0
	}
	stats.UnjustifiedAbsences = stats.UnpunchedDays

	hours := decimal.NewFromFloat(workedHours)

	var base decimal.Decimal
	switch settings.SalaryType {
	case salary.SalaryTypeHourly:
		base = hours.Mul(settings.HourlyRate)
		if settings.LeavesPaid {
			leaveHours := decimal.NewFromInt(int64(stats.LeaveDays * settings.WorkingHoursPerDay))
			base = base.Add(leaveHours.Mul(settings.HourlyRate))
		}
	default:
		base = decimal.NewFromInt(int64(stats.WorkedDays)).Mul(settings.DailyRate)
		if settings.LeavesPaid {
			base = base.Add(decimal.NewFromInt(int64(stats.LeaveDays)).Mul(settings.DailyRate))
		}
	}

	var penalty decimal.Decimal
	if settings.AbsencePenaltyType == salary.PenaltyTypePercentage {
		penalty = base.Mul(settings.AbsencePenalty).Div(decimal.NewFromInt(100))
	} else {
		penalty = decimal.NewFromInt(int64(stats.UnjustifiedAbsences)).Mul(settings.AbsencePenalty)
	}

	final := base.Sub(penalty)
	if final.IsNegative() {
		final = decimal.Zero
	}

	stats.WorkedHours, _ = hours.Round(1).Float64()
	stats.TotalSalary = base.Round(0)
	stats.PenaltyAmount = penalty.Round(0)
	stats.FinalSalary = final.Round(0)

	return stats
}
