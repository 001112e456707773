package salary

import (
	"github.com/pointage/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type StatsResponse struct {
	EmployeeID          string          `json:"employee_id"`
	Month               string          `json:"month"`
	WorkedDays          int             `json:"worked_days"`
	WorkedHours         float64         `json:"worked_hours"`
	UnjustifiedAbsences int             `json:"unjustified_absences"`
	LeaveDays           int             `json:"leave_days"`
	UnpunchedDays       int             `json:"unpunched_days"`
	PresentDays         int             `json:"present_days"`
	TotalSalary         decimal.Decimal `json:"total_salary"`
	PenaltyAmount       decimal.Decimal `json:"penalty_amount"`
	FinalSalary         decimal.Decimal `json:"final_salary"`
}

func ToStatsResponse(employeeID, month string, stats MonthStats) StatsResponse {
	return StatsResponse{
		EmployeeID:          employeeID,
		Month:               month,
		WorkedDays:          stats.WorkedDays,
		WorkedHours:         stats.WorkedHours,
		UnjustifiedAbsences: stats.UnjustifiedAbsences,
		LeaveDays:           stats.LeaveDays,
		UnpunchedDays:       stats.UnpunchedDays,
		PresentDays:         stats.PresentDays,
		TotalSalary:         stats.TotalSalary,
		PenaltyAmount:       stats.PenaltyAmount,
		FinalSalary:         stats.FinalSalary,
	}
}

type SettingsResponse struct {
	SalaryType          string          `json:"salary_type"`
	DailyRate           decimal.Decimal `json:"daily_rate"`
	HourlyRate          decimal.Decimal `json:"hourly_rate"`
	AbsencePenalty      decimal.Decimal `json:"absence_penalty"`
	AbsencePenaltyType  string          `json:"absence_penalty_type"`
	LeavesPaid          bool            `json:"leaves_paid"`
	WorkingHoursPerDay  int             `json:"working_hours_per_day"`
	WorkingDaysPerMonth int             `json:"working_days_per_month"`
}

func ToSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		SalaryType:          string(s.SalaryType),
		DailyRate:           s.DailyRate,
		HourlyRate:          s.HourlyRate,
		AbsencePenalty:      s.AbsencePenalty,
		AbsencePenaltyType:  string(s.AbsencePenaltyType),
		LeavesPaid:          s.LeavesPaid,
		WorkingHoursPerDay:  s.WorkingHoursPerDay,
		WorkingDaysPerMonth: s.WorkingDaysPerMonth,
	}
}

type UpdateSettingsRequest struct {
	SalaryType          *string          `json:"salary_type"`
	DailyRate           *decimal.Decimal `json:"daily_rate"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate"`
	AbsencePenalty      *decimal.Decimal `json:"absence_penalty"`
	AbsencePenaltyType  *string          `json:"absence_penalty_type"`
	LeavesPaid          *bool            `json:"leaves_paid"`
	WorkingHoursPerDay  *int             `json:"working_hours_per_day"`
	WorkingDaysPerMonth *int             `json:"working_days_per_month"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, []string{
		string(SalaryTypeDaily), string(SalaryTypeHourly),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be either daily or hourly",
		})
	}
	if r.AbsencePenaltyType != nil && !validator.IsInSlice(*r.AbsencePenaltyType, []string{
		string(PenaltyTypeFixed), string(PenaltyTypePercentage),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_penalty_type",
			Message: "absence_penalty_type must be either fixed or percentage",
		})
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must not be negative",
		})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}
	if r.AbsencePenalty != nil && r.AbsencePenalty.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_penalty",
			Message: "absence_penalty must not be negative",
		})
	}
	if r.WorkingHoursPerDay != nil && *r.WorkingHoursPerDay <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours_per_day",
			Message: "working_hours_per_day must be positive",
		})
	}
	if r.WorkingDaysPerMonth != nil && *r.WorkingDaysPerMonth <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days_per_month",
			Message: "working_days_per_month must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
