package salary

import "context"

// SalaryService computes per-employee monthly statistics and manages the
// salary configuration.
type SalaryService interface {
	// EmployeeStats runs the calculator over the employee's records and
	// approved leaves for the given "YYYY-MM" month, using stored settings.
	EmployeeStats(ctx context.Context, employeeID string, month string) (StatsResponse, error)

	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
