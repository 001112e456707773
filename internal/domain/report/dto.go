package report

import (
	"context"

	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
)

// GlobalExport is the admin data dump: a plain descriptive snapshot, not
// consumed elsewhere.
type GlobalExport struct {
	AppName     string                     `json:"appName"`
	AppLogo     string                     `json:"appLogo"`
	Employees   []user.ProfileResponse     `json:"employees"`
	TimeEntries []timeclock.RecordResponse `json:"timeEntries"`
	Leaves      []leave.LeaveResponse      `json:"leaves"`
	ExportDate  string                     `json:"exportDate"`
}

// EmployeeReport is the per-employee monthly salary snapshot.
type EmployeeReport struct {
	Employee    user.ProfileResponse    `json:"employee"`
	Month       string                  `json:"month"`
	Stats       salary.StatsResponse    `json:"stats"`
	Settings    salary.SettingsResponse `json:"settings"`
	GeneratedAt string                  `json:"generatedAt"`
}

// ReportService builds the admin exports in their three formats.
type ReportService interface {
	GlobalExport(ctx context.Context) (GlobalExport, error)
	EmployeeReport(ctx context.Context, employeeID string, month string) (EmployeeReport, error)
	// AttendanceXLSX renders the filtered attendance listing as a workbook.
	AttendanceXLSX(ctx context.Context, filter timeclock.RecordFilter) ([]byte, error)
	// SalaryReportPDF renders an employee's monthly report as a PDF.
	SalaryReportPDF(ctx context.Context, employeeID string, month string) ([]byte, error)
}
