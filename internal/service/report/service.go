package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/domain/report"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/domain/settings"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

type ReportServiceImpl struct {
	settingsService settings.SettingsService
	salaryService   salary.SalaryService
	timeclock.TimeRecordRepository
	leave.LeaveRepository
	user.UserRepository
}

func NewReportService(
	settingsService settings.SettingsService,
	salaryService salary.SalaryService,
	timeRecordRepository timeclock.TimeRecordRepository,
	leaveRepository leave.LeaveRepository,
	userRepository user.UserRepository,
) report.ReportService {
	return &ReportServiceImpl{
		settingsService:      settingsService,
		salaryService:        salaryService,
		TimeRecordRepository: timeRecordRepository,
		LeaveRepository:      leaveRepository,
		UserRepository:       userRepository,
	}
}

// GlobalExport implements report.ReportService.
func (s *ReportServiceImpl) GlobalExport(ctx context.Context) (report.GlobalExport, error) {
	appSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return report.GlobalExport{}, err
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return report.GlobalExport{}, fmt.Errorf("failed to list users: %w", err)
	}
	records, err := s.TimeRecordRepository.ListAll(ctx)
	if err != nil {
		return report.GlobalExport{}, fmt.Errorf("failed to list time records: %w", err)
	}
	leaves, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return report.GlobalExport{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	employees := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		employees = append(employees, user.ToProfileResponse(u))
	}

	return report.GlobalExport{
		AppName:     appSettings.AppName,
		AppLogo:     appSettings.AppLogo,
		Employees:   employees,
		TimeEntries: timeclock.ToRecordResponses(records),
		Leaves:      leave.ToLeaveResponses(leaves),
		ExportDate:  time.Now().Format(time.RFC3339),
	}, nil
}

// EmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) EmployeeReport(ctx context.Context, employeeID string, month string) (report.EmployeeReport, error) {
	employee, err := s.UserRepository.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	stats, err := s.salaryService.EmployeeStats(ctx, employeeID, month)
	if err != nil {
		return report.EmployeeReport{}, err
	}
	salarySettings, err := s.salaryService.GetSettings(ctx)
	if err != nil {
		return report.EmployeeReport{}, err
	}

	return report.EmployeeReport{
		Employee:    user.ToProfileResponse(employee),
		Month:       month,
		Stats:       stats,
		Settings:    salarySettings,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// AttendanceXLSX implements report.ReportService.
func (s *ReportServiceImpl) AttendanceXLSX(ctx context.Context, filter timeclock.RecordFilter) ([]byte, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10000
	}
	records, _, err := s.TimeRecordRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee", "Date", "Clock In", "Clock Out", "Hours"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, r := range records {
		name := ""
		if r.UserName != nil {
			name = *r.UserName
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), r.ClockIn.Format("15:04"))
		if r.ClockOut != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), r.ClockOut.Format("15:04"))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), round2(r.Duration().Hours()))
		} else {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), "-")
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// SalaryReportPDF implements report.ReportService.
func (s *ReportServiceImpl) SalaryReportPDF(ctx context.Context, employeeID string, month string) ([]byte, error) {
	data, err := s.EmployeeReport(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	appSettings, err := s.settingsService.Get(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, appSettings.AppName)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Salary report - %s - %s", data.Employee.FullName, data.Month))
	pdf.Ln(12)

	rows := [][2]string{
		{"Worked days", fmt.Sprintf("%d", data.Stats.WorkedDays)},
		{"Worked hours", fmt.Sprintf("%.1f", data.Stats.WorkedHours)},
		{"Present days", fmt.Sprintf("%d", data.Stats.PresentDays)},
		{"Leave days", fmt.Sprintf("%d", data.Stats.LeaveDays)},
		{"Unpunched days", fmt.Sprintf("%d", data.Stats.UnpunchedDays)},
		{"Unjustified absences", fmt.Sprintf("%d", data.Stats.UnjustifiedAbsences)},
		{"Base salary", data.Stats.TotalSalary.String() + " MAD"},
		{"Penalties", "-" + data.Stats.PenaltyAmount.String() + " MAD"},
		{"Final salary", data.Stats.FinalSalary.String() + " MAD"},
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(70, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Generated at "+data.GeneratedAt)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
