package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pointage/timeclock-backend-go/internal/domain/report"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GlobalExport(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	AttendanceXLSX(w http.ResponseWriter, r *http.Request)
	SalaryReportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// GlobalExport implements ReportHandler. The snapshot goes out as plain JSON
// so the admin UI can offer it as a downloadable file.
func (h *ReportHandlerImpl) GlobalExport(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.GlobalExport(r.Context())
	if err != nil {
		slog.Error("Global export service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, export)
}

// EmployeeReport implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	rep, err := h.reportService.EmployeeReport(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("Employee report service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

// AttendanceXLSX implements ReportHandler.
func (h *ReportHandlerImpl) AttendanceXLSX(w http.ResponseWriter, r *http.Request) {
	filter := recordFilterFromQuery(r)

	workbook, err := h.reportService.AttendanceXLSX(r.Context(), filter)
	if err != nil {
		slog.Error("Attendance export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		slog.Error("Attendance export write error", "error", err)
	}
}

// SalaryReportPDF implements ReportHandler.
func (h *ReportHandlerImpl) SalaryReportPDF(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	pdf, err := h.reportService.SalaryReportPDF(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("Salary report service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("salary-%s-%s.pdf", employeeID, month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Error("Salary report write error", "error", err)
	}
}
