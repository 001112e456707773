package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/salary"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	EmployeeStats(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{
		salaryService: salaryService,
	}
}

// EmployeeStats implements SalaryHandler.
func (h *SalaryHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	month := r.URL.Query().Get("month")

	stats, err := h.salaryService.EmployeeStats(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("EmployeeStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// GetSettings implements SalaryHandler.
func (h *SalaryHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.salaryService.GetSettings(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// UpdateSettings implements SalaryHandler.
func (h *SalaryHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq salary.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	settings, err := h.salaryService.UpdateSettings(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary settings saved", settings)
}
