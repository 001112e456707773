package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Badge(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService user.EmployeeService
}

func NewEmployeeHandler(employeeService user.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employee, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employee)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	employee, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", employee.ID)
	response.Created(w, "Employee created", employee)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	employee, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", employee)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "employee_id", id)
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// Badge implements EmployeeHandler: the QR badge PNG the kiosk scans.
func (h *EmployeeHandlerImpl) Badge(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	png, err := h.employeeService.Badge(r.Context(), chi.URLParam(r, "id"), size)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
