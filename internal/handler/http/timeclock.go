package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type TimeclockHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	WeeklyStats(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	DeleteAllRecords(w http.ResponseWriter, r *http.Request)
}

type TimeclockHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewTimeclockHandler(timeclockService timeclock.TimeclockService) TimeclockHandler {
	return &TimeclockHandlerImpl{
		timeclockService: timeclockService,
	}
}

// Status implements TimeclockHandler.
func (h *TimeclockHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.timeclockService.Status(r.Context())
	if err != nil {
		slog.Error("Status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}

// ClockIn implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	status, err := h.timeclockService.ClockIn(r.Context())
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked in", status)
}

// ClockOut implements TimeclockHandler.
func (h *TimeclockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	status, err := h.timeclockService.ClockOut(r.Context())
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", status)
}

// WeeklyStats implements TimeclockHandler.
func (h *TimeclockHandlerImpl) WeeklyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.timeclockService.WeeklyStats(r.Context())
	if err != nil {
		slog.Error("WeeklyStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// List implements TimeclockHandler.
func (h *TimeclockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := recordFilterFromQuery(r)

	records, total, err := h.timeclockService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List records service error", "error", err)
		response.HandleError(w, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	})
}

// UpdateRecord implements TimeclockHandler.
func (h *TimeclockHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq timeclock.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateRecord decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.timeclockService.UpdateRecord(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("UpdateRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time record updated", record)
}

// DeleteRecord implements TimeclockHandler.
func (h *TimeclockHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timeclockService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("DeleteRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time record deleted", nil)
}

// DeleteAllRecords implements TimeclockHandler.
func (h *TimeclockHandlerImpl) DeleteAllRecords(w http.ResponseWriter, r *http.Request) {
	if err := h.timeclockService.DeleteAllRecords(r.Context()); err != nil {
		slog.Error("DeleteAllRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}
	slog.Warn("All time records deleted")
	response.SuccessWithMessage(w, "All time records deleted", nil)
}

func recordFilterFromQuery(r *http.Request) timeclock.RecordFilter {
	var filter timeclock.RecordFilter

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if from := r.URL.Query().Get("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.DateFrom = &t
		}
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.DateTo = &t
		}
	}
	filter.OpenOnly = r.URL.Query().Get("open_only") == "true"
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	return filter
}
