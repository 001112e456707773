package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pointage/timeclock-backend-go/internal/domain/leave"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request filed", created)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListMine(r.Context())
	if err != nil {
		slog.Error("ListMine leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leaves)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)

	leaves, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leaves service error", "error", err)
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
	response.SuccessWithMeta(w, leaves, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Update implements LeaveHandler.
func (h *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq leave.UpdateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update leave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request updated", updated)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	updated, err := h.leaveService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", updated)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	updated, err := h.leaveService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", updated)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

func leaveFilterFromQuery(r *http.Request) leave.LeaveFilter {
	var filter leave.LeaveFilter

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := leave.Status(status)
		filter.Status = &s
	}
	if leaveType := r.URL.Query().Get("leave_type"); leaveType != "" {
		lt := leave.LeaveType(leaveType)
		filter.LeaveType = &lt
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	return filter
}
