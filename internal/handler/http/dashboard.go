package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	timeclockService timeclock.TimeclockService
}

func NewDashboardHandler(timeclockService timeclock.TimeclockService) DashboardHandler {
	return &DashboardHandlerImpl{
		timeclockService: timeclockService,
	}
}

// dashboardResponse combines everything the employee view renders in one
// round trip.
type dashboardResponse struct {
	Status        timeclock.StatusResponse      `json:"status"`
	Weekly        timeclock.WeeklyStatsResponse `json:"weekly"`
	RecentEntries []timeclock.RecordResponse    `json:"recent_entries"`
}

// Me implements DashboardHandler.
func (h *DashboardHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		response.Unauthorized(w, "Invalid token")
		return
	}

	status, err := h.timeclockService.Status(ctx)
	if err != nil {
		slog.Error("Dashboard status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	weekly, err := h.timeclockService.WeeklyStats(ctx)
	if err != nil {
		slog.Error("Dashboard weekly stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	recent, _, err := h.timeclockService.List(ctx, timeclock.RecordFilter{
		UserID: &userID,
		Limit:  10,
	})
	if err != nil {
		slog.Error("Dashboard recent entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboardResponse{
		Status:        status,
		Weekly:        weekly,
		RecentEntries: recent,
	})
}
