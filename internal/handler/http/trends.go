package http

import (
	"log/slog"
	"net/http"

	"github.com/pointage/timeclock-backend-go/internal/domain/trends"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
)

type TrendsHandler interface {
	Analyze(w http.ResponseWriter, r *http.Request)
}

type TrendsHandlerImpl struct {
	trendsService trends.TrendsService
}

func NewTrendsHandler(trendsService trends.TrendsService) TrendsHandler {
	return &TrendsHandlerImpl{
		trendsService: trendsService,
	}
}

// Analyze implements TrendsHandler.
func (h *TrendsHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.trendsService.Analyze(r.Context())
	if err != nil {
		slog.Error("Analyze trends service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, analysis)
}
