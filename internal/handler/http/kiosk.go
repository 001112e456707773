package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/pointage/timeclock-backend-go/internal/handler/http/response"
	"github.com/pointage/timeclock-backend-go/internal/pkg/sse"
	"github.com/pointage/timeclock-backend-go/internal/service/kiosk"
)

type KioskHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type KioskHandlerImpl struct {
	kioskService *kiosk.Service
	hub          *sse.Hub
}

func NewKioskHandler(kioskService *kiosk.Service, hub *sse.Hub) KioskHandler {
	return &KioskHandlerImpl{
		kioskService: kioskService,
		hub:          hub,
	}
}

// Scan implements KioskHandler. The badge QR resolves to a user id; the
// server decides entry vs exit.
func (h *KioskHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var scanReq timeclock.ScanRequest

	if err := json.NewDecoder(r.Body).Decode(&scanReq); err != nil {
		slog.Error("Scan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if scanReq.StationID == "" {
		scanReq.StationID = middleware.StationID(r.Context())
	}

	if err := scanReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	scan, err := h.kioskService.Scan(r.Context(), scanReq)
	if err != nil {
		slog.Warn("Scan rejected", "station_id", scanReq.StationID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Badge scanned", "station_id", scanReq.StationID, "action", scan.Action)
	response.Success(w, scan)
}

// Reset implements KioskHandler: the manual retry from the error phase.
func (h *KioskHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	stationID := middleware.StationID(r.Context())
	h.kioskService.Reset(stationID)
	response.SuccessWithMessage(w, "Station reset", nil)
}

// Stream implements KioskHandler: the station's phase event stream.
func (h *KioskHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	stationID := middleware.StationID(r.Context())
	if stationID == "" {
		stationID = "default"
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(stationID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"station_id\":%q}\n\n", stationID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}
