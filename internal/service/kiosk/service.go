package kiosk

import (
	"context"
	"errors"
	"sync"

	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/pkg/sse"
)

// Service runs the kiosk scan flow: it resolves a scanned badge through the
// clock toggle and drives the station's display sequencer around the call.
// One sequencer exists per station, created on first use.
type Service struct {
	hub       *sse.Hub
	timeclock timeclock.TimeclockService

	mu         sync.Mutex
	sequencers map[string]*Sequencer
}

func NewService(hub *sse.Hub, timeclockService timeclock.TimeclockService) *Service {
	return &Service{
		hub:        hub,
		timeclock:  timeclockService,
		sequencers: make(map[string]*Sequencer),
	}
}

// Scan toggles the scanned user's clock state and plays the station's
// success or error sequence. The returned payload is also what the kiosk
// renders synchronously.
func (s *Service) Scan(ctx context.Context, req timeclock.ScanRequest) (timeclock.ScanResponse, error) {
	seq := s.Sequencer(req.StationID)
	seq.Begin()

	scan, err := s.timeclock.Toggle(ctx, req.UserID)
	if err != nil {
		seq.Fail(scanErrorMessage(err))
		return timeclock.ScanResponse{}, err
	}

	seq.Succeed(scan)
	return scan, nil
}

// Reset is the manual retry from the station's error phase.
func (s *Service) Reset(stationID string) {
	s.Sequencer(stationID).Reset()
}

// Sequencer returns the station's sequencer, creating it on first use.
func (s *Service) Sequencer(stationID string) *Sequencer {
	if stationID == "" {
		stationID = "default"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.sequencers[stationID]
	if !ok {
		seq = NewSequencer(stationID, s.hub)
		s.sequencers[stationID] = seq
	}
	return seq
}

// Stop tears down every station's pending timers.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seq := range s.sequencers {
		seq.Stop()
	}
}

func scanErrorMessage(err error) string {
	if errors.Is(err, user.ErrUserNotFound) {
		return "Badge not recognized"
	}
	return "Scan failed, please try again"
}
