package kiosk

import (
	"sync"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/pkg/sse"
)

// Phase is one named state of the post-scan display sequence.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseVerifying    Phase = "verifying"
	PhaseSuccess      Phase = "success"      // toast + full-screen animation window
	PhaseConfirmation Phase = "confirmation" // textual panel after the animation
	PhaseError        Phase = "error"        // holds until a manual retry
)

const (
	ToastDuration        = 3 * time.Second
	AnimationDuration    = 3 * time.Second
	ConfirmationDuration = 3 * time.Second
)

// PhaseEvent is the wire shape pushed to the kiosk's event stream on every
// transition.
type PhaseEvent struct {
	Phase    Phase   `json:"phase"`
	Action   string  `json:"action,omitempty"`
	UserName string  `json:"user_name,omitempty"`
	At       string  `json:"at,omitempty"`
	Message  string  `json:"message,omitempty"`
	Toast    *string `json:"toast,omitempty"`
	ToastMs  int64   `json:"toast_ms,omitempty"`
}

// Sequencer drives one station's display sequence:
//
//	idle -> verifying -> success -> confirmation -> idle
//	                  -> error (manual retry only)
//
// All delays run on a single clock abstraction. A generation counter makes
// every pending timer stale the moment a newer transition happens, so a fresh
// scan or Stop cancels the rest of an old sequence in one step.
type Sequencer struct {
	stationID string
	hub       *sse.Hub
	after     func(d time.Duration, fn func()) *time.Timer

	mu     sync.Mutex
	phase  Phase
	gen    uint64
	timers []*time.Timer
}

func NewSequencer(stationID string, hub *sse.Hub) *Sequencer {
	return &Sequencer{
		stationID: stationID,
		hub:       hub,
		after:     time.AfterFunc,
		phase:     PhaseIdle,
	}
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Begin moves to verifying. Any sequence still playing is cancelled.
func (s *Sequencer) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(PhaseVerifying, PhaseEvent{Phase: PhaseVerifying})
}

// Succeed plays the success sequence for a resolved scan: the success phase
// carries the toast line for its 3-second window, the confirmation panel
// follows when the animation ends and dismisses itself back to idle.
func (s *Sequencer) Succeed(scan timeclock.ScanResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	toast := toastLine(scan)
	s.transition(PhaseSuccess, PhaseEvent{
		Phase:    PhaseSuccess,
		Action:   string(scan.Action),
		UserName: scan.User.UserName,
		At:       scan.At,
		Toast:    &toast,
		ToastMs:  ToastDuration.Milliseconds(),
	})
	gen := s.gen

	s.schedule(AnimationDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.transition(PhaseConfirmation, PhaseEvent{
			Phase:    PhaseConfirmation,
			Action:   string(scan.Action),
			UserName: scan.User.UserName,
			At:       scan.At,
		})
		confirmGen := s.gen

		s.schedule(ConfirmationDuration, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.gen != confirmGen {
				return
			}
			s.transition(PhaseIdle, PhaseEvent{Phase: PhaseIdle})
		})
	})
}

// Fail moves to the error phase, which holds until Reset. No timer runs.
func (s *Sequencer) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(PhaseError, PhaseEvent{Phase: PhaseError, Message: message})
}

// Reset is the manual retry action from the error phase.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transition(PhaseIdle, PhaseEvent{Phase: PhaseIdle})
}

// Stop cancels every pending timer. The station stops emitting until the
// next Begin.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.cancelTimers()
	s.phase = PhaseIdle
}

// transition bumps the generation, cancels stale timers, records the phase
// and publishes it. Callers hold s.mu.
func (s *Sequencer) transition(phase Phase, event PhaseEvent) {
	s.gen++
	s.cancelTimers()
	s.phase = phase
	s.hub.Publish(s.stationID, sse.Event{
		Channel: s.stationID,
		Event:   "phase",
		Data:    event,
	})
}

func (s *Sequencer) schedule(d time.Duration, fn func()) {
	s.timers = append(s.timers, s.after(d, fn))
}

func (s *Sequencer) cancelTimers() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

func toastLine(scan timeclock.ScanResponse) string {
	if scan.Action == timeclock.ActionIn {
		return scan.User.UserName + " clocked in"
	}
	return scan.User.UserName + " clocked out"
}
