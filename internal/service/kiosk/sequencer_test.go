package kiosk

import (
	"testing"
	"time"

	"github.com/pointage/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pointage/timeclock-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualClock captures scheduled callbacks so tests fire them by hand.
type manualClock struct {
	pending []func()
	delays  []time.Duration
}

func (c *manualClock) after(d time.Duration, fn func()) *time.Timer {
	c.pending = append(c.pending, fn)
	c.delays = append(c.delays, d)
	return time.NewTimer(time.Hour)
}

// fire runs the oldest pending callback.
func (c *manualClock) fire() {
	fn := c.pending[0]
	c.pending = c.pending[1:]
	c.delays = c.delays[1:]
	fn()
}

func newTestSequencer() (*Sequencer, *manualClock, chan sse.Event, func()) {
	hub := sse.NewHub()
	events, cleanup := hub.Subscribe("station-1")
	seq := NewSequencer("station-1", hub)
	clock := &manualClock{}
	seq.after = clock.after
	return seq, clock, events, cleanup
}

func drainPhases(events chan sse.Event) []Phase {
	var out []Phase
	for {
		select {
		case e := <-events:
			out = append(out, e.Data.(PhaseEvent).Phase)
		default:
			return out
		}
	}
}

func scanResult(action timeclock.ClockAction) timeclock.ScanResponse {
	return timeclock.ScanResponse{
		Action: action,
		User:   timeclock.ScanUserInfo{UserName: "Nadia Alaoui"},
		At:     "2025-03-10T09:00:00Z",
	}
}

func TestSuccessSequenceRunsToIdle(t *testing.T) {
	seq, clock, events, cleanup := newTestSequencer()
	defer cleanup()

	seq.Begin()
	assert.Equal(t, PhaseVerifying, seq.Phase())

	seq.Succeed(scanResult(timeclock.ActionIn))
	assert.Equal(t, PhaseSuccess, seq.Phase())
	require.Len(t, clock.delays, 1)
	assert.Equal(t, AnimationDuration, clock.delays[0])

	clock.fire()
	assert.Equal(t, PhaseConfirmation, seq.Phase())
	require.Len(t, clock.delays, 1)
	assert.Equal(t, ConfirmationDuration, clock.delays[0])

	clock.fire()
	assert.Equal(t, PhaseIdle, seq.Phase())

	assert.Equal(t, []Phase{PhaseVerifying, PhaseSuccess, PhaseConfirmation, PhaseIdle}, drainPhases(events))
}

func TestSuccessEventCarriesToastAndAction(t *testing.T) {
	seq, _, events, cleanup := newTestSequencer()
	defer cleanup()

	seq.Succeed(scanResult(timeclock.ActionOut))

	e := <-events
	payload := e.Data.(PhaseEvent)
	assert.Equal(t, PhaseSuccess, payload.Phase)
	assert.Equal(t, "out", payload.Action)
	assert.Equal(t, "Nadia Alaoui", payload.UserName)
	require.NotNil(t, payload.Toast)
	assert.Equal(t, "Nadia Alaoui clocked out", *payload.Toast)
}

func TestErrorHoldsUntilReset(t *testing.T) {
	seq, clock, events, cleanup := newTestSequencer()
	defer cleanup()

	seq.Begin()
	seq.Fail("Badge not recognized")
	assert.Equal(t, PhaseError, seq.Phase())
	assert.Empty(t, clock.pending)

	seq.Reset()
	assert.Equal(t, PhaseIdle, seq.Phase())

	phases := drainPhases(events)
	assert.Equal(t, []Phase{PhaseVerifying, PhaseError, PhaseIdle}, phases)
}

func TestNewScanCancelsPlayingSequence(t *testing.T) {
	seq, clock, events, cleanup := newTestSequencer()
	defer cleanup()

	seq.Succeed(scanResult(timeclock.ActionIn))
	stale := clock.pending[0]

	// A fresh scan starts before the animation finishes.
	seq.Begin()
	seq.Succeed(scanResult(timeclock.ActionOut))

	// The old animation timer fires late and must not move the phase.
	stale()
	assert.Equal(t, PhaseSuccess, seq.Phase())

	phases := drainPhases(events)
	assert.Equal(t, []Phase{PhaseSuccess, PhaseVerifying, PhaseSuccess}, phases)
}

func TestStopCancelsPendingTimers(t *testing.T) {
	seq, clock, _, cleanup := newTestSequencer()
	defer cleanup()

	seq.Succeed(scanResult(timeclock.ActionIn))
	pending := clock.pending[0]

	seq.Stop()
	assert.Equal(t, PhaseIdle, seq.Phase())

	pending()
	assert.Equal(t, PhaseIdle, seq.Phase())
}
