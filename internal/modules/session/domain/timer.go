package domain

import apperrors "focusforge/internal/platform/errors"

type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusStopped   Status = "stopped"
)

const SchemaVersion = 1

// Timer is the single-session countdown state machine. It owns only the
// lifecycle and remaining time; reward and interruption semantics live with
// its callers. All methods are pure transitions over the struct; the tick
// source and locking belong to the service layer.
type Timer struct {
	Status           Status
	DurationSeconds  int
	RemainingSeconds int
}

func NewTimer() Timer {
	return Timer{Status: StatusIdle}
}

// Start transitions Idle -> Running. Non-positive durations are rejected
// before any state changes; starting over a live or terminal session is
// refused so that each Start has exactly one terminal outcome.
func (t *Timer) Start(durationSeconds int) error {
	if durationSeconds <= 0 {
		return apperrors.ErrInvalidDuration
	}
	if t.Status != StatusIdle {
		return apperrors.ErrSessionActive
	}
	t.Status = StatusRunning
	t.DurationSeconds = durationSeconds
	t.RemainingSeconds = durationSeconds
	return nil
}

// Tick consumes one second while Running and reports whether the countdown
// just completed. Ticks in any other state are stale and ignored, which
// guards against a tick scheduled before a Stop landing after it.
func (t *Timer) Tick() (completed bool) {
	if t.Status != StatusRunning {
		return false
	}
	t.RemainingSeconds--
	if t.RemainingSeconds <= 0 {
		t.RemainingSeconds = 0
		t.Status = StatusCompleted
		return true
	}
	return false
}

// Pause is legal only while Running; elsewhere it is a silent no-op so
// duplicate UI events do not corrupt state.
func (t *Timer) Pause() bool {
	if t.Status != StatusRunning {
		return false
	}
	t.Status = StatusPaused
	return true
}

func (t *Timer) Resume() bool {
	if t.Status != StatusPaused {
		return false
	}
	t.Status = StatusRunning
	return true
}

// Stop abandons a Running or Paused session, preserving RemainingSeconds so
// the elapsed time of the failed attempt can still be computed.
func (t *Timer) Stop() bool {
	if t.Status != StatusRunning && t.Status != StatusPaused {
		return false
	}
	t.Status = StatusStopped
	return true
}

// Reset returns a terminal (or idle) timer to Idle. A live session must be
// stopped first.
func (t *Timer) Reset() bool {
	if t.Status == StatusRunning || t.Status == StatusPaused {
		return false
	}
	*t = NewTimer()
	return true
}

func (t Timer) ElapsedSeconds() int {
	return t.DurationSeconds - t.RemainingSeconds
}
