package domain_test

import (
	"testing"

	"focusforge/internal/modules/session/domain"
	apperrors "focusforge/internal/platform/errors"
)

func TestStartValidatesDurationAndState(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer()
	if err := timer.Start(0); err != apperrors.ErrInvalidDuration {
		t.Fatalf("expected invalid duration error, got %v", err)
	}
	if err := timer.Start(-60); err != apperrors.ErrInvalidDuration {
		t.Fatalf("expected invalid duration error for negative, got %v", err)
	}
	if timer.Status != domain.StatusIdle {
		t.Fatalf("rejected start must not change state, got %s", timer.Status)
	}
	if err := timer.Start(1500); err != nil {
		t.Fatalf("start: %v", err)
	}
	if timer.Status != domain.StatusRunning || timer.RemainingSeconds != 1500 {
		t.Fatalf("expected running with 1500s remaining, got %s %d", timer.Status, timer.RemainingSeconds)
	}
	if err := timer.Start(300); err != apperrors.ErrSessionActive {
		t.Fatalf("expected session active error, got %v", err)
	}
}

func TestStartRefusedOnTerminalStates(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer()
	if err := timer.Start(1); err != nil {
		t.Fatalf("start: %v", err)
	}
	if completed := timer.Tick(); !completed {
		t.Fatalf("one-second timer must complete on first tick")
	}
	if err := timer.Start(60); err != apperrors.ErrSessionActive {
		t.Fatalf("completed timer must refuse start, got %v", err)
	}
	if !timer.Reset() {
		t.Fatalf("reset after completion must apply")
	}
	if err := timer.Start(60); err != nil {
		t.Fatalf("start after reset: %v", err)
	}
}

func TestTickCountsDownAndCompletesExactlyOnce(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer()
	if err := timer.Start(3); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 2; i++ {
		if completed := timer.Tick(); completed {
			t.Fatalf("tick %d must not complete", i+1)
		}
	}
	if timer.RemainingSeconds != 1 {
		t.Fatalf("expected 1s remaining, got %d", timer.RemainingSeconds)
	}
	if completed := timer.Tick(); !completed {
		t.Fatalf("final tick must complete")
	}
	if timer.Status != domain.StatusCompleted || timer.RemainingSeconds != 0 {
		t.Fatalf("expected completed at zero, got %s %d", timer.Status, timer.RemainingSeconds)
	}
	// A stale tick after completion is a no-op.
	if completed := timer.Tick(); completed {
		t.Fatalf("tick on completed timer must be ignored")
	}
	if timer.ElapsedSeconds() != 3 {
		t.Fatalf("expected full elapsed, got %d", timer.ElapsedSeconds())
	}
}

func TestPauseResumeTransitions(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer()
	if timer.Pause() || timer.Resume() {
		t.Fatalf("pause/resume on idle must be no-ops")
	}
	if err := timer.Start(120); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !timer.Pause() {
		t.Fatalf("pause while running must apply")
	}
	if timer.Pause() {
		t.Fatalf("duplicate pause must be a no-op")
	}
	if completed := timer.Tick(); completed || timer.RemainingSeconds != 120 {
		t.Fatalf("ticks while paused must not consume time, remaining %d", timer.RemainingSeconds)
	}
	if !timer.Resume() {
		t.Fatalf("resume while paused must apply")
	}
	if timer.Resume() {
		t.Fatalf("resume while running must be a no-op")
	}
	if completed := timer.Tick(); completed || timer.RemainingSeconds != 119 {
		t.Fatalf("tick after resume must consume a second, remaining %d", timer.RemainingSeconds)
	}
}

func TestStopPreservesElapsedAndResetClears(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer()
	if timer.Stop() {
		t.Fatalf("stop on idle must be a no-op")
	}
	if err := timer.Start(100); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 40; i++ {
		timer.Tick()
	}
	if timer.Reset() {
		t.Fatalf("reset on live session must be refused")
	}
	if !timer.Stop() {
		t.Fatalf("stop while running must apply")
	}
	if timer.Status != domain.StatusStopped || timer.ElapsedSeconds() != 40 {
		t.Fatalf("expected stopped after 40s, got %s %d", timer.Status, timer.ElapsedSeconds())
	}
	if timer.Stop() {
		t.Fatalf("duplicate stop must be a no-op")
	}
	if !timer.Reset() {
		t.Fatalf("reset after stop must apply")
	}
	if timer.Status != domain.StatusIdle || timer.DurationSeconds != 0 {
		t.Fatalf("reset must return to zero idle timer, got %s %d", timer.Status, timer.DurationSeconds)
	}
}

func TestStopFromPausedKeepsPartialElapsed(t *testing.T) {
	t.Parallel()
	timer := domain.NewTimer()
	if err := timer.Start(60); err != nil {
		t.Fatalf("start: %v", err)
	}
	timer.Tick()
	timer.Tick()
	timer.Pause()
	if !timer.Stop() {
		t.Fatalf("stop while paused must apply")
	}
	if timer.ElapsedSeconds() != 2 {
		t.Fatalf("expected 2s elapsed, got %d", timer.ElapsedSeconds())
	}
}
