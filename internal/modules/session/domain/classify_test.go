package domain_test

import (
	"testing"

	"focusforge/internal/modules/session/domain"
)

func TestClassifyOnlyInterruptsRunningTimer(t *testing.T) {
	t.Parallel()
	ev := domain.InputEvent{Target: "key:g"}
	for _, status := range []domain.Status{domain.StatusIdle, domain.StatusPaused, domain.StatusCompleted, domain.StatusStopped} {
		if got := domain.Classify(ev, status, nil); got != domain.DecisionIgnore {
			t.Fatalf("status %s must ignore input, got %s", status, got)
		}
	}
	if got := domain.Classify(ev, domain.StatusRunning, nil); got != domain.DecisionInterrupt {
		t.Fatalf("running timer with no safe zone must interrupt, got %s", got)
	}
}

func TestClassifyHonorsSafePredicate(t *testing.T) {
	t.Parallel()
	safe := func(ev domain.InputEvent) bool { return ev.Target == "key: " || ev.Target == "key:q" }

	if got := domain.Classify(domain.InputEvent{Target: "key: "}, domain.StatusRunning, safe); got != domain.DecisionIgnore {
		t.Fatalf("safe target must be ignored, got %s", got)
	}
	if got := domain.Classify(domain.InputEvent{Target: "mouse:4,2"}, domain.StatusRunning, safe); got != domain.DecisionInterrupt {
		t.Fatalf("unsafe target must interrupt, got %s", got)
	}
	// The predicate is consulted only while running.
	if got := domain.Classify(domain.InputEvent{Target: "mouse:4,2"}, domain.StatusPaused, safe); got != domain.DecisionIgnore {
		t.Fatalf("paused timer must ignore unsafe target, got %s", got)
	}
}
