package out

import (
	"context"
	"time"

	"focusforge/internal/modules/session/dto"
)

// TickSource delivers one signal per second until stopped. Stop must be
// idempotent; no signal may be delivered after Stop returns.
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a fresh tick source per session.
type TickerFactory interface {
	NewTicker() TickSource
}

// OutcomeRecorder lands a finished session in the progression ledger. Both
// calls are atomic from the session's perspective: stats, streak, coins and
// achievement evaluation happen as one unit behind this port.
type OutcomeRecorder interface {
	RecordCompleted(ctx context.Context, durationSeconds int) (dto.OutcomeOutput, error)
	RecordFailed(ctx context.Context, elapsedSeconds int) (dto.OutcomeOutput, error)
}
