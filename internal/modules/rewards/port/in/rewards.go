package in

import (
	"context"

	"focusforge/internal/modules/rewards/dto"
)

// Usecase owns every mutation of the progression ledger. Each call is atomic:
// the ledger is updated, achievements re-evaluated and the snapshot persisted
// as one unit before the call returns.
type Usecase interface {
	RecordCompleted(ctx context.Context, durationSeconds int) (dto.SessionRecordedOutput, error)
	RecordFailed(ctx context.Context, elapsedSeconds int) (dto.SessionRecordedOutput, error)
	SpendCoins(ctx context.Context, input dto.SpendInput) (bool, error)
	Snapshot(ctx context.Context) (dto.LedgerOutput, error)
	History(ctx context.Context, limit int) ([]dto.HistoryEntryOutput, error)
	ResetAll(ctx context.Context) error
	SubscribeChange(listener func()) (unsubscribe func())
}
