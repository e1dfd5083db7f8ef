package out

import (
	"context"

	"focusforge/internal/modules/rewards/domain"
)

// SnapshotStore is the persistence gateway for the ledger record. Load
// returns apperrors.ErrNotFound on first run; Save fully overwrites the
// prior snapshot so fields never drift apart.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Ledger, error)
	Save(ctx context.Context, ledger domain.Ledger) error
	Clear(ctx context.Context) error
}

// HistoryProjector appends finished sessions to the reporting projection.
type HistoryProjector interface {
	Append(ctx context.Context, record domain.SessionRecord) error
	Recent(ctx context.Context, limit int) ([]domain.SessionRecord, error)
	Reset(ctx context.Context) error
}
