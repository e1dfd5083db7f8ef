package out

import (
	"context"

	"focusforge/internal/modules/shop/domain"
)

// GameStateStore persists the cosmetic record. Load returns
// apperrors.ErrNotFound on first run.
type GameStateStore interface {
	Load(ctx context.Context) (domain.GameState, error)
	Save(ctx context.Context, state domain.GameState) error
}
