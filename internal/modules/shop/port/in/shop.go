package in

import (
	"context"

	"focusforge/internal/modules/shop/dto"
)

// Usecase drives the cosmetic shop. Purchase declines on insufficient coins
// via the output, and returns sentinel errors for unknown, locked or already
// owned items.
type Usecase interface {
	ListItems(ctx context.Context) ([]dto.ItemOutput, error)
	Purchase(ctx context.Context, input dto.PurchaseInput) (dto.PurchaseOutput, error)
	GameState(ctx context.Context) (dto.GameStateOutput, error)
}
