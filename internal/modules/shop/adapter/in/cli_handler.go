package in

import (
	"context"

	"focusforge/internal/modules/shop/dto"
	shopin "focusforge/internal/modules/shop/port/in"
)

type CLIHandler struct {
	usecase shopin.Usecase
}

func NewCLIHandler(usecase shopin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListItems(ctx context.Context) ([]dto.ItemOutput, error) {
	return h.usecase.ListItems(ctx)
}

func (h CLIHandler) Purchase(ctx context.Context, itemID string) (dto.PurchaseOutput, error) {
	return h.usecase.Purchase(ctx, dto.PurchaseInput{ItemID: itemID})
}

func (h CLIHandler) GameState(ctx context.Context) (dto.GameStateOutput, error) {
	return h.usecase.GameState(ctx)
}
