package usecase

import (
	"context"

	rewardsdto "focusforge/internal/modules/rewards/dto"
	rewardsin "focusforge/internal/modules/rewards/port/in"
	"focusforge/internal/modules/shop/domain"
	"focusforge/internal/modules/shop/dto"
	shopin "focusforge/internal/modules/shop/port/in"
	"focusforge/internal/modules/shop/service"
	apperrors "focusforge/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ShopService
	rewards rewardsin.Usecase
}

func NewInteractor(svc *service.ShopService, rewards rewardsin.Usecase) shopin.Usecase {
	return &Interactor{svc: svc, rewards: rewards}
}

func (i *Interactor) ListItems(ctx context.Context) ([]dto.ItemOutput, error) {
	snapshot, err := i.rewards.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	metrics := toMetrics(snapshot)
	state := i.svc.GameState(ctx)

	var out []dto.ItemOutput
	for _, item := range i.svc.Catalog() {
		out = append(out, dto.ItemOutput{
			ID:              item.ID,
			Name:            item.Name,
			Description:     item.Description,
			Category:        string(item.Category),
			Price:           item.Price,
			Effect:          item.Effect,
			RequirementText: item.Requirement.Describe(),
			Unlocked:        item.Requirement.Met(metrics),
			Owned:           state.Owns(item.Category, item.ID),
		})
	}
	return out, nil
}

// Purchase spends coins first and only then records ownership; the ledger is
// the sole authority on whether the player can afford the item.
func (i *Interactor) Purchase(ctx context.Context, input dto.PurchaseInput) (dto.PurchaseOutput, error) {
	item, found := domain.FindItem(input.ItemID)
	if !found {
		return dto.PurchaseOutput{}, apperrors.ErrNotFound
	}
	if i.svc.GameState(ctx).Owns(item.Category, item.ID) {
		return dto.PurchaseOutput{}, apperrors.ErrItemOwned
	}

	snapshot, err := i.rewards.Snapshot(ctx)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	if !item.Requirement.Met(toMetrics(snapshot)) {
		return dto.PurchaseOutput{}, apperrors.ErrItemLocked
	}

	ok, err := i.rewards.SpendCoins(ctx, rewardsdto.SpendInput{Amount: item.Price})
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	out := dto.PurchaseOutput{ItemID: item.ID, Price: item.Price, CoinsLeft: snapshot.Coins}
	if !ok {
		return out, nil
	}

	i.svc.MarkPurchased(ctx, item)
	out.Purchased = true
	out.CoinsLeft = snapshot.Coins - item.Price
	return out, nil
}

func (i *Interactor) GameState(ctx context.Context) (dto.GameStateOutput, error) {
	state := i.svc.GameState(ctx)
	items := make(map[string][]string, len(state.PurchasedItems))
	for category, ids := range state.PurchasedItems {
		items[category] = append([]string(nil), ids...)
	}
	return dto.GameStateOutput{CurrentHouse: state.CurrentHouse, PurchasedItems: items}, nil
}

func toMetrics(snapshot rewardsdto.LedgerOutput) domain.PlayerMetrics {
	return domain.PlayerMetrics{
		HousesBuilt:       snapshot.HousesBuilt,
		StreakDays:        snapshot.StreakDays,
		Coins:             snapshot.Coins,
		TotalFocusSeconds: snapshot.TotalFocusSeconds,
	}
}
