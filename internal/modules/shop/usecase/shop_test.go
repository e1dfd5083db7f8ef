package usecase_test

import (
	"context"
	"errors"
	"testing"

	rewardsdto "focusforge/internal/modules/rewards/dto"
	"focusforge/internal/modules/shop/domain"
	"focusforge/internal/modules/shop/dto"
	shopin "focusforge/internal/modules/shop/port/in"
	"focusforge/internal/modules/shop/service"
	"focusforge/internal/modules/shop/usecase"
	apperrors "focusforge/internal/platform/errors"
)

type fakeRewards struct {
	snapshot rewardsdto.LedgerOutput
	spent    []int
}

func (f *fakeRewards) RecordCompleted(context.Context, int) (rewardsdto.SessionRecordedOutput, error) {
	return rewardsdto.SessionRecordedOutput{}, nil
}

func (f *fakeRewards) RecordFailed(context.Context, int) (rewardsdto.SessionRecordedOutput, error) {
	return rewardsdto.SessionRecordedOutput{}, nil
}

func (f *fakeRewards) SpendCoins(_ context.Context, input rewardsdto.SpendInput) (bool, error) {
	if input.Amount > f.snapshot.Coins {
		return false, nil
	}
	f.snapshot.Coins -= input.Amount
	f.spent = append(f.spent, input.Amount)
	return true, nil
}

func (f *fakeRewards) Snapshot(context.Context) (rewardsdto.LedgerOutput, error) {
	return f.snapshot, nil
}

func (f *fakeRewards) History(context.Context, int) ([]rewardsdto.HistoryEntryOutput, error) {
	return nil, nil
}

func (f *fakeRewards) ResetAll(context.Context) error { return nil }

func (f *fakeRewards) SubscribeChange(func()) func() { return func() {} }

type fakeGameStateStore struct {
	state    domain.GameState
	hasState bool
	saveErr  error
}

func (f *fakeGameStateStore) Load(context.Context) (domain.GameState, error) {
	if !f.hasState {
		return domain.GameState{}, apperrors.ErrNotFound
	}
	return f.state, nil
}

func (f *fakeGameStateStore) Save(_ context.Context, state domain.GameState) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.state = state
	f.hasState = true
	return nil
}

func newShop(rewards *fakeRewards, store *fakeGameStateStore) shopin.Usecase {
	return usecase.NewInteractor(service.NewShopService(store), rewards)
}

func TestListItemsFlagsUnlockAndOwnership(t *testing.T) {
	t.Parallel()
	rewards := &fakeRewards{snapshot: rewardsdto.LedgerOutput{Coins: 120, HousesBuilt: 5}}
	store := &fakeGameStateStore{hasState: true, state: domain.GameState{
		PurchasedItems: map[string][]string{"outfit": {"casual"}},
		CurrentHouse:   "cottage",
	}}
	shop := newShop(rewards, store)

	items, err := shop.ListItems(context.Background())
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	byID := map[string]dto.ItemOutput{}
	for _, item := range items {
		byID[item.ID] = item
	}

	if !byID["casual"].Owned {
		t.Fatalf("purchased item must be flagged owned")
	}
	if !byID["professional"].Unlocked {
		t.Fatalf("5 houses meet the professional gate")
	}
	if byID["viking"].Unlocked {
		t.Fatalf("viking needs 20 houses, must stay locked")
	}
	if byID["viking"].RequirementText == "" {
		t.Fatalf("locked items must carry their requirement text")
	}
	if byID["golden_hammer"].Effect == "" {
		t.Fatalf("tool effects must pass through")
	}
}

func TestPurchaseSpendsAndRecordsOwnership(t *testing.T) {
	t.Parallel()
	rewards := &fakeRewards{snapshot: rewardsdto.LedgerOutput{Coins: 120}}
	store := &fakeGameStateStore{}
	shop := newShop(rewards, store)

	out, err := shop.Purchase(context.Background(), dto.PurchaseInput{ItemID: "casual"})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if !out.Purchased || out.Price != 50 || out.CoinsLeft != 70 {
		t.Fatalf("unexpected purchase output %+v", out)
	}
	if len(rewards.spent) != 1 || rewards.spent[0] != 50 {
		t.Fatalf("purchase must spend through the ledger, got %v", rewards.spent)
	}
	if !store.state.Owns(domain.CategoryOutfit, "casual") {
		t.Fatalf("ownership must be recorded")
	}

	// Buying again is an error, not a second spend.
	if _, err := shop.Purchase(context.Background(), dto.PurchaseInput{ItemID: "casual"}); !errors.Is(err, apperrors.ErrItemOwned) {
		t.Fatalf("expected item owned error, got %v", err)
	}
	if len(rewards.spent) != 1 {
		t.Fatalf("owned item must not spend again")
	}
}

func TestPurchaseDeclinesWhenUnaffordable(t *testing.T) {
	t.Parallel()
	rewards := &fakeRewards{snapshot: rewardsdto.LedgerOutput{Coins: 10}}
	store := &fakeGameStateStore{}
	shop := newShop(rewards, store)

	out, err := shop.Purchase(context.Background(), dto.PurchaseInput{ItemID: "casual"})
	if err != nil {
		t.Fatalf("an unaffordable purchase is a decline, not an error: %v", err)
	}
	if out.Purchased {
		t.Fatalf("purchase must decline at 10 coins")
	}
	if store.hasState && store.state.Owns(domain.CategoryOutfit, "casual") {
		t.Fatalf("declined purchase must not record ownership")
	}
}

func TestPurchaseErrorsOnUnknownAndLockedItems(t *testing.T) {
	t.Parallel()
	rewards := &fakeRewards{snapshot: rewardsdto.LedgerOutput{Coins: 10000}}
	shop := newShop(rewards, &fakeGameStateStore{})

	if _, err := shop.Purchase(context.Background(), dto.PurchaseInput{ItemID: "jetpack"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	// superhero requires a 30 day streak.
	if _, err := shop.Purchase(context.Background(), dto.PurchaseInput{ItemID: "superhero"}); !errors.Is(err, apperrors.ErrItemLocked) {
		t.Fatalf("expected item locked, got %v", err)
	}
	if len(rewards.spent) != 0 {
		t.Fatalf("failed purchases must not spend")
	}
}

func TestHousePurchaseBecomesCurrentHouse(t *testing.T) {
	t.Parallel()
	rewards := &fakeRewards{snapshot: rewardsdto.LedgerOutput{Coins: 5000, HousesBuilt: 20}}
	store := &fakeGameStateStore{}
	shop := newShop(rewards, store)

	if _, err := shop.Purchase(context.Background(), dto.PurchaseInput{ItemID: "mansion"}); err != nil {
		t.Fatalf("purchase mansion: %v", err)
	}
	state, err := shop.GameState(context.Background())
	if err != nil {
		t.Fatalf("game state: %v", err)
	}
	if state.CurrentHouse != "mansion" {
		t.Fatalf("house purchase must switch the current house, got %s", state.CurrentHouse)
	}
}

func TestGameStateStartsFresh(t *testing.T) {
	t.Parallel()
	shop := newShop(&fakeRewards{}, &fakeGameStateStore{})
	state, err := shop.GameState(context.Background())
	if err != nil {
		t.Fatalf("game state: %v", err)
	}
	if state.CurrentHouse != "cottage" {
		t.Fatalf("fresh profile starts in the cottage, got %s", state.CurrentHouse)
	}
	if len(state.PurchasedItems) != 0 {
		t.Fatalf("fresh profile owns nothing, got %+v", state.PurchasedItems)
	}
}
