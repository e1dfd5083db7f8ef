package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"focusforge/internal/modules/shop/domain"
	shopout "focusforge/internal/modules/shop/port/out"
	apperrors "focusforge/internal/platform/errors"
)

// ShopService owns the cosmetic game state record around the static catalog.
type ShopService struct {
	store shopout.GameStateStore
}

func NewShopService(store shopout.GameStateStore) *ShopService {
	return &ShopService{store: store}
}

func (s *ShopService) Catalog() []domain.Item {
	return domain.Catalog()
}

func (s *ShopService) GameState(ctx context.Context) domain.GameState {
	state, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logrus.WithError(err).Warn("loading game state failed, starting fresh")
		}
		return domain.NewGameState()
	}
	return state
}

// MarkPurchased records ownership; a write failure keeps the purchase (the
// coins are already spent) and is only logged.
func (s *ShopService) MarkPurchased(ctx context.Context, item domain.Item) domain.GameState {
	state := s.GameState(ctx)
	state.AddPurchase(item.Category, item.ID)
	if err := s.store.Save(ctx, state); err != nil {
		logrus.WithError(err).Warn("persisting game state failed")
	}
	return state
}
