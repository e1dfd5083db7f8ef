package service

import (
	"context"
	"sync"

	"focusforge/internal/modules/achievement/domain"
	achievementout "focusforge/internal/modules/achievement/port/out"
	"focusforge/internal/platform/clock"
)

type AchievementService struct {
	clock   clock.Clock
	catalog achievementout.CatalogStore

	once sync.Once
	defs []domain.Definition
	err  error
}

func NewAchievementService(clk clock.Clock, catalog achievementout.CatalogStore) *AchievementService {
	return &AchievementService{clock: clk, catalog: catalog}
}

// Definitions returns the catalog in stable order, loading it at most once.
func (s *AchievementService) Definitions(ctx context.Context) ([]domain.Definition, error) {
	s.once.Do(func() {
		s.defs, s.err = s.catalog.Definitions(ctx)
	})
	return s.defs, s.err
}

func (s *AchievementService) Evaluate(ctx context.Context, states map[string]domain.State, metrics domain.Metrics) (map[string]domain.State, []domain.Unlock, error) {
	defs, err := s.Definitions(ctx)
	if err != nil {
		return nil, nil, err
	}
	nowMS := s.clock.Now().UnixMilli()
	next, unlocks := domain.Evaluate(defs, states, metrics, nowMS)
	return next, unlocks, nil
}
