package usecase

import (
	"context"

	"focusforge/internal/modules/achievement/domain"
	"focusforge/internal/modules/achievement/dto"
	achievementin "focusforge/internal/modules/achievement/port/in"
	"focusforge/internal/modules/achievement/service"
)

type Interactor struct {
	svc *service.AchievementService
}

func NewInteractor(svc *service.AchievementService) achievementin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.DefinitionOutput, error) {
	defs, err := i.svc.Definitions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DefinitionOutput, 0, len(defs))
	for _, d := range defs {
		out = append(out, dto.DefinitionOutput{
			ID:            d.ID,
			Name:          d.Name,
			Description:   d.Description,
			Category:      d.Category,
			Rarity:        d.Rarity,
			CoinReward:    d.CoinReward,
			SpecialReward: d.SpecialReward,
			Metric:        string(d.Rule.Metric),
			Target:        d.Rule.Target,
		})
	}
	return out, nil
}

func (i *Interactor) Evaluate(ctx context.Context, input dto.EvaluateInput) (dto.EvaluateOutput, error) {
	states := make(map[string]domain.State, len(input.States))
	for id, st := range input.States {
		states[id] = domain.State{Unlocked: st.Unlocked, UnlockedAtMS: st.UnlockedAtMS, ProgressCurrent: st.ProgressCurrent}
	}
	metrics := domain.Metrics{
		CompletedSessions:     input.Metrics.CompletedSessions,
		HousesBuilt:           input.Metrics.HousesBuilt,
		StreakDays:            input.Metrics.StreakDays,
		TotalFocusSeconds:     input.Metrics.TotalFocusSeconds,
		Coins:                 input.Metrics.Coins,
		LongestSessionSeconds: input.Metrics.LongestSessionSeconds,
	}

	next, unlocks, err := i.svc.Evaluate(ctx, states, metrics)
	if err != nil {
		return dto.EvaluateOutput{}, err
	}

	out := dto.EvaluateOutput{States: make(map[string]dto.StateOutput, len(next))}
	for id, st := range next {
		out.States[id] = dto.StateOutput{Unlocked: st.Unlocked, UnlockedAtMS: st.UnlockedAtMS, ProgressCurrent: st.ProgressCurrent}
	}
	for _, u := range unlocks {
		out.Unlocked = append(out.Unlocked, dto.UnlockOutput{
			ID:            u.Definition.ID,
			Name:          u.Definition.Name,
			Rarity:        u.Definition.Rarity,
			CoinReward:    u.Definition.CoinReward,
			SpecialReward: u.Definition.SpecialReward,
			UnlockedAtMS:  u.UnlockedAtMS,
		})
	}
	return out, nil
}
