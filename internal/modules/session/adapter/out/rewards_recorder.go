package out

import (
	"context"

	rewardsdto "focusforge/internal/modules/rewards/dto"
	rewardsin "focusforge/internal/modules/rewards/port/in"
	"focusforge/internal/modules/session/dto"
	sessionout "focusforge/internal/modules/session/port/out"
)

// RewardsRecorder bridges session outcomes into the progression ledger.
type RewardsRecorder struct {
	rewards rewardsin.Usecase
}

func NewRewardsRecorder(rewards rewardsin.Usecase) sessionout.OutcomeRecorder {
	return &RewardsRecorder{rewards: rewards}
}

func (r *RewardsRecorder) RecordCompleted(ctx context.Context, durationSeconds int) (dto.OutcomeOutput, error) {
	recorded, err := r.rewards.RecordCompleted(ctx, durationSeconds)
	if err != nil {
		return dto.OutcomeOutput{}, err
	}
	return toOutcome(recorded), nil
}

func (r *RewardsRecorder) RecordFailed(ctx context.Context, elapsedSeconds int) (dto.OutcomeOutput, error) {
	recorded, err := r.rewards.RecordFailed(ctx, elapsedSeconds)
	if err != nil {
		return dto.OutcomeOutput{}, err
	}
	return toOutcome(recorded), nil
}

func toOutcome(recorded rewardsdto.SessionRecordedOutput) dto.OutcomeOutput {
	out := dto.OutcomeOutput{
		Completed:      recorded.Completed,
		ElapsedSeconds: recorded.ElapsedSeconds,
		CoinsAwarded:   recorded.CoinsAwarded + recorded.MilestoneBonus,
		StreakDays:     recorded.StreakDays,
	}
	for _, u := range recorded.Unlocked {
		out.NewAchievements = append(out.NewAchievements, u.Name)
	}
	return out
}
