package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	achievementdto "focusforge/internal/modules/achievement/dto"
	achievementin "focusforge/internal/modules/achievement/port/in"
	"focusforge/internal/modules/rewards/domain"
	"focusforge/internal/modules/rewards/dto"
	rewardsout "focusforge/internal/modules/rewards/port/out"
	"focusforge/internal/platform/clock"
	apperrors "focusforge/internal/platform/errors"
	"focusforge/internal/platform/id"
)

// LedgerService is the sole writer of the progression ledger. Every mutation
// runs under one mutex as a unit: lazy calendar rollover, the requested
// operation, achievement re-evaluation and a full snapshot write. Persistence
// failures are logged and never surfaced; the ledger keeps going in memory.
type LedgerService struct {
	clock        clock.Clock
	idGen        id.Generator
	store        rewardsout.SnapshotStore
	history      rewardsout.HistoryProjector
	achievements achievementin.Usecase

	mu     sync.Mutex
	ledger domain.Ledger
	loaded bool

	listenerMu   sync.Mutex
	listeners    map[int]func()
	nextListener int
}

func NewLedgerService(clk clock.Clock, idGen id.Generator, store rewardsout.SnapshotStore, history rewardsout.HistoryProjector, achievements achievementin.Usecase) *LedgerService {
	return &LedgerService{
		clock:        clk,
		idGen:        idGen,
		store:        store,
		history:      history,
		achievements: achievements,
		listeners:    map[int]func(){},
	}
}

func (s *LedgerService) RecordCompleted(ctx context.Context, durationSeconds int) (dto.SessionRecordedOutput, error) {
	return s.recordOutcome(ctx, durationSeconds, true)
}

func (s *LedgerService) RecordFailed(ctx context.Context, elapsedSeconds int) (dto.SessionRecordedOutput, error) {
	return s.recordOutcome(ctx, elapsedSeconds, false)
}

func (s *LedgerService) recordOutcome(ctx context.Context, seconds int, completed bool) (dto.SessionRecordedOutput, error) {
	now := s.clock.Now()

	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	s.ledger.Rollover(now)

	out := dto.SessionRecordedOutput{Completed: completed, ElapsedSeconds: seconds}
	if completed {
		// Coins are awarded against the streak as it stood before today
		// is credited; the milestone check runs on the updated streak.
		out.CoinsAwarded = s.ledger.AwardCoins(seconds)
		out.MilestoneBonus = s.ledger.UpdateStreak(now)
	}
	s.ledger.RecordSession(seconds, completed, now)
	out.StreakDays = s.ledger.StreakDays

	out.Unlocked = s.evaluateLocked(ctx)
	s.persistLocked(ctx)
	s.appendHistoryLocked(ctx, domain.SessionRecord{
		ID:             s.idGen.New(),
		EndedAt:        now,
		ElapsedSeconds: seconds,
		Completed:      completed,
		CoinsAwarded:   out.CoinsAwarded,
	})
	s.mu.Unlock()

	s.emitChange()
	return out, nil
}

func (s *LedgerService) SpendCoins(ctx context.Context, amount int) (bool, error) {
	now := s.clock.Now()

	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	s.ledger.Rollover(now)
	ok := s.ledger.SpendCoins(amount)
	if ok {
		s.evaluateLocked(ctx)
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	s.emitChange()
	return true, nil
}

func (s *LedgerService) Snapshot(ctx context.Context) (dto.LedgerOutput, error) {
	s.mu.Lock()
	s.ensureLoadedLocked(ctx)
	if s.ledger.Rollover(s.clock.Now()) {
		s.persistLocked(ctx)
	}
	out := s.snapshotLocked()
	s.mu.Unlock()
	return out, nil
}

func (s *LedgerService) History(ctx context.Context, limit int) ([]dto.HistoryEntryOutput, error) {
	if s.history == nil {
		return nil, nil
	}
	records, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntryOutput, 0, len(records))
	for _, r := range records {
		out = append(out, dto.HistoryEntryOutput{
			ID:             r.ID,
			EndedAt:        r.EndedAt,
			ElapsedSeconds: r.ElapsedSeconds,
			Completed:      r.Completed,
			CoinsAwarded:   r.CoinsAwarded,
		})
	}
	return out, nil
}

// ResetAll wipes progression back to a fresh profile.
func (s *LedgerService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	s.ledger = domain.NewLedger()
	s.loaded = true
	if err := s.store.Clear(ctx); err != nil {
		logrus.WithError(err).Warn("clearing ledger snapshot failed")
	}
	if s.history != nil {
		if err := s.history.Reset(ctx); err != nil {
			logrus.WithError(err).Warn("clearing session history failed")
		}
	}
	s.mu.Unlock()

	s.emitChange()
	return nil
}

func (s *LedgerService) SubscribeChange(listener func()) func() {
	s.listenerMu.Lock()
	key := s.nextListener
	s.nextListener++
	s.listeners[key] = listener
	s.listenerMu.Unlock()
	return func() {
		s.listenerMu.Lock()
		delete(s.listeners, key)
		s.listenerMu.Unlock()
	}
}

// ensureLoadedLocked reads the snapshot once. A missing snapshot is a first
// run; an unreadable one is non-fatal and falls back to defaults.
func (s *LedgerService) ensureLoadedLocked(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	ledger, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logrus.WithError(err).Warn("loading ledger snapshot failed, starting fresh")
		}
		s.ledger = domain.NewLedger()
		return
	}
	if ledger.Achievements == nil {
		ledger.Achievements = map[string]domain.AchievementState{}
	}
	s.ledger = ledger
}

// evaluateLocked reruns the achievement rules against the current ledger and
// applies any unlocks, crediting their coin rewards atomically with the
// triggering mutation.
func (s *LedgerService) evaluateLocked(ctx context.Context) []dto.UnlockOutput {
	if s.achievements == nil {
		return nil
	}
	states := make(map[string]achievementdto.StateInput, len(s.ledger.Achievements))
	for achievementID, st := range s.ledger.Achievements {
		states[achievementID] = achievementdto.StateInput{Unlocked: st.Unlocked, UnlockedAtMS: st.UnlockedAtMS, ProgressCurrent: st.ProgressCurrent}
	}
	result, err := s.achievements.Evaluate(ctx, achievementdto.EvaluateInput{
		Metrics: achievementdto.MetricsInput{
			CompletedSessions:     s.ledger.CompletedSessions,
			HousesBuilt:           s.ledger.HousesBuilt,
			StreakDays:            s.ledger.StreakDays,
			TotalFocusSeconds:     s.ledger.TotalFocusSeconds,
			Coins:                 s.ledger.Coins,
			LongestSessionSeconds: s.ledger.LongestSessionSeconds,
		},
		States: states,
	})
	if err != nil {
		logrus.WithError(err).Error("achievement evaluation failed")
		return nil
	}

	for achievementID, st := range result.States {
		s.ledger.Achievements[achievementID] = domain.AchievementState{Unlocked: st.Unlocked, UnlockedAtMS: st.UnlockedAtMS, ProgressCurrent: st.ProgressCurrent}
	}
	var unlocked []dto.UnlockOutput
	for _, u := range result.Unlocked {
		s.ledger.Coins += u.CoinReward
		s.ledger.PushRecentUnlock(u.ID)
		logrus.WithFields(logrus.Fields{"achievement": u.ID, "reward": u.CoinReward}).Info("achievement unlocked")
		unlocked = append(unlocked, dto.UnlockOutput{ID: u.ID, Name: u.Name, Rarity: u.Rarity, CoinReward: u.CoinReward})
	}
	return unlocked
}

func (s *LedgerService) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.ledger); err != nil {
		logrus.WithError(err).Warn("persisting ledger snapshot failed")
	}
}

func (s *LedgerService) appendHistoryLocked(ctx context.Context, record domain.SessionRecord) {
	if s.history == nil {
		return
	}
	if err := s.history.Append(ctx, record); err != nil {
		logrus.WithError(err).Warn("appending session history failed")
	}
}

func (s *LedgerService) snapshotLocked() dto.LedgerOutput {
	out := dto.LedgerOutput{
		Coins:                 s.ledger.Coins,
		StreakDays:            s.ledger.StreakDays,
		LastFocusDate:         s.ledger.LastFocusDate,
		TotalFocusSeconds:     s.ledger.TotalFocusSeconds,
		CompletedSessions:     s.ledger.CompletedSessions,
		FailedSessions:        s.ledger.FailedSessions,
		HousesBuilt:           s.ledger.HousesBuilt,
		LongestSessionSeconds: s.ledger.LongestSessionSeconds,
		AverageSessionSeconds: s.ledger.AverageSessionSeconds,
		SuccessRatePercent:    s.ledger.SuccessRatePercent,
		Daily: dto.DailyStatsOutput{
			Date:     s.ledger.Daily.Date,
			Sessions: s.ledger.Daily.Sessions,
			Seconds:  s.ledger.Daily.Seconds,
			Coins:    s.ledger.Daily.Coins,
		},
		Weekly: dto.WeeklyStatsOutput{
			Year:     s.ledger.Weekly.Year,
			Week:     s.ledger.Weekly.Week,
			Sessions: s.ledger.Weekly.Sessions,
			Seconds:  s.ledger.Weekly.Seconds,
		},
		RecentUnlocks: append([]string(nil), s.ledger.RecentUnlocks...),
	}
	for achievementID, st := range s.ledger.Achievements {
		out.Achievements = append(out.Achievements, dto.AchievementStateOutput{
			ID:              achievementID,
			Unlocked:        st.Unlocked,
			UnlockedAtMS:    st.UnlockedAtMS,
			ProgressCurrent: st.ProgressCurrent,
		})
	}
	sort.Slice(out.Achievements, func(i, j int) bool { return out.Achievements[i].ID < out.Achievements[j].ID })
	return out
}

func (s *LedgerService) emitChange() {
	s.listenerMu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()
	for _, l := range listeners {
		l()
	}
}
