package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	achievementoutadapter "focusforge/internal/modules/achievement/adapter/out"
	achievementservice "focusforge/internal/modules/achievement/service"
	achievementusecase "focusforge/internal/modules/achievement/usecase"
	rewardsoutadapter "focusforge/internal/modules/rewards/adapter/out"
	rewardsservice "focusforge/internal/modules/rewards/service"
	rewardsusecase "focusforge/internal/modules/rewards/usecase"
	sessionoutadapter "focusforge/internal/modules/session/adapter/out"
	sessiondto "focusforge/internal/modules/session/dto"
	sessionout "focusforge/internal/modules/session/port/out"
	sessionservice "focusforge/internal/modules/session/service"
	"focusforge/internal/modules/session/usecase"
	shopoutadapter "focusforge/internal/modules/shop/adapter/out"
	shopdto "focusforge/internal/modules/shop/dto"
	shopservice "focusforge/internal/modules/shop/service"
	shopusecase "focusforge/internal/modules/shop/usecase"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "id-" + string(rune('a'+s.n))
}

type fakeTicker struct{ ch chan time.Time }

func (f *fakeTicker) C() <-chan time.Time              { return f.ch }
func (f *fakeTicker) Stop()                            {}
func (f *fakeTicker) NewTicker() sessionout.TickSource { return f }

func waitFor(t *testing.T, events <-chan sessiondto.Event, kind string) sessiondto.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", kind)
		}
	}
}

// Full wiring minus the TUI: session outcomes land in the ledger, achievements
// fire, the shop spends the same coins, and everything persists under one data
// directory.
func TestSessionOutcomesFlowIntoLedgerAchievementsAndShop(t *testing.T) {
	t.Parallel()
	dataPath := t.TempDir()
	clk := &fakeClock{now: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)}

	achievementUC := achievementusecase.NewInteractor(
		achievementservice.NewAchievementService(clk, achievementoutadapter.NewEmbeddedCatalogStore()),
	)
	history, err := rewardsoutadapter.NewSQLiteHistoryProjector(filepath.Join(dataPath, "focusforge.db"))
	if err != nil {
		t.Fatalf("new history projector: %v", err)
	}
	rewardsUC := rewardsusecase.NewInteractor(rewardsservice.NewLedgerService(
		clk, &seqID{}, rewardsoutadapter.NewFileSnapshotStore(dataPath), history, achievementUC,
	))
	ticker := &fakeTicker{ch: make(chan time.Time, 16)}
	sessionUC := usecase.NewInteractor(sessionservice.NewSessionService(
		clk, &seqID{}, ticker, sessionoutadapter.NewRewardsRecorder(rewardsUC),
	))
	shopUC := shopusecase.NewInteractor(shopservice.NewShopService(shopoutadapter.NewFileGameStateStore(dataPath)), rewardsUC)

	events := make(chan sessiondto.Event, 64)
	sessionUC.Subscribe(func(ev sessiondto.Event) { events <- ev })
	ctx := context.Background()

	// Complete a short session.
	if _, err := sessionUC.Start(ctx, sessiondto.StartInput{DurationSeconds: 3}); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		ticker.ch <- time.Now()
	}
	ev := waitFor(t, events, sessiondto.EventCompleted)
	if ev.Outcome == nil || !ev.Outcome.Completed {
		t.Fatalf("completed event must carry an outcome, got %+v", ev.Outcome)
	}
	// 3 seconds pay no per-minute coins but unlock the starter achievements.
	if ev.Outcome.CoinsAwarded != 0 || ev.Outcome.StreakDays != 1 {
		t.Fatalf("unexpected outcome %+v", ev.Outcome)
	}
	if len(ev.Outcome.NewAchievements) != 2 {
		t.Fatalf("expected First Steps and Homeowner, got %v", ev.Outcome.NewAchievements)
	}

	// Interrupt a second session.
	if err := sessionUC.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := sessionUC.Start(ctx, sessiondto.StartInput{DurationSeconds: 60}); err != nil {
		t.Fatalf("second start: %v", err)
	}
	interrupted, err := sessionUC.ReportInput(ctx, sessiondto.InputEventInput{Target: "key:g"})
	if err != nil || !interrupted {
		t.Fatalf("expected interruption, got %v %v", interrupted, err)
	}
	waitFor(t, events, sessiondto.EventInterrupted)

	snapshot, err := rewardsUC.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	// 100 start + 50 First Steps + 75 Homeowner.
	if snapshot.Coins != 225 {
		t.Fatalf("expected 225 coins, got %d", snapshot.Coins)
	}
	if snapshot.CompletedSessions != 1 || snapshot.FailedSessions != 1 || snapshot.SuccessRatePercent != 50 {
		t.Fatalf("unexpected session stats %+v", snapshot)
	}
	if snapshot.HousesBuilt != 1 {
		t.Fatalf("only completions build houses, got %d", snapshot.HousesBuilt)
	}

	// The same coins buy from the shop.
	purchase, err := shopUC.Purchase(ctx, shopdto.PurchaseInput{ItemID: "casual"})
	if err != nil || !purchase.Purchased {
		t.Fatalf("purchase: %+v %v", purchase, err)
	}
	snapshot, _ = rewardsUC.Snapshot(ctx)
	if snapshot.Coins != 175 {
		t.Fatalf("expected 175 coins after purchase, got %d", snapshot.Coins)
	}

	// Both attempts are in the history projection, newest first.
	entries, err := rewardsUC.History(ctx, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two history entries, got %d", len(entries))
	}

	// And everything reached disk.
	for _, name := range []string{"rewards.json", "gamestate.json"} {
		if _, err := os.Stat(filepath.Join(dataPath, name)); err != nil {
			t.Fatalf("expected %s to be persisted: %v", name, err)
		}
	}
}
