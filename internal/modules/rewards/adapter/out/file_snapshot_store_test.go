package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	out "focusforge/internal/modules/rewards/adapter/out"
	"focusforge/internal/modules/rewards/domain"
	apperrors "focusforge/internal/platform/errors"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	store := out.NewFileSnapshotStore(t.TempDir())
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("first run must report not found, got %v", err)
	}

	ledger := domain.NewLedger()
	ledger.Coins = 275
	ledger.StreakDays = 7
	ledger.LastFocusDate = "2026-08-10"
	ledger.Achievements["first_focus"] = domain.AchievementState{Unlocked: true, UnlockedAtMS: 1754813000000, ProgressCurrent: 1}
	ledger.RecentUnlocks = []string{"first_focus"}
	if err := store.Save(ctx, ledger); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Coins != 275 || loaded.StreakDays != 7 || loaded.LastFocusDate != "2026-08-10" {
		t.Fatalf("unexpected ledger %+v", loaded)
	}
	if !loaded.Achievements["first_focus"].Unlocked || loaded.Achievements["first_focus"].UnlockedAtMS != 1754813000000 {
		t.Fatalf("achievement state lost: %+v", loaded.Achievements)
	}
	if len(loaded.RecentUnlocks) != 1 {
		t.Fatalf("recent unlocks lost: %v", loaded.RecentUnlocks)
	}
}

func TestSnapshotClearAndCorruptPayload(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := out.NewFileSnapshotStore(dir)
	ctx := context.Background()

	// Clearing a missing snapshot is fine.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear on empty dir: %v", err)
	}

	if err := store.Save(ctx, domain.NewLedger()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("cleared snapshot must report not found, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "rewards.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if _, err := store.Load(ctx); err == nil || errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("corrupt snapshot must fail with a decode error, got %v", err)
	}
}
