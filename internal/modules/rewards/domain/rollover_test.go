package domain_test

import (
	"testing"
	"time"

	"focusforge/internal/modules/rewards/domain"
)

func TestRolloverFreshLedgerIsUntouched(t *testing.T) {
	t.Parallel()
	ledger := domain.NewLedger()
	if ledger.Rollover(day(1)) {
		t.Fatalf("rollover on a fresh ledger must change nothing")
	}
}

func TestRolloverResetsDailyOnNewDate(t *testing.T) {
	t.Parallel()
	ledger := domain.NewLedger()
	ledger.RecordSession(1500, true, day(1))

	if ledger.Rollover(day(1)) {
		t.Fatalf("same-day rollover must be a no-op")
	}
	if !ledger.Rollover(day(2)) {
		t.Fatalf("next-day rollover must reset daily counters")
	}
	if ledger.Daily.Sessions != 0 || ledger.Daily.Seconds != 0 || ledger.Daily.Coins != 0 {
		t.Fatalf("daily counters must be zero after rollover: %+v", ledger.Daily)
	}
	if ledger.Daily.Date != domain.DateKey(day(2)) {
		t.Fatalf("rolled daily stats must carry the new date, got %s", ledger.Daily.Date)
	}
	// Lifetime aggregates survive the boundary.
	if ledger.TotalFocusSeconds != 1500 || ledger.CompletedSessions != 1 {
		t.Fatalf("rollover must not touch lifetime aggregates")
	}
}

func TestRolloverResetsWeeklyOnNewISOWeek(t *testing.T) {
	t.Parallel()
	ledger := domain.NewLedger()
	// Sunday August 2nd 2026 and Monday August 3rd 2026 are in different ISO weeks.
	sunday := time.Date(2026, 8, 2, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 3, 1, 0, 0, 0, time.UTC)
	ledger.RecordSession(600, true, sunday)

	if !ledger.Rollover(monday) {
		t.Fatalf("crossing an ISO week boundary must reset weekly counters")
	}
	if ledger.Weekly.Sessions != 0 || ledger.Weekly.Seconds != 0 {
		t.Fatalf("weekly counters must be zero after rollover: %+v", ledger.Weekly)
	}
	year, week := monday.ISOWeek()
	if ledger.Weekly.Year != year || ledger.Weekly.Week != week {
		t.Fatalf("rolled weekly stats must carry the new week, got %+v", ledger.Weekly)
	}
	// Daily also rolled with the date change.
	if ledger.Daily.Sessions != 0 {
		t.Fatalf("daily must roll together with the date: %+v", ledger.Daily)
	}
}

func TestRolloverWithinSameWeekKeepsWeekly(t *testing.T) {
	t.Parallel()
	ledger := domain.NewLedger()
	monday := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 8, 4, 9, 0, 0, 0, time.UTC)
	ledger.RecordSession(600, true, monday)

	if !ledger.Rollover(tuesday) {
		t.Fatalf("daily boundary inside the week must still report a change")
	}
	if ledger.Weekly.Sessions != 1 || ledger.Weekly.Seconds != 600 {
		t.Fatalf("weekly counters must survive a mid-week day change: %+v", ledger.Weekly)
	}
}
