package domain

import (
	"math"
	"time"
)

const (
	SchemaVersion = 1

	// StartingCoins seeds a fresh profile so the shop is not completely
	// out of reach on day one.
	StartingCoins = 100

	baseCoinsPerMinute = 1
	streakBonusPerDay  = 5
	streakBonusCap     = 50
)

// streakMilestones award a one-time bonus of days*10 coins when the streak
// lands exactly on the milestone.
var streakMilestones = []int{3, 7, 14, 20, 50}

type AchievementState struct {
	Unlocked        bool  `json:"unlocked"`
	UnlockedAtMS    int64 `json:"unlocked_at_ms,omitempty"`
	ProgressCurrent int   `json:"progress_current"`
}

type DailyStats struct {
	Date     string `json:"date"` // YYYY-MM-DD, empty until first use
	Sessions int    `json:"sessions"`
	Seconds  int    `json:"seconds"`
	Coins    int    `json:"coins"`
}

type WeeklyStats struct {
	Year     int `json:"year"`
	Week     int `json:"week"` // ISO week
	Sessions int `json:"sessions"`
	Seconds  int `json:"seconds"`
}

// Ledger is the durable progression aggregate: coins, streak, session
// statistics and achievement unlock state. It is a single-writer value; the
// service layer serializes all mutations and persists after each one.
type Ledger struct {
	Coins                 int                         `json:"coins"`
	StreakDays            int                         `json:"streak_days"`
	LastFocusDate         string                      `json:"last_focus_date,omitempty"` // YYYY-MM-DD
	TotalFocusSeconds     int                         `json:"total_focus_seconds"`
	CompletedSessions     int                         `json:"completed_sessions"`
	FailedSessions        int                         `json:"failed_sessions"`
	HousesBuilt           int                         `json:"houses_built"`
	LongestSessionSeconds int                         `json:"longest_session_seconds"`
	AverageSessionSeconds int                         `json:"average_session_seconds"`
	SuccessRatePercent    int                         `json:"success_rate_percent"`
	Daily                 DailyStats                  `json:"daily_stats"`
	Weekly                WeeklyStats                 `json:"weekly_stats"`
	Achievements          map[string]AchievementState `json:"achievements"`
	RecentUnlocks         []string                    `json:"recent_unlocks,omitempty"`
}

func NewLedger() Ledger {
	return Ledger{
		Coins:              StartingCoins,
		SuccessRatePercent: 100,
		Achievements:       map[string]AchievementState{},
	}
}

// DateKey renders the calendar date the streak and daily counters key on.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// AwardCoins credits a completed session: one coin per full minute plus a
// streak bonus of 5 per day, capped at 50. The streak used is the value
// before UpdateStreak credits today, matching the award-then-streak order of
// the session completion flow.
func (l *Ledger) AwardCoins(sessionDurationSeconds int) int {
	base := sessionDurationSeconds / 60 * baseCoinsPerMinute
	bonus := l.StreakDays * streakBonusPerDay
	if bonus > streakBonusCap {
		bonus = streakBonusCap
	}
	total := base + bonus
	l.Coins += total
	l.Daily.Coins += total
	return total
}

// SpendCoins deducts amount when affordable. There are no partial spends;
// an unaffordable purchase leaves the balance untouched.
func (l *Ledger) SpendCoins(amount int) bool {
	if amount < 0 || l.Coins < amount {
		return false
	}
	l.Coins -= amount
	return true
}

// UpdateStreak credits today's focus toward the daily streak: consecutive
// days increment, a repeat on the same day is a no-op, anything else resets
// to 1. Returns the one-time milestone bonus credited, 0 if none.
func (l *Ledger) UpdateStreak(now time.Time) int {
	today := DateKey(now)
	yesterday := DateKey(now.AddDate(0, 0, -1))

	switch l.LastFocusDate {
	case today:
		return 0
	case yesterday:
		l.StreakDays++
	default:
		l.StreakDays = 1
	}
	l.LastFocusDate = today

	for _, m := range streakMilestones {
		if l.StreakDays == m {
			bonus := m * 10
			l.Coins += bonus
			return bonus
		}
	}
	return 0
}

// RecordSession lands one finished attempt. Completed sessions feed the
// focus-time aggregates and build a house; failed ones only move the session
// counters. Elapsed time of zero is recorded like any other failure.
func (l *Ledger) RecordSession(elapsedSeconds int, completed bool, now time.Time) {
	if completed {
		l.CompletedSessions++
		l.HousesBuilt++
		l.TotalFocusSeconds += elapsedSeconds
		if elapsedSeconds > l.LongestSessionSeconds {
			l.LongestSessionSeconds = elapsedSeconds
		}
	} else {
		l.FailedSessions++
	}

	if l.CompletedSessions > 0 {
		l.AverageSessionSeconds = l.TotalFocusSeconds / l.CompletedSessions
	} else {
		l.AverageSessionSeconds = 0
	}
	total := l.CompletedSessions + l.FailedSessions
	if total > 0 {
		l.SuccessRatePercent = int(math.Round(float64(l.CompletedSessions) / float64(total) * 100))
	} else {
		l.SuccessRatePercent = 100
	}

	l.Daily.Date = DateKey(now)
	l.Daily.Sessions++
	year, week := now.ISOWeek()
	l.Weekly.Year, l.Weekly.Week = year, week
	l.Weekly.Sessions++
	if completed {
		l.Daily.Seconds += elapsedSeconds
		l.Weekly.Seconds += elapsedSeconds
	}
}

// PushRecentUnlock records an unlock id, newest first, capped at ten.
func (l *Ledger) PushRecentUnlock(id string) {
	l.RecentUnlocks = append([]string{id}, l.RecentUnlocks...)
	if len(l.RecentUnlocks) > 10 {
		l.RecentUnlocks = l.RecentUnlocks[:10]
	}
}
