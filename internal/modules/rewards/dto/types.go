package dto

import "time"

type DailyStatsOutput struct {
	Date     string
	Sessions int
	Seconds  int
	Coins    int
}

type WeeklyStatsOutput struct {
	Year     int
	Week     int
	Sessions int
	Seconds  int
}

type AchievementStateOutput struct {
	ID              string
	Unlocked        bool
	UnlockedAtMS    int64
	ProgressCurrent int
}

// LedgerOutput is the read-only snapshot handed to profile, shop and reward
// surfaces.
type LedgerOutput struct {
	Coins                 int
	StreakDays            int
	LastFocusDate         string
	TotalFocusSeconds     int
	CompletedSessions     int
	FailedSessions        int
	HousesBuilt           int
	LongestSessionSeconds int
	AverageSessionSeconds int
	SuccessRatePercent    int
	Daily                 DailyStatsOutput
	Weekly                WeeklyStatsOutput
	Achievements          []AchievementStateOutput
	RecentUnlocks         []string
}

type UnlockOutput struct {
	ID         string
	Name       string
	Rarity     string
	CoinReward int
}

// SessionRecordedOutput reports what one finished session changed.
type SessionRecordedOutput struct {
	Completed      bool
	ElapsedSeconds int
	CoinsAwarded   int
	MilestoneBonus int
	StreakDays     int
	Unlocked       []UnlockOutput
}

type SpendInput struct {
	Amount int
}

type HistoryEntryOutput struct {
	ID             string
	EndedAt        time.Time
	ElapsedSeconds int
	Completed      bool
	CoinsAwarded   int
}
