package dto

type DefinitionOutput struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Rarity        string
	CoinReward    int
	SpecialReward string
	Metric        string
	Target        int
}

type MetricsInput struct {
	CompletedSessions     int
	HousesBuilt           int
	StreakDays            int
	TotalFocusSeconds     int
	Coins                 int
	LongestSessionSeconds int
}

type StateInput struct {
	Unlocked        bool
	UnlockedAtMS    int64
	ProgressCurrent int
}

type EvaluateInput struct {
	Metrics MetricsInput
	States  map[string]StateInput
}

type StateOutput struct {
	Unlocked        bool
	UnlockedAtMS    int64
	ProgressCurrent int
}

type UnlockOutput struct {
	ID            string
	Name          string
	Rarity        string
	CoinReward    int
	SpecialReward string
	UnlockedAtMS  int64
}

type EvaluateOutput struct {
	States   map[string]StateOutput
	Unlocked []UnlockOutput
}
