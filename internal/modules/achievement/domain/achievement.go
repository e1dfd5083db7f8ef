package domain

import (
	"fmt"
	"strings"
)

type Metric string

const (
	MetricSessions Metric = "sessions" // completed sessions
	MetricHouses   Metric = "houses"   // houses built (one per completed session)
	MetricStreak   Metric = "streak"   // current streak days
	MetricTime     Metric = "time"     // total focus seconds
	MetricCoins    Metric = "coins"    // current coin balance
	MetricLongest  Metric = "longest"  // longest completed session, seconds
)

func (m Metric) Validate() error {
	switch m {
	case MetricSessions, MetricHouses, MetricStreak, MetricTime, MetricCoins, MetricLongest:
		return nil
	default:
		return fmt.Errorf("unsupported metric %q", string(m))
	}
}

type Rule struct {
	Metric Metric
	Target int
}

// Definition is a static achievement: immutable once loaded, only the
// per-player state in the ledger ever changes.
type Definition struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Rarity        string
	CoinReward    int
	SpecialReward string
	Rule          Rule
}

func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("achievement id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("achievement %s: name is required", d.ID)
	}
	if d.Rule.Target <= 0 {
		return fmt.Errorf("achievement %s: target must be positive", d.ID)
	}
	if d.CoinReward < 0 {
		return fmt.Errorf("achievement %s: coin reward must not be negative", d.ID)
	}
	return d.Rule.Metric.Validate()
}

// Metrics is the ledger snapshot the rules read from.
type Metrics struct {
	CompletedSessions     int
	HousesBuilt           int
	StreakDays            int
	TotalFocusSeconds     int
	Coins                 int
	LongestSessionSeconds int
}

func (m Metrics) Value(metric Metric) int {
	switch metric {
	case MetricSessions:
		return m.CompletedSessions
	case MetricHouses:
		return m.HousesBuilt
	case MetricStreak:
		return m.StreakDays
	case MetricTime:
		return m.TotalFocusSeconds
	case MetricCoins:
		return m.Coins
	case MetricLongest:
		return m.LongestSessionSeconds
	default:
		return 0
	}
}

// State is the mutable per-achievement progress entry.
type State struct {
	Unlocked        bool
	UnlockedAtMS    int64
	ProgressCurrent int
}

type Unlock struct {
	Definition   Definition
	UnlockedAtMS int64
}

// Evaluate walks the catalog in definition order (keeping coin totals
// reproducible for a fixed ledger state), refreshes progress and unlocks
// every newly satisfied rule. Unlocks are single-fire: an already-unlocked
// state is returned untouched no matter how often evaluation reruns.
func Evaluate(defs []Definition, states map[string]State, metrics Metrics, nowMS int64) (map[string]State, []Unlock) {
	next := make(map[string]State, len(defs))
	var unlocks []Unlock
	for _, def := range defs {
		state := states[def.ID]
		if state.Unlocked {
			next[def.ID] = state
			continue
		}
		state.ProgressCurrent = metrics.Value(def.Rule.Metric)
		if state.ProgressCurrent >= def.Rule.Target {
			state.Unlocked = true
			state.UnlockedAtMS = nowMS
			unlocks = append(unlocks, Unlock{Definition: def, UnlockedAtMS: nowMS})
		}
		next[def.ID] = state
	}
	return next, unlocks
}
