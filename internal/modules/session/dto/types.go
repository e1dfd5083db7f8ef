package dto

type StartInput struct {
	DurationSeconds int
}

type StartOutput struct {
	SessionID       string
	DurationSeconds int
}

// TimerView is the read model the presentation layer renders from.
type TimerView struct {
	SessionID        string
	Status           string
	DurationSeconds  int
	RemainingSeconds int
}

type InputEventInput struct {
	Target string
}

// OutcomeOutput describes the ledger effect of a finished session, returned
// so the UI can show what a completion or interruption earned.
type OutcomeOutput struct {
	Completed       bool
	ElapsedSeconds  int
	CoinsAwarded    int
	StreakDays      int
	NewAchievements []string
}

const (
	EventStarted     = "started"
	EventTicked      = "ticked"
	EventPaused      = "paused"
	EventResumed     = "resumed"
	EventCompleted   = "completed"
	EventInterrupted = "interrupted"
	EventStopped     = "stopped"
)

// Event is pushed to subscribers on every observable timer change.
type Event struct {
	Kind    string
	Timer   TimerView
	Outcome *OutcomeOutput
}
