package domain

type Decision string

const (
	DecisionIgnore    Decision = "ignore"
	DecisionInterrupt Decision = "interrupt"
)

// InputEvent identifies a raw user input by its target. The front end decides
// what a target string means (a DOM selector, a key name, a widget id); the
// classifier only compares state and defers to the safe predicate.
type InputEvent struct {
	Target string
}

// SafePredicate reports whether an event targets an interactive zone that
// must never break focus (timer controls, navigation, form inputs). It is
// supplied by the presentation layer, never hard-coded here.
type SafePredicate func(InputEvent) bool

// Classify decides whether a raw input event breaks focus. It is a pure
// function of (event target, timer status, safe predicate): interruptions are
// only ever raised against a Running timer, and safe targets are ignored.
func Classify(ev InputEvent, status Status, safe SafePredicate) Decision {
	if status != StatusRunning {
		return DecisionIgnore
	}
	if safe != nil && safe(ev) {
		return DecisionIgnore
	}
	return DecisionInterrupt
}
