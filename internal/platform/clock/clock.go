package clock

import "time"

// Clock abstracts time to keep services deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local wall-clock time. Streaks and daily counters
// follow the user's calendar, so no UTC normalization happens here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
