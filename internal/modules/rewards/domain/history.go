package domain

import "time"

// SessionRecord is one row of the per-session history projection. The ledger
// aggregates are derived from these; the projection itself is read-only
// reporting data.
type SessionRecord struct {
	ID             string
	EndedAt        time.Time
	ElapsedSeconds int
	Completed      bool
	CoinsAwarded   int
}
