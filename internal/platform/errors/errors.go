package apperrors

import "errors"

var (
	ErrInvalidDuration   = errors.New("invalid session duration")
	ErrSessionActive     = errors.New("session already active")
	ErrNoActiveSession   = errors.New("no active session")
	ErrInsufficientFunds = errors.New("insufficient coins")
	ErrItemOwned         = errors.New("item already owned")
	ErrItemLocked        = errors.New("item not unlocked yet")
	ErrNotFound          = errors.New("not found")
)
