package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator mints opaque identifiers for persisted records. Implementations
// must be safe for concurrent use.
type Generator interface {
	New() string
}

// RandomHex issues 128-bit random ids rendered as 32 lowercase hex characters.
type RandomHex struct{}

func (RandomHex) New() string {
	var raw [16]byte
	_, _ = rand.Read(raw[:])
	return hex.EncodeToString(raw[:])
}
