// Package id generates the opaque string identifiers used for sessions,
// exercises, and sets.
package id

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	fallbackAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	fallbackLen      = 12
)

// New returns a unique opaque identifier. It is a random UUID in the normal
// case; if the random source is unavailable it falls back to a "gen-"
// prefixed pseudo-random alphanumeric string so callers always get a usable,
// unambiguous id.
func New() string {
	u, err := uuid.NewRandom()
	if err != nil {
		return fallback()
	}
	return u.String()
}

func fallback() string {
	b := make([]byte, fallbackLen)
	for i := range b {
		b[i] = fallbackAlphabet[rand.IntN(len(fallbackAlphabet))]
	}
	return "gen-" + string(b)
}
