package core

import (
	"math/rand"
	"time"
)

// NewRNG creates the deterministic RNG a run owns. Seed 0 falls back to the
// current time; any other seed reproduces a run bit-for-bit.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
