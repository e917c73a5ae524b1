package common

import (
	"math/rand"
	"time"
)

// NewRand returns the random source shared by a game's board. A zero seed
// seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
