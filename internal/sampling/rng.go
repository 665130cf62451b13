// Package sampling provides the seeded random source and the weighted
// selection primitives shared by every ticket strategy.
package sampling

import (
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed. A zero seed yields a
// time-seeded source; any other value makes the stream reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
