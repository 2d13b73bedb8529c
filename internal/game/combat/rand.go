package combat

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source used by RollRandom.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the process-wide math/rand/v2 source.
// Safe for concurrent use.
var DefaultRand Rand = globalRand{}

// lockedRand serializes access to a seeded generator.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// NewSeededRand returns a deterministic PCG-backed source.
// The returned source may be shared between goroutines; the sequence is
// reproducible only when calls are made in a fixed order.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}
