package services

import (
	"math/rand"
	"sync"
)

// lockedSource serializes draws so a single *rand.Rand can be shared across
// concurrent request handlers, the same way math/rand guards its top-level
// functions.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (source *lockedSource) Int63() int64 {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.src.Int63()
}

func (source *lockedSource) Uint64() uint64 {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.src.Uint64()
}

func (source *lockedSource) Seed(seed int64) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.src.Seed(seed)
}

// NewSharedRand returns a rand.Rand whose draws are safe for concurrent use.
func NewSharedRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}
