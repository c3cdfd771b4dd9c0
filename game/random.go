package game

import (
	"math/rand"
	"sync"
)

// SignSource yields -1 or +1
type SignSource interface {
	Sign() float64
}

// SignFunc adapts a function to SignSource
type SignFunc func() float64

func (f SignFunc) Sign() float64 {
	return f()
}

type randSign struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSignSource returns a uniform coin flip seeded with seed
func NewSignSource(seed int64) SignSource {
	return &randSign{rng: rand.New(rand.NewSource(seed))}
}

func (r *randSign) Sign() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
