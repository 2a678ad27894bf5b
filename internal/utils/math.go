package utils

import (
	"math/rand"
	"sync"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// NewSeededFloat returns a deterministic [0.0, 1.0) source safe for concurrent use.
// Intended for reproducible tests and benchmarks.
func NewSeededFloat(seed int64) func() float64 {
	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible sequence required
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}

// NewScriptedFloat replays values in order and then repeats the last one.
// An empty script yields 0.
func NewScriptedFloat(values ...float64) func() float64 {
	var mu sync.Mutex
	i := 0
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		if len(values) == 0 {
			return 0
		}
		v := values[min(i, len(values)-1)]
		i++
		return v
	}
}
