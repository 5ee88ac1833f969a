package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a Generator for the seed. A seed of zero means a crypto-random
// source, any other value gives a reproducible sequence.
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
