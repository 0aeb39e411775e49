package ports

import (
	"math/rand"
)

// RNG provides seeded random number generation for deterministic experiment
// runs. Generators must draw from an explicit stream, never from
// process-global randomness, so scenarios stay reproducible.
type RNG interface {
	// SeededStream creates a deterministic generator for a named operation.
	// The same (name, seed) pair always yields an identical stream.
	SeededStream(name string, seed int64) *rand.Rand
}
