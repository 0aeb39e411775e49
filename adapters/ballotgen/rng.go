// Package ballotgen provides the ballot-generating collaborators: uniformly
// random electorates and single-peaked electorates over a linear spectrum.
package ballotgen

import (
	"hash/fnv"
	"math/rand"

	"goelect/ports"
)

// DeterministicRNG derives independent, reproducible streams from a base
// seed and an operation name.
type DeterministicRNG struct{}

var _ ports.RNG = (*DeterministicRNG)(nil)

// NewDeterministicRNG creates the default RNG provider.
func NewDeterministicRNG() *DeterministicRNG {
	return &DeterministicRNG{}
}

// SeededStream mixes the operation name into the seed so differently named
// operations sharing a base seed do not correlate.
func (g *DeterministicRNG) SeededStream(name string, seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}
