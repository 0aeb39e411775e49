package ballotgen

import (
	"context"
	"math/rand"

	"goelect/domain/ballot"
	"goelect/domain/core"
	"goelect/ports"
)

// RandomGenerator produces ballots that are independent uniformly random
// permutations of the candidate set.
type RandomGenerator struct {
	src *rand.Rand
}

var _ ports.BallotGenerator = (*RandomGenerator)(nil)

// NewRandom creates a random-electorate generator drawing from an explicit
// source.
func NewRandom(src *rand.Rand) *RandomGenerator {
	return &RandomGenerator{src: src}
}

// Name identifies the generation strategy
func (g *RandomGenerator) Name() string { return "random" }

// Generate produces numVoters independent random rankings.
func (g *RandomGenerator) Generate(ctx context.Context, numVoters int, candidates []core.Candidate) ([]ballot.Ballot, error) {
	ballots := make([]ballot.Ballot, 0, numVoters)
	for v := 0; v < numVoters; v++ {
		ranking := make([]core.Candidate, len(candidates))
		for i, j := range g.src.Perm(len(candidates)) {
			ranking[i] = candidates[j]
		}
		b, err := ballot.New(ranking)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, b)
	}
	return ballots, nil
}
