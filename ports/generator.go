package ports

import (
	"context"

	"goelect/domain/ballot"
	"goelect/domain/core"
)

// BallotGenerator creates synthetic ballot collections for experiments.
// Generators are external collaborators: the core rules only ever see the
// resulting ballots.
type BallotGenerator interface {
	// Name identifies the generation strategy ("random", "single_peaked").
	Name() string

	// Generate produces numVoters ballots, each a full permutation of the
	// candidate universe.
	Generate(ctx context.Context, numVoters int, candidates []core.Candidate) ([]ballot.Ballot, error)
}
