// Package election defines the validated input bundle for every rule and
// analyzer: an authoritative candidate universe plus a collection of ballots
// that each rank exactly that universe.
package election

import (
	"fmt"

	"goelect/domain/ballot"
	"goelect/domain/core"
)

// Election is an immutable (candidates, ballots) pair. Every ballot is a
// full permutation of the candidate universe; rules receive read-only
// access.
type Election struct {
	candidates  []core.Candidate
	index       map[core.Candidate]int
	ballots     []ballot.Ballot
	fingerprint core.ElectionFingerprint
}

// New validates and assembles an election. The candidate list is the
// authoritative universe; every ballot must rank exactly this set.
func New(candidates []core.Candidate, ballots []ballot.Ballot) (*Election, error) {
	if len(candidates) == 0 {
		return nil, core.ErrEmptyCandidates
	}
	if len(ballots) == 0 {
		return nil, core.ErrEmptyElection
	}

	index := make(map[core.Candidate]int, len(candidates))
	for i, c := range candidates {
		if _, seen := index[c]; seen {
			return nil, fmt.Errorf("%w: %q", core.ErrDuplicateCandidate, c)
		}
		index[c] = i
	}

	for i, b := range ballots {
		if b.Len() != len(candidates) {
			return nil, core.NewCandidateMismatchError(
				fmt.Sprintf("ballot %d ranks %d of %d candidates", i, b.Len(), len(candidates)))
		}
		for _, c := range b.Ranking() {
			if _, ok := index[c]; !ok {
				return nil, core.NewCandidateMismatchError(
					fmt.Sprintf("ballot %d ranks unknown candidate %q", i, c))
			}
		}
	}

	owned := make([]core.Candidate, len(candidates))
	copy(owned, candidates)
	ownedBallots := make([]ballot.Ballot, len(ballots))
	copy(ownedBallots, ballots)

	keys := make([]string, len(ownedBallots))
	for i, b := range ownedBallots {
		keys[i] = b.Key()
	}

	return &Election{
		candidates:  owned,
		index:       index,
		ballots:     ownedBallots,
		fingerprint: core.ComputeElectionFingerprint(owned, keys),
	}, nil
}

// Candidates returns a copy of the candidate universe in its canonical order.
func (e *Election) Candidates() []core.Candidate {
	out := make([]core.Candidate, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Ballots returns a copy of the ballot collection.
func (e *Election) Ballots() []ballot.Ballot {
	out := make([]ballot.Ballot, len(e.ballots))
	copy(out, e.ballots)
	return out
}

// NumCandidates returns the size of the candidate universe.
func (e *Election) NumCandidates() int { return len(e.candidates) }

// NumBallots returns the number of ballots cast.
func (e *Election) NumBallots() int { return len(e.ballots) }

// IndexOf returns the dense index of a candidate in the universe.
func (e *Election) IndexOf(c core.Candidate) (int, bool) {
	i, ok := e.index[c]
	return i, ok
}

// CandidateAt returns the candidate at dense index i.
func (e *Election) CandidateAt(i int) core.Candidate { return e.candidates[i] }

// Fingerprint identifies this exact (candidates, ballots) input.
func (e *Election) Fingerprint() core.ElectionFingerprint { return e.fingerprint }

// VoterTypes aggregates the ballots into voter types in first-seen order.
func (e *Election) VoterTypes() []ballot.VoterType {
	return ballot.AggregateTypes(e.ballots)
}

// WithBallots builds a new election over the same candidate universe with a
// substituted ballot collection. The receiver is never mutated; the new
// collection is validated from scratch.
func (e *Election) WithBallots(ballots []ballot.Ballot) (*Election, error) {
	return New(e.candidates, ballots)
}
