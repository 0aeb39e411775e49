package ballot

import (
	"fmt"
	"strings"

	"goelect/domain/core"
)

// keySep joins candidate names into a canonical ballot key. A non-printable
// separator keeps keys collision-free even if a candidate name contains
// punctuation.
const keySep = "\x1f"

// Ballot is one voter's complete strict ranking of candidates, earlier
// positions meaning stronger preference. A Ballot is immutable after
// construction; two ballots with the same ranking are the same voter type.
type Ballot struct {
	ranking  []core.Candidate
	position map[core.Candidate]int
	key      string
}

// New constructs a ballot from a ranking (first = most preferred).
// Fails with core.ErrInvalidBallot if the ranking is empty or repeats a
// candidate.
func New(ranking []core.Candidate) (Ballot, error) {
	if len(ranking) == 0 {
		return Ballot{}, core.NewInvalidBallotError("ranking cannot be empty")
	}

	position := make(map[core.Candidate]int, len(ranking))
	owned := make([]core.Candidate, len(ranking))
	for i, c := range ranking {
		if _, seen := position[c]; seen {
			return Ballot{}, core.NewInvalidBallotError(fmt.Sprintf("candidate %q appears more than once", c))
		}
		position[c] = i
		owned[i] = c
	}

	return Ballot{
		ranking:  owned,
		position: position,
		key:      buildKey(owned),
	}, nil
}

// MustNew constructs a ballot and panics on invalid input. Intended for
// fixtures and statically known rankings.
func MustNew(ranking ...core.Candidate) Ballot {
	b, err := New(ranking)
	if err != nil {
		panic(err)
	}
	return b
}

// Prefers reports whether this ballot ranks a earlier than b. Fails with
// core.ErrUnknownCandidate if either candidate is absent from the ballot.
func (b Ballot) Prefers(a, c core.Candidate) (bool, error) {
	posA, ok := b.position[a]
	if !ok {
		return false, core.NewUnknownCandidateError(a.String())
	}
	posC, ok := b.position[c]
	if !ok {
		return false, core.NewUnknownCandidateError(c.String())
	}
	return posA < posC, nil
}

// Position returns the 0-based rank of a candidate (0 = most preferred).
func (b Ballot) Position(c core.Candidate) (int, bool) {
	pos, ok := b.position[c]
	return pos, ok
}

// Ranking returns a copy of the full preference order.
func (b Ballot) Ranking() []core.Candidate {
	out := make([]core.Candidate, len(b.ranking))
	copy(out, b.ranking)
	return out
}

// At returns the candidate at rank i.
func (b Ballot) At(i int) core.Candidate { return b.ranking[i] }

// Len returns the number of ranked candidates.
func (b Ballot) Len() int { return len(b.ranking) }

// Key returns the canonical value-equality key for this ranking. Ballots
// with equal keys belong to the same voter type.
func (b Ballot) Key() string { return b.key }

// Equal reports value equality by ranking content.
func (b Ballot) Equal(other Ballot) bool { return b.key == other.key }

// IsZero reports whether the ballot was never constructed.
func (b Ballot) IsZero() bool { return len(b.ranking) == 0 }

// String renders the ranking as "A > B > C".
func (b Ballot) String() string {
	names := make([]string, len(b.ranking))
	for i, c := range b.ranking {
		names[i] = c.String()
	}
	return strings.Join(names, " > ")
}

func buildKey(ranking []core.Candidate) string {
	names := make([]string, len(ranking))
	for i, c := range ranking {
		names[i] = c.String()
	}
	return strings.Join(names, keySep)
}
