package rules

import (
	"context"

	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/tally"
)

// BordaRule scores candidates by ballot position, independent of the
// pairwise matrix.
type BordaRule struct{}

// NewBorda creates the Borda count rule.
func NewBorda() *BordaRule {
	return &BordaRule{}
}

// Name returns the rule name
func (r *BordaRule) Name() string { return RuleBorda }

// Description returns a human-readable description
func (r *BordaRule) Description() string {
	return "Position-weighted scoring: rank i of n earns n-1-i points per ballot"
}

// Tally sums position weights across all ballots: the candidate at 0-based
// position i on a ballot of n candidates earns n-1-i points, so one ballot
// contributes exactly n(n-1)/2 points in total. O(ballots x candidates).
func (r *BordaRule) Tally(ctx context.Context, e *election.Election) (tally.Result, error) {
	n := e.NumCandidates()

	scores := make(map[core.Candidate]float64, n)
	for _, c := range e.Candidates() {
		scores[c] = 0
	}

	for _, b := range e.Ballots() {
		for i, c := range b.Ranking() {
			scores[c] += float64(n - 1 - i)
		}
	}

	return tally.NewResult(r.Name(), scores), nil
}
