package rules

import (
	"context"

	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/pairwise"
	"goelect/domain/tally"
)

// CopelandRule scores a round-robin tournament over the pairwise matrix.
type CopelandRule struct{}

// NewCopeland creates the Copeland (Llull) rule.
func NewCopeland() *CopelandRule {
	return &CopelandRule{}
}

// Name returns the rule name
func (r *CopelandRule) Name() string { return RuleCopeland }

// Description returns a human-readable description
func (r *CopelandRule) Description() string {
	return "Round-robin pairwise tournament: one point per head-to-head win, half a point per tie"
}

// Tally awards, for every unordered matchup, 1 point to the winner or 0.5
// to each side on a tie. Each matchup distributes exactly one point, so the
// scores always sum to C(n, 2). O(candidates^2) after the matrix build.
func (r *CopelandRule) Tally(ctx context.Context, e *election.Election) (tally.Result, error) {
	m := pairwise.Build(e)
	candidates := m.Candidates()
	n := len(candidates)

	scores := make(map[core.Candidate]float64, n)
	for _, c := range candidates {
		scores[c] = 0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			forI, forJ := m.CountAt(i, j), m.CountAt(j, i)
			switch {
			case forI > forJ:
				scores[candidates[i]]++
			case forJ > forI:
				scores[candidates[j]]++
			default:
				scores[candidates[i]] += 0.5
				scores[candidates[j]] += 0.5
			}
		}
	}

	return tally.NewResult(r.Name(), scores), nil
}
