package rules

import (
	"context"

	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/pairwise"
	"goelect/domain/tally"
)

// SchulzeRule implements the beatpath method: candidates are compared by the
// strongest path between them in the weighted head-to-head graph.
type SchulzeRule struct{}

// NewSchulze creates the Schulze (beatpath) rule.
func NewSchulze() *SchulzeRule {
	return &SchulzeRule{}
}

// Name returns the rule name
func (r *SchulzeRule) Name() string { return RuleSchulze }

// Description returns a human-readable description
func (r *SchulzeRule) Description() string {
	return "Beatpath method: widest-path closure over the head-to-head graph, scored by beatpath wins"
}

// Tally computes the all-pairs strongest-beatpath closure and scores each
// candidate by the number of opponents it beatpath-defeats. O(candidates^3).
//
// The winner set is never empty: beatpath defeat is asymmetric and
// irreflexive by construction (p(A,B) and p(B,A) cannot both exceed each
// other), so the maximum-score set is well-defined even in cyclic
// electorates.
func (r *SchulzeRule) Tally(ctx context.Context, e *election.Election) (tally.Result, error) {
	m := pairwise.Build(e)
	candidates := m.Candidates()
	n := len(candidates)

	strength := beatpathStrengths(m)

	scores := make(map[core.Candidate]float64, n)
	for _, c := range candidates {
		scores[c] = 0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && strength[i][j] > strength[j][i] {
				scores[candidates[i]]++
			}
		}
	}

	return tally.NewResult(r.Name(), scores), nil
}

// beatpathStrengths computes the strongest-path matrix: p(A,B) is the
// maximum over all directed paths A -> ... -> B of the minimum single-hop
// margin along the path.
//
// The closure is Floyd-Warshall with (+, min) replaced by (min, max). A
// single pass over intermediates K, in any order, reaches the fixed point;
// the inner (A,B) pairs for a fixed K are independent, but K itself carries
// a true sequential dependency, so the triple loop stays sequential.
func beatpathStrengths(m *pairwise.Matrix) [][]int {
	n := m.NumCandidates()

	p := make([][]int, n)
	for i := range p {
		p[i] = make([]int, n)
	}

	// Direct links: a hop counts only when it is a strict pairwise win.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if m.CountAt(i, j) > m.CountAt(j, i) {
				p[i][j] = m.CountAt(i, j)
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				// A path through k is only as strong as its weakest link.
				viaK := min(p[i][k], p[k][j])
				if viaK > p[i][j] {
					p[i][j] = viaK
				}
			}
		}
	}

	return p
}
