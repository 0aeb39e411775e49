// Package pairwise aggregates ballots into the head-to-head count matrix
// that the Condorcet detector and the Condorcet-consistent rules share.
package pairwise

import (
	"goelect/domain/core"
	"goelect/domain/election"
)

// Matrix holds, for every ordered pair of distinct candidates (A, B), the
// number of voters preferring A over B. Counts are stored densely, keyed by
// the election's candidate index.
type Matrix struct {
	candidates []core.Candidate
	index      map[core.Candidate]int
	counts     [][]int
	numBallots int
}

// HeadToHead is one ordered matchup record, used by reports.
type HeadToHead struct {
	A       core.Candidate `json:"a"`
	B       core.Candidate `json:"b"`
	For     int            `json:"for"`     // voters preferring A over B
	Against int            `json:"against"` // voters preferring B over A
}

// Build counts every ordered matchup across all ballots. Pure function of
// the election; O(ballots x candidates^2).
func Build(e *election.Election) *Matrix {
	n := e.NumCandidates()
	candidates := e.Candidates()

	index := make(map[core.Candidate]int, n)
	for i, c := range candidates {
		index[c] = i
	}

	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}

	for _, b := range e.Ballots() {
		// Every ballot is a full permutation, so each pair of positions
		// settles exactly one ordered matchup.
		ranking := b.Ranking()
		for i := 0; i < len(ranking); i++ {
			for j := i + 1; j < len(ranking); j++ {
				counts[index[ranking[i]]][index[ranking[j]]]++
			}
		}
	}

	return &Matrix{
		candidates: candidates,
		index:      index,
		counts:     counts,
		numBallots: e.NumBallots(),
	}
}

// Count returns the number of voters preferring a over b. Zero for unknown
// candidates or for a == b.
func (m *Matrix) Count(a, b core.Candidate) int {
	i, okA := m.index[a]
	j, okB := m.index[b]
	if !okA || !okB || i == j {
		return 0
	}
	return m.counts[i][j]
}

// CountAt returns the count at dense indices (i, j).
func (m *Matrix) CountAt(i, j int) int { return m.counts[i][j] }

// Margin returns the Schulze direct-link strength of the matchup (a, b):
// count(a,b) when a strictly beats b head-to-head, else 0.
func (m *Matrix) Margin(a, b core.Candidate) int {
	forA := m.Count(a, b)
	if forA > m.Count(b, a) {
		return forA
	}
	return 0
}

// Candidates returns the candidate universe in matrix index order.
func (m *Matrix) Candidates() []core.Candidate {
	out := make([]core.Candidate, len(m.candidates))
	copy(out, m.candidates)
	return out
}

// NumBallots returns the number of ballots aggregated into the matrix.
func (m *Matrix) NumBallots() int { return m.numBallots }

// NumCandidates returns the matrix dimension.
func (m *Matrix) NumCandidates() int { return len(m.candidates) }

// TotalsConsistent asserts the structural invariant of a strict-total-order
// electorate: count(A,B) + count(B,A) equals the ballot count for every
// distinct pair.
func (m *Matrix) TotalsConsistent() bool {
	n := len(m.candidates)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.counts[i][j]+m.counts[j][i] != m.numBallots {
				return false
			}
		}
	}
	return true
}

// Matchups lists every ordered matchup record in candidate index order.
func (m *Matrix) Matchups() []HeadToHead {
	n := len(m.candidates)
	out := make([]HeadToHead, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out = append(out, HeadToHead{
				A:       m.candidates[i],
				B:       m.candidates[j],
				For:     m.counts[i][j],
				Against: m.counts[j][i],
			})
		}
	}
	return out
}
