package pairwise

import "goelect/domain/core"

// CondorcetWinner returns the candidate who strictly beats every other
// candidate head-to-head, if one exists. The cyclic case (Condorcet
// paradox) returns ok=false.
//
// At most one candidate can qualify: two qualifiers would each need a strict
// majority over the other, which is contradictory. The scan may therefore
// stop at the first qualifier.
func CondorcetWinner(m *Matrix) (core.Candidate, bool) {
	n := m.NumCandidates()
	for i := 0; i < n; i++ {
		beatsAll := true
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if m.CountAt(i, j) <= m.CountAt(j, i) {
				beatsAll = false
				break
			}
		}
		if beatsAll {
			return m.candidates[i], true
		}
	}
	return "", false
}
