// Package tally defines the shared result value produced by every voting
// rule: the maximal-score winner set plus the full score map.
package tally

import (
	"sort"

	"goelect/domain/core"
)

// Result is one rule's outcome for one election. Computed fresh per
// invocation and never mutated afterwards. Copeland scores may be
// half-integers; Borda and Schulze scores are integral.
type Result struct {
	RuleName string                     `json:"rule_name"`
	Winners  []core.Candidate           `json:"winners"`
	Scores   map[core.Candidate]float64 `json:"scores"`
}

// NewResult derives the winner set from a score map: every candidate
// attaining the maximum score, in ascending candidate order for
// deterministic reporting.
func NewResult(ruleName string, scores map[core.Candidate]float64) Result {
	winners := make([]core.Candidate, 0, 1)
	first := true
	var max float64
	for c, s := range scores {
		switch {
		case first || s > max:
			max = s
			winners = winners[:0]
			winners = append(winners, c)
			first = false
		case s == max:
			winners = append(winners, c)
		}
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i] < winners[j] })

	return Result{RuleName: ruleName, Winners: winners, Scores: scores}
}

// IsWinner reports whether c is in the winner set.
func (r Result) IsWinner(c core.Candidate) bool {
	for _, w := range r.Winners {
		if w == c {
			return true
		}
	}
	return false
}

// MostPreferredWinner returns the winner a voter with the given true
// preference order likes best, along with its 0-based rank in that order.
// ok is false when no winner appears in the order.
func (r Result) MostPreferredWinner(order []core.Candidate) (core.Candidate, int, bool) {
	for rank, c := range order {
		if r.IsWinner(c) {
			return c, rank, true
		}
	}
	return "", 0, false
}
