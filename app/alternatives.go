package app

import (
	"goelect/domain/ballot"
	"goelect/domain/core"
)

// HeuristicAlternatives builds the default alternative rankings the CLI
// sweep tries for a voter type. Exhaustive search over all permutations is
// combinatorial, so only the classic manipulations are tried; callers can
// always supply their own list.
//
// Two classic manipulations are generated:
//   - burying: push an honest winner the voter dislikes to the bottom;
//   - compromising: pull a candidate the voter prefers over the honest
//     winner up to the top.
func HeuristicAlternatives(trueRanking, honestWinners []core.Candidate) [][]core.Candidate {
	seen := map[string]bool{ballot.MustNew(trueRanking...).Key(): true}
	var alternatives [][]core.Candidate

	add := func(alt []core.Candidate) {
		key := ballot.MustNew(alt...).Key()
		if !seen[key] {
			seen[key] = true
			alternatives = append(alternatives, alt)
		}
	}

	isWinner := make(map[core.Candidate]bool, len(honestWinners))
	for _, w := range honestWinners {
		isWinner[w] = true
	}

	for rank, c := range trueRanking {
		if isWinner[c] && rank > 0 {
			// Burying: demote a disliked honest winner to last place.
			add(moveToBottom(trueRanking, c))
		}
	}

	// Compromising: any candidate ranked above the best honest winner gets
	// promoted to first place.
	bestWinnerRank := len(trueRanking)
	for rank, c := range trueRanking {
		if isWinner[c] {
			bestWinnerRank = rank
			break
		}
	}
	for rank := 1; rank < bestWinnerRank; rank++ {
		add(moveToTop(trueRanking, trueRanking[rank]))
	}

	return alternatives
}

func moveToBottom(ranking []core.Candidate, c core.Candidate) []core.Candidate {
	out := make([]core.Candidate, 0, len(ranking))
	for _, x := range ranking {
		if x != c {
			out = append(out, x)
		}
	}
	return append(out, c)
}

func moveToTop(ranking []core.Candidate, c core.Candidate) []core.Candidate {
	out := make([]core.Candidate, 0, len(ranking))
	out = append(out, c)
	for _, x := range ranking {
		if x != c {
			out = append(out, x)
		}
	}
	return out
}
