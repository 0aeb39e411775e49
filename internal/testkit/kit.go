// Package testkit provides the canonical demonstration electorates used by
// tests and the CLI demo command.
package testkit

import (
	"goelect/domain/ballot"
	"goelect/domain/core"
	"goelect/domain/election"
)

// Scenario is a named, pre-built election with a short storyline.
type Scenario struct {
	Name        string
	Description string
	Election    *election.Election
}

// ABC is the three-candidate universe every canned scenario uses.
var ABC = []core.Candidate{"A", "B", "C"}

// ClearWinner has a strict Condorcet winner: A beats B 5-1 and C 5-1.
// Borda scores are A=10, B=4, C=4.
func ClearWinner() *election.Election {
	return mustElection(ABC, repeat(2, "A", "B", "C"),
		repeat(2, "A", "C", "B"),
		repeat(1, "B", "A", "C"),
		repeat(1, "C", "A", "B"))
}

// Paradox is the rock-paper-scissors electorate: A>B>C>A with no Condorcet
// winner, all Copeland scores 1.0, all Schulze strengths symmetric.
func Paradox() *election.Election {
	return mustElection(ABC, repeat(2, "A", "B", "C"),
		repeat(2, "B", "C", "A"),
		repeat(2, "C", "A", "B"))
}

// Unanimous has 3 identical ballots; every rule elects A. Borda scores are
// A=6, B=3, C=0.
func Unanimous() *election.Election {
	return mustElection(ABC, repeat(3, "A", "B", "C"))
}

// BordaManipulable is the textbook Borda manipulation setup: honest Borda
// elects B (A=6, B=7, C=2), but the three A-first voters can elect A by
// burying B behind C.
func BordaManipulable() *election.Election {
	return mustElection(ABC, repeat(3, "A", "B", "C"),
		repeat(2, "B", "C", "A"))
}

// Scenarios lists all canned electorates in demo order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "clear-winner", Description: "strict Condorcet winner, all rules agree", Election: ClearWinner()},
		{Name: "paradox", Description: "rock-paper-scissors majority cycle", Election: Paradox()},
		{Name: "unanimous", Description: "identical ballots", Election: Unanimous()},
		{Name: "borda-manipulable", Description: "Borda rewards burying the honest winner", Election: BordaManipulable()},
	}
}

// repeat builds count identical ballots from a ranking.
func repeat(count int, ranking ...core.Candidate) []ballot.Ballot {
	b := ballot.MustNew(ranking...)
	out := make([]ballot.Ballot, count)
	for i := range out {
		out[i] = b
	}
	return out
}

func mustElection(candidates []core.Candidate, groups ...[]ballot.Ballot) *election.Election {
	var ballots []ballot.Ballot
	for _, g := range groups {
		ballots = append(ballots, g...)
	}
	e, err := election.New(candidates, ballots)
	if err != nil {
		panic(err)
	}
	return e
}
