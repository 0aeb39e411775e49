package rules

import (
	"context"
	"math/rand"
	"testing"

	"goelect/adapters/ballotgen"
	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/pairwise"
	"goelect/internal/testkit"
)

func TestSchulze_ClearWinner(t *testing.T) {
	result, err := NewSchulze().Tally(context.Background(), testkit.ClearWinner())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Winners) != 1 || result.Winners[0] != "A" {
		t.Fatalf("expected winners [A], got %v", result.Winners)
	}
	// B and C split their matchup 3-3, so neither beatpath-defeats the other.
	expected := map[core.Candidate]float64{"A": 2, "B": 0, "C": 0}
	for c, want := range expected {
		if got := result.Scores[c]; got != want {
			t.Errorf("score[%s] = %v, want %v", c, got, want)
		}
	}
}

// TestSchulze_ParadoxElectsEveryone: in the rock-paper-scissors cycle every
// beatpath has strength 4, so no candidate defeats any other and all three
// share the win.
func TestSchulze_ParadoxElectsEveryone(t *testing.T) {
	result, err := NewSchulze().Tally(context.Background(), testkit.Paradox())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Winners) != 3 {
		t.Fatalf("expected all 3 candidates to win, got %v", result.Winners)
	}
	for c, s := range result.Scores {
		if s != 0 {
			t.Errorf("score[%s] = %v, want 0", c, s)
		}
	}
}

// TestSchulze_CondorcetConsistency: whenever a Condorcet winner exists,
// Schulze elects exactly that candidate.
func TestSchulze_CondorcetConsistency(t *testing.T) {
	for _, scenario := range testkit.Scenarios() {
		m := pairwise.Build(scenario.Election)
		winner, ok := pairwise.CondorcetWinner(m)
		if !ok {
			continue
		}

		result, err := NewSchulze().Tally(context.Background(), scenario.Election)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", scenario.Name, err)
		}
		if len(result.Winners) != 1 || result.Winners[0] != winner {
			t.Errorf("%s: Condorcet winner is %s but Schulze elected %v", scenario.Name, winner, result.Winners)
		}
	}
}

// TestSchulze_WinnerSetNeverEmpty runs random electorates through the rule
// and checks the structural guarantees: a non-empty winner set and a
// beatpath matrix that is a true widest-path fixed point.
func TestSchulze_WinnerSetNeverEmpty(t *testing.T) {
	candidates := []core.Candidate{"A", "B", "C", "D", "E"}
	gen := ballotgen.NewRandom(rand.New(rand.NewSource(7)))

	for trial := 0; trial < 20; trial++ {
		ballots, err := gen.Generate(context.Background(), 9, candidates)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		e, err := election.New(candidates, ballots)
		if err != nil {
			t.Fatalf("election: %v", err)
		}

		result, err := NewSchulze().Tally(context.Background(), e)
		if err != nil {
			t.Fatalf("tally: %v", err)
		}
		if len(result.Winners) == 0 {
			t.Fatalf("trial %d: empty winner set", trial)
		}

		p := beatpathStrengths(pairwise.Build(e))
		n := len(candidates)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				for k := 0; k < n; k++ {
					if k == i || k == j {
						continue
					}
					if via := min(p[i][k], p[k][j]); via > p[i][j] {
						t.Fatalf("trial %d: strength[%d][%d]=%d improvable via %d to %d", trial, i, j, p[i][j], k, via)
					}
				}
			}
		}
	}
}
