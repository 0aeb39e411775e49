package tally

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goelect/domain/core"
)

func TestNewResult_WinnerDerivation(t *testing.T) {
	tests := []struct {
		name    string
		scores  map[core.Candidate]float64
		winners []core.Candidate
	}{
		{
			name:    "single winner",
			scores:  map[core.Candidate]float64{"A": 2, "B": 0.5, "C": 0.5},
			winners: []core.Candidate{"A"},
		},
		{
			name:    "ties sort by candidate",
			scores:  map[core.Candidate]float64{"C": 1, "A": 1, "B": 1},
			winners: []core.Candidate{"A", "B", "C"},
		},
		{
			name:    "all zero still elects everyone",
			scores:  map[core.Candidate]float64{"A": 0, "B": 0},
			winners: []core.Candidate{"A", "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult("copeland", tt.scores)
			assert.Equal(t, tt.winners, r.Winners)
			for _, w := range tt.winners {
				assert.True(t, r.IsWinner(w))
			}
		})
	}
}

func TestMostPreferredWinner(t *testing.T) {
	r := NewResult("borda", map[core.Candidate]float64{"A": 1, "B": 5, "C": 5})

	c, rank, ok := r.MostPreferredWinner([]core.Candidate{"A", "C", "B"})
	assert.True(t, ok)
	assert.Equal(t, core.Candidate("C"), c)
	assert.Equal(t, 1, rank)

	_, _, ok = r.MostPreferredWinner([]core.Candidate{"X", "Y"})
	assert.False(t, ok)
}
