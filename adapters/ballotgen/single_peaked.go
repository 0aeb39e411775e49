package ballotgen

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"goelect/domain/ballot"
	"goelect/domain/core"
	"goelect/ports"
)

// idealPointJitter breaks exact equidistance between spectrum positions, so
// every generated ranking is a strict order and (for odd electorates) a
// Condorcet winner exists.
const idealPointJitter = 0.001

// SinglePeakedGenerator produces ballots whose preferences are single-peaked
// over a linear spectrum: each voter has an ideal point and prefers
// candidates positioned closer to it.
type SinglePeakedGenerator struct {
	spectrum []core.Candidate
	src      *rand.Rand
}

var _ ports.BallotGenerator = (*SinglePeakedGenerator)(nil)

// NewSinglePeaked creates a single-peaked generator. A nil spectrum defaults
// to the candidate order passed to Generate.
func NewSinglePeaked(spectrum []core.Candidate, src *rand.Rand) *SinglePeakedGenerator {
	return &SinglePeakedGenerator{spectrum: spectrum, src: src}
}

// Name identifies the generation strategy
func (g *SinglePeakedGenerator) Name() string { return "single_peaked" }

// Generate draws one ideal point per voter, uniform over the spectrum span,
// and ranks candidates by distance from it. Fails with
// core.ErrSpectrumMismatch when the spectrum set differs from the candidate
// set.
func (g *SinglePeakedGenerator) Generate(ctx context.Context, numVoters int, candidates []core.Candidate) ([]ballot.Ballot, error) {
	spectrum := g.spectrum
	if spectrum == nil {
		spectrum = candidates
	} else if err := validateSpectrum(spectrum, candidates); err != nil {
		return nil, err
	}

	span := float64(len(spectrum) - 1)

	ballots := make([]ballot.Ballot, 0, numVoters)
	for v := 0; v < numVoters; v++ {
		ideal := g.src.Float64() * span
		ideal += (g.src.Float64()*2 - 1) * idealPointJitter

		type placed struct {
			distance  float64
			candidate core.Candidate
		}
		byDistance := make([]placed, len(spectrum))
		for i, c := range spectrum {
			byDistance[i] = placed{distance: math.Abs(float64(i) - ideal), candidate: c}
		}
		sort.SliceStable(byDistance, func(i, j int) bool {
			return byDistance[i].distance < byDistance[j].distance
		})

		ranking := make([]core.Candidate, len(byDistance))
		for i, p := range byDistance {
			ranking[i] = p.candidate
		}
		b, err := ballot.New(ranking)
		if err != nil {
			return nil, err
		}
		ballots = append(ballots, b)
	}
	return ballots, nil
}

// validateSpectrum requires the spectrum to be a permutation of the
// candidate universe.
func validateSpectrum(spectrum, candidates []core.Candidate) error {
	if len(spectrum) != len(candidates) {
		return fmt.Errorf("%w: spectrum has %d candidates, election has %d",
			core.ErrSpectrumMismatch, len(spectrum), len(candidates))
	}
	inSpectrum := make(map[core.Candidate]bool, len(spectrum))
	for _, c := range spectrum {
		inSpectrum[c] = true
	}
	for _, c := range candidates {
		if !inSpectrum[c] {
			return fmt.Errorf("%w: candidate %q missing from spectrum", core.ErrSpectrumMismatch, c)
		}
	}
	return nil
}
