// Package brief condenses an election's head-to-head structure into summary
// statistics an analyst can scan before reading per-rule results.
package brief

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"goelect/domain/core"
	"goelect/domain/pairwise"
)

// decisiveAlpha is the two-sided significance threshold for calling a
// matchup decisive rather than noise around an even split.
const decisiveAlpha = 0.05

// MatchupStat summarizes one unordered head-to-head matchup.
type MatchupStat struct {
	A        core.Candidate `json:"a"`
	B        core.Candidate `json:"b"`
	ForA     int            `json:"for_a"`
	ForB     int            `json:"for_b"`
	Margin   int            `json:"margin"` // |ForA - ForB|
	PValue   float64        `json:"p_value"`
	Decisive bool           `json:"decisive"`
}

// ElectionBrief is the condensed pre-rule view of an election.
type ElectionBrief struct {
	NumBallots    int           `json:"num_ballots"`
	NumCandidates int           `json:"num_candidates"`
	MeanMargin    float64       `json:"mean_margin"`
	MedianMargin  float64       `json:"median_margin"`
	MaxMargin     float64       `json:"max_margin"`
	DecisiveShare float64       `json:"decisive_share"`
	Closeness     string        `json:"closeness"` // "razor_thin", "competitive", "landslide"
	Matchups      []MatchupStat `json:"matchups"`
}

// Compute derives the brief from a head-to-head matrix.
func Compute(m *pairwise.Matrix) (*ElectionBrief, error) {
	candidates := m.Candidates()
	n := len(candidates)
	numBallots := m.NumBallots()

	matchups := make([]MatchupStat, 0, n*(n-1)/2)
	margins := make([]float64, 0, n*(n-1)/2)
	decisive := 0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			forA, forB := m.CountAt(i, j), m.CountAt(j, i)
			margin := forA - forB
			if margin < 0 {
				margin = -margin
			}

			p := evenSplitPValue(forA, numBallots)
			ms := MatchupStat{
				A:        candidates[i],
				B:        candidates[j],
				ForA:     forA,
				ForB:     forB,
				Margin:   margin,
				PValue:   p,
				Decisive: p < decisiveAlpha,
			}
			if ms.Decisive {
				decisive++
			}
			matchups = append(matchups, ms)
			margins = append(margins, float64(margin))
		}
	}

	mean, err := stats.Mean(margins)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(margins)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(margins)
	if err != nil {
		return nil, err
	}

	return &ElectionBrief{
		NumBallots:    numBallots,
		NumCandidates: n,
		MeanMargin:    mean,
		MedianMargin:  median,
		MaxMargin:     max,
		DecisiveShare: float64(decisive) / float64(len(matchups)),
		Closeness:     classifyCloseness(mean, numBallots),
		Matchups:      matchups,
	}, nil
}

// evenSplitPValue is the two-sided p-value for observing forA preferences
// out of total under an even-split null, via the normal approximation to
// Binomial(total, 0.5).
func evenSplitPValue(forA, total int) float64 {
	if total == 0 {
		return 1
	}
	z := (float64(forA) - float64(total)/2) / math.Sqrt(float64(total)/4)
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * (1 - normal.CDF(math.Abs(z)))
	if p > 1 {
		p = 1
	}
	return p
}

// classifyCloseness labels the election by mean margin relative to the
// electorate size.
func classifyCloseness(meanMargin float64, numBallots int) string {
	if numBallots == 0 {
		return "razor_thin"
	}
	ratio := meanMargin / float64(numBallots)
	switch {
	case ratio < 0.1:
		return "razor_thin"
	case ratio < 0.4:
		return "competitive"
	default:
		return "landslide"
	}
}
