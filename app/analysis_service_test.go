package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goelect/adapters/rules"
	"goelect/domain/core"
	"goelect/internal"
	"goelect/internal/testkit"
)

func newAnalysisService() *AnalysisService {
	return NewAnalysisService(rules.NewEngine(), internal.NewLogger(internal.LogLevelError, "test"))
}

func TestAnalyze_ClearWinner(t *testing.T) {
	svc := newAnalysisService()

	analysis, err := svc.Analyze(context.Background(), testkit.ClearWinner())
	require.NoError(t, err)

	assert.NotEmpty(t, analysis.AnalysisID)
	assert.NotEmpty(t, analysis.Fingerprint)
	assert.Equal(t, 6, analysis.NumBallots)
	assert.Len(t, analysis.Matchups, 6, "ordered matchups for 3 candidates")

	require.NotNil(t, analysis.CondorcetWinner)
	assert.Equal(t, core.Candidate("A"), *analysis.CondorcetWinner)

	require.Len(t, analysis.Results, 3)
	for _, r := range analysis.Results {
		assert.Equal(t, []core.Candidate{"A"}, r.Winners, "rule %s", r.RuleName)
	}

	require.NotNil(t, analysis.Brief)
	assert.Len(t, analysis.Brief.Matchups, 3)
}

func TestAnalyze_ParadoxHasNoCondorcetWinner(t *testing.T) {
	svc := newAnalysisService()

	analysis, err := svc.Analyze(context.Background(), testkit.Paradox())
	require.NoError(t, err)

	assert.Nil(t, analysis.CondorcetWinner)
	for _, r := range analysis.Results {
		assert.Len(t, r.Winners, 3, "rule %s should report a three-way tie", r.RuleName)
	}
}

func TestAnalyze_AllScenarios(t *testing.T) {
	svc := newAnalysisService()

	for _, scenario := range testkit.Scenarios() {
		analysis, err := svc.Analyze(context.Background(), scenario.Election)
		require.NoError(t, err, scenario.Name)
		assert.Equal(t, scenario.Election.Fingerprint(), analysis.Fingerprint, scenario.Name)
		assert.Len(t, analysis.Results, 3, scenario.Name)
	}
}

func TestAnalysis_ResultLookup(t *testing.T) {
	svc := newAnalysisService()

	analysis, err := svc.Analyze(context.Background(), testkit.Unanimous())
	require.NoError(t, err)

	borda, ok := analysis.Result(rules.RuleBorda)
	require.True(t, ok)
	assert.Equal(t, 6.0, borda.Scores["A"])

	_, ok = analysis.Result("approval")
	assert.False(t, ok)
}
