package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goelect/adapters/rules"
	"goelect/domain/ballot"
	"goelect/domain/core"
	"goelect/internal"
	"goelect/internal/testkit"
)

func newTacticalService() *TacticalService {
	return NewTacticalService(rules.NewEngine(), internal.NewLogger(internal.LogLevelError, "test"))
}

func TestSimulate_AbsentVoterTypeIsNoOp(t *testing.T) {
	svc := newTacticalService()
	e := testkit.ClearWinner()
	rule, err := svc.engine.Rule(rules.RuleBorda)
	require.NoError(t, err)

	// Nobody actually cast C > B > A.
	ghost := ballot.MustNew("C", "B", "A")
	honest, err := rule.Tally(context.Background(), e)
	require.NoError(t, err)

	result, err := svc.Simulate(context.Background(), e, ghost, []core.Candidate{"B", "A", "C"}, rule)
	require.NoError(t, err)
	assert.Equal(t, honest, result)
}

func TestSimulate_DoesNotMutateElection(t *testing.T) {
	svc := newTacticalService()
	e := testkit.BordaManipulable()
	before := e.Fingerprint()
	rule, err := svc.engine.Rule(rules.RuleBorda)
	require.NoError(t, err)

	_, err = svc.Simulate(context.Background(), e,
		ballot.MustNew("A", "B", "C"), []core.Candidate{"A", "C", "B"}, rule)
	require.NoError(t, err)

	assert.Equal(t, before, e.Fingerprint())
}

func TestSimulate_RejectsInvalidAlternative(t *testing.T) {
	svc := newTacticalService()
	e := testkit.BordaManipulable()
	rule, err := svc.engine.Rule(rules.RuleBorda)
	require.NoError(t, err)

	_, err = svc.Simulate(context.Background(), e,
		ballot.MustNew("A", "B", "C"), []core.Candidate{"A", "B"}, rule)
	assert.Error(t, err)
	assert.True(t, core.IsBallotError(err) || core.IsElectionError(err))
}

// The textbook Borda manipulation: the three A-first voters bury the honest
// winner B behind C and elect A outright.
func TestFindOpportunities_BordaBurying(t *testing.T) {
	svc := newTacticalService()
	e := testkit.BordaManipulable()
	rule, err := svc.engine.Rule(rules.RuleBorda)
	require.NoError(t, err)

	voterType := ballot.MustNew("A", "B", "C")
	opps, err := svc.FindOpportunities(context.Background(), e, voterType,
		[][]core.Candidate{{"A", "C", "B"}}, rule)
	require.NoError(t, err)
	require.Len(t, opps, 1)

	opp := opps[0]
	assert.Equal(t, rules.RuleBorda, opp.RuleName)
	assert.Equal(t, 3, opp.VoterCount)
	assert.Equal(t, []core.Candidate{"B"}, opp.HonestWinners)
	assert.Equal(t, []core.Candidate{"A"}, opp.NewWinners)
	assert.Contains(t, opp.Benefit, "1st choice (A)")
	assert.Contains(t, opp.Benefit, "2nd choice (B)")
}

func TestFindOpportunities_HonestWinnerStaysHonest(t *testing.T) {
	svc := newTacticalService()
	e := testkit.BordaManipulable()
	rule, err := svc.engine.Rule(rules.RuleBorda)
	require.NoError(t, err)

	// The B-first voters already get their favorite; nothing to gain.
	voterType := ballot.MustNew("B", "C", "A")
	opps, err := svc.FindOpportunities(context.Background(), e, voterType,
		HeuristicAlternatives(voterType.Ranking(), []core.Candidate{"B"}), rule)
	require.NoError(t, err)
	assert.Empty(t, opps)
}

func TestSweep_FindsBordaManipulation(t *testing.T) {
	svc := newTacticalService()

	sweep, err := svc.Sweep(context.Background(), testkit.BordaManipulable(),
		[]string{rules.RuleCopeland, rules.RuleBorda, rules.RuleSchulze},
		HeuristicAlternatives)
	require.NoError(t, err)

	require.Len(t, sweep.Honest, 3)
	assert.NotEmpty(t, sweep.SweepID)
	assert.NotEmpty(t, sweep.Fingerprint)

	var bordaOpps []Opportunity
	for _, opp := range sweep.Opportunities {
		if opp.RuleName == rules.RuleBorda {
			bordaOpps = append(bordaOpps, opp)
		}
	}
	require.NotEmpty(t, bordaOpps, "Borda should be manipulable here")
	found := false
	for _, opp := range bordaOpps {
		if strings.Contains(opp.Benefit, "1st choice (A)") {
			found = true
		}
	}
	assert.True(t, found, "burying B should hand A the win")

	// One artifact per opportunity plus the manifest.
	assert.Len(t, sweep.Artifacts, len(sweep.Opportunities)+1)
	last := sweep.Artifacts[len(sweep.Artifacts)-1]
	assert.Equal(t, core.ArtifactSweepManifest, last.Kind)
}

func TestSweep_SkipsUnknownRules(t *testing.T) {
	svc := newTacticalService()

	sweep, err := svc.Sweep(context.Background(), testkit.ClearWinner(),
		[]string{rules.RuleCopeland, "approval"}, HeuristicAlternatives)
	require.NoError(t, err)

	require.Len(t, sweep.Honest, 1)
	assert.Equal(t, rules.RuleCopeland, sweep.Honest[0].RuleName)
}

func TestSweep_CondorcetScenarioResistsHeuristics(t *testing.T) {
	svc := newTacticalService()

	// With a strict Condorcet winner, neither Copeland nor Schulze gives the
	// heuristic alternatives anything to exploit.
	sweep, err := svc.Sweep(context.Background(), testkit.ClearWinner(),
		[]string{rules.RuleCopeland, rules.RuleSchulze}, HeuristicAlternatives)
	require.NoError(t, err)

	assert.Empty(t, sweep.Opportunities)
}

func TestHeuristicAlternatives(t *testing.T) {
	trueRanking := []core.Candidate{"A", "B", "C"}

	t.Run("buries a disliked winner", func(t *testing.T) {
		alts := HeuristicAlternatives(trueRanking, []core.Candidate{"B"})
		assert.Contains(t, alts, []core.Candidate{"A", "C", "B"})
	})

	t.Run("no alternatives when favorite already wins", func(t *testing.T) {
		alts := HeuristicAlternatives(trueRanking, []core.Candidate{"A"})
		assert.Empty(t, alts)
	})

	t.Run("compromises toward a viable second choice", func(t *testing.T) {
		// Best honest winner is the voter's last choice. Burying C yields the
		// true ranking back (deduped), so only the compromise survives.
		alts := HeuristicAlternatives(trueRanking, []core.Candidate{"C"})
		assert.Equal(t, [][]core.Candidate{{"B", "A", "C"}}, alts)
	})
}

func TestOrdinal(t *testing.T) {
	cases := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 101: "101st", 111: "111th"}
	for n, want := range cases {
		assert.Equal(t, want, ordinal(n))
	}
}
