package app

import (
	"context"
	"fmt"
	"time"

	"goelect/adapters/rules"
	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/pairwise"
	"goelect/domain/tally"
	"goelect/internal"
	"goelect/internal/analysis/brief"
)

// AnalysisService runs the full honest-ballot analysis: head-to-head
// statistics, Condorcet detection, every voting rule, and the election
// brief.
type AnalysisService struct {
	engine *rules.Engine
	logger *internal.Logger
}

// Analysis is the complete honest outcome for one election. Computed fresh
// per invocation; never cached across calls.
type Analysis struct {
	AnalysisID      core.AnalysisID          `json:"analysis_id"`
	Fingerprint     core.ElectionFingerprint `json:"fingerprint"`
	Candidates      []core.Candidate         `json:"candidates"`
	NumBallots      int                      `json:"num_ballots"`
	Matchups        []pairwise.HeadToHead    `json:"matchups"`
	CondorcetWinner *core.Candidate          `json:"condorcet_winner,omitempty"`
	Results         []tally.Result           `json:"results"`
	Brief           *brief.ElectionBrief     `json:"brief"`
	CreatedAt       core.Timestamp           `json:"created_at"`
	RuntimeMs       int64                    `json:"runtime_ms"`
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(engine *rules.Engine, logger *internal.Logger) *AnalysisService {
	return &AnalysisService{engine: engine, logger: logger}
}

// Analyze evaluates the election under every registered rule. The rules are
// independent and run concurrently; the pairwise matrix is shared by the
// Condorcet detector and the brief.
func (s *AnalysisService) Analyze(ctx context.Context, e *election.Election) (*Analysis, error) {
	startTime := time.Now()

	m := pairwise.Build(e)
	if !m.TotalsConsistent() {
		// Unreachable for a validated election; guards internal regressions.
		return nil, fmt.Errorf("pairwise totals inconsistent for election %s", e.Fingerprint())
	}

	analysis := &Analysis{
		AnalysisID:  core.AnalysisID(core.NewID()),
		Fingerprint: e.Fingerprint(),
		Candidates:  e.Candidates(),
		NumBallots:  e.NumBallots(),
		Matchups:    m.Matchups(),
		CreatedAt:   core.Now(),
	}

	if winner, ok := pairwise.CondorcetWinner(m); ok {
		analysis.CondorcetWinner = &winner
		s.logger.Debug("condorcet winner: %s", winner)
	} else {
		s.logger.Debug("no condorcet winner (majority cycle)")
	}

	results, err := s.engine.TallyAll(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("rule evaluation failed: %w", err)
	}
	analysis.Results = results

	electionBrief, err := brief.Compute(m)
	if err != nil {
		return nil, fmt.Errorf("brief computation failed: %w", err)
	}
	analysis.Brief = electionBrief

	analysis.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("analyzed %d ballots, %d candidates in %dms",
		e.NumBallots(), e.NumCandidates(), analysis.RuntimeMs)

	return analysis, nil
}

// Result returns the tally for a single named rule, if it was evaluated.
func (a *Analysis) Result(ruleName string) (tally.Result, bool) {
	for _, r := range a.Results {
		if r.RuleName == ruleName {
			return r, true
		}
	}
	return tally.Result{}, false
}
