package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"goelect/adapters/rules"
	"goelect/domain/ballot"
	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/tally"
	"goelect/internal"
)

// TacticalService answers counterfactual questions: could voters of one
// type have obtained an outcome they prefer by misreporting their ranking?
type TacticalService struct {
	engine *rules.Engine
	logger *internal.Logger
}

// Opportunity records one way a voter type benefits from misreporting.
type Opportunity struct {
	RuleName      string           `json:"rule_name"`
	TrueRanking   []core.Candidate `json:"true_ranking"`
	VoterCount    int              `json:"voter_count"`
	HonestWinners []core.Candidate `json:"honest_winners"`
	Alternative   []core.Candidate `json:"alternative_ranking"`
	NewWinners    []core.Candidate `json:"new_winners"`
	Benefit       string           `json:"benefit"`
}

// AlternativesFunc supplies the candidate alternative rankings to try for a
// voter type. The search is heuristic over these caller-chosen alternatives,
// not exhaustive over all permutations; an empty list yields no
// opportunities.
type AlternativesFunc func(trueRanking, honestWinners []core.Candidate) [][]core.Candidate

// SweepResult is the outcome of a tactical sweep across rules and voter
// types.
type SweepResult struct {
	SweepID       core.SweepID          `json:"sweep_id"`
	Fingerprint   core.SweepFingerprint `json:"fingerprint"`
	Honest        []tally.Result        `json:"honest"`
	Opportunities []Opportunity         `json:"opportunities"`
	Artifacts     []core.Artifact       `json:"artifacts"`
	CreatedAt     core.Timestamp        `json:"created_at"`
	RuntimeMs     int64                 `json:"runtime_ms"`
}

// sweepManifest captures audit metadata for a sweep.
type sweepManifest struct {
	SweepID          core.SweepID             `json:"sweep_id"`
	Election         core.ElectionFingerprint `json:"election_fingerprint"`
	Rules            []string                 `json:"rules"`
	SkippedRules     []string                 `json:"skipped_rules,omitempty"`
	NumVoterTypes    int                      `json:"num_voter_types"`
	NumOpportunities int                      `json:"num_opportunities"`
}

// NewTacticalService creates a tactical voting service
func NewTacticalService(engine *rules.Engine, logger *internal.Logger) *TacticalService {
	return &TacticalService{engine: engine, logger: logger}
}

// Simulate re-runs a rule after every ballot equal to voterType is replaced
// by the alternative ranking. The original election is never mutated. If
// the voter type has no representation, the honest result is returned
// unchanged.
func (s *TacticalService) Simulate(ctx context.Context, e *election.Election, voterType ballot.Ballot, alternative []core.Candidate, rule rules.VotingRule) (tally.Result, error) {
	original := e.Ballots()
	if ballot.CountOf(original, voterType) == 0 {
		return rule.Tally(ctx, e)
	}

	alt, err := ballot.New(alternative)
	if err != nil {
		return tally.Result{}, fmt.Errorf("alternative ranking: %w", err)
	}

	modified := make([]ballot.Ballot, len(original))
	for i, b := range original {
		if b.Equal(voterType) {
			modified[i] = alt
		} else {
			modified[i] = b
		}
	}

	counterfactual, err := e.WithBallots(modified)
	if err != nil {
		return tally.Result{}, fmt.Errorf("counterfactual election: %w", err)
	}
	return rule.Tally(ctx, counterfactual)
}

// FindOpportunities tests each supplied alternative ranking for one voter
// type under one rule and keeps those that strictly improve the outcome as
// judged by the type's true preference order.
func (s *TacticalService) FindOpportunities(ctx context.Context, e *election.Election, voterType ballot.Ballot, alternatives [][]core.Candidate, rule rules.VotingRule) ([]Opportunity, error) {
	honest, err := rule.Tally(ctx, e)
	if err != nil {
		return nil, err
	}
	return s.findAgainstHonest(ctx, e, voterType, alternatives, rule, honest)
}

func (s *TacticalService) findAgainstHonest(ctx context.Context, e *election.Election, voterType ballot.Ballot, alternatives [][]core.Candidate, rule rules.VotingRule, honest tally.Result) ([]Opportunity, error) {
	trueRanking := voterType.Ranking()
	voterCount := ballot.CountOf(e.Ballots(), voterType)

	var opportunities []Opportunity
	for _, alt := range alternatives {
		counterfactual, err := s.Simulate(ctx, e, voterType, alt, rule)
		if err != nil {
			return nil, err
		}

		benefit, improved := describeImprovement(trueRanking, honest, counterfactual)
		if !improved {
			continue
		}
		opportunities = append(opportunities, Opportunity{
			RuleName:      rule.Name(),
			TrueRanking:   trueRanking,
			VoterCount:    voterCount,
			HonestWinners: honest.Winners,
			Alternative:   alt,
			NewWinners:    counterfactual.Winners,
			Benefit:       benefit,
		})
	}
	return opportunities, nil
}

// Sweep analyzes every voter type under every named rule. Unknown rule
// names are reported and skipped so the rest of the sweep completes. Rules
// run concurrently; each rule's pass over voter types is sequential.
func (s *TacticalService) Sweep(ctx context.Context, e *election.Election, ruleNames []string, alternativesFor AlternativesFunc) (*SweepResult, error) {
	startTime := time.Now()

	resolved := make([]rules.VotingRule, 0, len(ruleNames))
	var skipped []string
	for _, name := range ruleNames {
		rule, err := s.engine.Rule(name)
		if core.IsRuleNotImplemented(err) {
			s.logger.Warn("rule %q not implemented - skipping", name)
			skipped = append(skipped, name)
			continue
		}
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rule)
	}

	voterTypes := e.VoterTypes()
	honest := make([]tally.Result, len(resolved))
	perRule := make([][]Opportunity, len(resolved))

	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range resolved {
		i, rule := i, rule
		g.Go(func() error {
			honestResult, err := rule.Tally(gctx, e)
			if err != nil {
				return fmt.Errorf("rule %s: %w", rule.Name(), err)
			}
			honest[i] = honestResult

			for _, vt := range voterTypes {
				alternatives := alternativesFor(vt.Ballot.Ranking(), honestResult.Winners)
				opps, err := s.findAgainstHonest(gctx, e, vt.Ballot, alternatives, rule, honestResult)
				if err != nil {
					return fmt.Errorf("rule %s, voter type %s: %w", rule.Name(), vt.Ballot, err)
				}
				perRule[i] = append(perRule[i], opps...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sweepID := core.SweepID(core.NewID())
	result := &SweepResult{
		SweepID:   sweepID,
		Honest:    honest,
		CreatedAt: core.Now(),
	}

	evaluated := make([]string, len(resolved))
	for i, rule := range resolved {
		evaluated[i] = rule.Name()
		result.Opportunities = append(result.Opportunities, perRule[i]...)
	}
	result.Fingerprint = core.ComputeSweepFingerprint(e.Fingerprint(), evaluated)

	for _, opp := range result.Opportunities {
		result.Artifacts = append(result.Artifacts, core.Artifact{
			ID:        core.NewID(),
			Kind:      core.ArtifactOpportunity,
			Payload:   opp,
			CreatedAt: result.CreatedAt,
		})
	}
	result.Artifacts = append(result.Artifacts, core.Artifact{
		ID:   core.NewID(),
		Kind: core.ArtifactSweepManifest,
		Payload: sweepManifest{
			SweepID:          sweepID,
			Election:         e.Fingerprint(),
			Rules:            evaluated,
			SkippedRules:     skipped,
			NumVoterTypes:    len(voterTypes),
			NumOpportunities: len(result.Opportunities),
		},
		CreatedAt: result.CreatedAt,
	})

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	s.logger.Info("tactical sweep: %d rules, %d voter types, %d opportunities in %dms",
		len(resolved), len(voterTypes), len(result.Opportunities), result.RuntimeMs)

	return result, nil
}

// describeImprovement compares outcome sets by the voter's true preference
// order: the outcome improved iff the most-preferred candidate among the new
// winners sits strictly earlier than the most-preferred honest winner.
func describeImprovement(trueRanking []core.Candidate, honest, counterfactual tally.Result) (string, bool) {
	origBest, origRank, ok := honest.MostPreferredWinner(trueRanking)
	if !ok {
		return "", false
	}
	newBest, newRank, ok := counterfactual.MostPreferredWinner(trueRanking)
	if !ok || newRank >= origRank {
		return "", false
	}
	return fmt.Sprintf("voter's %s choice (%s) wins instead of %s choice (%s)",
		ordinal(newRank+1), newBest, ordinal(origRank+1), origBest), true
}

// ordinal converts 1 to "1st", 2 to "2nd", and so on.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 10 || n%100 > 20 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
