// Package rules implements the three voting rules behind a single pluggable
// interface, plus an engine that dispatches them by name and evaluates
// independent rules concurrently.
package rules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"goelect/domain/core"
	"goelect/domain/election"
	"goelect/domain/tally"
)

// Rule names accepted by the engine.
const (
	RuleCopeland = "copeland"
	RuleBorda    = "borda"
	RuleSchulze  = "schulze"
)

// VotingRule defines the interface for a single voting rule. Given a valid
// election, Tally is a total function: it never fails.
type VotingRule interface {
	Name() string
	Description() string
	Tally(ctx context.Context, e *election.Election) (tally.Result, error)
}

// Engine holds the closed set of rules in scope. The tactical analyzer and
// the CLI dispatch through it rather than injecting arbitrary callables.
type Engine struct {
	rules []VotingRule
}

// NewEngine creates an engine with all three rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []VotingRule{
			NewCopeland(),
			NewBorda(),
			NewSchulze(),
		},
	}
}

// Rules returns the registered rules in registration order.
func (e *Engine) Rules() []VotingRule {
	out := make([]VotingRule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Rule looks up a rule by name. Unknown names yield
// core.ErrRuleNotImplemented, a distinct catchable condition so callers can
// report "not yet implemented" and continue with the remaining rules.
func (e *Engine) Rule(name string) (VotingRule, error) {
	for _, r := range e.rules {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, core.NewRuleNotImplementedError(name)
}

// TallyAll evaluates every registered rule on the same election. The rules
// are independent and read-only over the election, so they run concurrently;
// results come back in registration order.
func (e *Engine) TallyAll(ctx context.Context, el *election.Election) ([]tally.Result, error) {
	results := make([]tally.Result, len(e.rules))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range e.rules {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Tally(ctx, el)
			if err != nil {
				return fmt.Errorf("rule %s: %w", r.Name(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
