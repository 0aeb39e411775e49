package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Ballot construction and query errors
	ErrInvalidBallot    = errors.New("invalid ballot")
	ErrUnknownCandidate = errors.New("unknown candidate")

	// Election assembly errors
	ErrEmptyCandidates    = errors.New("candidate list is empty")
	ErrDuplicateCandidate = errors.New("duplicate candidate in election")
	ErrEmptyElection      = errors.New("election has no ballots")
	ErrCandidateMismatch  = errors.New("ballot does not rank the election's candidate set")

	// Generator collaborator errors
	ErrSpectrumMismatch = errors.New("spectrum does not match candidate set")

	// Rule dispatch errors
	ErrRuleNotImplemented = errors.New("voting rule not implemented")
)

// Error constructors with context
func NewInvalidBallotError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidBallot, reason)
}

func NewUnknownCandidateError(candidate string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCandidate, candidate)
}

func NewCandidateMismatchError(detail string) error {
	return fmt.Errorf("%w: %s", ErrCandidateMismatch, detail)
}

func NewRuleNotImplementedError(name string) error {
	return fmt.Errorf("%w: %q", ErrRuleNotImplemented, name)
}

// Error checking helpers
func IsBallotError(err error) bool {
	return errors.Is(err, ErrInvalidBallot) ||
		errors.Is(err, ErrUnknownCandidate)
}

func IsElectionError(err error) bool {
	return errors.Is(err, ErrEmptyCandidates) ||
		errors.Is(err, ErrDuplicateCandidate) ||
		errors.Is(err, ErrEmptyElection) ||
		errors.Is(err, ErrCandidateMismatch)
}

// IsRuleNotImplemented reports whether a rule lookup failed because the rule
// is not provided by this build. Callers are expected to catch this and keep
// evaluating the remaining rules.
func IsRuleNotImplemented(err error) bool {
	return errors.Is(err, ErrRuleNotImplemented)
}
