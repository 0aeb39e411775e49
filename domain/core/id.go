package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Candidate is an opaque candidate identifier, unique within an election.
type Candidate ID

// String returns the candidate name
func (c Candidate) String() string { return ID(c).String() }

// Domain-specific ID types
type (
	ElectionID ID
	AnalysisID ID
	SweepID    ID
)

// String conversions for domain IDs
func (id ElectionID) String() string { return ID(id).String() }
func (id AnalysisID) String() string { return ID(id).String() }
func (id SweepID) String() string    { return ID(id).String() }

// ParseCandidate parses a string into a Candidate
func ParseCandidate(s string) (Candidate, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("candidate name cannot be empty")
	}
	return Candidate(s), nil
}

// ParseElectionID parses a string into ElectionID
func ParseElectionID(s string) (ElectionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("election ID cannot be empty")
	}
	return ElectionID(s), nil
}

// Artifact represents any output of an analysis run
type Artifact struct {
	ID        ID           `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactPairwise carries the head-to-head matrix for an election.
	ArtifactPairwise ArtifactKind = "pairwise_matrix"
	// ArtifactRuleResult carries winners and scores for one voting rule.
	ArtifactRuleResult ArtifactKind = "rule_result"
	// ArtifactOpportunity records a tactical voting opportunity for a voter type.
	ArtifactOpportunity ArtifactKind = "tactical_opportunity"
	// ArtifactSweepManifest captures audit metadata for a tactical sweep
	// (rules evaluated, voter types, fingerprint).
	ArtifactSweepManifest ArtifactKind = "sweep_manifest"
	ArtifactBrief         ArtifactKind = "election_brief"
)
