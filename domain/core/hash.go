package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Domain-specific hash types
type (
	ElectionFingerprint Hash
	SweepFingerprint    Hash
)

// String conversions
func (h ElectionFingerprint) String() string { return Hash(h).String() }
func (h SweepFingerprint) String() string    { return Hash(h).String() }

// ComputeElectionFingerprint hashes the candidate universe and the ordered
// ballot keys. The same candidates and ballots always yield the same
// fingerprint, which is how round-trip determinism is asserted.
func ComputeElectionFingerprint(candidates []Candidate, ballotKeys []string) ElectionFingerprint {
	var data strings.Builder
	for _, c := range candidates {
		data.WriteString(c.String())
		data.WriteByte('\x00')
	}
	data.WriteByte('\x01')
	for _, k := range ballotKeys {
		data.WriteString(k)
		data.WriteByte('\x00')
	}
	return ElectionFingerprint(NewHash([]byte(data.String())))
}

// ComputeSweepFingerprint hashes an election fingerprint together with the
// rules evaluated so identical sweeps are recognizable across runs.
func ComputeSweepFingerprint(election ElectionFingerprint, ruleNames []string) SweepFingerprint {
	var data strings.Builder
	data.WriteString(election.String())
	for _, name := range ruleNames {
		data.WriteByte('\x00')
		data.WriteString(name)
	}
	return SweepFingerprint(NewHash([]byte(data.String())))
}
