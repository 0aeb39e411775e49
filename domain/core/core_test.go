package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.False(t, a.IsEmpty())
	assert.NotEqual(t, a, b)

	// UUID v7 is time-ordered, so fresh IDs sort after older ones.
	assert.Less(t, a.String(), b.String())
}

func TestParseCandidate(t *testing.T) {
	c, err := ParseCandidate("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.String())

	for _, bad := range []string{"", "   "} {
		_, err := ParseCandidate(bad)
		assert.Error(t, err)
	}
}

func TestHash(t *testing.T) {
	h := NewHash([]byte("hello"))
	assert.Len(t, h.String(), 64)
	assert.True(t, h.Equals(NewHash([]byte("hello"))))
	assert.False(t, h.Equals(NewHash([]byte("world"))))
	assert.False(t, h.IsEmpty())
}

func TestComputeElectionFingerprint(t *testing.T) {
	candidates := []Candidate{"A", "B"}

	same := ComputeElectionFingerprint(candidates, []string{"A>B", "B>A"})
	assert.Equal(t, same, ComputeElectionFingerprint(candidates, []string{"A>B", "B>A"}))

	// Ballot order matters: fingerprints identify the exact workbook.
	assert.NotEqual(t, same, ComputeElectionFingerprint(candidates, []string{"B>A", "A>B"}))

	// The candidate/ballot boundary is unambiguous.
	assert.NotEqual(t,
		ComputeElectionFingerprint([]Candidate{"A", "B"}, []string{"C"}),
		ComputeElectionFingerprint([]Candidate{"A"}, []string{"B", "C"}))
}

func TestComputeSweepFingerprint(t *testing.T) {
	e := ComputeElectionFingerprint([]Candidate{"A"}, []string{"A"})

	same := ComputeSweepFingerprint(e, []string{"copeland", "borda"})
	assert.Equal(t, same, ComputeSweepFingerprint(e, []string{"copeland", "borda"}))
	assert.NotEqual(t, same, ComputeSweepFingerprint(e, []string{"borda", "copeland"}))
}

func TestTimestampJSON(t *testing.T) {
	ts := Now()
	data, err := json.Marshal(ts)
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ts.Time().Unix(), back.Time().Unix())
	assert.False(t, back.IsZero())
}
