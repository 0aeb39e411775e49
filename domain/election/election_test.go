package election

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goelect/domain/ballot"
	"goelect/domain/core"
)

var abc = []core.Candidate{"A", "B", "C"}

func TestNew_Valid(t *testing.T) {
	e, err := New(abc, []ballot.Ballot{
		ballot.MustNew("A", "B", "C"),
		ballot.MustNew("C", "B", "A"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, e.NumCandidates())
	assert.Equal(t, 2, e.NumBallots())

	i, ok := e.IndexOf("B")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, core.Candidate("B"), e.CandidateAt(1))
}

func TestNew_RejectsEmptyCandidates(t *testing.T) {
	_, err := New(nil, []ballot.Ballot{ballot.MustNew("A")})
	assert.ErrorIs(t, err, core.ErrEmptyCandidates)
}

func TestNew_RejectsNoBallots(t *testing.T) {
	_, err := New(abc, nil)
	assert.ErrorIs(t, err, core.ErrEmptyElection)
}

func TestNew_RejectsDuplicateCandidate(t *testing.T) {
	_, err := New([]core.Candidate{"A", "B", "A"}, []ballot.Ballot{ballot.MustNew("A", "B")})
	assert.ErrorIs(t, err, core.ErrDuplicateCandidate)
}

func TestNew_RejectsPartialBallot(t *testing.T) {
	_, err := New(abc, []ballot.Ballot{ballot.MustNew("A", "B")})
	assert.ErrorIs(t, err, core.ErrCandidateMismatch)
}

func TestNew_RejectsForeignCandidate(t *testing.T) {
	_, err := New(abc, []ballot.Ballot{ballot.MustNew("A", "B", "X")})
	assert.ErrorIs(t, err, core.ErrCandidateMismatch)
}

func TestFingerprint_DeterministicAndOrderSensitive(t *testing.T) {
	ballots := []ballot.Ballot{
		ballot.MustNew("A", "B", "C"),
		ballot.MustNew("B", "A", "C"),
	}

	e1, err := New(abc, ballots)
	require.NoError(t, err)
	e2, err := New(abc, ballots)
	require.NoError(t, err)
	assert.Equal(t, e1.Fingerprint(), e2.Fingerprint())

	e3, err := New(abc, []ballot.Ballot{ballots[0], ballots[0]})
	require.NoError(t, err)
	assert.NotEqual(t, e1.Fingerprint(), e3.Fingerprint())
}

func TestWithBallots_DoesNotMutateReceiver(t *testing.T) {
	original := []ballot.Ballot{
		ballot.MustNew("A", "B", "C"),
		ballot.MustNew("B", "A", "C"),
	}
	e, err := New(abc, original)
	require.NoError(t, err)

	substituted, err := e.WithBallots([]ballot.Ballot{
		ballot.MustNew("C", "B", "A"),
		ballot.MustNew("C", "B", "A"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, e.Fingerprint(), substituted.Fingerprint())
	assert.True(t, e.Ballots()[0].Equal(original[0]))

	// Substituted collections are validated like any other.
	_, err = e.WithBallots([]ballot.Ballot{ballot.MustNew("A", "B")})
	assert.ErrorIs(t, err, core.ErrCandidateMismatch)
}

func TestVoterTypes(t *testing.T) {
	e, err := New(abc, []ballot.Ballot{
		ballot.MustNew("A", "B", "C"),
		ballot.MustNew("B", "A", "C"),
		ballot.MustNew("A", "B", "C"),
	})
	require.NoError(t, err)

	types := e.VoterTypes()
	require.Len(t, types, 2)
	assert.Equal(t, 2, types[0].Count)
	assert.Equal(t, 1, types[1].Count)
}
