package delegate_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/eos/pkg/delegate"
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/kzg"
	"github.com/luxfi/eos/pkg/mpc"
	"github.com/luxfi/eos/pkg/sharing"
)

func fe(x uint64) field.Element { return field.FromUint64(x) }

func TestSessionParamsValidate(t *testing.T) {
	base := delegate.SessionParams{N: 5, T: 2, Scheme: sharing.Shamir, Mode: delegate.Isolation, SecurityBits: delegate.Security128, MaxDegree: 8}
	assert.NoError(t, base.Validate())

	tooFewParties := base
	tooFewParties.N = 1
	assert.Error(t, tooFewParties.Validate())

	thresholdTooHigh := base
	thresholdTooHigh.T = 10
	assert.Error(t, thresholdTooHigh.Validate())

	badSecurity := base
	badSecurity.SecurityBits = 17
	assert.Error(t, badSecurity.Validate())

	degreeTooSmall := base
	degreeTooSmall.MaxDegree = 1
	assert.Error(t, degreeTooSmall.Validate())
}

// TestDriverAcceptsSquarePlusY is scenario S6 under both modes: circuit
// computes (x*x)+y on private inputs x=3, y=4, (t,n) = (2,5).
func TestDriverAcceptsSquarePlusY(t *testing.T) {
	for _, mode := range []delegate.ModeKind{delegate.Isolation, delegate.Collaboration} {
		t.Run(mode.String(), func(t *testing.T) {
			srs, err := kzg.Setup(8, rand.Reader)
			require.NoError(t, err)
			params := delegate.SessionParams{N: 5, T: 2, Scheme: sharing.Shamir, Mode: mode, SecurityBits: delegate.Security128, MaxDegree: 8}
			d, err := delegate.New(params, srs, rand.Reader)
			require.NoError(t, err)

			circuit := mpc.SquarePlusYCircuit()
			result, err := d.Run(circuit, nil, map[int]field.Element{0: fe(3), 1: fe(4)})
			require.NoError(t, err)
			assert.Equal(t, delegate.Accepted, d.State())

			var got field.Element
			for _, v := range result.Outputs {
				got = v
			}
			assert.True(t, got.Equal(fe(13)))
			assert.NotEmpty(t, result.Transcript)
		})
	}
}

// TestDriverDeterministicTranscript is property 7: two runs on the same
// inputs reproduce a byte-identical transcript, even though each run draws
// fresh randomness from crypto/rand.
func TestDriverDeterministicTranscript(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	params := delegate.SessionParams{N: 5, T: 2, Scheme: sharing.Shamir, Mode: delegate.Isolation, SecurityBits: delegate.Security128, MaxDegree: 8}

	run := func() mpc.TranscriptHash {
		d, err := delegate.New(params, srs, rand.Reader)
		require.NoError(t, err)
		circuit := mpc.SquarePlusYCircuit()
		result, err := d.Run(circuit, nil, map[int]field.Element{0: fe(3), 1: fe(4)})
		require.NoError(t, err)
		return result.Transcript
	}

	a := run()
	b := run()
	assert.Equal(t, a, b)
}

// TestValidParamsAlwaysSatisfyMultiplicationBound checks that the t <=
// (n+1)/2 bound SessionParams.Validate enforces is exactly what guarantees
// n >= 2t-1, by actually running a multiplication gate for every (n,t) pair
// Validate accepts and confirming mpc.ErrNotEnoughParties never surfaces.
func TestValidParamsAlwaysSatisfyMultiplicationBound(t *testing.T) {
	for n := 2; n <= 24; n++ {
		for tt := 1; tt <= (n+1)/2; tt++ {
			params := delegate.SessionParams{N: n, T: tt, Scheme: sharing.Shamir, Mode: delegate.Isolation, SecurityBits: delegate.Security128, MaxDegree: n}
			require.NoError(t, params.Validate())

			ex := mpc.New(n, tt, sharing.Shamir, mpc.IsolationMode{}, rand.Reader)
			a, err := ex.InputPrivate(fe(3))
			require.NoError(t, err)
			b, err := ex.InputPrivate(fe(4))
			require.NoError(t, err)

			_, err = ex.MulGate(a, b)
			assert.NoError(t, err, "n=%d t=%d should satisfy the multiplication bound", n, tt)
		}
	}
}

func TestNewRejectsInvalidSRS(t *testing.T) {
	srs, err := kzg.Setup(8, rand.Reader)
	require.NoError(t, err)
	srs.G1Powers[3] = srs.G1Powers[3].Add(srs.G1Powers[0])

	params := delegate.SessionParams{N: 5, T: 2, Scheme: sharing.Shamir, Mode: delegate.Isolation, SecurityBits: delegate.Security128, MaxDegree: 8}
	_, err = delegate.New(params, srs, rand.Reader)
	assert.ErrorIs(t, err, kzg.ErrInvalidSRS)
}
