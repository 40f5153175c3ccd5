package mpc_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/mpc"
	"github.com/luxfi/eos/pkg/sharing"
)

func fe(x uint64) field.Element { return field.FromUint64(x) }

// TestAddGateRoundTrip is scenario S3: a=10, b=20, (t,n)=(2,5).
func TestAddGateRoundTrip(t *testing.T) {
	ex := mpc.New(5, 2, sharing.Shamir, mpc.IsolationMode{}, rand.Reader)
	a, err := ex.InputPrivate(fe(10))
	require.NoError(t, err)
	b, err := ex.InputPrivate(fe(20))
	require.NoError(t, err)

	sumAny, err := ex.AddGate(a, b)
	require.NoError(t, err)
	sum := sumAny.(sharing.ShareSet)

	got, err := ex.Output(sum.Subset([]int{1, 2}))
	require.NoError(t, err)
	assert.True(t, got.Equal(fe(30)))
}

// TestMulGateRoundTrip is scenario S4: a=7, b=6, (t,n)=(2,5), n>=2t-1=3.
func TestMulGateRoundTrip(t *testing.T) {
	ex := mpc.New(5, 2, sharing.Shamir, mpc.IsolationMode{}, rand.Reader)
	a, err := ex.InputPrivate(fe(7))
	require.NoError(t, err)
	b, err := ex.InputPrivate(fe(6))
	require.NoError(t, err)

	prodAny, err := ex.MulGate(a, b)
	require.NoError(t, err)
	prod := prodAny.(sharing.ShareSet)
	assert.Equal(t, a.Degree, prod.Degree, "multiplication protocol must reduce degree back to t-1")

	got, err := ex.Output(prod.Subset([]int{4, 5}))
	require.NoError(t, err)
	assert.True(t, got.Equal(fe(42)))
}

// TestModeEquivalence is property 5: the same circuit on the same inputs
// produces the same result regardless of mode (each executor draws its own
// randomness from crypto/rand).
func TestModeEquivalence(t *testing.T) {
	circuit := mpc.SquarePlusYCircuit()
	privateInputs := map[int]field.Element{0: fe(3), 1: fe(4)}

	isoEx := mpc.New(5, 2, sharing.Shamir, mpc.IsolationMode{}, rand.Reader)
	isoOut, err := isoEx.Eval(circuit, nil, privateInputs)
	require.NoError(t, err)

	triples, err := mpc.GenerateTriples(4, 2, 5, rand.Reader)
	require.NoError(t, err)
	collabEx := mpc.New(5, 2, sharing.Shamir, mpc.NewCollaborationMode(triples), rand.Reader)
	collabOut, err := collabEx.Eval(circuit, nil, privateInputs)
	require.NoError(t, err)

	for wire, v := range isoOut {
		assert.True(t, v.Equal(collabOut[wire]))
	}
}

// TestMulGateNotEnoughParties checks ErrNotEnoughParties is raised
// when n < 2t-1.
func TestMulGateNotEnoughParties(t *testing.T) {
	ex := mpc.New(4, 3, sharing.Shamir, mpc.IsolationMode{}, rand.Reader)
	a, err := ex.InputPrivate(fe(2))
	require.NoError(t, err)
	b, err := ex.InputPrivate(fe(3))
	require.NoError(t, err)

	_, err = ex.MulGate(a, b)
	assert.ErrorIs(t, err, mpc.ErrNotEnoughParties)
}
