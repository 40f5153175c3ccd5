package field_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/eos/pkg/field"
)

func TestAddSubInverse(t *testing.T) {
	a, err := field.Random(rand.Reader)
	require.NoError(t, err)
	b, err := field.Random(rand.Reader)
	require.NoError(t, err)

	sum := a.Add(b)
	back := sum.Sub(b)
	assert.True(t, back.Equal(a))
}

func TestMulInverse(t *testing.T) {
	a, err := field.Random(rand.Reader)
	require.NoError(t, err)
	for a.IsZero() {
		a, err = field.Random(rand.Reader)
		require.NoError(t, err)
	}
	inv := a.Inv()
	assert.True(t, a.Mul(inv).Equal(field.One()))
}

func TestZeroOneIdentities(t *testing.T) {
	a, err := field.Random(rand.Reader)
	require.NoError(t, err)
	assert.True(t, a.Add(field.Zero()).Equal(a))
	assert.True(t, a.Mul(field.One()).Equal(a))
	assert.True(t, a.Sub(a).IsZero())
}

func TestMarshalRoundTrip(t *testing.T) {
	a, err := field.Random(rand.Reader)
	require.NoError(t, err)
	data, err := a.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 32)

	var b field.Element
	require.NoError(t, b.UnmarshalBinary(data))
	assert.True(t, a.Equal(b))
}

func TestFromUint64(t *testing.T) {
	a := field.FromUint64(123)
	b := field.FromUint64(100).Add(field.FromUint64(23))
	assert.True(t, a.Equal(b))
}
