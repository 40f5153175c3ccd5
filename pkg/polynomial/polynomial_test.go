package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/polynomial"
)

func fe(x int64) field.Element {
	if x < 0 {
		return field.FromUint64(uint64(-x)).Neg()
	}
	return field.FromUint64(uint64(x))
}

func TestEvaluateHorner(t *testing.T) {
	// p(x) = 3 + 2x + x^2
	p := polynomial.New([]field.Element{fe(3), fe(2), fe(1)})
	assert.True(t, p.Evaluate(fe(0)).Equal(fe(3)))
	assert.True(t, p.Evaluate(fe(1)).Equal(fe(6)))
	assert.True(t, p.Evaluate(fe(2)).Equal(fe(11)))
}

func TestMulAndDegree(t *testing.T) {
	a := polynomial.New([]field.Element{fe(1), fe(1)}) // 1 + x
	b := polynomial.New([]field.Element{fe(-1), fe(1)}) // -1 + x
	prod := a.Mul(b)                                    // x^2 - 1
	assert.Equal(t, 2, prod.Degree())
	assert.True(t, prod.Evaluate(fe(3)).Equal(fe(8)))
}

func TestDivLinearExact(t *testing.T) {
	// p(x) = (x-2)(x+5) = x^2 + 3x - 10
	p := polynomial.New([]field.Element{fe(-10), fe(3), fe(1)})
	q, r := p.DivLinear(fe(2))
	assert.True(t, r.IsZero())
	assert.True(t, q.Evaluate(fe(0)).Equal(fe(5)))
}

func TestDivLinearRemainder(t *testing.T) {
	p := polynomial.New([]field.Element{fe(3), fe(2), fe(1)})
	_, r := p.DivLinear(fe(5))
	assert.True(t, r.Equal(p.Evaluate(fe(5))))
}

func TestInterpolateRoundTrip(t *testing.T) {
	xs := []field.Element{fe(1), fe(2), fe(3), fe(4)}
	p := polynomial.New([]field.Element{fe(7), fe(0), fe(-3), fe(2)})
	ys := make([]field.Element, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}
	got := polynomial.Interpolate(xs, ys)
	for x := int64(-2); x < 6; x++ {
		assert.True(t, got.Evaluate(fe(x)).Equal(p.Evaluate(fe(x))))
	}
}

func TestLagrangeCoefficientsSumToOneAtZeroForConstant(t *testing.T) {
	xs := []field.Element{fe(1), fe(2), fe(3)}
	coeffs := polynomial.CoefficientsAtZero(xs)
	sum := field.Zero()
	for _, c := range coeffs {
		sum = sum.Add(c)
	}
	assert.True(t, sum.Equal(field.One()))
}

func TestDivExact(t *testing.T) {
	// (x-1)(x-2)(x-3) / (x-1)(x-2) = (x-3)
	divisor := polynomial.New([]field.Element{fe(2), fe(-3), fe(1)}) // (x-1)(x-2)
	p := divisor.Mul(polynomial.New([]field.Element{fe(-3), fe(1)})) // * (x-3)
	q, err := p.DivExact(divisor)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Degree())
	assert.True(t, q.Evaluate(fe(0)).Equal(fe(-3)))
}

func TestDivExactNonExactFails(t *testing.T) {
	p := polynomial.New([]field.Element{fe(1), fe(1)})
	divisor := polynomial.New([]field.Element{fe(0), fe(0), fe(1)})
	_, err := p.DivExact(divisor)
	assert.ErrorIs(t, err, polynomial.ErrNonExactDivision)
}

func TestVanishingPolynomialRoots(t *testing.T) {
	domain := []field.Element{fe(1), fe(2), fe(3)}
	v := polynomial.VanishingPolynomial(domain)
	for _, d := range domain {
		assert.True(t, v.Evaluate(d).IsZero())
	}
	assert.False(t, v.Evaluate(fe(4)).IsZero())
}
