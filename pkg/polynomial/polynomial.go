// Package polynomial implements dense univariate polynomials over the
// field defined by pkg/field (collaborator C2): evaluation, interpolation,
// multiplication, and exact division by a linear factor (x - a), which
// pkg/kzg needs to build KZG opening proofs.
package polynomial

import (
	"errors"

	"github.com/luxfi/eos/pkg/field"
)

// ErrNonExactDivision is returned by DivExact when the dividend is not an
// exact multiple of the divisor.
var ErrNonExactDivision = errors.New("polynomial: non-exact division")

// Polynomial holds coefficients in ascending order of degree:
// coeffs[i] is the coefficient of x^i. The zero polynomial is represented
// by an empty (or nil) slice; New trims trailing zero coefficients so that
// the leading coefficient of a non-zero polynomial is always non-zero.
type Polynomial struct {
	coeffs []field.Element
}

// New builds a Polynomial from coefficients in ascending degree order,
// trimming trailing zeros.
func New(coeffs []field.Element) Polynomial {
	trimmed := make([]field.Element, len(coeffs))
	copy(trimmed, coeffs)
	for len(trimmed) > 0 && trimmed[len(trimmed)-1].IsZero() {
		trimmed = trimmed[:len(trimmed)-1]
	}
	return Polynomial{coeffs: trimmed}
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// Constant returns the degree-0 polynomial with the given value.
func Constant(c field.Element) Polynomial { return New([]field.Element{c}) }

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the coefficient slice, ascending degree.
func (p Polynomial) Coefficients() []field.Element {
	out := make([]field.Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Evaluate computes p(x) by Horner's method.
func (p Polynomial) Evaluate(x field.Element) field.Element {
	acc := field.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// Add returns p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(other.coeffs) > n {
		n = len(other.coeffs)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		var a, b field.Element
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		} else {
			a = field.Zero()
		}
		if i < len(other.coeffs) {
			b = other.coeffs[i]
		} else {
			b = field.Zero()
		}
		out[i] = a.Add(b)
	}
	return New(out)
}

// Sub returns p - other.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Scale(field.FromUint64(1).Neg()))
}

// Scale returns c*p.
func (p Polynomial) Scale(c field.Element) Polynomial {
	out := make([]field.Element, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return New(out)
}

// Mul returns p * other via convolution.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	if p.IsZero() || other.IsZero() {
		return Zero()
	}
	out := make([]field.Element, len(p.coeffs)+len(other.coeffs)-1)
	for i := range out {
		out[i] = field.Zero()
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range other.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return New(out)
}

// DivLinear divides p by (x - a) exactly via synthetic division, returning
// the quotient and the remainder p(a). Callers computing a KZG opening
// witness must check the remainder is zero (it will be, by construction,
// whenever a is the claimed evaluation point and y = p(a)); a non-zero
// remainder here indicates the caller passed the wrong y and is a
// programming error, not a protocol failure.
func (p Polynomial) DivLinear(a field.Element) (quotient Polynomial, remainder field.Element) {
	if p.IsZero() {
		return Zero(), field.Zero()
	}
	n := len(p.coeffs)
	q := make([]field.Element, n-1)
	carry := p.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		q[i] = carry
		carry = p.coeffs[i].Add(carry.Mul(a))
	}
	return New(q), carry
}

// DivExact divides p by divisor via long division, returning
// ErrNonExactDivision if there is a non-zero remainder. Used by the PIOP
// checker to compute the quotient polynomial H = (A*W+B*Z-C)/V, which is
// exact by construction whenever the underlying identity holds.
func (p Polynomial) DivExact(divisor Polynomial) (Polynomial, error) {
	if divisor.IsZero() {
		return Zero(), ErrNonExactDivision
	}
	remainder := New(p.coeffs)
	dDeg := divisor.Degree()
	dLeadInv := divisor.coeffs[dDeg].Inv()

	if remainder.Degree() < dDeg {
		if remainder.IsZero() {
			return Zero(), nil
		}
		return Zero(), ErrNonExactDivision
	}

	qCoeffs := make([]field.Element, remainder.Degree()-dDeg+1)
	for !remainder.IsZero() && remainder.Degree() >= dDeg {
		curDeg := remainder.Degree()
		shift := curDeg - dDeg
		coeff := remainder.coeffs[curDeg].Mul(dLeadInv)
		qCoeffs[shift] = coeff

		sub := make([]field.Element, curDeg+1)
		for i := range sub {
			sub[i] = field.Zero()
		}
		for i, c := range divisor.coeffs {
			sub[i+shift] = c.Mul(coeff)
		}
		remainder = remainder.Sub(New(sub))
	}
	if !remainder.IsZero() {
		return Zero(), ErrNonExactDivision
	}
	return New(qCoeffs), nil
}

// RandomDegree samples a uniformly random polynomial of the given degree
// with a fixed constant term (used by Shamir sharing: the constant term is
// the secret, the rest of the coefficients are the sharing randomness).
func RandomDegree(degree int, constantTerm field.Element, sample func() (field.Element, error)) (Polynomial, error) {
	coeffs := make([]field.Element, degree+1)
	coeffs[0] = constantTerm
	for i := 1; i <= degree; i++ {
		c, err := sample()
		if err != nil {
			return Polynomial{}, err
		}
		coeffs[i] = c
	}
	return New(coeffs), nil
}
