package polynomial

import "github.com/luxfi/eos/pkg/field"

// CoefficientsAt returns, for each index i, the Lagrange basis coefficient
// L_i(at) such that for any polynomial f of degree < len(xs):
//
//	f(at) = sum_i coefficients[i] * f(xs[i])
//
// This is the single piece of machinery both the Shamir reconstruct (at =
// 0) and the MPC executor's multiplication degree-reduction (at = 0, but
// applied pointwise to re-shared values, per spec 4.2 step 3) are built on.
func CoefficientsAt(xs []field.Element, at field.Element) []field.Element {
	n := len(xs)
	coeffs := make([]field.Element, n)
	for i := 0; i < n; i++ {
		num := field.One()
		den := field.One()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			num = num.Mul(at.Sub(xs[j]))
			den = den.Mul(xs[i].Sub(xs[j]))
		}
		coeffs[i] = num.Mul(den.Inv())
	}
	return coeffs
}

// CoefficientsAtZero is CoefficientsAt(xs, field.Zero()), the common case
// used to recover a Shamir secret.
func CoefficientsAtZero(xs []field.Element) []field.Element {
	return CoefficientsAt(xs, field.Zero())
}

// InterpolateAtZero evaluates the unique polynomial of degree < len(xs)
// through the given points, at x = 0, without materializing the
// polynomial's coefficients.
func InterpolateAtZero(xs, ys []field.Element) field.Element {
	coeffs := CoefficientsAtZero(xs)
	acc := field.Zero()
	for i, c := range coeffs {
		acc = acc.Add(c.Mul(ys[i]))
	}
	return acc
}

// Interpolate builds the unique polynomial of degree < len(xs) passing
// through the given (x, y) pairs.
func Interpolate(xs, ys []field.Element) Polynomial {
	result := Zero()
	for i := range xs {
		numerator := Constant(field.One())
		denom := field.One()
		for j := range xs {
			if i == j {
				continue
			}
			// (x - xs[j])
			factor := New([]field.Element{xs[j].Neg(), field.One()})
			numerator = numerator.Mul(factor)
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		term := numerator.Scale(ys[i].Mul(denom.Inv()))
		result = result.Add(term)
	}
	return result
}

// VanishingPolynomial returns the monic polynomial V with roots exactly the
// given domain points: V(x) = prod (x - d).
func VanishingPolynomial(domain []field.Element) Polynomial {
	v := Constant(field.One())
	for _, d := range domain {
		v = v.Mul(New([]field.Element{d.Neg(), field.One()}))
	}
	return v
}
