package sharing

import (
	"io"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/polynomial"
)

// ShamirShare disperses secret into n packed Shamir shares at threshold t,
// evaluating a random degree-(t-1) polynomial P(x) = secret + r_1*x + ... +
// r_{t-1}*x^{t-1} with constant term secret at x = 1..n. Reconstruction
// then requires any t of the n shares.
//
// Grounded on TNO-MPC's ShareFiniteField (a random polynomial is sampled and
// evaluated at distinct points), generalized to an explicit threshold
// parameter so the MPC executor can track degree growth across Mul gates.
func ShamirShare(secret field.Element, t, n int, sharingID uint64, rng io.Reader) (ShareSet, error) {
	degree := t - 1
	if degree < 0 || degree >= n {
		return ShareSet{}, ErrDegreeOverflow
	}
	poly, err := polynomial.RandomDegree(degree, secret, func() (field.Element, error) {
		return field.Random(rng)
	})
	if err != nil {
		return ShareSet{}, err
	}
	set := NewShareSet(Shamir, degree, n, sharingID)
	for i := 1; i <= n; i++ {
		x := field.FromUint64(uint64(i))
		set.Put(Share{Index: i, Value: poly.Evaluate(x)})
	}
	return set, nil
}

// ShamirReconstruct recovers the secret from a ShareSet, requiring at least
// Degree+1 shares to be present. It does not itself detect malicious
// shares among a larger-than-threshold set; use ShamirVerifyConsistent for
// that.
func ShamirReconstruct(set ShareSet) (field.Element, error) {
	if set.Scheme != Shamir {
		return field.Element{}, ErrSchemeMismatch
	}
	if set.Len() < set.Degree+1 {
		return field.Element{}, ErrInsufficient
	}
	vals := set.Values()
	xs := make([]field.Element, len(vals))
	ys := make([]field.Element, len(vals))
	for i, sh := range vals {
		xs[i] = field.FromUint64(uint64(sh.Index))
		ys[i] = sh.Value
	}
	return polynomial.InterpolateAtZero(xs, ys), nil
}

// ShamirVerifyConsistent reconstructs the secret from every sliding window
// of degree+1 shares and reports ErrInconsistent if any two windows
// disagree. A single corrupted share shows up as a disagreement between
// the windows that include it and the windows that don't, which a single
// two-subset check (as used by a minimal quorum) can miss if the corrupted
// index falls outside both checked subsets; callers operating exactly at
// the n = 2t-1 operational minimum should supply extra shares when
// integrity checking matters, not just reconstruction.
func ShamirVerifyConsistent(set ShareSet) (field.Element, error) {
	need := set.Degree + 1
	idx := set.Indices()
	if len(idx) < need {
		return field.Element{}, ErrInsufficient
	}
	first, err := ShamirReconstruct(set.Subset(idx[:need]))
	if err != nil {
		return field.Element{}, err
	}
	for start := 1; start+need <= len(idx); start++ {
		v, err := ShamirReconstruct(set.Subset(idx[start : start+need]))
		if err != nil {
			return field.Element{}, err
		}
		if !v.Equal(first) {
			return field.Element{}, ErrInconsistent
		}
	}
	return first, nil
}

// ShamirAdd returns the share-wise sum of two Shamir ShareSets of the same
// sharing shape, which is a valid sharing of the sum of the secrets at
// max(a.Degree, b.Degree).
func ShamirAdd(a, b ShareSet) (ShareSet, error) {
	if !a.SameScheme(b) || a.Scheme != Shamir {
		return ShareSet{}, ErrSchemeMismatch
	}
	degree := a.Degree
	if b.Degree > degree {
		degree = b.Degree
	}
	out := NewShareSet(Shamir, degree, a.N, a.SharingID)
	for _, i := range a.Indices() {
		av, aok := a.Get(i)
		bv, bok := b.Get(i)
		if !aok || !bok {
			continue
		}
		out.Put(Share{Index: i, Value: av.Value.Add(bv.Value)})
	}
	return out, nil
}

// ShamirScale returns c scaled into every share of a, a sharing of c*secret
// at the same degree.
func ShamirScale(a ShareSet, c field.Element) ShareSet {
	out := NewShareSet(Shamir, a.Degree, a.N, a.SharingID)
	for _, sh := range a.Values() {
		out.Put(Share{Index: sh.Index, Value: sh.Value.Mul(c)})
	}
	return out
}

// ShamirMulLocal returns the share-wise product of two Shamir ShareSets:
// each party multiplies its own points locally, producing a sharing of the
// product secret at degree a.Degree+b.Degree. This is NOT yet reduced back
// to a usable sharing -- the MPC executor's multiplication protocol
// (pkg/mpc) re-shares and Lagrange-recombines the result in a single
// round. ShamirMulLocal fails with ErrDegreeOverflow if the resulting
// degree would make the product unreconstructable by the party set, i.e.
// when a.Degree+b.Degree > N-1.
func ShamirMulLocal(a, b ShareSet) (ShareSet, error) {
	if !a.SameScheme(b) || a.Scheme != Shamir {
		return ShareSet{}, ErrSchemeMismatch
	}
	degree := a.Degree + b.Degree
	if degree > a.N-1 {
		return ShareSet{}, ErrDegreeOverflow
	}
	out := NewShareSet(Shamir, degree, a.N, a.SharingID)
	for _, i := range a.Indices() {
		av, aok := a.Get(i)
		bv, bok := b.Get(i)
		if !aok || !bok {
			continue
		}
		out.Put(Share{Index: i, Value: av.Value.Mul(bv.Value)})
	}
	return out, nil
}
