package mpc

import (
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/polynomial"
	"github.com/luxfi/eos/pkg/sharing"
)

// mulRound1 is the result of step 1-2 of the multiplication protocol
// (spec 4.2): each party's local product and its fresh reshare of that
// product to every other party.
type mulRound1 struct {
	localProducts sharing.ShareSet            // degree 2(t-1), one point per party
	reshares      map[int]sharing.ShareSet    // sender index -> reshare of that sender's local product
}

// runMulRound1 computes, for every party i, c_i = a_i*b_i and a fresh
// Shamir reshare of c_i at the original threshold degree. It also verifies
// each reshare's internal consistency, surfacing a corrupted reshare as
// ErrMaliciousShare{i} at this point rather than silently propagating it
// into round 2.
func (ex *Executor) runMulRound1(a, b sharing.ShareSet, sharingID uint64) (*mulRound1, error) {
	localProducts, err := sharing.ShamirMulLocal(a, b)
	if err != nil {
		return nil, err
	}
	reshares := make(map[int]sharing.ShareSet, ex.n)
	for _, i := range localProducts.Indices() {
		sh, _ := localProducts.Get(i)
		// ShamirShare takes a threshold, not a raw degree: a.Degree+1
		// reshares at the same degree a itself was shared at.
		rs, err := sharing.ShamirShare(sh.Value, a.Degree+1, ex.n, sharingID+uint64(i), ex.rng)
		if err != nil {
			return nil, err
		}
		if _, err := sharing.ShamirVerifyConsistent(rs); err != nil {
			return nil, ErrMaliciousShare{Party: i}
		}
		reshares[i] = rs
	}
	return &mulRound1{localProducts: localProducts, reshares: reshares}, nil
}

// runMulRound2 recombines round 1's reshares into a fresh degree-(t-1)
// sharing of the product, per step 3 of the protocol: party j computes
// c_j = sum_i lambda_i * c_i^(j), where lambda_i are the Lagrange
// coefficients recovering P(0) from the first 2t-1 party indices.
func (ex *Executor) runMulRound2(r1 *mulRound1, targetDegree int, sharingID uint64) (sharing.ShareSet, error) {
	need := 2*targetDegree + 1
	idx := r1.localProducts.Indices()
	if len(idx) < need {
		return sharing.ShareSet{}, ErrNotEnoughParties
	}
	xs := make([]field.Element, need)
	for k := 0; k < need; k++ {
		xs[k] = field.FromUint64(uint64(idx[k]))
	}
	lambdas := polynomial.CoefficientsAtZero(xs)

	out := sharing.NewShareSet(sharing.Shamir, targetDegree, ex.n, sharingID)
	for _, j := range idx {
		acc := field.Zero()
		for k := 0; k < need; k++ {
			i := idx[k]
			rs, ok := r1.reshares[i]
			if !ok {
				return sharing.ShareSet{}, ErrMaliciousShare{Party: i}
			}
			cij, ok := rs.Get(j)
			if !ok {
				return sharing.ShareSet{}, ErrMaliciousShare{Party: i}
			}
			acc = acc.Add(lambdas[k].Mul(cij.Value))
		}
		out.Put(sharing.Share{Index: j, Value: acc})
	}
	return out, nil
}

// reduceMultiplication runs the full two-round degree-reduction protocol on
// Shamir shares a and b of equal degree t-1, returning a fresh sharing of
// a*b at the same degree t-1.
func (ex *Executor) reduceMultiplication(a, b sharing.ShareSet) (sharing.ShareSet, error) {
	if ex.n < 2*a.Degree+1 {
		return sharing.ShareSet{}, ErrNotEnoughParties
	}
	sharingID := ex.freshSharingID()
	r1, err := ex.runMulRound1(a, b, sharingID)
	if err != nil {
		return sharing.ShareSet{}, err
	}
	return ex.runMulRound2(r1, a.Degree, sharingID)
}
