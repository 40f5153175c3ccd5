package sharing

import (
	"io"

	"github.com/luxfi/eos/pkg/field"
)

// AdditiveShare disperses secret into n additive shares that sum to secret,
// the first n-1 drawn uniformly at random and the last fixed so the sum is
// exact. Reconstruction requires all n shares: there is no threshold.
func AdditiveShare(secret field.Element, n int, sharingID uint64, rng io.Reader) (ShareSet, error) {
	if n < 1 {
		return ShareSet{}, ErrDegreeOverflow
	}
	set := NewShareSet(Additive, 0, n, sharingID)
	acc := field.Zero()
	for i := 1; i < n; i++ {
		r, err := field.Random(rng)
		if err != nil {
			return ShareSet{}, err
		}
		set.Put(Share{Index: i, Value: r})
		acc = acc.Add(r)
	}
	set.Put(Share{Index: n, Value: secret.Sub(acc)})
	return set, nil
}

// AdditiveReconstruct sums all n shares. Unlike Shamir, any share missing
// makes reconstruction impossible, so AdditiveReconstruct requires the full
// set.
func AdditiveReconstruct(set ShareSet) (field.Element, error) {
	if set.Scheme != Additive {
		return field.Element{}, ErrSchemeMismatch
	}
	if set.Len() < set.N {
		return field.Element{}, ErrInsufficient
	}
	sum := field.Zero()
	for _, sh := range set.Values() {
		sum = sum.Add(sh.Value)
	}
	return sum, nil
}

// AdditiveAdd returns the share-wise sum of two additive ShareSets, a
// sharing of the sum of the secrets.
func AdditiveAdd(a, b ShareSet) (ShareSet, error) {
	if !a.SameScheme(b) || a.Scheme != Additive {
		return ShareSet{}, ErrSchemeMismatch
	}
	out := NewShareSet(Additive, 0, a.N, a.SharingID)
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

// AdditiveScale returns c scaled into every share of a.
func AdditiveScale(a ShareSet, c field.Element) ShareSet {
	out := NewShareSet(Additive, 0, a.N, a.SharingID)
	for _, sh := range a.Values() {
		out.Put(Share{Index: sh.Index, Value: sh.Value.Mul(c)})
	}
	return out
}
