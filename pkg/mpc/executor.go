package mpc

import (
	"io"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/hash"
	"github.com/luxfi/eos/pkg/sharing"
)

// Executor evaluates gates on shared wires for a session of n parties at
// threshold t, tracking degree discipline and dispatching multiplication
// through the configured Mode. A single Executor value is used to drive
// the whole in-process simulation of all n parties' local computation plus
// the message exchange a real distributed deployment would perform over
// the wire (collaborator contract out of scope per the external interface
// section); this mirrors how the pack's own MPC reference code drives
// multi-party protocols from a single test harness.
type Executor struct {
	n      int
	t      int
	scheme sharing.SchemeKind
	mode   Mode
	rng    io.Reader
	nextID uint64

	transcript *hash.Transcript
}

// New constructs an Executor for n parties at threshold t, using scheme for
// fresh input sharings and mode for multiplication gate scheduling.
func New(n, t int, scheme sharing.SchemeKind, mode Mode, rng io.Reader) *Executor {
	return &Executor{n: n, t: t, scheme: scheme, mode: mode, rng: rng}
}

func (ex *Executor) freshSharingID() uint64 {
	ex.nextID++
	return ex.nextID
}

// InputPublic returns a cleartext wire value; every party already holds c
// so no sharing takes place.
func (ex *Executor) InputPublic(c field.Element) field.Element { return c }

// InputPrivate shares value fresh under the executor's scheme at the
// session threshold.
func (ex *Executor) InputPrivate(value field.Element) (sharing.ShareSet, error) {
	id := ex.freshSharingID()
	switch ex.scheme {
	case sharing.Shamir:
		return sharing.ShamirShare(value, ex.t, ex.n, id, ex.rng)
	case sharing.Additive:
		return sharing.AdditiveShare(value, ex.n, id, ex.rng)
	default:
		return sharing.ShareSet{}, sharing.ErrSchemeMismatch
	}
}

// AddGate returns a sharing of a+b. a and b may each be a plain
// field.Element (for a public operand) or a sharing.ShareSet.
func (ex *Executor) AddGate(a, b any) (any, error) {
	switch av := a.(type) {
	case field.Element:
		switch bv := b.(type) {
		case field.Element:
			return av.Add(bv), nil
		case sharing.ShareSet:
			return ex.addConst(bv, av), nil
		}
	case sharing.ShareSet:
		switch bv := b.(type) {
		case field.Element:
			return ex.addConst(av, bv), nil
		case sharing.ShareSet:
			return ex.add(av, bv)
		}
	}
	return nil, sharing.ErrSchemeMismatch
}

// MulGate returns a sharing of a*b. a and b may each be a plain
// field.Element or a sharing.ShareSet; multiplying two ShareSets invokes
// the executor's Mode.
func (ex *Executor) MulGate(a, b any) (any, error) {
	switch av := a.(type) {
	case field.Element:
		switch bv := b.(type) {
		case field.Element:
			return av.Mul(bv), nil
		case sharing.ShareSet:
			return ex.scaleConst(bv, av), nil
		}
	case sharing.ShareSet:
		switch bv := b.(type) {
		case field.Element:
			return ex.scaleConst(av, bv), nil
		case sharing.ShareSet:
			if av.Scheme != sharing.Shamir {
				return nil, sharing.ErrSchemeMismatch
			}
			return ex.mode.Multiply(ex, av, bv)
		}
	}
	return nil, sharing.ErrSchemeMismatch
}

// Output reconstructs a wire's value, shared or public.
func (ex *Executor) Output(a any) (field.Element, error) {
	switch v := a.(type) {
	case field.Element:
		return v, nil
	case sharing.ShareSet:
		return ex.open(v)
	default:
		return field.Element{}, sharing.ErrSchemeMismatch
	}
}

func (ex *Executor) add(a, b sharing.ShareSet) (sharing.ShareSet, error) {
	if a.Scheme != b.Scheme {
		return sharing.ShareSet{}, sharing.ErrSchemeMismatch
	}
	if a.Scheme == sharing.Shamir {
		return sharing.ShamirAdd(a, b)
	}
	return sharing.AdditiveAdd(a, b)
}

func (ex *Executor) addConst(s sharing.ShareSet, c field.Element) sharing.ShareSet {
	out := sharing.NewShareSet(s.Scheme, s.Degree, s.N, s.SharingID)
	for _, sh := range s.Values() {
		v := sh.Value
		if s.Scheme == sharing.Additive {
			if sh.Index == s.N {
				v = v.Add(c)
			}
		} else {
			v = v.Add(c)
		}
		out.Put(sharing.Share{Index: sh.Index, Value: v})
	}
	return out
}

func (ex *Executor) scaleConst(s sharing.ShareSet, c field.Element) sharing.ShareSet {
	if s.Scheme == sharing.Shamir {
		return sharing.ShamirScale(s, c)
	}
	return sharing.AdditiveScale(s, c)
}

// open reconstructs a ShareSet's secret, using whichever reconstruction
// the scheme supports. For Shamir it uses the consistency-checked
// reconstruction so a corrupted share surfaces as ErrInconsistent rather
// than silently producing a wrong value.
func (ex *Executor) open(s sharing.ShareSet) (field.Element, error) {
	if s.Scheme == sharing.Shamir {
		return sharing.ShamirVerifyConsistent(s)
	}
	return sharing.AdditiveReconstruct(s)
}

func (ex *Executor) openShamir(s sharing.ShareSet) (field.Element, error) { return ex.open(s) }
