package mpc

import (
	"errors"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/sharing"
)

// ErrTriplesExhausted is returned when Collaboration mode runs out of
// preprocessed Beaver triples.
var ErrTriplesExhausted = errors.New("mpc: beaver triples exhausted")

// Mode selects how a multiplication gate schedules its messages. Per
// design note, Isolation and Collaboration differ only in strategy, never
// in the value the gate produces; Executor.MulGate is identical regardless
// of which Mode it holds.
type Mode interface {
	Multiply(ex *Executor, a, b sharing.ShareSet) (sharing.ShareSet, error)
	Name() string
}

// IsolationMode runs the two-round degree-reduction protocol directly at
// every multiplication gate: no preprocessing, minimal bandwidth at rest,
// one extra round per gate.
type IsolationMode struct{}

func (IsolationMode) Name() string { return "isolation" }

func (IsolationMode) Multiply(ex *Executor, a, b sharing.ShareSet) (sharing.ShareSet, error) {
	return ex.reduceMultiplication(a, b)
}

// CollaborationMode consumes precomputed Beaver triples to turn each
// multiplication gate into two openings instead of a fresh reshare round.
type CollaborationMode struct {
	triples  []Triple
	consumed int
}

// NewCollaborationMode wraps a preprocessed triple batch generated by
// GenerateTriples.
func NewCollaborationMode(triples []Triple) *CollaborationMode {
	return &CollaborationMode{triples: triples}
}

func (m *CollaborationMode) Name() string { return "collaboration" }

func (m *CollaborationMode) Multiply(ex *Executor, x, y sharing.ShareSet) (sharing.ShareSet, error) {
	if m.consumed >= len(m.triples) {
		return sharing.ShareSet{}, ErrTriplesExhausted
	}
	tr := m.triples[m.consumed]
	m.consumed++

	dShare, err := sharing.ShamirAdd(x, sharing.ShamirScale(tr.A, field.FromUint64(1).Neg()))
	if err != nil {
		return sharing.ShareSet{}, err
	}
	eShare, err := sharing.ShamirAdd(y, sharing.ShamirScale(tr.B, field.FromUint64(1).Neg()))
	if err != nil {
		return sharing.ShareSet{}, err
	}

	d, err := ex.openShamir(dShare)
	if err != nil {
		return sharing.ShareSet{}, err
	}
	e, err := ex.openShamir(eShare)
	if err != nil {
		return sharing.ShareSet{}, err
	}

	// z = ab + d*b + e*a + d*e, built locally from triple shares plus the
	// two publicly opened values d, e.
	z, err := sharing.ShamirAdd(tr.AB, sharing.ShamirScale(tr.B, d))
	if err != nil {
		return sharing.ShareSet{}, err
	}
	z, err = sharing.ShamirAdd(z, sharing.ShamirScale(tr.A, e))
	if err != nil {
		return sharing.ShareSet{}, err
	}
	de := d.Mul(e)
	out := sharing.NewShareSet(sharing.Shamir, z.Degree, z.N, z.SharingID)
	for _, sh := range z.Values() {
		out.Put(sharing.Share{Index: sh.Index, Value: sh.Value.Add(de)})
	}
	return out, nil
}
