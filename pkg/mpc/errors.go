package mpc

import "fmt"

// ErrNotEnoughParties is returned when the party count cannot support the
// multiplication protocol's n >= 2t-1 requirement.
var ErrNotEnoughParties = fmt.Errorf("mpc: not enough parties for threshold")

// ErrMaliciousShare reports that party Party's contribution to a
// multiplication gate failed a consistency check.
type ErrMaliciousShare struct{ Party int }

func (e ErrMaliciousShare) Error() string {
	return fmt.Sprintf("mpc: malicious share from party %d", e.Party)
}

// ErrTimeout reports that a party failed to deliver its round message for
// a gate before the caller-supplied deadline.
type ErrTimeout struct {
	Gate int
	Peer int
}

func (e ErrTimeout) Error() string {
	return fmt.Sprintf("mpc: timeout waiting for party %d at gate %d", e.Peer, e.Gate)
}

// ErrUnknownWire reports a gate referencing a wire index that has not been
// evaluated, indicating a malformed (non topologically-sorted) circuit.
type ErrUnknownWire struct{ Wire int }

func (e ErrUnknownWire) Error() string {
	return fmt.Sprintf("mpc: reference to unevaluated wire %d", e.Wire)
}

// ErrEqFailed reports that an Eq gate's two operands evaluated unequal.
type ErrEqFailed struct{ Gate int }

func (e ErrEqFailed) Error() string {
	return fmt.Sprintf("mpc: equality assertion failed at gate %d", e.Gate)
}
