// Package delegate implements the end-to-end delegation driver
// (collaborator C7): it sequences parameter validation, witness
// dispersal, MPC evaluation, KZG commitment and PIOP consistency checking
// into a single Accept/Reject decision, exposing the session as an
// explicit state machine per the protocol's driver design.
package delegate

import (
	"fmt"

	"github.com/luxfi/eos/pkg/sharing"
)

// ModeKind selects the multiplication scheduling strategy a session uses.
type ModeKind int

const (
	Isolation ModeKind = iota
	Collaboration
)

func (m ModeKind) String() string {
	if m == Collaboration {
		return "collaboration"
	}
	return "isolation"
}

// SecurityBits enumerates the supported field/curve sizes a session may
// request.
type SecurityBits int

const (
	Security64  SecurityBits = 64
	Security128 SecurityBits = 128
	Security256 SecurityBits = 256
)

// SessionParams are the enumerated parameters of one delegation session.
type SessionParams struct {
	N            int
	T            int
	Scheme       sharing.SchemeKind
	Mode         ModeKind
	SecurityBits SecurityBits
	MaxDegree    int
}

// Validate checks SessionParams against the session parameter bounds: 2 <=
// n <= 1024, 1 <= t <= (n+1)/2, a recognised security level, and
// max_degree >= n-1.
func (p SessionParams) Validate() error {
	if p.N < 2 || p.N > 1024 {
		return fmt.Errorf("delegate: n=%d out of range [2,1024]", p.N)
	}
	if p.T < 1 || p.T > (p.N+1)/2 {
		return fmt.Errorf("delegate: t=%d out of range [1,(n+1)/2]", p.T)
	}
	switch p.SecurityBits {
	case Security64, Security128, Security256:
	default:
		return fmt.Errorf("delegate: unsupported security_bits %d", p.SecurityBits)
	}
	if p.MaxDegree < p.N-1 {
		return fmt.Errorf("delegate: max_degree=%d too small for n=%d", p.MaxDegree, p.N)
	}
	return nil
}
