package delegate

import (
	"errors"

	"github.com/luxfi/eos/internal/wire"
	"github.com/luxfi/eos/pkg/kzg"
	"github.com/luxfi/eos/pkg/mpc"
	"github.com/luxfi/eos/pkg/sharing"
)

// RejectReason is the stable, distinguishable code every Reject outcome
// carries.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonInsufficient
	ReasonInconsistent
	ReasonDegreeOverflow
	ReasonMaliciousShare
	ReasonCommitmentInvalid
	ReasonIdentityFailed
	ReasonNotEnoughParties
	ReasonTimeout
	ReasonEncodingError
)

func (r RejectReason) String() string {
	switch r {
	case ReasonInsufficient:
		return "insufficient"
	case ReasonInconsistent:
		return "inconsistent"
	case ReasonDegreeOverflow:
		return "degree_overflow"
	case ReasonMaliciousShare:
		return "malicious_share"
	case ReasonCommitmentInvalid:
		return "commitment_invalid"
	case ReasonIdentityFailed:
		return "identity_failed"
	case ReasonNotEnoughParties:
		return "not_enough_parties"
	case ReasonTimeout:
		return "timeout"
	case ReasonEncodingError:
		return "encoding_error"
	default:
		return "none"
	}
}

// classify maps an error raised by a component call to a stable reject
// reason drawn from the fixed taxonomy: components never swallow errors,
// and this driver is the sole place that turns them into an
// Accept/Reject decision.
func classify(err error) RejectReason {
	if err == nil {
		return ReasonNone
	}
	switch {
	case errors.Is(err, sharing.ErrInsufficient):
		return ReasonInsufficient
	case errors.Is(err, sharing.ErrInconsistent):
		return ReasonInconsistent
	case errors.Is(err, sharing.ErrDegreeOverflow):
		return ReasonDegreeOverflow
	case errors.Is(err, mpc.ErrNotEnoughParties):
		return ReasonNotEnoughParties
	case errors.Is(err, wire.ErrEncoding):
		return ReasonEncodingError
	}
	var malicious mpc.ErrMaliciousShare
	if errors.As(err, &malicious) {
		return ReasonMaliciousShare
	}
	var timeout mpc.ErrTimeout
	if errors.As(err, &timeout) {
		return ReasonTimeout
	}
	var degToo kzg.ErrDegreeTooLarge
	if errors.As(err, &degToo) {
		return ReasonCommitmentInvalid
	}
	if errors.Is(err, kzg.ErrInvalidSRS) {
		return ReasonCommitmentInvalid
	}
	var eqFail mpc.ErrEqFailed
	if errors.As(err, &eqFail) {
		return ReasonIdentityFailed
	}
	return ReasonCommitmentInvalid
}
