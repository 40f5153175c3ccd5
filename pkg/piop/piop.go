// Package piop implements the PIOP consistency checker (collaborator C6):
// a Fiat-Shamir non-interactive check that the witness, evaluation and
// quotient polynomials a set of workers claim to have produced satisfy
//
//	A(rho)*W(rho) + B(rho)*Z(rho) - C(rho) = H(rho)*V(rho)
//
// at a verifier-chosen random point rho, binding the commitments the
// workers published to the algebraic relation the circuit defines.
package piop

import (
	"github.com/luxfi/eos/pkg/curve"
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/hash"
	"github.com/luxfi/eos/pkg/kzg"
	"github.com/luxfi/eos/pkg/polynomial"
)

// Statement holds the circuit-shape polynomials A, B, C and the vanishing
// polynomial V of the evaluation domain, all known to the verifier ahead
// of time (they depend only on the circuit, not the witness).
type Statement struct {
	A, B, C polynomial.Polynomial
	V       polynomial.Polynomial
}

// Proof is the non-interactive consistency proof a worker publishes: its
// three commitments, the claimed evaluations at the Fiat-Shamir point, and
// a single combined KZG witness covering all three.
type Proof struct {
	CmW, CmZ, CmH curve.G1
	YW, YZ, YH    field.Element
	Witness       curve.G1
}

// Prove builds a Proof that w, z and h are consistent with stmt at a
// Fiat-Shamir-derived point. tr must be fresh or already carry exactly the
// public context the verifier will also absorb before calling Verify.
func Prove(srs kzg.SRS, stmt Statement, w, z, h polynomial.Polynomial, tr *hash.Transcript) (Proof, error) {
	cmW, err := kzg.Commit(srs, w)
	if err != nil {
		return Proof{}, err
	}
	cmZ, err := kzg.Commit(srs, z)
	if err != nil {
		return Proof{}, err
	}
	cmH, err := kzg.Commit(srs, h)
	if err != nil {
		return Proof{}, err
	}
	tr.AppendPoint("piop/cm_w", cmW)
	tr.AppendPoint("piop/cm_z", cmZ)
	tr.AppendPoint("piop/cm_h", cmH)
	rho := tr.Challenge("piop/rho")

	op, err := kzg.BatchOpen(srs, []polynomial.Polynomial{w, z, h}, rho, tr)
	if err != nil {
		return Proof{}, err
	}
	return Proof{
		CmW: cmW, CmZ: cmZ, CmH: cmH,
		YW: w.Evaluate(rho), YZ: z.Evaluate(rho), YH: h.Evaluate(rho),
		Witness: op.Witness,
	}, nil
}

// Verdict reports the outcome of Verify with enough detail for the
// delegation driver to pick a stable reject reason.
type Verdict struct {
	OpeningValid  bool
	IdentityValid bool
}

// Accepted reports whether both halves of the check passed.
func (v Verdict) Accepted() bool { return v.OpeningValid && v.IdentityValid }

// Verify recomputes the Fiat-Shamir point from proof's published
// commitments, checks the combined KZG opening, and independently checks
// the algebraic identity using the claimed evaluations. tr must absorb
// exactly the same public context, in the same order, that Prove's caller
// used.
func Verify(srs kzg.SRS, stmt Statement, proof Proof, tr *hash.Transcript) Verdict {
	tr.AppendPoint("piop/cm_w", proof.CmW)
	tr.AppendPoint("piop/cm_z", proof.CmZ)
	tr.AppendPoint("piop/cm_h", proof.CmH)
	rho := tr.Challenge("piop/rho")
	gamma := tr.Challenge("kzg/batch-gamma")

	combinedCm := kzg.CombineCommitments([]curve.G1{proof.CmW, proof.CmZ, proof.CmH}, gamma)
	combinedValue := kzg.CombineValues([]field.Element{proof.YW, proof.YZ, proof.YH}, gamma)
	openingValid := kzg.Verify(srs, combinedCm, kzg.Opening{Point: rho, Value: combinedValue, Witness: proof.Witness})

	lhs := stmt.A.Evaluate(rho).Mul(proof.YW).
		Add(stmt.B.Evaluate(rho).Mul(proof.YZ)).
		Sub(stmt.C.Evaluate(rho))
	rhs := proof.YH.Mul(stmt.V.Evaluate(rho))
	identityValid := lhs.Equal(rhs)

	return Verdict{OpeningValid: openingValid, IdentityValid: identityValid}
}
