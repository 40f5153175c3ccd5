// Package kzg implements the KZG polynomial commitment scheme
// (collaborator C5): trusted setup, commit, point opening, same-point
// batch opening, and verification, built on pkg/curve's bilinear pairing
// and pkg/hash's Fiat-Shamir transcript.
//
// Grounded on the reference KZG implementation in other_examples/ built on
// the same go-ethereum bn256 pairing package this module's pkg/curve
// wraps.
package kzg

import (
	"fmt"
	"io"

	"github.com/luxfi/eos/pkg/curve"
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/hash"
	"github.com/luxfi/eos/pkg/polynomial"
)

// ErrDegreeTooLarge is returned by Commit when a polynomial's degree
// exceeds the SRS's supported bound.
type ErrDegreeTooLarge struct {
	Degree   int
	MaxDegree int
}

func (e ErrDegreeTooLarge) Error() string {
	return fmt.Sprintf("kzg: polynomial degree %d exceeds SRS max degree %d", e.Degree, e.MaxDegree)
}

// ErrInvalidSRS is returned when an externally supplied SRS fails its
// structural consistency check.
var ErrInvalidSRS = fmt.Errorf("kzg: SRS failed structural consistency check")

// SRS is the structured reference string: powers of a secret tau in G1,
// and {h, h^tau} in G2. tau itself is never retained.
type SRS struct {
	MaxDegree int
	G1Powers  []curve.G1
	H         curve.G2
	HTau      curve.G2
}

// Setup samples a fresh secret tau and derives an SRS supporting
// polynomials up to maxDegree. tau is discarded once the SRS is built; it
// never appears in the returned value or anywhere else. Production
// deployments should use VerifySRS to validate an externally supplied SRS
// (from a ceremony or transparent setup) instead of calling Setup.
func Setup(maxDegree int, rng io.Reader) (SRS, error) {
	tau, err := field.Random(rng)
	if err != nil {
		return SRS{}, err
	}
	powers := make([]curve.G1, maxDegree+1)
	g := curve.GeneratorG1()
	acc := field.One()
	for k := 0; k <= maxDegree; k++ {
		powers[k] = g.ScalarMul(acc)
		acc = acc.Mul(tau)
	}
	h := curve.GeneratorG2()
	return SRS{
		MaxDegree: maxDegree,
		G1Powers:  powers,
		H:         h,
		HTau:      h.ScalarMul(tau),
	}, nil
}

// VerifySRS checks an externally supplied SRS's structural consistency by
// confirming e(g^{tau^{k+1}}, h) = e(g^{tau^k}, h^tau) for the first few
// powers, as required before accepting an SRS of unknown provenance.
func VerifySRS(srs SRS) error {
	checks := 4
	if srs.MaxDegree < checks {
		checks = srs.MaxDegree
	}
	for k := 0; k < checks; k++ {
		if !curve.PairingsEqual(srs.G1Powers[k+1], srs.H, srs.G1Powers[k], srs.HTau) {
			return ErrInvalidSRS
		}
	}
	return nil
}

// Commit returns g^{P(tau)} = sum_k a_k g^{tau^k}.
func Commit(srs SRS, p polynomial.Polynomial) (curve.G1, error) {
	if p.Degree() > srs.MaxDegree {
		return curve.G1{}, ErrDegreeTooLarge{Degree: p.Degree(), MaxDegree: srs.MaxDegree}
	}
	acc := curve.IdentityG1()
	for k, c := range p.Coefficients() {
		if c.IsZero() {
			continue
		}
		acc = acc.Add(srs.G1Powers[k].ScalarMul(c))
	}
	return acc, nil
}

// Opening is a KZG evaluation proof: witness proves p(point) = value under
// the SRS it was built against.
type Opening struct {
	Point   field.Element
	Value   field.Element
	Witness curve.G1
}

// Open builds an opening proof that p(z) = p.Evaluate(z).
func Open(srs SRS, p polynomial.Polynomial, z field.Element) (Opening, error) {
	y := p.Evaluate(z)
	q, remainder := p.Sub(polynomial.Constant(y)).DivLinear(z)
	if !remainder.IsZero() {
		// p(z) was computed from p itself, so this can only happen from a
		// broken Evaluate/DivLinear pairing, never from caller input.
		panic("kzg: non-zero remainder opening at claimed evaluation point")
	}
	w, err := Commit(srs, q)
	if err != nil {
		return Opening{}, err
	}
	return Opening{Point: z, Value: y, Witness: w}, nil
}

// Verify checks that commitment opens to op.Value at op.Point under srs:
// e(Cm - g^y, h) = e(w, h^tau - h^z).
func Verify(srs SRS, commitment curve.G1, op Opening) bool {
	g := curve.GeneratorG1()
	lhsPoint := commitment.Sub(g.ScalarMul(op.Value))
	rhsPoint := srs.HTau.Sub(srs.H.ScalarMul(op.Point))
	return curve.PairingsEqual(lhsPoint, srs.H, op.Witness, rhsPoint)
}

// BatchOpen combines several polynomials into one opening proof at a
// single shared point z, using a Fiat-Shamir challenge drawn from tr to
// weight each polynomial. The caller must have already appended each
// polynomial's commitment (and any other public data) to tr in the same
// order the verifier will, so both sides derive the same challenge.
func BatchOpen(srs SRS, polys []polynomial.Polynomial, z field.Element, tr *hash.Transcript) (Opening, error) {
	gamma := tr.Challenge("kzg/batch-gamma")
	combined := polynomial.Zero()
	power := field.One()
	for _, p := range polys {
		combined = combined.Add(p.Scale(power))
		power = power.Mul(gamma)
	}
	return Open(srs, combined, z)
}

// CombineCommitments folds per-polynomial commitments with the same
// Fiat-Shamir weighting BatchOpen used, so the verifier can reconstruct
// the combined commitment without recomputing the combined polynomial.
func CombineCommitments(commitments []curve.G1, gamma field.Element) curve.G1 {
	acc := curve.IdentityG1()
	power := field.One()
	for _, c := range commitments {
		acc = acc.Add(c.ScalarMul(power))
		power = power.Mul(gamma)
	}
	return acc
}

// CombineValues folds per-polynomial claimed evaluations with the same
// weighting, yielding the claimed value of the combined polynomial at z.
func CombineValues(values []field.Element, gamma field.Element) field.Element {
	acc := field.Zero()
	power := field.One()
	for _, v := range values {
		acc = acc.Add(v.Mul(power))
		power = power.Mul(gamma)
	}
	return acc
}
