// Package field implements the prime field adapter (collaborator C1 of the
// delegated-SNARK core): a fixed prime field F of order equal to the scalar
// field of the pairing curve used by pkg/curve. All arithmetic in the core,
// sharing, polynomials, the MPC executor, KZG scalars, happens in this
// field; only pkg/curve lifts elements into a group.
//
// The field does not implement curve or pairing arithmetic itself: those
// primitives are an external collaborator. Element
// only needs to round-trip cleanly into the scalar argument of pkg/curve's
// group operations.
package field

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

// primeDecimal is the order of the scalar field of the alt_bn128 / BN254
// pairing curve (the same curve go-ethereum's crypto/bn256 package and the
// gnark-crypto ecosystem use for G1/G2). Keeping Element's modulus in sync
// with the curve's group order is what lets pkg/curve treat a field.Element
// as a scalar exponent.
const primeDecimal = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

var modulus = mustModulus(primeDecimal)

func mustModulus(decimal string) *saferith.Modulus {
	p, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("field: invalid prime literal")
	}
	return saferith.ModulusFromNat(new(saferith.Nat).SetBig(p, p.BitLen()))
}

// Modulus returns the field's prime modulus as a big.Int, primarily so that
// other packages (curve, kzg) can sanity check they agree on the field.
func Modulus() *big.Int {
	return bigModulus()
}

// byteLen is the fixed width used for binary (de)serialization.
const byteLen = 32

// ByteLen returns the fixed width of an Element's MarshalBinary encoding,
// so wire-format code can size field_bytes(value) without constructing an
// Element first.
func ByteLen() int { return byteLen }

// Element is a value of the prime field F.
type Element struct {
	val *saferith.Nat
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{val: new(saferith.Nat).SetUint64(0)}
}

// One returns the multiplicative identity.
func One() Element {
	return Element{val: new(saferith.Nat).SetUint64(1)}
}

// FromUint64 lifts a machine integer into the field.
func FromUint64(x uint64) Element {
	return Element{val: new(saferith.Nat).Mod(new(saferith.Nat).SetUint64(x), modulus)}
}

// announcedBits is large enough to hold any value reduced mod the field
// prime with headroom for saferith's internal alignment.
const announcedBits = byteLen*8 + 64

// FromBig reduces an arbitrary big.Int modulo the field prime.
func FromBig(x *big.Int) Element {
	reduced := new(big.Int).Mod(x, bigModulus())
	return Element{val: new(saferith.Nat).Mod(new(saferith.Nat).SetBig(reduced, announcedBits), modulus)}
}

func bigModulus() *big.Int {
	p, _ := new(big.Int).SetString(primeDecimal, 10)
	return p
}

// Random samples a uniformly random field element using rng.
func Random(rng io.Reader) (Element, error) {
	x, err := rand.Int(rng, bigModulus())
	if err != nil {
		return Element{}, fmt.Errorf("field: sampling random element: %w", err)
	}
	return FromBig(x), nil
}

func (e Element) ensure() *saferith.Nat {
	if e.val == nil {
		return new(saferith.Nat).SetUint64(0)
	}
	return e.val
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	return Element{val: new(saferith.Nat).ModAdd(e.ensure(), other.ensure(), modulus)}
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	return Element{val: new(saferith.Nat).ModSub(e.ensure(), other.ensure(), modulus)}
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	return Element{val: new(saferith.Nat).ModMul(e.ensure(), other.ensure(), modulus)}
}

// Neg returns -e.
func (e Element) Neg() Element {
	return Element{val: new(saferith.Nat).ModNeg(e.ensure(), modulus)}
}

// Inv returns the multiplicative inverse of e. Panics if e is zero; callers
// working with field elements that may legitimately be zero must check
// IsZero first (e.g. before dividing in polynomial interpolation).
func (e Element) Inv() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	return Element{val: new(saferith.Nat).ModInverse(e.ensure(), modulus)}
}

// Scale is an alias for Mul, named for readability at call sites that scale
// a share or polynomial by a public constant.
func (e Element) Scale(c Element) Element { return e.Mul(c) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.ensure().EqZero() == 1
}

// Equal reports whether e and other represent the same field element.
func (e Element) Equal(other Element) bool {
	return e.ensure().Eq(other.ensure()) == 1
}

// Big returns e as a non-negative big.Int in [0, p).
func (e Element) Big() *big.Int {
	return e.ensure().Big()
}

// String renders e in decimal, for logging and test failure messages.
func (e Element) String() string {
	return e.Big().String()
}

// MarshalBinary encodes e as a fixed-width big-endian byte string, per the
// wire format's field_bytes(value) convention.
func (e Element) MarshalBinary() ([]byte, error) {
	buf := make([]byte, byteLen)
	e.Big().FillBytes(buf)
	return buf, nil
}

// UnmarshalBinary decodes a fixed-width big-endian byte string produced by
// MarshalBinary.
func (e *Element) UnmarshalBinary(data []byte) error {
	if len(data) != byteLen {
		return fmt.Errorf("field: expected %d bytes, got %d", byteLen, len(data))
	}
	x := new(big.Int).SetBytes(data)
	*e = FromBig(x)
	return nil
}
