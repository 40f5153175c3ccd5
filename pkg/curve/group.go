// Package curve is the pairing adapter collaborator (half of C1): it wraps
// the elliptic-curve group pair (G1, G2, GT) and the bilinear pairing e(.,.)
// that pkg/kzg builds its commitments on. Curve and pairing arithmetic are
// external primitives here: this package is a thin, deliberately small
// wrapper over go-ethereum's bn256 implementation (the same alt_bn128
// curve the Ethereum ecPairing precompile uses), not a reimplementation.
package curve

import (
	"bytes"
	"fmt"
	"math/big"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"

	"github.com/luxfi/eos/pkg/field"
)

// G1 is an element of the first pairing group.
type G1 struct{ p *bn256.G1 }

// G2 is an element of the second pairing group.
type G2 struct{ p *bn256.G2 }

// IdentityG1 returns the identity element of G1.
func IdentityG1() G1 { return G1{p: new(bn256.G1).ScalarBaseMult(big.NewInt(0))} }

// IdentityG2 returns the identity element of G2.
func IdentityG2() G2 { return G2{p: new(bn256.G2).ScalarBaseMult(big.NewInt(0))} }

// GeneratorG1 returns the fixed generator g of G1.
func GeneratorG1() G1 { return G1{p: new(bn256.G1).ScalarBaseMult(big.NewInt(1))} }

// GeneratorG2 returns the fixed generator h of G2.
func GeneratorG2() G2 { return G2{p: new(bn256.G2).ScalarBaseMult(big.NewInt(1))} }

// Add returns a + b in G1.
func (a G1) Add(b G1) G1 { return G1{p: new(bn256.G1).Add(a.p, b.p)} }

// Sub returns a - b in G1.
func (a G1) Sub(b G1) G1 { return a.Add(b.Neg()) }

// Neg returns -a in G1.
func (a G1) Neg() G1 { return G1{p: new(bn256.G1).Neg(a.p)} }

// ScalarMul returns s*a in G1.
func (a G1) ScalarMul(s field.Element) G1 {
	return G1{p: new(bn256.G1).ScalarMult(a.p, s.Big())}
}

// Equal reports whether a and b represent the same point.
func (a G1) Equal(b G1) bool { return bytes.Equal(a.bytes(), b.bytes()) }

func (a G1) bytes() []byte {
	if a.p == nil {
		return IdentityG1().p.Marshal()
	}
	return a.p.Marshal()
}

// MarshalBinary implements the g1_bytes(...) wire encoding.
func (a G1) MarshalBinary() ([]byte, error) { return a.bytes(), nil }

// UnmarshalBinary decodes the g1_bytes(...) wire encoding.
func (a *G1) UnmarshalBinary(data []byte) error {
	p := new(bn256.G1)
	if _, err := p.Unmarshal(data); err != nil {
		return fmt.Errorf("curve: unmarshal G1: %w", err)
	}
	a.p = p
	return nil
}

// Add returns a + b in G2.
func (a G2) Add(b G2) G2 { return G2{p: new(bn256.G2).Add(a.p, b.p)} }

// Sub returns a - b in G2.
func (a G2) Sub(b G2) G2 { return a.Add(b.Neg()) }

// Neg returns -a in G2.
func (a G2) Neg() G2 { return G2{p: new(bn256.G2).Neg(a.p)} }

// ScalarMul returns s*a in G2.
func (a G2) ScalarMul(s field.Element) G2 {
	return G2{p: new(bn256.G2).ScalarMult(a.p, s.Big())}
}

// Equal reports whether a and b represent the same point.
func (a G2) Equal(b G2) bool { return bytes.Equal(a.bytes(), b.bytes()) }

func (a G2) bytes() []byte {
	if a.p == nil {
		return IdentityG2().p.Marshal()
	}
	return a.p.Marshal()
}

// MarshalBinary implements the g2_bytes(...) wire encoding.
func (a G2) MarshalBinary() ([]byte, error) { return a.bytes(), nil }

// UnmarshalBinary decodes the g2_bytes(...) wire encoding.
func (a *G2) UnmarshalBinary(data []byte) error {
	p := new(bn256.G2)
	if _, err := p.Unmarshal(data); err != nil {
		return fmt.Errorf("curve: unmarshal G2: %w", err)
	}
	a.p = p
	return nil
}

// PairingsEqual reports whether e(a1, b1) == e(a2, b2), i.e. whether
// e(a1, b1) * e(a2, -b2) == 1 in GT. This is the single primitive the KZG
// and PIOP checkers need; no component ever needs a bare GT element.
func PairingsEqual(a1 G1, b1 G2, a2 G1, b2 G2) bool {
	return bn256.PairingCheck([]*bn256.G1{a1.p, a2.p}, []*bn256.G2{b1.p, b2.Neg().p})
}
