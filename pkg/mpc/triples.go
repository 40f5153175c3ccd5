package mpc

import (
	"io"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/sharing"
)

// Triple is a Beaver multiplication triple (a, b, a*b), each shared under
// Shamir at the session's threshold degree.
type Triple struct {
	A  sharing.ShareSet
	B  sharing.ShareSet
	AB sharing.ShareSet
}

// GenerateTriples produces count fresh Beaver triples via a simulated
// trusted dealer built directly on the Shamir sharing engine: a and b are
// sampled uniformly and a*b shared exactly, all three at threshold t so
// they sit at the same degree as the wires Collaboration mode will
// multiply them against. This stands in for the dedicated secure
// multi-party triple-generation sub-protocol a production deployment would
// run instead (an open question noted in the accompanying design notes);
// it is adequate for Collaboration mode to exhibit the same online
// behaviour and message-count savings the mode exists to provide.
func GenerateTriples(count, t, n int, rng io.Reader) ([]Triple, error) {
	out := make([]Triple, 0, count)
	var sid uint64
	for k := 0; k < count; k++ {
		a, err := field.Random(rng)
		if err != nil {
			return nil, err
		}
		b, err := field.Random(rng)
		if err != nil {
			return nil, err
		}
		ab := a.Mul(b)

		sid++
		sa, err := sharing.ShamirShare(a, t, n, sid, rng)
		if err != nil {
			return nil, err
		}
		sid++
		sb, err := sharing.ShamirShare(b, t, n, sid, rng)
		if err != nil {
			return nil, err
		}
		sid++
		sab, err := sharing.ShamirShare(ab, t, n, sid, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, Triple{A: sa, B: sb, AB: sab})
	}
	return out, nil
}
