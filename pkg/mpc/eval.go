package mpc

import (
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/hash"
)

// TranscriptHash is the digest Finish derives over every Output gate's
// reconstructed value from a circuit evaluation, used by the delegation driver to
// detect any divergence between re-runs with the same seed.
type TranscriptHash []byte

// Eval walks circuit in topological order, feeding publicInputs and
// privateInputs to InputPublic/InputPrivate gates by wire index, and
// returns the reconstructed value of every Output gate keyed by that
// gate's own wire index. It absorbs every Output gate's value into a
// session-scoped transcript; call Finish to retrieve the digest.
func (ex *Executor) Eval(c *Circuit, publicInputs, privateInputs map[int]field.Element) (map[int]field.Element, error) {
	wires := make([]any, len(c.Gates))
	outputs := make(map[int]field.Element)
	tr := hash.New("mpc/eval")

	for i, g := range c.Gates {
		var v any
		var err error
		switch g.Kind {
		case InputPublic:
			v = ex.InputPublic(publicInputs[i])
		case InputPrivate:
			v, err = ex.InputPrivate(privateInputs[i])
		case Const:
			v = g.Value
		case Add:
			v, err = ex.AddGate(wires[g.Left], wires[g.Right])
		case Mul:
			v, err = ex.MulGate(wires[g.Left], wires[g.Right])
		case Eq:
			var l, r field.Element
			l, err = ex.Output(wires[g.Left])
			if err == nil {
				r, err = ex.Output(wires[g.Right])
			}
			if err == nil && !l.Equal(r) {
				err = ErrEqFailed{Gate: i}
			}
			v = l
		case Output:
			var out field.Element
			out, err = ex.Output(wires[g.Left])
			if err == nil {
				outputs[i] = out
				tr.AppendElement("mpc/output", out)
			}
			v = out
		}
		if err != nil {
			return nil, err
		}
		wires[i] = v
	}
	ex.transcript = tr
	return outputs, nil
}

// Finish returns the digest of every Output gate's reconstructed value
// produced by the most recent call to Eval, under the domain tag
// "mpc/finish".
func (ex *Executor) Finish() TranscriptHash {
	if ex.transcript == nil {
		ex.transcript = hash.New("mpc/eval")
	}
	challenge := ex.transcript.Challenge("mpc/finish")
	b, _ := challenge.MarshalBinary()
	return TranscriptHash(b)
}
