package delegate

import (
	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/mpc"
	"github.com/luxfi/eos/pkg/piop"
	"github.com/luxfi/eos/pkg/polynomial"
)

// compileStatement reduces a circuit's Output gates to a minimal PIOP
// binding: the witness polynomial W interpolates the trace of output-gate
// values the worker claims (wireValues, as produced by mpc.Executor.Eval);
// the circuit-shape polynomial C interpolates the same positions against
// the values the driver already knows publicly (reconstructedOutputs),
// since those are revealed to the delegator once MPC evaluation succeeds.
// A is the constant 1 polynomial and B is the zero polynomial, so the
// checked identity degenerates to W(rho) - C(rho) = H(rho)*V(rho): a
// worker whose committed W does not actually encode the values it
// revealed fails this check. Z is set equal to W so the batching machinery
// still commits and opens a second, non-degenerate polynomial even though
// B=0 makes it algebraically inert in this minimal binding; a richer
// circuit-shape encoding (weighting Add vs Mul gate rows differently) is
// future work, not required by the scenarios this core targets.
func compileStatement(c *mpc.Circuit, wireValues map[int]field.Element, reconstructedOutputs map[int]field.Element) (piop.Statement, polynomial.Polynomial, polynomial.Polynomial, polynomial.Polynomial, error) {
	var outputGates []int
	for i, g := range c.Gates {
		if g.Kind == mpc.Output {
			outputGates = append(outputGates, i)
		}
	}
	if len(outputGates) == 0 {
		zero := polynomial.Zero()
		stmt := piop.Statement{
			A: polynomial.Constant(field.One()),
			B: polynomial.Constant(field.Zero()),
			C: zero,
			V: polynomial.Constant(field.One()),
		}
		return stmt, zero, zero, zero, nil
	}

	domain := make([]field.Element, len(outputGates))
	wVals := make([]field.Element, len(outputGates))
	cVals := make([]field.Element, len(outputGates))
	for k, gateIdx := range outputGates {
		domain[k] = field.FromUint64(uint64(k + 1))
		wVals[k] = wireValues[gateIdx]
		cVals[k] = reconstructedOutputs[gateIdx]
	}

	w := polynomial.Interpolate(domain, wVals)
	z := w
	cPoly := polynomial.Interpolate(domain, cVals)
	v := polynomial.VanishingPolynomial(domain)

	lhs := w.Sub(cPoly) // A=1, B=0: A*W + B*Z - C = W - C
	h, err := lhs.DivExact(v)
	if err != nil {
		return piop.Statement{}, polynomial.Polynomial{}, polynomial.Polynomial{}, polynomial.Polynomial{}, err
	}

	stmt := piop.Statement{
		A: polynomial.Constant(field.One()),
		B: polynomial.Constant(field.Zero()),
		C: cPoly,
		V: v,
	}
	return stmt, w, z, h, nil
}
