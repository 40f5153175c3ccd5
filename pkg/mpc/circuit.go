// Package mpc implements the gate-level MPC circuit executor (collaborator
// C4): evaluation of addition and multiplication gates on Shamir- or
// additively-shared wires, the single-round multiplication degree-reduction
// protocol, and the Isolation/Collaboration scheduling strategies.
//
// Grounded in structure on a round-based key generation protocol
// (protocols/cmp/keygen's round1.go/round2.go pattern of an explicit
// struct per communication round), simplified here into two
// self-contained round steps per multiplication gate since transport is
// out of scope and the whole party set is evaluated in one process.
package mpc

import "github.com/luxfi/eos/pkg/field"

// GateKind identifies the operation a Gate performs.
type GateKind int

const (
	InputPublic GateKind = iota
	InputPrivate
	Add
	Mul
	Output
	Const
	Eq
)

func (k GateKind) String() string {
	switch k {
	case InputPublic:
		return "input_public"
	case InputPrivate:
		return "input_private"
	case Add:
		return "add"
	case Mul:
		return "mul"
	case Output:
		return "output"
	case Const:
		return "const"
	case Eq:
		return "eq"
	default:
		return "unknown"
	}
}

// Gate is one node of the circuit DAG. Left and Right are wire indices
// (into Circuit.Gates) that must be strictly less than this gate's own
// index; -1 marks an unused operand. Value holds the constant for a Const
// gate.
type Gate struct {
	Kind  GateKind
	Left  int
	Right int
	Value field.Element
}

// Circuit is a topologically sorted DAG of gates: gate i may only
// reference gates with index < i.
type Circuit struct {
	Gates []Gate
}

// New returns an empty circuit.
func New() *Circuit { return &Circuit{} }

func (c *Circuit) push(g Gate) int {
	c.Gates = append(c.Gates, g)
	return len(c.Gates) - 1
}

// InputPublic allocates a wire fed with a cleartext value supplied at
// evaluation time.
func (c *Circuit) InputPublic() int { return c.push(Gate{Kind: InputPublic, Left: -1, Right: -1}) }

// InputPrivate allocates a wire fed with a witness value that is secret
// shared at evaluation time.
func (c *Circuit) InputPrivate() int { return c.push(Gate{Kind: InputPrivate, Left: -1, Right: -1}) }

// ConstWire allocates a wire fixed to a known constant, the same for every
// evaluation.
func (c *Circuit) ConstWire(v field.Element) int {
	return c.push(Gate{Kind: Const, Left: -1, Right: -1, Value: v})
}

// AddGate allocates a wire computing the sum of two existing wires.
func (c *Circuit) AddGate(a, b int) int { return c.push(Gate{Kind: Add, Left: a, Right: b}) }

// MulGate allocates a wire computing the product of two existing wires.
func (c *Circuit) MulGate(a, b int) int { return c.push(Gate{Kind: Mul, Left: a, Right: b}) }

// EqGate allocates a wire that asserts two existing wires carry equal
// values; evaluation reports a mismatch as ErrEqFailed.
func (c *Circuit) EqGate(a, b int) int { return c.push(Gate{Kind: Eq, Left: a, Right: b}) }

// OutputGate marks an existing wire for reconstruction at the end of
// evaluation.
func (c *Circuit) OutputGate(a int) int { return c.push(Gate{Kind: Output, Left: a, Right: -1}) }

// SquarePlusYCircuit builds the (x*x)+y circuit used by the delegation
// scenario: two private inputs x (wire 0) and y (wire 1), their relation
// x*x+y exposed on a single output gate.
func SquarePlusYCircuit() *Circuit {
	c := New()
	x := c.InputPrivate()
	y := c.InputPrivate()
	xx := c.MulGate(x, x)
	sum := c.AddGate(xx, y)
	c.OutputGate(sum)
	return c
}
