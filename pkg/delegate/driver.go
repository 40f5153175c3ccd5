package delegate

import (
	"errors"
	"io"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/hash"
	"github.com/luxfi/eos/pkg/kzg"
	"github.com/luxfi/eos/pkg/mpc"
	"github.com/luxfi/eos/pkg/piop"
)

var (
	errNotParamsReady = errors.New("delegate: Run called outside ParamsReady state")
	errIdentityFailed = errors.New("delegate: PIOP consistency check failed")
)

// State is one node of the driver's state machine.
type State int

const (
	Idle State = iota
	ParamsReady
	Shared
	Evaluated
	Committed
	Checked
	Accepted
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ParamsReady:
		return "params_ready"
	case Shared:
		return "shared"
	case Evaluated:
		return "evaluated"
	case Committed:
		return "committed"
	case Checked:
		return "checked"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Driver sequences one delegation session through its state machine. A
// Driver is single-use: call Run once per session.
type Driver struct {
	params SessionParams
	rng    io.Reader
	srs    kzg.SRS

	state  State
	reason RejectReason
}

// New validates params and an externally supplied SRS (checking its
// structural consistency before ever trusting it, per the SRS provenance
// design note) and returns a Driver ready to Run.
func New(params SessionParams, srs kzg.SRS, rng io.Reader) (*Driver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := kzg.VerifySRS(srs); err != nil {
		return nil, err
	}
	return &Driver{params: params, rng: rng, srs: srs, state: ParamsReady}, nil
}

// State returns the driver's current state.
func (d *Driver) State() State { return d.state }

// RejectReason returns the stable reason the driver rejected, valid only
// once State() == Rejected.
func (d *Driver) RejectReason() RejectReason { return d.reason }

func (d *Driver) reject(reason RejectReason) {
	d.state = Rejected
	d.reason = reason
}

// Result is the outcome of a successful Accept: the reconstructed output
// values keyed by output gate index, and the deterministic transcript hash
// a re-run with the same seed and inputs must reproduce exactly.
type Result struct {
	Outputs    map[int]field.Element
	Transcript mpc.TranscriptHash
}

// Run drives circuit through setup, witness dispersal, MPC evaluation, KZG
// commitment and PIOP consistency checking, returning a Result on Accept
// or an error on Reject (inspect RejectReason() for the stable code).
func (d *Driver) Run(circuit *mpc.Circuit, publicInputs, privateInputs map[int]field.Element) (*Result, error) {
	if d.state != ParamsReady {
		return nil, errNotParamsReady
	}

	mode, err := d.buildMode(circuit)
	if err != nil {
		d.reject(classify(err))
		return nil, err
	}
	executor := mpc.New(d.params.N, d.params.T, d.params.Scheme, mode, d.rng)
	d.state = Shared

	outputs, err := executor.Eval(circuit, publicInputs, privateInputs)
	if err != nil {
		d.reject(classify(err))
		return nil, err
	}
	d.state = Evaluated

	stmt, w, z, h, err := compileStatement(circuit, outputs, outputs)
	if err != nil {
		d.reject(classify(err))
		return nil, err
	}

	tr := hash.New("eos/delegate")
	proof, err := piop.Prove(d.srs, stmt, w, z, h, tr)
	if err != nil {
		d.reject(classify(err))
		return nil, err
	}
	d.state = Committed

	verifyTr := hash.New("eos/delegate")
	verdict := piop.Verify(d.srs, stmt, proof, verifyTr)
	d.state = Checked

	if !verdict.Accepted() {
		d.reject(ReasonIdentityFailed)
		return nil, errIdentityFailed
	}

	d.state = Accepted
	return &Result{Outputs: outputs, Transcript: executor.Finish()}, nil
}

// buildMode resolves the session's ModeKind to a concrete mpc.Mode. In
// Collaboration mode it preprocesses exactly as many Beaver triples as the
// circuit has multiplication gates.
func (d *Driver) buildMode(circuit *mpc.Circuit) (mpc.Mode, error) {
	if d.params.Mode != Collaboration {
		return mpc.IsolationMode{}, nil
	}
	mulCount := 0
	for _, g := range circuit.Gates {
		if g.Kind == mpc.Mul {
			mulCount++
		}
	}
	triples, err := mpc.GenerateTriples(mulCount, d.params.T, d.params.N, d.rng)
	if err != nil {
		return nil, err
	}
	return mpc.NewCollaborationMode(triples), nil
}
