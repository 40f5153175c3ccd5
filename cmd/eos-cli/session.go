package main

import (
	"crypto/rand"
	"fmt"

	"github.com/luxfi/eos/pkg/delegate"
	"github.com/luxfi/eos/pkg/kzg"
	"github.com/luxfi/eos/pkg/mpc"
	"github.com/luxfi/eos/pkg/sharing"
)

func parseScheme(name string) (sharing.SchemeKind, error) {
	switch name {
	case "shamir":
		return sharing.Shamir, nil
	case "additive":
		return sharing.Additive, nil
	default:
		return 0, fmt.Errorf("unknown scheme: %s", name)
	}
}

func parseMode(name string) (delegate.ModeKind, error) {
	switch name {
	case "isolation":
		return delegate.Isolation, nil
	case "collaboration":
		return delegate.Collaboration, nil
	default:
		return 0, fmt.Errorf("unknown mode: %s", name)
	}
}

func parseSecurityBits(bits int) (delegate.SecurityBits, error) {
	switch delegate.SecurityBits(bits) {
	case delegate.Security64, delegate.Security128, delegate.Security256:
		return delegate.SecurityBits(bits), nil
	default:
		return 0, fmt.Errorf("unsupported security-bits: %d", bits)
	}
}

func buildParams() (delegate.SessionParams, error) {
	scheme, err := parseScheme(schemeName)
	if err != nil {
		return delegate.SessionParams{}, err
	}
	mode, err := parseMode(modeName)
	if err != nil {
		return delegate.SessionParams{}, err
	}
	sec, err := parseSecurityBits(securityBit)
	if err != nil {
		return delegate.SessionParams{}, err
	}
	params := delegate.SessionParams{
		N:            numParties,
		T:            threshold,
		Scheme:       scheme,
		Mode:         mode,
		SecurityBits: sec,
		MaxDegree:    numParties * 4,
	}
	return params, params.Validate()
}

// newDriver builds a Driver with a freshly generated SRS big enough for
// params.MaxDegree. A real deployment supplies an externally audited SRS;
// this command-line tool has no ceremony to draw from, so it generates one
// locally and relies on delegate.New's structural consistency check.
func newDriver(params delegate.SessionParams) (*delegate.Driver, error) {
	srs, err := kzg.Setup(params.MaxDegree, rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("srs setup: %w", err)
	}
	return delegate.New(params, srs, rand.Reader)
}

// newDriverWithSRS is newDriver for callers that already generated an SRS
// and want to reuse it across several sessions (e.g. a benchmark loop).
func newDriverWithSRS(params delegate.SessionParams, srs kzg.SRS) (*delegate.Driver, error) {
	return delegate.New(params, srs, rand.Reader)
}

func demoCircuit() *mpc.Circuit {
	return mpc.SquarePlusYCircuit()
}
