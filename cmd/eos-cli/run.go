package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/eos/pkg/field"
)

func runSession(cmd *cobra.Command, args []string) error {
	params, err := buildParams()
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	driver, err := newDriver(params)
	if err != nil {
		return err
	}

	circuit := demoCircuit()
	private := map[int]field.Element{0: field.FromUint64(inputX), 1: field.FromUint64(inputY)}

	result, err := driver.Run(circuit, nil, private)
	if err != nil {
		fmt.Printf("Reject: %s (%v)\n", driver.RejectReason(), err)
		return err
	}

	fmt.Printf("Accept: state=%s\n", driver.State())
	for wire, v := range result.Outputs {
		fmt.Printf("  output[%d] = %s\n", wire, v.String())
	}
	if verbose {
		fmt.Printf("transcript = %x\n", result.Transcript)
	}
	return nil
}

func runParams(cmd *cobra.Command, args []string) error {
	params, err := buildParams()
	if err != nil {
		fmt.Printf("invalid: %v\n", err)
		return err
	}
	fmt.Printf("valid: n=%d t=%d scheme=%s mode=%s security_bits=%d max_degree=%d\n",
		params.N, params.T, schemeName, modeName, params.SecurityBits, params.MaxDegree)
	return nil
}
