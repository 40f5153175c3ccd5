package main

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxfi/eos/pkg/field"
	"github.com/luxfi/eos/pkg/kzg"
)

func runBench(cmd *cobra.Command, args []string) error {
	params, err := buildParams()
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	srs, err := kzg.Setup(params.MaxDegree, rand.Reader)
	if err != nil {
		return fmt.Errorf("srs setup: %w", err)
	}

	private := map[int]field.Element{0: field.FromUint64(inputX), 1: field.FromUint64(inputY)}
	circuit := demoCircuit()

	accepted := 0
	start := time.Now()
	for i := 0; i < iterations; i++ {
		driver, err := newDriverWithSRS(params, srs)
		if err != nil {
			return err
		}
		if _, err := driver.Run(circuit, nil, private); err == nil {
			accepted++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("iterations=%d accepted=%d elapsed=%s avg=%s\n",
		iterations, accepted, elapsed, elapsed/time.Duration(iterations))
	return nil
}
