// Command eos-cli drives delegation sessions from the command line: run a
// session against the built-in demo circuit, validate session parameters,
// or benchmark repeated runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	numParties  int
	threshold   int
	schemeName  string
	modeName    string
	securityBit int
	verbose     bool

	rootCmd = &cobra.Command{
		Use:   "eos-cli",
		Short: "CLI for the delegated zkSNARK prover core",
		Long:  `eos-cli drives delegation sessions: secret-share a witness across n workers, evaluate a circuit under MPC, commit and check the PIOP consistency identity, and report Accept or Reject.`,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a delegation session against the built-in demo circuit",
		Long:  `Runs the (x*x)+y circuit with the given private inputs across a simulated local session and prints the Accept/Reject outcome.`,
		RunE:  runSession,
	}

	paramsCmd = &cobra.Command{
		Use:   "params",
		Short: "Validate session parameters",
		RunE:  runParams,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Run repeated delegation sessions and report timing",
		RunE:  runBench,
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Display supported options",
		RunE:  runInfo,
	}
)

var (
	inputX     uint64
	inputY     uint64
	iterations int
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&numParties, "parties", "n", 5, "number of parties")
	rootCmd.PersistentFlags().IntVarP(&threshold, "threshold", "t", 2, "reconstruction threshold")
	rootCmd.PersistentFlags().StringVarP(&schemeName, "scheme", "s", "shamir", "sharing scheme: shamir, additive")
	rootCmd.PersistentFlags().StringVarP(&modeName, "mode", "m", "isolation", "multiplication mode: isolation, collaboration")
	rootCmd.PersistentFlags().IntVar(&securityBit, "security-bits", 128, "security level: 64, 128, 256")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	runCmd.Flags().Uint64Var(&inputX, "x", 3, "private input x")
	runCmd.Flags().Uint64Var(&inputY, "y", 4, "private input y")

	benchCmd.Flags().Uint64Var(&inputX, "x", 3, "private input x")
	benchCmd.Flags().Uint64Var(&inputY, "y", 4, "private input y")
	benchCmd.Flags().IntVar(&iterations, "iterations", 10, "number of sessions to run")

	rootCmd.AddCommand(runCmd, paramsCmd, benchCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	fmt.Println("eos-cli: delegated zkSNARK prover core")
	fmt.Println()
	fmt.Println("Sharing schemes: shamir, additive")
	fmt.Println("Multiplication modes: isolation, collaboration")
	fmt.Println("Security levels: 64, 128, 256")
	if verbose {
		fmt.Printf("Current parameters: n=%d t=%d scheme=%s mode=%s security_bits=%d\n",
			numParties, threshold, schemeName, modeName, securityBit)
	}
	return nil
}
