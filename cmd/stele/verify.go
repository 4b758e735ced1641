package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stele/internal/solver"
)

func verifyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.sl>...",
		Short: "Check sources and verify their principles with the SMT solver",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			runner := solver.NewRunner(cfg.Solver.Path, cfg.Solver.Args, cfg.Solver.Timeout)

			failed := false
			for _, path := range args {
				c, err := compile(cfg, path)
				if err != nil {
					return err
				}
				c.report()
				if c.failed() {
					failed = true
					continue
				}

				verifier := solver.NewVerifier(c.resolved, runner)
				report := verifier.Verify(cmd.Context(), c.program)
				printReport(path, report)
				if report.Failed() {
					failed = true
				}
			}

			if failed {
				return fmt.Errorf("verification failed")
			}
			return nil
		},
	}
}

func printReport(path string, report *solver.Report) {
	fmt.Printf("%s: run %s\n", path, report.RunID)
	for _, result := range report.Results {
		switch {
		case result.Err != nil:
			color.Yellow("  %s: %v", result.Name, result.Err)
		case result.Verdict.Holds():
			color.Green("  %s: %s (%s)", result.Name, result.Verdict, formatDuration(result.Elapsed))
		default:
			color.Red("  %s: %s (%s)", result.Name, result.Verdict, formatDuration(result.Elapsed))
			if result.Counterexample != nil {
				fmt.Printf("    counterexample: %s\n", result.Counterexample)
			}
		}
		if result.Witness != nil && result.Verdict == solver.VerdictWitness {
			fmt.Printf("    witness: %s\n", result.Witness)
		}
	}
	fmt.Printf("  %d principle(s) in %s\n", len(report.Results), formatDuration(report.Elapsed))
}
