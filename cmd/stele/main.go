// SPDX-License-Identifier: Apache-2.0

// Package main provides the stele binary: a compiler front end and
// verification bridge for statute sources.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"stele/internal/config"
)

const (
	Version = "0.1.0"
	appName = "stele"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		verbose    int
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Statute compiler and verifier",
		Long: `Stele compiles statute sources (.sl): scanning, parsing, name
resolution, type and annotation checking, authority hierarchy and
temporal validity analysis, and verification of principles through an
external SMT solver.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	cmd.AddCommand(
		checkCmd(&configPath),
		verifyCmd(&configPath),
		watchCmd(&configPath),
		tokensCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	return config.NewLoader().Load(path)
}
