package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stele/internal/parser"
)

// tokensCmd dumps the token stream for one file. Debug tooling for
// grammar work; not part of the compile pipeline.
func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file.sl>",
		Short: "Print the scanner's token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			scanner := parser.NewScanner(string(source))
			tokens := scanner.ScanTokens()

			for _, token := range tokens {
				fmt.Printf("%4d:%-3d %-18s %q\n",
					token.Position.Line, token.Position.Column, token.Type, token.Lexeme)
			}
			for _, scanErr := range scanner.Errors() {
				fmt.Fprintf(os.Stderr, "%d:%d: %s\n",
					scanErr.Position.Line, scanErr.Position.Column, scanErr.Message)
			}
			if len(scanner.Errors()) > 0 {
				return fmt.Errorf("%d scan error(s)", len(scanner.Errors()))
			}
			return nil
		},
	}
}
