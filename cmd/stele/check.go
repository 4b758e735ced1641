package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func checkCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.sl>...",
		Short: "Parse and analyze statute sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			start := time.Now()
			failures := 0
			for _, path := range args {
				c, err := compile(cfg, path)
				if err != nil {
					return err
				}
				c.report()
				if c.failed() {
					failures++
				} else {
					color.Green("%s: ok", path)
				}
			}

			elapsed := formatDuration(time.Since(start))
			if failures > 0 {
				color.Red("Check failed after %s", elapsed)
				return fmt.Errorf("%d of %d file(s) had errors", failures, len(args))
			}
			color.Green("Checked %d file(s) in %s", len(args), elapsed)
			return nil
		},
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}
