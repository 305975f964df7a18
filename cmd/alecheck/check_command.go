package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"alecheck/internal/config"
	"alecheck/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify output and state directories and the speed factor file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg, preflight.Target{CSV: true, XML: true})

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				colorize := shouldColorize(w)
				printLines(w, renderSectionHeader("Preflight", colorize))
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					fmt.Fprintln(w, renderStatusLine(r.Name, kind, r.Detail, colorize))
				}
				fmt.Fprintln(w, speedFactorLine(cfg, colorize))
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print check results as JSON")
	return cmd
}

// speedFactorLine reports the factor without creating a missing file.
func speedFactorLine(cfg *config.Config, colorize bool) string {
	path := cfg.Paths.SpeedFactorFile
	value, err := readSpeedFactor(path)
	if err != nil {
		return renderStatusLine("Speed factor", statusWarn, fmt.Sprintf("%s (%v)", path, err), colorize)
	}
	return renderStatusLine("Speed factor", statusOK, fmt.Sprintf("%s (%s)", path, formatFactor(value)), colorize)
}
