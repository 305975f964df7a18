package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"alecheck/internal/ale"
	"alecheck/internal/ledger"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded analysis runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					formatTimestamp(run.CreatedAt),
					run.Document,
					string(run.Origin),
					strconv.Itoa(run.Records),
					strconv.Itoa(run.Failing),
					strconv.Itoa(len(run.GlobalErrors)),
					ale.FormatDuration(run.AdjustedSeconds),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Created", "Document", "Origin", "Records", "Failing", "Global", "Adjusted"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Maximum number of runs to list")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print runs as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one run with its record verdicts and exports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			detail, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, detail)
			}
			w := cmd.OutOrStdout()
			renderRunDetail(w, detail, shouldColorize(w))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run as JSON")
	return cmd
}

func renderRunDetail(w io.Writer, detail *ledger.RunDetail, colorize bool) {
	run := detail.Run
	fmt.Fprintf(w, "Run:      %s\n", run.ID)
	fmt.Fprintf(w, "Document: %s\n", run.Document)
	fmt.Fprintf(w, "Origin:   %s\n", run.Origin)
	fmt.Fprintf(w, "Created:  %s\n", formatTimestamp(run.CreatedAt))
	fmt.Fprintf(w, "Records:  %d (%d clean, %d failing)\n", run.Records, run.Clean(), run.Failing)
	fmt.Fprintf(w, "Adjusted: %s (speed factor %s)\n",
		ale.FormatDuration(run.AdjustedSeconds), formatFactor(run.SpeedFactor))
	fmt.Fprintln(w)

	if len(run.GlobalErrors) > 0 {
		printLines(w, renderSectionHeader("Global errors", colorize))
		for _, msg := range run.GlobalErrors {
			fmt.Fprintln(w, paint(statusIndent+msg, ansiRed, colorize))
		}
		fmt.Fprintln(w)
	}

	if len(detail.Records) > 0 {
		rows := make([][]string, 0, len(detail.Records))
		for _, rec := range detail.Records {
			verdict := "OK"
			if !rec.OK {
				verdict = rec.Error
			}
			rows = append(rows, []string{strconv.Itoa(rec.Line), rec.Name, rec.SourceFile, verdict})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Line", "Name", "Source File", "Erreur"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		))
	}

	if len(detail.Exports) > 0 {
		fmt.Fprintln(w)
		printLines(w, renderSectionHeader("Exports", colorize))
		for _, exp := range detail.Exports {
			fmt.Fprintf(w, "%s%-4s %s  %s\n", statusIndent, exp.Kind, formatTimestamp(exp.CreatedAt), exp.Path)
		}
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
