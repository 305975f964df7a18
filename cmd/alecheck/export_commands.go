package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alecheck/internal/ledger"
	"alecheck/internal/preflight"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Analyze a document and write its exports",
	}
	exportCmd.AddCommand(newExportCSVCommand(ctx))
	exportCmd.AddCommand(newExportXMLCommand(ctx))
	return exportCmd
}

func newExportCSVCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "csv <file.ale|->",
		Short: "Write the batch manifest (every record, with its errors)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := requirePreflight(sess.cfg, preflight.Target{CSV: true}); err != nil {
				return err
			}
			document, data, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			analysis, err := sess.svc.Analyze(cmd.Context(), document, ledger.OriginCLI, data)
			if err != nil {
				return err
			}
			path, err := sess.svc.ExportCSV(cmd.Context(), analysis)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, analyzeOutput{Analysis: analysis, Manifest: path})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote manifest with %d record(s) to %s\n", len(analysis.Rows), path)
			if analysis.Summary.Failing > 0 {
				fmt.Fprintf(out, "%d record(s) carry errors; see the error column\n", analysis.Summary.Failing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	return cmd
}

func newExportXMLCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "xml <file.ale|->",
		Short: "Write one ingest descriptor per clean record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := requirePreflight(sess.cfg, preflight.Target{XML: true}); err != nil {
				return err
			}
			document, data, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			analysis, err := sess.svc.Analyze(cmd.Context(), document, ledger.OriginCLI, data)
			if err != nil {
				return err
			}
			report, err := sess.svc.ExportXML(cmd.Context(), analysis)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, analyzeOutput{Analysis: analysis, Ingest: &report})
			}
			w := cmd.OutOrStdout()
			renderIngest(w, report, shouldColorize(w))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	return cmd
}
