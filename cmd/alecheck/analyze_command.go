package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"alecheck/internal/api"
	"alecheck/internal/config"
	"alecheck/internal/export"
	"alecheck/internal/ledger"
	"alecheck/internal/preflight"
)

// stdinDocument names documents piped through "-".
const stdinDocument = "stdin.ale"

type analyzeOutput struct {
	api.Analysis
	Manifest string            `json:"manifest,omitempty"`
	Ingest   *export.XMLReport `json:"ingest,omitempty"`
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		writeCSV   bool
		writeXML   bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file.ale|->",
		Short: "Validate an ALE document and report every violation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.openSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if writeCSV || writeXML {
				if err := requirePreflight(sess.cfg, preflight.Target{CSV: writeCSV, XML: writeXML}); err != nil {
					return err
				}
			}

			document, data, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			analysis, err := sess.svc.Analyze(cmd.Context(), document, ledger.OriginCLI, data)
			if err != nil {
				return err
			}

			out := analyzeOutput{Analysis: analysis}
			if writeCSV {
				path, err := sess.svc.ExportCSV(cmd.Context(), analysis)
				if err != nil {
					return err
				}
				out.Manifest = path
			}
			if writeXML {
				report, err := sess.svc.ExportXML(cmd.Context(), analysis)
				if err != nil {
					return err
				}
				out.Ingest = &report
			}

			if jsonOutput {
				if err := writeJSON(cmd, out); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				renderAnalysis(w, out, shouldColorize(w))
			}

			if strict && (analysis.Summary.Failing > 0 || analysis.Summary.GlobalErrors > 0) {
				return fmt.Errorf("%s: %d failing record(s), %d global error(s)",
					document, analysis.Summary.Failing, analysis.Summary.GlobalErrors)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the analysis as JSON")
	cmd.Flags().BoolVar(&writeCSV, "csv", false, "Write a batch manifest to paths.csv_dir")
	cmd.Flags().BoolVar(&writeXML, "xml", false, "Write ingest descriptors for clean records to paths.xml_dir")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any record or the document fails")
	return cmd
}

func readDocument(cmd *cobra.Command, path string) (string, []byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return stdinDocument, data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read document: %w", err)
	}
	return filepath.Base(path), data, nil
}

func requirePreflight(cfg *config.Config, target preflight.Target) error {
	failed := preflight.Failed(preflight.RunAll(cfg, target))
	if len(failed) == 0 {
		return nil
	}
	parts := make([]string, 0, len(failed))
	for _, r := range failed {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Name, r.Detail))
	}
	return errors.New("preflight failed: " + strings.Join(parts, "; "))
}

func renderAnalysis(w io.Writer, out analyzeOutput, colorize bool) {
	a := out.Analysis
	fmt.Fprintf(w, "Document: %s\n", a.Document)
	if a.RunID != "" {
		fmt.Fprintf(w, "Run:      %s\n", a.RunID)
	}
	fmt.Fprintln(w)

	if len(a.GlobalErrors) > 0 {
		printLines(w, renderSectionHeader("Global errors", colorize))
		for _, g := range a.GlobalErrors {
			fmt.Fprintln(w, paint(fmt.Sprintf("%s[%s] %s", statusIndent, g.Level, g.Message), ansiRed, colorize))
		}
		fmt.Fprintln(w)
	}

	if len(a.Rows) > 0 {
		rows := make([][]string, 0, len(a.Rows))
		for _, rec := range a.Rows {
			verdict := "OK"
			if !rec.OK() {
				verdict = rec.Error
			}
			rows = append(rows, []string{strconv.Itoa(rec.Line), rec.Name, rec.SourceFile, verdict})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Line", "Name", "Source File", "Erreur"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		))
		fmt.Fprintln(w)
	}

	printLines(w, renderSectionHeader("Summary", colorize))
	s := a.Summary
	recordKind := statusOK
	if s.Failing > 0 || s.GlobalErrors > 0 {
		recordKind = statusWarn
	}
	if s.Records == 0 && s.GlobalErrors > 0 {
		recordKind = statusError
	}
	fmt.Fprintln(w, renderStatusLine("Records", recordKind,
		fmt.Sprintf("%d total, %d clean, %d failing", s.Records, s.Clean, s.Failing), colorize))
	fmt.Fprintln(w, renderStatusLine("Total duration", statusInfo, s.Total, colorize))
	fmt.Fprintln(w, renderStatusLine("Adjusted", statusInfo,
		fmt.Sprintf("%s (speed factor %s)", s.Adjusted, formatFactor(s.SpeedFactor)), colorize))

	if out.Manifest != "" {
		fmt.Fprintln(w, renderStatusLine("CSV manifest", statusOK, out.Manifest, colorize))
	}
	if out.Ingest != nil {
		renderIngest(w, *out.Ingest, colorize)
	}
}

func renderIngest(w io.Writer, report export.XMLReport, colorize bool) {
	kind := statusOK
	if len(report.Skipped) > 0 {
		kind = statusWarn
	}
	fmt.Fprintln(w, renderStatusLine("XML descriptors", kind,
		fmt.Sprintf("%d written, %d skipped", len(report.Written), len(report.Skipped)), colorize))
	for _, path := range report.Written {
		fmt.Fprintf(w, "%s  %s\n", statusIndent, path)
	}
	for _, s := range report.Skipped {
		fmt.Fprintln(w, paint(fmt.Sprintf("%s  line %d %s: %s", statusIndent, s.Line, s.Name, s.Reason), ansiYellow, colorize))
	}
}
