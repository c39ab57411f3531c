package cli

import (
	"fmt"
	"os"

	"github.com/mkoren/pylyze/internal/analysis"
	"github.com/mkoren/pylyze/internal/config"
	"github.com/mkoren/pylyze/internal/output"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagFailOn string
)

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown, sarif)")
	cmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Fail on severity threshold (none, information, convention, refactor, warning, error, fatal)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailOn != "" {
		m["failOn"] = flagFailOn
	}
	return m
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input> [output]",
	Short: "Analyze a saved pylint report",
	Long:  "Analyze parses a saved pylint report, aggregates severity statistics, and writes the result to the output path (or stdout when omitted).",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		report := analysis.Parse(string(data))
		stats := analysis.ComputeStatistics(report)

		var outPath string
		if len(args) == 2 {
			outPath = args[1]
		}

		if err := output.WriteReport(report, stats, cfg.Format, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if outPath != "" {
			fmt.Fprintf(os.Stdout, "Analysis completed and saved to '%s'.\n", outPath)
		}

		// Check fail-on threshold
		if cfg.FailOn != "none" && cfg.FailOn != "" {
			for _, label := range report.Modules() {
				for _, d := range report.Diagnostics(label) {
					if analysis.MeetsThreshold(d.Category, cfg.FailOn) {
						exitCode = ExitFindings
						return nil
					}
				}
			}
		}

		return nil
	},
}

func init() {
	addAnalyzeFlags(analyzeCmd)
}
