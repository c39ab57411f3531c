package output

import (
	"fmt"
	"io"

	"github.com/mkoren/pylyze/internal/analysis"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, rep *analysis.Report, stats analysis.Statistics) error {
	fmt.Fprintf(w, "## Pylint Analysis\n\n")

	// Summary table
	fmt.Fprintf(w, "| Category | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	fmt.Fprintf(w, "| Fatal       | %d |\n", stats.Counts.Fatals)
	fmt.Fprintf(w, "| Error       | %d |\n", stats.Counts.Errors)
	fmt.Fprintf(w, "| Warning     | %d |\n", stats.Counts.Warnings)
	fmt.Fprintf(w, "| Refactor    | %d |\n", stats.Counts.Refactors)
	fmt.Fprintf(w, "| Convention  | %d |\n", stats.Counts.Conventions)
	fmt.Fprintf(w, "| Information | %d |\n", stats.Counts.Informations)
	fmt.Fprintf(w, "| **Total**   | **%d** |\n\n", stats.TotalIssues)

	fmt.Fprintf(w, "Estimated false positive rate: %.2f%%\n\n", stats.FalsePositiveRate)

	if stats.Critical() == 0 {
		fmt.Fprintln(w, "No potential bugs found. :white_check_mark:")
		return nil
	}

	// Collapsible section per module listing its critical diagnostics
	fmt.Fprintf(w, "### Potential Bugs\n\n")
	for _, label := range rep.Modules() {
		criticals := criticalDiagnostics(rep.Diagnostics(label))
		if len(criticals) == 0 {
			continue
		}

		fmt.Fprintf(w, "<details>\n<summary>%s (%d)</summary>\n\n", label, len(criticals))
		for _, d := range criticals {
			fmt.Fprintf(w, "- **%s** `%s` %s\n", d.Category.Name(), d.Code, d.Raw)
		}
		fmt.Fprintf(w, "\n</details>\n\n")
	}

	return nil
}

func criticalDiagnostics(ds []analysis.Diagnostic) []analysis.Diagnostic {
	var out []analysis.Diagnostic
	for _, d := range ds {
		if d.Category == analysis.SeverityError || d.Category == analysis.SeverityFatal {
			out = append(out, d)
		}
	}
	return out
}
