package output

import (
	"fmt"
	"io"

	"github.com/mkoren/pylyze/internal/analysis"
)

// TextWriter outputs the classic analysis report: potential bugs (Fatal and
// Error diagnostics) in report order, then the category statistics.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, rep *analysis.Report, stats analysis.Statistics) error {
	ew := &errWriter{w: w}

	ew.println("Potential Bugs:")
	for _, label := range rep.Modules() {
		for _, d := range rep.Diagnostics(label) {
			if d.Category == analysis.SeverityError {
				ew.printf("Error: %s\n", d.Raw)
			}
			if d.Category == analysis.SeverityFatal {
				ew.printf("Fatal: %s\n", d.Raw)
			}
		}
	}

	ew.println("\nStatistics:")
	ew.printf("Total Issues: %d\n", stats.TotalIssues)
	ew.printf("Errors: %d\n", stats.Counts.Errors)
	ew.printf("Warnings: %d\n", stats.Counts.Warnings)
	ew.printf("Conventions: %d\n", stats.Counts.Conventions)
	ew.printf("Refactors: %d\n", stats.Counts.Refactors)
	ew.printf("Fatals: %d\n", stats.Counts.Fatals)
	ew.printf("Informations: %d\n", stats.Counts.Informations)
	ew.printf("Estimated False Positive Rate: %.2f%%\n", stats.FalsePositiveRate)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
