// Package output formats analysis reports for display or machine consumption.
//
// Four formats are supported:
//   - text     — the classic report file (default): potential bugs plus statistics
//   - json     — full structured JSON report
//   - markdown — PR-comment-friendly summary with collapsible per-module sections
//   - sarif    — SARIF v2.1.0 for upload to GitHub Advanced Security and other CI tools
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer], an [*analysis.Report], and its
// [analysis.Statistics].  [WriteReport] is a convenience helper that handles
// destination selection.
package output
