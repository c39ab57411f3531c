// Package analysis parses pylint's textual output and aggregates its
// diagnostics into per-category statistics.
//
// [Parse] groups diagnostic lines under "************* Module" section headers
// into a [Report]; [ComputeStatistics] tallies the six pylint severity
// categories and derives the estimated false positive rate (the share of
// counted issues that are neither Fatal nor Error).
package analysis
