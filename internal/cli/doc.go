// Package cli wires together the Cobra command tree for the pylyze binary.
//
// It defines the root command and all subcommands (analyze, config, version),
// binds flags, reads configuration, runs the parse/aggregate/format pipeline,
// and returns deterministic exit codes for CI gating.
package cli
