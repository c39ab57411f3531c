// Pylyze is a CLI for analyzing pylint output.
//
// It parses a saved pylint report, classifies each diagnostic by its severity
// category, and writes a summary listing potential bugs (Fatal and Error
// diagnostics) alongside per-category counts and an estimated false positive
// rate. The rate treats everything outside Fatal and Error as a false
// positive, so read it as an approximation.
//
// Usage:
//
//	pylint mypackage > pylint_out.txt
//	pylyze analyze pylint_out.txt analysis_report.txt
//	pylyze analyze pylint_out.txt --format json
//	pylyze analyze pylint_out.txt --fail-on error
//
// See https://github.com/mkoren/pylyze for full documentation.
package main
