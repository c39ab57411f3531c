package analysis

import "testing"

func TestComputeStatistics(t *testing.T) {
	report := Parse(sampleReport)
	stats := ComputeStatistics(report)

	if stats.Counts.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Counts.Errors)
	}
	if stats.Counts.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", stats.Counts.Warnings)
	}
	if stats.Counts.Conventions != 0 || stats.Counts.Refactors != 0 ||
		stats.Counts.Fatals != 0 || stats.Counts.Informations != 0 {
		t.Errorf("unexpected nonzero counts: %+v", stats.Counts)
	}
	if stats.TotalIssues != 2 {
		t.Errorf("TotalIssues = %d, want 2", stats.TotalIssues)
	}
	if stats.Critical() != 1 {
		t.Errorf("Critical = %d, want 1", stats.Critical())
	}
	if stats.FalsePositiveRate != 50.0 {
		t.Errorf("FalsePositiveRate = %v, want 50.0", stats.FalsePositiveRate)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(NewReport())

	if stats.TotalIssues != 0 {
		t.Errorf("TotalIssues = %d, want 0", stats.TotalIssues)
	}
	if stats.FalsePositiveRate != 0.0 {
		t.Errorf("FalsePositiveRate = %v, want 0.0", stats.FalsePositiveRate)
	}
}

func TestComputeStatistics_NoCriticals(t *testing.T) {
	// With zero Fatal/Error diagnostics the rate is exactly 0.0, not the
	// general formula's 100%.
	input := `************* Module foo
foo.py:1:0: W0611: unused import (unused-import)
foo.py:2:0: C0114: missing docstring (missing-module-docstring)
foo.py:3:0: R0903: too few public methods (too-few-public-methods)
`
	stats := ComputeStatistics(Parse(input))

	if stats.TotalIssues != 3 {
		t.Fatalf("TotalIssues = %d, want 3", stats.TotalIssues)
	}
	if stats.FalsePositiveRate != 0.0 {
		t.Errorf("FalsePositiveRate = %v, want exactly 0.0", stats.FalsePositiveRate)
	}
}

func TestComputeStatistics_AllCritical(t *testing.T) {
	input := `************* Module foo
foo.py:1:0: E0001: syntax error (syntax-error)
foo.py:2:0: F0002: crashed (astroid-error)
`
	stats := ComputeStatistics(Parse(input))

	if stats.Counts.Errors != 1 || stats.Counts.Fatals != 1 {
		t.Fatalf("counts = %+v, want 1 error and 1 fatal", stats.Counts)
	}
	if stats.FalsePositiveRate != 0.0 {
		t.Errorf("FalsePositiveRate = %v, want 0.0 (all issues critical)", stats.FalsePositiveRate)
	}
}

func TestComputeStatistics_UnknownCodeExcluded(t *testing.T) {
	input := `************* Module foo
foo.py:1:0: X9999: mystery message
foo.py:2:0: E0001: syntax error (syntax-error)
`
	report := Parse(input)
	stats := ComputeStatistics(report)

	if report.TotalDiagnostics() != 2 {
		t.Fatalf("parser kept %d diagnostics, want 2", report.TotalDiagnostics())
	}
	if stats.TotalIssues != 1 {
		t.Errorf("TotalIssues = %d, want 1 (unknown code excluded)", stats.TotalIssues)
	}
}

func TestComputeStatistics_MatchesParserTotal(t *testing.T) {
	report := Parse(sampleReport)
	stats := ComputeStatistics(report)

	known := 0
	for _, label := range report.Modules() {
		for _, d := range report.Diagnostics(label) {
			if d.Category.Known() {
				known++
			}
		}
	}
	if stats.TotalIssues != known {
		t.Errorf("TotalIssues = %d, want %d (known-category diagnostics)", stats.TotalIssues, known)
	}
}

func TestSeverityName(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityError, "Error"},
		{SeverityWarning, "Warning"},
		{SeverityConvention, "Convention"},
		{SeverityRefactor, "Refactor"},
		{SeverityFatal, "Fatal"},
		{SeverityInformation, "Information"},
		{Severity('X'), ""},
	}
	for _, tt := range tests {
		if got := tt.severity.Name(); got != tt.want {
			t.Errorf("Severity(%q).Name() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	tests := []struct {
		severity Severity
		want     int
	}{
		{SeverityFatal, 6},
		{SeverityError, 5},
		{SeverityWarning, 4},
		{SeverityRefactor, 3},
		{SeverityConvention, 2},
		{SeverityInformation, 1},
		{Severity('X'), 0},
	}
	for _, tt := range tests {
		if got := tt.severity.Rank(); got != tt.want {
			t.Errorf("Severity(%q).Rank() = %d, want %d", tt.severity, got, tt.want)
		}
	}
}

func TestParseSeverityName(t *testing.T) {
	for name, want := range map[string]Severity{
		"error":       SeverityError,
		"warning":     SeverityWarning,
		"convention":  SeverityConvention,
		"refactor":    SeverityRefactor,
		"fatal":       SeverityFatal,
		"information": SeverityInformation,
	} {
		got, ok := ParseSeverityName(name)
		if !ok || got != want {
			t.Errorf("ParseSeverityName(%q) = %q, %v; want %q, true", name, got, ok, want)
		}
	}

	if _, ok := ParseSeverityName("high"); ok {
		t.Error("ParseSeverityName(\"high\") should not match")
	}
}

func TestMeetsThreshold(t *testing.T) {
	tests := []struct {
		severity  Severity
		threshold string
		want      bool
	}{
		{SeverityFatal, "none", false},
		{SeverityFatal, "", false},
		{SeverityFatal, "fatal", true},
		{SeverityError, "fatal", false},
		{SeverityError, "error", true},
		{SeverityError, "warning", true},
		{SeverityWarning, "error", false},
		{SeverityConvention, "information", true},
		{SeverityInformation, "convention", false},
		{Severity('X'), "information", false},
		{SeverityFatal, "bogus", false},
	}
	for _, tt := range tests {
		got := MeetsThreshold(tt.severity, tt.threshold)
		if got != tt.want {
			t.Errorf("MeetsThreshold(%q, %q) = %v, want %v", tt.severity, tt.threshold, got, tt.want)
		}
	}
}

func TestReport_AddWithoutStartModule(t *testing.T) {
	r := NewReport()
	r.Add("foo", Diagnostic{Code: "E0001", Category: SeverityError})

	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	if len(r.Diagnostics("foo")) != 1 {
		t.Errorf("foo has %d diagnostics, want 1", len(r.Diagnostics("foo")))
	}
}

func TestReport_StartModuleResets(t *testing.T) {
	r := NewReport()
	r.StartModule("foo")
	r.Add("foo", Diagnostic{Code: "E0001", Category: SeverityError})
	r.StartModule("foo")

	if len(r.Diagnostics("foo")) != 0 {
		t.Errorf("StartModule did not reset foo's diagnostics")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1 (no duplicate label)", r.Len())
	}
}
