package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mkoren/pylyze/internal/analysis"
)

func TestSARIFWriter(t *testing.T) {
	rep := analysis.Parse(sampleReport)
	stats := analysis.ComputeStatistics(rep)

	var buf bytes.Buffer
	w := &SARIFWriter{}
	if err := w.Write(&buf, rep, stats); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if log.Version != "2.1.0" {
		t.Errorf("version = %q, want %q", log.Version, "2.1.0")
	}
	if len(log.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(log.Runs))
	}

	run := log.Runs[0]
	if run.Tool.Driver.Name != "pylint" {
		t.Errorf("driver name = %q, want %q", run.Tool.Driver.Name, "pylint")
	}
	if len(run.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(run.Results))
	}

	first := run.Results[0]
	if first.RuleID != "pylint/E0001" {
		t.Errorf("ruleId = %q, want %q", first.RuleID, "pylint/E0001")
	}
	if first.Level != "error" {
		t.Errorf("level = %q, want %q", first.Level, "error")
	}
	if len(first.Locations) != 1 {
		t.Fatalf("locations = %d, want 1", len(first.Locations))
	}
	phys := first.Locations[0].PhysicalLocation
	if phys.ArtifactLocation.URI != "foo.py" {
		t.Errorf("uri = %q, want %q", phys.ArtifactLocation.URI, "foo.py")
	}
	if phys.Region == nil || phys.Region.StartLine != 1 {
		t.Errorf("region = %+v, want startLine 1", phys.Region)
	}

	if run.Results[1].Level != "warning" {
		t.Errorf("second level = %q, want %q", run.Results[1].Level, "warning")
	}
	if len(run.Tool.Driver.Rules) != 2 {
		t.Errorf("rules = %d, want 2", len(run.Tool.Driver.Rules))
	}
}

func TestSARIFWriter_LevelMapping(t *testing.T) {
	tests := []struct {
		severity analysis.Severity
		want     string
	}{
		{analysis.SeverityFatal, "error"},
		{analysis.SeverityError, "error"},
		{analysis.SeverityWarning, "warning"},
		{analysis.SeverityConvention, "note"},
		{analysis.SeverityRefactor, "note"},
		{analysis.SeverityInformation, "note"},
		{analysis.Severity('X'), "note"},
	}
	for _, tt := range tests {
		if got := severityToLevel(tt.severity); got != tt.want {
			t.Errorf("severityToLevel(%q) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSARIFWriter_NonNumericLine(t *testing.T) {
	// A diagnostic whose second segment is not a line number gets a location
	// without a region.
	rep := analysis.NewReport()
	rep.Add("foo", analysis.Diagnostic{
		Location: "foo.py",
		Code:     "E0001",
		Category: analysis.SeverityError,
		Raw:      "foo.py:abc:0: E0001: odd line",
	})

	var buf bytes.Buffer
	w := &SARIFWriter{}
	if err := w.Write(&buf, rep, analysis.ComputeStatistics(rep)); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	phys := log.Runs[0].Results[0].Locations[0].PhysicalLocation
	if phys.Region != nil {
		t.Errorf("region = %+v, want nil", phys.Region)
	}
}
