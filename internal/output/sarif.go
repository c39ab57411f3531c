package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkoren/pylyze/internal/analysis"
)

// SARIFWriter outputs diagnostics in SARIF v2.1.0 format.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, rep *analysis.Report, stats analysis.Statistics) error {
	sarif := buildSARIF(rep)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// SARIF schema types (v2.1.0)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	ShortDescription sarifMessage       `json:"shortDescription"`
	DefaultConfig    sarifDefaultConfig `json:"defaultConfiguration"`
}

type sarifDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

func buildSARIF(rep *analysis.Report) sarifLog {
	rulesMap := make(map[string]sarifRule)
	var ruleOrder []string
	var results []sarifResult

	for _, label := range rep.Modules() {
		for _, d := range rep.Diagnostics(label) {
			ruleID := "pylint/" + d.Code

			// Register rule if not seen
			if _, ok := rulesMap[ruleID]; !ok {
				rulesMap[ruleID] = sarifRule{
					ID:               ruleID,
					Name:             d.Code,
					ShortDescription: sarifMessage{Text: ruleDescription(d)},
					DefaultConfig:    sarifDefaultConfig{Level: severityToLevel(d.Category)},
				}
				ruleOrder = append(ruleOrder, ruleID)
			}

			result := sarifResult{
				RuleID:  ruleID,
				Level:   severityToLevel(d.Category),
				Message: sarifMessage{Text: d.Raw},
			}
			if loc, ok := physicalLocation(d); ok {
				result.Locations = append(result.Locations, loc)
			}

			results = append(results, result)
		}
	}

	var rules []sarifRule
	for _, id := range ruleOrder {
		rules = append(rules, rulesMap[id])
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "pylint",
						InformationURI: "https://pylint.readthedocs.io/en/latest/user_guide/messages/messages_overview.html",
						Rules:          rules,
					},
				},
				Results: results,
			},
		},
	}
}

// severityToLevel maps a pylint category to a SARIF level.
func severityToLevel(s analysis.Severity) string {
	switch s {
	case analysis.SeverityFatal, analysis.SeverityError:
		return "error"
	case analysis.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

func ruleDescription(d analysis.Diagnostic) string {
	if name := d.Category.Name(); name != "" {
		return name + " " + d.Code
	}
	return d.Code
}

// physicalLocation builds a SARIF location from the diagnostic's path plus a
// best-effort line number from the second colon segment of the raw line.
func physicalLocation(d analysis.Diagnostic) (sarifLocation, bool) {
	if d.Location == "" {
		return sarifLocation{}, false
	}
	loc := sarifLocation{
		PhysicalLocation: sarifPhysicalLocation{
			ArtifactLocation: sarifArtifactLocation{URI: d.Location},
		},
	}
	parts := strings.Split(d.Raw, ":")
	if len(parts) > 1 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && n > 0 {
			loc.PhysicalLocation.Region = &sarifRegion{StartLine: n, EndLine: n}
		}
	}
	return loc, true
}
