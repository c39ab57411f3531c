package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mkoren/pylyze/internal/analysis"
)

// JSONWriter outputs the full report as JSON.
type JSONWriter struct{}

type jsonReport struct {
	Modules    []jsonModule        `json:"modules"`
	Statistics analysis.Statistics `json:"statistics"`
}

type jsonModule struct {
	Name        string           `json:"name"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Location string `json:"location"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Severity string `json:"severity,omitempty"`
	Raw      string `json:"raw"`
}

func (j *JSONWriter) Write(w io.Writer, rep *analysis.Report, stats analysis.Statistics) error {
	doc := jsonReport{Modules: []jsonModule{}, Statistics: stats}
	for _, label := range rep.Modules() {
		mod := jsonModule{Name: label, Diagnostics: []jsonDiagnostic{}}
		for _, d := range rep.Diagnostics(label) {
			mod.Diagnostics = append(mod.Diagnostics, jsonDiagnostic{
				Location: d.Location,
				Code:     d.Code,
				Category: d.Category.String(),
				Severity: d.Category.Name(),
				Raw:      d.Raw,
			})
		}
		doc.Modules = append(doc.Modules, mod)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
