package analysis

import "strings"

// moduleMarker opens a module section in pylint's text output.
const moduleMarker = "************* Module "

// Parse scans pylint output line by line and groups diagnostics under the
// module sections they were reported in. Lines before the first module marker
// are ignored, as are blank lines. Malformed diagnostic lines (fewer than four
// colon-separated segments, or an empty severity segment) are dropped without
// error.
func Parse(text string) *Report {
	report := NewReport()
	current := ""
	inModule := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, moduleMarker) {
			current = strings.TrimSpace(line[len(moduleMarker):])
			report.StartModule(current)
			inModule = true
			continue
		}
		if !inModule || line == "" {
			continue
		}
		if d, ok := parseLine(line); ok {
			report.Add(current, d)
		}
	}

	return report
}

// parseLine splits one diagnostic line of the form
// "path:line:col: CODE: message". The severity category is the first character
// of the fourth segment. No validation of the category code happens here;
// unrecognized codes are stored as-is and fall out during aggregation.
func parseLine(line string) (Diagnostic, bool) {
	parts := strings.Split(line, ":")
	if len(parts) < 4 {
		return Diagnostic{}, false
	}
	code := strings.TrimSpace(parts[3])
	if code == "" {
		return Diagnostic{}, false
	}
	return Diagnostic{
		Location: strings.TrimSpace(parts[0]),
		Code:     code,
		Category: Severity(code[0]),
		Raw:      line,
	}, true
}
