package analysis

// Severity is the single-character category code pylint assigns to a message.
type Severity byte

const (
	SeverityError       Severity = 'E'
	SeverityWarning     Severity = 'W'
	SeverityConvention  Severity = 'C'
	SeverityRefactor    Severity = 'R'
	SeverityFatal       Severity = 'F'
	SeverityInformation Severity = 'I'
)

// Name returns the human-readable category name, or "" for unrecognized codes.
func (s Severity) Name() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityConvention:
		return "Convention"
	case SeverityRefactor:
		return "Refactor"
	case SeverityFatal:
		return "Fatal"
	case SeverityInformation:
		return "Information"
	default:
		return ""
	}
}

// Known reports whether s is one of the six recognized pylint codes.
func (s Severity) Known() bool {
	return s.Name() != ""
}

// String returns the single-character code itself.
func (s Severity) String() string {
	return string(byte(s))
}

// Rank returns a numeric rank for threshold comparisons (higher = more severe).
// Unrecognized codes rank below everything.
func (s Severity) Rank() int {
	switch s {
	case SeverityFatal:
		return 6
	case SeverityError:
		return 5
	case SeverityWarning:
		return 4
	case SeverityRefactor:
		return 3
	case SeverityConvention:
		return 2
	case SeverityInformation:
		return 1
	default:
		return 0
	}
}

// ParseSeverityName maps a lowercase category name to its code.
func ParseSeverityName(name string) (Severity, bool) {
	switch name {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "convention":
		return SeverityConvention, true
	case "refactor":
		return SeverityRefactor, true
	case "fatal":
		return SeverityFatal, true
	case "information":
		return SeverityInformation, true
	default:
		return 0, false
	}
}

// MeetsThreshold returns true if severity is at or above the named threshold.
func MeetsThreshold(s Severity, threshold string) bool {
	if threshold == "none" || threshold == "" {
		return false
	}
	t, ok := ParseSeverityName(threshold)
	if !ok {
		return false
	}
	return s.Rank() >= t.Rank()
}

// Diagnostic is one reported pylint message.
type Diagnostic struct {
	Location string   // first colon-separated segment, usually the file path
	Code     string   // full message code, e.g. "E0001"
	Category Severity // first character of Code
	Raw      string   // the original line, trimmed
}

// Report is the parsed pylint output: diagnostics grouped by module, iterated
// in the order modules first appear.
type Report struct {
	order   []string
	modules map[string][]Diagnostic
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{modules: make(map[string][]Diagnostic)}
}

// StartModule opens a module section. Reopening a label discards its previous
// diagnostics but keeps the label's original position in iteration order.
func (r *Report) StartModule(label string) {
	if _, ok := r.modules[label]; !ok {
		r.order = append(r.order, label)
	}
	r.modules[label] = nil
}

// Add appends a diagnostic to the named module, opening it if needed.
func (r *Report) Add(label string, d Diagnostic) {
	if _, ok := r.modules[label]; !ok {
		r.order = append(r.order, label)
	}
	r.modules[label] = append(r.modules[label], d)
}

// Modules returns module labels in first-appearance order.
func (r *Report) Modules() []string {
	return r.order
}

// Diagnostics returns the diagnostics recorded for a module label.
func (r *Report) Diagnostics(label string) []Diagnostic {
	return r.modules[label]
}

// Len returns the number of modules.
func (r *Report) Len() int {
	return len(r.order)
}

// TotalDiagnostics returns the number of diagnostics across all modules.
func (r *Report) TotalDiagnostics() int {
	n := 0
	for _, ds := range r.modules {
		n += len(ds)
	}
	return n
}
