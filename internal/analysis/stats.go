package analysis

// CategoryCounts holds per-category totals for the six pylint severity codes.
type CategoryCounts struct {
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Conventions  int `json:"conventions"`
	Refactors    int `json:"refactors"`
	Fatals       int `json:"fatals"`
	Informations int `json:"informations"`
}

// Statistics is the aggregate view of a Report.
type Statistics struct {
	Counts            CategoryCounts `json:"counts"`
	TotalIssues       int            `json:"totalIssues"`
	FalsePositiveRate float64        `json:"falsePositiveRate"`
}

// Critical returns the number of critical issues (Fatal + Error).
func (s Statistics) Critical() int {
	return s.Counts.Fatals + s.Counts.Errors
}

// ComputeStatistics tallies a report's diagnostics by category and derives the
// estimated false positive rate. Diagnostics with unrecognized category codes
// contribute to no bucket and are excluded from the total.
func ComputeStatistics(r *Report) Statistics {
	var s Statistics
	for _, label := range r.Modules() {
		for _, d := range r.Diagnostics(label) {
			switch d.Category {
			case SeverityError:
				s.Counts.Errors++
			case SeverityWarning:
				s.Counts.Warnings++
			case SeverityConvention:
				s.Counts.Conventions++
			case SeverityRefactor:
				s.Counts.Refactors++
			case SeverityFatal:
				s.Counts.Fatals++
			case SeverityInformation:
				s.Counts.Informations++
			}
		}
	}
	s.TotalIssues = s.Counts.Errors + s.Counts.Warnings + s.Counts.Conventions +
		s.Counts.Refactors + s.Counts.Fatals + s.Counts.Informations

	// Anything outside Fatal/Error counts as a false positive. The rate is an
	// estimate and stays 0.0 when there are no criticals, even with a nonzero
	// total.
	critical := s.Critical()
	if critical == 0 {
		s.FalsePositiveRate = 0.0
	} else {
		s.FalsePositiveRate = 100 - (float64(critical)/float64(s.TotalIssues))*100
	}

	return s
}
