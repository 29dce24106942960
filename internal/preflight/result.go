// Package preflight validates the host environment before any generation step runs.
package preflight

// Outcome classifies one check result.
type Outcome int

const (
	// Pass means the check found nothing to report.
	Pass Outcome = iota
	// Advisory is reported but never blocks installation.
	Advisory
	// Fatal blocks installation.
	Fatal
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Advisory:
		return "advisory"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Kind identifies the failure category of a non-passing check.
type Kind string

const (
	// KindNone is used for passing results.
	KindNone Kind = ""
	// KindToolMissing is a missing required tool.
	KindToolMissing Kind = "tool_missing"
	// KindToolAdvisoryMissing is a missing optional tool.
	KindToolAdvisoryMissing Kind = "tool_advisory_missing"
	// KindUncommittedChanges is a dirty or unreadable working tree.
	KindUncommittedChanges Kind = "uncommitted_changes"
	// KindToolOutdated is a tool older than the configured minimum.
	KindToolOutdated Kind = "tool_outdated"
)

// Result is the outcome of a single check.
type Result struct {
	Check   string
	Outcome Outcome
	Kind    Kind
	// Tool is set for tool presence and version checks.
	Tool    string
	Message string
}

// Report aggregates every check run by CheckAll.
type Report struct {
	// Blocked is true iff at least one result is Fatal.
	Blocked bool
	// Messages holds the message of every non-passing result, in check order.
	Messages []string
	Results  []Result
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
	if result.Outcome == Pass {
		return
	}
	if result.Outcome == Fatal {
		r.Blocked = true
	}
	r.Messages = append(r.Messages, result.Message)
}

// Filter returns the results with the given outcome, in check order.
func (r Report) Filter(outcome Outcome) []Result {
	var out []Result
	for _, result := range r.Results {
		if result.Outcome == outcome {
			out = append(out, result)
		}
	}
	return out
}

// Fatals returns the fatal results.
func (r Report) Fatals() []Result {
	return r.Filter(Fatal)
}

// Advisories returns the advisory results.
func (r Report) Advisories() []Result {
	return r.Filter(Advisory)
}
