package loadout

import "fmt"

// IssueKind classifies a non-fatal generation issue.
type IssueKind int

const (
	// IssueConfiguration: missing chance entry, missing template, unresolvable slot, depth limit.
	IssueConfiguration IssueKind = iota
	// IssueExhausted: a required slot found no compatible candidate after pool and fallback.
	IssueExhausted
	// IssueFilterMismatch: the accepted candidate is not allowed by the slot filter.
	IssueFilterMismatch
	// IssuePackingFailure: no room in any candidate container; the item was dropped.
	IssuePackingFailure
)

// String returns human-readable issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueConfiguration:
		return "configuration"
	case IssueExhausted:
		return "exhausted"
	case IssueFilterMismatch:
		return "filter_mismatch"
	case IssuePackingFailure:
		return "packing_failure"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Issue — одна запись отчёта генерации.
type Issue struct {
	Kind           IssueKind `json:"kind"`
	Slot           string    `json:"slot,omitempty"`
	ParentTemplate string    `json:"parent_template,omitempty"`
	Template       string    `json:"template,omitempty"`
	Reason         string    `json:"reason"`
}

// Report aggregates every issue of one generation, in the order they happened.
type Report struct {
	Issues []Issue `json:"issues,omitempty"`
}

// Count returns number of issues of the given kind.
func (r *Report) Count(kind IssueKind) int {
	n := 0
	for _, is := range r.Issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}

// Of returns issues of the given kind.
func (r *Report) Of(kind IssueKind) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Kind == kind {
			out = append(out, is)
		}
	}
	return out
}

// Len returns total number of issues.
func (r *Report) Len() int {
	return len(r.Issues)
}

// slotStatus is the outcome of one slot generation step.
type slotStatus int

const (
	statusEmpty   slotStatus = iota // roll failed or silently rejected
	statusFilled                    // item created
	statusSkipped                   // skipped with a reportable issue
)

// slotResult is returned one level up and folded into the Report by the caller.
type slotResult struct {
	status slotStatus
	index  int // arena index of the created item when filled
	issue  Issue
}

func filled(index int) slotResult {
	return slotResult{status: statusFilled, index: index}
}

func empty() slotResult {
	return slotResult{status: statusEmpty, index: -1}
}

func skipped(issue Issue) slotResult {
	return slotResult{status: statusSkipped, index: -1, issue: issue}
}

// MarshalText encodes the kind by name, so reports read well as JSON.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
