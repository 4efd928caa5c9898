package reconcile

import (
	"fmt"
	"strings"
)

// Summary counts terminal operation records by outcome. Each recorded
// operation increments exactly one counter.
type Summary struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Renamed int `json:"renamed"`
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Result contains the complete outcome of a reconciliation run.
type Result struct {
	// Operations records every decision in the order it was made: desired
	// labels in manifest order, then the deletion sweep.
	Operations []Operation `json:"operations"`

	// Summary holds the per-outcome counters.
	Summary Summary `json:"summary"`

	// DryRun indicates the store suppressed mutations for this run.
	DryRun bool `json:"dry_run"`
}

// record appends an operation and bumps the matching counter. Failed
// operations count only as failures, regardless of type.
func (r *Result) record(op Operation) {
	r.Operations = append(r.Operations, op)
	if !op.Success {
		r.Summary.Failed++
		return
	}
	switch op.Type {
	case OpCreate:
		r.Summary.Created++
	case OpUpdate:
		r.Summary.Updated++
	case OpRename:
		r.Summary.Renamed++
	case OpDelete:
		r.Summary.Deleted++
	case OpSkip:
		r.Summary.Skipped++
	}
}

// Success returns true if no operation failed.
func (r *Result) Success() bool {
	return r.Summary.Failed == 0
}

// Changed returns the number of operations that mutated the store.
func (r *Result) Changed() int {
	return r.Summary.Created + r.Summary.Updated + r.Summary.Renamed + r.Summary.Deleted
}

// Failed returns the failed operations.
func (r *Result) Failed() []Operation {
	var out []Operation
	for _, op := range r.Operations {
		if !op.Success {
			out = append(out, op)
		}
	}
	return out
}

// Text returns a human-readable summary of the run.
func (r *Result) Text() string {
	var sb strings.Builder

	if r.DryRun {
		sb.WriteString("Dry run - no changes made\n")
	}

	sb.WriteString(fmt.Sprintf("  Created: %d\n", r.Summary.Created))
	sb.WriteString(fmt.Sprintf("  Updated: %d\n", r.Summary.Updated))
	sb.WriteString(fmt.Sprintf("  Renamed: %d\n", r.Summary.Renamed))
	sb.WriteString(fmt.Sprintf("  Deleted: %d\n", r.Summary.Deleted))
	sb.WriteString(fmt.Sprintf("  Skipped: %d\n", r.Summary.Skipped))
	sb.WriteString(fmt.Sprintf("  Failed:  %d\n", r.Summary.Failed))

	if failed := r.Failed(); len(failed) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, op := range failed {
			sb.WriteString(fmt.Sprintf("  - %s %s: %s\n", op.Type, op.Label, op.Error))
		}
	}

	return sb.String()
}
