// Package reconcile implements the label reconciliation engine: it diffs a
// desired label manifest against the current remote state and drives the
// minimal sequence of create, update, rename, and delete operations through
// a label store.
package reconcile

// OpType identifies the kind of decision recorded for a label.
type OpType string

const (
	// OpCreate indicates a label was created.
	OpCreate OpType = "create"

	// OpUpdate indicates an existing label's color or description changed.
	OpUpdate OpType = "update"

	// OpRename indicates a label was renamed from one of its aliases,
	// applying color and description in the same call.
	OpRename OpType = "rename"

	// OpDelete indicates a label was deleted.
	OpDelete OpType = "delete"

	// OpSkip indicates no change was needed, or a deletion target was
	// already absent.
	OpSkip OpType = "skip"
)

// Details carries the field values involved in a mutation, for reporting.
type Details struct {
	Color          string `json:"color,omitempty"`
	Description    string `json:"description,omitempty"`
	OldColor       string `json:"old_color,omitempty"`
	OldDescription string `json:"old_description,omitempty"`
}

// Operation records one engine decision. Operations are immutable once
// appended to a Result.
type Operation struct {
	// Type is the kind of operation.
	Type OpType `json:"type"`

	// Label is the desired label name the operation targets.
	Label string `json:"label"`

	// From is the alias a rename started from. Empty for other types.
	From string `json:"from,omitempty"`

	// Success reports whether the store accepted the operation. Skips are
	// always successful.
	Success bool `json:"success"`

	// Error holds the formatted store failure when Success is false.
	Error string `json:"error,omitempty"`

	// Details holds the field values involved, when a mutation occurred.
	Details *Details `json:"details,omitempty"`
}
