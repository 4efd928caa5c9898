package reconcile

import (
	"strings"
	"testing"
)

func TestResult_RecordCounters(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want Summary
	}{
		{"create", Operation{Type: OpCreate, Success: true}, Summary{Created: 1}},
		{"update", Operation{Type: OpUpdate, Success: true}, Summary{Updated: 1}},
		{"rename", Operation{Type: OpRename, Success: true}, Summary{Renamed: 1}},
		{"delete", Operation{Type: OpDelete, Success: true}, Summary{Deleted: 1}},
		{"skip", Operation{Type: OpSkip, Success: true}, Summary{Skipped: 1}},
		{"failed create counts only as failure", Operation{Type: OpCreate, Success: false}, Summary{Failed: 1}},
		{"failed delete counts only as failure", Operation{Type: OpDelete, Success: false}, Summary{Failed: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{}
			r.record(tt.op)
			if r.Summary != tt.want {
				t.Errorf("got %+v, want %+v", r.Summary, tt.want)
			}
		})
	}
}

func TestResult_Success(t *testing.T) {
	r := &Result{}
	if !r.Success() {
		t.Error("empty result should be successful")
	}
	r.record(Operation{Type: OpCreate, Success: true})
	if !r.Success() {
		t.Error("result with only successful ops should be successful")
	}
	r.record(Operation{Type: OpUpdate, Success: false, Error: "boom"})
	if r.Success() {
		t.Error("result with a failure should not be successful")
	}
}

func TestResult_Changed(t *testing.T) {
	r := &Result{}
	r.record(Operation{Type: OpCreate, Success: true})
	r.record(Operation{Type: OpRename, Success: true})
	r.record(Operation{Type: OpSkip, Success: true})
	if r.Changed() != 2 {
		t.Errorf("expected 2 changes, got %d", r.Changed())
	}
}

func TestResult_Text(t *testing.T) {
	r := &Result{DryRun: true}
	r.record(Operation{Type: OpCreate, Label: "bug", Success: true})
	r.record(Operation{Type: OpDelete, Label: "stale", Success: false, Error: "403 - Forbidden"})

	text := r.Text()
	if !strings.Contains(text, "Dry run") {
		t.Error("expected dry-run notice")
	}
	if !strings.Contains(text, "Created: 1") {
		t.Errorf("expected created count in:\n%s", text)
	}
	if !strings.Contains(text, "delete stale: 403 - Forbidden") {
		t.Errorf("expected failure detail in:\n%s", text)
	}
}
