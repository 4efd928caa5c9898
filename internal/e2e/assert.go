package e2e

import (
	"testing"

	"github.com/klauern/labelsync/internal/reconcile"
)

// AssertSuccess fails the test if any operation in the run failed.
func AssertSuccess(t *testing.T, r *reconcile.Result) {
	t.Helper()
	if !r.Success() {
		t.Fatalf("expected success, got failures: %+v", r.Failed())
	}
}

// AssertCounts fails the test if the run's summary differs from want.
func AssertCounts(t *testing.T, r *reconcile.Result, want reconcile.Summary) {
	t.Helper()
	if r.Summary != want {
		t.Errorf("summary = %+v, want %+v", r.Summary, want)
	}
}

// AssertRemoteNames fails the test if the remote labels are not exactly
// the given names, in order.
func AssertRemoteNames(t *testing.T, h *Harness, names ...string) {
	t.Helper()
	remote := h.Remote()
	if len(remote) != len(names) {
		t.Fatalf("remote has %d labels, want %d: %+v", len(remote), len(names), remote)
	}
	for i, want := range names {
		if remote[i].Name != want {
			t.Errorf("remote[%d] = %q, want %q", i, remote[i].Name, want)
		}
	}
}

// AssertRemoteLabel fails the test if the named remote label is missing
// or differs in color or description.
func AssertRemoteLabel(t *testing.T, h *Harness, name, color, description string) {
	t.Helper()
	for _, l := range h.Remote() {
		if l.Name != name {
			continue
		}
		if l.Color != color {
			t.Errorf("label %q color = %q, want %q", name, l.Color, color)
		}
		if l.Description != description {
			t.Errorf("label %q description = %q, want %q", name, l.Description, description)
		}
		return
	}
	t.Errorf("label %q not found in remote", name)
}
