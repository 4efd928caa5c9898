// Package e2e provides testing infrastructure for end-to-end reconciliation
// tests. It wires the manifest loader, the reconciliation engine, and an
// in-memory label store into a single workflow the way the CLI does.
package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauern/labelsync/internal/label"
	"github.com/klauern/labelsync/internal/labelfile"
	"github.com/klauern/labelsync/internal/reconcile"
	"github.com/klauern/labelsync/internal/store"
)

// Harness manages an isolated manifest directory and an in-memory label
// store seeded with a remote state.
type Harness struct {
	t     *testing.T
	dir   string
	Store *store.Memory
}

// NewHarness creates a harness whose remote starts with the given labels.
func NewHarness(t *testing.T, seed ...label.RemoteLabel) *Harness {
	t.Helper()
	return &Harness{
		t:     t,
		dir:   t.TempDir(),
		Store: store.NewMemory(seed...),
	}
}

// WriteManifest writes content under the harness directory and returns
// the full path.
func (h *Harness) WriteManifest(name, content string) string {
	h.t.Helper()
	path := filepath.Join(h.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		h.t.Fatalf("mkdir for manifest: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		h.t.Fatalf("write manifest: %v", err)
	}
	return path
}

// Load parses and validates the manifest at path.
func (h *Harness) Load(path string) *label.Manifest {
	h.t.Helper()
	m, err := labelfile.Load(path)
	if err != nil {
		h.t.Fatalf("load manifest: %v", err)
	}
	return m
}

// Sync loads the manifest file and reconciles the store against it.
func (h *Harness) Sync(name, content string, opts reconcile.Options) *reconcile.Result {
	h.t.Helper()
	path := h.WriteManifest(name, content)
	m := h.Load(path)
	return reconcile.New(h.Store, nil).Reconcile(context.Background(), m, opts)
}

// Remote returns the current remote labels in listing order.
func (h *Harness) Remote() []label.RemoteLabel {
	return h.Store.Snapshot()
}
