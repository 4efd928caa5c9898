package e2e

import (
	"testing"

	"github.com/klauern/labelsync/internal/label"
	"github.com/klauern/labelsync/internal/reconcile"
)

func TestBootstrapEmptyRepository(t *testing.T) {
	h := NewHarness(t)

	result := h.Sync("labels.yml", standardManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Created: 3})
	AssertRemoteNames(t, h, "bug", "enhancement", "documentation")
	AssertRemoteLabel(t, h, "bug", "d73a4a", "Something isn't working")

	// A second run must converge to all skips.
	result = h.Sync("labels.yml", standardManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Skipped: 3})
}

func TestConvergedRepositoryUntouched(t *testing.T) {
	h := NewHarness(t, githubDefaults()...)

	result := h.Sync("labels.yml", standardManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Skipped: 3})

	if len(h.Remote()) != len(githubDefaults()) {
		t.Errorf("remote changed size: %d labels", len(h.Remote()))
	}
	if len(h.Store.Calls) != 0 {
		t.Errorf("expected no mutating calls, got %v", h.Store.Calls)
	}
}

func TestAliasMigration(t *testing.T) {
	h := NewHarness(t,
		label.RemoteLabel{Name: "defect", Color: "ff0000", Description: "Old tracker import"},
		label.RemoteLabel{Name: "feature-request", Color: "0000ff"},
	)

	result := h.Sync("labels.yml", renameManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Renamed: 2})
	AssertRemoteNames(t, h, "bug", "enhancement")
	AssertRemoteLabel(t, h, "bug", "d73a4a", "")
	AssertRemoteLabel(t, h, "enhancement", "a2eeef", "")

	// Renames are one-time migrations; the next run is a no-op.
	result = h.Sync("labels.yml", renameManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Skipped: 2})
}

func TestDeclarativeCleanup(t *testing.T) {
	h := NewHarness(t,
		label.RemoteLabel{Name: "bug", Color: "d73a4a"},
		label.RemoteLabel{Name: "release-1.0", Color: "ededed"},
		label.RemoteLabel{Name: "dependabot/npm", Color: "0366d6"},
		label.RemoteLabel{Name: "stale", Color: "cccccc"},
	)

	result := h.Sync("labels.yml", declarativeManifest, reconcile.Options{Policy: reconcile.PolicyDeclarative})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Created: 1, Deleted: 1, Skipped: 1})
	AssertRemoteNames(t, h, "bug", "release-1.0", "dependabot/npm", "enhancement")
}

func TestExplicitDelete(t *testing.T) {
	h := NewHarness(t, githubDefaults()...)

	result := h.Sync("labels.yml", explicitDeleteManifest, reconcile.Options{Policy: reconcile.PolicyExplicit})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Deleted: 2, Skipped: 1})

	for _, l := range h.Remote() {
		if l.Name == "wontfix" || l.Name == "invalid" {
			t.Errorf("label %q should have been deleted", l.Name)
		}
	}
}

func TestTomlManifest(t *testing.T) {
	h := NewHarness(t)

	result := h.Sync("labels.toml", tomlManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Created: 2})
	AssertRemoteLabel(t, h, "bug", "d73a4a", "Something isn't working")
}

func TestColorDriftCorrected(t *testing.T) {
	h := NewHarness(t,
		label.RemoteLabel{Name: "bug", Color: "ffffff", Description: "Something isn't working"},
	)

	result := h.Sync("labels.yml", standardManifest, reconcile.Options{Policy: reconcile.PolicyNone})
	AssertSuccess(t, result)
	AssertCounts(t, result, reconcile.Summary{Created: 2, Updated: 1})
	AssertRemoteLabel(t, h, "bug", "d73a4a", "Something isn't working")
}
