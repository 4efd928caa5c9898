package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauern/labelsync/internal/ui"
)

func TestDisabledWhenColorsOff(t *testing.T) {
	ui.DisableColors()
	t.Cleanup(ui.EnableColors)

	var buf bytes.Buffer
	bar := New(Options{Max: 10, Description: "testing", Writer: &buf})

	if bar.enabled {
		t.Error("bar should be disabled when colors are off")
	}

	// All operations must be safe no-ops on a disabled bar.
	if err := bar.Add(3); err != nil {
		t.Errorf("Add on disabled bar: %v", err)
	}
	bar.Describe("still testing")
	if err := bar.Finish(); err != nil {
		t.Errorf("Finish on disabled bar: %v", err)
	}
	if err := bar.Clear(); err != nil {
		t.Errorf("Clear on disabled bar: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("disabled bar should write nothing, got %q", buf.String())
	}
}

func TestEnabledBarRenders(t *testing.T) {
	ui.EnableColors()
	t.Cleanup(ui.EnableColors)

	var buf bytes.Buffer
	bar := New(Options{Max: 2, Description: "syncing", Writer: &buf})
	if !bar.enabled {
		t.Fatal("bar should be enabled for a non-file writer with colors on")
	}

	if err := bar.Add(1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := bar.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if !strings.Contains(buf.String(), "syncing") {
		t.Errorf("output should contain description, got %q", buf.String())
	}
}

func TestSimple(t *testing.T) {
	bar := Simple(5, "labels")
	if bar.desc != "labels" {
		t.Errorf("desc = %q, want labels", bar.desc)
	}
}
