package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const validManifest = `labels:
  - name: bug
    color: d73a4a
    description: Something isn't working
  - name: enhancement
    color: a2eeef
ignore:
  - release-*
`

func TestValidateCommand(t *testing.T) {
	path := writeManifest(t, validManifest)

	output, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "validate", "-f", path})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(output, "is valid") {
		t.Errorf("output = %q, want validity confirmation", output)
	}
	if !strings.Contains(output, "2 label(s)") {
		t.Errorf("output = %q, want label count", output)
	}
	if !strings.Contains(output, "1 ignore pattern(s)") {
		t.Errorf("output = %q, want ignore count", output)
	}
}

func TestValidateCommandInvalidManifest(t *testing.T) {
	path := writeManifest(t, "labels:\n  - color: ffffff\n")

	_, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "validate", "-f", path})
	})
	if err == nil {
		t.Error("expected error for manifest with missing name")
	}
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "validate", "-f", filepath.Join(t.TempDir(), "nope.yml")})
	})
	if err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestSyncCommandRequiresRepository(t *testing.T) {
	_, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "sync"})
	})
	if err == nil {
		t.Fatal("expected error without repository")
	}
	if !strings.Contains(err.Error(), "owner/name") {
		t.Errorf("error = %v, want owner/name guidance", err)
	}
}

func TestSyncCommandRejectsInvalidPolicy(t *testing.T) {
	path := writeManifest(t, validManifest)

	_, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{
			"labelsync", "sync", "-r", "octocat/hello-world", "-f", path, "--policy", "bogus",
		})
	})
	if err == nil {
		t.Fatal("expected error for invalid policy")
	}
	if !strings.Contains(err.Error(), "invalid policy") {
		t.Errorf("error = %v, want invalid policy message", err)
	}
}

func TestDiffCommandRejectsInvalidRepository(t *testing.T) {
	_, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "diff", "-r", "not-a-slug"})
	})
	if err == nil {
		t.Fatal("expected error for invalid repository slug")
	}
}

func TestConfigCommand(t *testing.T) {
	output, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "config"})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{"Config file:", "repository:", "policy:", "format:"} {
		if !strings.Contains(output, want) {
			t.Errorf("output = %q, want substring %q", output, want)
		}
	}
}

func TestConfigInitCommand(t *testing.T) {
	output, err := captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "config", "init"})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(output, "Wrote default configuration") {
		t.Errorf("output = %q, want confirmation", output)
	}

	// A second init must refuse to overwrite.
	_, err = captureStdout(t, func() error {
		return Run(context.Background(), []string{"labelsync", "config", "init"})
	})
	if err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestCommandDefinitions(t *testing.T) {
	tests := map[string]struct {
		name  string
		flags []string
	}{
		"sync":     {"sync", []string{"repo", "file", "policy", "dry-run", "interactive"}},
		"diff":     {"diff", []string{"repo", "file", "policy", "format", "exit-code"}},
		"validate": {"validate", []string{"file"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var flags []string
			switch tt.name {
			case "sync":
				for _, f := range syncCommand().Flags {
					flags = append(flags, f.Names()...)
				}
			case "diff":
				for _, f := range diffCommand().Flags {
					flags = append(flags, f.Names()...)
				}
			case "validate":
				for _, f := range validateCommand().Flags {
					flags = append(flags, f.Names()...)
				}
			}
			for _, want := range tt.flags {
				found := false
				for _, got := range flags {
					if got == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s command missing flag %q (got %v)", tt.name, want, flags)
				}
			}
		})
	}
}
