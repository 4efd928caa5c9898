// Package label defines the label domain model shared by the manifest
// loader, the reconciliation engine, and the store adapters.
package label

import (
	"fmt"
	"strings"
)

// MaxDescriptionLength is the longest description the tracker accepts.
const MaxDescriptionLength = 100

// Label is a desired label as declared in the manifest.
type Label struct {
	// Name uniquely identifies the label within a repository.
	Name string `yaml:"name" json:"name" toml:"name"`

	// Color is the canonical hex color (6 lowercase digits, no '#').
	// Empty means no color constraint was declared.
	Color string `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`

	// Description is the label description. Omitted and empty are
	// treated identically throughout.
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`

	// Aliases are prior names for this label. A remote label found under
	// an alias is renamed rather than deleted and recreated.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty" toml:"aliases,omitempty"`
}

// RemoteLabel is a label as reported by a store. The store is assumed to
// return colors already in canonical form; a missing remote description is
// represented as the empty string.
type RemoteLabel struct {
	Name        string
	Color       string
	Description string
}

// ValidateName checks that a label name is usable as a unique key.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("label name must not be empty")
	}
	return nil
}

// Validate checks a single desired label for manifest correctness.
func (l Label) Validate() error {
	if err := ValidateName(l.Name); err != nil {
		return err
	}
	if l.Color != "" {
		if _, err := ParseColor(l.Color); err != nil {
			return fmt.Errorf("label %q: %w", l.Name, err)
		}
	}
	if len(l.Description) > MaxDescriptionLength {
		return fmt.Errorf("label %q: description exceeds %d characters", l.Name, MaxDescriptionLength)
	}
	seen := make(map[string]bool, len(l.Aliases))
	for _, alias := range l.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("label %q: alias must not be empty", l.Name)
		}
		if seen[alias] {
			return fmt.Errorf("label %q: duplicate alias %q", l.Name, alias)
		}
		seen[alias] = true
	}
	return nil
}
