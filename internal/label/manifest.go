package label

import (
	"fmt"
	"strings"
)

// Manifest is the validated label configuration for one repository: the
// labels to converge on, plus the deletion rules for one of the two sweep
// policies. Ignore patterns apply only under declarative deletion; the
// delete list applies only under explicit deletion.
type Manifest struct {
	Labels []Label  `yaml:"labels" json:"labels" toml:"labels"`
	Ignore []string `yaml:"ignore,omitempty" json:"ignore,omitempty" toml:"ignore,omitempty"`
	Delete []string `yaml:"delete,omitempty" json:"delete,omitempty" toml:"delete,omitempty"`
}

// Validate checks the manifest for semantic correctness: every label valid
// on its own, names unique, no alias shadowing a desired name, ignore
// patterns compilable, and delete entries non-empty.
func (m *Manifest) Validate() error {
	names := make(map[string]bool, len(m.Labels))
	for _, l := range m.Labels {
		if err := l.Validate(); err != nil {
			return err
		}
		if names[l.Name] {
			return fmt.Errorf("duplicate label name %q", l.Name)
		}
		names[l.Name] = true
	}
	for _, l := range m.Labels {
		for _, alias := range l.Aliases {
			if names[alias] && alias != l.Name {
				return fmt.Errorf("label %q: alias %q is also a desired label", l.Name, alias)
			}
		}
	}
	for _, glob := range m.Ignore {
		if _, err := CompilePattern(glob); err != nil {
			return err
		}
	}
	for _, name := range m.Delete {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("delete list entries must not be empty")
		}
	}
	return nil
}
