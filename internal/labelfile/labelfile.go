// Package labelfile loads a label manifest from YAML, JSON, or TOML and
// validates it against the manifest schema before handing it to the engine.
package labelfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/klauern/labelsync/internal/label"
	"github.com/klauern/labelsync/internal/logging"
)

// DefaultFileNames are the manifest locations probed, in order, when no path
// is given.
var DefaultFileNames = []string{
	".github/labels.yml",
	".github/labels.yaml",
	"labels.yml",
	"labels.yaml",
	"labels.json",
	"labels.toml",
}

// Load reads, schema-checks, and semantically validates a manifest. The
// format is chosen by file extension. YAML and JSON manifests may be either
// a full `{labels, ignore, delete}` document or a bare label array.
func Load(path string) (*label.Manifest, error) {
	// #nosec G304 - path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Discover returns the first default manifest path that exists under dir.
func Discover(dir string) (string, error) {
	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no label manifest found (looked for %s)", strings.Join(DefaultFileNames, ", "))
}

// Parse decodes manifest bytes in the format implied by ext (".yaml",
// ".yml", ".json", or ".toml").
func Parse(data []byte, ext string) (*label.Manifest, error) {
	var (
		doc any
		err error
	)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".toml":
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		doc = m
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if err := ValidateSchema(doc); err != nil {
		return nil, err
	}

	manifest, err := decodeManifest(doc)
	if err != nil {
		return nil, err
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	normalizeColors(manifest)

	logging.Debug("loaded manifest",
		logging.Count(len(manifest.Labels)),
	)
	return manifest, nil
}

// decodeManifest maps the schema-checked generic document onto the domain
// model. Re-encoding through JSON keeps one decode path for all three input
// formats and both document shapes.
func decodeManifest(doc any) (*label.Manifest, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	if _, ok := doc.([]any); ok {
		var labels []label.Label
		if err := json.Unmarshal(raw, &labels); err != nil {
			return nil, fmt.Errorf("decoding manifest: %w", err)
		}
		return &label.Manifest{Labels: labels}, nil
	}

	var manifest label.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &manifest, nil
}

// normalizeColors canonicalizes declared colors once at the boundary so the
// engine always compares canonical forms. Validation has already rejected
// anything ParseColor would refuse.
func normalizeColors(m *label.Manifest) {
	for i := range m.Labels {
		m.Labels[i].Color = label.NormalizeColor(m.Labels[i].Color)
	}
}
