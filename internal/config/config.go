// Package config provides configuration management for labelsync.
// It supports YAML configuration files, environment variables, and sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/klauern/labelsync/internal/reconcile"
	"github.com/klauern/labelsync/internal/util"
)

// Config represents the complete labelsync configuration.
type Config struct {
	// Repo configures the repository whose labels are managed
	Repo RepoConfig `yaml:"repo"`

	// Sync configures default reconciliation behavior
	Sync SyncConfig `yaml:"sync"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// RepoConfig identifies the target repository and its credentials.
type RepoConfig struct {
	// Repository is the "owner/name" slug of the target repository
	Repository string `yaml:"repository,omitempty"`
	// Token is the API token; usually supplied via GITHUB_TOKEN instead
	Token string `yaml:"token,omitempty"`
}

// SyncConfig holds reconciliation settings.
type SyncConfig struct {
	// Manifest is the path to the label manifest; empty enables discovery
	Manifest string `yaml:"manifest,omitempty"`
	// Policy is the default deletion policy (none, explicit, declarative)
	Policy string `yaml:"policy"`
	// DryRun previews changes without applying them
	DryRun bool `yaml:"dry_run"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default output format (text, json)
	Format string `yaml:"format"`
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
	// Verbose enables verbose output
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Sync: SyncConfig{
			Policy: string(reconcile.PolicyNone),
			DryRun: false,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   "auto",
			Verbose: false,
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(util.ConfigPath(), configFileName)
}

// Load loads the configuration from file, merging with defaults.
// If the config file doesn't exist, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	configPath := FilePath()
	// #nosec G304 - configPath is constructed from trusted config directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults with environment overrides
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, err
	}

	// Parse YAML over defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	configPath := FilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(configPath, data, 0o644)
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern LABELSYNC_<SECTION>_<KEY>;
// GITHUB_TOKEN is honored as the conventional credential source.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("LABELSYNC_REPOSITORY"); v != "" {
		c.Repo.Repository = v
	}
	if v := os.Getenv("LABELSYNC_TOKEN"); v != "" {
		c.Repo.Token = v
	}
	if c.Repo.Token == "" {
		c.Repo.Token = os.Getenv("GITHUB_TOKEN")
	}

	if v := os.Getenv("LABELSYNC_SYNC_MANIFEST"); v != "" {
		c.Sync.Manifest = v
	}
	if v := os.Getenv("LABELSYNC_SYNC_POLICY"); v != "" {
		c.Sync.Policy = v
	}
	if v := os.Getenv("LABELSYNC_SYNC_DRY_RUN"); v != "" {
		c.Sync.DryRun = parseBool(v)
	}

	if v := os.Getenv("LABELSYNC_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("LABELSYNC_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("LABELSYNC_OUTPUT_VERBOSE"); v != "" {
		c.Output.Verbose = parseBool(v)
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// GetPolicy returns the deletion policy from config, validating it.
func (c *Config) GetPolicy() reconcile.DeletionPolicy {
	policy := reconcile.DeletionPolicy(c.Sync.Policy)
	if policy.IsValid() {
		return policy
	}
	return reconcile.PolicyNone
}

// SplitRepository splits the "owner/name" slug into its parts.
func (c *Config) SplitRepository() (owner, name string, err error) {
	parts := strings.SplitN(c.Repo.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository must be in owner/name form, got %q", c.Repo.Repository)
	}
	return parts[0], parts[1], nil
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(FilePath())
	return err == nil
}
