package lintci

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default path to the lintci config file.
const DefaultConfigFile = ".lintci.yaml"

// Config holds all lintci configuration.
type Config struct {
	Lint    LintYAML    `yaml:"lint"`
	Status  StatusYAML  `yaml:"status"`
	History HistoryYAML `yaml:"history"`
}

// LintYAML holds lint engine settings from the config file.
type LintYAML struct {
	// Command is the lint engine invocation. The lint directory is
	// appended as the last argument. The engine must write an
	// ESLint-style JSON report to stdout.
	Command []string `yaml:"command"`

	// Dir is the directory to lint.
	Dir string `yaml:"dir"`
}

// StatusYAML holds commit status settings from the config file.
type StatusYAML struct {
	Context   string `yaml:"context"`
	TargetURL string `yaml:"target_url"`
}

// HistoryYAML holds run history settings from the config file.
type HistoryYAML struct {
	// Path is the SQLite database file for run history. Empty disables
	// history recording.
	Path string `yaml:"path"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return &cfg, nil
}

func (c *Config) lintCommand() []string {
	if len(c.Lint.Command) > 0 {
		return c.Lint.Command
	}
	return []string{"eslint", "--format", "json"}
}

func (c *Config) lintDir() string {
	if c.Lint.Dir != "" {
		return c.Lint.Dir
	}
	return "test"
}

func (c *Config) statusContext() string {
	if c.Status.Context != "" {
		return c.Status.Context
	}
	return "ci/lint"
}

// targetURL builds the URL that the commit status links back to. Returns
// empty when the job has no identifier to link to.
func (c *Config) targetURL(owner, repo, jobID string) string {
	if jobID == "" {
		return ""
	}
	base := c.Status.TargetURL
	if base == "" {
		base = "https://travis-ci.org"
	}
	return fmt.Sprintf("%s/%s/%s/jobs/%s", base, owner, repo, jobID)
}
