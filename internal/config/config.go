/*
PURPOSE:
  Defines the configuration structure and loading logic for append-results.
  Every field has a default that reproduces the plain two-argument behavior.

REQUIREMENTS:
  User-specified:
  - Results file is `_{model}_result.txt` in the working directory.
  - Benchmark file is tab delimited.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Whether to replace the benchmark file atomically is a choice; default on.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if an explicitly given config file is missing or invalid.
  - Missing default config files fall back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Validate() must be called after overrides are applied.

USAGE:
  cfg, err := config.Load("append_results.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and DefaultConfig().
  - A field that can break the engine needs a check in Validate().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"append_results.yaml", "append_results.yml"}

// Config represents the full configuration for append-results.
type Config struct {
	// ResultsDir is where `_{model}_result.txt` files are looked up.
	ResultsDir string `yaml:"results_dir"`
	// ResultsPattern is a fmt pattern taking the model name.
	ResultsPattern string `yaml:"results_pattern"`
	Delimiter      string `yaml:"delimiter"`
	CRLF           bool   `yaml:"crlf"`
	AtomicWrite    bool   `yaml:"atomic_write"`
	// HistoryFile receives one JSON line per successful append. Empty disables it.
	HistoryFile string `yaml:"history_file"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir:     ".",
		ResultsPattern: "_%s_result.txt",
		Delimiter:      "\t",
		CRLF:           true,
		AtomicWrite:    true,
		HistoryFile:    "",
		LogLevel:       "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks fields that would otherwise fail deep inside the engine.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if d := c.DelimiterRune(); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	// Exactly one verb, %s, for the model name.
	if strings.Count(c.ResultsPattern, "%") != 1 || !strings.Contains(c.ResultsPattern, "%s") {
		return fmt.Errorf("results_pattern must contain exactly one %%s and no other %%, got %q", c.ResultsPattern)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// DelimiterRune returns the first rune of Delimiter.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
