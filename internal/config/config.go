// Package config loads and saves the restitch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the restitch configuration.
type Config struct {
	// Logging-recipe settings
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Params-recipe settings
	Params ParamsConfig `json:"params" yaml:"params"`

	// External type-checker settings
	Checker CheckerConfig `json:"checker" yaml:"checker"`

	// File discovery settings
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`

	// Default parallel worker count for batch runs
	Jobs int `json:"jobs" yaml:"jobs"`
}

// LoggingConfig describes the logging call shape to normalize.
type LoggingConfig struct {
	// Namespace is the call's receiver token, e.g. "log"
	Namespace string `json:"namespace" yaml:"namespace"`

	// Levels are the recognized level method names
	Levels []string `json:"levels" yaml:"levels"`
}

// ParamsConfig describes the params migration.
type ParamsConfig struct {
	// Files optionally pins the migration to an explicit path list
	Files []string `json:"files" yaml:"files"`

	// LegacyIdentifiers are the entity-specific variable names renamed to
	// the generic parameter name
	LegacyIdentifiers []string `json:"legacy_identifiers" yaml:"legacy_identifiers"`
}

// CheckerConfig describes the external type-checker invocation.
type CheckerConfig struct {
	Command          string   `json:"command" yaml:"command"`
	Args             []string `json:"args" yaml:"args"`
	NodeOptions      string   `json:"node_options" yaml:"node_options"`
	DiagnosticPrefix string   `json:"diagnostic_prefix" yaml:"diagnostic_prefix"`
	ScratchFile      string   `json:"scratch_file" yaml:"scratch_file"`
}

// DiscoveryConfig tunes the directory walk.
type DiscoveryConfig struct {
	// Directory names excluded from the walk
	ExcludeDirs []string `json:"exclude_dirs" yaml:"exclude_dirs"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Namespace: "log",
			Levels:    []string{"error", "warn", "info", "debug"},
		},
		Params: ParamsConfig{
			LegacyIdentifiers: []string{
				"taskId",
				"orderId",
				"paymentId",
				"invoiceId",
				"shipmentId",
				"inspectionId",
				"jobId",
				"documentId",
			},
		},
		Checker: CheckerConfig{
			Command:          "npx",
			Args:             []string{"tsc", "--noEmit"},
			NodeOptions:      "--max-old-space-size=8192",
			DiagnosticPrefix: "src/",
			ScratchFile:      "/tmp/remaining-type-errors.log",
		},
		Discovery: DiscoveryConfig{
			ExcludeDirs: []string{
				".git",
				"node_modules",
				".next",
				"dist",
				"build",
				"coverage",
			},
		},
		Jobs: 4,
	}
}

// LoadConfig loads configuration from a file, falling back to defaults when
// no config file exists.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// YAML is a JSON superset, so .restitch.json parses through the same
	// decoder.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findConfigFile looks for config files in common locations.
func findConfigFile() string {
	candidates := []string{
		".restitch.yaml",
		".restitch.yml",
		".restitch.json",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(homeDir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// GetConfigPath returns the config file path to use.
func GetConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	if found := findConfigFile(); found != "" {
		return found
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(homeDir, ".restitch.yaml")
	}
	return ".restitch.yaml"
}
