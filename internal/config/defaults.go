package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Manifest defaults
	DefaultManifestPath = "."

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatPretty

	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".canister-counter"
	}
	return filepath.Join(home, ".canister-counter")
}

// ConfigFilePath returns the default config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path: DefaultManifestPath,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
