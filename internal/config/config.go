package config

import (
	"fmt"

	"github.com/quantmind-br/canister-counter/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig contains manifest lookup settings
type ManifestConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate fills empty values with defaults and rejects unknown logging settings
func (c *Config) Validate() error {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	} else if !utils.IsValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("invalid logging.level %q (use debug, info, warn or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "":
		c.Logging.Format = DefaultLogFormat
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("invalid logging.format %q (use %s or %s)", c.Logging.Format, LogFormatPretty, LogFormatJSON)
	}
	return nil
}
