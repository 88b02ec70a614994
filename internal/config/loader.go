package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set.
	// When empty, config.yaml in ConfigDir is used if present.
	ConfigFile string

	// Flags are bound over file values when they were set on the command line.
	Flags *pflag.FlagSet
}

// flagBindings maps config keys to the command-line flags that override them
var flagBindings = map[string]string{
	"manifest.path": "path",
}

// Load loads configuration from flags, environment, config file and defaults
func Load(opts LoadOptions) (*Config, error) {
	cfg, _, err := LoadWithViper(opts)
	return cfg, err
}

// LoadWithViper loads configuration and returns the viper instance it used
func LoadWithViper(opts LoadOptions) (*Config, *viper.Viper, error) {
	v := viper.New()

	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	// A missing default config file is fine, a missing explicit one is not
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || opts.ConfigFile != "" {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Flags != nil {
		for key, name := range flagBindings {
			if flag := opts.Flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("manifest.path", DefaultManifestPath)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
