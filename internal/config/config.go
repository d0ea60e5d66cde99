// Package config resolves fuelup-components settings from flags, the
// environment and an optional TOML file at
// <user config dir>/fuelup-components/config.toml.
//
// Precedence is flag > FUELUP_COMPONENTS_* env > file > default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FUELUP_COMPONENTS_OUTPUT.
	EnvPrefix = "FUELUP_COMPONENTS"

	configDir  = "fuelup-components"
	configFile = "config.toml"
)

// Output formats accepted by the output setting.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputTOML = "toml"
)

// Config is the resolved CLI configuration.
type Config struct {
	// Output is one of OutputText, OutputJSON or OutputTOML.
	Output string `mapstructure:"output"`
	// Manifest, if set, is parsed instead of the embedded manifest.
	Manifest string `mapstructure:"manifest"`
	NoColor  bool   `mapstructure:"no_color"`
	Verbose  bool   `mapstructure:"verbose"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{Output: OutputText}
}

// ConfigPath returns the default config file location, or "" when the user
// config directory cannot be determined.
func ConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDir, configFile)
}

// Load resolves the configuration into v. Flags must already be bound to v.
// An explicit cfgFile must exist; the default file is optional.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	defaults := Defaults()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	case ConfigPath() != "":
		path := ConfigPath()
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown output formats.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputTOML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s, %s or %s)", c.Output, OutputText, OutputJSON, OutputTOML)
}
