// Package config loads runtime configuration for mainseq from the
// .mainseq.yaml config file, MAINSEQ_* environment variables, and CLI flags,
// in that order of increasing precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a mainseq invocation.
type Config struct {
	// CatalogPath points at a user star catalog (TOML or YAML) merged over
	// the builtin catalog. Empty means builtin only.
	CatalogPath string `mapstructure:"catalog_path"`

	// JournalPath is the SQLite resolution journal. Empty means the default
	// under the user's home directory.
	JournalPath string `mapstructure:"journal_path"`

	// DefaultMetallicity is stored on records whose seed carries no
	// metallicity and whose prompt declines. Solar units, must be positive.
	DefaultMetallicity float64 `mapstructure:"default_metallicity"`

	// NoColor disables ANSI decoration on stderr output.
	NoColor bool `mapstructure:"no_color"`

	// Verbose enables extra diagnostics on stderr.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog_path", "")
	viper.SetDefault("journal_path", "")
	viper.SetDefault("default_metallicity", 1.0)
	viper.SetDefault("no_color", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.DefaultMetallicity <= 0 {
		return Config{}, fmt.Errorf("config: default_metallicity must be positive, got %g", cfg.DefaultMetallicity)
	}
	return cfg, nil
}
