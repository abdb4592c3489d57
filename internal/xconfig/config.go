// Package xconfig loads the single process-wide configuration file, per
// spec §6: one recognized option, api_keys.omdb, and a missing or malformed
// file is fatal. Unlike the original implementation's process-wide OnceLock,
// the loaded Config is returned to the caller and threaded explicitly
// through the rest of the program — no package-level singleton (an
// explicit redesign choice; see DESIGN.md's Open Questions).
package xconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration, loaded once from config.toml.
type Config struct {
	APIKeys APIKeys `mapstructure:"api_keys"`
}

// APIKeys holds third-party API credentials used by the organize-episodes
// subcommand's metadata lookups.
type APIKeys struct {
	OMDB string `mapstructure:"omdb"`
}

// Load reads and parses path (typically "config.toml" in the working
// directory). A missing file or malformed content is fatal, per spec §6.
// Environment variables prefixed XSEED_ override file values, with "."
// replaced by "_" (e.g. XSEED_API_KEYS_OMDB).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix("XSEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("xconfig: reading %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("xconfig: parsing %s: %w", path, err)
	}

	return &cfg, nil
}
