// Package config loads libcore settings from defaults, a YAML file,
// LIBCORE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/roach88/libcore/internal/platform"
)

// Defaults.
const (
	DefaultFile    = "libcore.yaml"
	DefaultBackend = platform.BackendUnix
	DefaultFormat  = "text"
	EnvPrefix      = "LIBCORE_"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config is the resolved configuration.
type Config struct {
	Backend  string `koanf:"backend"`
	Database string `koanf:"database"`
	Format   string `koanf:"format"`
	Verbose  bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"db": "database",
}

// Load resolves configuration. cfgFile may be empty, in which case
// DefaultFile is used if it exists in the working directory. Only flags
// that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"backend":  DefaultBackend,
		"database": "",
		"format":   DefaultFormat,
		"verbose":  false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// LIBCORE_BACKEND -> backend
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if mapped, ok := flagKeys[key]; ok {
				key = mapped
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	return &cfg, nil
}

// findConfigFile returns the explicit path, or DefaultFile if present.
// An explicit path is returned even if missing so that loading reports it.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !platform.IsValidBackend(c.Backend) {
		return fmt.Errorf("invalid backend %q: must be one of %v", c.Backend, platform.Backends())
	}
	if !slices.Contains(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	return nil
}
