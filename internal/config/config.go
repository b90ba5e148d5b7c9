// Package config loads the suite's optional defaults file.
//
// The viewers (head, tail) consult it for their compiled-in defaults: the
// window size when no count flag is given, the follow poll interval, and the
// verbosity of follow diagnostics. Every other utility is configuration-free.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvPath overrides the defaults file location when set.
const EnvPath = "ASDUTILS_CONFIG"

// Config is the root of the defaults file.
type Config struct {
	View View `toml:"view"`
}

// View holds head/tail defaults.
type View struct {
	DefaultLines  int    `toml:"default_lines"`
	SleepInterval int    `toml:"sleep_interval"`
	LogLevel      string `toml:"log_level"`
}

// Default returns the compiled defaults: ten lines, one-second polls,
// info-level follow diagnostics.
func Default() *Config {
	return &Config{
		View: View{
			DefaultLines:  10,
			SleepInterval: 1,
			LogLevel:      "info",
		},
	}
}

// Load reads the defaults file from $ASDUTILS_CONFIG or the user config
// directory. A missing file yields the compiled defaults; a malformed or
// invalid file is an error.
func Load() (*Config, error) {
	path, explicit := resolvePath()
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func resolvePath() (path string, explicit bool) {
	if env := strings.TrimSpace(os.Getenv(EnvPath)); env != "" {
		return env, true
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(base, "asdutils", "config.toml"), false
}

func (c *Config) validate() error {
	if c.View.DefaultLines < 0 {
		return fmt.Errorf("view.default_lines must not be negative, got %d", c.View.DefaultLines)
	}
	switch strings.ToLower(strings.TrimSpace(c.View.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("view.log_level: unsupported value %q", c.View.LogLevel)
	}
	return nil
}

// Interval clamps the configured poll interval the way the sleep flag does:
// negative values mean one second.
func (v View) Interval() int {
	if v.SleepInterval < 0 {
		return 1
	}
	return v.SleepInterval
}
