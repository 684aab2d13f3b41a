// Package profilecfg loads the settings of the profiling tools.
package profilecfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the full settings of a profiling run.
type Config struct {
	Run     RunConfig     `toml:"run" yaml:"run"`
	Profile ProfileConfig `toml:"profile" yaml:"profile"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// RunConfig sizes the workload: Rounds fresh worlds, each populated with
// Entities entities and iterated Iters times.
type RunConfig struct {
	Rounds   int `toml:"rounds" yaml:"rounds"`
	Iters    int `toml:"iters" yaml:"iters"`
	Entities int `toml:"entities" yaml:"entities"`
}

// ProfileConfig selects what pkg/profile records and where it writes.
type ProfileConfig struct {
	Mode string `toml:"mode" yaml:"mode"` // cpu, mem or allocs
	Path string `toml:"path" yaml:"path"`
}

// LoggingConfig configures the zap logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // console or json
}

// Load reads path as TOML, or as YAML when it ends in .yaml or .yml. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the settings used for keys a config file leaves unset.
func Defaults() *Config {
	return &Config{
		Run: RunConfig{
			Rounds:   50,
			Iters:    10000,
			Entities: 100000,
		},
		Profile: ProfileConfig{
			Mode: "cpu",
			Path: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the tools cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Run.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("run.rounds must be positive, got %d", c.Run.Rounds))
	}
	if c.Run.Iters < 0 {
		errs = append(errs, fmt.Errorf("run.iters must not be negative, got %d", c.Run.Iters))
	}
	if c.Run.Entities <= 0 {
		errs = append(errs, fmt.Errorf("run.entities must be positive, got %d", c.Run.Entities))
	}
	switch c.Profile.Mode {
	case "cpu", "mem", "allocs", "none":
	default:
		errs = append(errs, fmt.Errorf("profile.mode %q is not one of cpu, mem, allocs, none", c.Profile.Mode))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not console or json", c.Logging.Format))
	}
	return errors.Join(errs...)
}
