package core

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the per-plugin timeout used when none is configured.
const DefaultTimeout = 5 * time.Second

// Config holds configuration for the Dispatcher.
type Config struct {
	// Timeout bounds every plugin invocation, measured from the moment
	// that plugin is launched.
	Timeout time.Duration `yaml:"timeout"`

	// LogLevel is the minimum level ("debug", "info", "warn", "error") of
	// the logger built when no logger is supplied with WithLogger. Empty
	// means slog.Default() is used unchanged.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
	}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.Timeout)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// newLogger builds the logger implied by LogLevel, or nil when the default
// logger should be kept.
func (c Config) newLogger() *slog.Logger {
	if c.LogLevel == "" {
		return nil
	}
	lvl, err := c.level()
	if err != nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// ParseConfig decodes a YAML document into a Config. Fields missing from
// the document keep their DefaultConfig values.
//
//	timeout: 250ms
//	log_level: debug
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("core: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("core: read config %s: %w", path, err)
	}
	return ParseConfig(data)
}
