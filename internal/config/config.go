package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winbox/internal/platform"
)

// MacOSConfig tunes the darwin adapter.
type MacOSConfig struct {
	// Flip converts native window frames to a top-left origin.
	Flip bool `yaml:"flip"`
	// Backing reports native frames in physical pixels.
	Backing          bool          `yaml:"backing"`
	PromptPermission bool          `yaml:"prompt_permission"`
	ScriptTimeout    time.Duration `yaml:"script_timeout"`
}

// X11Config tunes the linux adapter.
type X11Config struct {
	Display string `yaml:"display"` // overrides $DISPLAY when set
}

// Config is the effective winbox configuration.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	MacOS    MacOSConfig `yaml:"macos"`
	X11      X11Config   `yaml:"x11"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		MacOS: MacOSConfig{
			PromptPermission: true,
			ScriptTimeout:    platform.DefaultScriptTimeout,
		},
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "winbox", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file yields the
// defaults unchanged.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.MacOS.ScriptTimeout <= 0 {
		return fmt.Errorf("macos.script_timeout must be positive, got %s", c.MacOS.ScriptTimeout)
	}
	return nil
}

// Level maps log_level to a slog level, falling back to info.
func (c *Config) Level() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	if lvl, ok := logLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// PlatformOptions builds adapter options from the config.
func (c *Config) PlatformOptions(logger *slog.Logger) platform.Options {
	opts := platform.DefaultOptions()
	opts.Logger = logger
	if c == nil {
		return opts
	}
	opts.Flip = c.MacOS.Flip
	opts.Backing = c.MacOS.Backing
	opts.PromptPermission = c.MacOS.PromptPermission
	if c.MacOS.ScriptTimeout > 0 {
		opts.ScriptTimeout = c.MacOS.ScriptTimeout
	}
	opts.Display = c.X11.Display
	return opts
}

// Marshal renders the effective config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
