// Package config loads the minish configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity = 1000
	DefaultPrompt   = "{cwd}$ "
)

// Config holds all minish configuration.
type Config struct {
	History HistoryConfig `yaml:"history"`
	Shell   ShellConfig   `yaml:"shell"`
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures the history of the interactive session.
type HistoryConfig struct {
	Capacity int    `yaml:"capacity"`
	File     string `yaml:"file"`    // loaded at start, written at exit
	Append   bool   `yaml:"append"`  // append to File instead of rewriting it
	Archive  string `yaml:"archive"` // sqlite database keeping every record
}

// ShellConfig configures command resolution.
type ShellConfig struct {
	StrictExit bool     `yaml:"strict_exit"`
	Path       []string `yaml:"path"` // replaces $PATH when not empty
	Prompt     string   `yaml:"prompt"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`   // stderr when empty
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			Capacity: DefaultCapacity,
		},
		Shell: ShellConfig{
			Prompt: DefaultPrompt,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration from path. A missing file yields the default
// configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	cfg.applyDefaults()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration for values minish cannot use.
func (c *Config) Validate() error {
	if c.History.Capacity < 0 {
		return fmt.Errorf("history.capacity must not be negative: %d", c.History.Capacity)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown logging.format %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = def.Shell.Prompt
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("MINISH_HISTORY_FILE"); v != "" {
		c.History.File = v
	}
	if v := os.Getenv("MINISH_HISTORY_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MINISH_HISTORY_CAPACITY: %w", err)
		}
		c.History.Capacity = n
	}
	if v := os.Getenv("MINISH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}
