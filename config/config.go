// Package config loads translator options from an optional TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the translator's tunable options. A missing or empty
// path simply yields DefaultConfig().
type Config struct {
	// Translation settings
	Translation struct {
		BootstrapEntry string `toml:"bootstrap_entry"`
		BootstrapArgs  uint   `toml:"bootstrap_args"`
		EmitComments   bool   `toml:"emit_comments"`
		CommentPrefix  string `toml:"comment_prefix"`
	} `toml:"translation"`

	// Output settings
	Output struct {
		TrailingNewline bool   `toml:"trailing_newline"`
		LabelCase       string `toml:"label_case"` // only "preserve" is supported today
	} `toml:"output"`

	// Inspector settings
	Inspector struct {
		ColorOutput bool `toml:"color_output"`
		HistorySize int  `toml:"history_size"`
	} `toml:"inspector"`

	// Lint settings
	Lint struct {
		WarnUndefinedLabel         bool `toml:"warn_undefined_label"`
		WarnUnknownCallee          bool `toml:"warn_unknown_callee"`
		WarnUnreachableAfterReturn bool `toml:"warn_unreachable_after_return"`
	} `toml:"lint"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Translation defaults
	cfg.Translation.BootstrapEntry = "Sys.init"
	cfg.Translation.BootstrapArgs = 0
	cfg.Translation.EmitComments = true
	cfg.Translation.CommentPrefix = "// --- "

	// Output defaults
	cfg.Output.TrailingNewline = true
	cfg.Output.LabelCase = "preserve"

	// Inspector defaults
	cfg.Inspector.ColorOutput = true
	cfg.Inspector.HistorySize = 1000

	// Lint defaults
	cfg.Lint.WarnUndefinedLabel = true
	cfg.Lint.WarnUnknownCallee = true
	cfg.Lint.WarnUnreachableAfterReturn = true

	return cfg
}

// Load reads configuration from path. An empty path, or a path that does
// not exist, yields DefaultConfig() rather than an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Output.LabelCase != "preserve" {
		return nil, fmt.Errorf("config: output.label_case %q is not supported (only \"preserve\")", cfg.Output.LabelCase)
	}

	return cfg, nil
}

// Save writes cfg to path in TOML form, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
