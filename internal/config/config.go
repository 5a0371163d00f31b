// Package config loads besthand settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Defaults used when the file is missing or leaves a value unset
const (
	DefaultLogLevel = "info"
	DefaultHandSize = 7
)

// Config represents the complete besthand configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	HandSize int             `hcl:"hand_size,optional"`
	Output   *OutputSettings `hcl:"output,block"`
	Batch    *BatchSettings  `hcl:"batch,block"`
}

// OutputSettings controls how hands are printed
type OutputSettings struct {
	Color *bool `hcl:"color,optional"`
	// Sort prints the chosen cards in token order instead of input order
	Sort *bool `hcl:"sort,optional"`
}

// BatchSettings controls the batch worker pool
type BatchSettings struct {
	Workers int `hcl:"workers,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.HandSize == 0 {
		c.HandSize = DefaultHandSize
	}
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Output.Sort == nil {
		sorted := true
		c.Output.Sort = &sorted
	}
	if c.Batch == nil {
		c.Batch = &BatchSettings{}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.HandSize < 5 || c.HandSize > 52 {
		return fmt.Errorf("invalid hand_size %d: must be between 5 and 52", c.HandSize)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("invalid batch workers %d: must not be negative", c.Batch.Workers)
	}
	return nil
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
