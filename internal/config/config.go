// Package config loads trainer configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete trainer configuration
type Config struct {
	Session SessionSettings `hcl:"session,block"`
	Trainer TrainerSettings `hcl:"trainer,block"`
}

// SessionSettings contains the table parameters for a training session
type SessionSettings struct {
	StartingStack int `hcl:"starting_stack,optional"`
	TargetProfit  int `hcl:"target_profit,optional"`
	MaxHands      int `hcl:"max_hands,optional"`
}

// TrainerSettings contains trainer-level configuration
type TrainerSettings struct {
	Seed            int64  `hcl:"seed,optional"`
	LogLevel        string `hcl:"log_level,optional"`
	DecisionSeconds int    `hcl:"decision_seconds,optional"`
}

// Default returns the default trainer configuration
func Default() *Config {
	return &Config{
		Session: SessionSettings{
			StartingStack: 1000,
			TargetProfit:  100,
			MaxHands:      20,
		},
		Trainer: TrainerSettings{
			LogLevel:        "info",
			DecisionSeconds: 30,
		},
	}
}

// Load loads trainer configuration from an HCL file. A missing file yields
// the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Session.StartingStack == 0 {
		config.Session.StartingStack = 1000
	}
	if config.Session.TargetProfit == 0 {
		config.Session.TargetProfit = 100
	}
	if config.Session.MaxHands == 0 {
		config.Session.MaxHands = 20
	}
	if config.Trainer.LogLevel == "" {
		config.Trainer.LogLevel = "info"
	}
	if config.Trainer.DecisionSeconds == 0 {
		config.Trainer.DecisionSeconds = 30
	}

	return &config, nil
}

// Validate validates the trainer configuration
func (c *Config) Validate() error {
	if c.Session.StartingStack <= 0 {
		return fmt.Errorf("starting stack must be positive, got %d", c.Session.StartingStack)
	}
	if c.Session.MaxHands <= 0 {
		return fmt.Errorf("max hands must be positive, got %d", c.Session.MaxHands)
	}
	if c.Session.TargetProfit < 0 {
		return fmt.Errorf("target profit must not be negative, got %d", c.Session.TargetProfit)
	}
	if c.Trainer.DecisionSeconds < 0 {
		return fmt.Errorf("decision seconds must not be negative, got %d", c.Trainer.DecisionSeconds)
	}
	switch c.Trainer.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Trainer.LogLevel)
	}
	return nil
}
