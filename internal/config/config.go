// Package config loads interactive game settings from an HCL file
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// GameConfig holds settings for interactive play
type GameConfig struct {
	PlayerName string `hcl:"player_name,optional"`
	BotName    string `hcl:"bot_name,optional"`
	Rounds     int    `hcl:"rounds,optional"`
	Seed       int64  `hcl:"seed,optional"`
	LogFile    string `hcl:"log_file,optional"`
}

// DefaultGameConfig returns the default game configuration
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		PlayerName: "You",
		BotName:    "Bot",
		Rounds:     1,
		LogFile:    "cribbage.log",
	}
}

// LoadGameConfig loads configuration from an HCL file, falling back to
// defaults when the file does not exist. Missing attributes keep their
// default values.
func LoadGameConfig(filename string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	parsed := &GameConfig{}
	if diags := gohcl.DecodeBody(file.Body, nil, parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	if parsed.PlayerName != "" {
		cfg.PlayerName = parsed.PlayerName
	}
	if parsed.BotName != "" {
		cfg.BotName = parsed.BotName
	}
	if parsed.Rounds > 0 {
		cfg.Rounds = parsed.Rounds
	}
	if parsed.Seed != 0 {
		cfg.Seed = parsed.Seed
	}
	if parsed.LogFile != "" {
		cfg.LogFile = parsed.LogFile
	}
	return cfg, nil
}
