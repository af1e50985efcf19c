package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/blackjack/internal/game"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "blackjack.hcl"

// Config is the complete blackjack configuration
type Config struct {
	Game     GameSettings
	Log      LogSettings
	UI       UISettings
	Simulate SimulateSettings
}

// GameSettings controls interactive play. An empty mode or zero player
// count means the player is prompted.
type GameSettings struct {
	Mode    string `hcl:"mode,optional" env:"BLACKJACK_MODE"`
	Players int    `hcl:"players,optional" env:"BLACKJACK_PLAYERS"`
	Seed    int64  `hcl:"seed,optional" env:"BLACKJACK_SEED"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Level string `hcl:"level,optional" env:"BLACKJACK_LOG_LEVEL"`
	File  string `hcl:"file,optional" env:"BLACKJACK_LOG_FILE"`
}

// UISettings controls terminal output
type UISettings struct {
	Color bool `env:"BLACKJACK_COLOR"`
}

// SimulateSettings are the defaults for the simulate command
type SimulateSettings struct {
	Rounds  int `hcl:"rounds,optional" env:"BLACKJACK_SIM_ROUNDS"`
	Players int `hcl:"players,optional" env:"BLACKJACK_SIM_PLAYERS"`
	Workers int `hcl:"workers,optional" env:"BLACKJACK_SIM_WORKERS"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogSettings{
			Level: "warn",
		},
		UI: UISettings{
			Color: true,
		},
		Simulate: SimulateSettings{
			Rounds:  10000,
			Players: 2,
		},
	}
}

// Load builds the configuration from defaults, the HCL file at filename (a
// missing file is not an error), a .env file in the working directory and
// BLACKJACK_* environment variables, in that order of precedence.
func Load(filename string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFile loads configuration from an HCL file, applying defaults for
// anything the file leaves out
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		filename = DefaultFile
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fileCfg struct {
		Game     *GameSettings     `hcl:"game,block"`
		Log      *LogSettings      `hcl:"log,block"`
		UI       *uiBlock          `hcl:"ui,block"`
		Simulate *SimulateSettings `hcl:"simulate,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &fileCfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if fileCfg.Game != nil {
		cfg.Game = *fileCfg.Game
	}
	if l := fileCfg.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = l.Level
		}
		cfg.Log.File = l.File
	}
	if u := fileCfg.UI; u != nil && u.Color != nil {
		cfg.UI.Color = *u.Color
	}
	if s := fileCfg.Simulate; s != nil {
		if s.Rounds != 0 {
			cfg.Simulate.Rounds = s.Rounds
		}
		if s.Players != 0 {
			cfg.Simulate.Players = s.Players
		}
		cfg.Simulate.Workers = s.Workers
	}
	return cfg, nil
}

// uiBlock distinguishes "color = false" from an absent attribute
type uiBlock struct {
	Color *bool `hcl:"color,optional"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Mode != "" {
		if _, err := game.ParseMode(c.Game.Mode); err != nil {
			return err
		}
	}
	if c.Game.Players != 0 {
		if c.Game.Players < 2 || c.Game.Players > game.MaxPlayers {
			return fmt.Errorf("players must be between 2 and %d, got %d: %w", game.MaxPlayers, c.Game.Players, game.ErrInvalidPlayerCount)
		}
		if strings.EqualFold(c.Game.Mode, "pvc") && c.Game.Players != 2 {
			return fmt.Errorf("PvC is always 2 players, got %d: %w", c.Game.Players, game.ErrInvalidPlayerCount)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Simulate.Rounds <= 0 {
		return fmt.Errorf("simulate rounds must be positive")
	}
	if c.Simulate.Players < 2 || c.Simulate.Players > game.MaxPlayers {
		return fmt.Errorf("simulate players must be between 2 and %d, got %d: %w", game.MaxPlayers, c.Simulate.Players, game.ErrInvalidPlayerCount)
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("simulate workers cannot be negative")
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
