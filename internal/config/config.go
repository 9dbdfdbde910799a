// Package config provides YAML-based configuration loading for termtris:
// board geometry, timing, scoring and key bindings, with an embedded
// default so the game runs correctly when no file is present.
package config

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/game"
)

// Config is the full configuration file.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Controls ControlsConfig `yaml:"controls"`
}

// GameConfig holds board geometry and timing parameters.
// All durations are milliseconds.
type GameConfig struct {
	BoardWidth         int `yaml:"board_width"`
	BoardHeight        int `yaml:"board_height"`
	InitialFallSpeed   int `yaml:"initial_fall_speed_ms"`
	FallSpeedIncrement int `yaml:"fall_speed_increment_ms"`
	MinFallSpeed       int `yaml:"min_fall_speed_ms"`
	LockDelay          int `yaml:"lock_delay_ms"`
	MaxMoveResets      int `yaml:"max_move_resets"`
	LinesPerLevel      int `yaml:"lines_per_level"`

	// MaxLevel caps leveling when positive; 0 leaves it uncapped.
	MaxLevel int `yaml:"max_level"`
}

// ScoringConfig holds the base line-clear score table.
type ScoringConfig struct {
	Single int `yaml:"single"`
	Double int `yaml:"double"`
	Triple int `yaml:"triple"`
	Tetris int `yaml:"tetris"`
}

// ControlsConfig maps action tokens to lists of key names as Bubble Tea
// reports them.
type ControlsConfig struct {
	MoveLeft    []string `yaml:"move_left"`
	MoveRight   []string `yaml:"move_right"`
	SoftDrop    []string `yaml:"soft_drop"`
	HardDrop    []string `yaml:"hard_drop"`
	RotateLeft  []string `yaml:"rotate_left"`
	RotateRight []string `yaml:"rotate_right"`
	Pause       []string `yaml:"pause"`
	Quit        []string `yaml:"quit"`
}

// Params converts the configuration into simulation parameters.
func (c Config) Params() game.Params {
	return game.Params{
		BoardWidth:    c.Game.BoardWidth,
		BoardHeight:   c.Game.BoardHeight,
		LockDelay:     c.Game.LockDelay,
		MaxMoveResets: c.Game.MaxMoveResets,
		Rules: game.Rules{
			Scoring: game.ScoreTable{
				Single: c.Scoring.Single,
				Double: c.Scoring.Double,
				Triple: c.Scoring.Triple,
				Tetris: c.Scoring.Tetris,
			},
			LinesPerLevel:      c.Game.LinesPerLevel,
			MaxLevel:           c.Game.MaxLevel,
			InitialFallSpeed:   c.Game.InitialFallSpeed,
			FallSpeedIncrement: c.Game.FallSpeedIncrement,
			MinFallSpeed:       c.Game.MinFallSpeed,
		},
	}
}

// Validate rejects configurations the simulation cannot run with. It
// defers the detailed checks to game.Params and adds file-level ones.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scoring.Single <= 0 || c.Scoring.Double <= c.Scoring.Single ||
		c.Scoring.Triple <= c.Scoring.Double || c.Scoring.Tetris <= c.Scoring.Triple {
		return fmt.Errorf("config: scoring table must be positive and strictly increasing")
	}
	return nil
}

// Bindings flattens the controls section into a key → action lookup.
// Later entries never override earlier ones, so duplicated keys keep
// their first assignment.
func (c ControlsConfig) Bindings() map[string]core.Action {
	bindings := make(map[string]core.Action)
	add := func(keys []string, action core.Action) {
		for _, k := range keys {
			if _, taken := bindings[k]; !taken {
				bindings[k] = action
			}
		}
	}
	add(c.MoveLeft, core.ActionMoveLeft)
	add(c.MoveRight, core.ActionMoveRight)
	add(c.SoftDrop, core.ActionSoftDrop)
	add(c.HardDrop, core.ActionHardDrop)
	add(c.RotateLeft, core.ActionRotateLeft)
	add(c.RotateRight, core.ActionRotateRight)
	add(c.Pause, core.ActionPause)
	add(c.Quit, core.ActionQuit)
	return bindings
}
