package config

import (
	_ "embed"
)

//go:embed defaults/termtris.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Game: GameConfig{
			BoardWidth:         10,
			BoardHeight:        20,
			InitialFallSpeed:   500,
			FallSpeedIncrement: 50,
			MinFallSpeed:       50,
			LockDelay:          500,
			MaxMoveResets:      15,
			LinesPerLevel:      10,
			MaxLevel:           0,
		},
		Scoring: ScoringConfig{
			Single: 40,
			Double: 100,
			Triple: 300,
			Tetris: 1200,
		},
		Controls: ControlsConfig{
			MoveLeft:    []string{"left", "a"},
			MoveRight:   []string{"right", "d"},
			SoftDrop:    []string{"down", "s"},
			HardDrop:    []string{" "},
			RotateLeft:  []string{"z"},
			RotateRight: []string{"up", "w", "x"},
			Pause:       []string{"p", "esc"},
			Quit:        []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
