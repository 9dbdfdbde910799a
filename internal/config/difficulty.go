package config

// DifficultyPreset names a bundle of timing overrides selectable from the
// command line without editing the config file.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is known. The empty string
// is valid and means "leave the config untouched".
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset overrides the timing parameters for a named preset.
// Scoring and geometry are never touched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.InitialFallSpeed = 650
		cfg.Game.FallSpeedIncrement = 40
		cfg.Game.LockDelay = 650
	case DifficultyNormal:
		cfg.Game.InitialFallSpeed = 500
		cfg.Game.FallSpeedIncrement = 50
		cfg.Game.LockDelay = 500
	case DifficultyHard:
		cfg.Game.InitialFallSpeed = 350
		cfg.Game.FallSpeedIncrement = 60
		cfg.Game.LockDelay = 400
		cfg.Game.MaxMoveResets = 10
	}
}
