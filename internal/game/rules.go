package game

// ScoreTable holds the base score awarded per simultaneous line clear,
// before the level multiplier. Four lines is the most a single piece can
// clear.
type ScoreTable struct {
	Single int
	Double int
	Triple int
	Tetris int
}

// Rules are the pure scoring, leveling and gravity-speed functions of the
// simulation, parameterized by configuration. The zero value is not
// usable; start from DefaultRules.
type Rules struct {
	Scoring ScoreTable

	// LinesPerLevel is how many total cleared lines advance the level.
	LinesPerLevel int

	// MaxLevel caps the level when positive; 0 leaves it uncapped.
	MaxLevel int

	// Gravity speed in milliseconds per automatic one-row drop.
	InitialFallSpeed   int
	FallSpeedIncrement int
	MinFallSpeed       int
}

// DefaultRules returns the classic parameter set.
func DefaultRules() Rules {
	return Rules{
		Scoring: ScoreTable{
			Single: 40,
			Double: 100,
			Triple: 300,
			Tetris: 1200,
		},
		LinesPerLevel:      10,
		MaxLevel:           0,
		InitialFallSpeed:   500,
		FallSpeedIncrement: 50,
		MinFallSpeed:       50,
	}
}

// LineScore returns the score for clearing the given number of lines at
// once at the given level. Counts outside 1-4 score zero.
func (r Rules) LineScore(lines, level int) int {
	var base int
	switch lines {
	case 1:
		base = r.Scoring.Single
	case 2:
		base = r.Scoring.Double
	case 3:
		base = r.Scoring.Triple
	case 4:
		base = r.Scoring.Tetris
	default:
		return 0
	}
	return base * level
}

// SoftDropScore returns the score for manually soft-dropping the given
// number of rows: one point per row. Automatic gravity scores nothing.
func (r Rules) SoftDropScore(rows int) int {
	if rows < 0 {
		return 0
	}
	return rows
}

// HardDropScore returns the score for hard-dropping the given number of
// rows: two points per row.
func (r Rules) HardDropScore(rows int) int {
	if rows < 0 {
		return 0
	}
	return rows * 2
}

// Level returns the level for a total line count, never below 1 and
// capped at MaxLevel when one is configured.
func (r Rules) Level(totalLines int) int {
	perLevel := r.LinesPerLevel
	if perLevel <= 0 {
		perLevel = 10
	}
	level := totalLines/perLevel + 1
	if level < 1 {
		level = 1
	}
	if r.MaxLevel > 0 && level > r.MaxLevel {
		level = r.MaxLevel
	}
	return level
}

// FallSpeed returns the gravity interval in milliseconds for a level,
// decreasing linearly with level and floored at MinFallSpeed.
func (r Rules) FallSpeed(level int) int {
	speed := r.InitialFallSpeed - (level-1)*r.FallSpeedIncrement
	if speed < r.MinFallSpeed {
		speed = r.MinFallSpeed
	}
	return speed
}
