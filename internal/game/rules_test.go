package game

import "testing"

func TestLineScore(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		name  string
		lines int
		level int
		want  int
	}{
		{"single level 1", 1, 1, 40},
		{"double level 1", 2, 1, 100},
		{"triple level 1", 3, 1, 300},
		{"tetris level 1", 4, 1, 1200},
		{"single level 5", 1, 5, 200},
		{"tetris level 3", 4, 3, 3600},
		{"zero lines", 0, 1, 0},
		{"five lines", 5, 1, 0},
		{"negative lines", -1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.LineScore(tt.lines, tt.level); got != tt.want {
				t.Errorf("LineScore(%d, %d) = %d, want %d", tt.lines, tt.level, got, tt.want)
			}
		})
	}
}

func TestLineScoreMonotonic(t *testing.T) {
	r := DefaultRules()
	prev := 0
	for lines := 1; lines <= 4; lines++ {
		got := r.LineScore(lines, 1)
		if got <= prev {
			t.Errorf("LineScore(%d, 1) = %d, not greater than %d", lines, got, prev)
		}
		prev = got
	}
}

func TestDropScores(t *testing.T) {
	r := DefaultRules()
	if got := r.SoftDropScore(5); got != 5 {
		t.Errorf("SoftDropScore(5) = %d, want 5", got)
	}
	if got := r.HardDropScore(5); got != 10 {
		t.Errorf("HardDropScore(5) = %d, want 10", got)
	}
	if got := r.SoftDropScore(-1); got != 0 {
		t.Errorf("SoftDropScore(-1) = %d, want 0", got)
	}
	if got := r.HardDropScore(-1); got != 0 {
		t.Errorf("HardDropScore(-1) = %d, want 0", got)
	}
}

func TestLevelProgression(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		lines int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{95, 10},
		{200, 21},
	}
	for _, tt := range tests {
		if got := r.Level(tt.lines); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestLevelCap(t *testing.T) {
	r := DefaultRules()
	r.MaxLevel = 10
	if got := r.Level(95); got != 10 {
		t.Errorf("Level(95) capped = %d, want 10", got)
	}
	if got := r.Level(500); got != 10 {
		t.Errorf("Level(500) capped = %d, want 10", got)
	}
	if got := r.Level(0); got != 1 {
		t.Errorf("Level(0) capped = %d, want 1", got)
	}
}

func TestFallSpeed(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		level int
		want  int
	}{
		{1, 500},
		{2, 450},
		{5, 300},
		{10, 50},
		{50, 50}, // floored
	}
	for _, tt := range tests {
		if got := r.FallSpeed(tt.level); got != tt.want {
			t.Errorf("FallSpeed(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
