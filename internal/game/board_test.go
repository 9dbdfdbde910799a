package game

import (
	"errors"
	"testing"
)

// fillRow occupies a full row except the listed gap columns.
func fillRow(t *testing.T, b *Board, y int, gaps ...int) {
	t.Helper()
	skip := make(map[int]bool, len(gaps))
	for _, g := range gaps {
		skip[g] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.cells[y][x] = 7
		}
	}
}

func TestNewBoardDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"default", 10, 20, false},
		{"narrow", 4, 30, false},
		{"zero width", 0, 20, true},
		{"zero height", 10, 0, true},
		{"negative", -1, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.w, tt.h)
			if tt.wantErr {
				if !errors.Is(err, ErrBadDimensions) {
					t.Errorf("NewBoard(%d,%d) error = %v, want ErrBadDimensions", tt.w, tt.h, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBoard(%d,%d): %v", tt.w, tt.h, err)
			}
			if b.Width() != tt.w || b.Height() != tt.h {
				t.Errorf("board is %dx%d, want %dx%d", b.Width(), b.Height(), tt.w, tt.h)
			}
			if b.FilledCells() != 0 {
				t.Errorf("new board has %d filled cells", b.FilledCells())
			}
		})
	}
}

func TestIsValidPosition(t *testing.T) {
	b, _ := NewBoard(10, 20)
	b.cells[10][4] = 3

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"spawn", Piece{Type: PieceO, X: 4, Y: 0}, true},
		{"left wall", Piece{Type: PieceO, X: -1, Y: 5}, false},
		{"right wall", Piece{Type: PieceO, X: 9, Y: 5}, false},
		{"below floor", Piece{Type: PieceO, X: 4, Y: 19}, false},
		{"on floor", Piece{Type: PieceO, X: 4, Y: 18}, true},
		{"above board", Piece{Type: PieceO, X: 4, Y: -1}, true},
		{"collision", Piece{Type: PieceO, X: 4, Y: 9}, false},
		{"beside occupied", Piece{Type: PieceO, X: 6, Y: 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.IsValidPosition(tt.piece); got != tt.want {
				t.Errorf("IsValidPosition(%+v) = %v, want %v", tt.piece, got, tt.want)
			}
		})
	}
}

func TestPlaceWritesColor(t *testing.T) {
	b, _ := NewBoard(10, 20)
	p := Piece{Type: PieceO, X: 4, Y: 18}
	if err := b.Place(p); err != nil {
		t.Fatalf("Place: %v", err)
	}
	want := PieceO.Color()
	for _, c := range p.Cells() {
		if got := b.Cell(c.X, c.Y); got != want {
			t.Errorf("cell (%d,%d) = %d, want %d", c.X, c.Y, got, want)
		}
	}
	if b.FilledCells() != 4 {
		t.Errorf("FilledCells = %d, want 4", b.FilledCells())
	}
}

func TestPlaceInvalidPosition(t *testing.T) {
	b, _ := NewBoard(10, 20)
	p := Piece{Type: PieceO, X: -2, Y: 0}
	if err := b.Place(p); !errors.Is(err, ErrInvalidPlacement) {
		t.Fatalf("Place error = %v, want ErrInvalidPlacement", err)
	}
	if b.FilledCells() != 0 {
		t.Errorf("failed Place mutated the board: %d filled cells", b.FilledCells())
	}
}

func TestPlaceAboveBoardClips(t *testing.T) {
	// Cells with y < 0 are valid but not written
	b, _ := NewBoard(10, 20)
	p := Piece{Type: PieceO, X: 4, Y: -1}
	if err := b.Place(p); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if b.FilledCells() != 2 {
		t.Errorf("FilledCells = %d, want 2 (top row of the O is above the board)", b.FilledCells())
	}
}

func TestClearCompletedLines(t *testing.T) {
	b, _ := NewBoard(10, 20)

	// Two complete rows with an incomplete one between them
	fillRow(t, b, 19)
	fillRow(t, b, 18, 3)
	fillRow(t, b, 17)
	b.cells[16][5] = 2

	if got := b.ClearCompletedLines(); got != 2 {
		t.Fatalf("ClearCompletedLines = %d, want 2", got)
	}

	// Surviving rows keep their relative order, shifted down by the
	// clears beneath them.
	if b.Cell(3, 19) != 0 || b.Cell(0, 19) == 0 {
		t.Errorf("row 19 should be the old gapped row 18")
	}
	if b.Cell(5, 18) != 2 {
		t.Errorf("marker cell did not shift from row 16 to row 18")
	}
	if b.FilledCells() != 10 {
		t.Errorf("FilledCells = %d, want 10", b.FilledCells())
	}
}

func TestClearNoCompletedLines(t *testing.T) {
	b, _ := NewBoard(10, 20)
	fillRow(t, b, 19, 0)
	if got := b.ClearCompletedLines(); got != 0 {
		t.Errorf("ClearCompletedLines = %d, want 0", got)
	}
	if b.Cell(1, 19) == 0 {
		t.Errorf("incomplete row was disturbed")
	}
}

func TestClearAdjacentLines(t *testing.T) {
	// Four stacked complete rows clear in one call
	b, _ := NewBoard(10, 20)
	for y := 16; y <= 19; y++ {
		fillRow(t, b, y)
	}
	if got := b.ClearCompletedLines(); got != 4 {
		t.Errorf("ClearCompletedLines = %d, want 4", got)
	}
	if b.FilledCells() != 0 {
		t.Errorf("board not empty after clearing all rows: %d", b.FilledCells())
	}
}

func TestGhostPosition(t *testing.T) {
	b, _ := NewBoard(10, 20)
	p := Piece{Type: PieceO, X: 4, Y: 0}

	ghost := b.GhostPosition(p)
	if ghost.Y != 18 {
		t.Errorf("ghost Y = %d, want 18 on an empty board", ghost.Y)
	}
	if ghost.X != p.X || ghost.Rotation != p.Rotation {
		t.Errorf("ghost changed X or rotation: %+v", ghost)
	}

	// Ghost of a landed piece is the piece itself
	again := b.GhostPosition(ghost)
	if again != ghost {
		t.Errorf("ghost of ghost = %+v, want %+v", again, ghost)
	}

	// A stack shortens the drop
	fillRow(t, b, 19)
	if got := b.GhostPosition(p); got.Y != 17 {
		t.Errorf("ghost Y over a stack = %d, want 17", got.Y)
	}
}

func TestIsGameOver(t *testing.T) {
	b, _ := NewBoard(10, 20)
	if b.IsGameOver() {
		t.Error("empty board reports game over")
	}
	b.cells[1][0] = 1
	if b.IsGameOver() {
		t.Error("occupied row 1 should not report game over")
	}
	b.cells[0][9] = 1
	if !b.IsGameOver() {
		t.Error("occupied top row should report game over")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b, _ := NewBoard(10, 20)
	b.cells[5][5] = 3
	clone := b.Clone()

	b.cells[5][5] = 0
	b.cells[6][6] = 1
	if clone.Cell(5, 5) != 3 || clone.Cell(6, 6) != 0 {
		t.Error("clone shares cell storage with the original")
	}
}

func TestResetClearsBoard(t *testing.T) {
	b, _ := NewBoard(10, 20)
	fillRow(t, b, 19)
	b.Reset()
	if b.FilledCells() != 0 {
		t.Errorf("Reset left %d filled cells", b.FilledCells())
	}
}

func TestCellOutOfBounds(t *testing.T) {
	b, _ := NewBoard(10, 20)
	for _, xy := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 20}} {
		if got := b.Cell(xy[0], xy[1]); got != 0 {
			t.Errorf("Cell(%d,%d) = %d, want 0", xy[0], xy[1], got)
		}
	}
}
