package game

import (
	"errors"
	"fmt"
)

// Default playfield dimensions.
const (
	DefaultBoardWidth  = 10
	DefaultBoardHeight = 20
)

var (
	// ErrInvalidPlacement is returned when a piece is placed at a
	// position that fails validation. This is a programming error in the
	// caller: collision rejection is supposed to happen before placing.
	ErrInvalidPlacement = errors.New("game: piece placed at invalid position")

	// ErrBadDimensions is returned for non-positive board dimensions.
	ErrBadDimensions = errors.New("game: board dimensions must be positive")
)

// Board is the playfield grid. Cells hold 0 for empty or the color id of
// the piece that occupies them. Only Place and ClearCompletedLines mutate
// cells; everything else is a query.
type Board struct {
	width  int
	height int
	cells  [][]int
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	b := &Board{width: width, height: height}
	b.Reset()
	return b, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// Cell returns the color id at (x, y), or 0 for out-of-bounds coordinates.
func (b *Board) Cell(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.cells[y][x]
}

// Reset clears every cell to empty.
func (b *Board) Reset() {
	b.cells = make([][]int, b.height)
	for y := range b.cells {
		b.cells[y] = make([]int, b.width)
	}
}

// Clone returns a deep copy of the board. Snapshots hold clones so that
// later placements never show through an older state.
func (b *Board) Clone() *Board {
	clone := &Board{width: b.width, height: b.height}
	clone.cells = make([][]int, b.height)
	for y, row := range b.cells {
		clone.cells[y] = make([]int, b.width)
		copy(clone.cells[y], row)
	}
	return clone
}

// IsValidPosition reports whether every occupied cell of the piece is
// inside the horizontal bounds, above the floor, and not colliding with a
// placed cell. Rows above the visible board (y < 0) are permitted: a piece
// may be partly above the playfield right after spawning or rotating.
func (b *Board) IsValidPosition(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != 0 {
			return false
		}
	}
	return true
}

// Place writes the piece's color into every occupied board cell. The
// position must already have passed IsValidPosition; placing an invalid
// piece returns ErrInvalidPlacement and leaves the board untouched.
func (b *Board) Place(p Piece) error {
	if !b.IsValidPosition(p) {
		return fmt.Errorf("%w: %s at (%d,%d) rot %d", ErrInvalidPlacement, p.Type, p.X, p.Y, p.Rotation)
	}
	color := p.Color()
	for _, c := range p.Cells() {
		if c.Y >= 0 {
			b.cells[c.Y][c.X] = color
		}
	}
	return nil
}

// ClearCompletedLines removes every fully occupied row, shifting the rows
// above it down and inserting an empty row at the top. Returns the number
// of rows cleared. The scan runs bottom-up and re-checks the same index
// after a removal, since a new row slides into it.
func (b *Board) ClearCompletedLines() int {
	cleared := 0
	y := b.height - 1
	for y >= 0 {
		if b.rowComplete(y) {
			b.removeRow(y)
			cleared++
		} else {
			y--
		}
	}
	return cleared
}

func (b *Board) rowComplete(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == 0 {
			return false
		}
	}
	return true
}

func (b *Board) removeRow(y int) {
	copy(b.cells[1:y+1], b.cells[0:y])
	b.cells[0] = make([]int, b.width)
}

// GhostPosition returns the piece moved straight down as far as it can
// validly go: the hard-drop landing spot. Pure query, the board is not
// mutated.
func (b *Board) GhostPosition(p Piece) Piece {
	ghost := p
	for {
		next := ghost.Move(0, 1)
		if !b.IsValidPosition(next) {
			return ghost
		}
		ghost = next
	}
}

// IsGameOver reports whether any cell in the topmost visible row is
// occupied. Checked after a spawn fails validation, not continuously.
func (b *Board) IsGameOver() bool {
	for x := 0; x < b.width; x++ {
		if b.cells[0][x] != 0 {
			return true
		}
	}
	return false
}

// FilledCells returns the number of occupied cells, a convenience for
// tests and telemetry.
func (b *Board) FilledCells() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}
