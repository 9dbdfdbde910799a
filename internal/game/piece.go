// Package game implements the falling-block simulation: the piece catalog,
// the board, the scoring rules and the state manager. It is deterministic
// given a seed and a fixed sequence of actions and elapsed-time increments,
// and has no dependencies on the terminal platform.
package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// PieceType identifies one of the seven tetromino shapes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// NumPieceTypes is the number of distinct tetromino shapes.
const NumPieceTypes = 7

// Spawn position for new pieces: horizontally centered for a 4-cell
// bounding box on the default 10-wide board, top row.
const (
	SpawnX = 3
	SpawnY = 0
)

// RotateDir selects a rotation direction.
type RotateDir int

const (
	RotateLeft RotateDir = iota
	RotateRight
)

var (
	// ErrUnknownPieceType is returned when a piece type outside the
	// catalog is requested. Caller bug, not a gameplay outcome.
	ErrUnknownPieceType = errors.New("game: unknown piece type")

	// ErrUnknownRotation is returned for a rotation direction that is
	// neither left nor right.
	ErrUnknownRotation = errors.New("game: unknown rotation direction")
)

// Rotation states are literal per-rotation grids, not derived by a generic
// rotation matrix. '#' marks an occupied cell. The asymmetric I/S/Z states
// match classic guideline behavior without wall kicks.
var shapeLayouts = [NumPieceTypes][][]string{
	PieceI: {
		{"....", "####", "....", "...."},
		{"..#.", "..#.", "..#.", "..#."},
		{"....", "....", "####", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	PieceO: {
		{"##", "##"},
	},
	PieceT: {
		{".#.", "###", "..."},
		{".#.", ".##", ".#."},
		{"...", "###", ".#."},
		{".#.", "##.", ".#."},
	},
	PieceS: {
		{".##", "##.", "..."},
		{".#.", ".##", "..#"},
	},
	PieceZ: {
		{"##.", ".##", "..."},
		{"..#", ".##", ".#."},
	},
	PieceJ: {
		{"#..", "###", "..."},
		{".##", ".#.", ".#."},
		{"...", "###", "..#"},
		{".#.", ".#.", "##."},
	},
	PieceL: {
		{"..#", "###", "..."},
		{".#.", ".#.", ".##"},
		{"...", "###", "#.."},
		{"##.", ".#.", ".#."},
	},
}

// pieceColors maps each type to its board color id (1-7, 0 is empty).
var pieceColors = [NumPieceTypes]int{
	PieceI: 1, // cyan
	PieceO: 2, // yellow
	PieceT: 3, // magenta
	PieceS: 4, // green
	PieceZ: 5, // red
	PieceJ: 6, // blue
	PieceL: 7, // orange
}

// shapes holds the parsed catalog: shapes[type][rotation][row][col].
var shapes [NumPieceTypes][][][]bool

func init() {
	for t, layouts := range shapeLayouts {
		parsed := make([][][]bool, len(layouts))
		for r, layout := range layouts {
			parsed[r] = mustParseShape(PieceType(t), r, layout)
		}
		shapes[t] = parsed
	}
}

// mustParseShape converts a string layout into a boolean grid, validating
// that every rotation state of a type is a well-formed rectangular grid
// with at least one occupied cell. Panics on a malformed catalog since the
// layouts are compile-time literals.
func mustParseShape(t PieceType, rotation int, layout []string) [][]bool {
	if len(layout) == 0 {
		panic(fmt.Sprintf("game: empty shape layout for %s rotation %d", t, rotation))
	}
	width := len(layout[0])
	grid := make([][]bool, len(layout))
	occupied := 0
	for y, row := range layout {
		if len(row) != width {
			panic(fmt.Sprintf("game: ragged shape layout for %s rotation %d", t, rotation))
		}
		grid[y] = make([]bool, width)
		for x, ch := range row {
			if ch == '#' {
				grid[y][x] = true
				occupied++
			}
		}
	}
	if occupied == 0 {
		panic(fmt.Sprintf("game: blank shape layout for %s rotation %d", t, rotation))
	}
	return grid
}

// String returns the single-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

func (t PieceType) valid() bool {
	return t >= 0 && t < NumPieceTypes
}

// RotationCount returns the number of distinct rotation states for the type.
func (t PieceType) RotationCount() int {
	if !t.valid() {
		return 0
	}
	return len(shapes[t])
}

// Color returns the board color id for the type (1-7).
func (t PieceType) Color() int {
	if !t.valid() {
		return 0
	}
	return pieceColors[t]
}

// Cell is a single occupied position in board coordinates.
type Cell struct {
	X, Y int
}

/// Piece is an immutable value representing one active tetromino: its type,
// grid position of the shape's top-left corner (Y may be negative while
// part of the piece is above the visible board) and rotation index. Move
// and Rotate produce new values and never validate against a board; the
// board owns collision checks.
type Piece struct {
	Type     PieceType
	X, Y     int
	Rotation int
}

// Spawn creates a piece of the given type at the fixed spawn offset with
// rotation 0.
func Spawn(t PieceType) (Piece, error) {
	if !t.valid() {
		return Piece{}, fmt.Errorf("%w: %d", ErrUnknownPieceType, int(t))
	}
	return Piece{Type: t, X: SpawnX, Y: SpawnY}, nil
}

// RandomSpawn creates a piece of a uniformly random type at the spawn
// offset. There is no bag randomizer: droughts and streaks are possible,
// matching the simple uniform source this game descends from.
func RandomSpawn(rng *rand.Rand) Piece {
	t := PieceType(rng.Intn(NumPieceTypes))
	p, _ := Spawn(t)
	return p
}

// Shape returns the occupancy grid for the piece's current rotation.
// The returned grid is shared catalog data and must not be mutated.
func (p Piece) Shape() [][]bool {
	return shapes[p.Type][p.Rotation%p.Type.RotationCount()]
}

// Color returns the piece's board color id.
func (p Piece) Color() int {
	return p.Type.Color()
}

// Cells returns the absolute board coordinates of every occupied cell.
func (p Piece) Cells() []Cell {
	shape := p.Shape()
	cells := make([]Cell, 0, 4)
	for dy, row := range shape {
		for dx, occupied := range row {
			if occupied {
				cells = append(cells, Cell{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return cells
}

// Move returns a new piece shifted by (dx, dy). Rotation and shape are
// unchanged; no validation happens here.
func (p Piece) Move(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotate returns a new piece rotated one step in the given direction,
// wrapping around the type's rotation states. A rotation that collides on
// the board is simply rejected by the caller; the piece itself knows
// nothing about the board.
func (p Piece) Rotate(dir RotateDir) (Piece, error) {
	n := p.Type.RotationCount()
	switch dir {
	case RotateRight:
		p.Rotation = (p.Rotation + 1) % n
	case RotateLeft:
		p.Rotation = (p.Rotation - 1 + n) % n
	default:
		return p, fmt.Errorf("%w: %d", ErrUnknownRotation, int(dir))
	}
	return p, nil
}
