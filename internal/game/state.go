package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/termtris/internal/core"
)

// Status is the session state machine position.
// Menu → Playing ⇄ Paused, Playing → GameOver. GameOver and Menu are
// terminal; a new session restarts at Playing via an explicit start.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ErrInvalidState is returned when a candidate snapshot fails validation.
// The manager retains the last valid snapshot in that case.
var ErrInvalidState = errors.New("game: invalid state")

// Params are the externally supplied simulation parameters. The
// simulation functions correctly with DefaultParams alone.
type Params struct {
	BoardWidth  int
	BoardHeight int

	// LockDelay is the grace period in milliseconds once a piece is
	// grounded before it locks.
	LockDelay int

	// MaxMoveResets caps how many times a grounded piece's lock delay
	// may be restarted by player action before it locks anyway.
	MaxMoveResets int

	Rules Rules
}

// DefaultParams returns the classic parameter set on a 10x20 board.
func DefaultParams() Params {
	return Params{
		BoardWidth:    DefaultBoardWidth,
		BoardHeight:   DefaultBoardHeight,
		LockDelay:     500,
		MaxMoveResets: 15,
		Rules:         DefaultRules(),
	}
}

// Validate checks the parameter set for values the simulation cannot run
// with.
func (p Params) Validate() error {
	if p.BoardWidth <= 0 || p.BoardHeight <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrBadDimensions, p.BoardWidth, p.BoardHeight)
	}
	if p.LockDelay < 0 {
		return fmt.Errorf("%w: negative lock delay", ErrInvalidState)
	}
	if p.MaxMoveResets < 0 {
		return fmt.Errorf("%w: negative max move resets", ErrInvalidState)
	}
	if p.Rules.MinFallSpeed <= 0 || p.Rules.InitialFallSpeed < p.Rules.MinFallSpeed {
		return fmt.Errorf("%w: fall speed range %d..%d", ErrInvalidState,
			p.Rules.MinFallSpeed, p.Rules.InitialFallSpeed)
	}
	return nil
}

// State is the authoritative immutable snapshot of the simulation. Every
// accepted change produces a new value; consumers always observe a
// complete, internally consistent snapshot and never need to re-validate
// it. The ghost piece is derived from Current and Board, never stored
// authoritatively on its own.
type State struct {
	Status Status
	Board  *Board // snapshot clone, never aliased by the working board

	Current *Piece
	Next    *Piece
	Ghost   *Piece

	Score int
	Level int
	Lines int

	FallSpeed int // ms per automatic one-row drop
	FallTimer int // ms accumulated toward the next drop
	LockDelay int // ms of grace once grounded
	LockTimer int // ms accumulated while grounded

	Grounded      bool
	MoveResets    int
	MaxMoveResets int
}

const maxHistory = 100

// Manager owns the working board and produces the next snapshot from the
// current one and a requested change, validating invariants. It is not
// safe for concurrent use; the driver loop is the single mutator.
type Manager struct {
	params    Params
	rng       *rand.Rand
	board     *Board
	state     State
	history   []State
	sessionID string
	listeners []Listener
}

// NewManager creates a manager in the Menu status with an empty board.
// The seed fixes the piece sequence: identical seeds, actions and
// elapsed-time increments reproduce identical snapshots.
func NewManager(params Params, seed int64) (*Manager, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(params.BoardWidth, params.BoardHeight)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
		board:  board,
	}
	m.state = State{
		Status:        StatusMenu,
		Board:         board.Clone(),
		Level:         1,
		FallSpeed:     params.Rules.FallSpeed(1),
		LockDelay:     params.LockDelay,
		MaxMoveResets: params.MaxMoveResets,
	}
	m.history = []State{m.state}
	return m, nil
}

// State returns the current snapshot.
func (m *Manager) State() State {
	return m.state
}

// SessionID returns the short id of the running session, empty before the
// first start.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// PreviousState returns the snapshot from stepsBack accepted changes ago,
// or nil if the bounded history does not reach that far.
func (m *Manager) PreviousState(stepsBack int) *State {
	if stepsBack < 1 || stepsBack >= len(m.history) {
		return nil
	}
	st := m.history[len(m.history)-1-stepsBack]
	return &st
}

// CanUndo reports whether at least one earlier snapshot is retained.
func (m *Manager) CanUndo() bool {
	return len(m.history) > 1
}

// Start begins a new session from any status: the board is reset, the
// first pieces are spawned and score, level and timers return to their
// initial values.
func (m *Manager) Start() error {
	m.sessionID = uuid.New().String()[:8]
	m.board.Reset()

	current := RandomSpawn(m.rng)
	next := RandomSpawn(m.rng)
	ghost := m.board.GhostPosition(current)

	st := State{
		Status:        StatusPlaying,
		Board:         m.board.Clone(),
		Current:       &current,
		Next:          &next,
		Ghost:         &ghost,
		Level:         1,
		FallSpeed:     m.params.Rules.FallSpeed(1),
		LockDelay:     m.params.LockDelay,
		MaxMoveResets: m.params.MaxMoveResets,
	}
	if err := m.commitFresh(st); err != nil {
		return err
	}
	m.emit(Event{Type: EventGameStarted})
	m.emit(Event{Type: EventPieceSpawned, Piece: current.Type})
	return nil
}

// Pause suspends a playing session. No-op in any other status.
func (m *Manager) Pause() {
	if m.state.Status != StatusPlaying {
		return
	}
	st := m.state
	st.Status = StatusPaused
	m.mustCommit(st)
}

// Resume continues a paused session, resetting the timing accumulators so
// the paused duration is not counted as fall or lock time.
func (m *Manager) Resume() {
	if m.state.Status != StatusPaused {
		return
	}
	st := m.state
	st.Status = StatusPlaying
	st.FallTimer = 0
	st.LockTimer = 0
	m.mustCommit(st)
}

// Tick advances the simulation by dtMillis of elapsed time, applying
// gravity and the lock-delay countdown. Only a playing session ticks.
func (m *Manager) Tick(dtMillis int) error {
	if m.state.Status != StatusPlaying || m.state.Current == nil || dtMillis <= 0 {
		return nil
	}

	st := m.state
	if st.Grounded {
		st.LockTimer += dtMillis
	}

	st.FallTimer += dtMillis
	if st.FallTimer >= st.FallSpeed {
		st.FallTimer = 0
		moved := st.Current.Move(0, 1)
		if m.board.IsValidPosition(moved) {
			ghost := m.board.GhostPosition(moved)
			st.Current = &moved
			st.Ghost = &ghost
			st.Grounded = false
			st.LockTimer = 0
			st.MoveResets = 0
		} else if !st.Grounded {
			// First tick the piece cannot fall: grace period begins.
			st.Grounded = true
			st.LockTimer = 0
			st.MoveResets = 0
		}
	}

	if st.Grounded && st.LockTimer >= st.LockDelay {
		return m.lock(st)
	}
	return m.commit(st)
}

// HandleAction applies one edge-triggered input token. Actions that are
// invalid in the current status, and moves or rotations the board
// rejects, are silently ignored; unknown tokens are ignored too. Errors
// surface only for invalid-state conditions, which are caller bugs.
func (m *Manager) HandleAction(action core.Action) error {
	switch action {
	case core.ActionMoveLeft:
		return m.shift(-1, 0)
	case core.ActionMoveRight:
		return m.shift(1, 0)
	case core.ActionSoftDrop:
		return m.shift(0, 1)
	case core.ActionRotateLeft:
		return m.rotate(RotateLeft)
	case core.ActionRotateRight:
		return m.rotate(RotateRight)
	case core.ActionHardDrop:
		return m.hardDrop()
	case core.ActionPause:
		if m.state.Status == StatusPaused {
			m.Resume()
		} else {
			m.Pause()
		}
		return nil
	case core.ActionStart, core.ActionRestart:
		if m.state.Status == StatusMenu || m.state.Status == StatusGameOver {
			return m.Start()
		}
		return nil
	default:
		// Unknown or platform-level tokens are not the simulation's
		// business.
		return nil
	}
}

// shift tries to move the current piece by (dx, dy). A successful move
// while grounded consumes a move reset; exceeding the cap locks the piece
// at its pre-move position instead of restarting the grace period.
func (m *Manager) shift(dx, dy int) error {
	st := m.state
	if st.Status != StatusPlaying || st.Current == nil {
		return nil
	}

	moved := st.Current.Move(dx, dy)
	if !m.board.IsValidPosition(moved) {
		return nil // expected rejection, state unchanged
	}

	if st.Grounded {
		st.MoveResets++
		if st.MoveResets > st.MaxMoveResets {
			return m.lock(st)
		}
		st.LockTimer = 0
	}

	ghost := m.board.GhostPosition(moved)
	st.Current = &moved
	st.Ghost = &ghost
	if dy > 0 {
		// Manual soft drop scores per row; automatic gravity does not.
		st.Score += m.params.Rules.SoftDropScore(dy)
	}
	return m.commit(st)
}

// rotate tries to rotate the current piece, applying the same lock-delay
// reset policy as shift. There are no wall kicks: a rotation the board
// rejects leaves the state unchanged.
func (m *Manager) rotate(dir RotateDir) error {
	st := m.state
	if st.Status != StatusPlaying || st.Current == nil {
		return nil
	}

	rotated, err := st.Current.Rotate(dir)
	if err != nil {
		return err
	}
	if !m.board.IsValidPosition(rotated) {
		return nil
	}

	if st.Grounded {
		st.MoveResets++
		if st.MoveResets > st.MaxMoveResets {
			return m.lock(st)
		}
		st.LockTimer = 0
	}

	ghost := m.board.GhostPosition(rotated)
	st.Current = &rotated
	st.Ghost = &ghost
	return m.commit(st)
}

// hardDrop snaps the current piece to its ghost position, awards the
// hard-drop score and locks on the same action, bypassing lock delay.
func (m *Manager) hardDrop() error {
	st := m.state
	if st.Status != StatusPlaying || st.Current == nil {
		return nil
	}

	ghost := m.board.GhostPosition(*st.Current)
	dropped := ghost.Y - st.Current.Y
	st.Score += m.params.Rules.HardDropScore(dropped)
	st.Current = &ghost
	st.Ghost = &ghost
	return m.lock(st)
}

// lock places the current piece, clears completed lines, applies scoring
// and leveling, and spawns the next piece. A spawn into an invalid
// position ends the session instead.
func (m *Manager) lock(st State) error {
	locked := *st.Current
	if err := m.board.Place(locked); err != nil {
		// The board refused a position the manager believed valid;
		// keep the last valid snapshot.
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	cleared := m.board.ClearCompletedLines()
	if cleared > 0 {
		delta := m.params.Rules.LineScore(cleared, st.Level)
		st.Score += delta
		st.Lines += cleared
		m.emit(Event{Type: EventLinesCleared, Lines: cleared, ScoreDelta: delta})
	}

	newLevel := m.params.Rules.Level(st.Lines)
	if newLevel > st.Level {
		m.emit(Event{Type: EventLevelUp, Level: newLevel})
	}
	st.Level = newLevel
	st.FallSpeed = m.params.Rules.FallSpeed(newLevel)

	m.emit(Event{Type: EventPieceLocked, Piece: locked.Type})

	st.FallTimer = 0
	st.LockTimer = 0
	st.Grounded = false
	st.MoveResets = 0
	st.Board = m.board.Clone()

	spawned := *st.Next
	nextUp := RandomSpawn(m.rng)
	if !m.board.IsValidPosition(spawned) {
		st.Status = StatusGameOver
		st.Current = nil
		st.Ghost = nil
		st.Next = &nextUp
		if err := m.commit(st); err != nil {
			return err
		}
		m.emit(Event{
			Type:       EventGameOver,
			Reason:     "board full",
			Score:      st.Score,
			Level:      st.Level,
			TotalLines: st.Lines,
		})
		return nil
	}

	ghost := m.board.GhostPosition(spawned)
	st.Current = &spawned
	st.Next = &nextUp
	st.Ghost = &ghost
	if err := m.commit(st); err != nil {
		return err
	}
	m.emit(Event{Type: EventPieceSpawned, Piece: spawned.Type})
	return nil
}

// commit validates a candidate snapshot and makes it current. On failure
// the previous snapshot is retained and the error reported.
func (m *Manager) commit(st State) error {
	if err := m.validate(st); err != nil {
		return err
	}
	m.state = st
	m.pushHistory(st)
	return nil
}

// commitFresh is commit with the history restarted, used by Start.
func (m *Manager) commitFresh(st State) error {
	if err := m.validate(st); err != nil {
		return err
	}
	m.state = st
	m.history = []State{st}
	return nil
}

// mustCommit is commit for transitions that cannot produce an invalid
// snapshot from a valid one (pause/resume).
func (m *Manager) mustCommit(st State) {
	if err := m.commit(st); err != nil {
		panic(err)
	}
}

func (m *Manager) validate(st State) error {
	if st.Board == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidState)
	}
	if st.Board.Width() != m.params.BoardWidth || st.Board.Height() != m.params.BoardHeight {
		return fmt.Errorf("%w: board is %dx%d, want %dx%d", ErrInvalidState,
			st.Board.Width(), st.Board.Height(), m.params.BoardWidth, m.params.BoardHeight)
	}
	if st.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, st.Score)
	}
	if st.Level < 1 {
		return fmt.Errorf("%w: level %d below 1", ErrInvalidState, st.Level)
	}
	if st.Lines < 0 {
		return fmt.Errorf("%w: negative line count %d", ErrInvalidState, st.Lines)
	}
	if st.Current != nil && !st.Board.IsValidPosition(*st.Current) {
		return fmt.Errorf("%w: current piece at invalid position", ErrInvalidState)
	}
	return nil
}

func (m *Manager) pushHistory(st State) {
	m.history = append(m.history, st)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}
