package game

// EventType identifies a discrete notification from the simulation.
type EventType int

const (
	EventGameStarted EventType = iota
	EventPieceSpawned
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

// String returns a log-friendly name for the event type.
func (t EventType) String() string {
	switch t {
	case EventGameStarted:
		return "game_started"
	case EventPieceSpawned:
		return "piece_spawned"
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by the Manager as a side channel for
// logging and telemetry. Fields beyond Type and SessionID are populated
// per type. Absence of listeners never affects the simulation.
type Event struct {
	Type      EventType
	SessionID string

	Piece      PieceType // piece_spawned, piece_locked
	Lines      int       // lines_cleared: rows cleared this lock
	ScoreDelta int       // lines_cleared: score awarded
	Level      int       // level_up: new level
	Reason     string    // game_over

	// Final tallies, populated on game_over.
	Score      int
	TotalLines int
}

// Listener receives simulation events. Listeners must not block; they run
// inline on the simulation path.
type Listener func(Event)

// Subscribe registers a listener for all future events.
func (m *Manager) Subscribe(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

func (m *Manager) emit(ev Event) {
	ev.SessionID = m.sessionID
	for _, l := range m.listeners {
		l(ev)
	}
}
