package storage

import (
	"time"

	"github.com/vovakirdan/termtris/internal/game"
)

// Recorder tallies simulation events for the running session and writes
// one journal row when it ends. Saves are best-effort: a storage failure
// never disturbs the game.
type Recorder struct {
	store *Store

	sessionID string
	startedAt time.Time
	pieces    int
	saved     bool
}

// NewRecorder creates a recorder writing to the given store. A nil store
// is allowed and turns every save into a no-op.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store}
}

// Listen is a game.Listener; subscribe it on the manager.
func (r *Recorder) Listen(ev game.Event) {
	switch ev.Type {
	case game.EventGameStarted:
		r.sessionID = ev.SessionID
		r.startedAt = time.Now()
		r.pieces = 0
		r.saved = false
	case game.EventPieceSpawned:
		r.pieces++
	case game.EventGameOver:
		r.save(SessionRecord{
			SessionID: ev.SessionID,
			Score:     ev.Score,
			Level:     ev.Level,
			Lines:     ev.TotalLines,
			EndReason: ev.Reason,
		})
	}
}

// FlushQuit records an abandoned session from its last snapshot. Called
// by the platform when the player quits mid-game; a session that already
// ended is not recorded twice.
func (r *Recorder) FlushQuit(st game.State) {
	if st.Status != game.StatusPlaying && st.Status != game.StatusPaused {
		return
	}
	r.save(SessionRecord{
		SessionID: r.sessionID,
		Score:     st.Score,
		Level:     st.Level,
		Lines:     st.Lines,
		EndReason: "quit",
	})
}

func (r *Recorder) save(rec SessionRecord) {
	if r.store == nil || r.saved || r.sessionID == "" {
		return
	}
	rec.Pieces = r.pieces
	rec.DurationSecs = int(time.Since(r.startedAt) / time.Second)
	if rec.Level == 0 {
		rec.Level = 1
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	r.store.SaveSession(rec)
	r.saved = true
}
