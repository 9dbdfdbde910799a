package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/termtris/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories and the file itself are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	records := []SessionRecord{
		{SessionID: "aaaa1111", Score: 120, Level: 2, Lines: 11, Pieces: 30, DurationSecs: 95, EndReason: "board full"},
		{SessionID: "bbbb2222", Score: 40, Level: 1, Lines: 1, Pieces: 8, DurationSecs: 20, EndReason: "quit"},
		{SessionID: "cccc3333", Score: 900, Level: 4, Lines: 33, Pieces: 80, DurationSecs: 310, EndReason: "board full"},
	}
	for _, rec := range records {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(got))
	}

	// Newest first: same timestamp resolution, so the insert id breaks ties
	if got[0].SessionID != "cccc3333" {
		t.Errorf("Expected newest session first, got %q", got[0].SessionID)
	}
	if got[2].SessionID != "aaaa1111" {
		t.Errorf("Expected oldest session last, got %q", got[2].SessionID)
	}

	if got[0].Score != 900 || got[0].Lines != 33 || got[0].Pieces != 80 {
		t.Errorf("Round-tripped record mismatch: %+v", got[0])
	}
	if got[1].EndReason != "quit" {
		t.Errorf("EndReason = %q, want quit", got[1].EndReason)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveSession(SessionRecord{SessionID: "x", Score: i, Level: 1, EndReason: "quit"}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions(5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 sessions, got %d", len(got))
	}

	// Non-positive limits fall back to the default of 10
	got, err = store.RecentSessions(0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("Expected 10 sessions with default limit, got %d", len(got))
	}
}

func TestGetTotals(t *testing.T) {
	store := openTestStore(t)

	// Empty journal aggregates to zeroes, no error
	totals, err := store.GetTotals()
	if err != nil {
		t.Fatalf("GetTotals() failed: %v", err)
	}
	if totals.Sessions != 0 || totals.TotalLines != 0 {
		t.Errorf("Empty journal totals = %+v", totals)
	}

	store.SaveSession(SessionRecord{SessionID: "a", Score: 100, Level: 1, Lines: 4, Pieces: 10, DurationSecs: 60, EndReason: "quit"})
	store.SaveSession(SessionRecord{SessionID: "b", Score: 300, Level: 2, Lines: 8, Pieces: 20, DurationSecs: 120, EndReason: "board full"})

	totals, err = store.GetTotals()
	if err != nil {
		t.Fatalf("GetTotals() failed: %v", err)
	}
	if totals.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", totals.Sessions)
	}
	if totals.TotalLines != 12 || totals.TotalPieces != 30 {
		t.Errorf("Totals = %+v", totals)
	}
	if totals.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", totals.AvgScore)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(SessionRecord{SessionID: "a", Score: 1, Level: 1, EndReason: "quit"})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Journal not empty after clear: %d rows", len(got))
	}
}

func TestRecorderSavesOnGameOver(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store)

	r.Listen(game.Event{Type: game.EventGameStarted, SessionID: "dead8888"})
	for i := 0; i < 5; i++ {
		r.Listen(game.Event{Type: game.EventPieceSpawned, SessionID: "dead8888"})
	}
	r.Listen(game.Event{
		Type: game.EventGameOver, SessionID: "dead8888",
		Reason: "board full", Score: 420, Level: 2, TotalLines: 12,
	})

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 recorded session, got %d", len(got))
	}
	rec := got[0]
	if rec.SessionID != "dead8888" || rec.Score != 420 || rec.Level != 2 || rec.Lines != 12 {
		t.Errorf("Recorded session mismatch: %+v", rec)
	}
	if rec.Pieces != 5 {
		t.Errorf("Pieces = %d, want 5", rec.Pieces)
	}
	if rec.EndReason != "board full" {
		t.Errorf("EndReason = %q", rec.EndReason)
	}

	// A quit after the game already ended must not double-record
	r.FlushQuit(game.State{Status: game.StatusGameOver, Score: 420, Level: 2, Lines: 12})
	got, _ = store.RecentSessions(10)
	if len(got) != 1 {
		t.Errorf("Game-over session recorded twice: %d rows", len(got))
	}
}

func TestRecorderFlushQuit(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store)

	r.Listen(game.Event{Type: game.EventGameStarted, SessionID: "beef9999"})
	r.Listen(game.Event{Type: game.EventPieceSpawned, SessionID: "beef9999"})

	r.FlushQuit(game.State{Status: game.StatusPlaying, Score: 17, Level: 1, Lines: 0})

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Expected 1 recorded session, got %d", len(got))
	}
	if got[0].EndReason != "quit" || got[0].Score != 17 {
		t.Errorf("Abandoned session mismatch: %+v", got[0])
	}

	// Flushing again is a no-op
	r.FlushQuit(game.State{Status: game.StatusPlaying, Score: 17, Level: 1})
	got, _ = store.RecentSessions(10)
	if len(got) != 1 {
		t.Errorf("Quit recorded twice: %d rows", len(got))
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(nil)

	// Must not panic with storage unavailable
	r.Listen(game.Event{Type: game.EventGameStarted, SessionID: "cafe0000"})
	r.Listen(game.Event{Type: game.EventGameOver, SessionID: "cafe0000", Reason: "board full"})
	r.FlushQuit(game.State{Status: game.StatusPlaying})
}

func TestRecorderIgnoresMenuQuit(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store)

	r.Listen(game.Event{Type: game.EventGameStarted, SessionID: "feed1111"})
	r.FlushQuit(game.State{Status: game.StatusMenu})

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Menu quit recorded a session: %d rows", len(got))
	}
}
