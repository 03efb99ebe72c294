package repl

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryEntry is one past REPL submission, persisted across sessions.
type HistoryEntry struct {
	ID        int64
	SessionID string
	Input     string
	Output    string
	RanAt     time.Time
	Duration  time.Duration
}

// History persists REPL submissions to a local SQLite database, so a
// `:history` lookup in one session can see what was run in prior ones.
type History struct {
	db *sql.DB
}

// OpenHistory opens (creating if necessary) the history database at path.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	input TEXT NOT NULL,
	output TEXT NOT NULL,
	ran_at TIMESTAMP NOT NULL,
	duration_ms INTEGER NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &History{db: db}, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}

// Record appends one submission to the history database.
func (h *History) Record(sessionID, input, output string, ranAt time.Time, duration time.Duration) error {
	_, err := h.db.Exec(
		`INSERT INTO history (session_id, input, output, ran_at, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		sessionID, input, output, ranAt, duration.Milliseconds(),
	)
	return err
}

// Recent returns the last n entries across all sessions, most recent
// first.
func (h *History) Recent(n int) ([]HistoryEntry, error) {
	rows, err := h.db.Query(
		`SELECT id, session_id, input, output, ran_at, duration_ms FROM history ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var durationMs int64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Input, &e.Output, &e.RanAt, &durationMs); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
