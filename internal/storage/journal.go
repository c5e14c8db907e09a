// Package storage provides a SQLite-backed journal of finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and is gone when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultName is the journal used by the CLI.
const DefaultName = "wordgarden"

// Store manages the SQLite connection for the round journal.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	SessionID string
	Player    string
	Word      string
	Outcome   string // "won" or "lost"
	Guesses   int    // Letters submitted, duplicates included
	Misses    int
	CreatedAt time.Time
}

// SessionSummary aggregates the rounds of one session.
type SessionSummary struct {
	SessionID string
	Rounds    int
	Won       int
	Lost      int
	Guesses   int
}

// Open creates an in-memory journal with the given name.
// Opening the same name twice within a process shares the data.
func Open(name string) (*Store, error) {
	if name == "" {
		name = DefaultName
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.PathEscape(name))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// The memory database is dropped when its last connection closes.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			word TEXT NOT NULL,
			outcome TEXT NOT NULL,
			guesses INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session_id ON rounds(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, player, word, outcome, guesses, misses)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Player, r.Word, r.Outcome, r.Guesses, r.Misses,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SessionRounds retrieves the rounds of one session, oldest first.
func (s *Store) SessionRounds(sessionID string) ([]RoundRecord, error) {
	return s.queryRounds(
		`SELECT id, session_id, player, word, outcome, guesses, misses, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
}

// RecentRounds retrieves the most recent rounds across all sessions.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRounds(
		`SELECT id, session_id, player, word, outcome, guesses, misses, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Player, &r.Word, &r.Outcome, &r.Guesses, &r.Misses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summary aggregates the rounds of one session.
func (s *Store) Summary(sessionID string) (SessionSummary, error) {
	summary := SessionSummary{SessionID: sessionID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(guesses), 0)
		 FROM rounds WHERE session_id = ?`,
		sessionID,
	).Scan(&summary.Rounds, &summary.Won, &summary.Lost, &summary.Guesses)
	if err != nil {
		return summary, fmt.Errorf("storage: cannot summarize session: %w", err)
	}
	return summary, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
