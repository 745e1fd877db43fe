// Package store persists the one durable value the game has: the best score.
package store

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding the best score. A single-row table
// keeps reads and writes trivial; the write guard keeps the value monotonic
// even with multiple game sessions sharing one database.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the score database at path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// migrate creates the score table and seeds its single row.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS highscore (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		best INTEGER NOT NULL DEFAULT 0
	);
	INSERT OR IGNORE INTO highscore (id, best) VALUES (1, 0);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Best returns the persisted best score.
func (s *Store) Best() (int, error) {
	var best int
	err := s.conn.QueryRow("SELECT best FROM highscore WHERE id = 1").Scan(&best)
	if err != nil {
		return 0, err
	}
	return best, nil
}

// SaveBest writes the best score. The value only ever increases; a stale
// writer cannot lower it.
func (s *Store) SaveBest(best int) error {
	_, err := s.conn.Exec("UPDATE highscore SET best = ? WHERE id = 1 AND best < ?", best, best)
	return err
}
