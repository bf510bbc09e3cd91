// Package session persists the last playback session so a restarted player
// can resume where it left off.
package session

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "cadence"
	dbFileName = "cadence.db"
)

// Session is the resumable playback state.
type Session struct {
	SourceIndex   int
	PositionMs    int64
	PlayWhenReady bool
}

// Store persists sessions in a single-row sqlite table.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the store in the XDG data directory.
func Open() (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens the store at an explicit path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the saved session, or nil if none was saved yet.
func (s *Store) Load() (*Session, error) {
	row := s.db.QueryRow(`
		SELECT source_index, position_ms, play_when_ready
		FROM session WHERE id = 1`)

	var sess Session
	var playWhenReady int
	err := row.Scan(&sess.SourceIndex, &sess.PositionMs, &playWhenReady)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sess.PlayWhenReady = playWhenReady != 0
	return &sess, nil
}

// Save replaces the stored session.
func (s *Store) Save(sess Session) error {
	return withTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO session (id, source_index, position_ms, play_when_ready)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				source_index = excluded.source_index,
				position_ms = excluded.position_ms,
				play_when_ready = excluded.play_when_ready`,
			sess.SourceIndex, sess.PositionMs, boolToInt(sess.PlayWhenReady))
		return err
	})
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return err
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			source_index INTEGER NOT NULL DEFAULT 0,
			position_ms INTEGER NOT NULL DEFAULT 0,
			play_when_ready INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// withTx executes fn within a transaction, rolling back on error.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
