// Package store persists tally word-index snapshots to SQLite. Each
// index run becomes one snapshot row plus one row per distinct word;
// lookups aggregate counts across snapshots. The store is the CLI's
// collaborator only; the cowl library packages know nothing about it.
package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/cowl/pkg/keyed"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the SQLite database file created under the data
// directory.
const dbFileName = "tally.db"

// Store operation errors.
var (
	ErrClosed   = errors.New("store is closed")
	ErrNotFound = errors.New("word not found")
)

// Snapshot describes one persisted index run.
type Snapshot struct {
	SnapshotID    string    // UUID v7, generated on save.
	Source        string    // What was indexed, e.g. a file path.
	TotalWords    int64     // Sum of all word counts.
	DistinctWords int64     // Number of distinct words.
	CreatedAt     time.Time // Timestamp of the save.
}

// WordCount pairs a word with its aggregated count.
type WordCount struct {
	Word  string
	Count int64
}

// Store is a SQLite-backed word-index store. It is safe for concurrent
// use by multiple goroutines.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	open bool
}

// Open creates the data directory if needed, opens the database file
// inside it, and applies the schema. Existing data is preserved.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, open: true}, nil
}

// Close releases the database connection. Close is idempotent; after
// Close every operation returns ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// SaveSnapshot persists one index run. The counts map is read through
// Range; the store takes no reference to it. Returns the stored
// snapshot with its generated UUID v7 id.
func (s *Store) SaveSnapshot(source string, counts *keyed.Map[string, int64]) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return Snapshot{}, ErrClosed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Snapshot{}, fmt.Errorf("generating snapshot id: %w", err)
	}

	snap := Snapshot{
		SnapshotID: id.String(),
		Source:     source,
		CreatedAt:  time.Now().UTC(),
	}
	counts.Range(func(word string, count int64) bool {
		snap.TotalWords += count
		snap.DistinctWords++
		return true
	})

	tx, err := s.db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO snapshots (snapshot_id, source, total_words, distinct_words, created_at) VALUES (?, ?, ?, ?, ?)",
		snap.SnapshotID, snap.Source, snap.TotalWords, snap.DistinctWords,
		snap.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("persisting snapshot: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (snapshot_id, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return Snapshot{}, fmt.Errorf("preparing word insert: %w", err)
	}
	defer stmt.Close()

	var insertErr error
	counts.Range(func(word string, count int64) bool {
		if _, insertErr = stmt.Exec(snap.SnapshotID, word, count); insertErr != nil {
			return false
		}
		return true
	})
	if insertErr != nil {
		return Snapshot{}, fmt.Errorf("persisting word counts: %w", insertErr)
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("committing snapshot: %w", err)
	}
	return snap, nil
}

// Lookup returns the aggregated count of word across all snapshots.
// Returns ErrNotFound when no snapshot recorded the word.
func (s *Store) Lookup(word string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return 0, ErrClosed
	}

	var total sql.NullInt64
	err := s.db.QueryRow("SELECT SUM(count) FROM words WHERE word = ?", word).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("looking up %q: %w", word, err)
	}
	if !total.Valid {
		return 0, ErrNotFound
	}
	return total.Int64, nil
}

// Snapshots returns all persisted snapshots, newest first.
func (s *Store) Snapshots() ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		"SELECT snapshot_id, source, total_words, distinct_words, created_at FROM snapshots ORDER BY created_at DESC, snapshot_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var snap Snapshot
		var createdAt string
		if err := rows.Scan(&snap.SnapshotID, &snap.Source, &snap.TotalWords, &snap.DistinctWords, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snap.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing snapshot timestamp: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Top returns the n highest aggregated word counts, descending, ties
// broken alphabetically.
func (s *Store) Top(n int) ([]WordCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		"SELECT word, SUM(count) AS total FROM words GROUP BY word ORDER BY total DESC, word ASC LIMIT ?", n,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top words: %w", err)
	}
	defer rows.Close()

	var out []WordCount
	for rows.Next() {
		var wc WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("scanning word count: %w", err)
		}
		out = append(out, wc)
	}
	return out, rows.Err()
}

// Reset deletes every snapshot and word row. The schema stays in place.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		return fmt.Errorf("clearing words: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM snapshots"); err != nil {
		return fmt.Errorf("clearing snapshots: %w", err)
	}
	return tx.Commit()
}
