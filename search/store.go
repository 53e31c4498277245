package search

import (
	"database/sql"
	"encoding/hex"
	"fmt"

	gojson "github.com/goccy/go-json"
	_ "modernc.org/sqlite"
)

// Store is an optional checkpoint table backing a Run: it persists
// (fingerprint -> encoded Record) rows in a pure-Go, cgo-free SQLite
// database (modernc.org/sqlite) so a cancelled or crashed tabulation can
// resume without recomputing already-tabulated positions. This is
// additive to spec.md §4.7 — Run works identically with Store == nil.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if absent) a checkpoint database at path.
// Pass ":memory:" for an ephemeral store useful in tests.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("search: opening checkpoint store: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS records (
	fingerprint TEXT PRIMARY KEY,
	run_id      TEXT NOT NULL,
	payload     BLOB NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("search: creating checkpoint schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Has reports whether fingerprint already has a checkpointed record.
func (s *Store) Has(fingerprint []byte) (bool, error) {
	row := s.db.QueryRow(`SELECT 1 FROM records WHERE fingerprint = ?`, hex.EncodeToString(fingerprint))
	var one int
	err := row.Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("search: checkpoint lookup: %w", err)
	default:
		return true, nil
	}
}

// Put checkpoints rec under fingerprint for runID, encoding it with
// goccy/go-json (the same drop-in encoder Get decodes with, so a
// checkpointed payload round-trips through the identical codec).
func Put[P any](s *Store, runID string, fingerprint []byte, rec Record[P]) error {
	payload, err := gojson.Marshal(rec)
	if err != nil {
		return fmt.Errorf("search: encoding checkpoint payload: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO records (fingerprint, run_id, payload) VALUES (?, ?, ?)`,
		hex.EncodeToString(fingerprint), runID, payload,
	)
	if err != nil {
		return fmt.Errorf("search: writing checkpoint: %w", err)
	}
	return nil
}

// Get reads back a previously checkpointed record, if present.
func Get[P any](s *Store, fingerprint []byte) (Record[P], bool, error) {
	var rec Record[P]
	row := s.db.QueryRow(`SELECT payload FROM records WHERE fingerprint = ?`, hex.EncodeToString(fingerprint))
	var payload []byte
	err := row.Scan(&payload)
	switch {
	case err == sql.ErrNoRows:
		return rec, false, nil
	case err != nil:
		return rec, false, fmt.Errorf("search: checkpoint lookup: %w", err)
	}
	if err := gojson.Unmarshal(payload, &rec); err != nil {
		return rec, false, fmt.Errorf("search: decoding checkpoint payload: %w", err)
	}
	return rec, true, nil
}
