package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"collector/internal/dto"
)

// Journal keeps one local SQLite row per processed submission. It is an
// operator diagnostic: writes are best-effort and never block a response, and
// it is not a copy of the remote log (rows hold outcomes, not telemetry).
type Journal struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// Open creates the journal database and its schema if needed.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return j, nil
}

// migrate creates the necessary tables if they don't exist.
func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id TEXT PRIMARY KEY,
		received_at TEXT NOT NULL,
		captured_at TEXT NOT NULL,
		network_address TEXT NOT NULL,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		image_count INTEGER DEFAULT 0,
		images_stored INTEGER DEFAULT 0,
		status TEXT NOT NULL,
		error TEXT DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_received_at ON submissions(received_at);
	`

	_, err := j.conn.Exec(schema)
	return err
}

// Record inserts one submission outcome.
func (j *Journal) Record(s dto.SubmissionSummary) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.conn.Exec(`
		INSERT INTO submissions (id, received_at, captured_at, network_address, brand, model, image_count, images_stored, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.ReceivedAt, s.CapturedAt, s.NetworkAddress, s.Brand, s.Model, s.ImageCount, s.ImagesStored, s.Status, s.Error)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}

// Recent returns up to limit submission outcomes, newest first.
func (j *Journal) Recent(limit int) ([]dto.SubmissionSummary, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	rows, err := j.conn.Query(`
		SELECT id, received_at, captured_at, network_address, brand, model, image_count, images_stored, status, error
		FROM submissions ORDER BY received_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var entries []dto.SubmissionSummary
	for rows.Next() {
		var s dto.SubmissionSummary
		if err := rows.Scan(&s.ID, &s.ReceivedAt, &s.CapturedAt, &s.NetworkAddress, &s.Brand, &s.Model, &s.ImageCount, &s.ImagesStored, &s.Status, &s.Error); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		entries = append(entries, s)
	}
	return entries, rows.Err()
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.conn.Close()
}
