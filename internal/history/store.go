// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records every document generation in a SQLite database
// so past renders can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/writer/pkg/types"
)

const (
	dbFile       = "history.db"
	defaultLimit = 50

	// timeLayout is fixed width so created_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// Store manages the render history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates dir/history.db and its schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS renders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			family TEXT NOT NULL,
			template TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			fallbacks TEXT,
			error TEXT,
			duration_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_family ON renders(family)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_created_at ON renders(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores rec and returns it with ID set. A zero CreatedAt is set to
// the current time.
func (s *Store) Record(ctx context.Context, rec types.RenderRecord) (types.RenderRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	fallbacksJSON, _ := json.Marshal(rec.Fallbacks)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO renders (family, template, output, status, fallbacks, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Family, rec.Template, rec.Output, string(rec.Status), string(fallbacksJSON),
		rec.Error, rec.Duration.Milliseconds(), rec.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return rec, fmt.Errorf("inserting render record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return rec, fmt.Errorf("reading record id: %w", err)
	}
	rec.ID = id
	return rec, nil
}

// Query filters List results.
type Query struct {
	// Family restricts results to one template family.
	Family string
	// Status restricts results to one outcome.
	Status types.RenderStatus
	// Since excludes renders created before it.
	Since time.Time
	// Limit caps the number of results (default 50).
	Limit int
}

// List returns matching records, newest first.
func (s *Store) List(ctx context.Context, q Query) ([]types.RenderRecord, error) {
	var (
		where []string
		args  []any
	)
	if q.Family != "" {
		where = append(where, "family = ?")
		args = append(args, q.Family)
	}
	if q.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(q.Status))
	}
	if !q.Since.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, q.Since.UTC().Format(timeLayout))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := `SELECT id, family, template, output, status, fallbacks, error, duration_ms, created_at FROM renders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying renders: %w", err)
	}
	defer rows.Close()

	var records []types.RenderRecord
	for rows.Next() {
		var (
			rec                       types.RenderRecord
			output, fallbacks, errMsg sql.NullString
			status, createdAt         string
			durationMS                int64
		)
		if err := rows.Scan(&rec.ID, &rec.Family, &rec.Template, &output, &status,
			&fallbacks, &errMsg, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning render row: %w", err)
		}
		rec.Output = output.String
		rec.Status = types.RenderStatus(status)
		rec.Error = errMsg.String
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if fallbacks.Valid && fallbacks.String != "" {
			_ = json.Unmarshal([]byte(fallbacks.String), &rec.Fallbacks)
		}
		if t, err := time.Parse(timeLayout, createdAt); err == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ExportYAML writes the records matching q to w as a YAML sequence.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, q Query) error {
	records, err := s.List(ctx, q)
	if err != nil {
		return err
	}
	if records == nil {
		records = []types.RenderRecord{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
