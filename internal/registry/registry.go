// Package registry persists analysis runs in SQLite so past reports can be
// listed, retrieved and diffed.
package registry

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/seolens/seolens/internal/app"
	"github.com/seolens/seolens/internal/logging"
)

//go:embed schema.sql
var schemaFS embed.FS

var ErrRunNotFound = errors.New("analysis run not found")

// Run is one stored analysis: identity, headline numbers and the full
// envelope JSON.
type Run struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Score     int    `json:"score"`
	CreatedAt int64  `json:"created_at"`

	Envelope *app.Envelope `json:"envelope"`
}

// RunSummary is the listing view of a stored run, without the envelope.
type RunSummary struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Score     int    `json:"score"`
	CreatedAt int64  `json:"created_at"`
}

// Registry stores analysis runs in a SQLite database.
type Registry struct {
	db     *sql.DB
	logger logging.Logger
}

// Open opens (creating if needed) the database at dbPath, applies pragmas
// and the schema, and returns a ready Registry.
func Open(dbPath string, logger logging.Logger) (*Registry, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if dbPath == "" {
		return nil, errors.New("registry: db path is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure db dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Info("registry initialized", logging.Field{Key: "db_path", Value: dbPath})

	return &Registry{
		db:     db,
		logger: logger.With(logging.Field{Key: "component", Value: "registry"}),
	}, nil
}

// NewWithDB wraps an already-open database, applying the schema. Used by
// tests with in-memory databases.
func NewWithDB(db *sql.DB, logger logging.Logger) (*Registry, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if err := applySchema(db); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Registry{
		db:     db,
		logger: logger.With(logging.Field{Key: "component", Value: "registry"}),
	}, nil
}

func (r *Registry) Close() error { return r.db.Close() }

func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Save stores a successful analysis envelope and returns the run id.
func (r *Registry) Save(ctx context.Context, envelope *app.Envelope) (string, error) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().Unix()
	score := 0
	if envelope.Score != nil {
		score = envelope.Score.Score
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO analyses (id, url, score, created_at, envelope)
         VALUES (?, ?, ?, ?, ?)`,
		id, envelope.URL, score, now, string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}

	r.logger.Debug("analysis saved",
		logging.Field{Key: "id", Value: id},
		logging.Field{Key: "url", Value: envelope.URL},
		logging.Field{Key: "score", Value: score})

	return id, nil
}

// Get returns one stored run by id.
func (r *Registry) Get(ctx context.Context, id string) (*Run, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, url, score, created_at, envelope
         FROM analyses
         WHERE id = ?
         LIMIT 1`,
		id,
	)

	var run Run
	var payload string
	if err := row.Scan(&run.ID, &run.URL, &run.Score, &run.CreatedAt, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRunNotFound
		}
		return nil, err
	}

	var envelope app.Envelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope for run %s: %w", id, err)
	}
	run.Envelope = &envelope
	return &run, nil
}

// ListRecent returns the most recent run summaries, newest first.
func (r *Registry) ListRecent(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, score, created_at
         FROM analyses
         ORDER BY created_at DESC, id
         LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.URL, &s.Score, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
