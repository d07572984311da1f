// ============================================================================
// Monkey - Interpreter Front End
// ============================================================================
//
// Package:     history
// Description: SQLite store for lines entered in the interactive shell
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	mkerror "github.com/msto63/monkey/foundation/core/error"
	mklog "github.com/msto63/monkey/foundation/core/log"
)

// Entry is one line read by the shell
type Entry struct {
	ID          string    `json:"id" yaml:"id"`
	SessionID   string    `json:"session_id" yaml:"session_id"`
	Line        string    `json:"line" yaml:"line"`
	TokenCount  int       `json:"token_count" yaml:"token_count"`
	Diagnostics int       `json:"diagnostics" yaml:"diagnostics"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Session summarizes the lines of one shell run
type Session struct {
	ID      string    `json:"id" yaml:"id"`
	Lines   int       `json:"lines" yaml:"lines"`
	FirstAt time.Time `json:"first_at" yaml:"first_at"`
	LastAt  time.Time `json:"last_at" yaml:"last_at"`
}

// Filter selects entries for List
type Filter struct {
	SessionID string // empty for all sessions
	Limit     int    // last N entries; 0 for all
}

// Store defines the interface for history persistence
type Store interface {
	Add(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, error)
	Sessions(ctx context.Context, limit int) ([]*Session, error)
	Clear(ctx context.Context, sessionID string) (int64, error)
	Close() error
}

// Config holds configuration for the SQLite store
type Config struct {
	Path        string
	BusyTimeout time.Duration
	Logger      *mklog.Logger
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *mklog.Logger
}

// NewSessionID returns a fresh session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens the history database at cfg.Path
func Open(cfg Config) (*SQLiteStore, error) {
	if cfg.Logger == nil {
		cfg.Logger = mklog.GetDefault()
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	if cfg.Path == "" {
		return nil, mkerror.New("history path is required").
			WithCode(mkerror.CodeInvalidInput).
			WithOperation("history.Open")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, storageError(err, "failed to create history directory", "history.Open").
			WithDetail("path", cfg.Path)
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=%d",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, storageError(err, "failed to open history database", "history.Open").
			WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{
		db:     db,
		logger: cfg.Logger.WithField("component", "history"),
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize history schema", "history.Open").
			WithDetail("path", cfg.Path)
	}

	store.logger.Debug("history store opened", mklog.Fields{"path": cfg.Path})
	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		line TEXT NOT NULL,
		token_count INTEGER NOT NULL DEFAULT 0,
		diagnostics INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_session ON entries(session_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add stores an entry. Missing ID and timestamp are filled in.
func (s *SQLiteStore) Add(ctx context.Context, entry *Entry) error {
	if entry.SessionID == "" {
		return mkerror.New("session ID is required").
			WithCode(mkerror.CodeInvalidInput).
			WithOperation("history.Add")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, session_id, line, token_count, diagnostics, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.Line, entry.TokenCount, entry.Diagnostics, entry.CreatedAt)
	if err != nil {
		return storageError(err, "failed to add history entry", "history.Add")
	}

	return nil
}

// List returns entries oldest first. With a limit only the most recent
// entries are returned, still oldest first.
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, session_id, line, token_count, diagnostics, created_at FROM entries`
	var args []interface{}

	if filter.SessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, filter.SessionID)
	}

	if filter.Limit > 0 {
		query += ` ORDER BY seq DESC LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` ORDER BY seq ASC`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to list history", "history.List")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &e.TokenCount, &e.Diagnostics, &e.CreatedAt); err != nil {
			return nil, storageError(err, "failed to scan history entry", "history.List")
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read history", "history.List")
	}

	// Reverse if we used DESC order
	if filter.Limit > 0 {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	return entries, nil
}

// Sessions returns sessions, most recently active first
func (s *SQLiteStore) Sessions(ctx context.Context, limit int) ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, COUNT(*), MIN(seq), MAX(seq)
		FROM entries
		GROUP BY session_id
		ORDER BY MAX(seq) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageError(err, "failed to list sessions", "history.Sessions")
	}

	type span struct {
		session     *Session
		first, last int64
	}
	var spans []span
	for rows.Next() {
		var sp span
		sp.session = &Session{}
		if err := rows.Scan(&sp.session.ID, &sp.session.Lines, &sp.first, &sp.last); err != nil {
			rows.Close()
			return nil, storageError(err, "failed to scan session", "history.Sessions")
		}
		spans = append(spans, sp)
	}
	rows.Close()

	// Timestamps come from the entries themselves; aggregates over
	// DATETIME columns lose the type information the driver needs
	sessions := make([]*Session, 0, len(spans))
	for _, sp := range spans {
		if err := s.db.QueryRowContext(ctx, `SELECT created_at FROM entries WHERE seq = ?`, sp.first).
			Scan(&sp.session.FirstAt); err != nil {
			return nil, storageError(err, "failed to read session start", "history.Sessions")
		}
		if err := s.db.QueryRowContext(ctx, `SELECT created_at FROM entries WHERE seq = ?`, sp.last).
			Scan(&sp.session.LastAt); err != nil {
			return nil, storageError(err, "failed to read session end", "history.Sessions")
		}
		sessions = append(sessions, sp.session)
	}

	return sessions, nil
}

// Clear deletes the entries of one session, or all entries when sessionID
// is empty, and returns the number of deleted entries
func (s *SQLiteStore) Clear(ctx context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		result sql.Result
		err    error
	)
	if sessionID == "" {
		result, err = s.db.ExecContext(ctx, `DELETE FROM entries`)
	} else {
		result, err = s.db.ExecContext(ctx, `DELETE FROM entries WHERE session_id = ?`, sessionID)
	}
	if err != nil {
		return 0, storageError(err, "failed to clear history", "history.Clear")
	}

	n, _ := result.RowsAffected()
	s.logger.Debug("history cleared", mklog.Fields{"session": sessionID, "deleted": n})
	return n, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func storageError(err error, message, operation string) *mkerror.Error {
	return mkerror.Wrap(err, message).
		WithCode(mkerror.CodeStorageError).
		WithOperation(operation)
}
