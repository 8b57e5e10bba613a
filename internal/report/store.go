package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"framefit/internal/config"
	"framefit/internal/engine"
)

// ErrNotFound indicates the requested report does not exist.
var ErrNotFound = errors.New("report not found")

// Record is one saved analysis.
type Record struct {
	ID          string
	Source      string
	ContentType string
	Score       float64
	ExportReady bool
	CreatedAt   time.Time
	Analysis    *engine.Analysis
}

// Store manages report persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the report database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.ReportDir, "reports.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: dbPath,
		lock: flock.New(dbPath + ".lock"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS reports (
        id TEXT PRIMARY KEY,
        source TEXT NOT NULL,
        content_type TEXT NOT NULL,
        quality_score REAL NOT NULL,
        export_ready INTEGER NOT NULL,
        created_at TEXT NOT NULL,
        payload_json TEXT NOT NULL
    )`)
	if err != nil {
		return fmt.Errorf("create reports table: %w", err)
	}
	return nil
}

// Save persists an analysis and returns the stored record.
func (s *Store) Save(ctx context.Context, source string, analysis engine.Analysis) (*Record, error) {
	ctx = ensureContext(ctx)

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}

	record := Record{
		ID:          uuid.NewString(),
		Source:      source,
		ContentType: string(analysis.Classification.ContentType),
		Score:       analysis.Report.Score,
		ExportReady: analysis.Readiness.Ready,
		CreatedAt:   time.Now().UTC(),
		Analysis:    &analysis,
	}

	if err := s.lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire report lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	err = s.execWithoutResultRetry(
		ctx,
		`INSERT INTO reports (
            id, source, content_type, quality_score, export_ready, created_at, payload_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Source,
		record.ContentType,
		record.Score,
		boolToInt(record.ExportReady),
		record.CreatedAt.Format(time.RFC3339Nano),
		string(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return &record, nil
}

// List returns report summaries newest first, without the full payload.
// A non-positive limit returns every record.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	ctx = ensureContext(ctx)

	query := `SELECT id, source, content_type, quality_score, export_ready, created_at
        FROM reports ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows, false)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return records, nil
}

// Get returns a single report including the full analysis payload.
// A unique ID prefix is accepted in place of the full UUID.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	ctx = ensureContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, source, content_type, quality_score, export_ready, created_at, payload_json
            FROM reports WHERE id LIKE ? ORDER BY created_at DESC LIMIT 2`,
		id+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	defer rows.Close()

	var matches []Record
	for rows.Next() {
		record, err := scanRecord(rows, true)
		if err != nil {
			return nil, err
		}
		matches = append(matches, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("report id %q is ambiguous", id)
	}
}

// Clear removes every saved report and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)

	if err := s.lock.Lock(); err != nil {
		return 0, fmt.Errorf("acquire report lock: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	res, err := s.execWithRetry(ctx, "DELETE FROM reports")
	if err != nil {
		return 0, fmt.Errorf("clear reports: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

func scanRecord(rows *sql.Rows, withPayload bool) (Record, error) {
	var (
		record    Record
		ready     int
		createdAt string
		payload   string
	)
	dest := []any{&record.ID, &record.Source, &record.ContentType, &record.Score, &ready, &createdAt}
	if withPayload {
		dest = append(dest, &payload)
	}
	if err := rows.Scan(dest...); err != nil {
		return Record{}, fmt.Errorf("scan report: %w", err)
	}
	record.ExportReady = ready != 0

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	record.CreatedAt = parsed

	if withPayload {
		var analysis engine.Analysis
		if err := json.Unmarshal([]byte(payload), &analysis); err != nil {
			return Record{}, fmt.Errorf("unmarshal analysis payload: %w", err)
		}
		record.Analysis = &analysis
	}
	return record, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) execWithoutResultRetry(ctx context.Context, query string, args ...any) error {
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
}
