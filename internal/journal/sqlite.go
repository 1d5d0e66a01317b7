package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS journal (
    id            TEXT PRIMARY KEY,
    created_at    TIMESTAMP NOT NULL,
    seed_kind     TEXT NOT NULL,
    seed_value    TEXT NOT NULL,
    mass          REAL NOT NULL,
    temperature   REAL NOT NULL,
    lifespan      REAL NOT NULL,
    spectral_type TEXT NOT NULL,
    metallicity   REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_created_at ON journal(created_at);
`

// SQLiteJournal implements the resolution journal on a local SQLite database
// in WAL mode.
type SQLiteJournal struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at dbPath, enables WAL mode and
// busy timeout, and creates the schema if it does not exist.
func Open(ctx context.Context, dbPath string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer; using
	// one connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create schema: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// Append inserts the record, assigning a fresh ID and timestamp when unset,
// and returns the stored record.
func (j *SQLiteJournal) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	const q = `
		INSERT INTO journal (id, created_at, seed_kind, seed_value, mass, temperature, lifespan, spectral_type, metallicity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := j.db.ExecContext(ctx, q,
		rec.ID, rec.CreatedAt.Format(time.RFC3339Nano), rec.SeedKind, rec.SeedValue,
		rec.Mass, rec.Temperature, rec.Lifespan, rec.SpectralType, rec.Metallicity)
	if err != nil {
		return Record{}, fmt.Errorf("journal: append record %s: %w", rec.ID, err)
	}
	return rec, nil
}

// Recent returns up to limit records, newest first. A non-positive limit
// returns nothing.
func (j *SQLiteJournal) Recent(ctx context.Context, limit int) ([]Record, error) {
	const q = `
		SELECT id, created_at, seed_kind, seed_value, mass, temperature, lifespan, spectral_type, metallicity
		FROM journal ORDER BY created_at DESC, id LIMIT ?`
	return j.queryRecords(ctx, q, limit)
}

// ByKind returns up to limit records resolved from the given seed kind,
// newest first.
func (j *SQLiteJournal) ByKind(ctx context.Context, kind string, limit int) ([]Record, error) {
	const q = `
		SELECT id, created_at, seed_kind, seed_value, mass, temperature, lifespan, spectral_type, metallicity
		FROM journal WHERE seed_kind = ? ORDER BY created_at DESC, id LIMIT ?`
	return j.queryRecords(ctx, q, kind, limit)
}

// Clear deletes every record.
func (j *SQLiteJournal) Clear(ctx context.Context) error {
	if _, err := j.db.ExecContext(ctx, "DELETE FROM journal"); err != nil {
		return fmt.Errorf("journal: clear: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

func (j *SQLiteJournal) queryRecords(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: query records: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(&rec.ID, &created, &rec.SeedKind, &rec.SeedValue,
			&rec.Mass, &rec.Temperature, &rec.Lifespan, &rec.SpectralType, &rec.Metallicity); err != nil {
			return nil, fmt.Errorf("journal: scan record: %w", err)
		}
		rec.CreatedAt, err = parseTimestamp(created)
		if err != nil {
			return nil, fmt.Errorf("journal: record %s: %w", rec.ID, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate records: %w", err)
	}
	return recs, nil
}

// parseTimestamp reads the formats SQLite may hand back: our RFC 3339 inserts
// plus the plain datetime form older rows could carry.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{time.RFC3339Nano, time.RFC3339, time.DateTime}
	for _, f := range formats {
		if ts, err := time.Parse(f, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
