package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a record does not exist. Provider
// error codes (sql.ErrNoRows) are translated at the store boundary so callers
// never branch on driver-specific errors.
var ErrNotFound = errors.New("record not found")

// SQLDB is the database interface used by all stores.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// migrations is the ordered list of schema migrations. Version N is
// migrations[N-1]. Append only; never edit an applied migration.
var migrations = []string{
	// 1: initial schema
	`
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		display_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS school (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		name TEXT NOT NULL,
		centre_number TEXT,
		email TEXT,
		office_contact TEXT NOT NULL,
		region TEXT NOT NULL,
		district TEXT NOT NULL,
		badge_ref TEXT,
		admin_name TEXT NOT NULL,
		admin_nin TEXT,
		admin_contact TEXT NOT NULL,
		admin_email TEXT NOT NULL,
		admin_role TEXT NOT NULL,
		admin_education TEXT NOT NULL,
		photo_ref TEXT,
		status TEXT NOT NULL DEFAULT 'under_review',
		created_at TEXT NOT NULL,
		FOREIGN KEY (account_id) REFERENCES account(id)
	);

	CREATE TABLE IF NOT EXISTS player (
		id TEXT PRIMARY KEY,
		school_id TEXT NOT NULL,
		name TEXT NOT NULL,
		date_of_birth TEXT NOT NULL,
		age INTEGER NOT NULL,
		sex TEXT NOT NULL,
		class TEXT NOT NULL,
		learner_id TEXT NOT NULL,
		guardian_contact TEXT,
		photo_ref TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (school_id) REFERENCES school(id)
	);
	`,
	// 2: owner lookup index
	`
	CREATE INDEX IF NOT EXISTS idx_school_account_id ON school(account_id);
	CREATE INDEX IF NOT EXISTS idx_player_school_id ON player(school_id);
	`,
}

// LatestSchemaVersion returns the highest migration version this build knows.
func LatestSchemaVersion() int {
	return len(migrations)
}

// SchemaVersion returns the schema version currently recorded in the database.
// PRE: db is a valid connection
// POST: Returns 0 for a fresh database
func SchemaVersion(db SQLDB) (int, error) {
	if _, err := db.ExecContext(context.Background(),
		"CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)"); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}
	var version int
	err := db.QueryRowContext(context.Background(),
		"SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// MigrateDB applies any pending migrations in order.
// PRE: db is a valid database connection
// POST: Schema is at LatestSchemaVersion(); idempotent across restarts
func MigrateDB(db *sql.DB, dbPath string) error {
	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	for v := current + 1; v <= len(migrations); v++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d: begin failed: %w", v, err)
		}
		if _, err := tx.Exec(migrations[v-1]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed on %s: %w", v, dbPath, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d: version record failed: %w", v, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d: commit failed: %w", v, err)
		}
	}
	return nil
}
