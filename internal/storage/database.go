package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DB wraps a database handle together with the driver it was opened with,
// so repositories can adapt placeholders and DDL to the dialect.
type DB struct {
	*sql.DB
	driver string
}

// New opens a database connection using driver and dsn.
// For SQLite, dsn is a file path; foreign keys are enabled.
// For Postgres, dsn is a connection URL.
func New(driver, dsn string) (*DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// Enable foreign keys (disabled by default in SQLite)
		if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &DB{DB: sqlDB, driver: driver}, nil
}

// Driver returns the name of the driver the database was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Rebind rewrites '?' placeholders into the driver's bind syntax.
// Queries must not contain literal question marks.
func (db *DB) Rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ServerInfo is what the database reports about itself.
type ServerInfo struct {
	Version string
	Now     time.Time // the database clock, in UTC
}

// sqliteNowLayout matches strftime('%Y-%m-%dT%H:%M:%fZ', 'now').
const sqliteNowLayout = "2006-01-02T15:04:05.000Z"

// ServerInfo queries the server version and current time in one round trip.
func (db *DB) ServerInfo(ctx context.Context) (ServerInfo, error) {
	var info ServerInfo
	if db.driver == DriverSQLite {
		var now string
		err := db.QueryRowContext(ctx, "SELECT sqlite_version(), strftime('%Y-%m-%dT%H:%M:%fZ', 'now')").Scan(&info.Version, &now)
		if err != nil {
			return ServerInfo{}, fmt.Errorf("failed to query database info: %w", err)
		}
		if info.Now, err = time.Parse(sqliteNowLayout, now); err != nil {
			return ServerInfo{}, fmt.Errorf("failed to parse database time %q: %w", now, err)
		}
		return info, nil
	}

	if err := db.QueryRowContext(ctx, "SELECT version(), NOW()").Scan(&info.Version, &info.Now); err != nil {
		return ServerInfo{}, fmt.Errorf("failed to query database info: %w", err)
	}
	info.Now = info.Now.UTC()
	return info, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *DB) error {
	schema := sqliteSchema
	if db.driver == DriverPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}

	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS faqs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		lang TEXT NOT NULL DEFAULT 'en',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_faqs_lang ON faqs (lang, id);`,
	`CREATE TABLE IF NOT EXISTS faq_generation (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value INTEGER NOT NULL
	);`,
	seedGeneration,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS faqs (
		id BIGSERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		lang VARCHAR(2) NOT NULL DEFAULT 'en',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_faqs_lang ON faqs (lang, id);`,
	`CREATE TABLE IF NOT EXISTS faq_generation (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value BIGINT NOT NULL
	);`,
	seedGeneration,
}

const seedGeneration = `INSERT INTO faq_generation (id, value) VALUES (1, 0) ON CONFLICT (id) DO NOTHING;`
