package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// memoryPath opens a private in-memory database. SQLite keeps those in
// journal mode "memory" whatever WAL is asked for.
const memoryPath = ":memory:"

// setting is a connection pragma and the value SQLite reports once it holds.
type setting struct {
	name   string
	value  string
	report string
}

var settings = []setting{
	{name: "journal_mode", value: "WAL", report: "wal"},
	{name: "synchronous", value: "NORMAL", report: "1"},
	{name: "busy_timeout", value: "5000", report: "5000"},
	{name: "foreign_keys", value: "ON", report: "1"},
}

// migration upgrades a run store from version-1 to version.
type migration struct {
	version int
	name    string
	stmt    string
}

var migrations = []migration{
	{
		version: 1,
		name:    "outcome counts per run",
		stmt:    `CREATE INDEX IF NOT EXISTS idx_resolutions_outcome ON resolutions(run_id, outcome)`,
	},
	{
		version: 2,
		name:    "resolutions by chain",
		stmt:    `CREATE INDEX IF NOT EXISTS idx_resolutions_chain ON resolutions(chain_id) WHERE chain_id IS NOT NULL`,
	},
}

// schemaVersion is the user_version of a fully migrated run store.
var schemaVersion = migrations[len(migrations)-1].version

// Store holds engine runs and the chains they resolved.
type Store struct {
	db *sql.DB
}

// Open creates or reopens the run store at path and brings its schema up
// to date. Pass ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("svlinks store: open %s: %w", path, err)
	}

	// A single connection; an in-memory store would otherwise be one
	// database per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.init(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("svlinks store: %s: %w", path, err)
	}

	return s, nil
}

func (s *Store) init(path string) error {
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	for _, p := range settings {
		if _, err := s.db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			return fmt.Errorf("pragma %s: %w", p.name, err)
		}

		want := p.report
		if path == memoryPath && p.name == "journal_mode" {
			want = "memory"
		}
		if err := s.checkPragma(p.name, want); err != nil {
			return err
		}
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	return s.migrate()
}

// migrate applies every migration newer than the stored user_version, each
// in its own transaction with the version bump.
func (s *Store) migrate() error {
	current, err := s.Version()
	if err != nil {
		return err
	}
	if current > schemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", current, schemaVersion)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(m.stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): set version: %w", m.version, m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}

	return nil
}

// Version returns the schema version recorded in the database.
func (s *Store) Version() (int, error) {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func (s *Store) checkPragma(name, want string) error {
	var got string
	if err := s.db.QueryRow("PRAGMA " + name).Scan(&got); err != nil {
		return fmt.Errorf("read pragma %s: %w", name, err)
	}
	if got != want {
		return fmt.Errorf("pragma %s = %q, want %q", name, got, want)
	}
	return nil
}

// Close releases the database. Closing a zero Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
