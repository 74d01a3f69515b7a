package rdftab

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver
)

// config holds PRAGMA overrides for a SQLite-backed Store.
type config struct {
	pragmas map[string]string
}

// StoreOption configures a SQLite-backed Store.
type StoreOption func(*config)

// WithPragma sets a specific SQLite PRAGMA, overriding any default for that
// key. For example: WithPragma("synchronous", "NORMAL").
func WithPragma(key, value string) StoreOption {
	return func(c *config) {
		if c.pragmas == nil {
			c.pragmas = make(map[string]string)
		}
		c.pragmas[key] = value
	}
}

// defaultConfig favors a single bulk-loading writer over concurrent
// readers, matching how the CLI actually drives a Store: one process,
// one transaction, one commit at the end of the run.
func defaultConfig() *config {
	return &config{
		pragmas: map[string]string{
			"journal_mode": "WAL",
			"synchronous":  "OFF",
			"cache_size":   "-64000",
			"temp_store":   "MEMORY",
			"foreign_keys": "OFF",
		},
	}
}

// NewStoreSQLite opens (creating if absent) a SQLite database at dbPath and
// ensures the `statements` table exists. dbPath is the CLI's positional
// TARGET.db argument.
func NewStoreSQLite(dbPath string, opts ...StoreOption) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("rdftab: failed to open SQLite database %q: %w", dbPath, err)
	}

	db.SetMaxOpenConns(1) // single-threaded, strictly sequential ingestion (§5)

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	keys := make([]string, 0, len(cfg.pragmas))
	for k := range cfg.pragmas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		stmt := fmt.Sprintf("PRAGMA %s=%s", key, cfg.pragmas[key])
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("rdftab: failed to set pragma %q: %w", stmt, err)
		}
	}

	store := &Store{db: db, dialect: sqliteDialect{}, ownsDB: true}
	if _, err := db.Exec(store.dialect.createTableSQL()); err != nil {
		db.Close()
		return nil, fmt.Errorf("rdftab: failed to create statements table: %w", err)
	}

	return store, nil
}
