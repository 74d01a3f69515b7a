package rdftab

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// NewStorePostgres opens a PostgreSQL-backed Store from a standard
// connection string. This is a library-level alternate backend, not
// something the CLI exposes: the CLI's contract is a single positional
// SQLite TARGET.db argument (§6), so Postgres is reached only by callers
// embedding this package directly.
func NewStorePostgres(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("rdftab: failed to open PostgreSQL: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db, dialect: postgresDialect{}, ownsDB: true}
	if _, err := db.Exec(store.dialect.createTableSQL()); err != nil {
		db.Close()
		return nil, fmt.Errorf("rdftab: failed to create statements table: %w", err)
	}
	return store, nil
}

// NewStorePostgresFromDB adapts an existing connection the caller already
// owns (and will close). Useful for tests that spin up an ephemeral
// instance with embedded-postgres.
func NewStorePostgresFromDB(db *sql.DB) (*Store, error) {
	store := &Store{db: db, dialect: postgresDialect{}, ownsDB: false}
	if _, err := db.Exec(store.dialect.createTableSQL()); err != nil {
		return nil, fmt.Errorf("rdftab: failed to create statements table: %w", err)
	}
	return store, nil
}
