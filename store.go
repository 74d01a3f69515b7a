package rdftab

import (
	"database/sql"
	"fmt"
)

// Store owns the SQL connection the ingestion routine writes to. All writes
// happen inside a single transaction spanning the whole run (§5): a crash
// mid-run leaves no partially inserted stanza visible, and the prepared
// insert statement is cached for the transaction's lifetime.
type Store struct {
	db      *sql.DB
	dialect dialect
	ownsDB  bool

	tx         *sql.Tx
	insertStmt *sql.Stmt
}

// Begin opens the run's single transaction and prepares the insert
// statement against it. Call once before the first InsertBatch.
func (s *Store) Begin() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("rdftab: failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(s.dialect.insertSQL())
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("rdftab: failed to prepare insert statement: %w", err)
	}
	s.tx = tx
	s.insertStmt = stmt
	return nil
}

// InsertBatch inserts one stanza's worth of ThickRows (StoreFailure per §7
// aborts the caller's run; the transaction is rolled back there, not here).
func (s *Store) InsertBatch(rows []ThickRow) error {
	for _, r := range rows {
		var value any = nullable(r.Value)
		if r.IsLiteral {
			// The literal branch is populated even when the value is the
			// empty string; only the object column should be NULL here.
			value = r.Value
		}
		if _, err := s.insertStmt.Exec(
			nullable(r.Subject), nullable(r.Predicate), nullable(r.Object),
			value, nullable(r.Datatype), nullable(r.Language),
		); err != nil {
			return fmt.Errorf("rdftab: failed to insert statement row: %w", err)
		}
	}
	return nil
}

// Commit finalizes the run's transaction.
func (s *Store) Commit() error {
	if err := s.insertStmt.Close(); err != nil {
		return err
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("rdftab: failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the run's transaction, discarding every stanza inserted
// so far. Called on ParseFailure/StoreFailure/CycleDetected (§7).
func (s *Store) Rollback() error {
	s.insertStmt.Close()
	return s.tx.Rollback()
}

// Close releases the underlying connection, if this Store owns it.
func (s *Store) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying connection, e.g. for LoadPrefixes.
func (s *Store) DB() *sql.DB { return s.db }

// nullable turns an empty string into a SQL NULL, matching §6's "exactly
// one of object/value is non-NULL" and "datatype/language only present
// with value" column rules.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
