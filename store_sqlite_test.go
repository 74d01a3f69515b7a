package rdftab

import "testing"

func TestNewStoreSQLiteCreatesStatementsTable(t *testing.T) {
	store, err := NewStoreSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var name string
	err = store.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='statements'`).Scan(&name)
	if err != nil {
		t.Fatalf("statements table not found: %v", err)
	}
}

func TestStoreInsertBatchAndCommit(t *testing.T) {
	store, err := NewStoreSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Begin(); err != nil {
		t.Fatal(err)
	}
	rows := []ThickRow{
		{Subject: "ex:A", Predicate: "ex:p", Object: "ex:o"},
		{Subject: "ex:A", Predicate: "ex:q", Value: "v", Language: "en", IsLiteral: true},
	}
	if err := store.InsertBatch(rows); err != nil {
		t.Fatal(err)
	}
	if err := store.Commit(); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM statements`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
}

// TestStoreInsertBatchEmptyStringLiteralKeepsExactlyOneColumnNonNull covers
// §6: an explicit empty-string literal must still leave value non-NULL and
// object NULL, not both NULL (IsLiteral is what tells InsertBatch that "",
// here, is the literal's populated branch rather than an absent one).
func TestStoreInsertBatchEmptyStringLiteralKeepsExactlyOneColumnNonNull(t *testing.T) {
	store, err := NewStoreSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Begin(); err != nil {
		t.Fatal(err)
	}
	rows := []ThickRow{{Subject: "ex:A", Predicate: "ex:p", Value: "", IsLiteral: true}}
	if err := store.InsertBatch(rows); err != nil {
		t.Fatal(err)
	}
	if err := store.Commit(); err != nil {
		t.Fatal(err)
	}

	var object, value *string
	if err := store.DB().QueryRow(`SELECT object, value FROM statements`).Scan(&object, &value); err != nil {
		t.Fatal(err)
	}
	if object != nil {
		t.Errorf("expected object to be NULL, got %v", *object)
	}
	if value == nil || *value != "" {
		t.Errorf("expected value to be the non-NULL empty string, got %v", value)
	}
}

func TestStoreRollbackDiscardsBatch(t *testing.T) {
	store, err := NewStoreSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertBatch([]ThickRow{{Subject: "ex:A", Predicate: "ex:p", Object: "ex:o"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Rollback(); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM statements`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected 0 rows after rollback, got %d", count)
	}
}

func TestWithPragmaOverridesDefault(t *testing.T) {
	store, err := NewStoreSQLite(":memory:", WithPragma("synchronous", "FULL"))
	if err != nil {
		t.Fatalf("failed to create store with pragma override: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var mode string
	if err := store.DB().QueryRow(`PRAGMA synchronous`).Scan(&mode); err != nil {
		t.Fatal(err)
	}
	// SQLite reports synchronous as an integer level; FULL is 2.
	if mode != "2" {
		t.Errorf("expected synchronous=FULL (2), got %q", mode)
	}
}
