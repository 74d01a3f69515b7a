package rdftab

import (
	"io"
	"strings"
	"testing"
)

const ingestFixtureXML = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:ex="http://example.com/">
  <rdf:Description rdf:about="http://example.com/X">
    <ex:has rdf:nodeID="b1"/>
  </rdf:Description>
  <rdf:Description rdf:nodeID="b1">
    <ex:p>v</ex:p>
  </rdf:Description>
  <rdf:Description rdf:about="http://example.com/stanza-end">
    <ex:end>true</ex:end>
  </rdf:Description>
</rdf:RDF>
`

func newIngestTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStoreSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.DB().Exec(`CREATE TABLE prefix (prefix TEXT, base TEXT)`); err != nil {
		t.Fatalf("failed to create prefix table: %v", err)
	}
	if _, err := store.DB().Exec(`INSERT INTO prefix (prefix, base) VALUES ('ex', 'http://example.com/')`); err != nil {
		t.Fatalf("failed to populate prefix table: %v", err)
	}
	return store
}

func TestIngestInlinesBlankAcrossStanzaBoundary(t *testing.T) {
	store := newIngestTestStore(t)

	if err := Ingest(strings.NewReader(ingestFixtureXML), store, false, io.Discard); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	rows, err := store.DB().Query(`SELECT subject, predicate, object FROM statements`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		var subject, predicate, object string
		if err := rows.Scan(&subject, &predicate, &object); err != nil {
			t.Fatal(err)
		}
		count++
		if subject != "ex:X" || predicate != "ex:has" {
			t.Errorf("unexpected row: subject=%q predicate=%q object=%q", subject, predicate, object)
			continue
		}
		if want := `{"object":{"ex:p":[{"value":"v"}]}}`; object != want {
			t.Errorf("object = %q, want %q", object, want)
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("expected 1 statements row (the sentinel and blank must not surface), got %d", count)
	}
}

func TestIngestRoundTripWritesTriples(t *testing.T) {
	store := newIngestTestStore(t)

	var out strings.Builder
	if err := Ingest(strings.NewReader(ingestFixtureXML), store, true, &out); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "@prefix ex: <http://example.com/> .") {
		t.Errorf("expected a prefix directive, got:\n%s", got)
	}
	if !strings.Contains(got, "ex:X ex:has _:") {
		t.Errorf("expected the outer triple reconstructed with a fresh blank id, got:\n%s", got)
	}
	if !strings.Contains(got, `ex:p """v""" .`) {
		t.Errorf("expected the inlined triple reconstructed, got:\n%s", got)
	}
}

func TestIngestRollsBackOnParseFailure(t *testing.T) {
	store := newIngestTestStore(t)

	err := Ingest(strings.NewReader("not valid rdf/xml"), store, false, io.Discard)
	if err == nil {
		t.Fatal("expected a parse failure")
	}

	var count int
	if err := store.DB().QueryRow(`SELECT COUNT(*) FROM statements`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected no rows committed after a parse failure, got %d", count)
	}
}
