package rdftab

import (
	"fmt"
	"io"
)

// Ingest drives the whole pipeline (C1-C8, plus C9 when roundTrip is set)
// over r, an RDF/XML document, writing the result into store. It is the
// single entry point cmd/rdftab wires up to STDIN/the CLI flags.
//
// Execution is single-threaded and strictly sequential (§5): the only
// suspension point is TripleIntake's callback, driven by the external
// parser. Any failure during ingestion aborts the run and rolls back the
// whole transaction. Round-trip output is produced after the commit, so a
// failure there returns an error but leaves the inserted rows in place.
func Ingest(r io.Reader, store *Store, roundTrip bool, out io.Writer) error {
	prefixes, err := LoadPrefixes(store.DB())
	if err != nil {
		return err
	}
	shortener := NewPrefixShortener(prefixes)
	vocab := NewVocab(shortener)

	if err := store.Begin(); err != nil {
		return err
	}

	var allThick []ThickRow

	processStanza := func(rows []ThinRow) error {
		sm, deps := Subjectify(rows)
		if err := InlineBlanks(sm, deps); err != nil {
			return err
		}
		CollapseOverlays(vocab, sm)

		thick, err := EmitThick(sm)
		if err != nil {
			return fmt.Errorf("rdftab: failed to emit thick rows: %w", err)
		}
		if err := store.InsertBatch(thick); err != nil {
			return err
		}
		if roundTrip {
			allThick = append(allThick, thick...)
		}
		return nil
	}

	assembler := NewStanzaAssembler(vocab, processStanza)
	intake := NewTripleIntake(shortener, func(row partialRow) error {
		assembler.Add(row)
		return nil
	})

	runErr := intake.Run(r, assembler.Flush)
	if runErr == nil {
		runErr = assembler.Flush() // trailing stanza, no closing sentinel
	}
	if runErr != nil {
		store.Rollback()
		return runErr
	}

	if err := store.Commit(); err != nil {
		return err
	}

	if roundTrip {
		triples, err := Reexpand(vocab, allThick)
		if err != nil {
			return err
		}
		if err := WriteTriples(out, shortener, triples); err != nil {
			return fmt.Errorf("rdftab: failed to write round-trip output: %w", err)
		}
	}

	return nil
}
