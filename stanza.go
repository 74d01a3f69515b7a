package rdftab

// StanzaAssembler buffers incoming rows until a stanza boundary and stamps
// them with the stanza's root subject (C3).
//
// The id heuristic intentionally conflates "root subject" with "overlay
// target": a named subject always wins, but if none has appeared yet, an
// owl:annotatedSource/rdf:subject object stands in. This lets an
// annotation-only stanza (a blank axiom/statement subject with no named
// subject of its own) group under the subject it annotates. It produces
// surprising ids when a stanza has more than one named descendant — that
// surprise is preserved rather than redesigned away (§9).
type StanzaAssembler struct {
	vocab *Vocab
	emit  func([]ThinRow) error

	buffer   []partialRow
	stanzaID string
}

// NewStanzaAssembler builds an assembler that stamps rows using vocab's
// shortened overlay predicates and hands each completed stanza to emit.
func NewStanzaAssembler(vocab *Vocab, emit func([]ThinRow) error) *StanzaAssembler {
	return &StanzaAssembler{vocab: vocab, emit: emit}
}

// Add buffers row and updates the stanza id if this row qualifies.
func (a *StanzaAssembler) Add(row partialRow) {
	a.buffer = append(a.buffer, row)

	if row.rawSubjectIRI != "" {
		// Last named subject wins.
		a.stanzaID = row.Subject
		return
	}
	if a.stanzaID == "" && row.rawObjectIRI != "" &&
		(row.Predicate == a.vocab.OWLAnnotatedSource || row.Predicate == a.vocab.RDFSubject) {
		a.stanzaID = row.Object
	}
}

// Flush stamps and emits the buffered rows as one stanza, then resets.
// A stanza with zero buffered rows is dropped silently.
func (a *StanzaAssembler) Flush() error {
	defer a.reset()

	if len(a.buffer) == 0 {
		return nil
	}

	stanza := a.stanzaID
	if stanza == "" {
		// Best-effort id: the first row's predicate. Preserves the
		// original tool's fallback rather than leaving the column empty.
		stanza = a.buffer[0].Predicate
	}

	rows := make([]ThinRow, len(a.buffer))
	for i, r := range a.buffer {
		rows[i] = ThinRow{
			Stanza:    stanza,
			Subject:   r.Subject,
			Predicate: r.Predicate,
			Object:    r.Object,
			Value:     r.Value,
			Datatype:  r.Datatype,
			Language:  r.Language,
			IsLiteral: r.isLiteral,
		}
	}
	return a.emit(rows)
}

func (a *StanzaAssembler) reset() {
	a.buffer = a.buffer[:0]
	a.stanzaID = ""
}
