package rdftab

import (
	"fmt"
	"io"

	"github.com/knakk/rdf"
)

// xsdStringIRI is the datatype knakk/rdf assigns to every untyped literal
// (RDF 1.1: a plain literal's datatype defaults to xsd:string). It carries
// no information a plain literal row didn't already have, so it is treated
// as "no datatype" rather than stamped onto every literal row.
const xsdStringIRI = "http://www.w3.org/2001/XMLSchema#string"

// TripleIntake pulls triples from the external streaming RDF/XML decoder
// and hands normalized 6-tuples to a sink (C2). Normalization — IRI/CURIE
// shortening, blank-id formatting, literal triad extraction — happens
// here, once, so every downstream component works with already-normalized
// strings.
type TripleIntake struct {
	shortener *PrefixShortener
	sink      func(row partialRow) error
}

// partialRow is a subject/predicate/object/value/datatype/language tuple
// before stanza assignment; it becomes a ThinRow once StanzaAssembler
// stamps it with a stanza id.
type partialRow struct {
	Subject         string
	Predicate       string
	Object          string
	Value           string
	Datatype        string
	Language        string
	rawSubjectIRI   string // "" if Subject is blank
	rawPredicateIRI string
	rawObjectIRI    string // "" if Object is blank or this row is a literal
	isLiteral       bool   // true if Value/Datatype/Language (not Object) is the populated branch
}

// NewTripleIntake builds a TripleIntake that shortens terms through
// shortener and forwards normalized rows to sink.
func NewTripleIntake(shortener *PrefixShortener, sink func(row partialRow) error) *TripleIntake {
	return &TripleIntake{shortener: shortener, sink: sink}
}

// Run streams triples out of r (an RDF/XML document) until EOF, calling
// onSentinel whenever the stanza-boundary sentinel subject is seen and
// sink for every other triple. A parser error aborts the run (ParseFailure
// per §7).
func (ti *TripleIntake) Run(r io.Reader, onSentinel func() error) error {
	dec := rdf.NewTripleDecoder(r, rdf.FormatRDFXML)
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to parse RDF/XML: %w", err)
		}

		if rawSubjectIRI(t.Subj) == StanzaEndSentinel {
			if err := onSentinel(); err != nil {
				return err
			}
			continue
		}

		row, err := ti.normalize(t)
		if err != nil {
			return err
		}
		if err := ti.sink(row); err != nil {
			return err
		}
	}
}

func (ti *TripleIntake) normalize(t rdf.Triple) (partialRow, error) {
	var row partialRow

	switch s := t.Subj.(type) {
	case *rdf.Blank:
		row.Subject = "_:" + s.ID
	case *rdf.URI:
		row.rawSubjectIRI = s.URI
		row.Subject = ti.shortener.Shorten(s.URI)
	default:
		return partialRow{}, fmt.Errorf("unsupported subject term %T", t.Subj)
	}

	pred, ok := t.Pred.(*rdf.URI)
	if !ok {
		return partialRow{}, fmt.Errorf("unsupported predicate term %T", t.Pred)
	}
	row.rawPredicateIRI = pred.URI
	row.Predicate = ti.shortener.Shorten(pred.URI)

	switch o := t.Obj.(type) {
	case *rdf.Blank:
		row.Object = "_:" + o.ID
	case *rdf.URI:
		row.rawObjectIRI = o.URI
		row.Object = ti.shortener.Shorten(o.URI)
	case *rdf.Literal:
		row.isLiteral = true
		row.Value = fmt.Sprintf("%v", o.Value)
		row.Language = o.Lang
		if o.Lang == "" && o.DataType != nil && o.DataType.URI != xsdStringIRI {
			row.Datatype = ti.shortener.Shorten(o.DataType.URI)
		}
	default:
		return partialRow{}, fmt.Errorf("unsupported object term %T", t.Obj)
	}

	return row, nil
}

func rawSubjectIRI(t rdf.Term) string {
	if u, ok := t.(*rdf.URI); ok {
		return u.URI
	}
	return ""
}
