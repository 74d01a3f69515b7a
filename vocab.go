package rdftab

// Fixed RDF/OWL namespaces used to recognize the two "statement about a
// statement" overlay idioms and the stanza-boundary sentinel.
const (
	rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	owlNS = "http://www.w3.org/2002/07/owl#"

	// StanzaEndSentinel is the subject IRI that signals a stanza boundary.
	// It is compared against the raw (unshortened) subject IRI and never
	// appears in emitted output.
	StanzaEndSentinel = "http://example.com/stanza-end"
)

// Vocab holds the shortened (CURIE or bracketed-IRI) forms of the fixed
// RDF/OWL vocabulary terms the pipeline needs to recognize, computed once
// through the document's PrefixShortener so that comparisons downstream
// operate on the same normalized tokens as the rows they're compared
// against.
type Vocab struct {
	RDFType      string
	RDFSubject   string
	RDFPredicate string
	RDFObject    string
	RDFStatement string

	OWLAnnotatedSource   string
	OWLAnnotatedProperty string
	OWLAnnotatedTarget   string
	OWLAxiom             string
}

// NewVocab shortens the fixed vocabulary through s, so later comparisons
// against ThinRow/Object predicate strings use the same normalized form.
func NewVocab(s *PrefixShortener) *Vocab {
	return &Vocab{
		RDFType:      s.Shorten(rdfNS + "type"),
		RDFSubject:   s.Shorten(rdfNS + "subject"),
		RDFPredicate: s.Shorten(rdfNS + "predicate"),
		RDFObject:    s.Shorten(rdfNS + "object"),
		RDFStatement: s.Shorten(rdfNS + "Statement"),

		OWLAnnotatedSource:   s.Shorten(owlNS + "annotatedSource"),
		OWLAnnotatedProperty: s.Shorten(owlNS + "annotatedProperty"),
		OWLAnnotatedTarget:   s.Shorten(owlNS + "annotatedTarget"),
		OWLAxiom:             s.Shorten(owlNS + "Axiom"),
	}
}
