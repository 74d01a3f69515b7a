package rdftab

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/piprate/json-gold/ld"
)

// Triple is the flat subject-predicate-object shape the external
// serializer consumes (§4.8). Exactly one of Object/Value is populated,
// mirroring ThinRow's branch.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	Value     string
	Datatype  string
	Language  string
	IsLiteral bool
}

// Reexpand inverts C5-C8: it walks rows and, for every nested-envelope
// object, mints a fresh blank id and recursively re-emits the inlined
// PredicateMap as triples, reconstructing the overlay auxiliary subject for
// any annotations/metadata it carries (C9). Round-trip identity is up to
// blank-node renaming (§8): re-run ids never match the original document's.
func Reexpand(vocab *Vocab, rows []ThickRow) ([]Triple, error) {
	issuer := ld.NewIdentifierIssuer("_:b")
	var mintSeq int
	var out []Triple

	for _, r := range rows {
		if r.Object == "" {
			out = append(out, Triple{
				Subject: r.Subject, Predicate: r.Predicate,
				Value: r.Value, Datatype: r.Datatype, Language: r.Language,
				IsLiteral: true,
			})
			continue
		}

		if !looksLikeEnvelope(r.Object) {
			out = append(out, Triple{Subject: r.Subject, Predicate: r.Predicate, Object: r.Object})
			continue
		}

		obj, err := decodeEnvelope(r.Object)
		if err != nil {
			return nil, fmt.Errorf("rdftab: decoding object envelope for %s %s: %w", r.Subject, r.Predicate, err)
		}

		triples, err := expandObject(vocab, r.Subject, r.Predicate, obj, issuer, &mintSeq)
		if err != nil {
			return nil, err
		}
		out = append(out, triples...)
	}

	return out, nil
}

func looksLikeEnvelope(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "{")
}

func nextBlankID(issuer *ld.IdentifierIssuer, seq *int) string {
	*seq++
	return issuer.GetId(fmt.Sprintf("n%d", *seq))
}

// expandObject re-emits the (subject, predicate, o) triple plus whatever o
// unpacks into: a recursively expanded nested PredicateMap (new blank
// subject) and/or an auxiliary overlay subject for Annotations/Metadata.
func expandObject(vocab *Vocab, subject, predicate string, o *Object, issuer *ld.IdentifierIssuer, seq *int) ([]Triple, error) {
	var out []Triple
	var objTerm string

	switch {
	case o.IsNode() && o.Nested != nil:
		objTerm = nextBlankID(issuer, seq)
		out = append(out, Triple{Subject: subject, Predicate: predicate, Object: objTerm})
		nested, err := expandPredicateMap(vocab, objTerm, o.Nested, issuer, seq)
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)

	case o.IsNode():
		objTerm = o.Node
		out = append(out, Triple{Subject: subject, Predicate: predicate, Object: objTerm})

	default:
		out = append(out, Triple{
			Subject: subject, Predicate: predicate,
			Value: o.Value, Datatype: o.Datatype, Language: o.Language,
			IsLiteral: true,
		})
	}

	if o.Annotations != nil {
		aux, err := expandOverlay(vocab, subject, predicate, o, objTerm, o.Annotations, vocab.OWLAnnotatedSource, vocab.OWLAnnotatedProperty, vocab.OWLAnnotatedTarget, vocab.OWLAxiom, issuer, seq)
		if err != nil {
			return nil, err
		}
		out = append(out, aux...)
	}
	if o.Metadata != nil {
		aux, err := expandOverlay(vocab, subject, predicate, o, objTerm, o.Metadata, vocab.RDFSubject, vocab.RDFPredicate, vocab.RDFObject, vocab.RDFStatement, issuer, seq)
		if err != nil {
			return nil, err
		}
		out = append(out, aux...)
	}

	return out, nil
}

// expandOverlay reconstructs the auxiliary subject C7 collapsed: a fresh
// blank node bearing sourcePred/propPred/targetPred, rdf:type typeValue,
// and extra's predicates (themselves expanded recursively, since an
// annotation's own objects can nest or carry further overlays). For a node
// Object, targetPred points at objTerm, the term the main triple used.
func expandOverlay(vocab *Vocab, subject, predicate string, o *Object, objTerm string, extra *PredicateMap, sourcePred, propPred, targetPred, typeValue string, issuer *ld.IdentifierIssuer, seq *int) ([]Triple, error) {
	aux := nextBlankID(issuer, seq)

	out := []Triple{
		{Subject: aux, Predicate: vocab.RDFType, Object: typeValue},
		{Subject: aux, Predicate: sourcePred, Object: subject},
		{Subject: aux, Predicate: propPred, Object: predicate},
	}

	if o.IsNode() {
		out = append(out, Triple{Subject: aux, Predicate: targetPred, Object: objTerm})
	} else {
		out = append(out, Triple{
			Subject: aux, Predicate: targetPred,
			Value: o.Value, Datatype: o.Datatype, Language: o.Language,
			IsLiteral: true,
		})
	}

	for _, pred := range extra.Keys() {
		for _, extraObj := range extra.Get(pred) {
			ts, err := expandObject(vocab, aux, pred, extraObj, issuer, seq)
			if err != nil {
				return nil, err
			}
			out = append(out, ts...)
		}
	}

	return out, nil
}

func expandPredicateMap(vocab *Vocab, subject string, pm *PredicateMap, issuer *ld.IdentifierIssuer, seq *int) ([]Triple, error) {
	var out []Triple
	for _, pred := range pm.Keys() {
		for _, o := range pm.Get(pred) {
			ts, err := expandObject(vocab, subject, pred, o, issuer, seq)
			if err != nil {
				return nil, err
			}
			out = append(out, ts...)
		}
	}
	return out, nil
}

// decodeEnvelope parses a canonical JSON object envelope (written by
// writeObjectJSON) back into an Object.
func decodeEnvelope(s string) (*Object, error) {
	dec := jsontext.NewDecoder(strings.NewReader(s))
	return decodeObjectJSON(dec)
}

func decodeObjectJSON(dec *jsontext.Decoder) (*Object, error) {
	if _, err := dec.ReadToken(); err != nil { // BeginObject
		return nil, err
	}

	o := &Object{kind: objKindNode}
	haveValue := false

	for {
		kind := dec.PeekKind()
		if kind == '}' {
			if _, err := dec.ReadToken(); err != nil {
				return nil, err
			}
			break
		}

		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := keyTok.String()

		switch key {
		case "annotations":
			pm, err := decodePredicateMapJSON(dec)
			if err != nil {
				return nil, err
			}
			o.Annotations = pm
		case "metadata":
			pm, err := decodePredicateMapJSON(dec)
			if err != nil {
				return nil, err
			}
			o.Metadata = pm
		case "datatype":
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			o.Datatype = tok.String()
		case "language":
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			o.Language = tok.String()
		case "value":
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			o.Value = tok.String()
			haveValue = true
		case "object":
			if dec.PeekKind() == '{' {
				nested, err := decodePredicateMapJSON(dec)
				if err != nil {
					return nil, err
				}
				o.Nested = nested
				o.Node = "" // re-minted by the caller, not recovered from the envelope
			} else {
				tok, err := dec.ReadToken()
				if err != nil {
					return nil, err
				}
				o.Node = tok.String()
			}
		default:
			return nil, fmt.Errorf("rdftab: unexpected envelope key %q", key)
		}
	}

	if haveValue {
		o.kind = objKindLiteral
	}
	return o, nil
}

func decodePredicateMapJSON(dec *jsontext.Decoder) (*PredicateMap, error) {
	if _, err := dec.ReadToken(); err != nil { // BeginObject
		return nil, err
	}

	pm := NewPredicateMap()
	for {
		if dec.PeekKind() == '}' {
			if _, err := dec.ReadToken(); err != nil {
				return nil, err
			}
			break
		}

		keyTok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		pred := keyTok.String()

		if _, err := dec.ReadToken(); err != nil { // BeginArray
			return nil, err
		}
		for dec.PeekKind() != ']' {
			o, err := decodeObjectJSON(dec)
			if err != nil {
				return nil, err
			}
			pm.Insert(pred, o)
		}
		if _, err := dec.ReadToken(); err != nil { // EndArray
			return nil, err
		}
	}

	return pm, nil
}
