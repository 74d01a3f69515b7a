package rdftab

import (
	"sort"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// canonicalObjectJSON renders o as a canonical JSON string: keys
// lexicographically ordered, no superfluous whitespace. This is both the
// sort key used for total ordering of object lists (§9) and the literal
// text stored in the `object` DB column whenever a row needs the nested
// envelope (ThickEmitter, §4.7).
//
// Key order, already alphabetical: annotations, datatype, language,
// metadata, object, value.
func canonicalObjectJSON(o *Object) (string, error) {
	var buf strings.Builder
	enc := jsontext.NewEncoder(&buf)
	if err := writeObjectJSON(enc, o); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func writeObjectJSON(enc *jsontext.Encoder, o *Object) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}

	if o.Annotations != nil {
		if err := writeKey(enc, "annotations"); err != nil {
			return err
		}
		if err := writePredicateMapJSON(enc, o.Annotations); err != nil {
			return err
		}
	}
	if o.kind == objKindLiteral && o.Datatype != "" {
		if err := writeKey(enc, "datatype"); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(o.Datatype)); err != nil {
			return err
		}
	}
	if o.kind == objKindLiteral && o.Language != "" {
		if err := writeKey(enc, "language"); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(o.Language)); err != nil {
			return err
		}
	}
	if o.Metadata != nil {
		if err := writeKey(enc, "metadata"); err != nil {
			return err
		}
		if err := writePredicateMapJSON(enc, o.Metadata); err != nil {
			return err
		}
	}
	if o.kind == objKindNode {
		if err := writeKey(enc, "object"); err != nil {
			return err
		}
		if o.Nested != nil {
			if err := writePredicateMapJSON(enc, o.Nested); err != nil {
				return err
			}
		} else {
			if err := enc.WriteToken(jsontext.String(o.Node)); err != nil {
				return err
			}
		}
	}
	if o.kind == objKindLiteral {
		if err := writeKey(enc, "value"); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(o.Value)); err != nil {
			return err
		}
	}

	return enc.WriteToken(jsontext.EndObject)
}

// writePredicateMapJSON renders m as `{"pred":[obj,obj,...],...}` with
// predicate keys sorted lexicographically (the canonical order; m's own
// first-seen Keys() order is for processing, not for the wire form).
func writePredicateMapJSON(enc *jsontext.Encoder, m *PredicateMap) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}

	keys := append([]string(nil), m.Keys()...)
	sort.Strings(keys)

	for _, k := range keys {
		if err := writeKey(enc, k); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		objs := append([]*Object(nil), m.Get(k)...)
		sortObjects(objs)
		for _, o := range objs {
			if err := writeObjectJSON(enc, o); err != nil {
				return err
			}
		}
		if err := enc.WriteToken(jsontext.EndArray); err != nil {
			return err
		}
	}

	return enc.WriteToken(jsontext.EndObject)
}

func writeKey(enc *jsontext.Encoder, key string) error {
	return enc.WriteToken(jsontext.String(key))
}

// sortObjects orders objs by canonical JSON form, the total order §4.4 and
// §9 require for deterministic output. A canonicalization failure (should
// not happen for well-formed Objects) sorts that element last.
func sortObjects(objs []*Object) {
	keys := make([]string, len(objs))
	for i, o := range objs {
		k, err := canonicalObjectJSON(o)
		if err != nil {
			k = "￿" + err.Error()
		}
		keys[i] = k
	}
	sort.Sort(&objectsByCanonicalKey{objs: objs, keys: keys})
}

type objectsByCanonicalKey struct {
	objs []*Object
	keys []string
}

func (s *objectsByCanonicalKey) Len() int { return len(s.objs) }
func (s *objectsByCanonicalKey) Less(i, j int) bool { return s.keys[i] < s.keys[j] }
func (s *objectsByCanonicalKey) Swap(i, j int) {
	s.objs[i], s.objs[j] = s.objs[j], s.objs[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
