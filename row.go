package rdftab

import "strings"

// ThinRow is the canonical flat 7-tuple produced by the StanzaAssembler.
// Exactly one of Object/Value is populated on a well-formed row.
type ThinRow struct {
	Stanza    string
	Subject   string
	Predicate string
	Object    string
	Value     string
	Datatype  string
	Language  string

	// IsLiteral disambiguates the Value/Object branch when both happen to
	// be the empty string (an explicit empty-string literal vs. a row
	// with neither populated). Not part of the persisted schema; ThinRows
	// are discarded after Subjectifier consumes them.
	IsLiteral bool
}

// IsBlank reports whether id is a blank-node reference ("_:name").
func IsBlank(id string) bool {
	return strings.HasPrefix(id, "_:")
}

// objKind distinguishes a node reference from a literal triad inside an
// Object, replacing emptiness-sniffing (an empty-string literal value is
// a legitimate value, not a missing one).
type objKind int

const (
	objKindNode objKind = iota
	objKindLiteral
)

// Object is either a node reference (possibly a blank node later inlined
// into a nested PredicateMap) or a literal triad. Annotations/Metadata, if
// set, hold the overlay predicates collapsed onto this Object by the
// OverlayCollapser.
type Object struct {
	kind objKind

	// Node reference form.
	Node   string
	Nested *PredicateMap // non-nil once a blank Node has been inlined

	// Literal triad form.
	Value    string
	Datatype string
	Language string

	Annotations *PredicateMap
	Metadata    *PredicateMap
}

// NewNodeObject builds an Object referencing a node (IRI/CURIE/BlankId).
func NewNodeObject(node string) *Object {
	return &Object{kind: objKindNode, Node: node}
}

// NewLiteralObject builds an Object holding a literal triad.
func NewLiteralObject(value, datatype, language string) *Object {
	return &Object{kind: objKindLiteral, Value: value, Datatype: datatype, Language: language}
}

// IsNode reports whether this Object is a node reference (vs. a literal).
func (o *Object) IsNode() bool { return o.kind == objKindNode }

// PredicateMap is an ordered mapping predicate -> []*Object. Predicate
// insertion order is preserved for iteration; each predicate's object list
// is kept sorted by canonical string form, per §4.4's tie-break rule.
type PredicateMap struct {
	keys   []string
	values map[string][]*Object
}

// NewPredicateMap returns an empty PredicateMap.
func NewPredicateMap() *PredicateMap {
	return &PredicateMap{values: make(map[string][]*Object)}
}

// Insert adds o under predicate, keeping predicate's object list sorted by
// canonical form. An empty predicate must be rejected by the caller
// (Subjectifier) before calling Insert.
func (m *PredicateMap) Insert(predicate string, o *Object) {
	if _, ok := m.values[predicate]; !ok {
		m.keys = append(m.keys, predicate)
	}
	m.values[predicate] = append(m.values[predicate], o)
	sortObjects(m.values[predicate])
}

// Keys returns predicates in first-seen order.
func (m *PredicateMap) Keys() []string { return m.keys }

// Get returns the object list for predicate, or nil.
func (m *PredicateMap) Get(predicate string) []*Object { return m.values[predicate] }

// Delete removes a predicate entirely.
func (m *PredicateMap) Delete(predicate string) {
	delete(m.values, predicate)
	for i, k := range m.keys {
		if k == predicate {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Has reports whether predicate has at least one object.
func (m *PredicateMap) Has(predicate string) bool {
	return len(m.values[predicate]) > 0
}

// ResortAll re-sorts every predicate's object list by canonical form. Call
// after mutating Objects in place (e.g. after BlankInliner attaches a
// Nested PredicateMap), since canonical form — and hence sort position —
// can change underneath an existing pointer.
func (m *PredicateMap) ResortAll() {
	for _, k := range m.keys {
		sortObjects(m.values[k])
	}
}

// Len returns the number of distinct predicates.
func (m *PredicateMap) Len() int { return len(m.keys) }

// SubjectMap is an ordered mapping subject id -> PredicateMap.
type SubjectMap struct {
	keys   []string
	values map[string]*PredicateMap
}

// NewSubjectMap returns an empty SubjectMap.
func NewSubjectMap() *SubjectMap {
	return &SubjectMap{values: make(map[string]*PredicateMap)}
}

// GetOrCreate returns subject's PredicateMap, creating it (and recording
// first-seen order) if absent.
func (s *SubjectMap) GetOrCreate(subject string) *PredicateMap {
	pm, ok := s.values[subject]
	if !ok {
		pm = NewPredicateMap()
		s.values[subject] = pm
		s.keys = append(s.keys, subject)
	}
	return pm
}

// Get returns subject's PredicateMap, or nil if absent.
func (s *SubjectMap) Get(subject string) *PredicateMap { return s.values[subject] }

// Has reports whether subject is present.
func (s *SubjectMap) Has(subject string) bool {
	_, ok := s.values[subject]
	return ok
}

// Delete removes subject.
func (s *SubjectMap) Delete(subject string) {
	delete(s.values, subject)
	for i, k := range s.keys {
		if k == subject {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Keys returns subjects in first-seen order.
func (s *SubjectMap) Keys() []string { return s.keys }

// Len returns the number of distinct subjects.
func (s *SubjectMap) Len() int { return len(s.keys) }
