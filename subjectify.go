package rdftab

import (
	"log"

	"bitbucket.org/creachadair/stringset"
)

// Subjectify groups a stanza's ThinRows into a SubjectMap and the initial
// blank-node dependency set BlankInliner's worklist starts from (C5).
//
// MalformedRow (neither object nor value populated) and EmptyPredicate
// rows are dropped with a warning, per §7.
func Subjectify(rows []ThinRow) (*SubjectMap, map[string]stringset.Set) {
	sm := NewSubjectMap()
	deps := make(map[string]stringset.Set)

	for _, r := range rows {
		if r.Predicate == "" {
			log.Printf("rdftab: dropping row with empty predicate (subject=%s)", r.Subject)
			continue
		}

		var obj *Object
		switch {
		case r.Object != "":
			obj = NewNodeObject(r.Object)
		case r.IsLiteral:
			obj = NewLiteralObject(r.Value, r.Datatype, r.Language)
		default:
			log.Printf("rdftab: dropping row with neither object nor value (subject=%s predicate=%s)", r.Subject, r.Predicate)
			continue
		}

		pm := sm.GetOrCreate(r.Subject)
		pm.Insert(r.Predicate, obj)

		if obj.IsNode() && IsBlank(obj.Node) {
			set := deps[r.Subject]
			if set == nil {
				set = stringset.New()
				deps[r.Subject] = set
			}
			set.Add(obj.Node)
		}
	}

	return sm, deps
}
