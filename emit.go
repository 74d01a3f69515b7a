package rdftab

import "sort"

// ThickRow is the one-row-per-top-level-statement record persisted to the
// `statements` table (§6). Exactly one of Object/Value is populated;
// IsLiteral says which, since a literal's Value may be the empty string.
type ThickRow struct {
	Subject   string
	Predicate string
	Object    string // node string, or canonical JSON envelope for a nested/annotated Object
	Value     string
	Datatype  string
	Language  string

	// IsLiteral marks a row whose Value column (not Object) is the
	// populated branch, so Store can tell an explicit empty-string
	// literal apart from "no value" instead of sniffing Value == "".
	IsLiteral bool
}

// EmitThick walks sm (after BlankInliner and OverlayCollapser have run) and
// produces one ThickRow per (subject, predicate, Object) triple (C8).
// Subjects and predicates are emitted in lexicographic order (not sm/pm's
// first-seen order) so that two inputs differing only in triple order
// produce byte-identical output, per §8; each predicate's objects are
// already canonically sorted.
func EmitThick(sm *SubjectMap) ([]ThickRow, error) {
	var rows []ThickRow

	subjects := append([]string(nil), sm.Keys()...)
	sort.Strings(subjects)

	for _, subj := range subjects {
		pm := sm.Get(subj)
		predicates := append([]string(nil), pm.Keys()...)
		sort.Strings(predicates)

		for _, pred := range predicates {
			for _, o := range pm.Get(pred) {
				row, err := emitRow(subj, pred, o)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row)
			}
		}
	}

	return rows, nil
}

func emitRow(subject, predicate string, o *Object) (ThickRow, error) {
	row := ThickRow{Subject: subject, Predicate: predicate}

	needsEnvelope := o.Nested != nil || o.Annotations != nil || o.Metadata != nil

	switch {
	case o.IsNode() && needsEnvelope:
		envelope, err := canonicalObjectJSON(o)
		if err != nil {
			return ThickRow{}, err
		}
		row.Object = envelope

	case o.IsNode():
		row.Object = o.Node

	case needsEnvelope:
		envelope, err := canonicalObjectJSON(o)
		if err != nil {
			return ThickRow{}, err
		}
		row.Object = envelope

	default:
		row.Value = o.Value
		row.Datatype = o.Datatype
		row.Language = o.Language
		row.IsLiteral = true
	}

	return row, nil
}
