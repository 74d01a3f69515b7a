package rdftab

import (
	"errors"

	"bitbucket.org/creachadair/stringset"
)

// ErrCycleDetected is returned when the blank-node subgraph is not a DAG:
// a fixed-point pass resolves nothing while unresolved dependencies remain
// (§9 CycleDetected).
var ErrCycleDetected = errors.New("rdftab: cycle detected in blank-node graph")

// InlineBlanks folds sm in place so blank-node references become nested
// PredicateMaps, using the leaves-first worklist from §4.5. deps is the
// initial dependency set Subjectify produced; it is consumed (mutated
// logically, not in place — InlineBlanks tracks its own copy across
// iterations).
func InlineBlanks(sm *SubjectMap, deps map[string]stringset.Set) error {
	for len(deps) > 0 {
		leaves := stringset.New()
		for _, s := range sm.Keys() {
			if _, stuck := deps[s]; !stuck {
				leaves.Add(s)
			}
		}

		newDeps := make(map[string]stringset.Set)
		handled := stringset.New()
		resolved := 0

		for _, s := range sm.Keys() {
			pm := sm.Get(s)
			for _, pred := range pm.Keys() {
				for _, o := range pm.Get(pred) {
					if !o.IsNode() || o.Nested != nil || !IsBlank(o.Node) {
						continue
					}
					b := o.Node

					switch {
					case !sm.Has(b):
						// b is never a subject in the map: an edge case
						// (§4.5), not a dependency — resolves immediately
						// to an empty nested PredicateMap.
						o.Nested = NewPredicateMap()
						resolved++

					case leaves.Contains(b):
						o.Nested = sm.Get(b)
						handled.Add(b)
						resolved++

					default:
						set := newDeps[s]
						if set == nil {
							set = stringset.New()
							newDeps[s] = set
						}
						set.Add(b)
					}
				}
			}
		}

		for b := range handled {
			sm.Delete(b)
		}

		if resolved == 0 && len(newDeps) > 0 {
			return ErrCycleDetected
		}

		deps = newDeps
	}

	for _, s := range sm.Keys() {
		sm.Get(s).ResortAll()
	}
	return nil
}
