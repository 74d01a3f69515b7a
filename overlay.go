package rdftab

// CollapseOverlays detects OWL-annotation and RDF-reification subjects in sm
// and attaches their extra predicates as annotations/metadata on the Object
// they describe (C7). Matching is independent per idiom; removal of matched
// overlay subjects happens only after both passes, so a subject carrying
// both forms (or cross-referencing another overlay subject) is never
// removed out from under the other pass.
func CollapseOverlays(vocab *Vocab, sm *SubjectMap) {
	toRemove := make(map[string]bool)

	collapseOverlayKind(sm, toRemove, overlayKind{
		typePred:   vocab.RDFType,
		sourcePred: vocab.OWLAnnotatedSource,
		propPred:   vocab.OWLAnnotatedProperty,
		targetPred: vocab.OWLAnnotatedTarget,
		typeValue:  vocab.OWLAxiom,
		attr:       overlayAttrAnnotations,
	})
	collapseOverlayKind(sm, toRemove, overlayKind{
		typePred:   vocab.RDFType,
		sourcePred: vocab.RDFSubject,
		propPred:   vocab.RDFPredicate,
		targetPred: vocab.RDFObject,
		typeValue:  vocab.RDFStatement,
		attr:       overlayAttrMetadata,
	})

	for subj := range toRemove {
		sm.Delete(subj)
	}
}

type overlayAttr int

const (
	overlayAttrAnnotations overlayAttr = iota
	overlayAttrMetadata
)

type overlayKind struct {
	typePred, sourcePred, propPred, targetPred, typeValue string
	attr                                                  overlayAttr
}

func collapseOverlayKind(sm *SubjectMap, toRemove map[string]bool, k overlayKind) {
	for _, a := range sm.Keys() {
		pm := sm.Get(a)

		if !isOverlaySubject(pm, k) {
			continue
		}

		s := soleNodeValue(pm, k.sourcePred)
		p := soleNodeValue(pm, k.propPred)
		o := soleObject(pm, k.targetPred)
		if s == "" || p == "" || o == nil {
			continue
		}

		targetPM := sm.Get(s)
		if targetPM == nil {
			continue // OverlayOrphan: leave a intact
		}
		target := findMatchingObject(targetPM, p, o)
		if target == nil {
			continue // OverlayOrphan: leave a intact
		}

		extra := NewPredicateMap()
		for _, pred := range pm.Keys() {
			if pred == k.sourcePred || pred == k.propPred || pred == k.targetPred || pred == k.typePred {
				continue
			}
			for _, obj := range pm.Get(pred) {
				extra.Insert(pred, obj)
			}
		}

		switch k.attr {
		case overlayAttrAnnotations:
			target.Annotations = extra
		case overlayAttrMetadata:
			target.Metadata = extra
		}
		// The attached overlay changes target's canonical form.
		targetPM.ResortAll()

		toRemove[a] = true
	}
}

// isOverlaySubject reports whether pm carries rdf:type k.typeValue alongside
// the three overlay predicates this idiom requires.
func isOverlaySubject(pm *PredicateMap, k overlayKind) bool {
	if !pm.Has(k.sourcePred) || !pm.Has(k.propPred) || !pm.Has(k.targetPred) {
		return false
	}
	for _, o := range pm.Get(k.typePred) {
		if o.IsNode() && o.Node == k.typeValue {
			return true
		}
	}
	return false
}

func soleNodeValue(pm *PredicateMap, predicate string) string {
	objs := pm.Get(predicate)
	if len(objs) != 1 || !objs[0].IsNode() {
		return ""
	}
	return objs[0].Node
}

func soleObject(pm *PredicateMap, predicate string) *Object {
	objs := pm.Get(predicate)
	if len(objs) != 1 {
		return nil
	}
	return objs[0]
}

// findMatchingObject locates, among targetPM[predicate]'s objects, the one
// whose canonical form matches o (equality by canonical form, per §4.6).
func findMatchingObject(targetPM *PredicateMap, predicate string, o *Object) *Object {
	want, err := canonicalObjectJSON(o)
	if err != nil {
		return nil
	}
	for _, candidate := range targetPM.Get(predicate) {
		got, err := canonicalObjectJSON(candidate)
		if err == nil && got == want {
			return candidate
		}
	}
	return nil
}
