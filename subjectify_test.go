package rdftab

import "testing"

func TestSubjectifyBuildsDepsForBlankObjects(t *testing.T) {
	rows := []ThinRow{
		{Stanza: "ex:X", Subject: "ex:X", Predicate: "ex:has", Object: "_:b1"},
		{Stanza: "ex:X", Subject: "_:b1", Predicate: "ex:p", Value: "v", IsLiteral: true},
	}

	sm, deps := Subjectify(rows)

	if sm.Len() != 2 {
		t.Fatalf("expected 2 subjects, got %d", sm.Len())
	}
	if !sm.Has("ex:X") || !sm.Has("_:b1") {
		t.Fatalf("missing expected subjects: %v", sm.Keys())
	}
	if set, ok := deps["ex:X"]; !ok || !set.Contains("_:b1") {
		t.Errorf("expected deps[ex:X] to contain _:b1, got %v", deps)
	}
}

func TestSubjectifyDropsMalformedAndEmptyPredicateRows(t *testing.T) {
	rows := []ThinRow{
		{Stanza: "ex:X", Subject: "ex:X", Predicate: "", Object: "ex:o"},           // EmptyPredicate
		{Stanza: "ex:X", Subject: "ex:X", Predicate: "ex:p"},                       // MalformedRow: neither object nor value
		{Stanza: "ex:X", Subject: "ex:X", Predicate: "ex:q", Object: "ex:o"},       // well-formed
	}

	sm, _ := Subjectify(rows)

	if sm.Len() != 1 {
		t.Fatalf("expected 1 subject to survive, got %d", sm.Len())
	}
	pm := sm.Get("ex:X")
	if pm.Len() != 1 || !pm.Has("ex:q") {
		t.Errorf("expected only ex:q to survive, got keys %v", pm.Keys())
	}
}

func TestSubjectifyEmptyStringLiteralSurvives(t *testing.T) {
	rows := []ThinRow{
		{Stanza: "ex:X", Subject: "ex:X", Predicate: "ex:p", Value: "", IsLiteral: true},
	}
	sm, _ := Subjectify(rows)

	pm := sm.Get("ex:X")
	if pm == nil || !pm.Has("ex:p") {
		t.Fatal("expected the explicit empty-string literal row to survive")
	}
	objs := pm.Get("ex:p")
	if len(objs) != 1 || objs[0].IsNode() || objs[0].Value != "" {
		t.Errorf("unexpected object: %+v", objs)
	}
}
