package match

import (
	"testing"

	"github.com/vellum-lang/vellum/lexis"
)

func tagged(tags ...string) lexis.Lexis {
	x := lexis.New()
	for _, t := range tags {
		x.Tags[t] = struct{}{}
	}
	return x
}

func TestEqualsVectorIsSubset(t *testing.T) {
	m := LexisMatch{Tags: MatchValue(EqualsVector([]string{"a", "b"}))}
	if !m.Matches(tagged("a", "b", "c")) {
		t.Error("expected subset match to succeed")
	}
	if m.Matches(tagged("a")) {
		t.Error("expected subset match to fail when a required tag is missing")
	}
}

func TestOneOfVectorIsIntersection(t *testing.T) {
	m := LexisMatch{Tags: MatchValue(OneOfValues([]string{"a", "z"}))}
	if !m.Matches(tagged("a")) {
		t.Error("expected OneOf to match when one listed tag is present")
	}
	if m.Matches(tagged("x", "y")) {
		t.Error("expected OneOf to fail when no listed tag is present")
	}
}

func TestScalarEqualsVectorAlwaysFalse(t *testing.T) {
	// A multi-value Equals against a scalar field is false, never a subset
	// check — scalars and tags must not share semantics. A one-element
	// Equals is stored the same way as EqualsString and compares by string
	// equality.
	v := ValueMatch{Op: Equals, Values: []string{"a", "b"}}
	if v.evalScalar("a") {
		t.Error("Equals(Vector) against a scalar field must be false")
	}
}

func TestNotInvertsFieldPredicate(t *testing.T) {
	m := LexisMatch{Language: NotValue(EqualsString("Latin"))}
	x := lexis.New()
	x.Language = "Gauntlet"
	if !m.Matches(x) {
		t.Error("Not(Equals(Latin)) should match a non-Latin lexis")
	}
	x.Language = "Latin"
	if m.Matches(x) {
		t.Error("Not(Equals(Latin)) should reject a Latin lexis")
	}
}

func TestNotWholeMatch(t *testing.T) {
	m := LexisMatch{Language: MatchValue(EqualsString("Latin"))}
	x := lexis.New()
	x.Language = "Latin"
	negated := Not{Inner: m}
	if negated.Matches(x) {
		t.Error("Not{m}.Matches(x) should be false when m.Matches(x) is true")
	}
	x.Language = "Greek"
	if !negated.Matches(x) {
		t.Error("Not{m}.Matches(x) should be true when m.Matches(x) is false")
	}
}

func TestArchaicBooleanEquality(t *testing.T) {
	want := true
	m := LexisMatch{Archaic: &want}
	x := lexis.New()
	x.Archaic = true
	if !m.Matches(x) {
		t.Error("expected archaic=true to match")
	}
	x.Archaic = false
	if m.Matches(x) {
		t.Error("expected archaic=false to fail match against Archaic=true")
	}
}

func TestAbsentPredicateMatchesEverything(t *testing.T) {
	m := LexisMatch{}
	if !m.Matches(lexis.New()) {
		t.Error("a LexisMatch with all fields absent should match any Lexis")
	}
}
