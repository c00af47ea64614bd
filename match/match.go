// Package match implements the declarative predicate language used to guard
// transforms: LexisMatch (a record of optional per-field predicates) and
// ValueMatch (the Equals/OneOf primitive each predicate is built from).
package match

import "github.com/vellum-lang/vellum/lexis"

// Op distinguishes the two ValueMatch shapes.
type Op int

const (
	// Equals: against a scalar field, exact string equality; against tags,
	// a subset test (every listed string must be present).
	Equals Op = iota
	// OneOf: against a scalar field, exact membership; against tags, an
	// intersection test (at least one listed string must be present).
	OneOf
)

// ValueMatch is one field-level predicate value.
type ValueMatch struct {
	Op     Op
	Values []string
}

// EqualsString builds an Equals predicate over a single scalar value.
func EqualsString(v string) ValueMatch { return ValueMatch{Op: Equals, Values: []string{v}} }

// EqualsVector builds an Equals predicate over a set (for tags).
func EqualsVector(vs []string) ValueMatch { return ValueMatch{Op: Equals, Values: vs} }

// OneOfValues builds a OneOf predicate.
func OneOfValues(vs []string) ValueMatch { return ValueMatch{Op: OneOf, Values: vs} }

// evalScalar evaluates a ValueMatch against a single scalar field value.
func (v ValueMatch) evalScalar(field string) bool {
	switch v.Op {
	case Equals:
		return len(v.Values) == 1 && v.Values[0] == field
	case OneOf:
		for _, want := range v.Values {
			if want == field {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// evalSet evaluates a ValueMatch against the tags set.
func (v ValueMatch) evalSet(tags map[string]struct{}) bool {
	switch v.Op {
	case Equals:
		for _, want := range v.Values {
			if _, ok := tags[want]; !ok {
				return false
			}
		}
		return true
	case OneOf:
		for _, want := range v.Values {
			if _, ok := tags[want]; ok {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// FieldPredicate is an optional predicate on one Lexis field: absent
// (zero value, matches everything), Match(inner), or Not(inner).
type FieldPredicate struct {
	set    bool
	negate bool
	inner  ValueMatch
}

// Absent is the zero-value predicate: matches every Lexis.
var Absent = FieldPredicate{}

// MatchValue builds a non-negated field predicate.
func MatchValue(v ValueMatch) FieldPredicate {
	return FieldPredicate{set: true, inner: v}
}

// NotValue builds a negated field predicate.
func NotValue(v ValueMatch) FieldPredicate {
	return FieldPredicate{set: true, negate: true, inner: v}
}

func (f FieldPredicate) evalScalar(field string) bool {
	if !f.set {
		return true
	}
	r := f.inner.evalScalar(field)
	if f.negate {
		return !r
	}
	return r
}

func (f FieldPredicate) evalSet(tags map[string]struct{}) bool {
	if !f.set {
		return true
	}
	r := f.inner.evalSet(tags)
	if f.negate {
		return !r
	}
	return r
}

// LexisMatch is a record of optional predicates over each Lexis field. The
// whole match succeeds iff every configured (non-absent) field predicate
// succeeds. Archaic is matched by direct boolean equality rather than a
// ValueMatch, since it has no string representation worth comparing.
type LexisMatch struct {
	Language   FieldPredicate
	POS        FieldPredicate
	LexisType  FieldPredicate
	Definition FieldPredicate
	Tags       FieldPredicate
	Archaic    *bool
}

// Matches evaluates m against x.
func (m LexisMatch) Matches(x lexis.Lexis) bool {
	if !m.Language.evalScalar(x.Language) {
		return false
	}
	if !m.POS.evalScalar(x.POS.String()) {
		return false
	}
	if !m.LexisType.evalScalar(x.LexisType) {
		return false
	}
	if !m.Definition.evalScalar(x.Definition) {
		return false
	}
	if !m.Tags.evalSet(x.Tags) {
		return false
	}
	if m.Archaic != nil && *m.Archaic != x.Archaic {
		return false
	}
	return true
}

// Not wraps m so the result of Matches is inverted for every call. Useful
// for composing a negation of an entire LexisMatch at the transform level,
// distinct from negating a single field predicate with NotValue.
type Not struct {
	Inner LexisMatch
}

// Matches inverts the inner LexisMatch's result.
func (n Not) Matches(x lexis.Lexis) bool { return !n.Inner.Matches(x) }
