package match

import (
	"encoding/json"
	"fmt"
)

// wireValueMatch mirrors the tagged union {"equals": <string|[]string>} or
// {"oneof": [...]}, matching libkirum's ValueMatch.
type wireValueMatch struct {
	Equals json.RawMessage `json:"equals,omitempty"`
	OneOf  []string        `json:"oneof,omitempty"`
}

// MarshalJSON renders a ValueMatch as its tagged wire shape.
func (v ValueMatch) MarshalJSON() ([]byte, error) {
	switch v.Op {
	case Equals:
		if len(v.Values) == 1 {
			return json.Marshal(wireValueMatch{Equals: mustJSON(v.Values[0])})
		}
		return json.Marshal(wireValueMatch{Equals: mustJSON(v.Values)})
	case OneOf:
		return json.Marshal(wireValueMatch{OneOf: v.Values})
	default:
		return nil, fmt.Errorf("match: unknown Op %d", v.Op)
	}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// UnmarshalJSON parses the tagged equals/oneof shape. An "equals" value may
// be a bare string (scalar Equals) or an array of strings (set Equals).
func (v *ValueMatch) UnmarshalJSON(data []byte) error {
	var w wireValueMatch
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Equals != nil {
		var s string
		if err := json.Unmarshal(w.Equals, &s); err == nil {
			*v = ValueMatch{Op: Equals, Values: []string{s}}
			return nil
		}
		var vs []string
		if err := json.Unmarshal(w.Equals, &vs); err != nil {
			return fmt.Errorf("match: equals value is neither string nor array: %w", err)
		}
		*v = ValueMatch{Op: Equals, Values: vs}
		return nil
	}
	*v = ValueMatch{Op: OneOf, Values: w.OneOf}
	return nil
}

// wireFieldValue mirrors libkirum's Value enum: {"match": <ValueMatch>} or
// {"not": <ValueMatch>}.
type wireFieldValue struct {
	Match *ValueMatch `json:"match,omitempty"`
	Not   *ValueMatch `json:"not,omitempty"`
}

// MarshalJSON renders an absent FieldPredicate as JSON null; a set one as
// its match/not wire shape.
func (f FieldPredicate) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	if f.negate {
		return json.Marshal(wireFieldValue{Not: &f.inner})
	}
	return json.Marshal(wireFieldValue{Match: &f.inner})
}

// UnmarshalJSON parses a null/absent field predicate, or the match/not
// tagged shape.
func (f *FieldPredicate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Absent
		return nil
	}
	var w wireFieldValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Match != nil:
		*f = MatchValue(*w.Match)
	case w.Not != nil:
		*f = NotValue(*w.Not)
	default:
		*f = Absent
	}
	return nil
}

// wireLexisMatch mirrors the JSON object shape of LexisMatch: each field is
// either absent, "type" is accepted as an alias for LexisType, and "pos"
// compares against the stringified part of speech.
type wireLexisMatch struct {
	Language   FieldPredicate `json:"language,omitempty"`
	POS        FieldPredicate `json:"pos,omitempty"`
	LexisType  FieldPredicate `json:"lexis_type,omitempty"`
	Type       FieldPredicate `json:"type,omitempty"`
	Definition FieldPredicate `json:"definition,omitempty"`
	Tags       FieldPredicate `json:"tags,omitempty"`
	Archaic    *bool          `json:"archaic,omitempty"`
}

// UnmarshalJSON resolves the type/lexis_type alias spec.md §6 requires.
func (m *LexisMatch) UnmarshalJSON(data []byte) error {
	var w wireLexisMatch
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	lexisType := w.LexisType
	if !lexisType.set {
		lexisType = w.Type
	}
	*m = LexisMatch{
		Language:   w.Language,
		POS:        w.POS,
		LexisType:  lexisType,
		Definition: w.Definition,
		Tags:       w.Tags,
		Archaic:    w.Archaic,
	}
	return nil
}

// MarshalJSON renders LexisMatch using lexis_type as the canonical key.
func (m LexisMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireLexisMatch{
		Language:   m.Language,
		POS:        m.POS,
		LexisType:  m.LexisType,
		Definition: m.Definition,
		Tags:       m.Tags,
		Archaic:    m.Archaic,
	})
}
