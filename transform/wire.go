package transform

import (
	"encoding/json"
	"fmt"

	"github.com/vellum-lang/vellum/lemma"
)

// wireFunc is the on-disk shape of a single TransformFunc: a tagged union
// keyed by primitive name, per spec.md §4.2/§6 ("{"letter_replace": {...}}").
type wireFunc struct {
	LetterReplace *wireLetterOp    `json:"letter_replace,omitempty"`
	LetterArray   *wireLetterArray `json:"letter_array,omitempty"`
	Postfix       *wireValue       `json:"postfix,omitempty"`
	Prefix        *wireValue       `json:"prefix,omitempty"`
	Loanword      *struct{}        `json:"loanword,omitempty"`
	LetterRemove  *wireLetterWhere `json:"letter_remove,omitempty"`
	Double        *wireLetterWhere `json:"double,omitempty"`
	DeDouble      *wireLetterWhere `json:"de_double,omitempty"`
	MatchReplace  *wireMatchReplace `json:"match_replace,omitempty"`
	Script        *wireScript      `json:"script,omitempty"`
}

type wireLetterOp struct {
	Old   string     `json:"old"`
	New   string     `json:"new"`
	Where lemma.Where `json:"where"`
}

type wireLetterWhere struct {
	Letter string     `json:"letter"`
	Where  lemma.Where `json:"where"`
}

type wireValue struct {
	Value string `json:"value"`
}

type wireMatchReplace struct {
	Old string `json:"old"`
	New string `json:"new"`
}

type wireScript struct {
	File string `json:"file"`
}

// wireArraySpec is one element of letter_array's specs: either a bare string
// literal or {"index": n}.
type wireArraySpec struct {
	raw json.RawMessage
}

type wireLetterArray struct {
	Specs []wireArraySpec `json:"specs"`
}

func (s *wireArraySpec) UnmarshalJSON(data []byte) error {
	s.raw = append([]byte(nil), data...)
	return nil
}

func (s wireArraySpec) toSpec() (lemma.ArraySpec, error) {
	var lit string
	if err := json.Unmarshal(s.raw, &lit); err == nil {
		return lemma.Lit(lit), nil
	}
	var idx struct {
		Index int `json:"index"`
	}
	if err := json.Unmarshal(s.raw, &idx); err != nil {
		return lemma.ArraySpec{}, fmt.Errorf("transform: letter_array spec is neither a string nor {index}: %w", err)
	}
	return lemma.Idx(idx.Index), nil
}

// MarshalJSON renders f as its single-key tagged wire shape.
func (f Func) MarshalJSON() ([]byte, error) {
	var w wireFunc
	switch f.Kind {
	case KindLetterReplace:
		w.LetterReplace = &wireLetterOp{Old: f.Old, New: f.New, Where: f.Where}
	case KindLetterArray:
		specs := make([]wireArraySpec, len(f.Specs))
		for i, s := range f.Specs {
			var raw json.RawMessage
			var err error
			if s.Index != nil {
				raw, err = json.Marshal(struct {
					Index int `json:"index"`
				}{*s.Index})
			} else {
				raw, err = json.Marshal(s.Literal)
			}
			if err != nil {
				return nil, err
			}
			specs[i] = wireArraySpec{raw: raw}
		}
		w.LetterArray = &wireLetterArray{Specs: specs}
	case KindPostfix:
		w.Postfix = &wireValue{Value: f.Value}
	case KindPrefix:
		w.Prefix = &wireValue{Value: f.Value}
	case KindLoanword:
		w.Loanword = &struct{}{}
	case KindLetterRemove:
		w.LetterRemove = &wireLetterWhere{Letter: f.Letter, Where: f.Where}
	case KindDouble:
		w.Double = &wireLetterWhere{Letter: f.Letter, Where: f.Where}
	case KindDeDouble:
		w.DeDouble = &wireLetterWhere{Letter: f.Letter, Where: f.Where}
	case KindMatchReplace:
		w.MatchReplace = &wireMatchReplace{Old: f.Old, New: f.New}
	case KindScript:
		w.Script = &wireScript{File: f.File}
	default:
		return nil, fmt.Errorf("transform: unknown Kind %d", f.Kind)
	}
	return json.Marshal(w)
}

// UnmarshalJSON parses the tagged wire shape into a Func.
func (f *Func) UnmarshalJSON(data []byte) error {
	var w wireFunc
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.LetterReplace != nil:
		*f = LetterReplace(w.LetterReplace.Old, w.LetterReplace.New, w.LetterReplace.Where)
	case w.LetterArray != nil:
		specs := make([]lemma.ArraySpec, len(w.LetterArray.Specs))
		for i, s := range w.LetterArray.Specs {
			spec, err := s.toSpec()
			if err != nil {
				return err
			}
			specs[i] = spec
		}
		*f = LetterArray(specs)
	case w.Postfix != nil:
		*f = Postfix(w.Postfix.Value)
	case w.Prefix != nil:
		*f = Prefix(w.Prefix.Value)
	case w.Loanword != nil:
		*f = Loanword()
	case w.LetterRemove != nil:
		*f = LetterRemove(w.LetterRemove.Letter, w.LetterRemove.Where)
	case w.Double != nil:
		*f = Double(w.Double.Letter, w.Double.Where)
	case w.DeDouble != nil:
		*f = DeDouble(w.DeDouble.Letter, w.DeDouble.Where)
	case w.MatchReplace != nil:
		*f = MatchReplace(w.MatchReplace.Old, w.MatchReplace.New)
	case w.Script != nil:
		*f = Script(w.Script.File)
	default:
		return fmt.Errorf("transform: empty or unrecognized TransformFunc object")
	}
	return nil
}
