package lemma

import "encoding/json"

// MarshalJSON renders the display string, the form every render collaborator
// and wire consumer expects.
func (l Lemma) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts either shape spec.md §6 allows for a word: a plain
// string (grapheme-split via New) or an array of strings taken verbatim as
// tokens (FromTokens), for callers that already did their own segmentation.
func (l *Lemma) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = New(s)
		return nil
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	*l = FromTokens(tokens)
	return nil
}

// MarshalJSON renders Where as the wire's lowercase name.
func (w Where) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// String renders the wire name for a Where value.
func (w Where) String() string {
	switch w {
	case First:
		return "first"
	case Last:
		return "last"
	default:
		return "all"
	}
}

// UnmarshalJSON parses "first"/"all"/"last"; an unrecognized or empty string
// defaults to All. A transform that omits the field entirely keeps Where's
// zero value, First.
func (w *Where) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "first":
		*w = First
	case "last":
		*w = Last
	default:
		*w = All
	}
	return nil
}
