// Package ingest loads the on-disk wire format described in spec.md §6 —
// tree files, transform files, a phonetics file, an optional globals file —
// into a lexicon.LanguageTree, and adapts external word lists (a generic
// JSON shape, a plain line-delimited shape) into the same tree file shape.
package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/match"
	"github.com/vellum-lang/vellum/transform"
)

// Edge is one etymon reference inside an Entry's etymology.
type Edge struct {
	Etymon      string   `json:"etymon"`
	Transforms  []string `json:"transforms,omitempty"`
	AggOrder    *int     `json:"agglutination_order,omitempty"`
}

// Etymology is the etymons list attached to an Entry.
type Etymology struct {
	Etymons []Edge `json:"etymons"`
}

// Derivative is a child entry generated alongside a parent, lifted into a
// synthetic node before the tree is assembled (spec.md §6, "derivatives are
// sugar").
type Derivative struct {
	Lexis      Entry    `json:"lexis"`
	Transforms []string `json:"transforms,omitempty"`
}

// Entry is one node in a tree file, keyed by id in WordGraph.Words.
type Entry struct {
	Word               *lemma.Lemma        `json:"word,omitempty"`
	LexisType          string              `json:"-"`
	Language           string              `json:"language,omitempty"`
	Definition         string              `json:"definition,omitempty"`
	POS                lexis.PartOfSpeech  `json:"-"`
	Etymology          *Etymology          `json:"etymology,omitempty"`
	Archaic            bool                `json:"archaic,omitempty"`
	Tags               []string            `json:"tags,omitempty"`
	HistoricalMetadata map[string]string   `json:"historical_metadata,omitempty"`
	Generate           string              `json:"generate,omitempty"`
	Derivatives        []Derivative        `json:"derivatives,omitempty"`
}

// wireEntry mirrors Entry's on-disk shape, resolving the type/lexis_type and
// part_of_speech/pos aliases spec.md §6 requires.
type wireEntry struct {
	Word               *lemma.Lemma       `json:"word,omitempty"`
	Type               string             `json:"type,omitempty"`
	LexisType          string             `json:"lexis_type,omitempty"`
	Language           string             `json:"language,omitempty"`
	Definition         string             `json:"definition,omitempty"`
	PartOfSpeech       lexis.PartOfSpeech `json:"part_of_speech,omitempty"`
	POS                lexis.PartOfSpeech `json:"pos,omitempty"`
	Etymology          *Etymology         `json:"etymology,omitempty"`
	Archaic            bool               `json:"archaic,omitempty"`
	Tags               []string           `json:"tags,omitempty"`
	HistoricalMetadata map[string]string  `json:"historical_metadata,omitempty"`
	Generate           string             `json:"generate,omitempty"`
	Derivatives        []Derivative       `json:"derivatives,omitempty"`
}

// UnmarshalJSON resolves type/lexis_type and part_of_speech/pos aliases.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	lexisType := w.LexisType
	if lexisType == "" {
		lexisType = w.Type
	}
	pos := w.PartOfSpeech
	if pos == lexis.POSNone {
		pos = w.POS
	}
	*e = Entry{
		Word:               w.Word,
		LexisType:          lexisType,
		Language:           w.Language,
		Definition:         w.Definition,
		POS:                pos,
		Etymology:          w.Etymology,
		Archaic:            w.Archaic,
		Tags:               w.Tags,
		HistoricalMetadata: w.HistoricalMetadata,
		Generate:           w.Generate,
		Derivatives:        w.Derivatives,
	}
	return nil
}

// MarshalJSON renders Entry using the canonical (non-aliased) key names.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEntry{
		Word:               e.Word,
		LexisType:          e.LexisType,
		Language:           e.Language,
		Definition:         e.Definition,
		PartOfSpeech:       e.POS,
		Etymology:          e.Etymology,
		Archaic:            e.Archaic,
		Tags:               e.Tags,
		HistoricalMetadata: e.HistoricalMetadata,
		Generate:           e.Generate,
		Derivatives:        e.Derivatives,
	})
}

// ToLexis converts an Entry into a lexis.Lexis with the given id. The
// etymology and derivatives fields are handled separately by the tree
// assembler; they carry no information a single Lexis node can hold.
func (e Entry) ToLexis(id string) lexis.Lexis {
	l := lexis.New()
	l.ID = id
	l.Word = e.Word
	l.Language = e.Language
	l.POS = e.POS
	l.LexisType = e.LexisType
	l.Definition = e.Definition
	l.Archaic = e.Archaic
	l.WordCreate = e.Generate
	for _, t := range e.Tags {
		l.Tags[t] = struct{}{}
	}
	for k, v := range e.HistoricalMetadata {
		l.HistoricalMetadata[k] = v
	}
	return l
}

// WordGraph is a tree file's top-level shape.
type WordGraph struct {
	Words map[string]Entry `json:"words"`
}

// RawTransform is one named transform's on-disk shape.
type RawTransform struct {
	Transforms  []transform.Func  `json:"transforms"`
	Conditional *match.LexisMatch `json:"conditional,omitempty"`
}

// ToTransform builds the runtime transform.Transform, filling in name (the
// map key is informational only on the wire, just as spec.md §4.4 says).
func (r RawTransform) ToTransform(name string) transform.Transform {
	return transform.Transform{Name: name, Guard: r.Conditional, Funcs: r.Transforms}
}

// TransformGraph is a transform file's top-level shape.
type TransformGraph struct {
	Transforms map[string]RawTransform `json:"transforms"`
}

// RawGlobalTransform is one entry in a globals file's transforms array.
type RawGlobalTransform struct {
	Conditional struct {
		Lexis  match.LexisMatch  `json:"lexis"`
		Etymon *match.LexisMatch `json:"etymon,omitempty"`
	} `json:"conditional"`
	Transforms []transform.Func `json:"transforms"`
}

// ToGlobalTransform builds the runtime transform.GlobalTransform.
func (r RawGlobalTransform) ToGlobalTransform() transform.GlobalTransform {
	return transform.GlobalTransform{
		LexMatch:    r.Conditional.Lexis,
		EtymonMatch: r.Conditional.Etymon,
		Funcs:       r.Transforms,
	}
}

// GlobalsFile is the optional globals.json top-level shape.
type GlobalsFile struct {
	Transforms []RawGlobalTransform `json:"transforms"`
}

// PhonologyFile is the phonetics file's top-level shape: each value is a
// list of raw PhoneticReference strings, parsed by the caller (phon.New
// doesn't itself know JSON).
type PhonologyFile struct {
	Groups     map[string][]string `json:"groups"`
	LexisTypes map[string][]string `json:"lexis_types"`
}

func parseGroupKey(key string) (rune, error) {
	runes := []rune(key)
	if len(runes) != 1 {
		return 0, fmt.Errorf("ingest: phonetics group key %q must be a single rune", key)
	}
	return runes[0], nil
}
