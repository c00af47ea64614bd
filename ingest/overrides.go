package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
)

// Overrides holds the fields a CLI ingest invocation wants stamped onto
// every entry an adapter produces, grounded on RawLexicalEntry's defaulting
// behavior in original_source/kirum/src/ingest/overrides.rs. Unlike the
// Rust original (which matches on the value rather than the key, a bug),
// this parses proper key=value pairs.
type Overrides struct {
	Word       *lemma.Lemma
	LexisType  string
	Language   string
	POS        lexis.PartOfSpeech
	Archaic    bool
	Tags       []string
	Generate   string
}

// ParseOverrides parses a list of "key=value" strings into an Overrides.
// Recognized keys: word, type, language, pos, archaic, tag (repeatable),
// generate. An unrecognized key or a malformed pair is an error.
func ParseOverrides(pairs []string) (Overrides, error) {
	var out Overrides
	for _, p := range pairs {
		key, val, ok := strings.Cut(p, "=")
		if !ok {
			return Overrides{}, fmt.Errorf("ingest: override %q is not in key=value form", p)
		}
		switch key {
		case "word":
			w := lemma.New(val)
			out.Word = &w
		case "type":
			out.LexisType = val
		case "language":
			out.Language = val
		case "pos":
			out.POS = lexis.ParsePartOfSpeech(val)
		case "archaic":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return Overrides{}, fmt.Errorf("ingest: override archaic=%q: %w", val, err)
			}
			out.Archaic = b
		case "tag":
			out.Tags = append(out.Tags, val)
		case "generate":
			out.Generate = val
		default:
			return Overrides{}, fmt.Errorf("ingest: unknown override key %q", key)
		}
	}
	return out, nil
}

// apply builds an Entry from the overrides, with definition and etymology
// filled in by the caller.
func (o Overrides) apply(definition string, etymology *Etymology) Entry {
	return Entry{
		Word:       o.Word,
		LexisType:  o.LexisType,
		Language:   o.Language,
		POS:        o.POS,
		Definition: definition,
		Archaic:    o.Archaic,
		Tags:       append([]string(nil), o.Tags...),
		Generate:   o.Generate,
		Etymology:  etymology,
	}
}
