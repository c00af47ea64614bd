package ingest

import (
	"testing"

	"github.com/vellum-lang/vellum/lexis"
)

func TestParseOverridesAllFields(t *testing.T) {
	o, err := ParseOverrides([]string{"language=Latin", "type=word", "pos=noun", "archaic=true", "tag=example", "tag=default", "generate=words"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Language != "Latin" || o.LexisType != "word" || o.POS != lexis.POSNoun || !o.Archaic {
		t.Errorf("got %+v", o)
	}
	if len(o.Tags) != 2 || o.Tags[0] != "example" || o.Tags[1] != "default" {
		t.Errorf("tags: %v", o.Tags)
	}
	if o.Generate != "words" {
		t.Errorf("generate: %q", o.Generate)
	}
}

func TestParseOverridesUnknownKey(t *testing.T) {
	if _, err := ParseOverrides([]string{"bogus=1"}); err == nil {
		t.Error("expected an error for an unknown override key")
	}
}

func TestParseOverridesMalformedPair(t *testing.T) {
	if _, err := ParseOverrides([]string{"no-equals-sign"}); err == nil {
		t.Error("expected an error for a pair without '='")
	}
}
