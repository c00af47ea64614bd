package phon

import (
	"math/rand"
	"strings"
	"testing"
)

func buildGrammar(t *testing.T) LexPhonology {
	t.Helper()
	p := New()
	c, err := ParsePhoneticReference("t")
	if err != nil {
		t.Fatal(err)
	}
	c2, err := ParsePhoneticReference("r")
	if err != nil {
		t.Fatal(err)
	}
	v, err := ParsePhoneticReference("u")
	if err != nil {
		t.Fatal(err)
	}
	v2, err := ParsePhoneticReference("i")
	if err != nil {
		t.Fatal(err)
	}
	p.Groups['C'] = []PhoneticReference{c, c2}
	p.Groups['V'] = []PhoneticReference{v, v2}

	s, err := ParsePhoneticReference("CV")
	if err != nil {
		t.Fatal(err)
	}
	s2, err := ParsePhoneticReference("VC")
	if err != nil {
		t.Fatal(err)
	}
	p.Groups['S'] = []PhoneticReference{s, s2}

	words, err := ParsePhoneticReference("S")
	if err != nil {
		t.Fatal(err)
	}
	ss, err := ParsePhoneticReference("SS")
	if err != nil {
		t.Fatal(err)
	}
	p.LexisTypes["words"] = []PhoneticReference{words, ss}
	return p
}

func TestCreateWordStructuralProperties(t *testing.T) {
	p := buildGrammar(t)
	rng := rand.New(rand.NewSource(1))
	terminals := "tru i"
	for i := 0; i < 50; i++ {
		l, ok := p.CreateWord("words", rng)
		if !ok {
			t.Fatal("expected a word every time for a fully-populated grammar")
		}
		n := l.Len()
		if n != 2 && n != 4 {
			t.Errorf("word %q has length %d, want 2 or 4", l.String(), n)
		}
		for _, tok := range l.Tokens() {
			if !strings.Contains(terminals, tok) {
				t.Errorf("token %q is not one of the grammar's terminals", tok)
			}
		}
	}
}

func TestCreateWordMissingTypeReturnsNone(t *testing.T) {
	p := buildGrammar(t)
	rng := rand.New(rand.NewSource(1))
	_, ok := p.CreateWord("nonexistent", rng)
	if ok {
		t.Error("expected ok=false for a missing lexis type")
	}
}

func TestCreateWordMissingGroupCollapses(t *testing.T) {
	p := New()
	ref, err := ParsePhoneticReference("Z")
	if err != nil {
		t.Fatal(err)
	}
	p.LexisTypes["broken"] = []PhoneticReference{ref}
	rng := rand.New(rand.NewSource(1))
	_, ok := p.CreateWord("broken", rng)
	if ok {
		t.Error("a reference to a missing group must collapse the whole attempt")
	}
}

func TestParsePhoneticReferenceCharByChar(t *testing.T) {
	ref, err := ParsePhoneticReference("CV")
	if err != nil {
		t.Fatal(err)
	}
	if len(ref) != 2 || ref[0].Kind != Reference || ref[1].Kind != Reference {
		t.Errorf("expected two reference tokens, got %+v", ref)
	}
}

func TestParsePhoneticReferenceSpaceSeparated(t *testing.T) {
	ref, err := ParsePhoneticReference("sh  C  V")
	if err != nil {
		t.Fatal(err)
	}
	if len(ref) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(ref))
	}
	if ref[0].Kind != Phoneme || ref[0].Text != "sh" {
		t.Errorf("expected first token to be phoneme 'sh', got %+v", ref[0])
	}
}

func TestParsePhoneticReferenceEmpty(t *testing.T) {
	if _, err := ParsePhoneticReference(""); err == nil {
		t.Error("expected an error for an empty reference")
	}
}
