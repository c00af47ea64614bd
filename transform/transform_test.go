package transform

import (
	"testing"

	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/match"
)

func withWord(s string) lexis.Lexis {
	x := lexis.New()
	w := lemma.New(s)
	x.Word = &w
	return x
}

func TestLetterArrayInsertsVowel(t *testing.T) {
	tr := Transform{Funcs: []Func{
		LetterArray([]lemma.ArraySpec{lemma.Idx(0), lemma.Lit("a"), lemma.Idx(1), lemma.Idx(2)}),
	}}
	out, applied, err := tr.Apply(withWord("wrh"), nil)
	if err != nil || !applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
	if out.Word.String() != "warh" {
		t.Errorf("got %q, want %q", out.Word.String(), "warh")
	}
}

func TestPrefix(t *testing.T) {
	tr := Transform{Funcs: []Func{Prefix("au")}}
	out, applied, err := tr.Apply(withWord("warh"), nil)
	if err != nil || !applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
	if out.Word.String() != "auwarh" {
		t.Errorf("got %q, want %q", out.Word.String(), "auwarh")
	}
}

func TestGuardRejectsWithoutMutating(t *testing.T) {
	guard := match.LexisMatch{Language: match.MatchValue(match.EqualsString("Latin"))}
	tr := Transform{Guard: &guard, Funcs: []Func{Prefix("au")}}
	x := withWord("warh")
	x.Language = "Gauntlet"
	out, applied, err := tr.Apply(x, nil)
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Error("expected guard to reject, got applied=true")
	}
	if out.Word.String() != "warh" {
		t.Errorf("guard rejection must not mutate the target: got %q", out.Word.String())
	}
	if out.Language != "Gauntlet" {
		t.Errorf("guard rejection must not mutate any field: language changed to %q", out.Language)
	}
}

func TestNoWordIsNoOp(t *testing.T) {
	tr := Transform{Funcs: []Func{Prefix("au")}}
	x := lexis.New()
	out, applied, err := tr.Apply(x, nil)
	if err != nil || !applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
	if out.Word != nil {
		t.Error("a primitive over an absent word must not invent one")
	}
}

func TestScriptNoWordIsNoOp(t *testing.T) {
	tr := Transform{Funcs: []Func{Script("testdata/does-not-exist.star")}}
	x := lexis.New()
	out, applied, err := tr.Apply(x, nil)
	if err != nil || !applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
	if out.Word != nil {
		t.Error("Script over an absent word must not invent one, and must not even run the script")
	}
}

func TestLoanwordIsNoOp(t *testing.T) {
	tr := Transform{Funcs: []Func{Loanword()}}
	out, _, err := tr.Apply(withWord("maark"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Word.String() != "maark" {
		t.Errorf("got %q, want unchanged %q", out.Word.String(), "maark")
	}
}

func TestGlobalTransformRequiresEtymonMatch(t *testing.T) {
	lexMatch := match.LexisMatch{Language: match.MatchValue(match.EqualsString("New Gauntlet"))}
	etyMatch := match.LexisMatch{Language: match.MatchValue(match.EqualsString("gauntlet"))}
	g := GlobalTransform{LexMatch: lexMatch, EtymonMatch: &etyMatch, Funcs: []Func{Prefix("ka")}}

	x := withWord("surauwarh")
	x.Language = "New Gauntlet"

	matchingEtymon := lexis.New()
	matchingEtymon.Language = "gauntlet"

	out, applied, err := g.Apply(x, []lexis.Lexis{matchingEtymon}, nil)
	if err != nil || !applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
	if out.Word.String() != "kasurauwarh" {
		t.Errorf("got %q, want %q", out.Word.String(), "kasurauwarh")
	}

	nonMatchingEtymon := lexis.New()
	nonMatchingEtymon.Language = "other"
	_, applied2, err := g.Apply(x, []lexis.Lexis{nonMatchingEtymon}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if applied2 {
		t.Error("expected no etymon to match and the global transform to be skipped")
	}
}

func TestMatchReplaceOnRegexFailureDoesNotAbort(t *testing.T) {
	tr := Transform{Funcs: []Func{MatchReplace("(", "x")}}
	x := withWord("wrh")
	out, applied, err := tr.Apply(x, nil)
	if err != nil || !applied {
		t.Fatalf("applied=%v err=%v", applied, err)
	}
	if out.Word.String() != "wrh" {
		t.Errorf("a bad regex should log and leave the word unchanged, got %q", out.Word.String())
	}
}
