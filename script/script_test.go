package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vellum-lang/vellum/internal/vellumerr"
	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.star")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunStringResult(t *testing.T) {
	path := writeScript(t, `result = lemma_string + "x"`)
	w := lemma.New("warh")
	x := lexis.New()
	x.Word = &w
	out, err := Run(path, x)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "warhx" {
		t.Errorf("got %q, want %q", out.String(), "warhx")
	}
}

func TestRunListResult(t *testing.T) {
	path := writeScript(t, `result = lemma_array + ["!"]`)
	w := lemma.New("warh")
	x := lexis.New()
	x.Word = &w
	out, err := Run(path, x)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "warh!" {
		t.Errorf("got %q, want %q", out.String(), "warh!")
	}
}

func TestRunBadReturnShape(t *testing.T) {
	path := writeScript(t, `result = 5`)
	_, err := Run(path, lexis.New())
	var rv *vellumerr.ScriptReturnValueError
	if err == nil {
		t.Fatal("expected an error")
	}
	if !asScriptReturnValueError(err, &rv) {
		t.Errorf("expected ScriptReturnValueError, got %T: %v", err, err)
	}
}

func TestRunEvalError(t *testing.T) {
	path := writeScript(t, `result = 1/0`)
	_, err := Run(path, lexis.New())
	var ee *vellumerr.EvalError
	if err == nil {
		t.Fatal("expected an error")
	}
	if !asEvalError(err, &ee) {
		t.Errorf("expected EvalError, got %T: %v", err, err)
	}
}

func asScriptReturnValueError(err error, target **vellumerr.ScriptReturnValueError) bool {
	if e, ok := err.(*vellumerr.ScriptReturnValueError); ok {
		*target = e
		return true
	}
	return false
}

func asEvalError(err error, target **vellumerr.EvalError) bool {
	if e, ok := err.(*vellumerr.EvalError); ok {
		*target = e
		return true
	}
	return false
}

func TestRunBoolHelper(t *testing.T) {
	path := writeScript(t, `result = (a == b)`)
	ok, err := RunBoolHelper(path, "foo", "foo")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected true for equal strings")
	}
	ok, err = RunBoolHelper(path, "foo", "bar")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected false for unequal strings")
	}
}

func TestLanguageAndPOSBindings(t *testing.T) {
	path := writeScript(t, `
result = language + ":" + pos
`)
	x := lexis.New()
	x.Language = "Gauntlet"
	x.POS = lexis.POSNoun
	out, err := Run(path, x)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "Gauntlet:noun" {
		t.Errorf("got %q", out.String())
	}
}
