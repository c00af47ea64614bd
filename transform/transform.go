// Package transform implements the closed set of letter-level rewrite
// primitives that act on a Lexis's Lemma, plus the two pipeline objects
// built from them: Transform (a named, optionally guarded sequence) and
// GlobalTransform (guarded on both the target and its etymons).
package transform

import (
	"github.com/sirupsen/logrus"

	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/match"
	"github.com/vellum-lang/vellum/script"
)

// Kind tags the closed set of primitive variants, so callers can
// exhaustively switch without an open class hierarchy.
type Kind int

const (
	KindLetterReplace Kind = iota
	KindLetterArray
	KindPostfix
	KindPrefix
	KindLoanword
	KindLetterRemove
	KindDouble
	KindDeDouble
	KindMatchReplace
	KindScript
)

// Func is one primitive in a transform pipeline. Which fields are
// meaningful depends on Kind; this mirrors the tagged-union shape the wire
// format uses ({"letter_replace": {...}}).
type Func struct {
	Kind Kind

	// LetterReplace, LetterRemove, Double, DeDouble
	Letter string
	Where  lemma.Where

	// LetterReplace, MatchReplace
	Old string
	New string

	// Postfix, Prefix
	Value string

	// LetterArray
	Specs []lemma.ArraySpec

	// Script
	File string
}

// LetterReplace builds a LetterReplace primitive.
func LetterReplace(old, new string, where lemma.Where) Func {
	return Func{Kind: KindLetterReplace, Old: old, New: new, Where: where}
}

// LetterArray builds a LetterArray primitive.
func LetterArray(specs []lemma.ArraySpec) Func { return Func{Kind: KindLetterArray, Specs: specs} }

// Postfix builds a Postfix primitive.
func Postfix(value string) Func { return Func{Kind: KindPostfix, Value: value} }

// Prefix builds a Prefix primitive.
func Prefix(value string) Func { return Func{Kind: KindPrefix, Value: value} }

// Loanword builds the no-op primitive used to agglutinate a parent's form
// unchanged.
func Loanword() Func { return Func{Kind: KindLoanword} }

// LetterRemove builds a LetterRemove primitive.
func LetterRemove(letter string, where lemma.Where) Func {
	return Func{Kind: KindLetterRemove, Letter: letter, Where: where}
}

// Double builds a Double primitive.
func Double(letter string, where lemma.Where) Func {
	return Func{Kind: KindDouble, Letter: letter, Where: where}
}

// DeDouble builds a DeDouble primitive.
func DeDouble(letter string, where lemma.Where) Func {
	return Func{Kind: KindDeDouble, Letter: letter, Where: where}
}

// MatchReplace builds a MatchReplace primitive.
func MatchReplace(old, new string) Func { return Func{Kind: KindMatchReplace, Old: old, New: new} }

// Script builds a Script primitive that evaluates the named Starlark file.
func Script(file string) Func { return Func{Kind: KindScript, File: file} }

// Apply runs f against x in place, returning the possibly-updated Lexis.
// If x has no word, every primitive is a no-op, Script included.
func (f Func) Apply(x lexis.Lexis, log *logrus.Entry) (lexis.Lexis, error) {
	if x.Word == nil {
		return x, nil
	}
	w := *x.Word

	switch f.Kind {
	case KindScript:
		out, err := script.Run(f.File, x)
		if err != nil {
			return x, err
		}
		w = out
	case KindLetterReplace:
		w = w.Replace(f.Old, f.New, f.Where)
	case KindLetterArray:
		w = w.ModifyWithArray(f.Specs)
	case KindPostfix:
		w = w.AddPostfix(lemma.New(f.Value))
	case KindPrefix:
		w = w.AddPrefix(lemma.New(f.Value))
	case KindLoanword:
		// intentionally no-op
	case KindLetterRemove:
		w = w.Remove(f.Letter, f.Where)
	case KindDouble:
		w = w.Double(f.Letter, f.Where)
	case KindDeDouble:
		w = w.DeDouble(f.Letter, f.Where)
	case KindMatchReplace:
		var logf func(string, ...any)
		if log != nil {
			logf = log.Errorf
		}
		w = w.MatchReplace(lemma.New(f.Old), lemma.New(f.New), logf)
	}
	x.Word = &w
	return x, nil
}

// Transform is a named, optionally guarded pipeline of primitives.
type Transform struct {
	Name  string
	Guard *match.LexisMatch
	Funcs []Func
}

// Apply evaluates the guard (if any) against x; on rejection it returns x
// unchanged and applied=false. Otherwise every primitive runs in order;
// the first TransformError aborts and propagates.
func (t Transform) Apply(x lexis.Lexis, log *logrus.Entry) (out lexis.Lexis, applied bool, err error) {
	if t.Guard != nil && !t.Guard.Matches(x) {
		return x, false, nil
	}
	out = x
	for _, f := range t.Funcs {
		out, err = f.Apply(out, log)
		if err != nil {
			return x, false, err
		}
	}
	return out, true, nil
}

// GlobalTransform is applied after an edge has produced a form. It succeeds
// when the target guard matches and either no etymon guard is configured or
// at least one supplied etymon matches it.
type GlobalTransform struct {
	LexMatch    match.LexisMatch
	EtymonMatch *match.LexisMatch
	Funcs       []Func
}

// Apply evaluates both guards against x and its direct etymons.
func (g GlobalTransform) Apply(x lexis.Lexis, etymons []lexis.Lexis, log *logrus.Entry) (out lexis.Lexis, applied bool, err error) {
	if !g.LexMatch.Matches(x) {
		return x, false, nil
	}
	if g.EtymonMatch != nil {
		matched := false
		for _, e := range etymons {
			if g.EtymonMatch.Matches(e) {
				matched = true
				break
			}
		}
		if !matched {
			return x, false, nil
		}
	}
	out = x
	for _, f := range g.Funcs {
		out, err = f.Apply(out, log)
		if err != nil {
			return x, false, err
		}
	}
	return out, true, nil
}
