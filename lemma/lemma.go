// Package lemma implements the grapheme-safe string type used for every
// word surface form in the engine. A Lemma is a sequence of tokens, each
// one Unicode extended grapheme cluster (or, when built from an explicit
// token list, whatever the caller supplied verbatim) — so letter-level
// rewrites never split a multi-codepoint character such as a combining
// diacritic or an emoji sequence.
package lemma

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// sep is the reserved zero-width delimiter used to join tokens into the
// internal delimited form consumed by MatchReplace. It can never appear in
// a grapheme cluster produced by uniseg, so it is safe as a separator.
const sep = "​"

// Where selects which occurrence(s) an operation acts on.
type Where int

const (
	First Where = iota
	All
	Last
)

// Lemma is an ordered sequence of grapheme tokens.
type Lemma struct {
	tokens []string
}

// New splits s into Unicode extended grapheme clusters.
func New(s string) Lemma {
	if s == "" {
		return Lemma{}
	}
	var tokens []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		tokens = append(tokens, gr.Str())
	}
	return Lemma{tokens: tokens}
}

// FromTokens builds a Lemma from an ordered sequence of tokens taken
// verbatim, without grapheme splitting. Used when deserializing the array
// form of a wire-format word.
func FromTokens(tokens []string) Lemma {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return Lemma{tokens: out}
}

// Len returns the grapheme count.
func (l Lemma) Len() int { return len(l.tokens) }

// Empty reports whether the Lemma has zero length.
func (l Lemma) Empty() bool { return len(l.tokens) == 0 }

// Tokens returns the underlying token slice. Callers must not mutate it.
func (l Lemma) Tokens() []string { return l.tokens }

// String renders the display form: tokens concatenated with no delimiter.
func (l Lemma) String() string { return strings.Join(l.tokens, "") }

// delimited joins tokens with sep, the form MatchReplace operates on.
func (l Lemma) delimited() string { return strings.Join(l.tokens, sep) }

// fromDelimited reverses delimited, dropping any empty tokens produced by
// doubled delimiters so the "no two consecutive delimiters" invariant holds.
func fromDelimited(s string) Lemma {
	if s == "" {
		return Lemma{}
	}
	parts := strings.Split(s, sep)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return Lemma{tokens: tokens}
}

// Push appends a single token.
func (l Lemma) Push(token string) Lemma {
	tokens := append(append([]string{}, l.tokens...), token)
	return Lemma{tokens: tokens}
}

// PushChar grapheme-splits s and appends its tokens.
func (l Lemma) PushChar(s string) Lemma {
	tokens := append([]string{}, l.tokens...)
	for _, t := range New(s).tokens {
		tokens = append(tokens, t)
	}
	return Lemma{tokens: tokens}
}

// matchIndices returns the token positions matching old, in the order requested
// by where: for Last the search runs over the reversed stream.
func (l Lemma) matchIndices(old string, where Where) []int {
	var idxs []int
	for i, t := range l.tokens {
		if t == old {
			idxs = append(idxs, i)
		}
	}
	switch where {
	case First:
		if len(idxs) > 1 {
			idxs = idxs[:1]
		}
	case Last:
		if len(idxs) > 1 {
			idxs = idxs[len(idxs)-1:]
		}
	case All:
		// keep all
	}
	return idxs
}

// Replace performs token-level substring replacement. old and new are
// treated as single tokens; where selects First, All, or Last occurrence.
func (l Lemma) Replace(old, new string, where Where) Lemma {
	idxs := l.matchIndices(old, where)
	if len(idxs) == 0 {
		return l
	}
	set := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		set[i] = true
	}
	tokens := make([]string, 0, len(l.tokens))
	for i, t := range l.tokens {
		if set[i] {
			if new != "" {
				tokens = append(tokens, new)
			}
			continue
		}
		tokens = append(tokens, t)
	}
	return Lemma{tokens: tokens}
}

// Remove deletes occurrences of a token, collapsing the gap.
func (l Lemma) Remove(char string, where Where) Lemma {
	return l.Replace(char, "", where)
}

// AddPrefix prepends p's tokens.
func (l Lemma) AddPrefix(p Lemma) Lemma {
	tokens := append(append([]string{}, p.tokens...), l.tokens...)
	return Lemma{tokens: tokens}
}

// AddPostfix appends p's tokens.
func (l Lemma) AddPostfix(p Lemma) Lemma {
	tokens := append(append([]string{}, l.tokens...), p.tokens...)
	return Lemma{tokens: tokens}
}

// Double inserts an extra token equal to letter adjacent to the chosen
// occurrence(s).
func (l Lemma) Double(letter string, where Where) Lemma {
	idxs := l.matchIndices(letter, where)
	if len(idxs) == 0 {
		return l
	}
	set := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		set[i] = true
	}
	tokens := make([]string, 0, len(l.tokens)+len(idxs))
	for i, t := range l.tokens {
		tokens = append(tokens, t)
		if set[i] {
			tokens = append(tokens, letter)
		}
	}
	return Lemma{tokens: tokens}
}

// DeDouble removes one of two adjacent identical tokens equal to letter.
func (l Lemma) DeDouble(letter string, where Where) Lemma {
	var pairIdxs []int
	for i := 0; i+1 < len(l.tokens); i++ {
		if l.tokens[i] == letter && l.tokens[i+1] == letter {
			pairIdxs = append(pairIdxs, i)
		}
	}
	switch where {
	case First:
		if len(pairIdxs) > 1 {
			pairIdxs = pairIdxs[:1]
		}
	case Last:
		if len(pairIdxs) > 1 {
			pairIdxs = pairIdxs[len(pairIdxs)-1:]
		}
	}
	if len(pairIdxs) == 0 {
		return l
	}
	drop := make(map[int]bool, len(pairIdxs))
	for _, i := range pairIdxs {
		drop[i] = true
	}
	tokens := make([]string, 0, len(l.tokens))
	for i, t := range l.tokens {
		if drop[i] {
			continue
		}
		tokens = append(tokens, t)
	}
	return Lemma{tokens: tokens}
}

// MatchReplace runs a regex substitution over the delimited internal form
// and re-splits the result on the delimiter. old and new must have been
// built through the same grapheme pipeline (e.g. via New), or a delimiter
// mismatch silently produces no match. A regex-compile failure logs and
// returns l unchanged.
func (l Lemma) MatchReplace(old, new Lemma, logf func(format string, args ...any)) Lemma {
	re, err := regexp.Compile(old.delimited())
	if err != nil {
		if logf != nil {
			logf("match_replace: compiling %q: %v", old.delimited(), err)
		}
		return l
	}
	result := re.ReplaceAllLiteralString(l.delimited(), new.delimited())
	return fromDelimited(result)
}

// ArraySpec is one element of a modify_with_array rewrite: either a literal
// token or a zero-based index into the pre-image Lemma.
type ArraySpec struct {
	Literal string
	Index   *int
}

// Lit builds a literal ArraySpec.
func Lit(token string) ArraySpec { return ArraySpec{Literal: token} }

// Idx builds a positional ArraySpec.
func Idx(i int) ArraySpec { return ArraySpec{Index: &i} }

// ModifyWithArray rewrites the Lemma by concatenating, in order, each spec:
// a literal token verbatim, or the pre-image token at the given index.
// Out-of-range indices are silently skipped.
func (l Lemma) ModifyWithArray(specs []ArraySpec) Lemma {
	tokens := make([]string, 0, len(specs))
	for _, s := range specs {
		if s.Index != nil {
			i := *s.Index
			if i < 0 || i >= len(l.tokens) {
				continue
			}
			tokens = append(tokens, l.tokens[i])
			continue
		}
		tokens = append(tokens, s.Literal)
	}
	return Lemma{tokens: tokens}
}

// GoString supports %#v debug printing.
func (l Lemma) GoString() string {
	return fmt.Sprintf("Lemma(%q)", l.String())
}
