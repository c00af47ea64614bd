// Package phon implements the phonotactic word generator: a grammar of
// named groups and lexis-type alternatives, each a PhoneticReference that
// expands into a Lemma by recursively resolving category references.
package phon

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/vellum-lang/vellum/internal/vellumerr"
	"github.com/vellum-lang/vellum/lemma"
)

// TokenKind distinguishes a literal phoneme from a category reference.
type TokenKind int

const (
	Phoneme TokenKind = iota
	Reference
)

// Token is one element of a PhoneticReference.
type Token struct {
	Kind TokenKind
	// Text is the literal phoneme string for Phoneme tokens.
	Text string
	// Ref is the uppercase group key for Reference tokens.
	Ref rune
}

// PhoneticReference is a sequence of phoneme and reference tokens.
type PhoneticReference []Token

// ParsePhoneticReference tokenizes a reference string per the space-count
// rule: zero or one space means parse character-by-character (an uppercase
// letter is a reference, anything else is a one-rune phoneme); two or more
// spaces means parse as whitespace-separated tokens, which is required
// whenever a phoneme itself spans more than one rune.
func ParsePhoneticReference(s string) (PhoneticReference, error) {
	if s == "" {
		return nil, &vellumerr.PhoneticParsingError{Reference: s, Reason: "empty reference"}
	}
	if strings.Count(s, " ") >= 2 {
		return parseSpaceSeparated(s)
	}
	return parseCharByChar(s)
}

func parseCharByChar(s string) (PhoneticReference, error) {
	var out PhoneticReference
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if unicode.IsUpper(r) {
			out = append(out, Token{Kind: Reference, Ref: r})
			continue
		}
		out = append(out, Token{Kind: Phoneme, Text: string(r)})
	}
	if len(out) == 0 {
		return nil, &vellumerr.PhoneticParsingError{Reference: s, Reason: "empty reference"}
	}
	return out, nil
}

func parseSpaceSeparated(s string) (PhoneticReference, error) {
	var out PhoneticReference
	for _, field := range strings.Fields(s) {
		runes := []rune(field)
		if len(runes) == 1 && unicode.IsUpper(runes[0]) {
			out = append(out, Token{Kind: Reference, Ref: runes[0]})
			continue
		}
		if len(runes) > 1 {
			upperCount := 0
			for _, r := range runes {
				if unicode.IsUpper(r) {
					upperCount++
				}
			}
			if upperCount > 0 && upperCount < len(runes) {
				return nil, &vellumerr.PhoneticParsingError{Reference: s, Reason: "mixed-case token " + field}
			}
		}
		out = append(out, Token{Kind: Phoneme, Text: field})
	}
	if len(out) == 0 {
		return nil, &vellumerr.PhoneticParsingError{Reference: s, Reason: "empty reference"}
	}
	return out, nil
}

// LexPhonology is the stochastic word-generation grammar: group references
// (single uppercase letter → alternatives) and lexis-type entry points
// (name → alternatives).
type LexPhonology struct {
	Groups     map[rune][]PhoneticReference
	LexisTypes map[string][]PhoneticReference
}

// New returns an empty LexPhonology ready for loader population.
func New() LexPhonology {
	return LexPhonology{
		Groups:     make(map[rune][]PhoneticReference),
		LexisTypes: make(map[string][]PhoneticReference),
	}
}

// CreateWord looks up typeKey in LexisTypes, picks one alternative
// uniformly at random, and resolves it into a Lemma. A reference that
// resolves to nothing (missing key or empty alternative list) collapses
// the entire attempt to ok=false, as does an empty result or an unknown
// typeKey.
func (p LexPhonology) CreateWord(typeKey string, rng *rand.Rand) (lemma.Lemma, bool) {
	alts, ok := p.LexisTypes[typeKey]
	if !ok || len(alts) == 0 {
		return lemma.Lemma{}, false
	}
	ref := alts[rng.Intn(len(alts))]
	var l lemma.Lemma
	if !p.resolve(ref, rng, &l) {
		return lemma.Lemma{}, false
	}
	if l.Empty() {
		return lemma.Lemma{}, false
	}
	return l, true
}

// resolve walks ref's tokens left to right, pushing phonemes and recursing
// into reference alternatives, accumulating onto acc. Returns false if any
// reference in the chain cannot be resolved.
func (p LexPhonology) resolve(ref PhoneticReference, rng *rand.Rand, acc *lemma.Lemma) bool {
	for _, tok := range ref {
		switch tok.Kind {
		case Phoneme:
			*acc = acc.PushChar(tok.Text)
		case Reference:
			alts, ok := p.Groups[tok.Ref]
			if !ok || len(alts) == 0 {
				return false
			}
			next := alts[rng.Intn(len(alts))]
			if !p.resolve(next, rng, acc) {
				return false
			}
		}
	}
	return true
}
