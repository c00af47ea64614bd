package lemma

import (
	"testing"
)

func TestGraphemeRoundtrip(t *testing.T) {
	cases := []string{"wrh", "café", "a\U0001F469‍family"}
	for _, s := range cases {
		l := New(s)
		if l.String() != s {
			t.Errorf("New(%q).String() = %q, want %q", s, l.String(), s)
		}
		again := New(l.String())
		if again.Len() != l.Len() {
			t.Errorf("roundtrip token count mismatch for %q: %d vs %d", s, again.Len(), l.Len())
		}
	}
}

func TestEmptyLemma(t *testing.T) {
	var l Lemma
	if !l.Empty() {
		t.Error("zero-value Lemma should be empty")
	}
	if l.Len() != 0 {
		t.Errorf("zero-value Lemma.Len() = %d, want 0", l.Len())
	}
}

func TestReplaceWhere(t *testing.T) {
	l := FromTokens([]string{"a", "b", "a", "b", "a"})
	if got := l.Replace("a", "x", First).String(); got != "xbaba" {
		t.Errorf("First: got %q", got)
	}
	if got := l.Replace("a", "x", Last).String(); got != "ababx" {
		t.Errorf("Last: got %q", got)
	}
	if got := l.Replace("a", "x", All).String(); got != "xbxbx" {
		t.Errorf("All: got %q", got)
	}
}

func TestRemoveCollapses(t *testing.T) {
	l := FromTokens([]string{"w", "r", "h"})
	got := l.Remove("r", All)
	if got.String() != "wh" {
		t.Errorf("Remove = %q, want %q", got.String(), "wh")
	}
	if got.Len() != 2 {
		t.Errorf("Remove left %d tokens, want 2", got.Len())
	}
}

func TestPrefixPostfix(t *testing.T) {
	root := New("warh")
	out := root.AddPrefix(New("au"))
	if out.String() != "auwarh" {
		t.Errorf("AddPrefix = %q, want %q", out.String(), "auwarh")
	}
	out2 := New("maark").AddPostfix(New("warh"))
	if out2.String() != "maarkwarh" {
		t.Errorf("AddPostfix = %q, want %q", out2.String(), "maarkwarh")
	}
}

func TestDoubleDeDouble(t *testing.T) {
	l := FromTokens([]string{"k", "a", "r", "h"})
	doubled := l.Double("a", First)
	if doubled.String() != "kaarh" {
		t.Errorf("Double = %q, want %q", doubled.String(), "kaarh")
	}
	back := doubled.DeDouble("a", First)
	if back.String() != "karh" {
		t.Errorf("DeDouble = %q, want %q", back.String(), "karh")
	}
}

func TestModifyWithArray(t *testing.T) {
	pre := FromTokens([]string{"w", "r", "h"})
	out := pre.ModifyWithArray([]ArraySpec{Idx(0), Lit("a"), Idx(1), Idx(2)})
	if out.String() != "warh" {
		t.Errorf("ModifyWithArray = %q, want %q", out.String(), "warh")
	}
	// out-of-range indices are skipped, not errors
	out2 := pre.ModifyWithArray([]ArraySpec{Idx(0), Idx(99)})
	if out2.String() != "w" {
		t.Errorf("ModifyWithArray with bad index = %q, want %q", out2.String(), "w")
	}
}

func TestMatchReplace(t *testing.T) {
	l := New("wrh")
	out := l.MatchReplace(New("r"), New("rr"), nil)
	if out.String() != "wrrh" {
		t.Errorf("MatchReplace = %q, want %q", out.String(), "wrrh")
	}
}

func TestMatchReplaceBadRegexLogsAndReturnsUnchanged(t *testing.T) {
	l := New("wrh")
	var logged string
	out := l.MatchReplace(New("("), New("x"), func(format string, args ...any) {
		logged = format
	})
	if out.String() != "wrh" {
		t.Errorf("MatchReplace with bad regex = %q, want unchanged %q", out.String(), "wrh")
	}
	if logged == "" {
		t.Error("expected a log call on regex-compile failure")
	}
}
