// Package script hosts user-defined rewrite scripts written in Starlark.
// Each evaluation gets a fresh thread and global dict — no state is shared
// across calls — mirroring the fresh-scope contract the engine requires of
// any scripted transform host.
package script

import (
	"os"
	"sort"

	"go.starlark.net/starlark"

	"github.com/vellum-lang/vellum/internal/vellumerr"
	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
)

// Run loads the Starlark file at path, binds the current Lexis's fields as
// predeclared globals, and evaluates it. The script must assign its answer
// to a global named `result`: either a string (re-graphemized into a new
// Lemma) or a list of strings (used as tokens verbatim). Any other shape,
// or an evaluation error, is reported through the returned error, which
// always implements vellumerr.TransformError.
func Run(path string, x lexis.Lexis) (lemma.Lemma, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return lemma.Lemma{}, &vellumerr.EvalError{File: path, Err: err}
	}

	thread := &starlark.Thread{Name: "vellum-transform"}
	globals, err := starlark.ExecFile(thread, path, src, predeclared(x))
	if err != nil {
		return lemma.Lemma{}, &vellumerr.EvalError{File: path, Err: err}
	}

	result, ok := globals["result"]
	if !ok {
		return lemma.Lemma{}, &vellumerr.ScriptReturnValueError{File: path, Got: "no result binding"}
	}

	switch v := result.(type) {
	case starlark.String:
		return lemma.New(string(v)), nil
	case *starlark.List:
		tokens := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			s, ok := v.Index(i).(starlark.String)
			if !ok {
				return lemma.Lemma{}, &vellumerr.ScriptReturnValueError{File: path, Got: "list with non-string element"}
			}
			tokens = append(tokens, string(s))
		}
		return lemma.FromTokens(tokens), nil
	default:
		return lemma.Lemma{}, &vellumerr.ScriptReturnValueError{File: path, Got: result.Type()}
	}
}

// RunBoolHelper loads the Starlark file at path and evaluates it with `a`
// and `b` predeclared as strings, expecting a boolean `result` global.
// Used by render.Template to back template helpers such as string_eq,
// mirroring the handlebars helper registration in
// original_source/kirum/src/tmpl.rs.
func RunBoolHelper(path, a, b string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, &vellumerr.EvalError{File: path, Err: err}
	}

	thread := &starlark.Thread{Name: "vellum-template-helper"}
	predeclared := starlark.StringDict{
		"a": starlark.String(a),
		"b": starlark.String(b),
	}
	globals, err := starlark.ExecFile(thread, path, src, predeclared)
	if err != nil {
		return false, &vellumerr.EvalError{File: path, Err: err}
	}

	result, ok := globals["result"]
	if !ok {
		return false, &vellumerr.ScriptReturnValueError{File: path, Got: "no result binding"}
	}
	b2, ok := result.(starlark.Bool)
	if !ok {
		return false, &vellumerr.ScriptReturnValueError{File: path, Got: result.Type()}
	}
	return bool(b2), nil
}

// predeclared builds the binding set exposed to every script: language,
// tags, metadata, pos, lemma_array, lemma_string.
func predeclared(x lexis.Lexis) starlark.StringDict {
	tags := x.TagSet()
	tagValues := make([]starlark.Value, 0, len(tags))
	for _, t := range tags {
		tagValues = append(tagValues, starlark.String(t))
	}

	metaKeys := make([]string, 0, len(x.HistoricalMetadata))
	for k := range x.HistoricalMetadata {
		metaKeys = append(metaKeys, k)
	}
	sort.Strings(metaKeys)
	metadata := starlark.NewDict(len(metaKeys))
	for _, k := range metaKeys {
		metadata.SetKey(starlark.String(k), starlark.String(x.HistoricalMetadata[k]))
	}

	var lemmaArray []starlark.Value
	var lemmaString string
	if x.Word != nil {
		for _, tok := range x.Word.Tokens() {
			lemmaArray = append(lemmaArray, starlark.String(tok))
		}
		lemmaString = x.Word.String()
	}

	return starlark.StringDict{
		"language":     starlark.String(x.Language),
		"tags":         starlark.NewList(tagValues),
		"metadata":     metadata,
		"pos":          starlark.String(x.POS.String()),
		"lemma_array":  starlark.NewList(lemmaArray),
		"lemma_string": starlark.String(lemmaString),
	}
}
