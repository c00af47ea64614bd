package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vellum-lang/vellum/internal/vellumerr"
	"github.com/vellum-lang/vellum/lemma"
	"github.com/sirupsen/logrus"
)

// KeyType selects whether a bare string found while walking a JSON word
// list becomes a definition or a literal word surface form.
type KeyType int

const (
	Definitions KeyType = iota
	Words
)

// UnmarshalJSON accepts "definitions" or "words", defaulting to Definitions
// for any other value (including the zero value).
func (k *KeyType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "words" {
		*k = Words
	} else {
		*k = Definitions
	}
	return nil
}

type jsonIngestFile struct {
	KeysAre KeyType `json:"keys_are"`
	Words   []any   `json:"words"`
}

// JSON ingests a generic third-party JSON word list — nested objects,
// arrays, and strings — into a WordGraph, applying overrides to every
// produced entry. Grounded on original_source/kirum/src/ingest/json.rs
// (the ingest_value/insert_into_map recursion).
//
// Shape: {"keys_are": "definitions"|"words", "words": [...]}. A bare string
// becomes a standalone entry (or a child of the current parent, if any). An
// object's string-valued keys form parent:child relationships; a value
// prefixed with "!" names the transform connecting child to parent instead
// of introducing a new intermediate node. An object value of
// {"!etymology": "transform-name"} attached alongside a nested object marks
// that nested object's root as a child of the current parent via the named
// transform, rather than via the implicit parent:child rule.
func JSON(data []byte, overrides Overrides, log *logrus.Entry) (WordGraph, error) {
	var f jsonIngestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return WordGraph{}, vellumerr.NewLoadError("", err)
	}
	working := WordGraph{Words: make(map[string]Entry)}
	for _, w := range f.Words {
		ingestValue(overrides, f.KeysAre, nil, &working, w, log)
	}
	return working, nil
}

// ingestValue marks createdRoot whenever a key's own match arm already
// inserted an entry for that key (whether via the "!transform" string
// shorthand or the {"!etymology": ...} object form), so the unconditional
// fallback insert below never clobbers a transform-tagged edge with a bare
// parent:child one for the same key.
func ingestValue(overrides Overrides, keyType KeyType, parent *string, graph *WordGraph, val any, log *logrus.Entry) {
	switch v := val.(type) {
	case string:
		insertIntoMap(overrides, keyType, parent, nil, v, graph)
	case []any:
		for _, item := range v {
			ingestValue(overrides, keyType, parent, graph, item, log)
		}
	case map[string]any:
		for wordKey, wordVal := range v {
			createdRoot := false
			switch wv := wordVal.(type) {
			case string:
				if strings.Contains(wordKey, "!") {
					continue
				}
				if parent != nil {
					if ety, ok := strings.CutPrefix(wv, "!"); ok {
						insertIntoMap(overrides, keyType, parent, &ety, wordKey, graph)
						createdRoot = true
					} else {
						key := wordKey
						insertIntoMap(overrides, keyType, &key, nil, wv, graph)
					}
				} else {
					if _, ok := strings.CutPrefix(wv, "!"); ok {
						if log != nil {
							log.Errorf("found an etymology key %q but the object is root, so no etymology is possible", wv)
						}
						continue
					}
					key := wordKey
					insertIntoMap(overrides, keyType, &key, nil, wv, graph)
				}
			case map[string]any:
				for childKey, childVal := range wv {
					if childKey != "!etymology" {
						continue
					}
					transName, ok := childVal.(string)
					if !ok {
						continue
					}
					if parent == nil {
						if log != nil {
							log.Errorf("found a map with '!etymology' key and value %s, but at the root with no parent", transName)
						}
						continue
					}
					key := wordKey
					insertIntoMap(overrides, keyType, parent, &transName, key, graph)
					createdRoot = true
				}
				key := wordKey
				ingestValue(overrides, keyType, &key, graph, wordVal, log)
			default:
				key := wordKey
				ingestValue(overrides, keyType, &key, graph, wordVal, log)
			}
			if !createdRoot {
				ingestValue(overrides, keyType, parent, graph, wordKey, log)
			}
		}
	default:
		if log != nil {
			log.Error("json ingest: a word list entry must be a string, array, or object")
		}
	}
}

// insertIntoMap mirrors the Rust original's function of the same name: it
// builds the etymology edge (if any), then stores the entry keyed by
// "ingest-<input_word>".
func insertIntoMap(overrides Overrides, keyType KeyType, parent, parentTransform *string, inputWord string, graph *WordGraph) {
	var ety *Etymology
	if parent != nil {
		edge := Edge{Etymon: fmt.Sprintf("ingest-%s", *parent)}
		if parentTransform != nil {
			edge.Transforms = []string{*parentTransform}
		}
		ety = &Etymology{Etymons: []Edge{edge}}
	}
	id := fmt.Sprintf("ingest-%s", inputWord)
	entry := overrides.apply("", ety)
	switch keyType {
	case Words:
		w := lemma.New(inputWord)
		entry.Word = &w
	default:
		entry.Definition = inputWord
	}
	graph.Words[id] = entry
}
