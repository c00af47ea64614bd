package ingest

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vellum-lang/vellum/internal/vellumerr"
)

// Lines ingests a newline-delimited word list: one synthetic "ingest-<n>"
// entry per non-empty line, its definition set to the line's text and every
// other field stamped from overrides. Grounded on
// original_source/kirum/src/ingest/lines.rs, reworked to an id numbered by
// position among the non-empty lines, counting from 0 (the original keys by
// the literal line text, which collides on repeats)
// and to skip blank lines rather than ingesting them as empty definitions.
func Lines(path string, overrides Overrides) (WordGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return WordGraph{}, vellumerr.NewLoadError(path, err)
	}
	defer f.Close()

	working := WordGraph{Words: make(map[string]Entry)}
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		id := fmt.Sprintf("ingest-%d", n)
		working.Words[id] = overrides.apply(line, nil)
		n++
	}
	if err := sc.Err(); err != nil {
		return WordGraph{}, vellumerr.NewLoadError(path, err)
	}
	return working, nil
}
