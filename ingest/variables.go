package ingest

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/vellum-lang/vellum/internal/vellumerr"
)

// Variables is a flat string→string substitution table loaded from a TOML
// file, used to resolve {{placeholder}} references inside a Lexis's
// definition before handlebars rendering (SPEC_FULL.md §4.14, mirroring the
// -v/--variables flag on kirum render).
type Variables map[string]string

// LoadVariables parses path as TOML into a flat Variables map.
func LoadVariables(path string) (Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vellumerr.NewLoadError(path, err)
	}
	var v Variables
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, vellumerr.NewLoadError(path, err)
	}
	return v, nil
}

// Resolve replaces every "{{key}}" occurrence in s with its Variables value.
// An unresolved placeholder is left untouched.
func (v Variables) Resolve(s string) string {
	if len(v) == 0 {
		return s
	}
	for key, val := range v {
		s = strings.ReplaceAll(s, "{{"+key+"}}", val)
	}
	return s
}
