package render

import (
	"path/filepath"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/vellum-lang/vellum/lexicon"
	"github.com/vellum-lang/vellum/script"
)

// Template renders a handlebars template file over the computed word list.
// Each entry in helperFiles is a Starlark script registered as a template
// helper under its basename (without extension), taking two string
// arguments and returning a bool, mirroring the string_eq helper in
// original_source/kirum/src/tmpl.rs.
func Template(entries []lexicon.Entry, templateFile string, helperFiles []string) (string, error) {
	views := make([]wordView, len(entries))
	for i, e := range entries {
		views[i] = toView(e)
	}

	tpl, err := raymond.ParseFile(templateFile)
	if err != nil {
		return "", err
	}

	for _, helperPath := range helperFiles {
		helperPath := helperPath
		name := strings.TrimSuffix(filepath.Base(helperPath), filepath.Ext(helperPath))
		tpl.RegisterHelper(name, func(a, b string) bool {
			ok, err := script.RunBoolHelper(helperPath, a, b)
			if err != nil {
				return false
			}
			return ok
		})
	}

	return tpl.Exec(map[string]any{"words": views})
}
