package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vellum-lang/vellum/internal/logging"
	"github.com/vellum-lang/vellum/internal/vellumerr"
	"github.com/vellum-lang/vellum/lexicon"
	"github.com/vellum-lang/vellum/phon"
	"github.com/vellum-lang/vellum/transform"
)

// discover walks the three subdirectory conventions from spec.md §6: dir/tree,
// dir/etymology, dir/phonetics, each matched with a "**/*.json" doublestar
// glob, grounded on WalkDir+check_path in files.rs. A missing subdirectory
// yields no paths for it rather than an error.
func discover(dir string) (trees, etymologies, phonetics []string, err error) {
	collect := func(sub string) ([]string, error) {
		root := filepath.Join(dir, sub)
		if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
			return nil, nil
		}
		matches, err := doublestar.Glob(os.DirFS(root), "**/*.json")
		if err != nil {
			return nil, vellumerr.NewLoadError(root, err)
		}
		sort.Strings(matches)
		out := make([]string, len(matches))
		for i, m := range matches {
			out[i] = filepath.Join(root, m)
		}
		return out, nil
	}

	if trees, err = collect("tree"); err != nil {
		return
	}
	if etymologies, err = collect("etymology"); err != nil {
		return
	}
	if phonetics, err = collect("phonetics"); err != nil {
		return
	}
	return
}

// readAll reads every path in paths concurrently (the one place the loader
// uses concurrency: file I/O, never graph mutation, per spec.md §5) and
// returns their contents in the same order.
func readAll(paths []string) ([][]byte, error) {
	out := make([][]byte, len(paths))
	g, _ := errgroup.WithContext(context.Background())
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			b, err := os.ReadFile(p)
			if err != nil {
				return vellumerr.NewLoadError(p, err)
			}
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Directory loads a project directory per the conventions and merge rules
// of spec.md §6: tree/*.json, etymology/*.json, phonetics/*.json, and an
// optional top-level globals.json. rng and log may be nil to use the
// lexicon package's defaults.
func Directory(dir string, rng *rand.Rand, log *logrus.Entry) (*lexicon.LanguageTree, error) {
	if log == nil {
		log = logrus.NewEntry(logging.Discard())
	}

	treePaths, etyPaths, phonPaths, err := discover(dir)
	if err != nil {
		return nil, err
	}

	transformMap, err := loadTransforms(etyPaths, log)
	if err != nil {
		return nil, err
	}

	entries, err := loadTrees(treePaths, log)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, vellumerr.NewLoadError(dir, fmt.Errorf("no tree data found under %s", dir))
	}

	phonology, err := loadPhonology(phonPaths, log)
	if err != nil {
		return nil, err
	}

	globals, err := loadGlobals(filepath.Join(dir, "globals.json"), log)
	if err != nil {
		return nil, err
	}

	return assemble(entries, transformMap, phonology, globals, rng, log)
}

func loadTransforms(paths []string, log *logrus.Entry) (map[string]RawTransform, error) {
	contents, err := readAll(paths)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]RawTransform)
	for i, data := range contents {
		var g TransformGraph
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, vellumerr.NewLoadError(paths[i], err)
		}
		log.Debugf("read transform file: %s", paths[i])
		for name, t := range g.Transforms {
			merged[name] = t
		}
	}
	return merged, nil
}

// loadTrees reads every tree file and lifts derivatives into synthetic
// <parent>-autoderive-<n> entries before returning the flat id → Entry map.
// A duplicate top-level id across files is a fatal load error, per spec.md §6.
func loadTrees(paths []string, log *logrus.Entry) (map[string]Entry, error) {
	contents, err := readAll(paths)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]Entry)
	for i, data := range contents {
		var g WordGraph
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, vellumerr.NewLoadError(paths[i], err)
		}
		log.Debugf("read tree file: %s", paths[i])

		names := make([]string, 0, len(g.Words))
		for name := range g.Words {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			node := g.Words[name]
			for n, der := range node.Derivatives {
				derID := fmt.Sprintf("%s-autoderive-%d", name, n)
				derEntry := der.Lexis
				derEntry.Etymology = &Etymology{Etymons: []Edge{{Etymon: name, Transforms: der.Transforms}}}
				if _, exists := merged[derID]; exists {
					return nil, vellumerr.NewLoadError(paths[i], fmt.Errorf("key %q found multiple times", derID))
				}
				merged[derID] = derEntry
			}
		}
		for _, name := range names {
			if _, exists := merged[name]; exists {
				return nil, vellumerr.NewLoadError(paths[i], fmt.Errorf("key %q found multiple times", name))
			}
			merged[name] = g.Words[name]
		}
	}
	return merged, nil
}

func loadPhonology(paths []string, log *logrus.Entry) (phon.LexPhonology, error) {
	p := phon.New()
	contents, err := readAll(paths)
	if err != nil {
		return p, err
	}
	for i, data := range contents {
		var f PhonologyFile
		if err := json.Unmarshal(data, &f); err != nil {
			return p, vellumerr.NewLoadError(paths[i], err)
		}
		log.Debugf("read phonetics file: %s", paths[i])
		if err := buildPhonology(p, f); err != nil {
			return p, vellumerr.NewLoadError(paths[i], err)
		}
	}
	return p, nil
}

func loadGlobals(path string, log *logrus.Entry) ([]transform.GlobalTransform, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, vellumerr.NewLoadError(path, err)
	}
	var f GlobalsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, vellumerr.NewLoadError(path, err)
	}
	log.Debugf("read globals file: %s", path)
	out := make([]transform.GlobalTransform, len(f.Transforms))
	for i, raw := range f.Transforms {
		out[i] = raw.ToGlobalTransform()
	}
	return out, nil
}

// assemble builds the LanguageTree from the merged entry and transform maps,
// grounded on add_single_word/find_transforms in files.rs: every node is
// added, etymology-bearing nodes are connected with their resolved transform
// list (a missing etymon, node, or transform reference is a fatal load
// error), and entries with no etymology are simply added standalone.
func assemble(entries map[string]Entry, transformMap map[string]RawTransform, phonology phon.LexPhonology, globals []transform.GlobalTransform, rng *rand.Rand, log *logrus.Entry) (*lexicon.LanguageTree, error) {
	runtimeTransforms := make(map[string]transform.Transform, len(transformMap)+1)
	for name, rt := range transformMap {
		runtimeTransforms[name] = rt.ToTransform(name)
	}
	if _, ok := runtimeTransforms["loanword"]; !ok {
		runtimeTransforms["loanword"] = transform.Transform{Name: "loanword", Funcs: []transform.Func{transform.Loanword()}}
	}

	tree := lexicon.New(runtimeTransforms, phonology, globals, rng, log)

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := entries[id]
		node := entry.ToLexis(id)

		if entry.Etymology == nil {
			if !tree.Contains(node) {
				tree.AddLexis(node)
			}
			continue
		}

		for _, e := range entry.Etymology.Etymons {
			etymonEntry, ok := entries[e.Etymon]
			if !ok {
				return nil, vellumerr.NewLoadError(id, fmt.Errorf("etymon %q does not exist", e.Etymon))
			}
			etymon := etymonEntry.ToLexis(e.Etymon)

			funcs, err := findTransforms(e.Transforms, transformMap)
			if err != nil {
				return nil, vellumerr.NewLoadError(id, err)
			}
			tree.ConnectEtymology(node, etymon, funcs, e.AggOrder)
		}
	}

	return tree, nil
}

// findTransforms resolves a list of named transforms, or the default
// unconditional Loanword primitive when none are specified — mirroring
// add_single_word's fallback in files.rs.
func findTransforms(names []string, transformMap map[string]RawTransform) ([]string, error) {
	if len(names) == 0 {
		return []string{"loanword"}, nil
	}
	for _, n := range names {
		if _, ok := transformMap[n]; !ok {
			return nil, fmt.Errorf("transform %q does not exist", n)
		}
	}
	return names, nil
}
