package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/ingest"
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/transform"
)

var daughterFlags = struct {
	directory *string
	etymology *string
	ancestor  *string
	name      *string
	output    *string
	groupBy   *string
}{}

func init() {
	parent := &cobra.Command{
		Use:   "generate",
		Short: "Generate a language tree from another source",
	}

	daughterCmd := &cobra.Command{
		Use:   "daughter",
		Short: "Generate a daughter language from an existing language in a graph",
		RunE:  runGenerateDaughter,
	}
	daughterFlags.directory = daughterCmd.Flags().StringP("directory", "d", "", "path to a directory to read in all transform and graph files")
	daughterFlags.etymology = daughterCmd.Flags().StringP("daughter-etymology", "e", "", "path to a globals.json-shaped file of conditional transforms for the daughter language")
	daughterFlags.ancestor = daughterCmd.Flags().StringP("ancestor", "a", "", "the ancestor language, as named in the \"language\" field of the graph")
	daughterFlags.name = daughterCmd.Flags().StringP("name", "n", "", "the name of the daughter language")
	daughterFlags.output = daughterCmd.Flags().StringP("output", "o", "", "output file (or directory prefix, if --group-by is set)")
	daughterFlags.groupBy = daughterCmd.Flags().StringP("group-by", "b", "", "group output into separate files: word|type|archaic")
	daughterCmd.MarkFlagRequired("directory")
	daughterCmd.MarkFlagRequired("daughter-etymology")
	daughterCmd.MarkFlagRequired("ancestor")
	daughterCmd.MarkFlagRequired("name")
	daughterCmd.MarkFlagRequired("output")
	parent.AddCommand(daughterCmd)

	rootCmd.AddCommand(parent)
}

func runGenerateDaughter(cmd *cobra.Command, args []string) error {
	tree, err := ingest.Directory(*daughterFlags.directory, newRand(), newLog())
	if err != nil {
		return err
	}
	if err := tree.Compute(); err != nil {
		return err
	}

	data, err := os.ReadFile(*daughterFlags.etymology)
	if err != nil {
		return err
	}
	var globalsFile ingest.GlobalsFile
	if err := json.Unmarshal(data, &globalsFile); err != nil {
		return err
	}

	// The daughter-language transform set is built by dropping the
	// etymon-side guard each GlobalTransform carries: GenerateDaughterLanguage
	// only has a single node in scope per iteration, with no etymon context
	// to check, so only the target-lexis guard applies here.
	transforms := make([]transform.Transform, len(globalsFile.Transforms))
	for i, raw := range globalsFile.Transforms {
		g := raw.ToGlobalTransform()
		transforms[i] = transform.Transform{Name: fmt.Sprintf("daughter-%d", i), Guard: &g.LexMatch, Funcs: g.Funcs}
	}

	ancestor := *daughterFlags.ancestor
	selectFn := func(l lexis.Lexis) bool { return l.Language == ancestor }

	created, err := tree.GenerateDaughterLanguage(*daughterFlags.name, transforms, selectFn, nil)
	if err != nil {
		return err
	}

	return writeDaughterOutput(created, *daughterFlags.output, *daughterFlags.groupBy)
}

func writeDaughterOutput(words []lexis.Lexis, output, groupBy string) error {
	if groupBy == "" {
		return writeDaughterFile(output, words)
	}

	groups := map[string][]lexis.Lexis{}
	for _, w := range words {
		var key string
		switch groupBy {
		case "word":
			key = w.Word.String()
		case "type":
			key = w.LexisType
		case "archaic":
			key = fmt.Sprintf("%v", w.Archaic)
		default:
			return fmt.Errorf("unknown --group-by value %q", groupBy)
		}
		groups[key] = append(groups[key], w)
	}
	for key, ws := range groups {
		path := filepath.Join(output, key+".json")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := writeDaughterFile(path, ws); err != nil {
			return err
		}
	}
	return nil
}

func writeDaughterFile(path string, words []lexis.Lexis) error {
	wordMap := make(map[string]ingest.Entry, len(words))
	for i, w := range words {
		entry := ingest.Entry{
			Word:       w.Word,
			LexisType:  w.LexisType,
			Language:   w.Language,
			Definition: w.Definition,
			POS:        w.POS,
			Archaic:    w.Archaic,
			Tags:       w.TagSet(),
		}
		wordMap[fmt.Sprintf("daughter-%d", i)] = entry
	}
	data, err := json.MarshalIndent(ingest.WordGraph{Words: wordMap}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
