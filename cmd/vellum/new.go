package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/ingest"
	"github.com/vellum-lang/vellum/lemma"
	"github.com/vellum-lang/vellum/lexis"
	"github.com/vellum-lang/vellum/transform"
)

func init() {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new language project with the specified name",
		Args:  cobra.ExactArgs(1),
		RunE:  runNew,
	}
	rootCmd.AddCommand(cmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	base := name
	treeDir := filepath.Join(base, "tree")
	etyDir := filepath.Join(base, "etymology")
	if err := os.MkdirAll(treeDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(etyDir, 0o755); err != nil {
		return err
	}

	transforms := ingest.TransformGraph{
		Transforms: map[string]ingest.RawTransform{
			"of-from-latin": {
				Transforms: []transform.Func{
					transform.MatchReplace("exe", "esse"),
					transform.MatchReplace("um", "e"),
				},
			},
			"latin-from-verb": {
				Transforms: []transform.Func{
					transform.MatchReplace("ere", "plum"),
					transform.Prefix("ex"),
				},
			},
		},
	}

	verbWord := lemma.New("emere")
	words := ingest.WordGraph{
		Words: map[string]ingest.Entry{
			"latin_verb": {
				Word:       &verbWord,
				LexisType:  "word",
				Language:   "Latin",
				Definition: "To buy, remove",
				POS:        lexis.POSVerb,
				Archaic:    true,
			},
			"latin_example": {
				LexisType:  "word",
				Language:   "Latin",
				Definition: "an instance, model, example",
				POS:        lexis.POSNoun,
				Archaic:    true,
				Tags:       []string{"example", "default"},
				Etymology: &ingest.Etymology{
					Etymons: []ingest.Edge{
						{Etymon: "latin_verb", Transforms: []string{"latin-from-verb"}},
					},
				},
				Derivatives: []ingest.Derivative{
					{
						Lexis: ingest.Entry{
							Language:   "Old French",
							Definition: "model, example",
							POS:        lexis.POSNoun,
							Archaic:    true,
						},
						Transforms: []string{"of-from-latin"},
					},
				},
			},
		},
	}
	treeData, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return err
	}
	etyData, err := json.MarshalIndent(transforms, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(treeDir, name+".json"), treeData, 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(etyDir, "ety.json"), etyData, 0o644)
}
