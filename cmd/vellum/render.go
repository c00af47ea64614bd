package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/ingest"
	"github.com/vellum-lang/vellum/lexicon"
	"github.com/vellum-lang/vellum/lexis"
	renderpkg "github.com/vellum-lang/vellum/render"
)

var renderFlags = struct {
	directory *string
	variables *string
}{}

var renderTemplateFlags = struct {
	templateFile *string
	helperFiles  *[]string
}{}

func init() {
	parent := &cobra.Command{
		Use:   "render",
		Short: "Render a lexicon from an existing set of graph files and transformations",
	}
	renderFlags.directory = parent.PersistentFlags().StringP("directory", "d", "", "path to a directory to read in all transform and graph files")
	renderFlags.variables = parent.PersistentFlags().StringP("variables", "v", "", "TOML file used to resolve {{template variables}} in definition fields")
	parent.MarkPersistentFlagRequired("directory")

	parent.AddCommand(&cobra.Command{
		Use:   "line",
		Short: "Print one word per line",
		RunE:  runRenderLine,
	})
	parent.AddCommand(&cobra.Command{
		Use:   "json",
		Short: "Print a JSON object of the language",
		RunE:  runRenderJSON,
	})

	tplCmd := &cobra.Command{
		Use:   "template",
		Short: "Print language in format specified by a handlebars template file",
		RunE:  runRenderTemplate,
	}
	renderTemplateFlags.templateFile = tplCmd.Flags().StringP("template-file", "t", "", "path to the .hbs template file")
	renderTemplateFlags.helperFiles = tplCmd.Flags().StringArrayP("helper-files", "s", nil, "starlark scripts registered as template helpers")
	tplCmd.MarkFlagRequired("template-file")
	parent.AddCommand(tplCmd)

	rootCmd.AddCommand(parent)
}

func loadRenderedTree() ([]lexicon.Entry, error) {
	tree, err := ingest.Directory(*renderFlags.directory, newRand(), newLog())
	if err != nil {
		return nil, err
	}
	if err := tree.Compute(); err != nil {
		return nil, err
	}
	entries := tree.ToVecEtymons(nil)

	if *renderFlags.variables != "" {
		vars, err := ingest.LoadVariables(*renderFlags.variables)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			entries[i].Lexis.Definition = vars.Resolve(entries[i].Lexis.Definition)
		}
	}
	return entries, nil
}

func runRenderLine(cmd *cobra.Command, args []string) error {
	entries, err := loadRenderedTree()
	if err != nil {
		return err
	}
	words := make([]lexis.Lexis, len(entries))
	for i, e := range entries {
		words[i] = e.Lexis
	}
	fmt.Print(renderpkg.Line(words))
	return nil
}

func runRenderJSON(cmd *cobra.Command, args []string) error {
	entries, err := loadRenderedTree()
	if err != nil {
		return err
	}
	out, err := renderpkg.JSON(entries)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runRenderTemplate(cmd *cobra.Command, args []string) error {
	entries, err := loadRenderedTree()
	if err != nil {
		return err
	}
	out, err := renderpkg.Template(entries, *renderTemplateFlags.templateFile, *renderTemplateFlags.helperFiles)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
