package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/ingest"
)

var ingestFlags = struct {
	overrides *[]string
	directory *string
	out       *string
}{}

func init() {
	parent := &cobra.Command{
		Use:   "ingest",
		Short: "Create a language tree file from an external source, such as a JSON file or newline-delimited list of words",
	}
	ingestFlags.overrides = parent.PersistentFlags().StringArrayP("overrides", "r", nil, "override a default ingest value for every ingested word, in key=value form")
	ingestFlags.directory = parent.PersistentFlags().StringP("directory", "d", "./ingested", "directory the ingested tree file is considered part of")
	ingestFlags.out = parent.PersistentFlags().StringP("out", "f", "ingested.json", "output tree file path")

	parent.AddCommand(&cobra.Command{
		Use:   "json <file>",
		Short: "Derive a language tree from a formatted JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  runIngestJSON,
	})
	parent.AddCommand(&cobra.Command{
		Use:   "lines <file>",
		Short: "Derive a language tree from a newline-delimited list of words",
		Args:  cobra.ExactArgs(1),
		RunE:  runIngestLines,
	})

	rootCmd.AddCommand(parent)
}

func runIngestJSON(cmd *cobra.Command, args []string) error {
	overrides, err := ingest.ParseOverrides(*ingestFlags.overrides)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	graph, err := ingest.JSON(data, overrides, newLog())
	if err != nil {
		return err
	}
	return writeIngestedGraph(graph)
}

func runIngestLines(cmd *cobra.Command, args []string) error {
	overrides, err := ingest.ParseOverrides(*ingestFlags.overrides)
	if err != nil {
		return err
	}
	graph, err := ingest.Lines(args[0], overrides)
	if err != nil {
		return err
	}
	return writeIngestedGraph(graph)
}

func writeIngestedGraph(graph ingest.WordGraph) error {
	data, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return err
	}
	treeDir := filepath.Join(*ingestFlags.directory, "tree")
	if err := os.MkdirAll(treeDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(treeDir, *ingestFlags.out), data, 0o644)
}
