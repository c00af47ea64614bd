package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/ingest"
	"github.com/vellum-lang/vellum/render"
)

var graphvizFlags = struct {
	directory *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "graphviz",
		Short: "Print a graphviz representation of the language",
		RunE:  runGraphviz,
	}
	graphvizFlags.directory = cmd.Flags().StringP("directory", "d", "", "path to a directory to read in all transform and graph files")
	cmd.MarkFlagRequired("directory")
	rootCmd.AddCommand(cmd)
}

func runGraphviz(cmd *cobra.Command, args []string) error {
	tree, err := ingest.Directory(*graphvizFlags.directory, newRand(), newLog())
	if err != nil {
		return err
	}
	if err := tree.Compute(); err != nil {
		return err
	}
	fmt.Print(render.Graphviz(tree))
	return nil
}
