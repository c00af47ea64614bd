package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/ingest"
	"github.com/vellum-lang/vellum/render"
)

var statFlags = struct {
	directory *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Print basic statistics on the language",
		RunE:  runStat,
	}
	statFlags.directory = cmd.Flags().StringP("directory", "d", "", "path to a directory to read in all transform and graph files")
	cmd.MarkFlagRequired("directory")
	rootCmd.AddCommand(cmd)
}

func runStat(cmd *cobra.Command, args []string) error {
	tree, err := ingest.Directory(*statFlags.directory, newRand(), newLog())
	if err != nil {
		return err
	}
	if err := tree.Compute(); err != nil {
		return err
	}
	fmt.Print(render.Stats(tree))
	return nil
}
