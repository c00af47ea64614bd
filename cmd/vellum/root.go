package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/internal/logging"
)

var rootFlags = struct {
	verbose int
	quiet   bool
}{}

var rootCmd = &cobra.Command{
	Use:           "vellum",
	Short:         "A CLI conlang utility for generating a language or language family from etymological rules",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().CountVar(&rootFlags.verbose, "verbose", "increase logging verbosity; specify multiple times for more")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.quiet, "quiet", "q", false, "suppress all log output")
}

// newLog builds the process logger from the --verbose/-q flags, per SPEC_FULL.md §4.16.
func newLog() *logrus.Entry {
	if rootFlags.quiet {
		return logrus.NewEntry(logging.Discard())
	}
	level := "warn"
	switch {
	case rootFlags.verbose >= 2:
		level = "trace"
	case rootFlags.verbose == 1:
		level = "debug"
	}
	return logrus.NewEntry(logging.New(level))
}

// newRand builds the *rand.Rand passed to ingest.Directory for any
// WordCreate-driven generation, seeded from the wall clock.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
