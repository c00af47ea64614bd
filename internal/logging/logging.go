// Package logging configures the process-wide logrus logger used by every
// collaborator package. The core engine packages transform and lexicon take
// a *logrus.Entry (and lemma a plain log function) rather than reaching for
// a global, so tests can inject a discard logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logrus.Logger writing text-formatted entries to stderr at the
// given level name ("trace", "debug", "info", "warn", "error"). An unknown
// level falls back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// Discard returns a logger that drops everything, for use in tests and as a
// safe zero-value default when a caller does not supply one.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
