// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup applies the level and formatter for this process. Production uses
// JSON lines; everything else gets the human readable text formatter.
// An unknown level leaves the logger at info and reports it.
func Setup(level string, production bool) {
	SetupWithOutput(os.Stderr, level, production)
}

// SetupWithOutput is Setup with an explicit destination.
func SetupWithOutput(out io.Writer, level string, production bool) {
	log.SetOutput(out)

	if production {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.WithField("level", level).Warn("unknown log level, using info")
		return
	}
	log.SetLevel(lvl)
}
