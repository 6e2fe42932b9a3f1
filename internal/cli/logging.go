package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger returns the stderr logger used by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "schemas",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
