// Package commandutils shared helpers for the command line binaries.
package commandutils

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"
	"github.com/shekhars271991/as-strongconsistancy/internal/debugx"
	"github.com/shekhars271991/as-strongconsistancy/internal/envx"
)

var (
	// Verbose logger, discarded unless verbosity is raised.
	Verbose = log.New(io.Discard, "[Verbose] ", log.Flags()|log.Lshortfile)
)

// LogEnv configures logging based on the verbosity counter and environment.
func LogEnv(verbosity int) {
	log.SetFlags(log.Flags() | log.Lshortfile)

	if verbosity > 0 || envx.Boolean(false, sctutorial.EnvLogsVerbose) {
		Verbose = log.New(os.Stderr, "[Verbose] ", log.Flags()|log.Lshortfile)
	}

	if verbosity > 1 {
		debugx.Enable()
	}
}

// LogCause logs the root cause of the error with its stack when verbose,
// passing the error through for the caller.
func LogCause(err error) error {
	if err == nil {
		return nil
	}

	Verbose.Printf("%+v\n", err)
	return errors.Cause(err)
}
