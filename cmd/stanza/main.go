// Package main is the entry point for the stanza CLI.
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/stanzadev/stanza/internal/cli"
	"github.com/stanzadev/stanza/internal/configloader"
	"github.com/stanzadev/stanza/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrBuildFailed - the failures are already reported.
		if errors.Is(err, cli.ErrBuildFailed) {
			return cli.ExitRenderErrors
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return exitCode(err)
	}

	return cli.ExitSuccess
}

// exitCode classifies a command error.
func exitCode(err error) int {
	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return cli.ExitConfigError
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return cli.ExitIOError
	}

	return cli.ExitInternalError
}
