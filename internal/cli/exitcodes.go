package cli

import "github.com/stanzadev/stanza/pkg/site"

// Exit codes for stanza.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRenderErrors indicates the build completed but some documents
	// failed to render.
	ExitRenderErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a build result.
func ExitCodeFromResult(result *site.Result) int {
	if result == nil || !result.HasFailures() {
		return ExitSuccess
	}
	return ExitRenderErrors
}
