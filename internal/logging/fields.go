// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldRoot   = "root"

	// Configuration fields.
	FieldConfig   = "config"
	FieldBaseURL  = "base_url"
	FieldTheme    = "theme"
	FieldJobs     = "jobs"
	FieldLanguage = "language"

	// Statistics fields.
	FieldDocsDiscovered = "docs_discovered"
	FieldDocsRendered   = "docs_rendered"
	FieldDocsErrored    = "docs_errored"
	FieldInternalLinks  = "internal_links"
	FieldExternalLinks  = "external_links"
	FieldDuration       = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
