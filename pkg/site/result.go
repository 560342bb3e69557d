package site

import "github.com/stanzadev/stanza/pkg/render"

// DocumentOutcome is the result of building one document.
type DocumentOutcome struct {
	// Path is the content-relative source path.
	Path string

	// Output is the output-relative path the HTML was written to. Empty
	// when the document failed.
	Output string

	// Rendered holds the render artifacts, nil on failure.
	Rendered *render.Rendered

	// Err is set when the document could not be rendered or written.
	Err error
}

// Stats aggregates one build.
type Stats struct {
	// Discovered is the number of documents found under the content dir.
	Discovered int

	// Rendered is the number of documents rendered and written.
	Rendered int

	// Errored is the number of documents that failed.
	Errored int

	// Summaries counts documents carrying a more-marker.
	Summaries int

	// InternalLinks and ExternalLinks count link inventory entries across
	// all rendered documents.
	InternalLinks int
	ExternalLinks int
}

// Result is the outcome of a whole build, documents in discovery order.
type Result struct {
	Documents []DocumentOutcome
	Stats     Stats
}

// HasFailures reports whether any document failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.Errored > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome DocumentOutcome) {
	r.Documents = append(r.Documents, outcome)

	if outcome.Err != nil {
		r.Stats.Errored++
		return
	}
	r.Stats.Rendered++
	if outcome.Rendered != nil {
		if outcome.Rendered.SummaryLen != nil {
			r.Stats.Summaries++
		}
		r.Stats.InternalLinks += len(outcome.Rendered.InternalLinks)
		r.Stats.ExternalLinks += len(outcome.Rendered.ExternalLinks)
	}
}
