package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/stanzadev/stanza/pkg/site"
)

const (
	wordDoc  = "document"
	wordDocs = "documents"
)

// FormatBuildSummary formats build statistics as a single line.
// Example: "Rendered 12 documents in 180ms (3 summaries, 41 links)".
func (s *Styles) FormatBuildSummary(stats site.Stats, elapsed time.Duration) string {
	docWord := wordDocs
	if stats.Rendered == 1 {
		docWord = wordDoc
	}

	if stats.Errored == 0 {
		msg := s.Success.Render(fmt.Sprintf("Rendered %d %s", stats.Rendered, docWord)) +
			s.Dim.Render(fmt.Sprintf(" in %s", elapsed.Round(time.Millisecond)))
		if extras := s.summaryExtras(stats); extras != "" {
			msg += s.Dim.Render(" (" + extras + ")")
		}
		return msg + "\n"
	}

	failWord := wordDocs
	if stats.Errored == 1 {
		failWord = wordDoc
	}
	return s.Failure.Render(fmt.Sprintf("%d %s failed", stats.Errored, failWord)) +
		s.SummaryValue.Render(fmt.Sprintf(", %d of %d rendered", stats.Rendered, stats.Discovered)) +
		s.Dim.Render(fmt.Sprintf(" in %s", elapsed.Round(time.Millisecond))) + "\n"
}

func (s *Styles) summaryExtras(stats site.Stats) string {
	var parts []string
	if stats.Summaries > 0 {
		parts = append(parts, fmt.Sprintf("%d summaries", stats.Summaries))
	}
	if links := stats.InternalLinks + stats.ExternalLinks; links > 0 {
		parts = append(parts, fmt.Sprintf("%d links", links))
	}
	return strings.Join(parts, ", ")
}

// FormatFailures lists every failed document, one line each, indented
// under its path.
func (s *Styles) FormatFailures(result *site.Result) string {
	var sb strings.Builder
	for _, doc := range result.Documents {
		if doc.Err == nil {
			continue
		}
		sb.WriteString(s.DocPath.Render(doc.Path))
		sb.WriteString("\n  ")
		sb.WriteString(s.Error.Render(doc.Err.Error()))
		sb.WriteString("\n")
	}
	return sb.String()
}
