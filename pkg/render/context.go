package render

import (
	"github.com/stanzadev/stanza/pkg/config"
	"github.com/stanzadev/stanza/pkg/highlight"
	"github.com/stanzadev/stanza/pkg/templates"
)

// Context bundles everything a single render call reads: site configuration,
// the permalink table, the current document's identity, and handles to the
// template engine and highlight registry. It is read-only for the pipeline;
// one Context may be shared by concurrent renders.
type Context struct {
	// Config is the active site configuration.
	Config *config.Config

	// Permalinks maps content-relative document paths to canonical URLs.
	Permalinks map[string]string

	// CurrentPath is the current document's content-relative path. Empty
	// for non-page documents, which then cannot resolve bare fragments.
	CurrentPath string

	// CurrentPermalink is the current document's canonical URL.
	CurrentPermalink string

	// Lang is the active language tag.
	Lang string

	// InsertAnchor controls heading anchor-link insertion for this
	// document. Front matter may override the site default.
	InsertAnchor config.InsertAnchor

	// Templates renders anchor-link and shortcode fragments.
	Templates *templates.Engine

	// Highlight provides grammar and theme lookup.
	Highlight *highlight.Registry
}

// NewContext returns a Context for one document with the site-wide anchor
// mode taken from cfg.
func NewContext(cfg *config.Config, tpl *templates.Engine, reg *highlight.Registry) *Context {
	return &Context{
		Config:       cfg,
		Permalinks:   map[string]string{},
		Lang:         cfg.DefaultLanguage,
		InsertAnchor: cfg.InsertAnchor,
		Templates:    tpl,
		Highlight:    reg,
	}
}
