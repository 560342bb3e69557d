// Package config defines core configuration types for stanza.
// These types are pure data structures; loading, merging and validation
// live in internal/configloader.
package config

import "strings"

// DefaultHighlightTheme is used when the site does not pick one.
const DefaultHighlightTheme = "github"

// InsertAnchor controls where heading anchor links are inserted.
type InsertAnchor string

const (
	// AnchorNone disables anchor-link insertion.
	AnchorNone InsertAnchor = "none"
	// AnchorLeft inserts the anchor link right after the opening heading tag.
	AnchorLeft InsertAnchor = "left"
	// AnchorRight inserts the anchor link right before the closing heading tag.
	AnchorRight InsertAnchor = "right"
)

// IsValid returns true if the anchor mode is one of the known values.
func (a InsertAnchor) IsValid() bool {
	switch a {
	case AnchorNone, AnchorLeft, AnchorRight:
		return true
	default:
		return false
	}
}

// SectionMode controls wrapping of headings and their content in
// <section> tags.
type SectionMode string

const (
	// SectionsNone disables section wrapping.
	SectionsNone SectionMode = "none"
	// SectionsHierarchical nests sections by heading level.
	SectionsHierarchical SectionMode = "hierarchical"
	// SectionsFlat opens a fresh top-level section at every heading.
	SectionsFlat SectionMode = "flat"
)

// IsValid returns true if the section mode is one of the known values.
func (s SectionMode) IsValid() bool {
	switch s {
	case SectionsNone, SectionsHierarchical, SectionsFlat:
		return true
	default:
		return false
	}
}

// Markdown holds the rendering options for Markdown content.
type Markdown struct {
	// HighlightCode enables syntax highlighting of fenced code blocks.
	HighlightCode bool `yaml:"highlight_code"`

	// HighlightTheme names the highlight theme, from the built-in set or
	// from ExtraHighlightThemes directories.
	HighlightTheme string `yaml:"highlight_theme"`

	// RenderEmoji substitutes :alias: emoji shortcodes in text.
	RenderEmoji bool `yaml:"render_emoji"`

	// ExternalLinksTargetBlank opens external links in a new tab.
	// When set, rel="noopener" is always added as well.
	ExternalLinksTargetBlank bool `yaml:"external_links_target_blank"`

	// ExternalLinksNoFollow sets rel="nofollow" on external links.
	ExternalLinksNoFollow bool `yaml:"external_links_no_follow"`

	// ExternalLinksNoReferrer sets rel="noreferrer" on external links.
	ExternalLinksNoReferrer bool `yaml:"external_links_no_referrer"`

	// SmartPunctuation converts quotes, dashes and dots to their
	// typographic forms.
	SmartPunctuation bool `yaml:"smart_punctuation"`

	// ExtraSyntaxes lists directories searched for additional chroma
	// lexer XML definitions.
	ExtraSyntaxes []string `yaml:"extra_syntaxes"`

	// ExtraHighlightThemes lists directories searched for additional
	// chroma style XML definitions.
	ExtraHighlightThemes []string `yaml:"extra_highlight_themes"`

	// SectionTags wraps headings and their content in <section> tags.
	SectionTags SectionMode `yaml:"section_tags"`
}

// HasExternalLinkTweaks reports whether any external-link decoration
// option is enabled.
func (m *Markdown) HasExternalLinkTweaks() bool {
	return m.ExternalLinksTargetBlank || m.ExternalLinksNoFollow || m.ExternalLinksNoReferrer
}

// ConstructExternalLinkTag builds the literal opening anchor tag for a
// decorated external link. Attribute groups appear in fixed order (rel,
// target, title, href) and are omitted entirely when not applicable.
// The url and title must already be escaped.
func (m *Markdown) ConstructExternalLinkTag(url, title string) string {
	var relOpts []string
	target := ""

	if m.ExternalLinksTargetBlank {
		// Omitting noopener with target="_blank" is a security hole.
		relOpts = append(relOpts, "noopener")
		target = `target="_blank" `
	}
	if m.ExternalLinksNoFollow {
		relOpts = append(relOpts, "nofollow")
	}
	if m.ExternalLinksNoReferrer {
		relOpts = append(relOpts, "noreferrer")
	}

	rel := ""
	if len(relOpts) > 0 {
		rel = `rel="` + strings.Join(relOpts, " ") + `" `
	}

	titleAttr := ""
	if title != "" {
		titleAttr = `title="` + title + `" `
	}

	return "<a " + rel + target + titleAttr + `href="` + url + `">`
}

// Config is the root site configuration.
type Config struct {
	// BaseURL is the canonical site root, e.g. "https://example.com".
	BaseURL string `yaml:"base_url"`

	// Title is the site title.
	Title string `yaml:"title"`

	// DefaultLanguage is the site language tag, e.g. "en".
	DefaultLanguage string `yaml:"default_language"`

	// ContentDir holds the Markdown sources, relative to the site root.
	ContentDir string `yaml:"content_dir"`

	// OutputDir receives rendered HTML, relative to the site root.
	OutputDir string `yaml:"output_dir"`

	// TemplatesDir holds anchor-link and shortcode templates.
	TemplatesDir string `yaml:"templates_dir"`

	// InsertAnchor controls heading anchor-link insertion.
	InsertAnchor InsertAnchor `yaml:"insert_anchor"`

	// Markdown holds the rendering options.
	Markdown Markdown `yaml:"markdown"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		DefaultLanguage: "en",
		ContentDir:      "content",
		OutputDir:       "public",
		TemplatesDir:    "templates",
		InsertAnchor:    AnchorNone,
		Markdown: Markdown{
			HighlightTheme: DefaultHighlightTheme,
			SectionTags:    SectionsNone,
		},
	}
}
