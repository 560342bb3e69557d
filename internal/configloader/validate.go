package configloader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/stanzadev/stanza/pkg/config"
)

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate checks the configuration for values the pipeline cannot work
// with. Theme existence is checked later, by site.NewBuilder, once the
// supplementary theme set is loaded.
func Validate(cfg *config.Config) error {
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &ValidationError{
				Field:   "base_url",
				Value:   cfg.BaseURL,
				Message: "must be an absolute URL",
			}
		}
	}

	if !cfg.InsertAnchor.IsValid() {
		return &ValidationError{
			Field:   "insert_anchor",
			Value:   cfg.InsertAnchor,
			Message: "must be one of none, left, right",
		}
	}
	if !cfg.Markdown.SectionTags.IsValid() {
		return &ValidationError{
			Field:   "markdown.section_tags",
			Value:   cfg.Markdown.SectionTags,
			Message: "must be one of none, hierarchical, flat",
		}
	}

	if cfg.Markdown.HighlightCode && strings.TrimSpace(cfg.Markdown.HighlightTheme) == "" {
		return &ValidationError{
			Field:   "markdown.highlight_theme",
			Value:   cfg.Markdown.HighlightTheme,
			Message: "required when highlight_code is enabled",
		}
	}

	for _, field := range []struct{ name, value string }{
		{"content_dir", cfg.ContentDir},
		{"output_dir", cfg.OutputDir},
		{"templates_dir", cfg.TemplatesDir},
	} {
		if strings.TrimSpace(field.value) == "" {
			return &ValidationError{
				Field:   field.name,
				Value:   field.value,
				Message: "must not be empty",
			}
		}
	}

	return nil
}
