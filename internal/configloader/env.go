package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stanzadev/stanza/pkg/config"
)

// envVarPrefix is the prefix for all stanza environment variables.
const envVarPrefix = "STANZA_"

// applyEnv applies STANZA_* overrides on top of the loaded configuration.
// Unset and empty variables are ignored.
func applyEnv(cfg *config.Config) error {
	for envSuffix, apply := range envSetters {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", envVar, err)
		}
	}
	return nil
}

//nolint:gochecknoglobals // Read-only lookup table.
var envSetters = map[string]func(*config.Config, string) error{
	"BASE_URL": func(c *config.Config, v string) error {
		c.BaseURL = v
		return nil
	},
	"TITLE": func(c *config.Config, v string) error {
		c.Title = v
		return nil
	},
	"DEFAULT_LANGUAGE": func(c *config.Config, v string) error {
		c.DefaultLanguage = v
		return nil
	},
	"CONTENT_DIR": func(c *config.Config, v string) error {
		c.ContentDir = v
		return nil
	},
	"OUTPUT_DIR": func(c *config.Config, v string) error {
		c.OutputDir = v
		return nil
	},
	"TEMPLATES_DIR": func(c *config.Config, v string) error {
		c.TemplatesDir = v
		return nil
	},
	"INSERT_ANCHOR": func(c *config.Config, v string) error {
		c.InsertAnchor = config.InsertAnchor(strings.ToLower(v))
		return nil
	},
	"SECTION_TAGS": func(c *config.Config, v string) error {
		c.Markdown.SectionTags = config.SectionMode(strings.ToLower(v))
		return nil
	},
	"HIGHLIGHT_CODE": func(c *config.Config, v string) error {
		return setBool(&c.Markdown.HighlightCode, v)
	},
	"HIGHLIGHT_THEME": func(c *config.Config, v string) error {
		c.Markdown.HighlightTheme = v
		return nil
	},
	"RENDER_EMOJI": func(c *config.Config, v string) error {
		return setBool(&c.Markdown.RenderEmoji, v)
	},
	"SMART_PUNCTUATION": func(c *config.Config, v string) error {
		return setBool(&c.Markdown.SmartPunctuation, v)
	},
	"EXTERNAL_LINKS_TARGET_BLANK": func(c *config.Config, v string) error {
		return setBool(&c.Markdown.ExternalLinksTargetBlank, v)
	},
	"EXTERNAL_LINKS_NO_FOLLOW": func(c *config.Config, v string) error {
		return setBool(&c.Markdown.ExternalLinksNoFollow, v)
	},
	"EXTERNAL_LINKS_NO_REFERRER": func(c *config.Config, v string) error {
		return setBool(&c.Markdown.ExternalLinksNoReferrer, v)
	},
}

func setBool(target *bool, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
	}
	*target = b
	return nil
}
