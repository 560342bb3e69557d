package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stanzadev/stanza/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	result, err := Load(LoadOptions{Root: t.TempDir(), IgnoreEnv: true})
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.Equal(t, "content", result.Config.ContentDir)
	assert.Equal(t, config.AnchorNone, result.Config.InsertAnchor)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "stanza.yaml", `
base_url: https://example.com
title: Test Site
insert_anchor: left
markdown:
  highlight_code: true
  highlight_theme: monokai
  section_tags: hierarchical
  external_links_target_blank: true
`)

	result, err := Load(LoadOptions{Root: dir, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "stanza.yaml"), result.Path)
	cfg := result.Config
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.Equal(t, "Test Site", cfg.Title)
	assert.Equal(t, config.AnchorLeft, cfg.InsertAnchor)
	assert.True(t, cfg.Markdown.HighlightCode)
	assert.Equal(t, "monokai", cfg.Markdown.HighlightTheme)
	assert.Equal(t, config.SectionsHierarchical, cfg.Markdown.SectionTags)
	assert.True(t, cfg.Markdown.ExternalLinksTargetBlank)
	// Unset fields keep their defaults.
	assert.Equal(t, "content", cfg.ContentDir)
}

func TestLoad_YmlFallback(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "stanza.yml", "title: from yml\n")

	result, err := Load(LoadOptions{Root: dir, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "from yml", result.Config.Title)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "elsewhere.yaml", "title: explicit\n")

	result, err := Load(LoadOptions{Root: t.TempDir(), ExplicitPath: path, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "explicit", result.Config.Title)
	assert.Equal(t, path, result.Path)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(LoadOptions{
		Root:         t.TempDir(),
		ExplicitPath: "/no/such/stanza.yaml",
		IgnoreEnv:    true,
	})
	assert.Error(t, err)
}

func TestLoad_UnknownField(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "stanza.yaml", "no_such_option: 1\n")

	_, err := Load(LoadOptions{Root: dir, IgnoreEnv: true})
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "stanza.yaml", "title: from file\n")

	t.Setenv("STANZA_TITLE", "from env")
	t.Setenv("STANZA_HIGHLIGHT_CODE", "true")
	t.Setenv("STANZA_SECTION_TAGS", "FLAT")

	result, err := Load(LoadOptions{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, "from env", result.Config.Title)
	assert.True(t, result.Config.Markdown.HighlightCode)
	assert.Equal(t, config.SectionsFlat, result.Config.Markdown.SectionTags)
}

func TestLoad_EnvBadBool(t *testing.T) {
	t.Setenv("STANZA_RENDER_EMOJI", "yep")

	_, err := Load(LoadOptions{Root: t.TempDir()})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			"defaults pass",
			func(c *config.Config) {},
			"",
		},
		{
			"relative base url",
			func(c *config.Config) { c.BaseURL = "/just/a/path" },
			"base_url",
		},
		{
			"bad anchor mode",
			func(c *config.Config) { c.InsertAnchor = "middle" },
			"insert_anchor",
		},
		{
			"bad section mode",
			func(c *config.Config) { c.Markdown.SectionTags = "nested" },
			"section_tags",
		},
		{
			"highlight without theme",
			func(c *config.Config) {
				c.Markdown.HighlightCode = true
				c.Markdown.HighlightTheme = " "
			},
			"highlight_theme",
		},
		{
			"empty content dir",
			func(c *config.Config) { c.ContentDir = "" },
			"content_dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
