package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stanzadev/stanza/pkg/config"
)

// writeSite lays out a minimal site under a temp dir.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testSiteConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.BaseURL = "https://example.com"
	return cfg
}

func TestDiscover(t *testing.T) {
	root := writeSite(t, map[string]string{
		"content/b.md":          "b",
		"content/a.md":          "a",
		"content/posts/one.md":  "one",
		"content/notes.txt":     "skip",
		"content/.drafts/x.md":  "hidden dir",
		"content/.hidden.md":    "hidden file",
		"content/deep/two.markdown": "two",
	})

	docs, err := Discover(context.Background(), filepath.Join(root, "content"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"a.md", "b.md", "deep/two.markdown", "posts/one.md"}
	if len(docs) != len(want) {
		t.Fatalf("docs = %v, want %v", docs, want)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %q, want %q", i, docs[i], want[i])
		}
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(context.Background(), filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected an error for a missing content dir")
	}
}

func TestBuild(t *testing.T) {
	root := writeSite(t, map[string]string{
		"content/index.md":       "# Home\n\nwelcome\n",
		"content/posts/hello.md": "# Hello\n\nsee [home](@/index.md)\n",
	})

	builder, err := NewBuilder(root, testSiteConfig())
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	result, err := builder.Build(context.Background(), Options{Jobs: 2})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if result.Stats.Discovered != 2 || result.Stats.Rendered != 2 || result.Stats.Errored != 0 {
		t.Fatalf("stats = %+v", result.Stats)
	}
	if result.HasFailures() {
		t.Fatal("unexpected failures")
	}

	// Outcomes come back in discovery order regardless of worker timing.
	if result.Documents[0].Path != "index.md" || result.Documents[1].Path != "posts/hello.md" {
		t.Errorf("document order = %q, %q", result.Documents[0].Path, result.Documents[1].Path)
	}

	home, err := os.ReadFile(filepath.Join(root, "public", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(home), `<h1 id="home">Home</h1>`) {
		t.Errorf("home output = %q", home)
	}

	post, err := os.ReadFile(filepath.Join(root, "public", "posts", "hello", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(post), `href="https://example.com/"`) {
		t.Errorf("internal link not resolved: %q", post)
	}
	if result.Stats.InternalLinks != 1 {
		t.Errorf("internal link count = %d", result.Stats.InternalLinks)
	}
}

func TestBuild_SkipsUnchangedOutputs(t *testing.T) {
	root := writeSite(t, map[string]string{
		"content/a.md": "hello\n",
	})
	builder, err := NewBuilder(root, testSiteConfig())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := builder.Build(context.Background(), Options{}); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(root, "public", "a", "index.html")
	before, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := builder.Build(context.Background(), Options{}); err != nil {
		t.Fatal(err)
	}
	after, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}

	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("unchanged output was rewritten")
	}
}

func TestBuild_DocumentFailureDoesNotAbort(t *testing.T) {
	root := writeSite(t, map[string]string{
		"content/good.md": "fine\n",
		"content/bad.md":  "[broken](@/missing.md)\n",
	})

	builder, err := NewBuilder(root, testSiteConfig())
	if err != nil {
		t.Fatal(err)
	}

	result, err := builder.Build(context.Background(), Options{Jobs: 1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if result.Stats.Errored != 1 || result.Stats.Rendered != 1 {
		t.Fatalf("stats = %+v", result.Stats)
	}
	if !result.HasFailures() {
		t.Error("expected failures")
	}

	if _, err := os.Stat(filepath.Join(root, "public", "good", "index.html")); err != nil {
		t.Errorf("good document should still be written: %v", err)
	}
	if result.Documents[0].Path != "bad.md" || result.Documents[0].Err == nil {
		t.Errorf("bad outcome = %+v", result.Documents[0])
	}
}

func TestBuild_ShortcodesAndTemplates(t *testing.T) {
	root := writeSite(t, map[string]string{
		"content/page.md": "x\n\n{{ badge(label=\"beta\") }}\n",
		"templates/shortcodes/badge.html": `<span class="badge">{{ .label }}</span>`,
	})

	builder, err := NewBuilder(root, testSiteConfig())
	if err != nil {
		t.Fatal(err)
	}
	result, err := builder.Build(context.Background(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if result.HasFailures() {
		t.Fatalf("documents = %+v", result.Documents)
	}

	out, err := os.ReadFile(filepath.Join(root, "public", "page", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `<span class="badge">beta</span>`) {
		t.Errorf("output = %q", out)
	}
}

func TestNewBuilder_UnknownTheme(t *testing.T) {
	root := writeSite(t, map[string]string{"content/a.md": "a\n"})
	cfg := testSiteConfig()
	cfg.Markdown.HighlightCode = true
	cfg.Markdown.HighlightTheme = "no-such-theme"

	if _, err := NewBuilder(root, cfg); err == nil {
		t.Error("expected an error for an unknown highlight theme")
	}
}

func TestRenderDocument(t *testing.T) {
	root := writeSite(t, map[string]string{
		"content/a.md": "# A\n\n[b](@/b.md)\n",
		"content/b.md": "# B\n",
	})

	builder, err := NewBuilder(root, testSiteConfig())
	if err != nil {
		t.Fatal(err)
	}

	rendered, err := builder.RenderDocument(context.Background(), "a.md")
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(rendered.Body, `href="https://example.com/b/"`) {
		t.Errorf("body = %q", rendered.Body)
	}

	if _, err := os.Stat(filepath.Join(root, "public")); !os.IsNotExist(err) {
		t.Error("RenderDocument must not write output")
	}
}
