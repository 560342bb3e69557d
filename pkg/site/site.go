// Package site builds a whole content tree: it discovers Markdown
// documents, assembles the permalink table, renders documents concurrently
// through pkg/render, and writes the HTML output atomically.
package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/stanzadev/stanza/pkg/config"
	"github.com/stanzadev/stanza/pkg/fsutil"
	"github.com/stanzadev/stanza/pkg/highlight"
	"github.com/stanzadev/stanza/pkg/render"
	"github.com/stanzadev/stanza/pkg/templates"
)

// Builder holds the per-site state shared by every document render: parsed
// templates and the highlight registry. Construct once, then Build or
// RenderDocument any number of times.
type Builder struct {
	cfg       *config.Config
	root      string
	templates *templates.Engine
	highlight *highlight.Registry
}

// Options controls one build.
type Options struct {
	// Jobs caps concurrent renders. Zero or negative means one worker per
	// CPU.
	Jobs int
}

// NewBuilder prepares the shared site state rooted at root. Site templates
// override the built-in defaults; supplementary grammars and themes load
// from the configured directories. A highlight theme that resolves nowhere
// is rejected here, before any document renders.
func NewBuilder(root string, cfg *config.Config) (*Builder, error) {
	tpl := templates.New()
	if err := tpl.LoadDir(filepath.Join(root, cfg.TemplatesDir)); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	reg := highlight.NewRegistry()
	if err := reg.LoadExtra(root, cfg.Markdown.ExtraSyntaxes, cfg.Markdown.ExtraHighlightThemes); err != nil {
		return nil, fmt.Errorf("load extra highlight definitions: %w", err)
	}
	if cfg.Markdown.HighlightCode && !reg.HasTheme(cfg.Markdown.HighlightTheme) {
		return nil, fmt.Errorf("highlight theme %q not found", cfg.Markdown.HighlightTheme)
	}

	return &Builder{
		cfg:       cfg,
		root:      root,
		templates: tpl,
		highlight: reg,
	}, nil
}

// Build renders every document under the content dir and writes the output
// tree. Document failures do not abort the build; they surface in the
// result, in discovery order.
func (b *Builder) Build(ctx context.Context, opts Options) (*Result, error) {
	contentDir := filepath.Join(b.root, b.cfg.ContentDir)
	docs, err := Discover(ctx, contentDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Documents: make([]DocumentOutcome, 0, len(docs))}
	result.Stats.Discovered = len(docs)
	if len(docs) == 0 {
		return result, nil
	}

	permalinks := make(map[string]string, len(docs))
	for _, doc := range docs {
		permalinks[doc] = Permalink(b.cfg.BaseURL, doc)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(docs) {
		jobs = len(docs)
	}

	workCh := make(chan string)
	outCh := make(chan DocumentOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.worker(ctx, workCh, outCh, permalinks)
		}()
	}

	go func() {
		defer close(workCh)
		for _, doc := range docs {
			select {
			case <-ctx.Done():
				return
			case workCh <- doc:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; key by path and rebuild discovery order.
	outcomes := make(map[string]DocumentOutcome, len(docs))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, doc := range docs {
		if outcome, ok := outcomes[doc]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("build cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (b *Builder) worker(ctx context.Context, workCh <-chan string, outCh chan<- DocumentOutcome, permalinks map[string]string) {
	for doc := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := b.buildDocument(ctx, doc, permalinks)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// buildDocument renders one document and writes its output file.
func (b *Builder) buildDocument(ctx context.Context, doc string, permalinks map[string]string) DocumentOutcome {
	outcome := DocumentOutcome{Path: doc}

	rendered, err := b.renderDocument(doc, permalinks)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Rendered = rendered

	out := OutputPath(doc)
	target := filepath.Join(b.root, b.cfg.OutputDir, filepath.FromSlash(out))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		outcome.Err = fmt.Errorf("create output dir: %w", err)
		return outcome
	}
	if _, err := fsutil.WriteAtomicIfChanged(ctx, target, []byte(rendered.Body), 0); err != nil {
		outcome.Err = fmt.Errorf("write %s: %w", out, err)
		return outcome
	}

	outcome.Output = out
	return outcome
}

func (b *Builder) renderDocument(doc string, permalinks map[string]string) (*render.Rendered, error) {
	source, err := os.ReadFile(filepath.Join(b.root, b.cfg.ContentDir, filepath.FromSlash(doc)))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	content := string(source)
	shortcodes, err := ExtractShortcodes(content)
	if err != nil {
		return nil, err
	}

	rctx := render.NewContext(b.cfg, b.templates, b.highlight)
	rctx.Permalinks = permalinks
	rctx.CurrentPath = doc
	rctx.CurrentPermalink = permalinks[doc]

	return render.Render(content, rctx, shortcodes)
}

// RenderDocument renders a single document without writing output. The
// permalink table still covers the whole site so internal links resolve.
func (b *Builder) RenderDocument(ctx context.Context, doc string) (*render.Rendered, error) {
	contentDir := filepath.Join(b.root, b.cfg.ContentDir)
	docs, err := Discover(ctx, contentDir)
	if err != nil {
		return nil, err
	}
	permalinks := make(map[string]string, len(docs))
	for _, d := range docs {
		permalinks[d] = Permalink(b.cfg.BaseURL, d)
	}
	return b.renderDocument(doc, permalinks)
}
