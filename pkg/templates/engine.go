// Package templates renders the HTML fragments the pipeline splices into
// documents: heading anchor links and shortcode bodies. Templates are plain
// text/template files; shortcode templates live under a shortcodes/
// subdirectory and are addressed as "shortcodes/<name>.html".
package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// AnchorLinkTemplate is the fixed template name used for heading anchors.
const AnchorLinkTemplate = "anchor-link.html"

// defaultAnchorLink is registered up front so anchors render even when the
// site ships no template of its own.
const defaultAnchorLink = `<a class="anchor" href="#{{ .id }}" aria-label="Anchor link for: {{ .id }}">§</a>`

// Engine holds the parsed template set for one site.
type Engine struct {
	templates map[string]*template.Template
}

// New returns an engine with the built-in defaults registered.
func New() *Engine {
	e := &Engine{templates: make(map[string]*template.Template)}
	// The default cannot fail to parse; it is a compile-time constant.
	if err := e.Register(AnchorLinkTemplate, defaultAnchorLink); err != nil {
		panic(err)
	}
	return e
}

// Register parses content under the given name, replacing any previous
// registration.
func (e *Engine) Register(name, content string) error {
	tpl, err := template.New(name).Parse(content)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	e.templates[name] = tpl
	return nil
}

// LoadDir parses every .html file under dir, naming templates by their
// slash-separated path relative to dir. Missing directories are fine: the
// built-in defaults stay in place.
func (e *Engine) LoadDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat templates dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("templates path %s is not a directory", dir)
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}
		return e.Register(filepath.ToSlash(rel), string(content))
	})
}

// Has reports whether a template is registered under name.
func (e *Engine) Has(name string) bool {
	_, ok := e.templates[name]
	return ok
}

// Render executes the named template with data and returns its output.
func (e *Engine) Render(name string, data any) (string, error) {
	tpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s is not registered", name)
	}
	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return sb.String(), nil
}
