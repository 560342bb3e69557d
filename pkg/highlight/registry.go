// Package highlight selects syntax grammars and themes for fenced code
// blocks. Built-in grammars and themes come from chroma; supplementary ones
// are loaded once per process from configured directories of chroma XML
// definitions and are read-only afterwards.
package highlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Registry holds the supplementary grammar and theme sets. It is populated
// at most once (the first successful LoadExtra wins) and is safe for
// concurrent readers afterwards. Construct one during site setup and share
// it across renders by reference.
type Registry struct {
	mu     sync.Mutex
	loaded bool

	// lexers maps lowercased names and aliases to supplementary lexers.
	lexers map[string]chroma.Lexer

	// styles maps theme names to supplementary styles.
	styles map[string]*chroma.Style
}

// NewRegistry returns an empty registry with no supplementary sets.
func NewRegistry() *Registry {
	return &Registry{
		lexers: make(map[string]chroma.Lexer),
		styles: make(map[string]*chroma.Style),
	}
}

// LoadExtra populates the supplementary sets from the given directories of
// chroma lexer and style XML files. Relative directories are resolved
// against base. Once a load has succeeded, further calls are no-ops.
func (r *Registry) LoadExtra(base string, syntaxDirs, themeDirs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return nil
	}

	lexerSet := make(map[string]chroma.Lexer)
	styleSet := make(map[string]*chroma.Style)

	for _, dir := range syntaxDirs {
		if err := loadLexerDir(lexerSet, resolveDir(base, dir)); err != nil {
			return err
		}
	}
	for _, dir := range themeDirs {
		if err := loadStyleDir(styleSet, resolveDir(base, dir)); err != nil {
			return err
		}
	}

	r.lexers = lexerSet
	r.styles = styleSet
	r.loaded = true
	return nil
}

// Theme resolves a theme name against the built-in chroma styles first,
// then the supplementary set. Returns nil when the name is unknown; callers
// treat that as a configuration error, not a render error.
func (r *Registry) Theme(name string) *chroma.Style {
	if style, ok := styles.Registry[name]; ok {
		return style
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.styles[name]
}

// HasTheme reports whether the theme name resolves in either set.
func (r *Registry) HasTheme(name string) bool {
	return r.Theme(name) != nil
}

// extraLexer returns the supplementary lexer registered under the given
// language token, or nil.
func (r *Registry) extraLexer(lang string) chroma.Lexer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lexers[strings.ToLower(lang)]
}

func resolveDir(base, dir string) string {
	if base == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

func loadLexerDir(into map[string]chroma.Lexer, dir string) error {
	names, err := xmlFiles(dir)
	if err != nil {
		return err
	}
	fsys := os.DirFS(dir)
	for _, name := range names {
		lexer, err := chroma.NewXMLLexer(fsys, name)
		if err != nil {
			return fmt.Errorf("load syntax %s: %w", filepath.Join(dir, name), err)
		}
		cfg := lexer.Config()
		into[strings.ToLower(cfg.Name)] = lexer
		for _, alias := range cfg.Aliases {
			into[strings.ToLower(alias)] = lexer
		}
	}
	return nil
}

func loadStyleDir(into map[string]*chroma.Style, dir string) error {
	names, err := xmlFiles(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open theme %s: %w", path, err)
		}
		style, err := chroma.NewXMLStyle(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("load theme %s: %w", path, err)
		}
		into[style.Name] = style
	}
	return nil
}

// xmlFiles lists the .xml entries of dir in lexical order. A missing or
// unreadable directory is an error: it means the configuration points at
// nothing.
func xmlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xml") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
