package highlight

import (
	"slices"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Themes returns every resolvable theme name, built-in plus supplementary,
// sorted and deduplicated.
func (r *Registry) Themes() []string {
	names := styles.Names()

	r.mu.Lock()
	for name := range r.styles {
		names = append(names, name)
	}
	r.mu.Unlock()

	slices.Sort(names)
	return slices.Compact(names)
}

// Syntaxes returns every known grammar name, built-in plus supplementary,
// sorted and deduplicated. Aliases are not listed.
func (r *Registry) Syntaxes() []string {
	var names []string
	for _, lexer := range lexers.GlobalLexerRegistry.Lexers {
		names = append(names, lexer.Config().Name)
	}

	r.mu.Lock()
	for _, lexer := range r.lexers {
		names = append(names, lexer.Config().Name)
	}
	r.mu.Unlock()

	slices.Sort(names)
	return slices.Compact(names)
}
