package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

//go:generate stringer -type=Source -trimprefix=Source

// Source reports where a lexer was found, so callers can tell a deliberate
// plain-text fallback apart from an unknown language.
type Source uint8

const (
	// SourceBuiltin means the built-in chroma registry matched.
	SourceBuiltin Source = iota

	// SourceExtra means a supplementary grammar matched.
	SourceExtra

	// SourcePlain means no language was requested.
	SourcePlain

	// SourceNotFound means the language was requested but unknown;
	// plain text is used instead.
	SourceNotFound
)

// Lexer picks the grammar for a language token. Preference order:
// supplementary set, built-in chroma registry (with legacy token
// normalization and an enry alias lookup), then plain text.
func (r *Registry) Lexer(lang string) (chroma.Lexer, Source) {
	if lang == "" {
		return plaintext(), SourcePlain
	}

	if lexer := r.extraLexer(lang); lexer != nil {
		return chroma.Coalesce(lexer), SourceExtra
	}

	if lexer := lexers.Get(legacyLanguageName(lang)); lexer != nil {
		return chroma.Coalesce(lexer), SourceBuiltin
	}

	// Some documents use aliases chroma does not know ("golang", "viml").
	// enry maps those to canonical language names.
	if canonical, ok := enry.GetLanguageByAlias(lang); ok {
		if lexer := lexers.Get(canonical); lexer != nil {
			return chroma.Coalesce(lexer), SourceBuiltin
		}
	}

	return plaintext(), SourceNotFound
}

// legacyLanguageName keeps old documents highlighting: "js" fences predate
// the TypeScript grammar and are tokenized with its superset syntax.
func legacyLanguageName(lang string) string {
	switch lang {
	case "js", "javascript":
		return "ts"
	default:
		return lang
	}
}

func plaintext() chroma.Lexer {
	return lexers.Fallback
}
