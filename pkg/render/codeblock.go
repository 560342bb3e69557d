package render

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/stanzadev/stanza/pkg/events"
	"github.com/stanzadev/stanza/pkg/highlight"
)

// fenceSettings is the parsed form of a fence info string, e.g.
// "rust,linenos,hl_lines=2-4 7".
type fenceSettings struct {
	language       string
	lineNumbers    bool
	highlightLines [][2]int
}

// parseFence splits a fence info string into its language token and
// options. Tokens are comma- or space-separated; unknown tokens after the
// first are ignored.
func parseFence(info string) fenceSettings {
	var fence fenceSettings

	for _, token := range strings.FieldsFunc(info, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		switch {
		case token == "linenos":
			fence.lineNumbers = true
		case strings.HasPrefix(token, "hl_lines="):
			fence.highlightLines = append(fence.highlightLines,
				parseLineRanges(strings.TrimPrefix(token, "hl_lines="))...)
		case fence.language == "" && !strings.Contains(token, "="):
			fence.language = token
		}
	}

	return fence
}

// parseLineRanges parses "2-4" or "7" clauses; malformed clauses are
// dropped.
func parseLineRanges(spec string) [][2]int {
	var ranges [][2]int
	for _, clause := range strings.Split(spec, ";") {
		first, last, isRange := strings.Cut(clause, "-")
		lo, err := strconv.Atoi(first)
		if err != nil || lo < 1 {
			continue
		}
		hi := lo
		if isRange {
			hi, err = strconv.Atoi(last)
			if err != nil || hi < lo {
				continue
			}
		}
		ranges = append(ranges, [2]int{lo, hi})
	}
	return ranges
}

// codeBlock is the highlighter session for one fenced block. Code blocks
// never nest, so the transformer holds at most one at a time.
type codeBlock struct {
	lexer  chroma.Lexer
	style  *chroma.Style
	fence  fenceSettings
	source highlight.Source

	// nextLine is the 1-based number of the first line of the next chunk,
	// keeping line numbers and hl_lines stable across streamed chunks.
	nextLine int
}

// newCodeBlock opens a highlighter session and returns it with the literal
// markup that replaces the structural code-block start event.
func newCodeBlock(ctx *Context, info string) (*codeBlock, string) {
	fence := parseFence(info)
	lexer, source := ctx.Highlight.Lexer(fence.language)
	style := ctx.Highlight.Theme(ctx.Config.Markdown.HighlightTheme)
	if style == nil {
		style = styles.Fallback
	}

	begin := "<pre>"
	if bg := style.Get(chroma.Background).Background; bg.IsSet() {
		begin = `<pre style="background-color:` + bg.String() + `;">`
	}
	begin += "\n<code>"

	return &codeBlock{
		lexer:    lexer,
		style:    style,
		fence:    fence,
		source:   source,
		nextLine: 1,
	}, begin
}

// endCodeBlock closes the markup opened by newCodeBlock.
const endCodeBlock = "</code></pre>\n"

// highlight renders one chunk of code-block text as styled spans.
func (c *codeBlock) highlight(text string) string {
	iterator, err := c.lexer.Tokenise(nil, text)
	if err != nil {
		// Tokenising plain text cannot fail; emit the chunk escaped.
		return events.EscapeHTML(text)
	}

	opts := []chromahtml.Option{
		chromahtml.PreventSurroundingPre(true),
		chromahtml.BaseLineNumber(c.nextLine),
	}
	if c.fence.lineNumbers {
		opts = append(opts, chromahtml.WithLineNumbers(true))
	}
	if len(c.fence.highlightLines) > 0 {
		opts = append(opts, chromahtml.HighlightLines(c.fence.highlightLines))
	}

	var sb strings.Builder
	if err := chromahtml.New(opts...).Format(&sb, c.style, iterator); err != nil {
		return events.EscapeHTML(text)
	}

	c.nextLine += strings.Count(text, "\n")
	return sb.String()
}
