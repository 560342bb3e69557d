package site

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/stanzadev/stanza/pkg/events"
	"github.com/stanzadev/stanza/pkg/render"
)

// shortcodePattern matches one shortcode invocation: {{ name(args) }}.
// Arguments cannot contain a closing parenthesis, which keeps the scan a
// single regular pass; values needing one can be provided via templates.
var shortcodePattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\(([^)]*)\)\s*\}\}`)

// ExtractShortcodes scans content for shortcode invocations and returns
// them in source order with their byte spans, ready for splicing. The
// content itself is not modified; the renderer substitutes output at the
// spans.
func ExtractShortcodes(content string) ([]render.Shortcode, error) {
	matches := shortcodePattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	calls := make([]render.Shortcode, 0, len(matches))
	for _, m := range matches {
		name := content[m[2]:m[3]]
		args, err := parseShortcodeArgs(content[m[4]:m[5]])
		if err != nil {
			return nil, fmt.Errorf("shortcode %s: %w", name, err)
		}
		calls = append(calls, render.Shortcode{
			Name: name,
			Args: args,
			Span: events.Range{Start: m[0], End: m[1]},
		})
	}
	return calls, nil
}

// parseShortcodeArgs parses a comma-separated key=value list. Values are
// double-quoted strings, booleans, or numbers.
func parseShortcodeArgs(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	args := make(map[string]any)
	for _, pair := range splitArgs(raw) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not key=value", pair)
		}
		key = strings.TrimSpace(key)
		parsed, err := parseArgValue(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", key, err)
		}
		args[key] = parsed
	}
	return args, nil
}

// splitArgs splits on commas outside double quotes.
func splitArgs(raw string) []string {
	var parts []string
	var sb strings.Builder
	inString := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '"':
			inString = !inString
			sb.WriteByte(c)
		case c == ',' && !inString:
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	if sb.Len() > 0 {
		parts = append(parts, sb.String())
	}
	return parts
}

func parseArgValue(value string) (any, error) {
	switch {
	case value == "":
		return nil, fmt.Errorf("empty value")
	case strings.HasPrefix(value, `"`):
		s, err := strconv.Unquote(value)
		if err != nil {
			return nil, fmt.Errorf("bad string literal %s", value)
		}
		return s, nil
	case value == "true":
		return true, nil
	case value == "false":
		return false, nil
	default:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("unrecognized value %s", value)
	}
}
