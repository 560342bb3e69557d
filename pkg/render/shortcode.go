package render

import (
	"github.com/stanzadev/stanza/pkg/events"
)

// Shortcode is one pending macro invocation: its template name, invocation
// arguments, and the byte span of the call in the source, where the
// rendered output must be substituted. Calls arrive in source order with
// strictly increasing, non-overlapping spans.
type Shortcode struct {
	Name string
	Args map[string]any
	Span events.Range
}

// render expands the shortcode through the template engine.
func (s *Shortcode) render(ctx *Context) (string, error) {
	data := make(map[string]any, len(s.Args)+1)
	for k, v := range s.Args {
		data[k] = v
	}
	data["lang"] = ctx.Lang

	out, err := ctx.Templates.Render(s.TemplateName(), data)
	if err != nil {
		return "", &ShortcodeError{Name: s.Name, Err: err}
	}
	return out, nil
}

// TemplateName returns the template the shortcode resolves to.
func (s *Shortcode) TemplateName() string {
	return "shortcodes/" + s.Name + ".html"
}

// shortcodeCursor walks the pending calls strictly forward. The pipeline
// never rescans an earlier call.
type shortcodeCursor struct {
	calls []Shortcode
	next  int
}

func (c *shortcodeCursor) peek() *Shortcode {
	if c.next >= len(c.calls) {
		return nil
	}
	return &c.calls[c.next]
}

func (c *shortcodeCursor) advance() { c.next++ }

// spliceFragment interpolates pending shortcode output into one text or
// raw-markup fragment. While the next call's span starts inside the
// fragment's source range, the prefix before the call is emitted, the call
// is rendered as a raw-markup event, and the fragment restarts after the
// call's span. The remainder is emitted as a single final event. Rendered
// output is never rescanned, so expansion is order-preserving and
// non-reentrant.
//
// A call's span may extend past the fragment it starts in, so the consumed
// offset persists on the transformer and later fragments drop the bytes it
// covers.
func (t *transformer) spliceFragment(kind events.Kind, text string, rng events.Range) error {
	if !rng.IsZero() && rng.Start < t.skipUntil {
		cut := t.skipUntil - rng.Start
		if cut >= len(text) {
			return nil
		}
		text = text[cut:]
		rng = events.Range{Start: t.skipUntil, End: rng.End}
	}

	for {
		sc := t.cursor.peek()
		if sc == nil || rng.IsZero() || !rng.Contains(sc.Span.Start) {
			break
		}

		if cut := sc.Span.Start - rng.Start; cut > 0 && cut <= len(text) {
			t.emitFragment(kind, text[:cut], events.Range{Start: rng.Start, End: sc.Span.Start})
		}

		out, err := sc.render(t.ctx)
		if err != nil {
			return err
		}
		t.emit(events.HTMLEvent(out, events.Range{}))
		t.skipUntil = sc.Span.End

		skip := sc.Span.End - rng.Start
		if skip > len(text) {
			skip = len(text)
		}
		text = text[skip:]
		rng = events.Range{Start: sc.Span.End, End: rng.End}
		t.cursor.advance()
	}

	t.emitFragment(kind, text, rng)
	return nil
}

// emitFragment pushes one surviving piece of a spliced fragment, applying
// the emoji filter to visible text when enabled.
func (t *transformer) emitFragment(kind events.Kind, text string, rng events.Range) {
	if kind == events.KindText {
		t.emit(events.TextEvent(t.filterText(text), rng))
		return
	}
	t.emit(events.HTMLEvent(text, rng))
}
