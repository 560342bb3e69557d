// Package render turns Markdown content into an HTML body plus its derived
// artifacts: summary offset, table of contents, and the internal and
// external link inventories. It runs a single forward transform over the
// parse-event stream, followed by structural passes for sections, heading
// ids, and anchor links.
package render

import (
	"strings"

	"github.com/kyokomi/emoji/v2"

	"github.com/stanzadev/stanza/pkg/events"
)

const (
	// moreMarker splits the summary from the rest of the document.
	moreMarker = "<!-- more -->"

	// summarySentinel replaces moreMarker in the output. Its byte offset in
	// the final body is the summary length.
	summarySentinel = `<span id="continue-reading"></span>`
)

// Rendered is the complete output of one render call.
type Rendered struct {
	// Body is the final HTML fragment.
	Body string

	// SummaryLen is the byte offset of the continue-reading sentinel in
	// Body, nil when the document has no more-marker.
	SummaryLen *int

	// TOC is the heading tree.
	TOC []Heading

	// InternalLinks lists resolved site-local link targets in document
	// order, duplicates preserved.
	InternalLinks []InternalLink

	// ExternalLinks lists http(s) link targets in document order,
	// duplicates preserved.
	ExternalLinks []string
}

// transformer carries the state of one render call's forward pass.
type transformer struct {
	ctx     *Context
	content string
	cursor  shortcodeCursor
	out     []events.Event

	// code is the open highlighter session, nil outside fenced blocks.
	code *codeBlock

	// skipUntil is the source offset the splice has consumed through. The
	// parser may split a shortcode call across text events; fragment bytes
	// before this offset are the tail of an already-rendered call.
	skipUntil int

	// suppressEndParagraph is set when a paragraph start was swallowed
	// because the paragraph was exactly one shortcode call.
	suppressEndParagraph bool

	hasSummary bool
	err        error

	internalLinks []InternalLink
	externalLinks []string
}

func (t *transformer) emit(ev events.Event) { t.out = append(t.out, ev) }

// fail records the first error and lets the pass keep collecting the rest.
func (t *transformer) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

// filterText applies the emoji substitution to visible text when enabled.
func (t *transformer) filterText(s string) string {
	if t.ctx.Config.Markdown.RenderEmoji {
		return emoji.Sprint(s)
	}
	return s
}

// Render converts content to HTML under ctx, splicing the given shortcode
// calls at their source spans. Calls must arrive in source order with
// non-overlapping spans.
//
// Soft errors (a link with an empty target) leave a placeholder in the body
// and surface after the whole document has been processed, so one render
// reports as much as possible. Hard errors (unresolved internal links,
// shortcode template failures) also finish the pass first.
func Render(content string, ctx *Context, shortcodes []Shortcode) (*Rendered, error) {
	t := &transformer{
		ctx:     ctx,
		content: content,
		cursor:  shortcodeCursor{calls: shortcodes},
	}

	parsed := events.Parse([]byte(content), events.Options{
		SmartPunctuation: ctx.Config.Markdown.SmartPunctuation,
	})
	t.out = make([]events.Event, 0, len(parsed))

	for _, ev := range parsed {
		t.step(ev)
	}

	buf := compact(t.out)
	buf = wrapSections(buf, ctx.Config.Markdown.SectionTags)
	buf, flat, err := t.resolveHeadings(buf)
	if err != nil {
		return nil, err
	}

	body := events.RenderHTML(buf)

	rendered := &Rendered{
		Body:          body,
		TOC:           makeTableOfContents(flat),
		InternalLinks: t.internalLinks,
		ExternalLinks: t.externalLinks,
	}
	if t.hasSummary {
		if off := strings.Index(body, summarySentinel); off >= 0 {
			rendered.SummaryLen = &off
		}
	}

	if t.err != nil {
		return nil, t.err
	}
	return rendered, nil
}

// step transforms one parse event.
func (t *transformer) step(ev events.Event) {
	switch ev.Kind {
	case events.KindText:
		if t.code != nil {
			t.emit(events.HTMLEvent(t.code.highlight(ev.Text), events.Range{}))
			return
		}
		if err := t.spliceFragment(events.KindText, ev.Text, ev.Range); err != nil {
			t.fail(err)
		}

	case events.KindHTML:
		if !t.hasSummary && strings.Contains(ev.Text, moreMarker) {
			t.hasSummary = true
			t.emit(events.HTMLEvent(summarySentinel, events.Range{}))
			return
		}
		if err := t.spliceFragment(events.KindHTML, ev.Text, ev.Range); err != nil {
			t.fail(err)
		}

	case events.KindStart:
		t.startTag(ev)

	case events.KindEnd:
		t.endTag(ev)

	default:
		t.emit(ev)
	}
}

func (t *transformer) startTag(ev events.Event) {
	switch ev.Tag.Kind {
	case events.TagCodeBlock:
		if !t.ctx.Config.Markdown.HighlightCode {
			t.emit(ev)
			return
		}
		code, begin := newCodeBlock(t.ctx, ev.Tag.Info)
		t.code = code
		t.emit(events.HTMLEvent(begin, events.Range{}))

	case events.TagLink:
		t.startLink(ev)

	case events.TagParagraph:
		if t.paragraphIsShortcodeCall(ev.Range) {
			t.suppressEndParagraph = true
			return
		}
		t.emit(ev)

	default:
		t.emit(ev)
	}
}

func (t *transformer) endTag(ev events.Event) {
	switch ev.Tag.Kind {
	case events.TagCodeBlock:
		if t.code != nil {
			t.code = nil
			t.emit(events.HTMLEvent(endCodeBlock, events.Range{}))
			return
		}
		t.emit(ev)

	case events.TagParagraph:
		if t.suppressEndParagraph {
			t.suppressEndParagraph = false
			return
		}
		t.emit(ev)

	default:
		t.emit(ev)
	}
}

// startLink classifies and rewrites one link open event.
func (t *transformer) startLink(ev events.Event) {
	if ev.Tag.Destination == "" {
		t.fail(ErrMissingLinkURL)
		ev.Tag.Destination = "#"
		t.emit(ev)
		return
	}

	fixed, err := t.fixLink(ev.Tag.Link, ev.Tag.Destination)
	if err != nil {
		t.fail(err)
		ev.Tag.Destination = "#"
		t.emit(ev)
		return
	}

	if isExternalLink(fixed) && t.ctx.Config.Markdown.HasExternalLinkTweaks() {
		tag := t.ctx.Config.Markdown.ConstructExternalLinkTag(
			events.EscapeAttr(fixed), events.EscapeAttr(ev.Tag.Title))
		t.emit(events.HTMLEvent(tag, events.Range{}))
		return
	}

	ev.Tag.Destination = fixed
	t.emit(ev)
}

// paragraphIsShortcodeCall reports whether the paragraph at rng is exactly
// the next pending shortcode call, in which case its <p> wrapper is
// dropped so block-level shortcode output is not wrapped in a paragraph.
func (t *transformer) paragraphIsShortcodeCall(rng events.Range) bool {
	sc := t.cursor.peek()
	if sc == nil || rng.IsZero() {
		return false
	}
	if sc.Span.Start != rng.Start {
		return false
	}
	end := rng.End
	if end > len(t.content) {
		end = len(t.content)
	}
	return sc.Span.Len() == len(strings.TrimSpace(t.content[rng.Start:end]))
}

// compact drops the zero-length fragments left behind by splicing and
// suppression.
func compact(evs []events.Event) []events.Event {
	out := evs[:0]
	for _, ev := range evs {
		if ev.IsEmptyFragment() {
			continue
		}
		out = append(out, ev)
	}
	return out
}
