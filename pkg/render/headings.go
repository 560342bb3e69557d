package render

import (
	"fmt"
	"strings"

	"github.com/stanzadev/stanza/pkg/config"
	"github.com/stanzadev/stanza/pkg/events"
	"github.com/stanzadev/stanza/pkg/templates"
)

// headingRef locates one heading inside the event buffer.
type headingRef struct {
	startIdx int
	endIdx   int
	level    int
	id       string
	hasID    bool
	title    string
}

// findHeadings pairs heading start and end events by index.
func findHeadings(evs []events.Event) []headingRef {
	var refs []headingRef
	for i, ev := range evs {
		switch {
		case ev.Kind == events.KindStart && ev.Tag.Kind == events.TagHeading:
			refs = append(refs, headingRef{startIdx: i, level: ev.Tag.Level})
		case ev.Kind == events.KindEnd && ev.Tag.Kind == events.TagHeading:
			refs[len(refs)-1].endIdx = i
		}
	}
	return refs
}

// innerText concatenates the visible text of the events between a
// heading's start and end.
func innerText(evs []events.Event) string {
	var sb strings.Builder
	for _, ev := range evs {
		if ev.Kind == events.KindText || ev.Kind == events.KindCode {
			sb.WriteString(ev.Text)
		}
	}
	return sb.String()
}

// stripExplicitID removes a trailing "{#custom-id}" marker from a heading's
// final text event and returns the id it carried. The first "{#" opens the
// marker and everything up to the closing brace at the end of the heading
// is the id, however odd its contents.
func stripExplicitID(text string) (rest, id string, ok bool) {
	trimmed := strings.TrimRight(text, " \t")
	if !strings.HasSuffix(trimmed, "}") {
		return "", "", false
	}
	open := strings.Index(trimmed, "{#")
	if open < 0 {
		return "", "", false
	}
	id = trimmed[open+2 : len(trimmed)-1]
	if id == "" {
		return "", "", false
	}
	return strings.TrimRight(trimmed[:open], " \t"), id, true
}

// resolveHeadings assigns an id to every heading, rewrites the heading
// start events to carry it, splices in anchor links when configured, and
// returns the resulting buffer with the flat heading list for the TOC.
//
// Explicit "{#id}" markers are honored verbatim, duplicates included.
// Generated ids are disambiguated against every id already in use.
func (t *transformer) resolveHeadings(evs []events.Event) ([]events.Event, []Heading, error) {
	refs := findHeadings(evs)
	if len(refs) == 0 {
		return evs, nil, nil
	}

	var used []string
	for i := range refs {
		ref := &refs[i]
		last := evs[ref.endIdx-1]
		if last.Kind != events.KindText {
			continue
		}
		if rest, id, ok := stripExplicitID(last.Text); ok {
			evs[ref.endIdx-1] = events.TextEvent(rest, last.Range)
			ref.id = id
			ref.hasID = true
			used = append(used, id)
		}
	}

	for i := range refs {
		ref := &refs[i]
		ref.title = innerText(evs[ref.startIdx+1 : ref.endIdx])
		if !ref.hasID {
			ref.id = findAnchor(used, slugify(ref.title))
			used = append(used, ref.id)
		}
	}

	var inserts []events.Insertion
	for _, ref := range refs {
		evs[ref.startIdx] = events.HTMLEvent(fmt.Sprintf(`<h%d id="%s">`,
			ref.level, events.EscapeAttr(ref.id)), events.Range{})

		if t.ctx.InsertAnchor == config.AnchorNone {
			continue
		}
		anchor, err := t.ctx.Templates.Render(templates.AnchorLinkTemplate, map[string]any{
			"id":    ref.id,
			"level": ref.level,
			"lang":  t.ctx.Lang,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to render anchor link template: %w", err)
		}
		idx := ref.startIdx + 1
		if t.ctx.InsertAnchor == config.AnchorRight {
			idx = ref.endIdx
		}
		inserts = append(inserts, events.Insertion{Index: idx, Event: events.HTMLEvent(anchor, events.Range{})})
	}
	evs = events.InsertMany(evs, inserts)

	headings := make([]Heading, 0, len(refs))
	for _, ref := range refs {
		headings = append(headings, Heading{
			Level:     ref.level,
			ID:        ref.id,
			Permalink: t.ctx.CurrentPermalink + "#" + ref.id,
			Title:     ref.title,
		})
	}
	return evs, headings, nil
}
