package render

import (
	"github.com/stanzadev/stanza/pkg/config"
	"github.com/stanzadev/stanza/pkg/events"
)

// wrapSections interleaves <section> markup with the event stream so each
// heading opens a section that closes where its scope ends. The input
// slice is not modified.
func wrapSections(evs []events.Event, mode config.SectionMode) []events.Event {
	switch mode {
	case config.SectionsHierarchical:
		return wrapHierarchical(evs)
	case config.SectionsFlat:
		return wrapFlat(evs)
	default:
		return evs
	}
}

// wrapHierarchical nests sections by heading level: an h3 section closes
// when the next h3-or-shallower heading appears, so subheadings stay
// inside their parent's section.
func wrapHierarchical(evs []events.Event) []events.Event {
	out := make([]events.Event, 0, len(evs)+8)
	var open []int

	for _, ev := range evs {
		if ev.Kind == events.KindStart && ev.Tag.Kind == events.TagHeading {
			level := ev.Tag.Level
			for len(open) > 0 && open[len(open)-1] > level {
				out = append(out, events.HTMLEvent("</section>", events.Range{}))
				open = open[:len(open)-1]
			}
			if len(open) > 0 && open[len(open)-1] == level {
				out = append(out, events.HTMLEvent("</section><section>", events.Range{}))
			} else {
				out = append(out, events.HTMLEvent("<section>", events.Range{}))
				open = append(open, level)
			}
		}
		out = append(out, ev)
	}

	for range open {
		out = append(out, events.HTMLEvent("</section>", events.Range{}))
	}
	return out
}

// wrapFlat opens a new section at every heading regardless of level.
func wrapFlat(evs []events.Event) []events.Event {
	out := make([]events.Event, 0, len(evs)+8)
	opened := false

	for _, ev := range evs {
		if ev.Kind == events.KindStart && ev.Tag.Kind == events.TagHeading {
			if opened {
				out = append(out, events.HTMLEvent("</section>", events.Range{}))
			}
			out = append(out, events.HTMLEvent("<section>", events.Range{}))
			opened = true
		}
		out = append(out, ev)
	}

	if opened {
		out = append(out, events.HTMLEvent("</section>", events.Range{}))
	}
	return out
}
