package events

import (
	"fmt"
	"io"
	"strings"
)

// RenderHTML serializes a final event sequence to an HTML fragment.
func RenderHTML(evs []Event) string {
	var sb strings.Builder
	w := &htmlWriter{out: &sb}
	w.writeAll(evs)
	return sb.String()
}

// WriteHTML serializes a final event sequence to w.
func WriteHTML(w io.Writer, evs []Event) error {
	var sb strings.Builder
	hw := &htmlWriter{out: &sb}
	hw.writeAll(evs)
	_, err := io.WriteString(w, sb.String())
	return err
}

// htmlWriter tracks the little state HTML emission needs: table-header
// position for th/td selection.
type htmlWriter struct {
	out         *strings.Builder
	inTableHead bool
}

func (w *htmlWriter) writeAll(evs []Event) {
	for i := 0; i < len(evs); i++ {
		i = w.write(evs, i)
	}
}

// write emits the event at index i and returns the index of the last event
// consumed (images swallow their alt-text children).
func (w *htmlWriter) write(evs []Event, i int) int {
	e := evs[i]
	switch e.Kind {
	case KindText:
		w.out.WriteString(EscapeHTML(e.Text))
	case KindHTML:
		w.out.WriteString(e.Text)
	case KindCode:
		w.out.WriteString("<code>")
		w.out.WriteString(EscapeHTML(e.Text))
		w.out.WriteString("</code>")
	case KindSoftBreak:
		w.out.WriteByte('\n')
	case KindHardBreak:
		w.out.WriteString("<br />\n")
	case KindRule:
		w.out.WriteString("<hr />\n")
	case KindTaskMarker:
		if e.Checked {
			w.out.WriteString(`<input disabled="" type="checkbox" checked=""/> `)
		} else {
			w.out.WriteString(`<input disabled="" type="checkbox"/> `)
		}
	case KindStart:
		if e.Tag.Kind == TagImage {
			return w.writeImage(evs, i)
		}
		w.writeStart(e.Tag)
	case KindEnd:
		w.writeEnd(e.Tag)
	}
	return i
}

func (w *htmlWriter) writeStart(t Tag) {
	switch t.Kind {
	case TagParagraph:
		w.out.WriteString("<p>")
	case TagHeading:
		fmt.Fprintf(w.out, "<h%d>", t.Level)
	case TagBlockquote:
		w.out.WriteString("<blockquote>\n")
	case TagCodeBlock:
		if lang := fenceLanguage(t.Info); lang != "" {
			fmt.Fprintf(w.out, "<pre><code class=\"language-%s\">", EscapeAttr(lang))
		} else {
			w.out.WriteString("<pre><code>")
		}
	case TagList:
		switch {
		case t.Ordered && t.Start != 1:
			fmt.Fprintf(w.out, "<ol start=\"%d\">\n", t.Start)
		case t.Ordered:
			w.out.WriteString("<ol>\n")
		default:
			w.out.WriteString("<ul>\n")
		}
	case TagListItem:
		w.out.WriteString("<li>")
	case TagEmphasis:
		w.out.WriteString("<em>")
	case TagStrong:
		w.out.WriteString("<strong>")
	case TagStrikethrough:
		w.out.WriteString("<del>")
	case TagLink:
		w.out.WriteString(`<a href="`)
		if t.Link == LinkEmail && !strings.HasPrefix(t.Destination, "mailto:") {
			w.out.WriteString("mailto:")
		}
		w.out.WriteString(EscapeAttr(t.Destination))
		w.out.WriteByte('"')
		if t.Title != "" {
			fmt.Fprintf(w.out, " title=\"%s\"", EscapeAttr(t.Title))
		}
		w.out.WriteByte('>')
	case TagTable:
		w.out.WriteString("<table>")
	case TagTableHead:
		w.inTableHead = true
		w.out.WriteString("<thead><tr>")
	case TagTableRow:
		w.out.WriteString("<tr>")
	case TagTableCell:
		cell := "td"
		if w.inTableHead {
			cell = "th"
		}
		if t.Alignment != "" {
			fmt.Fprintf(w.out, "<%s align=\"%s\">", cell, t.Alignment)
		} else {
			fmt.Fprintf(w.out, "<%s>", cell)
		}
	case TagImage:
		// Handled by writeImage.
	}
}

func (w *htmlWriter) writeEnd(t Tag) {
	switch t.Kind {
	case TagParagraph:
		w.out.WriteString("</p>\n")
	case TagHeading:
		fmt.Fprintf(w.out, "</h%d>\n", t.Level)
	case TagBlockquote:
		w.out.WriteString("</blockquote>\n")
	case TagCodeBlock:
		w.out.WriteString("</code></pre>\n")
	case TagList:
		if t.Ordered {
			w.out.WriteString("</ol>\n")
		} else {
			w.out.WriteString("</ul>\n")
		}
	case TagListItem:
		w.out.WriteString("</li>\n")
	case TagEmphasis:
		w.out.WriteString("</em>")
	case TagStrong:
		w.out.WriteString("</strong>")
	case TagStrikethrough:
		w.out.WriteString("</del>")
	case TagLink:
		w.out.WriteString("</a>")
	case TagTable:
		w.out.WriteString("</tbody></table>\n")
	case TagTableHead:
		w.inTableHead = false
		w.out.WriteString("</tr></thead><tbody>\n")
	case TagTableRow:
		w.out.WriteString("</tr>\n")
	case TagTableCell:
		if w.inTableHead {
			w.out.WriteString("</th>")
		} else {
			w.out.WriteString("</td>")
		}
	case TagImage:
		// Handled by writeImage.
	}
}

// writeImage emits an <img> tag, consuming the alt-text events up to the
// matching image end. Returns the index of the end event.
func (w *htmlWriter) writeImage(evs []Event, start int) int {
	tag := evs[start].Tag
	var alt strings.Builder
	depth := 0
	i := start
	for ; i < len(evs); i++ {
		e := evs[i]
		switch {
		case e.Kind == KindStart && e.Tag.Kind == TagImage:
			depth++
		case e.Kind == KindEnd && e.Tag.Kind == TagImage:
			depth--
		case e.Kind == KindText || e.Kind == KindCode:
			alt.WriteString(e.Text)
		}
		if depth == 0 {
			break
		}
	}

	fmt.Fprintf(w.out, "<img src=\"%s\" alt=\"%s\"", EscapeAttr(tag.Destination), EscapeAttr(alt.String()))
	if tag.Title != "" {
		fmt.Fprintf(w.out, " title=\"%s\"", EscapeAttr(tag.Title))
	}
	w.out.WriteString(" />")
	return i
}

// fenceLanguage returns the language token of a fence info string: the text
// before the first space or comma.
func fenceLanguage(info string) string {
	info = strings.TrimSpace(info)
	if i := strings.IndexAny(info, " \t,"); i >= 0 {
		info = info[:i]
	}
	return info
}

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
)

// EscapeHTML escapes text content for HTML output.
func EscapeHTML(s string) string { return htmlEscaper.Replace(s) }

// EscapeAttr escapes a string for use inside a double-quoted attribute.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }
