// Package events defines the parse-event model shared by the rendering
// pipeline: a closed tagged-variant Event type produced from goldmark's AST,
// plus an HTML serializer for the final event sequence.
package events

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies an Event.
type Kind uint8

const (
	// KindText is a run of text to be escaped on output.
	KindText Kind = iota

	// KindHTML is a raw markup fragment emitted verbatim.
	KindHTML

	// KindCode is an inline code span.
	KindCode

	// KindStart opens a structural tag.
	KindStart

	// KindEnd closes a structural tag.
	KindEnd

	// KindSoftBreak is a soft line break within a paragraph.
	KindSoftBreak

	// KindHardBreak is a hard line break (trailing backslash or two spaces).
	KindHardBreak

	// KindRule is a thematic break.
	KindRule

	// KindTaskMarker is a GFM task-list checkbox.
	KindTaskMarker
)

// TagKind classifies the structural tag of a KindStart/KindEnd event.
type TagKind uint8

const (
	TagParagraph TagKind = iota
	TagHeading
	TagBlockquote
	TagCodeBlock
	TagList
	TagListItem
	TagEmphasis
	TagStrong
	TagStrikethrough
	TagLink
	TagImage
	TagTable
	TagTableHead
	TagTableRow
	TagTableCell
)

// LinkKind distinguishes how a link was written in the source.
type LinkKind uint8

const (
	// LinkInline is a standard inline or reference link.
	LinkInline LinkKind = iota

	// LinkAuto is an autolinked URL.
	LinkAuto

	// LinkEmail is an autolinked email address.
	LinkEmail
)

// Tag is the payload of a KindStart or KindEnd event. Fields beyond Kind are
// populated only for the tag kinds that use them.
type Tag struct {
	Kind TagKind

	// Level is the heading level (TagHeading).
	Level int

	// Info is the fence info string (TagCodeBlock). Empty for indented blocks.
	Info string

	// Destination and Title describe a link or image target
	// (TagLink, TagImage).
	Destination string
	Title       string
	Link        LinkKind

	// Ordered and Start describe a list (TagList).
	Ordered bool
	Start   int

	// Alignment is the cell alignment for TagTableCell ("", "left",
	// "center", "right").
	Alignment string
}

// Range is a half-open byte span [Start, End) in the source document.
// The zero Range means the producing node had no usable source position.
type Range struct {
	Start int
	End   int
}

// IsZero reports whether the range carries no position information.
func (r Range) IsZero() bool { return r.Start == 0 && r.End == 0 }

// Len returns the length of the range in bytes.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether the byte offset falls inside the range.
func (r Range) Contains(off int) bool { return off >= r.Start && off < r.End }

// Event is one unit of the parser's linear output. Exactly one of the
// payload fields is meaningful for a given Kind:
//
//   - KindText, KindHTML, KindCode: Text
//   - KindStart, KindEnd: Tag
//   - KindTaskMarker: Checked
//
// Events are immutable once produced; the pipeline substitutes new events
// at the same logical position instead of mutating in place.
type Event struct {
	Kind    Kind
	Tag     Tag
	Text    string
	Checked bool

	// Range is the source byte span this event was produced from, when the
	// parser exposes one.
	Range Range
}

// TextEvent returns a text event covering the given source range.
func TextEvent(s string, r Range) Event {
	return Event{Kind: KindText, Text: s, Range: r}
}

// HTMLEvent returns a raw-markup event covering the given source range.
func HTMLEvent(s string, r Range) Event {
	return Event{Kind: KindHTML, Text: s, Range: r}
}

// StartEvent returns a structural open event.
func StartEvent(tag Tag) Event { return Event{Kind: KindStart, Tag: tag} }

// EndEvent returns a structural close event.
func EndEvent(tag Tag) Event { return Event{Kind: KindEnd, Tag: tag} }

// IsEmptyFragment reports whether the event is a text or markup fragment
// that carries no bytes. The pipeline drops such events after splicing.
func (e Event) IsEmptyFragment() bool {
	switch e.Kind {
	case KindText, KindHTML:
		return e.Text == ""
	default:
		return false
	}
}
