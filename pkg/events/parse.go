package events

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Options controls event production.
type Options struct {
	// SmartPunctuation enables typographic substitution of quotes, dashes
	// and ellipses. Substituted runs carry no source range.
	SmartPunctuation bool
}

// Parse tokenizes source with goldmark (GFM) and flattens the AST into a
// document-order event sequence. Events carry source byte ranges wherever
// goldmark exposes segments for the producing node.
func Parse(source []byte, opts Options) []Event {
	gmOpts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
	}
	if opts.SmartPunctuation {
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.Typographer))
	}

	md := goldmark.New(gmOpts...)
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	p := &producer{source: source}
	_ = ast.Walk(doc, p.visit)
	return p.events
}

// producer flattens a goldmark AST into events during a single walk.
type producer struct {
	source []byte
	events []Event
}

func (p *producer) emit(e Event) {
	p.events = append(p.events, e)
}

//nolint:cyclop // exhaustive dispatch over the goldmark node set
func (p *producer) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Document:
		return ast.WalkContinue, nil

	case *ast.Heading:
		p.emitTagPair(entering, Tag{Kind: TagHeading, Level: node.Level})

	case *ast.Paragraph:
		tag := Tag{Kind: TagParagraph}
		if entering {
			p.emit(Event{Kind: KindStart, Tag: tag, Range: blockRange(node)})
		} else {
			p.emit(EndEvent(tag))
		}

	case *ast.TextBlock:
		// Tight list-item content: children only, no paragraph tags.
		return ast.WalkContinue, nil

	case *ast.Blockquote:
		p.emitTagPair(entering, Tag{Kind: TagBlockquote})

	case *ast.FencedCodeBlock:
		if entering {
			info := ""
			if node.Info != nil {
				info = string(node.Info.Value(p.source))
			}
			p.emitCodeBlock(node, info)
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			p.emitCodeBlock(node, "")
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock:
		if entering {
			p.emitHTMLBlock(node)
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			p.emit(Event{Kind: KindRule})
		}

	case *ast.List:
		tag := Tag{Kind: TagList, Ordered: node.IsOrdered(), Start: node.Start}
		p.emitTagPair(entering, tag)

	case *ast.ListItem:
		p.emitTagPair(entering, Tag{Kind: TagListItem})

	case *ast.Text:
		if entering {
			seg := node.Segment
			p.emit(TextEvent(string(node.Value(p.source)), Range{Start: seg.Start, End: seg.Stop}))
			switch {
			case node.HardLineBreak():
				p.emit(Event{Kind: KindHardBreak})
			case node.SoftLineBreak():
				p.emit(Event{Kind: KindSoftBreak})
			}
		}

	case *ast.String:
		if entering {
			// Typographer substitutions arrive code-flagged and carry
			// pre-encoded entities; escaping them again would corrupt
			// the output.
			if node.IsRaw() || node.IsCode() {
				p.emit(HTMLEvent(string(node.Value), Range{}))
			} else {
				p.emit(TextEvent(string(node.Value), Range{}))
			}
		}

	case *ast.CodeSpan:
		if entering {
			p.emit(Event{Kind: KindCode, Text: string(codeSpanText(node, p.source))})
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			kind := LinkAuto
			if node.AutoLinkType == ast.AutoLinkEmail {
				kind = LinkEmail
			}
			tag := Tag{Kind: TagLink, Link: kind, Destination: string(node.URL(p.source))}
			p.emit(StartEvent(tag))
			p.emit(TextEvent(string(node.Label(p.source)), Range{}))
			p.emit(EndEvent(tag))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		tag := Tag{
			Kind:        TagLink,
			Link:        LinkInline,
			Destination: string(node.Destination),
			Title:       string(node.Title),
		}
		p.emitTagPair(entering, tag)

	case *ast.Image:
		tag := Tag{
			Kind:        TagImage,
			Destination: string(node.Destination),
			Title:       string(node.Title),
		}
		p.emitTagPair(entering, tag)

	case *ast.RawHTML:
		if entering {
			for i := range node.Segments.Len() {
				seg := node.Segments.At(i)
				p.emit(HTMLEvent(string(seg.Value(p.source)), Range{Start: seg.Start, End: seg.Stop}))
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		kind := TagEmphasis
		if node.Level == 2 {
			kind = TagStrong
		}
		p.emitTagPair(entering, Tag{Kind: kind})

	case *east.Strikethrough:
		p.emitTagPair(entering, Tag{Kind: TagStrikethrough})

	case *east.TaskCheckBox:
		if entering {
			p.emit(Event{Kind: KindTaskMarker, Checked: node.IsChecked})
		}

	case *east.Table:
		p.emitTagPair(entering, Tag{Kind: TagTable})

	case *east.TableHeader:
		p.emitTagPair(entering, Tag{Kind: TagTableHead})

	case *east.TableRow:
		p.emitTagPair(entering, Tag{Kind: TagTableRow})

	case *east.TableCell:
		p.emitTagPair(entering, Tag{Kind: TagTableCell, Alignment: cellAlignment(node.Alignment)})

	default:
		// Unknown node kinds contribute nothing but their children still
		// get visited, preserving the pass-through default.
		return ast.WalkContinue, nil
	}

	return ast.WalkContinue, nil
}

func (p *producer) emitTagPair(entering bool, tag Tag) {
	if entering {
		p.emit(StartEvent(tag))
	} else {
		p.emit(EndEvent(tag))
	}
}

// emitCodeBlock emits the open tag, one text event per source line, and the
// close tag for a code block. Per-line events keep source ranges intact so
// shortcode span bookkeeping stays valid across the block.
func (p *producer) emitCodeBlock(node ast.Node, info string) {
	tag := Tag{Kind: TagCodeBlock, Info: info}
	p.emit(StartEvent(tag))
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		p.emit(TextEvent(string(seg.Value(p.source)), Range{Start: seg.Start, End: seg.Stop}))
	}
	p.emit(EndEvent(tag))
}

// emitHTMLBlock emits one raw-markup event per block line plus the closure
// line when present.
func (p *producer) emitHTMLBlock(node *ast.HTMLBlock) {
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		p.emit(HTMLEvent(string(seg.Value(p.source)), Range{Start: seg.Start, End: seg.Stop}))
	}
	if node.HasClosure() {
		seg := node.ClosureLine
		p.emit(HTMLEvent(string(seg.Value(p.source)), Range{Start: seg.Start, End: seg.Stop}))
	}
}

// blockRange returns the byte span covered by a block node's lines.
func blockRange(node ast.Node) Range {
	lines := node.Lines()
	if lines.Len() == 0 {
		return Range{}
	}
	return Range{Start: lines.At(0).Start, End: lines.At(lines.Len() - 1).Stop}
}

// codeSpanText concatenates the text children of a code span.
func codeSpanText(node *ast.CodeSpan, source []byte) []byte {
	var buf []byte
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf = append(buf, t.Value(source)...)
		}
	}
	return buf
}

// cellAlignment maps a GFM cell alignment to its HTML attribute value.
func cellAlignment(a east.Alignment) string {
	switch a {
	case east.AlignLeft:
		return "left"
	case east.AlignCenter:
		return "center"
	case east.AlignRight:
		return "right"
	default:
		return ""
	}
}
