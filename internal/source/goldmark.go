// Package source produces markdown event streams from goldmark syntax trees.
package source

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-md2post/internal/event"
)

// Goldmark parses markdown with goldmark (GFM and footnotes) and flattens
// the syntax tree into events. Every Start it emits is matched by an End.
// It is safe for concurrent use.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates a Goldmark event source.
func NewGoldmark() *Goldmark {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, linkify, task lists
			extension.Footnote,
		),
	)
	return &Goldmark{md: md}
}

// Parse returns the goldmark syntax tree for markdown.
func (g *Goldmark) Parse(markdown []byte) ast.Node {
	return g.md.Parser().Parse(text.NewReader(markdown))
}

// Events parses markdown and returns its event stream.
func (g *Goldmark) Events(markdown []byte) []event.Event {
	w := &walker{src: markdown}
	// The walk callback never returns an error.
	_ = ast.Walk(g.Parse(markdown), w.visit)
	return w.events
}

type walker struct {
	src    []byte
	events []event.Event
}

func (w *walker) emit(ev event.Event) {
	if ev.Kind == event.KindText {
		if ev.Text == "" {
			return
		}
		if n := len(w.events); n > 0 && w.events[n-1].Kind == event.KindText {
			w.events[n-1].Text += ev.Text
			return
		}
	}
	w.events = append(w.events, ev)
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n.(type) {
	case *ast.Document, *ast.TextBlock:
		return ast.WalkContinue, nil
	}

	if isLeaf(n) {
		if entering {
			w.leaf(n)
		}
		return ast.WalkSkipChildren, nil
	}

	if !entering {
		w.emit(event.End())
		return ast.WalkContinue, nil
	}
	if _, ok := n.(*extast.FootnoteList); ok {
		w.emit(event.Rule())
	}
	w.emit(event.Start(container(n)))
	return ast.WalkContinue, nil
}

// isLeaf reports whether n is emitted as a whole, without visiting children.
func isLeaf(n ast.Node) bool {
	switch n.(type) {
	case *ast.Text, *ast.String, *ast.CodeSpan,
		*ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML,
		*ast.ThematicBreak, *ast.Image, *ast.AutoLink,
		*extast.TaskCheckBox, *extast.FootnoteLink, *extast.FootnoteBacklink:
		return true
	}
	return false
}

func (w *walker) leaf(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		w.emit(event.Text(string(w.textValue(n))))
		switch {
		case n.HardLineBreak():
			w.emit(event.HardBreak())
		case n.SoftLineBreak():
			w.emit(event.SoftBreak())
		}

	case *ast.String:
		w.emit(event.Text(string(n.Value)))

	case *ast.CodeSpan:
		w.emit(event.Code(w.codeSpan(n)))

	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = string(n.Info.Segment.Value(w.src))
		}
		w.codeBlock(event.CodeBlock(info), n.Lines())

	case *ast.CodeBlock:
		w.codeBlock(event.IndentedCodeBlock(), n.Lines())

	case *ast.HTMLBlock:
		var buf bytes.Buffer
		w.writeLines(&buf, n.Lines())
		if n.HasClosure() {
			buf.Write(n.ClosureLine.Value(w.src))
		}
		w.emit(event.HTML(buf.String()))

	case *ast.RawHTML:
		var buf bytes.Buffer
		w.writeLines(&buf, n.Segments)
		w.emit(event.InlineHTML(buf.String()))

	case *ast.ThematicBreak:
		w.emit(event.Rule())

	case *ast.Image:
		w.emit(event.Start(event.Image(string(n.Destination), string(n.Title))))
		w.emit(event.Text(w.plainText(n)))
		w.emit(event.End())

	case *ast.AutoLink:
		w.emit(event.Start(event.Link(string(n.URL(w.src)), "")))
		w.emit(event.Text(string(n.Label(w.src))))
		w.emit(event.End())

	case *extast.TaskCheckBox:
		w.emit(event.TaskMarker(n.IsChecked))

	case *extast.FootnoteLink:
		w.emit(event.FootnoteRef(strconv.Itoa(n.Index)))
	}
}

// container maps a node with children to the block it opens. Nodes with
// no dedicated block become Other so their content is kept.
func container(n ast.Node) event.Block {
	switch n := n.(type) {
	case *ast.Paragraph:
		return event.Paragraph()
	case *ast.Heading:
		return event.Heading(n.Level)
	case *ast.Blockquote:
		return event.BlockQuote()
	case *ast.List:
		if n.IsOrdered() {
			return event.OrderedList(uint64(max(n.Start, 0)))
		}
		return event.BulletList()
	case *ast.ListItem:
		return event.ListItem()
	case *ast.Emphasis:
		if n.Level >= 2 {
			return event.Strong()
		}
		return event.Emphasis()
	case *ast.Link:
		return event.Link(string(n.Destination), string(n.Title))
	case *extast.Strikethrough:
		return event.Strikethrough()
	case *extast.Table:
		return event.Table()
	case *extast.TableHeader:
		return event.TableHead()
	case *extast.TableRow:
		return event.TableRow()
	case *extast.TableCell:
		return event.TableCell()
	case *extast.FootnoteList:
		return event.OrderedList(1)
	case *extast.Footnote:
		return event.ListItem()
	}
	return event.Other()
}

func (w *walker) codeBlock(blk event.Block, lines *text.Segments) {
	var buf bytes.Buffer
	w.writeLines(&buf, lines)
	w.emit(event.Start(blk))
	w.emit(event.Text(buf.String()))
	w.emit(event.End())
}

func (w *walker) writeLines(buf *bytes.Buffer, lines *text.Segments) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(w.src))
	}
}

// textValue resolves backslash escapes and character references.
func (w *walker) textValue(t *ast.Text) []byte {
	v := t.Segment.Value(w.src)
	if t.IsRaw() {
		return v
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

// codeSpan joins a code span's text, turning line endings into spaces.
func (w *walker) codeSpan(n *ast.CodeSpan) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		var v []byte
		switch c := c.(type) {
		case *ast.Text:
			v = c.Segment.Value(w.src)
		case *ast.String:
			v = c.Value
		default:
			continue
		}
		if bytes.HasSuffix(v, []byte("\n")) {
			buf.Write(v[:len(v)-1])
			buf.WriteByte(' ')
			continue
		}
		buf.Write(v)
	}
	return buf.String()
}

// plainText flattens the inline content of n, used for image alt text.
func (w *walker) plainText(n ast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(w.textValue(c))
			if c.SoftLineBreak() || c.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		case *ast.CodeSpan:
			buf.WriteString(w.codeSpan(c))
		default:
			buf.WriteString(w.plainText(c))
		}
	}
	return buf.String()
}
