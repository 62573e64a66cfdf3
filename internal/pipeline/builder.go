package pipeline

import (
	"strconv"
	"strings"

	"github.com/alnah/go-md2post/internal/event"
)

// Heading is a rendered heading, reported in document order.
type Heading struct {
	Level int
	Slug  string
	Text  string
}

// frame is an element still waiting for its End event.
type frame struct {
	block    event.Block
	children []Node

	// text collects code block source, heading text for the slug, or
	// image alt text, depending on the block kind.
	text strings.Builder

	// src is the resolved destination of an image frame.
	src string
}

// Builder turns an event stream into a node tree using a stack of open
// frames. The bottom frame is the document root and is never popped.
//
// A Builder renders exactly one document and is not safe for concurrent use.
type Builder struct {
	stack    []*frame
	slugs    SlugRegistry
	images   *ImageResolver
	headings []Heading
	err      error
}

// NewBuilder creates a Builder that resolves local images with images.
// A nil resolver uses the default images root and an empty document id.
func NewBuilder(images *ImageResolver) *Builder {
	if images == nil {
		images = NewImageResolver("", "")
	}
	return &Builder{
		stack:  []*frame{{block: event.Other()}},
		images: images,
	}
}

// Depth returns the number of open frames, including the root.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Push processes one event. It fails only when an image cannot be resolved;
// once it has failed, every later call returns the same error.
func (b *Builder) Push(ev event.Event) error {
	if b.err != nil {
		return b.err
	}

	switch ev.Kind {
	case event.KindStart:
		return b.start(ev.Block)
	case event.KindEnd:
		b.end()
	case event.KindText:
		b.text(ev.Text)
	case event.KindCode:
		b.code(ev.Text)
	case event.KindMath:
		if ev.Display {
			b.appendChild(el("div", classMathBlock, Text(ev.Text)))
		} else {
			b.appendChild(el("span", classMathInline, Text(ev.Text)))
		}
	case event.KindHTML:
		b.appendChild(Raw(ev.Text))
	case event.KindFootnoteRef:
		b.appendChild(el("sup", classFootnote, Text(ev.Text)))
	case event.KindSoftBreak:
		b.appendChild(Text(" "))
	case event.KindHardBreak:
		b.appendChild(void("br"))
	case event.KindRule:
		b.appendChild(void("hr", Attr{Key: "class", Val: classRule}))
	case event.KindTaskMarker:
		attrs := []Attr{{Key: "type", Val: "checkbox"}, {Key: "disabled", Bare: true}}
		if ev.Checked {
			attrs = append(attrs, Attr{Key: "checked", Bare: true})
		}
		b.appendChild(void("input", attrs...))
	}
	return nil
}

// Finish closes any frames left open and returns the root's children.
// The result may still contain PendingCodeBlock nodes.
func (b *Builder) Finish() []Node {
	for len(b.stack) > 1 {
		b.end()
	}
	return b.stack[0].children
}

// Headings returns the headings closed so far, in document order.
func (b *Builder) Headings() []Heading {
	return append([]Heading(nil), b.headings...)
}

func (b *Builder) top() *frame {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) appendChild(n Node) {
	top := b.top()
	top.children = append(top.children, n)
}

// nearest returns the innermost open frame of the given kind, or nil.
func (b *Builder) nearest(kind event.BlockKind) *frame {
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].block.Kind == kind {
			return b.stack[i]
		}
	}
	return nil
}

func (b *Builder) start(blk event.Block) error {
	f := &frame{block: blk}
	if blk.Kind == event.BlockImage {
		src, err := b.images.Resolve(blk.Dest)
		if err != nil {
			b.err = err
			return err
		}
		f.src = src
	}
	b.stack = append(b.stack, f)
	return nil
}

// end pops the top frame into its parent. Underflow is ignored.
func (b *Builder) end() {
	if len(b.stack) <= 1 {
		return
	}
	f := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	b.appendChild(b.close(f))
}

func (b *Builder) text(s string) {
	top := b.top()
	if top.block.Kind == event.BlockCodeBlock {
		top.text.WriteString(s)
		return
	}
	if h := b.nearest(event.BlockHeading); h != nil {
		h.text.WriteString(s)
	}
	if top.block.Kind == event.BlockImage {
		top.text.WriteString(s)
		return
	}
	top.children = append(top.children, Text(s))
}

func (b *Builder) code(s string) {
	top := b.top()
	if top.block.Kind == event.BlockCodeBlock {
		top.text.WriteString(s)
		return
	}
	if h := b.nearest(event.BlockHeading); h != nil {
		h.text.WriteString(s)
	}
	if top.block.Kind == event.BlockImage {
		top.text.WriteString(s)
		return
	}
	top.children = append(top.children, el("code", classInlineCode, Text(s)))
}

// close renders a popped frame. The stack no longer contains f.
func (b *Builder) close(f *frame) Node {
	blk := f.block
	switch blk.Kind {
	case event.BlockParagraph:
		return el("p", classParagraph, f.children...)
	case event.BlockHeading:
		return b.heading(f)
	case event.BlockBlockQuote:
		return el("blockquote", classBlockQuote, f.children...)
	case event.BlockCodeBlock:
		return &PendingCodeBlock{Info: blk.Info, HasInfo: blk.HasInfo, Code: f.text.String()}
	case event.BlockList:
		if blk.Start == nil {
			return el("ul", classBullets, f.children...)
		}
		return el("ol", classNumbered, f.children...).withAttrs(
			Attr{Key: "start", Val: strconv.FormatUint(*blk.Start, 10)},
		)
	case event.BlockListItem:
		return el("li", classListItem, f.children...)
	case event.BlockEmphasis:
		return el("em", "", f.children...)
	case event.BlockStrong:
		return el("strong", "", f.children...)
	case event.BlockStrikethrough:
		return el("del", "", f.children...)
	case event.BlockLink:
		return link(blk, f.children)
	case event.BlockImage:
		return figure(f)
	case event.BlockTable:
		return el("table", classTable, f.children...)
	case event.BlockTableHead:
		return el("thead", "", headRow(f.children)...)
	case event.BlockTableRow:
		return el("tr", "", f.children...)
	case event.BlockTableCell:
		tag := "td"
		if b.inTableHead() {
			tag = "th"
		}
		return el(tag, classTableCell, f.children...)
	default:
		return Fragment(f.children)
	}
}

func (b *Builder) heading(f *frame) Node {
	text := f.text.String()
	slug := b.slugs.Assign(text)
	level := f.block.Level
	b.headings = append(b.headings, Heading{Level: level, Slug: slug, Text: strings.TrimSpace(text)})

	tag, class := "h3", classHeading3
	switch {
	case level <= 1:
		tag, class = "h1", classHeading1
	case level == 2:
		tag, class = "h2", classHeading2
	}

	permalink := el("a", classPermalink, Text("#")).withAttrs(
		Attr{Key: "href", Val: "#" + slug},
		Attr{Key: "aria-label", Val: "Permalink"},
	)
	children := append(append([]Node(nil), f.children...), permalink)
	return el(tag, class, children...).withAttrs(Attr{Key: "id", Val: slug})
}

// inTableHead reports whether the innermost open table section is a head.
func (b *Builder) inTableHead() bool {
	for i := len(b.stack) - 1; i > 0; i-- {
		switch b.stack[i].block.Kind {
		case event.BlockTableHead:
			return true
		case event.BlockTable:
			return false
		}
	}
	return false
}

// headRow wraps header cells in a row when the source emits them directly
// under the head.
func headRow(children []Node) []Node {
	for _, c := range children {
		if e, ok := c.(*Element); ok && e.Tag == "tr" {
			return children
		}
	}
	return []Node{el("tr", "", children...)}
}

// IsExternal reports whether dest opens outside the site.
func IsExternal(dest string) bool {
	return strings.HasPrefix(dest, "http://") ||
		strings.HasPrefix(dest, "https://") ||
		strings.HasPrefix(dest, "mailto:")
}

func link(blk event.Block, children []Node) Node {
	attrs := []Attr{{Key: "href", Val: blk.Dest}}
	if blk.Title != "" {
		attrs = append(attrs, Attr{Key: "title", Val: blk.Title})
	}
	if IsExternal(blk.Dest) {
		attrs = append(attrs,
			Attr{Key: "target", Val: "_blank"},
			Attr{Key: "rel", Val: "noopener noreferrer"},
		)
	}
	return el("a", classLink, children...).withAttrs(attrs...)
}

func figure(f *frame) Node {
	img := void("img",
		Attr{Key: "src", Val: f.src},
		Attr{Key: "alt", Val: f.text.String()},
		Attr{Key: "class", Val: classImage},
		Attr{Key: "loading", Val: "lazy"},
	)
	if f.block.Title == "" {
		return el("figure", classFigure, img)
	}
	return el("figure", classFigure, img, el("figcaption", classCaption, Text(f.block.Title)))
}
