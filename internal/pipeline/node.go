package pipeline

// Node is an immutable element of the rendered tree.
//
// The concrete types are *Element, Text, Raw, Fragment and *PendingCodeBlock.
// A PendingCodeBlock is deferred: GroupCodeBlocks replaces every one of
// them with markup before the tree is serialized.
type Node interface {
	isNode()
}

// Attr is an element attribute. A Bare attribute is written without a value.
type Attr struct {
	Key  string
	Val  string
	Bare bool
}

// Element is an HTML element. Void elements have no children and no end tag.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
	Void     bool
}

// Text is free text content, escaped on output.
type Text string

// Raw is trusted markup, written verbatim.
type Raw string

// Fragment is a sequence of nodes with no wrapping element.
type Fragment []Node

// PendingCodeBlock is a closed code block awaiting highlighting and grouping.
type PendingCodeBlock struct {
	Info    string
	HasInfo bool
	Code    string
}

func (*Element) isNode()          {}
func (Text) isNode()              {}
func (Raw) isNode()               {}
func (Fragment) isNode()          {}
func (*PendingCodeBlock) isNode() {}

// Language returns the first whitespace-delimited token of the info string.
func (p *PendingCodeBlock) Language() string {
	return languageOf(p.Info)
}

// el builds an element with optional class and children.
func el(tag, class string, children ...Node) *Element {
	e := &Element{Tag: tag, Children: children}
	if class != "" {
		e.Attrs = []Attr{{Key: "class", Val: class}}
	}
	return e
}

// void builds a void element.
func void(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs, Void: true}
}

// withAttrs returns a copy of e with attrs appended.
func (e *Element) withAttrs(attrs ...Attr) *Element {
	out := *e
	out.Attrs = append(append([]Attr(nil), e.Attrs...), attrs...)
	return &out
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
