// Package event defines the flat markdown event stream consumed by the
// rendering pipeline.
//
// A document is an ordered sequence of Event values. Structural elements
// open with a KindStart event carrying a Block and close with a KindEnd
// event; everything in between is nested inside. Leaf events (text, code,
// breaks, raw HTML) carry their payload directly.
package event

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of an Event.
type Kind int

// Event kinds.
const (
	KindStart Kind = iota
	KindEnd
	KindText
	KindCode
	KindMath
	KindHTML
	KindFootnoteRef
	KindSoftBreak
	KindHardBreak
	KindRule
	KindTaskMarker
)

var kindNames = [...]string{
	KindStart:       "Start",
	KindEnd:         "End",
	KindText:        "Text",
	KindCode:        "Code",
	KindMath:        "Math",
	KindHTML:        "HTML",
	KindFootnoteRef: "FootnoteRef",
	KindSoftBreak:   "SoftBreak",
	KindHardBreak:   "HardBreak",
	KindRule:        "Rule",
	KindTaskMarker:  "TaskMarker",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is one unit of the stream. Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	// Block describes the element opened by a KindStart event.
	Block Block

	// Text is the payload of Text, Code, Math, HTML and FootnoteRef events.
	Text string

	// Display marks block-level (display) math.
	Display bool

	// Inline marks inline HTML, as opposed to an HTML block.
	Inline bool

	// Checked is the state of a task list marker.
	Checked bool
}

// Start opens a block element.
func Start(b Block) Event { return Event{Kind: KindStart, Block: b} }

// End closes the most recently opened block element.
func End() Event { return Event{Kind: KindEnd} }

// Text is a run of literal text. It is escaped on output.
func Text(s string) Event { return Event{Kind: KindText, Text: s} }

// Code is an inline code span.
func Code(s string) Event { return Event{Kind: KindCode, Text: s} }

// InlineMath is a math span rendered inline.
func InlineMath(s string) Event { return Event{Kind: KindMath, Text: s} }

// DisplayMath is a math span rendered as a block.
func DisplayMath(s string) Event { return Event{Kind: KindMath, Text: s, Display: true} }

// HTML is a trusted HTML block, emitted verbatim.
func HTML(s string) Event { return Event{Kind: KindHTML, Text: s} }

// InlineHTML is a trusted inline HTML fragment, emitted verbatim.
func InlineHTML(s string) Event { return Event{Kind: KindHTML, Text: s, Inline: true} }

// FootnoteRef references a footnote by label.
func FootnoteRef(label string) Event { return Event{Kind: KindFootnoteRef, Text: label} }

// SoftBreak is a line ending inside a paragraph.
func SoftBreak() Event { return Event{Kind: KindSoftBreak} }

// HardBreak is a forced line break.
func HardBreak() Event { return Event{Kind: KindHardBreak} }

// Rule is a thematic break.
func Rule() Event { return Event{Kind: KindRule} }

// TaskMarker is a task list checkbox.
func TaskMarker(checked bool) Event { return Event{Kind: KindTaskMarker, Checked: checked} }

func (e Event) String() string {
	switch e.Kind {
	case KindStart:
		return "Start(" + e.Block.String() + ")"
	case KindText, KindCode, KindFootnoteRef:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case KindMath:
		return fmt.Sprintf("Math(%q, display=%t)", e.Text, e.Display)
	case KindHTML:
		return fmt.Sprintf("HTML(%q, inline=%t)", e.Text, e.Inline)
	case KindTaskMarker:
		return fmt.Sprintf("TaskMarker(%t)", e.Checked)
	default:
		return e.Kind.String()
	}
}
