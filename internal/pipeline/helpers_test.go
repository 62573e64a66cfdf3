package pipeline

import (
	"html"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-md2post/internal/event"
)

// tagHighlighter marks output with the language so tests can see which
// tag each block was dispatched with.
type tagHighlighter struct{}

func (tagHighlighter) Highlight(code, language string) string {
	return "[" + language + "]" + html.EscapeString(code)
}

// renderEvents renders evs for document "doc" and fails the test on error.
func renderEvents(t *testing.T, evs ...event.Event) string {
	t.Helper()
	res, err := Render(evs, Options{DocumentID: "doc", Highlighter: tagHighlighter{}})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	return res.HTML
}

// parseDoc loads an HTML fragment into a goquery document.
func parseDoc(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("goquery parse: %v", err)
	}
	return doc
}

// codeBlock returns the events of one fenced code block.
func codeBlock(info, code string) []event.Event {
	return []event.Event{event.Start(event.CodeBlock(info)), event.Text(code), event.End()}
}

// para returns the events of a one-text paragraph.
func para(text string) []event.Event {
	return []event.Event{event.Start(event.Paragraph()), event.Text(text), event.End()}
}

func concat(groups ...[]event.Event) []event.Event {
	var out []event.Event
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
