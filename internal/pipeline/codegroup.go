package pipeline

import (
	"html"
	"strings"
)

// Highlighter turns source text into HTML-safe, colorized markup.
// An empty or unknown language must fall back to escaped plain text.
// Implementations must be safe for concurrent use.
type Highlighter interface {
	Highlight(code, language string) string
}

// LineHighlighter is a Highlighter that colors a whole block in one pass
// and returns the markup of each source line separately, so lexer state
// carries from one line to the next. Lines are split on "\n" with a single
// trailing newline ignored, and each entry excludes its newline.
type LineHighlighter interface {
	Highlighter
	HighlightLines(code, language string) []string
}

// PlainHighlighter escapes code without adding color.
type PlainHighlighter struct{}

// Highlight implements Highlighter.
func (PlainHighlighter) Highlight(code, _ string) string {
	return html.EscapeString(code)
}

// HighlightLines implements LineHighlighter.
func (PlainHighlighter) HighlightLines(code, _ string) []string {
	lines := splitLines(code)
	for i, l := range lines {
		lines[i] = html.EscapeString(strings.TrimSuffix(l, "\r"))
	}
	return lines
}

// shellLanguages render as a transcript with a prompt marker per line.
var shellLanguages = map[string]bool{"sh": true, "bash": true, "fish": true}

// GroupCodeBlocks returns a copy of nodes with every PendingCodeBlock
// replaced by highlighted markup. A maximal run of adjacent pending blocks
// becomes one panel whose entries after the first carry a divider; a run
// of one becomes a standalone container. Nested children are processed
// recursively and runs never cross element boundaries.
func GroupCodeBlocks(nodes []Node, hl Highlighter) []Node {
	if hl == nil {
		hl = PlainHighlighter{}
	}

	out := make([]Node, 0, len(nodes))
	for i := 0; i < len(nodes); {
		if _, ok := nodes[i].(*PendingCodeBlock); !ok {
			out = append(out, groupChildren(nodes[i], hl))
			i++
			continue
		}

		j := i
		var run []*PendingCodeBlock
		for ; j < len(nodes); j++ {
			p, ok := nodes[j].(*PendingCodeBlock)
			if !ok {
				break
			}
			run = append(run, p)
		}
		out = append(out, renderRun(run, hl))
		i = j
	}
	return out
}

func groupChildren(n Node, hl Highlighter) Node {
	switch n := n.(type) {
	case *Element:
		if len(n.Children) == 0 {
			return n
		}
		out := *n
		out.Children = GroupCodeBlocks(n.Children, hl)
		return &out
	case Fragment:
		return Fragment(GroupCodeBlocks(n, hl))
	default:
		return n
	}
}

func renderRun(run []*PendingCodeBlock, hl Highlighter) Node {
	if len(run) == 1 {
		return el("div", classCodeSingle, codeBody(run[0], hl)...)
	}

	entries := make([]Node, len(run))
	for i, p := range run {
		class := classCodeEntry
		if i > 0 {
			class += " " + classCodeDivider
		}
		entries[i] = el("div", class, codeBody(p, hl)...)
	}
	return el("div", classCodeGroup, entries...)
}

// codeBody returns the copy button followed by the pre/code pair.
// The button and the code element share the same parent div.
func codeBody(p *PendingCodeBlock, hl Highlighter) []Node {
	lang := p.Language()

	codeClass := classCode
	if lang != "" {
		codeClass += " language-" + lang
	}

	var body string
	if shellLanguages[lang] {
		body = shellTranscript(p.Code, lang, hl)
	} else {
		body = hl.Highlight(p.Code, lang)
	}

	button := el("button", classCopyButton, Raw(copyIcon)).withAttrs(
		Attr{Key: "type", Val: "button"},
		Attr{Key: "aria-label", Val: "Copy code"},
	)
	return []Node{
		button,
		el("pre", classPre, el("code", codeClass, Raw(body))),
	}
}

// shellTranscript highlights code as one unit and lays it out per line.
// Non-blank lines get a prompt marker, interior blank lines become empty
// rows, and a blank final line is dropped.
func shellTranscript(code, lang string, hl Highlighter) string {
	lines := splitLines(code)
	marked := highlightLines(code, lang, lines, hl)

	var sb strings.Builder
	for i, text := range lines {
		if strings.TrimSpace(text) == "" {
			if i == len(lines)-1 {
				continue
			}
			sb.WriteString(`<span class="` + classBlankLine + `">&nbsp;</span>`)
			continue
		}
		sb.WriteString(`<span class="` + classShellLine + `">`)
		sb.WriteString(marked[i])
		sb.WriteString(`</span>`)
	}
	return sb.String()
}

// highlightLines returns one markup entry per line. Highlighters without
// line support, or whose split disagrees with lines, are called per line.
func highlightLines(code, lang string, lines []string, hl Highlighter) []string {
	if lh, ok := hl.(LineHighlighter); ok {
		if marked := lh.HighlightLines(code, lang); len(marked) == len(lines) {
			return marked
		}
	}
	marked := make([]string, len(lines))
	for i, l := range lines {
		marked[i] = hl.Highlight(strings.TrimSuffix(l, "\r"), lang)
	}
	return marked
}

// splitLines splits code on newlines, ignoring one trailing newline.
// Empty code has no lines.
func splitLines(code string) []string {
	if code == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(code, "\n"), "\n")
}

// languageOf returns the first whitespace-delimited token of info.
func languageOf(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
