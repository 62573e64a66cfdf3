package pipeline

import (
	"html"
	"strings"
)

// Serialize writes nodes as one HTML string.
//
// Text is escaped for the five HTML metacharacters. Raw nodes, which carry
// event-source HTML and highlighter output, are written verbatim. A
// PendingCodeBlock that never went through GroupCodeBlocks is written as a
// plain escaped pre/code block.
func Serialize(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		writeNode(&sb, n)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		sb.WriteString(html.EscapeString(string(n)))
	case Raw:
		sb.WriteString(string(n))
	case Fragment:
		for _, c := range n {
			writeNode(sb, c)
		}
	case *Element:
		writeElement(sb, n)
	case *PendingCodeBlock:
		sb.WriteString("<pre><code>")
		sb.WriteString(html.EscapeString(n.Code))
		sb.WriteString("</code></pre>")
	}
}

func writeElement(sb *strings.Builder, e *Element) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		if a.Bare {
			continue
		}
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if e.Void {
		return
	}
	for _, c := range e.Children {
		writeNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}
