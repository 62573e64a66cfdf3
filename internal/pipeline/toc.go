package pipeline

import (
	"fmt"
	"html"
	"strconv"
	"strings"
)

// TOCOptions selects the headings listed in a table of contents.
type TOCOptions struct {
	Title    string
	MinLevel int // default 2, skips the title heading
	MaxLevel int // default 3
}

// numbering tracks hierarchical entry numbers. The shallowest level seen
// first becomes depth 1, and skipped levels collapse into direct children.
type numbering struct {
	counters  [6]int
	minLevel  int
	lastDepth int
}

func (n *numbering) next(level int) (label string, depth int) {
	if n.minLevel == 0 {
		n.minLevel = level
	}
	depth = max(level-n.minLevel+1, 1)
	if n.lastDepth > 0 && depth > n.lastDepth+1 {
		depth = n.lastDepth + 1
	}
	depth = min(depth, len(n.counters))

	for i := depth; i < len(n.counters); i++ {
		n.counters[i] = 0
	}
	n.counters[depth-1]++
	n.lastDepth = depth

	parts := make([]string, depth)
	for i := range depth {
		parts[i] = strconv.Itoa(n.counters[i])
	}
	return strings.Join(parts, ".") + ".", depth
}

// TableOfContents renders a numbered navigation block linking to the
// headings of a rendered document. It returns "" when no heading matches.
func TableOfContents(headings []Heading, opts TOCOptions) string {
	if opts.MinLevel <= 0 {
		opts.MinLevel = 2
	}
	if opts.MaxLevel <= 0 {
		opts.MaxLevel = 3
	}

	var selected []Heading
	for _, h := range headings {
		if h.Level >= opts.MinLevel && h.Level <= opts.MaxLevel {
			selected = append(selected, h)
		}
	}
	if len(selected) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`<nav class="toc my-8 rounded-xl border border-white/10 bg-white/5 p-4">`)
	if opts.Title != "" {
		sb.WriteString(`<p class="toc-title mb-2 font-semibold text-white">`)
		sb.WriteString(html.EscapeString(opts.Title))
		sb.WriteString(`</p>`)
	}

	var n numbering
	for _, h := range selected {
		label, depth := n.next(h.Level)
		sb.WriteString(`<div class="toc-item text-gray-300"`)
		if depth > 1 {
			fmt.Fprintf(&sb, ` style="padding-left:%.1fem"`, float64(depth-1)*1.5)
		}
		sb.WriteString(`><a href="#`)
		sb.WriteString(html.EscapeString(h.Slug))
		sb.WriteString(`">`)
		sb.WriteString(label)
		sb.WriteByte(' ')
		sb.WriteString(html.EscapeString(h.Text))
		sb.WriteString(`</a></div>`)
	}
	sb.WriteString(`</nav>`)
	return sb.String()
}
