package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skippedInExcerpt holds elements whose text never appears in a summary.
var skippedInExcerpt = map[atom.Atom]bool{
	atom.Pre:    true,
	atom.Script: true,
	atom.Style:  true,
	atom.Button: true,
	atom.Svg:    true,
	atom.Figure: true,
	atom.Sup:    true,
	atom.H1:     true,
	atom.H2:     true,
	atom.H3:     true,
}

// Excerpt extracts up to limit runes of prose from an HTML fragment.
// Whitespace is collapsed, code panels, figures and headings are skipped,
// and a truncated result ends with an ellipsis on a word boundary.
func Excerpt(fragment string, limit int) (string, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		collectText(&sb, n)
	}
	text := strings.Join(strings.Fields(sb.String()), " ")
	return truncateWords(text, limit), nil
}

func collectText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedInExcerpt[n.DataAtom] {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(sb, c)
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.P {
		sb.WriteByte(' ')
	}
}

func truncateWords(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
