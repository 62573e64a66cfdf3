// Package highlight colors code blocks with chroma.
//
// Chroma satisfies the pipeline highlighter contract: it never fails. An
// empty or unknown language, or any tokenizer or formatter error, falls
// back to escaped plain text with no color spans.
package highlight

import (
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Chroma is a syntax highlighter backed by chroma. It is safe for
// concurrent use.
type Chroma struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// Option configures a Chroma highlighter.
type Option func(*options)

type options struct {
	style   string
	classes bool
}

// WithStyle selects a chroma style by name. Unknown names fall back to
// DefaultStyle.
func WithStyle(name string) Option {
	return func(o *options) {
		o.style = name
	}
}

// WithClasses emits CSS classes instead of inline styles. The matching
// stylesheet is produced by CSS.
func WithClasses(enabled bool) Option {
	return func(o *options) {
		o.classes = enabled
	}
}

// New creates a Chroma highlighter.
func New(opts ...Option) *Chroma {
	o := options{style: DefaultStyle}
	for _, opt := range opts {
		opt(&o)
	}

	style := styles.Get(o.style)
	if style == nil || (style == styles.Fallback && !strings.EqualFold(o.style, style.Name)) {
		style = styles.Get(DefaultStyle)
	}

	return &Chroma{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(o.classes),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// StyleName returns the name of the active chroma style.
func (c *Chroma) StyleName() string {
	return c.style.Name
}

// Highlight returns code as HTML-safe markup colored for language. Only the
// token markup is produced; the caller supplies the surrounding pre/code.
func (c *Chroma) Highlight(code, language string) string {
	tokens, ok := tokenise(code, language)
	if !ok {
		return plain(code)
	}
	tokens = trimAddedNewline(tokens, code)

	var sb strings.Builder
	if err := c.formatter.Format(&sb, c.style, chroma.Literator(tokens...)); err != nil {
		return plain(code)
	}
	return sb.String()
}

// HighlightLines tokenizes code once and returns the markup of each line
// without its newline. Lines follow a "\n" split of code with a single
// trailing newline ignored, so a token spanning lines, such as a heredoc,
// keeps its color on every line it covers.
func (c *Chroma) HighlightLines(code, language string) []string {
	lines := sourceLines(code)
	tokens, ok := tokenise(code, language)
	if !ok {
		return plainLines(lines)
	}

	split := chroma.SplitTokensIntoLines(tokens)
	if len(split) != len(lines) {
		return plainLines(lines)
	}
	out := make([]string, len(split))
	for i, line := range split {
		var sb strings.Builder
		if err := c.formatter.Format(&sb, c.style, chroma.Literator(trimLineEnd(line)...)); err != nil {
			return plainLines(lines)
		}
		out[i] = sb.String()
	}
	return out
}

// CSS writes the stylesheet for class-based output.
func (c *Chroma) CSS(w io.Writer) error {
	return c.formatter.WriteCSS(w, c.style)
}

// trimAddedNewline drops the newline lexers append to input that lacks one,
// so a single highlighted line does not grow a trailing break.
func trimAddedNewline(tokens []chroma.Token, code string) []chroma.Token {
	if strings.HasSuffix(code, "\n") || len(tokens) == 0 {
		return tokens
	}
	last := &tokens[len(tokens)-1]
	last.Value = strings.TrimSuffix(last.Value, "\n")
	if last.Value == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// trimLineEnd drops the line terminator from the last tokens of a line.
func trimLineEnd(line []chroma.Token) []chroma.Token {
	for len(line) > 0 {
		last := &line[len(line)-1]
		trimmed := strings.TrimRight(last.Value, "\r\n")
		if trimmed != "" {
			last.Value = trimmed
			return line
		}
		line = line[:len(line)-1]
	}
	return line
}

func tokenise(code, language string) ([]chroma.Token, bool) {
	if language == "" {
		return nil, false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, false
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return nil, false
	}
	return it.Tokens(), true
}

func sourceLines(code string) []string {
	if code == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(code, "\n"), "\n")
}

func plainLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = plain(strings.TrimSuffix(l, "\r"))
	}
	return out
}

func plain(code string) string {
	return html.EscapeString(code)
}
