package highlight

import (
	"bytes"
	"strings"
	"testing"
)

// Notes:
// - Assertions avoid chroma's exact class names and colors, which change
//   between chroma releases; they check escaping and the presence of spans

// ---------------------------------------------------------------------------
// TestChroma_Highlight - Fallback and Escaping
// ---------------------------------------------------------------------------

func TestChroma_Highlight(t *testing.T) {
	t.Parallel()

	h := New(WithClasses(true))

	tests := []struct {
		name      string
		code      string
		language  string
		wantSpans bool
		want      string
	}{
		{name: "no language is plain", code: "a < b", language: "", want: "a &lt; b"},
		{name: "unknown language is plain", code: "x & y", language: "no-such-lang", want: "x &amp; y"},
		{name: "known language gets spans", code: "package main\n", language: "go", wantSpans: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := h.Highlight(tt.code, tt.language)
			if tt.wantSpans {
				if !strings.Contains(got, "<span") {
					t.Errorf("no spans in %q", got)
				}
				if strings.Contains(got, "<pre") {
					t.Errorf("output wrapped in pre: %q", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Highlight() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChroma_HighlightEscapesTokens(t *testing.T) {
	t.Parallel()

	got := New().Highlight(`if a < b { return "<x>" }`, "go")
	if strings.Contains(got, "<x>") || !strings.Contains(got, "&lt;x&gt;") {
		t.Errorf("token text not escaped: %q", got)
	}
}

func TestChroma_NoAddedTrailingNewline(t *testing.T) {
	t.Parallel()

	got := New(WithClasses(true)).Highlight("echo hi", "bash")
	if strings.Contains(got, "\n") {
		t.Errorf("single line output contains a newline: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestChroma_HighlightLines - One Pass, Split Per Line
// ---------------------------------------------------------------------------

func TestChroma_HighlightLines(t *testing.T) {
	t.Parallel()

	h := New(WithClasses(true))

	tests := []struct {
		name     string
		code     string
		language string
		want     int
	}{
		{"trailing newline ignored", "echo a\necho b\n", "bash", 2},
		{"no trailing newline", "echo a\necho b", "bash", 2},
		{"interior blank line", "echo a\n\necho b\n", "bash", 3},
		{"final blank line kept", "echo a\n\n", "bash", 2},
		{"unknown language", "a < b\nc\n", "nope", 2},
		{"empty", "", "bash", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := h.HighlightLines(tt.code, tt.language)
			if len(got) != tt.want {
				t.Fatalf("HighlightLines() = %d lines %q, want %d", len(got), got, tt.want)
			}
			for i, line := range got {
				if strings.ContainsAny(line, "\r\n") {
					t.Errorf("line %d keeps its terminator: %q", i, line)
				}
			}
		})
	}
}

func TestChroma_HighlightLinesKeepsLexerState(t *testing.T) {
	t.Parallel()

	h := New(WithClasses(true))
	code := "cat <<EOF\nif then \"done\nEOF\n"

	lines := h.HighlightLines(code, "bash")
	if len(lines) != 3 {
		t.Fatalf("HighlightLines() = %q, want 3 lines", lines)
	}

	// Inside the heredoc the whole line is one string token.
	body := lines[1]
	if !strings.HasPrefix(body, "<span") || strings.Count(body, "<span") != 1 {
		t.Errorf("heredoc body split into several tokens: %q", body)
	}
	if !strings.Contains(body, "if then &#34;done") {
		t.Errorf("heredoc body text = %q", body)
	}
	if alone := h.Highlight(`if then "done`, "bash"); alone == body {
		t.Errorf("line colored as if highlighted alone: %q", body)
	}
}

func TestChroma_HighlightLinesFallbackEscapes(t *testing.T) {
	t.Parallel()

	got := New().HighlightLines("<a>\r\n&\n", "")
	want := []string{"&lt;a&gt;", "&amp;"}
	if len(got) != len(want) {
		t.Fatalf("HighlightLines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestNew - Style Selection
// ---------------------------------------------------------------------------

func TestNew_Style(t *testing.T) {
	t.Parallel()

	if got := New().StyleName(); got != DefaultStyle {
		t.Errorf("default style = %q, want %q", got, DefaultStyle)
	}
	if got := New(WithStyle("dracula")).StyleName(); got != "dracula" {
		t.Errorf("style = %q, want dracula", got)
	}
	if got := New(WithStyle("not-a-style")).StyleName(); got != DefaultStyle {
		t.Errorf("unknown style = %q, want %q", got, DefaultStyle)
	}
}

func TestChroma_CSS(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New(WithClasses(true)).CSS(&buf); err != nil {
		t.Fatalf("CSS: %v", err)
	}
	if !strings.Contains(buf.String(), ".chroma") {
		t.Errorf("stylesheet missing .chroma rules: %s", buf.String())
	}
}
