package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestSlugify - Normalization
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation collapses", "Hello, World!", "hello-world"},
		{"empty falls back", "", "section"},
		{"only symbols falls back", "?!--", "section"},
		{"unicode letters kept", "日本語 Test", "日本語-test"},
		{"leading and trailing trimmed", "  --Intro--  ", "intro"},
		{"digits kept", "Step 2: Build", "step-2-build"},
		{"code punctuation", "Using `go test`", "using-go-test"},
		{"accents kept", "Café Crème", "café-crème"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSlugRegistry - Collision Numbering
// ---------------------------------------------------------------------------

func TestSlugRegistry(t *testing.T) {
	t.Parallel()

	t.Run("repeated base numbers from two", func(t *testing.T) {
		t.Parallel()
		var r SlugRegistry
		want := []string{"intro", "intro-2", "intro-3", "intro-4"}
		for i, w := range want {
			if got := r.Assign("Intro"); got != w {
				t.Errorf("Assign #%d = %q, want %q", i+1, got, w)
			}
		}
	})

	t.Run("different text normalizing alike shares a counter", func(t *testing.T) {
		t.Parallel()
		var r SlugRegistry
		first := r.Assign("Set up")
		second := r.Assign("set-up!")
		if first != "set-up" || second != "set-up-2" {
			t.Errorf("got %q, %q; want set-up, set-up-2", first, second)
		}
	})

	t.Run("registries are independent", func(t *testing.T) {
		t.Parallel()
		var a, b SlugRegistry
		a.Assign("x")
		if got := b.Assign("x"); got != "x" {
			t.Errorf("fresh registry Assign = %q, want x", got)
		}
	})

	t.Run("numbered anchor is never handed out twice", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			headings []string
			want     []string
		}{
			{
				name:     "suffix then literal",
				headings: []string{"Intro", "Intro", "Intro 2"},
				want:     []string{"intro", "intro-2", "intro-2-2"},
			},
			{
				name:     "literal then suffix",
				headings: []string{"Intro 2", "Intro", "Intro"},
				want:     []string{"intro-2", "intro", "intro-3"},
			},
			{
				name:     "counter resumes after skip",
				headings: []string{"A 2", "A", "A", "A"},
				want:     []string{"a-2", "a", "a-3", "a-4"},
			},
		}

		for _, tt := range tests {
			var r SlugRegistry
			seen := make(map[string]bool)
			for i, h := range tt.headings {
				got := r.Assign(h)
				if got != tt.want[i] {
					t.Errorf("%s: Assign(%q) = %q, want %q", tt.name, h, got, tt.want[i])
				}
				if seen[got] {
					t.Errorf("%s: duplicate anchor %q", tt.name, got)
				}
				seen[got] = true
			}
		}
	})

	t.Run("empty headings share the fallback", func(t *testing.T) {
		t.Parallel()
		var r SlugRegistry
		if got := r.Assign(""); got != "section" {
			t.Errorf("first = %q, want section", got)
		}
		if got := r.Assign("!!"); got != "section-2" {
			t.Errorf("second = %q, want section-2", got)
		}
	})
}
