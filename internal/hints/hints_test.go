package hints

// Notes:
// - ForListen tests do not use t.Parallel() because they replace the
//   package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func TestForListen(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()

	IsInContainer = func() bool { return true }
	hint := ForListen("127.0.0.1:8080")
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint prefix missing: %q", hint)
	}
	if !strings.Contains(hint, "--addr") || !strings.Contains(hint, "0.0.0.0") {
		t.Errorf("container hint incomplete: %q", hint)
	}

	IsInContainer = func() bool { return false }
	if hint := ForListen("127.0.0.1:8080"); strings.Contains(hint, "0.0.0.0") {
		t.Errorf("unexpected container hint outside a container: %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     []string
		unwanted []string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"md2post.yaml", "/home/u/.config/go-md2post/md2post.yaml"},
			want:     []string{"--config", "or create /home/u/.config/go-md2post/md2post.yaml"},
		},
		{
			name:     "no user path",
			searched: []string{"md2post.yaml"},
			want:     []string{"--config"},
			unwanted: []string{"or create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ForConfigNotFound(tt.searched)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in %q", w, got)
				}
			}
			for _, u := range tt.unwanted {
				if strings.Contains(got, u) {
					t.Errorf("unexpected %q in %q", u, got)
				}
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"output":    ForOutputDirectory(),
		"front":     ForFrontMatter(),
		"extension": ForMissingImageExtension(),
		"image":     ForImageNotFound(),
	}
	for name, hint := range tests {
		if !strings.HasPrefix(hint, "\n  hint: ") || len(hint) <= len("\n  hint: ") {
			t.Errorf("%s hint malformed: %q", name, hint)
		}
	}
}

func TestForUnknownEngine(t *testing.T) {
	t.Parallel()

	if got := ForUnknownEngine(nil); got != "" {
		t.Errorf("empty list hint = %q, want empty", got)
	}
	if got := ForUnknownEngine([]string{"event", "goldmark"}); got != "\n  hint: available: event, goldmark" {
		t.Errorf("hint = %q", got)
	}
}
