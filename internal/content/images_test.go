package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2post"
)

func TestResolveImageSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "here.png"), "x")
	writeFile(t, filepath.Join(dir, "img", "nested.png"), "x")
	writeFile(t, filepath.Join(dir, "with space.png"), "x")

	tests := []struct {
		source string
		want   string
	}{
		{source: "here.png", want: filepath.Join(dir, "here.png")},
		{source: "./here.png", want: filepath.Join(dir, "here.png")},
		{source: "nested.png", want: filepath.Join(dir, "img", "nested.png")},
		{source: "with%20space.png", want: filepath.Join(dir, "with space.png")},
		{source: "here.png?v=2", want: filepath.Join(dir, "here.png")},
		{source: "missing.png", want: filepath.Join(dir, "missing.png")},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveImageSource(dir, tt.source)
			if err != nil {
				t.Fatalf("ResolveImageSource(%q) error = %v", tt.source, err)
			}
			if got != tt.want {
				t.Errorf("ResolveImageSource(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestResolveImageSource_OutsidePostDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "secret.png"), "x")
	dir := filepath.Join(root, "post")

	sources := []string{
		"../secret.png",
		"../../etc/passwd.png",
		"img/../../secret.png",
		"%2e%2e/secret.png",
		"/etc/passwd.png",
	}
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveImageSource(dir, source)
			if !errors.Is(err, ErrImageNotFound) {
				t.Errorf("ResolveImageSource(%q) = %q, %v; want ErrImageNotFound", source, got, err)
			}
		})
	}
}

func TestCopyImages(t *testing.T) {
	t.Parallel()

	t.Run("copies to URL path under build dir", func(t *testing.T) {
		t.Parallel()

		postDir := t.TempDir()
		writeFile(t, filepath.Join(postDir, "a.png"), "AAA")
		writeFile(t, filepath.Join(postDir, "img", "b.jpg"), "BBB")
		build := t.TempDir()

		posts := []*Rendered{{
			Post: &Post{ID: "trip", Dir: postDir},
			Images: []md2post.Image{
				{Source: "a.png", Target: "/img/trip/1.png", Index: 1, Ext: "png"},
				{Source: "b.jpg", Target: "/img/trip/2.jpg", Index: 2, Ext: "jpg"},
			},
		}}

		n, err := CopyImages(build, posts)
		if err != nil {
			t.Fatalf("CopyImages() error = %v", err)
		}
		if n != 2 {
			t.Errorf("copied = %d, want 2", n)
		}
		for path, want := range map[string]string{
			filepath.Join(build, "img", "trip", "1.png"): "AAA",
			filepath.Join(build, "img", "trip", "2.jpg"): "BBB",
		} {
			got, err := os.ReadFile(path)
			if err != nil || string(got) != want {
				t.Errorf("%s = %q, %v; want %q", path, got, err, want)
			}
		}
	})

	t.Run("source outside post dir", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, filepath.Join(root, "secret.png"), "x")
		build := t.TempDir()

		posts := []*Rendered{{
			Post:   &Post{ID: "trip", Dir: filepath.Join(root, "trip")},
			Images: []md2post.Image{{Source: "../secret.png", Target: "/img/trip/1.png"}},
		}}
		n, err := CopyImages(build, posts)
		if !errors.Is(err, ErrImageNotFound) {
			t.Errorf("CopyImages() error = %v, want ErrImageNotFound", err)
		}
		if n != 0 {
			t.Errorf("copied = %d, want 0", n)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		posts := []*Rendered{{
			Post:   &Post{ID: "trip", Dir: t.TempDir()},
			Images: []md2post.Image{{Source: "gone.png", Target: "/img/trip/1.png"}},
		}}
		_, err := CopyImages(t.TempDir(), posts)
		if !errors.Is(err, ErrImageNotFound) {
			t.Errorf("CopyImages() error = %v, want ErrImageNotFound", err)
		}
	})
}
