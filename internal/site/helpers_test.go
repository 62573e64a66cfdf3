package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/assets"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/content"
)

// fixture is a loaded site over a temporary content directory.
type fixture struct {
	root   string
	lib    *content.Library
	pages  *Pages
	static Static
}

// writePost creates root/id/index.md.
func writePost(t *testing.T, root, id, front, body string) string {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	data := "---\n" + front + "\n---\n" + body
	if err := os.WriteFile(filepath.Join(dir, content.IndexFile), []byte(data), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return dir
}

// newFixture builds a site with two published posts and one draft.
func newFixture(t *testing.T, opts PageOptions) *fixture {
	t.Helper()

	root := t.TempDir()
	hello := writePost(t, root, "hello", "title: Hello World\npublished: 2024-02-10",
		"Welcome to the blog.\n\n## Install\n\n```bash\ngo install ./...\n```\n\n![shot](shot.png)\n")
	if err := os.WriteFile(filepath.Join(hello, "shot.png"), []byte("PNG"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	writePost(t, root, "older", "title: Older <Post>\npublished: 2023-12-01", "Old news.\n")
	writePost(t, root, "wip", "title: Wip\npublished: 2024-03-01\ndraft: true", "Soon.\n")

	r, err := md2post.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	lib := content.NewLibrary(root, r)
	if _, err := lib.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	ts, err := assets.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet() error = %v", err)
	}
	if opts.Site.Title == "" {
		opts.Site = config.SiteConfig{
			Title:       "Test Blog",
			Description: "Notes & experiments",
			Author:      "Alex",
			Links:       []config.Link{{Label: "GitHub", URL: "https://github.com/alnah"}},
		}
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	}
	pages, err := NewPages(ts, opts)
	if err != nil {
		t.Fatalf("NewPages() error = %v", err)
	}

	static, err := LoadStatic(assets.NewEmbeddedLoader(), r)
	if err != nil {
		t.Fatalf("LoadStatic() error = %v", err)
	}

	return &fixture{root: root, lib: lib, pages: pages, static: static}
}

func parsePage(t *testing.T, page []byte) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}
