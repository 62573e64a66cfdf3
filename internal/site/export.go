package site

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/fileutil"
)

// ExportStats summarizes a static export.
type ExportStats struct {
	Pages  int
	Images int
}

// Export writes the whole site to dir so a static file server can host it:
// every page as index.html under its route, the 404 page, the stylesheets,
// the copy script and the images of every published post.
func Export(dir string, lib *content.Library, pages *Pages, static Static, log *slog.Logger) (ExportStats, error) {
	var stats ExportStats
	posts := lib.Published()

	type output struct {
		path   string
		render func() ([]byte, error)
	}
	outputs := []output{
		{"index.html", func() ([]byte, error) { return pages.Index(posts) }},
		{filepath.Join("posts", "index.html"), func() ([]byte, error) { return pages.PostList(posts) }},
		{filepath.Join("about", "index.html"), pages.About},
		{"404.html", func() ([]byte, error) { return pages.NotFound("/404.html") }},
	}
	for _, p := range posts {
		outputs = append(outputs, output{
			path:   filepath.Join("post", p.ID, "index.html"),
			render: func() ([]byte, error) { return pages.Post(p) },
		})
	}

	for _, o := range outputs {
		data, err := o.render()
		if err != nil {
			return stats, err
		}
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, o.path), data, 0o644); err != nil {
			return stats, fmt.Errorf("writing %s: %w", o.path, err)
		}
		stats.Pages++
	}

	files := map[string]string{
		filepath.Join("style", "site.css"):      static.SiteCSS,
		filepath.Join("style", "highlight.css"): static.HighlightCSS,
		filepath.Join("js", "code-copy.js"):     static.Script,
	}
	for path, body := range files {
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, path), []byte(body), 0o644); err != nil {
			return stats, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	n, err := content.CopyImages(dir, posts)
	stats.Images = n
	if err != nil {
		return stats, err
	}

	if log != nil {
		log.Info("site exported", "dir", dir, "pages", stats.Pages, "images", stats.Images)
	}
	return stats, nil
}
