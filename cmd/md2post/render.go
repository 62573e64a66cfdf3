package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/yamlutil"
)

// stdinName selects standard input as the render source.
const stdinName = "-"

// runRender renders one markdown file to a fragment or a full page.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: render takes at most one file, got %d", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}
	log, err := newLogger(&f.common, env.Stderr)
	if err != nil {
		return err
	}

	source := stdinName
	if len(positional) == 1 {
		source = positional[0]
	}
	data, err := readSource(source, env.Stdin)
	if err != nil {
		return err
	}

	id := f.id
	if id == "" {
		id = documentID(source)
	}
	post, err := parseDocument(id, source, data, env.Now)
	if err != nil {
		return err
	}

	r, err := newRenderer(cfg, f.engine, f.style)
	if err != nil {
		return err
	}
	res, err := r.Render(ctx, md2post.Input{ID: id, Markdown: post.Markdown})
	if err != nil {
		return err
	}

	out := []byte(res.HTML)
	if f.page {
		parts, err := newSiteParts(ctx, cfg, r, env)
		if err != nil {
			return err
		}
		out, err = parts.pages.Post(&content.Rendered{
			Post:     post,
			HTML:     res.HTML,
			Headings: res.Headings,
			Images:   res.Images,
		})
		if err != nil {
			return err
		}
	}

	if err := writeOutput(f.output, out, env.Stdout); err != nil {
		return err
	}
	log.Debug("document rendered", "id", id, "engine", r.Engine(), "bytes", len(out), "images", len(res.Images))
	return nil
}

// readSource reads a file, or r when name is "-".
func readSource(name string, r io.Reader) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return data, nil
}

// documentID derives an ID from the source path: the file name without
// extension, or the directory name for an index.md.
func documentID(source string) string {
	if source == stdinName {
		return "stdin"
	}
	base := filepath.Base(source)
	if base == content.IndexFile {
		if dir := filepath.Base(filepath.Dir(source)); dir != "." && dir != string(filepath.Separator) {
			return dir
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// parseDocument reads front matter when present. Without it the whole
// input is the body, titled after id and dated today.
func parseDocument(id, source string, data []byte, now func() time.Time) (*content.Post, error) {
	dir := "."
	if source != stdinName {
		dir = filepath.Dir(source)
	}
	if yamlutil.HasFrontMatter(data) {
		return content.ParsePost(id, dir, data)
	}
	y, m, d := now().Date()
	return &content.Post{
		ID:        id,
		Title:     id,
		Published: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Markdown:  string(data),
		Dir:       dir,
	}, nil
}

// writeOutput writes data to path, or w when path is empty or "-".
func writeOutput(path string, data []byte, w io.Writer) error {
	if path == "" || path == stdinName {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
