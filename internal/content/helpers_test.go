package content

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-md2post"
)

// writePost creates root/id/index.md with the given front matter fields
// and body.
func writePost(t *testing.T, root, id, front, body string) string {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	data := "---\n" + front + "\n---\n" + body
	if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte(data), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

// countingRenderer records how many documents were rendered.
type countingRenderer struct {
	inner *md2post.Renderer
	count atomic.Int64
}

func newCountingRenderer(t *testing.T) *countingRenderer {
	t.Helper()
	r, err := md2post.NewRenderer(md2post.WithHighlighter(plainHighlighter{}))
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return &countingRenderer{inner: r}
}

func (c *countingRenderer) RenderAll(ctx context.Context, inputs []md2post.Input, workers int) ([]*md2post.Result, error) {
	c.count.Add(int64(len(inputs)))
	return c.inner.RenderAll(ctx, inputs, workers)
}

type plainHighlighter struct{}

func (plainHighlighter) Highlight(code, _ string) string { return code }
