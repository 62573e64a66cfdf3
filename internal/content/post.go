// Package content loads blog posts from disk and keeps their rendered
// HTML in memory.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-md2post/internal/dateutil"
	"github.com/alnah/go-md2post/internal/yamlutil"
)

// IndexFile is the Markdown file read from each post directory.
const IndexFile = "index.md"

// Sentinel errors for content operations.
var (
	ErrFrontMatter   = errors.New("invalid front matter")
	ErrMissingField  = errors.New("missing front matter field")
	ErrInvalidDate   = dateutil.ErrInvalidDate
	ErrMissingIndex  = errors.New("post directory has no " + IndexFile)
	ErrImageNotFound = errors.New("image not found")
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateID   = errors.New("duplicate post ID")
)

// Post is one source document.
type Post struct {
	ID        string // directory name
	Title     string
	Published time.Time
	Draft     bool
	Markdown  string // body without front matter
	Dir       string // post directory, base for local images
}

// frontMatter is the YAML header of a post.
type frontMatter struct {
	Title     string `yaml:"title"`
	Published string `yaml:"published"`
	Draft     bool   `yaml:"draft"`
}

// ParsePost splits data into front matter and body. Title and published
// are required; published must be YYYY-MM-DD.
func ParsePost(id, dir string, data []byte) (*Post, error) {
	front, body, err := yamlutil.SplitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatter, id, err)
	}

	var fm frontMatter
	if err := yamlutil.UnmarshalStrict(front, &fm); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrontMatter, id, err)
	}

	if strings.TrimSpace(fm.Title) == "" {
		return nil, fmt.Errorf("%w: %s: title", ErrMissingField, id)
	}
	if strings.TrimSpace(fm.Published) == "" {
		return nil, fmt.Errorf("%w: %s: published", ErrMissingField, id)
	}
	published, err := dateutil.ParsePublished(fm.Published)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}

	return &Post{
		ID:        id,
		Title:     strings.TrimSpace(fm.Title),
		Published: published,
		Draft:     fm.Draft,
		Markdown:  string(body),
		Dir:       dir,
	}, nil
}

// LoadPost reads dir/index.md. The post ID is the directory name.
func LoadPost(dir string) (*Post, error) {
	id := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, IndexFile)) // #nosec G304 -- content directory is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingIndex, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}
	return ParsePost(id, dir, data)
}

// LoadDir loads every post under root, one per subdirectory, in ID order.
// Directories starting with "." or "_" are ignored.
func LoadDir(root string) ([]*Post, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}

	var posts []*Post
	seen := make(map[string]string)
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		key := strings.ToLower(name)
		if other, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateID, other, name)
		}
		seen[key] = name

		p, err := LoadPost(filepath.Join(root, name))
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

// SortNewestFirst orders posts by publication date, newest first, with
// ties broken by ID.
func SortNewestFirst[T any](items []T, post func(T) *Post) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := post(items[i]), post(items[j])
		if !a.Published.Equal(b.Published) {
			return a.Published.After(b.Published)
		}
		return a.ID < b.ID
	})
}
