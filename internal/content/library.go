package content

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/pipeline"
)

// Renderer renders a batch of documents.
type Renderer interface {
	RenderAll(ctx context.Context, inputs []md2post.Input, workers int) ([]*md2post.Result, error)
}

// Rendered is a published post with its HTML.
type Rendered struct {
	*Post
	HTML     string
	Headings []md2post.Heading
	Images   []md2post.Image
	Excerpt  string
}

// ReloadStats summarizes one Reload.
type ReloadStats struct {
	Posts    int // published posts now served
	Drafts   int // posts skipped as drafts
	Rendered int // posts rendered in this reload
	Cached   int // posts reused from the cache
	Duration time.Duration
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithWorkers bounds concurrent renders (0 = automatic).
func WithWorkers(n int) LibraryOption {
	return func(l *Library) { l.workers = n }
}

// WithExcerptLength sets the excerpt length in runes (0 disables excerpts).
func WithExcerptLength(n int) LibraryOption {
	return func(l *Library) { l.excerptLen = n }
}

// WithLogger sets the logger used for reload diagnostics.
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(l *Library) { l.logger = logger }
}

// WithDrafts includes draft posts, for local previews.
func WithDrafts(enabled bool) LibraryOption {
	return func(l *Library) { l.drafts = enabled }
}

type cacheEntry struct {
	hash   string
	result *md2post.Result
}

// Library holds the rendered posts of a content directory. Reads are safe
// while a Reload runs; a failed Reload keeps the previous posts.
type Library struct {
	dir        string
	renderer   Renderer
	workers    int
	excerptLen int
	drafts     bool
	logger     *slog.Logger

	mu     sync.RWMutex
	byID   map[string]*Rendered // lowercased ID
	order  []*Rendered          // newest first
	images map[string]string    // rewritten URL path -> source file
	cache  map[string]cacheEntry
}

// NewLibrary creates an empty Library for dir. Call Reload to load posts.
func NewLibrary(dir string, r Renderer, opts ...LibraryOption) *Library {
	l := &Library{
		dir:        dir,
		renderer:   r,
		excerptLen: 200,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		byID:       make(map[string]*Rendered),
		images:     make(map[string]string),
		cache:      make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the content directory.
func (l *Library) Dir() string {
	return l.dir
}

// Reload reads the content directory and renders posts whose title or body
// changed since the last reload.
func (l *Library) Reload(ctx context.Context) (ReloadStats, error) {
	start := time.Now()
	var stats ReloadStats

	posts, err := LoadDir(l.dir)
	if err != nil {
		return stats, err
	}

	l.mu.RLock()
	cache := l.cache
	l.mu.RUnlock()

	var (
		live    []*Post
		hashes  []string
		pending []md2post.Input
		slots   []int
		results = make([]*md2post.Result, 0, len(posts))
	)
	for _, p := range posts {
		if p.Draft && !l.drafts {
			stats.Drafts++
			continue
		}
		h := contentHash(p)
		live = append(live, p)
		hashes = append(hashes, h)
		if e, ok := cache[p.ID]; ok && e.hash == h {
			results = append(results, e.result)
			stats.Cached++
			continue
		}
		results = append(results, nil)
		pending = append(pending, md2post.Input{ID: p.ID, Markdown: p.Markdown})
		slots = append(slots, len(results)-1)
	}

	if len(pending) > 0 {
		rendered, err := l.renderer.RenderAll(ctx, pending, l.workers)
		if err != nil {
			return stats, err
		}
		for i, res := range rendered {
			results[slots[i]] = res
		}
		stats.Rendered = len(rendered)
	}

	byID := make(map[string]*Rendered, len(live))
	order := make([]*Rendered, 0, len(live))
	images := make(map[string]string)
	nextCache := make(map[string]cacheEntry, len(live))
	for i, p := range live {
		res := results[i]
		r := &Rendered{Post: p, HTML: res.HTML, Headings: res.Headings, Images: res.Images}
		if l.excerptLen > 0 {
			if r.Excerpt, err = pipeline.Excerpt(res.HTML, l.excerptLen); err != nil {
				l.logger.Warn("excerpt failed", "post", p.ID, "error", err)
			}
		}
		for _, img := range res.Images {
			src, err := ResolveImageSource(p.Dir, img.Source)
			if err != nil {
				l.logger.Warn("image not served", "post", p.ID, "error", err)
				continue
			}
			images[img.Target] = src
		}
		byID[strings.ToLower(p.ID)] = r
		order = append(order, r)
		nextCache[p.ID] = cacheEntry{hash: hashes[i], result: res}
	}
	SortNewestFirst(order, func(r *Rendered) *Post { return r.Post })

	l.mu.Lock()
	l.byID, l.order, l.images, l.cache = byID, order, images, nextCache
	l.mu.Unlock()

	stats.Posts = len(order)
	stats.Duration = time.Since(start)
	l.logger.Info("content reloaded",
		"dir", l.dir,
		"posts", stats.Posts,
		"drafts", stats.Drafts,
		"rendered", stats.Rendered,
		"cached", stats.Cached,
		"duration_ms", stats.Duration.Milliseconds(),
	)
	return stats, nil
}

// Published returns the served posts, newest first.
func (l *Library) Published() []*Rendered {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Rendered, len(l.order))
	copy(out, l.order)
	return out
}

// Get looks a post up by ID, ignoring case.
func (l *Library) Get(id string) (*Rendered, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.byID[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPostNotFound, id)
	}
	return r, nil
}

// ImageFile maps a rewritten image URL path such as /img/post/1.png to the
// source file it was rewritten from. The file may not exist.
func (l *Library) ImageFile(urlPath string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	src, ok := l.images[path.Clean("/"+urlPath)]
	return src, ok
}

// contentHash keys the render cache.
func contentHash(p *Post) string {
	h := sha256.New()
	_, _ = io.WriteString(h, p.Title)
	_, _ = h.Write([]byte{0})
	_, _ = io.WriteString(h, p.Markdown)
	return hex.EncodeToString(h.Sum(nil))
}
