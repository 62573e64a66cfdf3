package md2post

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2post/internal/pipeline"
)

// Input is one document to render.
type Input struct {
	// ID names the document. It becomes the directory segment of rewritten
	// image paths, so it must be a single path segment.
	ID string

	// Markdown is the document body without front matter.
	Markdown string
}

// Result holds the rendered fragment and what was collected on the way.
type Result = pipeline.Result

// Heading is a rendered heading with its assigned anchor.
type Heading = pipeline.Heading

// Image is a local image whose path was rewritten.
type Image = pipeline.Image

// Highlighter colors the body of a code block. Implementations must return
// HTML-safe markup and never fail.
type Highlighter interface {
	Highlight(code, language string) string
}

// Engine selects how Markdown becomes HTML.
type Engine string

const (
	// EngineEvent renders through the event pipeline with code panels,
	// heading anchors and image rewriting.
	EngineEvent Engine = "event"

	// EngineGoldmark renders with goldmark's stock HTML renderer. Headings
	// and images are not collected.
	EngineGoldmark Engine = "goldmark"
)

// Engines lists the available engine names.
func Engines() []string {
	return []string{string(EngineEvent), string(EngineGoldmark)}
}

// ParseEngine converts a name into an Engine. The empty string selects
// EngineEvent.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineEvent:
		return EngineEvent, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(Engines(), ", "))
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout           time.Duration
	engine            Engine
	style             string
	classes           bool
	imagesRoot        string
	customHighlighter bool
}

// defaultTimeout bounds a single render.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2post: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithEngine selects the render engine.
func WithEngine(e Engine) Option {
	return func(r *Renderer) {
		r.cfg.engine = e
	}
}

// WithHighlightStyle selects the chroma style for code blocks.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.style = name
	}
}

// WithHighlightClasses makes the highlighter emit CSS classes; serve the
// stylesheet from Renderer.HighlightCSS.
func WithHighlightClasses(enabled bool) Option {
	return func(r *Renderer) {
		r.cfg.classes = enabled
	}
}

// WithImagesRoot sets the first path segment of rewritten image paths.
func WithImagesRoot(root string) Option {
	return func(r *Renderer) {
		r.cfg.imagesRoot = root
	}
}

// WithHighlighter replaces the chroma highlighter.
func WithHighlighter(h Highlighter) Option {
	return func(r *Renderer) {
		r.highlighter = h
		r.cfg.customHighlighter = true
	}
}
