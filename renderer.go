package md2post

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2post/internal/event"
	"github.com/alnah/go-md2post/internal/highlight"
	"github.com/alnah/go-md2post/internal/pipeline"
	"github.com/alnah/go-md2post/internal/source"
)

// eventSource turns Markdown into an event stream.
type eventSource interface {
	Events(markdown []byte) []event.Event
}

// Compile-time interface implementation checks.
var (
	_ eventSource            = (*source.Goldmark)(nil)
	_ pipeline.HTMLConverter = (*pipeline.StockConverter)(nil)
	_ Highlighter            = (*highlight.Chroma)(nil)
	_ Highlighter            = pipeline.PlainHighlighter{}

	_ pipeline.LineHighlighter = (*highlight.Chroma)(nil)
	_ pipeline.LineHighlighter = pipeline.PlainHighlighter{}
)

// Renderer converts Markdown documents into HTML fragments.
// It holds no per-document state and is safe for concurrent use.
type Renderer struct {
	cfg         rendererConfig
	source      eventSource
	stock       pipeline.HTMLConverter
	highlighter Highlighter
	chroma      *highlight.Chroma // nil when a custom highlighter is set
}

// NewRenderer creates a Renderer with default configuration.
// Returns ErrUnknownEngine if WithEngine named an unsupported engine.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			timeout:    defaultTimeout,
			engine:     EngineEvent,
			style:      highlight.DefaultStyle,
			classes:    true,
			imagesRoot: pipeline.DefaultImagesRoot,
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	engine, err := ParseEngine(string(r.cfg.engine))
	if err != nil {
		return nil, err
	}
	r.cfg.engine = engine

	if !r.cfg.customHighlighter {
		r.chroma = highlight.New(
			highlight.WithStyle(r.cfg.style),
			highlight.WithClasses(r.cfg.classes),
		)
		r.highlighter = r.chroma
	}
	if r.highlighter == nil {
		r.highlighter = pipeline.PlainHighlighter{}
	}

	switch r.cfg.engine {
	case EngineGoldmark:
		r.stock = pipeline.NewStockConverter(r.styleName())
	default:
		r.source = source.NewGoldmark()
	}

	return r, nil
}

// Engine returns the active render engine.
func (r *Renderer) Engine() Engine {
	return r.cfg.engine
}

// ImagesRoot returns the first path segment of rewritten image paths.
func (r *Renderer) ImagesRoot() string {
	return r.cfg.imagesRoot
}

// Render converts one document. The context bounds the render together
// with the configured timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	if r.cfg.engine == EngineGoldmark {
		html, err := r.stock.ToHTML(ctx, []byte(input.Markdown))
		if err != nil {
			return nil, fmt.Errorf("converting to HTML: %w", err)
		}
		return &Result{HTML: html}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	events := r.source.Events(pipeline.NormalizeLineEndings([]byte(input.Markdown)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := pipeline.Render(events, pipeline.Options{
		DocumentID:  input.ID,
		ImagesRoot:  r.cfg.imagesRoot,
		Highlighter: r.highlighter,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", input.ID, err)
	}
	return res, nil
}

// HighlightCSS writes the stylesheet for class-based highlighting. It
// writes nothing when a custom highlighter is configured.
func (r *Renderer) HighlightCSS(w io.Writer) error {
	if r.chroma == nil {
		return nil
	}
	return r.chroma.CSS(w)
}

func (r *Renderer) styleName() string {
	if r.chroma != nil {
		return r.chroma.StyleName()
	}
	return r.cfg.style
}

// validateInput checks that the document ID is a single path segment.
func validateInput(input Input) error {
	id := input.ID
	if strings.TrimSpace(id) == "" {
		return ErrEmptyDocumentID
	}
	if id == "." || id == ".." || strings.ContainsAny(id, "/\\?#") || strings.TrimSpace(id) != id {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentID, id)
	}
	return nil
}
