package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/assets"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/site"
)

// defaultConfigName is looked up when --config is not given.
const defaultConfigName = "md2post"

// loadConfig loads the named config. Without a name, md2post.yaml is used
// when it exists and DefaultConfig otherwise.
func loadConfig(name string) (*config.Config, error) {
	if name != "" {
		return config.LoadConfig(name)
	}
	cfg, err := config.LoadConfig(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// newLogger builds the command logger from common flags.
func newLogger(f *commonFlags, w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(f.logFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q (available: text, json)", ErrUsage, f.logFormat)
	}
}

// newRenderer builds a renderer from config. A non-empty engine overrides
// render.engine, a non-empty style overrides highlight.style.
func newRenderer(cfg *config.Config, engine, style string) (*md2post.Renderer, error) {
	if engine == "" {
		engine = cfg.Render.Engine
	}
	e, err := md2post.ParseEngine(engine)
	if err != nil {
		return nil, err
	}
	if style == "" {
		style = cfg.Highlight.Style
	}
	return md2post.NewRenderer(
		md2post.WithEngine(e),
		md2post.WithHighlightStyle(style),
		md2post.WithHighlightClasses(cfg.Highlight.Classes),
		md2post.WithImagesRoot(cfg.Build.ImagesRoot),
	)
}

// siteParts is everything needed to render pages.
type siteParts struct {
	renderer *md2post.Renderer
	pages    *site.Pages
	static   site.Static
}

// newSiteParts loads assets and templates and renders the about page.
func newSiteParts(ctx context.Context, cfg *config.Config, r *md2post.Renderer, env *Environment) (*siteParts, error) {
	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}
	ts, err := resolver.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		return nil, err
	}
	static, err := site.LoadStatic(resolver, r)
	if err != nil {
		return nil, err
	}
	about, err := site.RenderAbout(ctx, r, cfg.Site.About)
	if err != nil {
		return nil, err
	}
	pages, err := site.NewPages(ts, site.PageOptions{
		Site:  cfg.Site,
		TOC:   cfg.Render.TOC,
		About: about,
		Now:   env.Now,
	})
	if err != nil {
		return nil, err
	}
	return &siteParts{renderer: r, pages: pages, static: static}, nil
}

// newLibrary creates a content library and loads it once.
func newLibrary(ctx context.Context, dir string, cfg *config.Config, r *md2post.Renderer, log *slog.Logger, drafts bool, workers int) (*content.Library, content.ReloadStats, error) {
	if workers == 0 {
		workers = cfg.Render.Workers
	}
	lib := content.NewLibrary(dir, r,
		content.WithWorkers(workers),
		content.WithExcerptLength(cfg.Render.ExcerptLength),
		content.WithLogger(log),
		content.WithDrafts(drafts),
	)
	stats, err := lib.Reload(ctx)
	return lib, stats, err
}

// validateWorkers rejects negative or oversized worker counts.
func validateWorkers(n int) error {
	if n < 0 || n > md2post.MaxPoolSize {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrUsage, md2post.MaxPoolSize, n)
	}
	return nil
}
