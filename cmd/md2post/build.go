package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2post/internal/site"
)

// runBuild renders every published post and exports the static site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, positional[0])
	}
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(f.common.config)
	if err != nil {
		return err
	}
	log, err := newLogger(&f.common, env.Stderr)
	if err != nil {
		return err
	}

	contentDir := cfg.Content.Dir
	if f.content != "" {
		contentDir = f.content
	}
	outDir := cfg.Build.Dir
	if f.out != "" {
		outDir = f.out
	}

	r, err := newRenderer(cfg, "", "")
	if err != nil {
		return err
	}
	parts, err := newSiteParts(ctx, cfg, r, env)
	if err != nil {
		return err
	}
	lib, stats, err := newLibrary(ctx, contentDir, cfg, r, log, false, f.workers)
	if err != nil {
		return err
	}
	log.Debug("posts loaded", "posts", stats.Posts, "drafts", stats.Drafts, "duration", stats.Duration)

	exported, err := site.Export(outDir, lib, parts.pages, parts.static, log)
	if err != nil {
		return fmt.Errorf("exporting site to %s: %w", outDir, err)
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d pages and %d images in %s\n", exported.Pages, exported.Images, outDir)
	}
	return nil
}
