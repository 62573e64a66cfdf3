package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/hints"
	"github.com/alnah/go-md2post/internal/site"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// runServe serves the blog until ctx is canceled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: serve takes no arguments, got %q", ErrUsage, positional[0])
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
	addr := cfg.Server.Addr
	if f.addr != "" {
		addr = f.addr
	}

	r, err := newRenderer(cfg, "", "")
	if err != nil {
		return err
	}
	parts, err := newSiteParts(ctx, cfg, r, env)
	if err != nil {
		return err
	}

	metrics := site.NewMetrics()
	lib, stats, err := newLibrary(ctx, contentDir, cfg, r, log, f.drafts, f.workers)
	metrics.ObserveReload(stats, err)
	if err != nil {
		return err
	}

	handler := site.NewServer(lib, parts.pages, parts.static, site.ServerOptions{
		ImagesRoot:  cfg.Build.ImagesRoot,
		CacheMaxAge: cfg.Server.CacheMaxAge,
		Metrics:     metrics,
		Logger:      log,
	})
	httpServer := &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
		ReadHeaderTimeout: cfg.Server.ReadTimeoutDuration(),
		WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrListen, addr, err, hints.ForListen(addr))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("serving blog", "addr", ln.Addr().String(), "posts", stats.Posts, "watch", f.watch)
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if f.watch {
		g.Go(func() error {
			w := site.NewWatcher(lib, site.DefaultDebounce, log, func(s content.ReloadStats, err error) {
				metrics.ObserveReload(s, err)
			})
			return w.Run(gctx)
		})
	}
	return g.Wait()
}
