package md2post

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent renders.
	MaxPoolSize = 16
)

// ResolvePoolSize determines the number of concurrent renders.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers
	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// RenderAll renders inputs concurrently with at most workers renders in
// flight (0 = ResolvePoolSize). Results are returned in input order. The
// first error cancels the remaining renders and is returned.
func (r *Renderer) RenderAll(ctx context.Context, inputs []Input, workers int) ([]*Result, error) {
	results := make([]*Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ResolvePoolSize(workers))

	for i, in := range inputs {
		g.Go(func() error {
			res, err := r.Render(ctx, in)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
