package md2post

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestRenderer_RenderAll(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		inputs := make([]Input, 20)
		for i := range inputs {
			inputs[i] = Input{ID: fmt.Sprintf("post-%d", i), Markdown: fmt.Sprintf("![p](p%d.png)", i)}
		}

		results, err := r.RenderAll(context.Background(), inputs, 3)
		if err != nil {
			t.Fatalf("RenderAll() error = %v", err)
		}
		for i, res := range results {
			want := fmt.Sprintf("/img/post-%d/1.png", i)
			if len(res.Images) != 1 || res.Images[0].Target != want {
				t.Errorf("results[%d].Images = %+v, want %s", i, res.Images, want)
			}
		}
	})

	t.Run("first error is returned", func(t *testing.T) {
		t.Parallel()

		inputs := []Input{
			{ID: "ok", Markdown: "fine"},
			{ID: "bad", Markdown: "![x](noext)"},
		}
		_, err := r.RenderAll(context.Background(), inputs, 0)
		if !errors.Is(err, ErrMissingImageExtension) {
			t.Errorf("RenderAll() error = %v, want ErrMissingImageExtension", err)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		results, err := r.RenderAll(context.Background(), nil, 0)
		if err != nil || len(results) != 0 {
			t.Errorf("RenderAll(nil) = %v, %v", results, err)
		}
	})
}
