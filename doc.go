// Package md2post renders Markdown blog posts into HTML fragments.
//
// # Quick Start
//
//	r, err := md2post.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := r.Render(ctx, md2post.Input{
//	    ID:       "hello-world",
//	    Markdown: "# Hello\n\n![cat](cat.png)",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.HTML)
//
// # Rendering Pipeline
//
// The event engine works in four stages:
//
//  1. Markdown is parsed by goldmark and flattened into a stream of
//     start/end/leaf events.
//  2. A frame stack folds the stream into an element tree, assigning unique
//     heading anchors and rewriting local image paths to
//     /{imagesRoot}/{id}/{n}.{ext}.
//  3. Adjacent fenced code blocks are merged into one panel with a copy
//     button per entry. Shell blocks (sh, bash, fish) render as prompt lines.
//  4. The tree is serialized to HTML with utility classes for the site
//     stylesheet.
//
// Result.Images lists every rewritten image so callers can copy the source
// files to their new location. Result.Headings feeds a table of contents.
//
// # Configuration
//
//	r, err := md2post.NewRenderer(
//	    md2post.WithHighlightStyle("dracula"),
//	    md2post.WithImagesRoot("media"),
//	    md2post.WithTimeout(5*time.Second),
//	)
//
// WithEngine(EngineGoldmark) switches to goldmark's stock renderer, which is
// useful for comparing output but skips anchors, code panels and image
// rewriting.
//
// # Concurrency
//
// A Renderer keeps no per-document state. Render may be called from many
// goroutines; RenderAll fans a batch out over a bounded errgroup.
//
// # Errors
//
// Render returns ErrEmptyDocumentID or ErrInvalidDocumentID for bad input,
// ErrMissingImageExtension when a local image has no extension, and the
// context error on cancellation. Use errors.Is to check.
package md2post
