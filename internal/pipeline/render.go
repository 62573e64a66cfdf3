package pipeline

import "github.com/alnah/go-md2post/internal/event"

// Options configures one render.
type Options struct {
	// DocumentID is the path segment under the images root for local images.
	DocumentID string

	// ImagesRoot is the first segment of rewritten image paths.
	// Empty means DefaultImagesRoot.
	ImagesRoot string

	// Highlighter colors code blocks. Nil means PlainHighlighter.
	Highlighter Highlighter
}

// Result is the output of Render.
type Result struct {
	HTML     string
	Headings []Heading
	Images   []Image
}

// Render builds, groups and serializes one document. Every call uses fresh
// slug and image state, so concurrent renders of different documents are
// independent. The only failure is a local image without an extension.
func Render(events []event.Event, opts Options) (*Result, error) {
	resolver := NewImageResolver(opts.DocumentID, opts.ImagesRoot)
	b := NewBuilder(resolver)
	for _, ev := range events {
		if err := b.Push(ev); err != nil {
			return nil, err
		}
	}

	tree := GroupCodeBlocks(b.Finish(), opts.Highlighter)
	return &Result{
		HTML:     Serialize(tree),
		Headings: b.Headings(),
		Images:   resolver.Images(),
	}, nil
}
