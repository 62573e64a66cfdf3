// Package pipeline renders a markdown event stream into styled HTML.
//
// Rendering runs in three stages over immutable trees:
//   - Builder consumes events with a frame stack and produces a node tree.
//     Headings get unique slugs from a SlugRegistry and local images are
//     renumbered by an ImageResolver as their frames open.
//   - GroupCodeBlocks replaces deferred code blocks with highlighted
//     markup, merging adjacent blocks into one panel.
//   - Serialize writes the tree as an HTML string, escaping text.
//
// Render ties the stages together for one document. All per-document
// state lives in the call, so documents can be rendered concurrently.
//
// The package also carries helpers used around a render: line ending
// normalization, table of contents generation, plain-text excerpts, and a
// stock goldmark converter used as a comparison baseline.
package pipeline
