package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultImagesRoot is the first path segment of resolved image URLs.
const DefaultImagesRoot = "img"

// remotePrefixes mark image destinations that are left untouched.
var remotePrefixes = []string{"/", "http://", "https://", "mailto:", "data:"}

// Image is a local image reference rewritten by an ImageResolver.
type Image struct {
	Source string // destination as written in the document
	Target string // rewritten URL path
	Index  int    // 1-based position among local images
	Ext    string // extension without the dot
}

// ImageResolver rewrites local image destinations to
// /{root}/{document}/{n}.{ext}, numbering them in encounter order.
// It is scoped to one render and is not safe for concurrent use.
type ImageResolver struct {
	documentID string
	root       string
	images     []Image
}

// NewImageResolver creates a resolver for one document.
// An empty root means DefaultImagesRoot.
func NewImageResolver(documentID, root string) *ImageResolver {
	root = strings.Trim(root, "/")
	if root == "" {
		root = DefaultImagesRoot
	}
	return &ImageResolver{documentID: documentID, root: root}
}

// IsRemote reports whether dest is served as-is.
func IsRemote(dest string) bool {
	for _, p := range remotePrefixes {
		if strings.HasPrefix(dest, p) {
			return true
		}
	}
	return strings.Contains(dest, "://")
}

// Resolve returns the output destination for dest. Remote destinations are
// returned unchanged. A local destination without an extension fails with
// ErrMissingImageExtension and does not consume a number.
func (r *ImageResolver) Resolve(dest string) (string, error) {
	if IsRemote(dest) {
		return dest, nil
	}
	ext := extensionOf(dest)
	if ext == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingImageExtension, dest)
	}

	n := len(r.images) + 1
	target := "/" + r.root + "/" + r.documentID + "/" + strconv.Itoa(n) + "." + ext
	r.images = append(r.images, Image{Source: dest, Target: target, Index: n, Ext: ext})
	return target, nil
}

// Images returns the local images resolved so far, in order.
func (r *ImageResolver) Images() []Image {
	return append([]Image(nil), r.images...)
}

// extensionOf returns the text after the last dot of the final path
// segment. A query or fragment is not part of the path.
func extensionOf(dest string) string {
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	segment := dest[strings.LastIndex(dest, "/")+1:]
	dot := strings.LastIndex(segment, ".")
	if dot < 0 {
		return ""
	}
	return segment[dot+1:]
}
