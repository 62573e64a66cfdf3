package content

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2post/internal/fileutil"
)

// imageSubdir is searched when an image is not next to index.md.
const imageSubdir = "img"

// imageCandidates lists the files an image destination may refer to, in
// lookup order. Destinations that would leave the post directory, through
// ".." or an absolute path, have no candidates.
func imageCandidates(postDir, source string) []string {
	source = strings.SplitN(source, "#", 2)[0]
	source = strings.SplitN(source, "?", 2)[0]
	if unescaped, err := url.PathUnescape(source); err == nil {
		source = unescaped
	}
	rel := filepath.FromSlash(strings.TrimPrefix(source, "./"))
	if !filepath.IsLocal(rel) {
		return nil
	}
	return []string{
		filepath.Join(postDir, rel),
		filepath.Join(postDir, imageSubdir, rel),
	}
}

// ResolveImageSource returns the first existing candidate for source, or
// the first candidate when none exists. A source outside postDir fails
// with ErrImageNotFound.
func ResolveImageSource(postDir, source string) (string, error) {
	candidates := imageCandidates(postDir, source)
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %q is outside the post directory", ErrImageNotFound, source)
	}
	for _, c := range candidates {
		if fileutil.FileExists(c) {
			return c, nil
		}
	}
	return candidates[0], nil
}

// CopyImages copies every rewritten image of posts to buildDir joined with
// its URL path, e.g. build/img/post/1.png. It returns the number of files
// copied and fails on the first missing source.
func CopyImages(buildDir string, posts []*Rendered) (int, error) {
	copied := 0
	for _, p := range posts {
		for _, img := range p.Images {
			src, err := ResolveImageSource(p.Dir, img.Source)
			if err != nil {
				return copied, fmt.Errorf("%s: %w", p.ID, err)
			}
			if !fileutil.FileExists(src) {
				return copied, fmt.Errorf("%w: %s: %q", ErrImageNotFound, p.ID, img.Source)
			}
			dst := filepath.Join(buildDir, filepath.FromSlash(strings.TrimPrefix(img.Target, "/")))
			if err := fileutil.CopyFile(src, dst); err != nil {
				return copied, fmt.Errorf("copying image for %s: %w", p.ID, err)
			}
			copied++
		}
	}
	return copied, nil
}
