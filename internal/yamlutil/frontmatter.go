package yamlutil

import (
	"bytes"
	"errors"
)

// frontMatterDelimiter opens and closes a front matter block.
const frontMatterDelimiter = "---"

var (
	ErrNoFrontMatter           = errors.New("yamlutil: document does not start with ---")
	ErrUnterminatedFrontMatter = errors.New("yamlutil: front matter has no closing ---")
)

// SplitFrontMatter separates a leading YAML block delimited by --- lines
// from the document body. Line endings may be \n or \r\n; the returned
// parts use \n.
func SplitFrontMatter(data []byte) (front, body []byte, err error) {
	lines := bytes.Split(data, []byte("\n"))
	for i, l := range lines {
		lines[i] = bytes.TrimSuffix(l, []byte("\r"))
	}

	if len(lines) == 0 || string(lines[0]) != frontMatterDelimiter {
		return nil, nil, ErrNoFrontMatter
	}
	for i := 1; i < len(lines); i++ {
		if string(lines[i]) != frontMatterDelimiter {
			continue
		}
		front = bytes.Join(lines[1:i], []byte("\n"))
		body = bytes.Join(lines[i+1:], []byte("\n"))
		return front, body, nil
	}
	return nil, nil, ErrUnterminatedFrontMatter
}

// HasFrontMatter reports whether data opens with a front matter delimiter.
func HasFrontMatter(data []byte) bool {
	first, _, _ := bytes.Cut(data, []byte("\n"))
	return string(bytes.TrimSuffix(first, []byte("\r"))) == frontMatterDelimiter
}
