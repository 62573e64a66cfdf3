package pipeline

import (
	"strconv"
	"strings"
	"unicode"
)

// fallbackSlug is used when heading text has no letters or digits.
const fallbackSlug = "section"

// Slugify lowercases text and joins its runs of letters and digits with
// single hyphens. Text without any letter or digit yields "section".
func Slugify(text string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if sb.Len() == 0 {
		return fallbackSlug
	}
	return sb.String()
}

// SlugRegistry hands out unique heading anchors for one document.
// The zero value is ready to use. It is not safe for concurrent use.
type SlugRegistry struct {
	next map[string]int  // last suffix tried per base slug
	used map[string]bool // every anchor handed out
}

// Assign returns the anchor for a heading with the given text. The first
// heading with a base slug gets it unchanged; later ones get base-2, base-3
// and so on, in call order. A numbered candidate already handed out, for
// example by a heading titled "Intro 2", is skipped.
func (r *SlugRegistry) Assign(text string) string {
	base := Slugify(text)
	if r.used == nil {
		r.used = make(map[string]bool)
		r.next = make(map[string]int)
	}

	slug := base
	if r.used[base] {
		n := max(r.next[base], 1)
		for {
			n++
			slug = base + "-" + strconv.Itoa(n)
			if !r.used[slug] {
				break
			}
		}
		r.next[base] = n
	}
	r.used[slug] = true
	return slug
}
