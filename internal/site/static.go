package site

import (
	"bytes"
	"fmt"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/assets"
)

// Static holds the stylesheets and script served under /style and /js.
type Static struct {
	SiteCSS      string
	HighlightCSS string
	Script       string
}

// LoadStatic reads the site stylesheet and copy script from loader and
// generates the highlight stylesheet from r.
func LoadStatic(loader assets.AssetLoader, r *md2post.Renderer) (Static, error) {
	var s Static
	var err error

	if s.SiteCSS, err = loader.LoadStyle(assets.DefaultStyleName); err != nil {
		return s, err
	}
	if s.Script, err = loader.LoadScript(assets.DefaultScriptName); err != nil {
		return s, err
	}

	var buf bytes.Buffer
	if err := r.HighlightCSS(&buf); err != nil {
		return s, fmt.Errorf("generating highlight stylesheet: %w", err)
	}
	s.HighlightCSS = buf.String()
	return s, nil
}
