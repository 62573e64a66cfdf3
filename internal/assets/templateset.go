package assets

// Page template names. Every set must provide all of them.
const (
	PageLayout   = "layout"
	PageIndex    = "index"
	PagePosts    = "posts"
	PagePost     = "post"
	PageAbout    = "about"
	PageNotFound = "not_found"
)

// RequiredPages lists the templates a complete set contains.
var RequiredPages = []string{PageLayout, PageIndex, PagePosts, PagePost, PageAbout, PageNotFound}

// TemplateSet holds the HTML page templates of the site.
// The layout defines "layout" and each page defines "content".
type TemplateSet struct {
	Name  string            // Identifier (name or directory path)
	Pages map[string]string // page name -> template source
}

// Page returns the template source for name, or "" if absent.
func (ts *TemplateSet) Page(name string) string {
	return ts.Pages[name]
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in site stylesheet.
const DefaultStyleName = "site"

// DefaultScriptName is the name of the built-in copy-button script.
const DefaultScriptName = "code-copy"
