package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/assets"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/dateutil"
	"github.com/alnah/go-md2post/internal/pipeline"
)

// ErrTemplate indicates a page template failed to parse or execute.
var ErrTemplate = errors.New("page template failed")

// defaultIndexLimit is the number of posts listed on the front page.
const defaultIndexLimit = 10

// PageOptions configures page rendering.
type PageOptions struct {
	Site       config.SiteConfig
	TOC        bool          // table of contents on post pages
	About      template.HTML // rendered /about body
	IndexLimit int           // posts on the front page (0 = default)
	Now        func() time.Time
}

// Pages renders full HTML pages from a template set.
type Pages struct {
	opts  PageOptions
	dates *dateutil.Formatter
	tmpl  map[string]*template.Template
}

type pageData struct {
	Site    config.SiteConfig
	Title   string
	Year    int
	Path    string
	Posts   []postSummary
	More    bool
	Post    *postView
	Content template.HTML
}

type postSummary struct {
	ID, Title, Date, ISODate, Excerpt string
}

type postView struct {
	ID, Title, Date, ISODate string
	HTML, TOC                template.HTML
}

// NewPages parses every page of ts against its layout.
func NewPages(ts *assets.TemplateSet, opts PageOptions) (*Pages, error) {
	dates, err := dateutil.NewFormatter(opts.Site.DateFormat)
	if err != nil {
		return nil, err
	}
	if opts.IndexLimit <= 0 {
		opts.IndexLimit = defaultIndexLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	p := &Pages{opts: opts, dates: dates, tmpl: make(map[string]*template.Template)}
	layout := ts.Page(assets.PageLayout)
	for _, name := range assets.RequiredPages {
		if name == assets.PageLayout {
			continue
		}
		t, err := template.New(name).Parse(layout)
		if err == nil {
			_, err = t.Parse(ts.Page(name))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplate, ts.Name, name, err)
		}
		p.tmpl[name] = t
	}
	return p, nil
}

// RenderAbout renders the about page Markdown with r.
func RenderAbout(ctx context.Context, r *md2post.Renderer, markdown string) (template.HTML, error) {
	if markdown == "" {
		return "", nil
	}
	res, err := r.Render(ctx, md2post.Input{ID: "about", Markdown: markdown})
	if err != nil {
		return "", fmt.Errorf("rendering about page: %w", err)
	}
	return template.HTML(res.HTML), nil // #nosec G203 -- rendered from the site's own config
}

// Index renders the front page with the newest posts.
func (p *Pages) Index(posts []*content.Rendered) ([]byte, error) {
	more := len(posts) > p.opts.IndexLimit
	if more {
		posts = posts[:p.opts.IndexLimit]
	}
	d := p.data("", "/")
	d.Posts = p.summaries(posts)
	d.More = more
	return p.execute(assets.PageIndex, d)
}

// PostList renders the full archive.
func (p *Pages) PostList(posts []*content.Rendered) ([]byte, error) {
	d := p.data("Posts", "/posts")
	d.Posts = p.summaries(posts)
	return p.execute(assets.PagePosts, d)
}

// Post renders one article.
func (p *Pages) Post(post *content.Rendered) ([]byte, error) {
	d := p.data(post.Title, "/post/"+post.ID)
	view := &postView{
		ID:      post.ID,
		Title:   post.Title,
		Date:    p.dates.Format(post.Published),
		ISODate: post.Published.Format(time.DateOnly),
		HTML:    template.HTML(post.HTML), // #nosec G203 -- produced by the renderer
	}
	if p.opts.TOC {
		view.TOC = template.HTML(pipeline.TableOfContents(post.Headings, pipeline.TOCOptions{Title: "Contents"})) // #nosec G203
	}
	d.Post = view
	return p.execute(assets.PagePost, d)
}

// About renders the about page.
func (p *Pages) About() ([]byte, error) {
	d := p.data("About", "/about")
	d.Content = p.opts.About
	return p.execute(assets.PageAbout, d)
}

// NotFound renders the 404 page for path.
func (p *Pages) NotFound(path string) ([]byte, error) {
	return p.execute(assets.PageNotFound, p.data("Not found", path))
}

func (p *Pages) data(title, path string) pageData {
	return pageData{
		Site:  p.opts.Site,
		Title: title,
		Year:  p.opts.Now().Year(),
		Path:  path,
	}
}

func (p *Pages) summaries(posts []*content.Rendered) []postSummary {
	out := make([]postSummary, len(posts))
	for i, post := range posts {
		out[i] = postSummary{
			ID:      post.ID,
			Title:   post.Title,
			Date:    p.dates.Format(post.Published),
			ISODate: post.Published.Format(time.DateOnly),
			Excerpt: post.Excerpt,
		}
	}
	return out
}

func (p *Pages) execute(name string, d pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.tmpl[name].ExecuteTemplate(&buf, "layout", d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	return buf.Bytes(), nil
}
