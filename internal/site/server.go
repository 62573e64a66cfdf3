package site

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alnah/go-md2post/internal/content"
)

// Server serves the blog over HTTP.
type Server struct {
	router      chi.Router
	lib         *content.Library
	pages       *Pages
	static      Static
	imagesRoot  string
	cacheMaxAge int
	metrics     *Metrics
	log         *slog.Logger
}

// ServerOptions configures a Server.
type ServerOptions struct {
	ImagesRoot  string   // first segment of image URLs, default "img"
	CacheMaxAge int      // seconds, 0 disables Cache-Control
	Metrics     *Metrics // nil disables /metrics
	Logger      *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(lib *content.Library, pages *Pages, static Static, opts ServerOptions) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.ImagesRoot == "" {
		opts.ImagesRoot = "img"
	}

	s := &Server{
		lib:         lib,
		pages:       pages,
		static:      static,
		imagesRoot:  strings.Trim(opts.ImagesRoot, "/"),
		cacheMaxAge: opts.CacheMaxAge,
		metrics:     opts.Metrics,
		log:         opts.Logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log, s.metrics))

	// Operational endpoints.
	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	// Cacheable content.
	r.Group(func(r chi.Router) {
		r.Use(CacheControl(s.cacheMaxAge))

		r.Get("/", s.handleIndex)
		r.Get("/posts", s.handlePosts)
		r.Get("/post/{id}", s.handlePost)
		r.Get("/about", s.handleAbout)

		r.Get("/style/site.css", s.handleText("text/css; charset=utf-8", s.static.SiteCSS))
		r.Get("/style/highlight.css", s.handleText("text/css; charset=utf-8", s.static.HighlightCSS))
		r.Get("/js/code-copy.js", s.handleText("text/javascript; charset=utf-8", s.static.Script))
		r.Get("/"+s.imagesRoot+"/*", s.handleImage)
	})

	r.NotFound(s.handleNotFound)
	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"posts":  len(s.lib.Published()),
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK)(s.pages.Index(s.lib.Published()))
}

func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK)(s.pages.PostList(s.lib.Published()))
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	post, err := s.lib.Get(chi.URLParam(r, "id"))
	if errors.Is(err, content.ErrPostNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.writePage(w, r, http.StatusOK)(s.pages.Post(post))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, http.StatusOK)(s.pages.About())
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	file, ok := s.lib.ImageFile(r.URL.Path)
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	http.ServeFile(w, r, file)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	s.writePage(w, r, http.StatusNotFound)(s.pages.NotFound(r.URL.Path))
}

func (s *Server) handleText(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = io.WriteString(w, body)
	}
}

// writePage returns a sink for a page render result.
func (s *Server) writePage(w http.ResponseWriter, r *http.Request, status int) func([]byte, error) {
	return func(page []byte, err error) {
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write(page)
	}
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("page render failed", "path", r.URL.Path, "error", err)
	w.Header().Set("Cache-Control", "no-store")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
