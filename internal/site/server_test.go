package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, opts ServerOptions) (*fixture, *httptest.Server) {
	t.Helper()
	f := newFixture(t, PageOptions{TOC: true})
	srv := httptest.NewServer(NewServer(f.lib, f.pages, f.static, opts))
	t.Cleanup(srv.Close)
	return f, srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(body)
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, ServerOptions{CacheMaxAge: 600})

	tests := []struct {
		path        string
		wantStatus  int
		wantType    string
		wantContain string
		wantCache   string
	}{
		{"/", http.StatusOK, "text/html", "Hello World", "public, max-age=600"},
		{"/posts", http.StatusOK, "text/html", "Older &lt;Post&gt;", "public, max-age=600"},
		{"/post/hello", http.StatusOK, "text/html", `id="install"`, "public, max-age=600"},
		{"/post/HELLO", http.StatusOK, "text/html", `id="install"`, "public, max-age=600"},
		{"/about", http.StatusOK, "text/html", "<article class=\"about\">", "public, max-age=600"},
		{"/style/site.css", http.StatusOK, "text/css", ".code-copy-btn", "public, max-age=600"},
		{"/style/highlight.css", http.StatusOK, "text/css", ".chroma", "public, max-age=600"},
		{"/js/code-copy.js", http.StatusOK, "text/javascript", "clipboard", "public, max-age=600"},
		{"/img/hello/1.png", http.StatusOK, "image/png", "PNG", "public, max-age=600"},
		{"/post/wip", http.StatusNotFound, "text/html", "Not found", "no-store"},
		{"/post/missing", http.StatusNotFound, "text/html", "/post/missing", "no-store"},
		{"/img/hello/9.png", http.StatusNotFound, "text/html", "Not found", "no-store"},
		{"/nowhere", http.StatusNotFound, "text/html", "/nowhere", "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			resp, body := get(t, srv.URL+tt.path)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.wantType) {
				t.Errorf("Content-Type = %q, want %s", ct, tt.wantType)
			}
			if !strings.Contains(body, tt.wantContain) {
				t.Errorf("body missing %q:\n%.300s", tt.wantContain, body)
			}
			if cc := resp.Header.Get("Cache-Control"); cc != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", cc, tt.wantCache)
			}
		})
	}
}

func TestServer_NoCacheHeaderWhenDisabled(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, ServerOptions{})
	resp, _ := get(t, srv.URL+"/")
	if cc := resp.Header.Get("Cache-Control"); cc != "" {
		t.Errorf("Cache-Control = %q, want empty", cc)
	}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, ServerOptions{CacheMaxAge: 60})
	resp, body := get(t, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "" {
		t.Errorf("health is cacheable: %q", cc)
	}

	var got struct {
		Status string `json:"status"`
		Posts  int    `json:"posts"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "ok" || got.Posts != 2 {
		t.Errorf("health = %+v, want ok with 2 posts", got)
	}
}

// ---------------------------------------------------------------------------
// Metrics
// ---------------------------------------------------------------------------

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	f, srv := newTestServer(t, ServerOptions{Metrics: m})
	stats, err := f.lib.Reload(t.Context())
	m.ObserveReload(stats, err)

	get(t, srv.URL+"/post/hello")
	get(t, srv.URL+"/nowhere")

	_, body := get(t, srv.URL+"/metrics")
	for _, want := range []string{
		`md2post_http_requests_total{route="/post/{id}",status="200"} 1`,
		`md2post_http_requests_total{route="unmatched",status="404"} 1`,
		`md2post_posts_published 2`,
		`md2post_content_reloads_total{result="ok"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	t.Parallel()

	_, srv := newTestServer(t, ServerOptions{})
	resp, _ := get(t, srv.URL+"/metrics")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
