// Package config loads the md2post site configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2post/internal/dateutil"
	"github.com/alnah/go-md2post/internal/fileutil"
	"github.com/alnah/go-md2post/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxNameLength        = 100
	MaxURLLength         = 2048
	MaxLabelLength       = 100
	MaxPathLength        = 4096
	MaxAboutLength       = 64 << 10
	MaxStyleLength       = 50
)

// configDirName is the directory under the user config dir searched for
// named configs.
const configDirName = "go-md2post"

// Config holds all configuration for building and serving the site.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Server    ServerConfig    `yaml:"server"`
	Content   ContentConfig   `yaml:"content"`
	Build     BuildConfig     `yaml:"build"`
	Highlight HighlightConfig `yaml:"highlight"`
	Render    RenderConfig    `yaml:"render"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// SiteConfig describes the site shown in the page shell.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	DateFormat  string `yaml:"dateFormat"` // preset name or tokens, e.g. "MMMM D, YYYY"
	About       string `yaml:"about"`      // markdown for the /about page
	Links       []Link `yaml:"links"`      // header navigation
}

// Link is a navigation entry.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	CacheMaxAge  int    `yaml:"cacheMaxAge"`  // seconds, 0 disables Cache-Control
	ReadTimeout  int    `yaml:"readTimeout"`  // seconds
	WriteTimeout int    `yaml:"writeTimeout"` // seconds
}

// ContentConfig locates the post sources.
type ContentConfig struct {
	Dir string `yaml:"dir"` // one subdirectory per post, each with index.md
}

// BuildConfig configures static output.
type BuildConfig struct {
	Dir        string `yaml:"dir"`
	ImagesRoot string `yaml:"imagesRoot"` // first URL segment of copied images
}

// HighlightConfig configures code highlighting.
type HighlightConfig struct {
	Style   string `yaml:"style"`   // chroma style name
	Classes bool   `yaml:"classes"` // CSS classes instead of inline styles
}

// RenderConfig configures rendering.
type RenderConfig struct {
	Engine        string `yaml:"engine"`        // "event" or "goldmark"
	Workers       int    `yaml:"workers"`       // 0 = auto
	TOC           bool   `yaml:"toc"`           // table of contents on post pages
	ExcerptLength int    `yaml:"excerptLength"` // runes shown in post lists
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// ReadTimeoutDuration returns the read timeout as a duration.
func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the write timeout as a duration.
func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.description", c.Site.Description, MaxDescriptionLength},
		{"site.author", c.Site.Author, MaxNameLength},
		{"site.about", c.Site.About, MaxAboutLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"build.dir", c.Build.Dir, MaxPathLength},
		{"build.imagesRoot", c.Build.ImagesRoot, MaxPathLength},
		{"highlight.style", c.Highlight.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for i, link := range c.Site.Links {
		if err := validateFieldLength(fmt.Sprintf("site.links[%d].label", i), link.Label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("site.links[%d].url", i), link.URL, MaxURLLength); err != nil {
			return err
		}
	}

	if c.Site.DateFormat != "" {
		if _, err := dateutil.NewFormatter(c.Site.DateFormat); err != nil {
			return fmt.Errorf("site.dateFormat: %w", err)
		}
	}

	if root := c.Build.ImagesRoot; strings.Contains(root, "..") || strings.ContainsAny(strings.Trim(root, "/"), "/\\") {
		return fmt.Errorf("%w: build.imagesRoot must be a single path segment, got %q", ErrInvalidValue, root)
	}

	ints := []struct {
		name  string
		value int
	}{
		{"server.cacheMaxAge", c.Server.CacheMaxAge},
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"render.workers", c.Render.Workers},
		{"render.excerptLength", c.Render.ExcerptLength},
	}
	for _, f := range ints {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, f.name, f.value)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that serves ./content/post on
// localhost and builds into ./build.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:      "Blog",
			DateFormat: dateutil.DefaultDisplayFormat,
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			CacheMaxAge:  86400,
			ReadTimeout:  10,
			WriteTimeout: 30,
		},
		Content:   ContentConfig{Dir: filepath.Join("content", "post")},
		Build:     BuildConfig{Dir: "build", ImagesRoot: "img"},
		Highlight: HighlightConfig{Style: "monokai", Classes: true},
		Render:    RenderConfig{Engine: "event", ExcerptLength: 200},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in standard locations. Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}
