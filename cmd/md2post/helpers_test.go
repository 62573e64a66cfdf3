package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

// testEnv returns an Environment with captured output and a fixed clock.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeTestFile writes content to path, creating parent directories.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeSite creates a content directory with two posts, one image and a
// config file pointing at it. It returns the config path and the site root.
func writeSite(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")

	writeTestFile(t, filepath.Join(contentDir, "hello", "index.md"),
		"---\ntitle: Hello\npublished: 2025-03-01\ndraft: false\n---\n# Hello\n\n![shot](shot.png)\n\n```go\nfmt.Println(1)\n```\n")
	writeTestFile(t, filepath.Join(contentDir, "hello", "shot.png"), "png")
	writeTestFile(t, filepath.Join(contentDir, "wip", "index.md"),
		"---\ntitle: Work in progress\npublished: 2025-04-01\ndraft: true\n---\nSoon.\n")

	cfgPath := filepath.Join(root, "md2post.yaml")
	writeTestFile(t, cfgPath, "site:\n  title: Test Blog\n  about: I write **things**.\n"+
		"content:\n  dir: "+contentDir+"\n"+
		"build:\n  dir: "+filepath.Join(root, "build")+"\n")
	return cfgPath, root
}
