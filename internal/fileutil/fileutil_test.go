package fileutil_test

// Notes:
// - Write and close failure branches in WriteFileAtomic are not tested:
//   triggering disk write failures is platform-specific

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-md2post/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic Writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "post", "hello", "index.html")

	if err := fileutil.WriteFileAtomic(path, []byte("<p>v1</p>"), 0o644); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("<p>v2</p>"), 0o644); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(got) != "<p>v2</p>" {
		t.Errorf("content = %q, want <p>v2</p>", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (temp file left behind?)", len(entries))
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Errorf("mode = %v, want 0644", info.Mode().Perm())
		}
	}
}

// ---------------------------------------------------------------------------
// TestCopyFile - Image Copies
// ---------------------------------------------------------------------------

func TestCopyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "cat.png")
	if err := os.WriteFile(src, []byte("PNG"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	dst := filepath.Join(dir, "build", "img", "post", "1.png")
	if err := fileutil.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading copy: %v", err)
	}
	if string(got) != "PNG" {
		t.Errorf("copy = %q, want PNG", got)
	}

	err = fileutil.CopyFile(filepath.Join(dir, "missing.png"), dst)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing source error = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension Validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		wantErr error
	}{
		{"simple", "png", nil},
		{"upper case", "JPG", nil},
		{"empty", "", fileutil.ErrExtensionEmpty},
		{"slash", "png/x", fileutil.ErrExtensionPathTraversal},
		{"backslash", `png\x`, fileutil.ErrExtensionPathTraversal},
		{"null byte", "png\x00", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := fileutil.ValidateExtension(tt.ext)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExists - File and Directory Checks
// ---------------------------------------------------------------------------

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "index.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{"file", file, true, false},
		{"directory", dir, false, true},
		{"missing", filepath.Join(dir, "nope"), false, false},
		{"empty", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := fileutil.DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"md2post":          false,
		"my-site":          false,
		"./md2post.yaml":   true,
		"/etc/md2post.yml": true,
		`C:\site.yaml`:     true,
		"conf/site":        true,
	}
	for in, want := range tests {
		if got := fileutil.IsFilePath(in); got != want {
			t.Errorf("IsFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}
