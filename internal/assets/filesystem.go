package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader serves a theme directory on disk. Paths that resolve
// outside the directory, through ".." or a symlink, are refused.
type FilesystemLoader struct {
	base string // absolute, symlinks resolved
	t    tree
}

// NewFilesystemLoader opens dir as a theme directory. It returns
// ErrInvalidBasePath unless dir is a readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	base, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	info, err := os.Stat(base)
	switch {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, base)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, base)
	}
	if _, err := os.ReadDir(base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	f := &FilesystemLoader{base: base}
	f.t = tree{fsys: os.DirFS(base), guard: f.contain}
	return f, nil
}

// LoadStyle reads <dir>/styles/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) { return f.t.style(name) }

// LoadScript reads <dir>/js/<name>.js.
func (f *FilesystemLoader) LoadScript(name string) (string, error) { return f.t.script(name) }

// LoadTemplateSet reads <dir>/templates/<name>/<page>.html for every
// required page.
func (f *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	return f.t.templateSet(name)
}

// contain fails with ErrPathTraversal when rel, after symlink resolution,
// is not inside the base directory. Paths that do not exist yet are
// checked as written and fail later on open.
func (f *FilesystemLoader) contain(rel string) error {
	p := filepath.Join(f.base, filepath.FromSlash(rel))
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	if !strings.HasPrefix(p, f.base+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, rel)
	}
	return nil
}
