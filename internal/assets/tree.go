package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Directories of an asset tree.
const (
	stylesDir    = "styles"
	scriptsDir   = "js"
	templatesDir = "templates"
)

// tree reads assets laid out as styles/, js/ and templates/ in an fs.FS.
// guard, when set, vets each slash-separated path before it is opened.
type tree struct {
	fsys  fs.FS
	guard func(rel string) error
}

func (t tree) read(rel string) ([]byte, error) {
	if t.guard != nil {
		if err := t.guard(rel); err != nil {
			return nil, err
		}
	}
	return fs.ReadFile(t.fsys, rel)
}

func (t tree) style(name string) (string, error) {
	return t.file(name, stylesDir, ".css", ErrStyleNotFound)
}

func (t tree) script(name string) (string, error) {
	return t.file(name, scriptsDir, ".js", ErrScriptNotFound)
}

func (t tree) file(name, dir, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	data, err := t.read(path.Join(dir, name+ext))
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", notFound, name)
	case errors.Is(err, ErrPathTraversal):
		return "", err
	default:
		return "", fmt.Errorf("%w: %s/%s%s: %v", ErrAssetRead, dir, name, ext, err)
	}
}

// templateSet reads every required page. A set with no page at all does
// not exist; a set with some pages missing is incomplete.
func (t tree) templateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	ts := &TemplateSet{Name: name, Pages: make(map[string]string, len(RequiredPages))}
	var missing []string
	for _, page := range RequiredPages {
		data, err := t.read(path.Join(templatesDir, name, page+".html"))
		switch {
		case err == nil:
			ts.Pages[page] = string(data)
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, page)
		case errors.Is(err, ErrPathTraversal):
			return nil, err
		default:
			return nil, fmt.Errorf("%w: %s/%s.html: %v", ErrAssetRead, name, page, err)
		}
	}

	switch len(missing) {
	case 0:
		return ts, nil
	case len(RequiredPages):
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	default:
		return nil, fmt.Errorf("%w: %q missing %s.html", ErrIncompleteTemplateSet, name, missing[0])
	}
}
