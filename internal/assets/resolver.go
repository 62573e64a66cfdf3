package assets

import "errors"

// AssetResolver looks assets up in a user directory first and in the
// embedded defaults second. Only lookup misses fall through: an invalid
// name, an unreadable file or an incomplete template set stops the search.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver creates a resolver. An empty basePath uses the
// embedded assets alone.
func NewAssetResolver(basePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if basePath != "" {
		custom, err := NewFilesystemLoader(basePath)
		if err != nil {
			return nil, err
		}
		r.chain = append(r.chain, custom)
	}
	r.chain = append(r.chain, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle implements AssetLoader.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return first(r.chain, func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadScript implements AssetLoader.
func (r *AssetResolver) LoadScript(name string) (string, error) {
	return first(r.chain, func(l AssetLoader) (string, error) { return l.LoadScript(name) })
}

// LoadTemplateSet implements AssetLoader.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	return first(r.chain, func(l AssetLoader) (*TemplateSet, error) { return l.LoadTemplateSet(name) })
}

// Sources reports how many loaders are consulted, 2 with a user directory.
func (r *AssetResolver) Sources() int {
	return len(r.chain)
}

// first returns the result of the first loader that has the asset. The
// error of the last loader is returned when none does.
func first[T any](chain []AssetLoader, load func(AssetLoader) (T, error)) (T, error) {
	var zero T
	var err error
	for _, l := range chain {
		var v T
		if v, err = load(l); err == nil {
			return v, nil
		}
		if !isMiss(err) {
			return zero, err
		}
	}
	return zero, err
}

func isMiss(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrScriptNotFound) ||
		errors.Is(err, ErrTemplateSetNotFound)
}

var _ AssetLoader = (*AssetResolver)(nil)
