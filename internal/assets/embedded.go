package assets

import "embed"

//go:embed styles js templates
var builtinFS embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct {
	t tree
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{t: tree{fsys: builtinFS}}
}

// LoadStyle implements AssetLoader.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) { return e.t.style(name) }

// LoadScript implements AssetLoader.
func (e *EmbeddedLoader) LoadScript(name string) (string, error) { return e.t.script(name) }

// LoadTemplateSet implements AssetLoader.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	return e.t.templateSet(name)
}
