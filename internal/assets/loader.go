package assets

// AssetLoader finds the files that dress a rendered post: the site
// stylesheet, the copy-button script and the page templates. Names carry
// no extension and must pass ValidateAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)             // styles/<name>.css
	LoadScript(name string) (string, error)            // js/<name>.js
	LoadTemplateSet(name string) (*TemplateSet, error) // templates/<name>/*.html
}

// builtin serves the package-level helpers.
var builtin = NewEmbeddedLoader()

// LoadStyle returns a built-in stylesheet.
func LoadStyle(name string) (string, error) { return builtin.LoadStyle(name) }

// LoadScript returns a built-in script.
func LoadScript(name string) (string, error) { return builtin.LoadScript(name) }

// LoadTemplateSet returns a built-in template set.
func LoadTemplateSet(name string) (*TemplateSet, error) { return builtin.LoadTemplateSet(name) }
