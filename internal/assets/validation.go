package assets

import "fmt"

// maxAssetNameLength bounds style, script and template set names.
const maxAssetNameLength = 64

// ValidateAssetName accepts names built from ASCII letters, digits, '-'
// and '_', such as "site" or "code-copy". Any other character could leave
// the asset directory or change the file extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInvalidAssetName, len(name), maxAssetNameLength)
	}
	for _, c := range name {
		if !isNameChar(c) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidAssetName, name, c)
		}
	}
	return nil
}

func isNameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_':
		return true
	}
	return false
}
