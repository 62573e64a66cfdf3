package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	valid := []string{"site", "code-copy", "default", "dark_v2", "Monokai", "404"}
	for _, name := range valid {
		if err := ValidateAssetName(name); err != nil {
			t.Errorf("ValidateAssetName(%q) unexpected error: %v", name, err)
		}
	}

	invalid := map[string]string{
		"empty":            "",
		"extension":        "site.css",
		"hidden":           ".site",
		"parent traversal": "../templates",
		"unix path":        "themes/dark",
		"windows path":     `themes\dark`,
		"absolute":         "/etc/passwd",
		"drive letter":     "C:",
		"space":            "dark theme",
		"non-ascii":        "thème",
		"null byte":        "site\x00",
		"too long":         strings.Repeat("a", maxAssetNameLength+1),
	}
	for label, name := range invalid {
		t.Run(label, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(name)
			if !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		})
	}
}

func TestValidateAssetName_MessageNamesInput(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("../evil")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), `"../evil"`) {
		t.Errorf("error %q should quote the rejected name", err)
	}
}
