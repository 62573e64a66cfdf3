// Package yamlutil decodes configuration files and post front matter with
// goccy/go-yaml. Both share one input limit and report syntax errors with
// the offending source line.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps decoded input in bytes.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrDecode         = errors.New("yamlutil: decode failed")
)

// UnmarshalStrict decodes data into v. Keys v does not declare and keys
// given twice are errors, so a misspelled option never passes silently.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	err := yaml.UnmarshalWithOptions(data, v, yaml.Strict(), yaml.DisallowDuplicateKey())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, yaml.FormatError(err, false, true))
	}
	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: encoding: %w", err)
	}
	return out, nil
}
