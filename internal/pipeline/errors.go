package pipeline

import "errors"

// ErrMissingImageExtension indicates a local image reference has no file
// extension, so no output path can be derived for it.
var ErrMissingImageExtension = errors.New("local image has no file extension")
