package md2post

import (
	"errors"

	"github.com/alnah/go-md2post/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyDocumentID   = errors.New("document ID cannot be empty")
	ErrInvalidDocumentID = errors.New("invalid document ID")
	ErrUnknownEngine     = errors.New("unknown render engine")
	ErrHTMLConversion    = pipeline.ErrHTMLConversion

	// ErrMissingImageExtension reports a local image whose destination has
	// no file extension. It is the only error the event engine produces for
	// well-formed input.
	ErrMissingImageExtension = pipeline.ErrMissingImageExtension
)
