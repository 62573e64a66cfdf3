package main

import (
	"errors"
	"os"

	"github.com/alnah/go-md2post"
	"github.com/alnah/go-md2post/internal/assets"
	"github.com/alnah/go-md2post/internal/config"
	"github.com/alnah/go-md2post/internal/content"
	"github.com/alnah/go-md2post/internal/site"
)

// Exit codes for md2post CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // Malformed post or render failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content/render errors (exit 4)
	if errors.Is(err, content.ErrFrontMatter) ||
		errors.Is(err, content.ErrMissingField) ||
		errors.Is(err, content.ErrInvalidDate) ||
		errors.Is(err, content.ErrDuplicateID) ||
		errors.Is(err, md2post.ErrMissingImageExtension) ||
		errors.Is(err, md2post.ErrHTMLConversion) ||
		errors.Is(err, site.ErrTemplate) {
		return ExitContent
	}

	// Usage/config/validation errors (exit 2); checked before I/O because a
	// missing config file is a usage problem.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2post.ErrUnknownEngine) ||
		errors.Is(err, md2post.ErrEmptyDocumentID) ||
		errors.Is(err, md2post.ErrInvalidDocumentID) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrScriptNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrListen) ||
		errors.Is(err, content.ErrMissingIndex) ||
		errors.Is(err, content.ErrImageNotFound) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	return ExitGeneral
}
