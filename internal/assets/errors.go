package assets

import "errors"

// Lookup failures. The resolver falls back to embedded assets on these.
var (
	ErrStyleNotFound       = errors.New("assets: style not found")
	ErrScriptNotFound      = errors.New("assets: script not found")
	ErrTemplateSetNotFound = errors.New("assets: template set not found")
)

// Hard failures, never retried against embedded assets.
var (
	// ErrIncompleteTemplateSet reports a set that exists but lacks a page
	// from RequiredPages.
	ErrIncompleteTemplateSet = errors.New("assets: template set missing required page")
	ErrInvalidAssetName      = errors.New("assets: invalid name")
	ErrInvalidBasePath       = errors.New("assets: invalid base path")
	ErrAssetRead             = errors.New("assets: read failed")
	ErrPathTraversal         = errors.New("assets: path escapes base directory")
)
