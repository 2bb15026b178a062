package svgdoc

import "errors"

// Package sentinel errors.
var (
	// ErrNoParentDir is returned by SaveHTML when the target's parent
	// directory does not exist. Directories are never auto-created.
	ErrNoParentDir = errors.New("svgdoc: parent directory does not exist")

	// ErrEmptyDocument is returned by ExportXLSX for a document with no
	// subplots.
	ErrEmptyDocument = errors.New("svgdoc: document has no subplots")
)
