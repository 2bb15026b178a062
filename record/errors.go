package record

import "errors"

// Package errors for call recording and grouping.
var (
	// ErrNoPlots is returned when an operation expects recorded plots
	// on a surface that has none.
	ErrNoPlots = errors.New("record: no plots detected on this surface")

	// ErrGroupNotFound is returned when a plot group index is out of
	// range.
	ErrGroupNotFound = errors.New("record: plot group not found")
)
