package accessplot

import "errors"

// Package errors for the public accessplot surface.
var (
	// ErrNoSystem is returned when no registered system claims a plot
	// object.
	ErrNoSystem = errors.New("accessplot: no registered system can handle this plot object")

	// ErrUnsupportedPlot is returned when a system is asked to build an
	// orchestrator for a plot object its CanHandle would reject.
	ErrUnsupportedPlot = errors.New("accessplot: input must be a supported plot object")

	// ErrNotImplemented is returned when a base processor operation is
	// invoked that a concrete chart-type processor was expected to
	// provide. It marks an integration bug, not a runtime condition.
	ErrNotImplemented = errors.New("accessplot: operation not implemented")
)
