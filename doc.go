// Package accessplot augments rendered statistical plots with an
// accessible, machine-readable data model so charts can be explored by
// keyboard, screen reader, and sonification.
//
// # Overview
//
// Given an already-built plot object (declarative, grammar-of-graphics
// style) or a recorded sequence of imperative drawing calls, accessplot
// determines which semantic chart elements exist (bars, points, lines,
// boxes, cells, smooths), extracts their values into a normalized
// cross-chart-type schema, and generates CSS selectors binding each data
// point back to the concrete SVG nodes the renderer produced. The visual
// output is never modified.
//
// # Quick Start
//
//	import (
//	    "github.com/accessplot/accessplot"
//	    "github.com/accessplot/accessplot/ggplot"
//	    "github.com/accessplot/accessplot/svgdoc"
//	)
//
//	accessplot.Register(ggplot.NewSystem())
//
//	doc, err := accessplot.BuildDocument(plot)
//	if err != nil {
//	    // plot not handled by any registered system
//	}
//	svg, err := svgdoc.RenderSVG(doc, tree)
//	if err != nil {
//	    // document failed to serialize
//	}
//	html := svgdoc.WrapHTML(svg)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Document model, ChartType, System registry, options
//   - record: imperative call interception, device state, call grouping
//   - ggplot, baseplot: one System per plotting paradigm, each with an
//     Orchestrator and per-chart-type layer processors
//   - grob: normalized renderable tree search and CSS selector helpers
//   - scale: discrete axis position-to-label mapping
//   - svgdoc: SVG/HTML/widget assembly and spreadsheet export
//
// Systems self-describe via CanHandle; the registry picks the first
// registered system that claims a plot object. Each orchestrator runs
// one layer processor per detected layer and assembles the combined
// document. A failing layer degrades to an empty result; it never
// aborts the document.
//
// # Concurrency
//
// Execution is synchronous call-and-return. Per-surface recording state
// assumes a single logical plotting session per surface identifier;
// callers must not interleave sessions against one surface without
// clearing between them.
package accessplot

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
