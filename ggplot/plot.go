// Package ggplot adapts declarative, grammar-of-graphics style plots to
// the accessible document model: it classifies built layers, extracts
// their tabular data into the normalized cross-chart-type schema, and
// generates CSS selectors binding data points to the rendered grob
// tree.
//
// The plotting engine itself is an external collaborator. It is
// consumed through the Plot interface: Build resolves the engine's
// internal build step and exposes per-layer tabular data
// (aclements/go-gg table groupings), discrete scale breaks, facet
// labels, and the rendered node tree.
package ggplot

import (
	"github.com/accessplot/accessplot/grob"
	"github.com/aclements/go-gg/table"
)

// Plot is a declarative chart specification owned by the host plotting
// engine.
type Plot interface {
	// Build resolves the engine's build step, returning the built
	// representation. Implementations may cache: building an already
	// built plot must be cheap and side-effect free.
	Build() (*Built, error)
}

// Composite is implemented by plot objects that compose independent
// sub-plots into one figure. Each sub-plot becomes its own subplot in
// the accessible document.
type Composite interface {
	Plots() []Plot
}

// Built is the engine's built representation of one plot: per-layer
// tabular data plus scale and facet metadata, and the rendered node
// tree.
type Built struct {
	Title     string
	XLabel    string
	YLabel    string
	FillLabel string

	// Layers in render order.
	Layers []*Layer

	// Discrete axis scales; nil for continuous axes.
	XScale *DiscreteScale
	YScale *DiscreteScale

	// Facets holds the ordered facet panel labels. Empty means the
	// plot is unfaceted. Layer data groupings list their tables in the
	// same order.
	Facets []string

	// Tree is the rendered grob tree. May be nil when the plot has not
	// been materialized; selector generation then yields empty lists.
	Tree grob.Node
}

// Layer is one built rendering layer.
type Layer struct {
	// Geom names the layer geometry: "bar", "col", "point", "line",
	// "path", "step", "tile", "raster", "boxplot", "histogram",
	// "smooth", "density", "hline", "vline", "abline", "text", "label".
	Geom string

	// Stat names the statistical transformation, e.g. "identity",
	// "count", "bin".
	Stat string

	// Position names the position adjustment: "identity", "dodge",
	// "stack", "fill".
	Position string

	// Aes maps aesthetic names ("x", "y", "fill", "colour", "group",
	// "xmin", "xmax", …) to column names in Data.
	Aes map[string]string

	// Data is the layer's built tabular data. When the plot is faceted
	// the grouping holds one table per facet, in Built.Facets order;
	// otherwise a single table.
	Data table.Grouping

	// Params holds fixed (non-mapped) layer parameters, e.g.
	// "yintercept", "xintercept", "intercept", "slope", "colour".
	Params map[string]any
}

// Aes returns the column bound to an aesthetic, or "".
func (l *Layer) aes(name string) string {
	if l == nil || l.Aes == nil {
		return ""
	}
	return l.Aes[name]
}

// param returns a fixed layer parameter.
func (l *Layer) param(name string) (any, bool) {
	if l == nil || l.Params == nil {
		return nil, false
	}
	v, ok := l.Params[name]
	return v, ok
}

// DiscreteScale is the engine's discrete axis representation: numeric
// break positions and their labels.
type DiscreteScale struct {
	Breaks []float64
	Labels []string
}

// facetTable returns the layer's table for one facet index. Unfaceted
// plots always use the first (only) table. Returns nil when the layer
// has no data for the facet.
func (l *Layer) facetTable(facet int) *table.Table {
	if l == nil || l.Data == nil {
		return nil
	}
	gids := l.Data.Tables()
	if len(gids) == 0 {
		return nil
	}
	if facet < 0 || facet >= len(gids) {
		facet = 0
	}
	return l.Data.Table(gids[facet])
}

// XY is a plain two-vector curve representation accepted by the smooth
// processor.
type XY struct {
	X []float64
	Y []float64
}

// Curve is implemented by fitted-model objects (density estimates,
// spline or loess fits) that can sample themselves to an ordered
// sequence of points.
type Curve interface {
	Sample() ([]float64, []float64)
}
