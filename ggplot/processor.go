package ggplot

import (
	"fmt"
	"regexp"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
)

// Context carries everything one processor invocation needs: the built
// plot, the layer under extraction, its descriptor, the shared rendered
// tree, and the facet the invocation targets.
type Context struct {
	Built *Built
	Layer *Layer
	Desc  accessplot.LayerDescriptor

	// Tree is the rendered tree resolved once per plot and shared
	// across all processors.
	Tree grob.Node

	// Facet is the zero-based facet index this invocation extracts;
	// 0 for unfaceted plots. FacetLabel is the facet's panel label, ""
	// when unfaceted.
	Facet      int
	FacetLabel string

	// XMap and YMap recover categorical axis labels from the built
	// numeric positions; nil for continuous axes.
	XMap *scale.Mapping
	YMap *scale.Mapping
}

// axes returns the plot-level axis labels.
func (c *Context) axes() accessplot.Axes {
	return accessplot.Axes{X: c.Built.XLabel, Y: c.Built.YLabel, Fill: c.Built.FillLabel}
}

// xLabel maps a built x position to its categorical label, falling
// back to the stringified position.
func (c *Context) xLabel(v any) string {
	if l, ok := c.XMap.Lookup(v); ok {
		return l
	}
	return scale.Stringify(v)
}

// panelTree returns the subtree selector search is constrained to:
// the facet's panel node when the plot is faceted, else the whole
// tree.
func (c *Context) panelTree() grob.Node {
	if c.Tree == nil {
		return nil
	}
	if len(c.Built.Facets) == 0 {
		return c.Tree
	}
	pat := fmt.Sprintf(`panel-%d(\.[0-9]+)*`, c.Facet+1)
	if panel, ok := grob.FindNode(c.Tree, pat); ok {
		return panel
	}
	return nil
}

// findGeom locates this layer's geometry container in the panel
// subtree. geom is the grob name stem ("geom_rect", "geom_point", …);
// the rendered name carries a kind and a numeric id suffix
// ("geom_rect.rect.207"). Returns "" when unmatched, which callers
// treat as present-but-unaddressable.
func (c *Context) findGeom(geom string) string {
	panel := c.panelTree()
	if panel == nil {
		return ""
	}
	pat := regexp.QuoteMeta(geom) + `(\.[A-Za-z]+)?(\.[0-9]+)*`
	n, ok := grob.FindNode(panel, pat)
	if !ok {
		accessplot.Logger().Warn("ggplot: geometry grob not found", "geom", geom, "facet", c.Facet)
		return ""
	}
	return n.Name()
}

// Processor extracts one chart type. Process composes data extraction,
// selector generation, and title/axis resolution into a layer result.
// Extraction tolerates missing input by returning empty data; only
// genuinely unexpected layer shapes return an error, which the
// orchestrator degrades to an empty result.
type Processor interface {
	Type() accessplot.ChartType
	Process(ctx *Context) (accessplot.LayerResult, error)
}

// Reorderer is implemented by processors that re-sort raw rows before
// assignment to guarantee deterministic DOM order. Bar-family
// processors reorder by category label; everything else keeps input
// order.
type Reorderer interface {
	NeedsReordering() bool
}

// newProcessor is the closed type-to-processor factory. Unknown (and
// skip) types map to the unknown processor, which yields a well-formed
// empty result instead of failing.
func newProcessor(t accessplot.ChartType) Processor {
	switch t {
	case accessplot.TypeBar:
		return &barProcessor{}
	case accessplot.TypeDodgedBar:
		return &groupedBarProcessor{typ: accessplot.TypeDodgedBar}
	case accessplot.TypeStackedBar:
		return &groupedBarProcessor{typ: accessplot.TypeStackedBar}
	case accessplot.TypePoint:
		return &pointProcessor{}
	case accessplot.TypeLine:
		return &lineProcessor{}
	case accessplot.TypeHist:
		return &histProcessor{}
	case accessplot.TypeBox:
		return &boxProcessor{}
	case accessplot.TypeHeat:
		return &heatProcessor{}
	case accessplot.TypeSmooth:
		return &smoothProcessor{}
	default:
		return &unknownProcessor{}
	}
}
