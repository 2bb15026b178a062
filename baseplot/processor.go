package baseplot

import (
	"fmt"
	"strings"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/record"
)

// rangePad is the fraction of the host data range added on each side
// when synthesizing reference line endpoints.
const rangePad = 0.05

// Context carries everything one processor invocation needs: the plot
// group the layer belongs to, the recorded call under extraction, the
// chart's 1-based plot number (anchor of the renderer's grob naming),
// and the layer's position within the chart.
type Context struct {
	Group record.PlotGroup
	Call  record.Call
	Plot  int
	Index int
}

// container constructs the grob id of this chart's element group of the
// given kind, e.g. "graphics-plot-1-rect-1".
func (c *Context) container(kind string) string {
	return fmt.Sprintf("graphics-plot-%d-%s-1", c.Plot, kind)
}

// title resolves the chart title: the high-level call's main argument,
// else the first title annotation in the group.
func (c *Context) title() string {
	if t := c.Group.High.Args.String("main"); t != "" {
		return t
	}
	for _, lc := range c.Group.Low {
		if strings.TrimSuffix(lc.Name, ".default") != "title" {
			continue
		}
		if t := lc.Args.String("main"); t != "" {
			return t
		}
	}
	return ""
}

// axes resolves the chart's axis labels from the high-level call.
func (c *Context) axes() accessplot.Axes {
	return accessplot.Axes{
		X: c.Group.High.Args.String("xlab"),
		Y: c.Group.High.Args.String("ylab"),
	}
}

// hostRange computes the padded data range of the chart along one axis
// from its high-level call. Categorical hosts without an explicit
// vector fall back to the 1..n category positions.
func (c *Context) hostRange(axis string) (lo, hi float64, ok bool) {
	vals := c.Group.High.Args.Floats(axis)
	if len(vals) == 0 && axis == "x" {
		if n := len(c.Group.High.Args.Floats("height")); n > 0 {
			vals = make([]float64, n)
			for i := range vals {
				vals[i] = float64(i + 1)
			}
		}
	}
	lo, hi, ok = floatRange(vals)
	if !ok {
		return 0, 0, false
	}
	pad := rangePad * (hi - lo)
	return lo - pad, hi + pad, true
}

// floatRange returns the min and max of xs.
func floatRange(xs []float64) (lo, hi float64, ok bool) {
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}

// Processor extracts one chart type from a recorded call. Extraction
// tolerates missing arguments by returning empty data; only genuinely
// unexpected shapes return an error, which the orchestrator degrades to
// an empty result.
type Processor interface {
	Type() accessplot.ChartType
	Process(ctx *Context) (accessplot.LayerResult, error)
}

// newProcessor is the closed type-to-processor factory for the
// imperative paradigm.
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
