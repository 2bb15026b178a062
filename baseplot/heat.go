package baseplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
)

// heatProcessor extracts image and heatmap calls. The z matrix's first
// row renders at the bottom of the panel, so rows are emitted in
// reverse of the matrix's natural row order (row 1 last) and the row
// index increases top-to-bottom in the DOM sense.
type heatProcessor struct{}

func (p *heatProcessor) Type() accessplot.ChartType { return accessplot.TypeHeat }

func (p *heatProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeHeat,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	z := ctx.Call.Args.Matrix("z")
	if len(z) == 0 || len(z[0]) == 0 {
		return res, nil
	}
	cols := len(z[0])
	xLabels := categoryLabels(ctx.Call.Args.Strings("xlabels"), cols)
	yNatural := categoryLabels(ctx.Call.Args.Strings("ylabels"), len(z))

	heat := &accessplot.HeatData{
		X:         xLabels,
		FillLabel: ctx.Call.Args.String("zlab"),
		Selector:  grob.CSSSelector(ctx.container("image"), "g", len(z)*cols),
	}
	for r := len(z) - 1; r >= 0; r-- {
		heat.Y = append(heat.Y, yNatural[r])
		heat.Rows = append(heat.Rows, append([]float64(nil), z[r]...))
	}
	res.Heat = heat
	res.DOMMapping = &accessplot.DOMMapping{Order: "row"}
	return res, nil
}
