package baseplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
)

// pointProcessor extracts scatter calls (plot type "p", points): one
// point per observation in original order.
type pointProcessor struct{}

func (p *pointProcessor) Type() accessplot.ChartType { return accessplot.TypePoint }

func (p *pointProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypePoint,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	xs := ctx.Call.Args.Floats("x")
	ys := ctx.Call.Args.Floats("y")
	if len(xs) == 0 || len(ys) == 0 {
		return res, nil
	}
	n := min(len(xs), len(ys))

	colors := ctx.Call.Args.Strings("col")
	container := ctx.container("points")
	for i := 0; i < n; i++ {
		pt := accessplot.Point{X: xs[i], Y: ys[i]}
		// A color vector shorter than the data colors only its prefix;
		// the remaining points omit the field entirely.
		if i < len(colors) {
			pt.Color = colors[i]
		}
		res.Points = append(res.Points, accessplot.Binding{
			Point:    pt,
			Selector: grob.ChildSelector(container, "circle", i+1),
		})
	}
	return res, nil
}
