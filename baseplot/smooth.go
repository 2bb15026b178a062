package baseplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
)

// smoothProcessor extracts smooth and density calls. The engine
// evaluates the fit; this side only sees the sampled x/y vectors it
// recorded. Calls without both vectors yield an empty sequence.
type smoothProcessor struct{}

func (p *smoothProcessor) Type() accessplot.ChartType { return accessplot.TypeSmooth }

func (p *smoothProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeSmooth,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	xs := ctx.Call.Args.Floats("x")
	ys := ctx.Call.Args.Floats("y")
	if len(xs) == 0 || len(ys) == 0 {
		return res, nil
	}
	n := min(len(xs), len(ys))

	s := accessplot.Series{Selector: grob.ChildSelector(ctx.container("smooth"), "polyline", 1)}
	for i := 0; i < n; i++ {
		s.Points = append(s.Points, accessplot.Point{X: scale.Stringify(xs[i]), Y: ys[i]})
	}
	res.Series = []accessplot.Series{s}
	return res, nil
}
