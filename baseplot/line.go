package baseplot

import (
	"strconv"
	"strings"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
	"github.com/aclements/go-moremath/vec"
)

// lineProcessor extracts line-family calls: single lines (plot type
// "l", lines, curve), multi-series matplot lines, and abline reference
// lines.
type lineProcessor struct{}

func (p *lineProcessor) Type() accessplot.ChartType { return accessplot.TypeLine }

func (p *lineProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeLine,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	switch strings.TrimSuffix(ctx.Call.Name, ".default") {
	case "abline":
		return p.processReference(ctx, res)
	case "matplot":
		return p.processMatplot(ctx, res)
	}

	xs := ctx.Call.Args.Floats("x")
	ys := ctx.Call.Args.Floats("y")
	if len(ys) == 0 {
		return res, nil
	}
	if len(xs) == 0 {
		xs = indexPositions(len(ys))
	}
	n := min(len(xs), len(ys))

	s := accessplot.Series{Selector: grob.ChildSelector(ctx.container("lines"), "polyline", 1)}
	for i := 0; i < n; i++ {
		s.Points = append(s.Points, accessplot.Point{X: scale.Stringify(xs[i]), Y: ys[i]})
	}
	res.Series = []accessplot.Series{s}
	return res, nil
}

// processMatplot extracts one series per column of the y matrix, each
// tagged "Col N" unless a legend argument names it.
func (p *lineProcessor) processMatplot(ctx *Context, res accessplot.LayerResult) (accessplot.LayerResult, error) {
	m := ctx.Call.Args.Matrix("y")
	if len(m) == 0 || len(m[0]) == 0 {
		return res, nil
	}
	xs := ctx.Call.Args.Floats("x")
	if len(xs) == 0 {
		xs = indexPositions(len(m))
	}
	legend := ctx.Call.Args.Strings("legend")

	container := ctx.container("lines")
	for col := 0; col < len(m[0]); col++ {
		name := "Col " + strconv.Itoa(col+1)
		if col < len(legend) && legend[col] != "" {
			name = legend[col]
		}
		s := accessplot.Series{
			Name:     name,
			Selector: grob.ChildSelector(container, "polyline", col+1),
		}
		for row := 0; row < len(m) && row < len(xs); row++ {
			if col < len(m[row]) {
				s.Points = append(s.Points, accessplot.Point{
					X:    scale.Stringify(xs[row]),
					Y:    m[row][col],
					Fill: name,
				})
			}
		}
		res.Series = append(res.Series, s)
	}
	return res, nil
}

// processReference synthesizes the two endpoints of an abline reference
// spanning the host chart's padded data range: h for a horizontal
// intercept, v for a vertical one, a/b for intercept and slope.
func (p *lineProcessor) processReference(ctx *Context, res accessplot.LayerResult) (accessplot.LayerResult, error) {
	sel := grob.ChildSelector(ctx.container("abline"), "polyline", 1)
	endpoints := func(a, b accessplot.Point) {
		res.Series = []accessplot.Series{{Points: []accessplot.Point{a, b}, Selector: sel}}
	}

	if h, ok := ctx.Call.Args.Float("h"); ok {
		lo, hi, ok := ctx.hostRange("x")
		if !ok {
			return res, nil
		}
		span := vec.Linspace(lo, hi, 2)
		endpoints(
			accessplot.Point{X: span[0], Y: h},
			accessplot.Point{X: span[1], Y: h},
		)
		return res, nil
	}
	if v, ok := ctx.Call.Args.Float("v"); ok {
		lo, hi, ok := ctx.hostRange("y")
		if !ok {
			return res, nil
		}
		span := vec.Linspace(lo, hi, 2)
		endpoints(
			accessplot.Point{X: v, Y: span[0]},
			accessplot.Point{X: v, Y: span[1]},
		)
		return res, nil
	}
	a, aok := ctx.Call.Args.Float("a")
	b, bok := ctx.Call.Args.Float("b")
	if !aok && !bok {
		return res, nil
	}
	lo, hi, ok := ctx.hostRange("x")
	if !ok {
		return res, nil
	}
	span := vec.Linspace(lo, hi, 2)
	endpoints(
		accessplot.Point{X: span[0], Y: a + b*span[0]},
		accessplot.Point{X: span[1], Y: a + b*span[1]},
	)
	return res, nil
}

// indexPositions returns the default 1..n x positions.
func indexPositions(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}
