package ggplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
	"github.com/aclements/go-gg/table"
)

// pointProcessor extracts scatter layers: one point per observation in
// original row order.
type pointProcessor struct{}

func (p *pointProcessor) Type() accessplot.ChartType { return accessplot.TypePoint }

func (p *pointProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypePoint,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	xs := colValues(t, ctx.Layer.aes("x"))
	ys := colValues(t, ctx.Layer.aes("y"))
	if len(xs) == 0 || len(ys) == 0 {
		return res, nil
	}
	n := min(len(xs), len(ys))

	colors := pointColors(ctx.Layer, t, n)
	container := ctx.findGeom("geom_point")
	for i := 0; i < n; i++ {
		pt := accessplot.Point{X: xs[i], Y: ys[i]}
		// A color vector shorter than the data colors only its prefix;
		// the remaining points omit the field entirely.
		if i < len(colors) {
			pt.Color = colors[i]
		}
		b := accessplot.Binding{Point: pt}
		if container != "" {
			b.Selector = grob.ChildSelector(container, "circle", i+1)
		}
		res.Points = append(res.Points, b)
	}
	return res, nil
}

// pointColors resolves the per-point color vector of a layer: a mapped
// color aesthetic column, a literal vector parameter, or a single
// literal applied to every point. Absent color yields nil.
func pointColors(l *Layer, t *table.Table, n int) []string {
	if col := l.aes("colour"); col != "" {
		return colStrings(t, col)
	}
	v, ok := l.param("colour")
	if !ok {
		return nil
	}
	switch c := v.(type) {
	case string:
		out := make([]string, n)
		for i := range out {
			out[i] = c
		}
		return out
	case []string:
		return c
	case []any:
		out := make([]string, 0, len(c))
		for _, e := range c {
			out = append(out, scale.Stringify(e))
		}
		return out
	}
	return nil
}
