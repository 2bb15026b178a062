package ggplot

import (
	"github.com/accessplot/accessplot"
)

// smoothProcessor extracts smooth/density layers. Several underlying
// representations are accepted and normalized to one ordered point
// sequence: the layer's built x/y columns, a fitted Curve object, or a
// plain XY pair carried as a parameter. Unrecognized representations
// yield an empty sequence.
type smoothProcessor struct{}

func (p *smoothProcessor) Type() accessplot.ChartType { return accessplot.TypeSmooth }

func (p *smoothProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeSmooth,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	xs, ys := smoothXY(ctx)
	if len(xs) == 0 || len(ys) == 0 {
		return res, nil
	}
	n := min(len(xs), len(ys))

	s := accessplot.Series{}
	if container := ctx.findGeom("geom_smooth"); container != "" {
		s.Selector = lineSelector(container, 1)
	}
	for i := 0; i < n; i++ {
		s.Points = append(s.Points, accessplot.Point{X: xs[i], Y: ys[i]})
	}
	res.Series = []accessplot.Series{s}
	return res, nil
}

// smoothXY normalizes the layer's representation to two vectors.
func smoothXY(ctx *Context) ([]float64, []float64) {
	t := ctx.Layer.facetTable(ctx.Facet)
	xs := colFloats(t, ctx.Layer.aes("x"))
	ys := colFloats(t, ctx.Layer.aes("y"))
	if len(xs) > 0 && len(ys) > 0 {
		return xs, ys
	}

	if v, ok := ctx.Layer.param("curve"); ok {
		if c, ok := v.(Curve); ok {
			return c.Sample()
		}
	}
	if v, ok := ctx.Layer.param("xy"); ok {
		switch xy := v.(type) {
		case XY:
			return xy.X, xy.Y
		case *XY:
			if xy != nil {
				return xy.X, xy.Y
			}
		}
	}
	return nil, nil
}
