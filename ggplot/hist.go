package ggplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
)

// histProcessor extracts histogram layers: one point per bin carrying
// the bin boundaries and its count or density.
type histProcessor struct{}

func (p *histProcessor) Type() accessplot.ChartType { return accessplot.TypeHist }

func (p *histProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeHist,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	mins := colFloats(t, aesOr(ctx.Layer, "xmin", "xmin"))
	maxs := colFloats(t, aesOr(ctx.Layer, "xmax", "xmax"))
	ys := colFloats(t, yColumn(ctx.Layer))
	if len(mins) == 0 || len(maxs) == 0 || len(ys) == 0 {
		return res, nil
	}

	n := min(len(mins), min(len(maxs), len(ys)))
	container := ctx.findGeom("geom_rect")
	for i := 0; i < n; i++ {
		lo, hi := mins[i], maxs[i]
		b := accessplot.Binding{Point: accessplot.Point{
			X:    (lo + hi) / 2,
			Y:    ys[i],
			XMin: &lo,
			XMax: &hi,
		}}
		if container != "" {
			b.Selector = grob.ChildSelector(container, "rect", i+1)
		}
		res.Points = append(res.Points, b)
	}
	return res, nil
}

// aesOr returns the column bound to an aesthetic, defaulting to the
// built data's conventional column name.
func aesOr(l *Layer, aesName, fallback string) string {
	if col := l.aes(aesName); col != "" {
		return col
	}
	return fallback
}
