package ggplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
)

// boxProcessor extracts boxplot layers: one five-number summary per
// category plus its outliers split around the whiskers.
type boxProcessor struct{}

func (p *boxProcessor) Type() accessplot.ChartType { return accessplot.TypeBox }

func (p *boxProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeBox,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	xs := colValues(t, ctx.Layer.aes("x"))
	mins := colFloats(t, aesOr(ctx.Layer, "ymin", "ymin"))
	lowers := colFloats(t, aesOr(ctx.Layer, "lower", "lower"))
	mids := colFloats(t, aesOr(ctx.Layer, "middle", "middle"))
	uppers := colFloats(t, aesOr(ctx.Layer, "upper", "upper"))
	maxs := colFloats(t, aesOr(ctx.Layer, "ymax", "ymax"))
	if len(mins) == 0 || len(lowers) == 0 || len(mids) == 0 || len(uppers) == 0 || len(maxs) == 0 {
		return res, nil
	}

	outliers := colValues(t, aesOr(ctx.Layer, "outliers", "outliers"))

	n := len(mids)
	for _, s := range [][]float64{mins, lowers, uppers, maxs} {
		if len(s) < n {
			n = len(s)
		}
	}

	container := ctx.findGeom("geom_boxplot")
	for i := 0; i < n; i++ {
		stats := accessplot.BoxStats{
			Label:         "",
			LowerOutliers: []float64{},
			Min:           mins[i],
			Q1:            lowers[i],
			Q2:            mids[i],
			Q3:            uppers[i],
			Max:           maxs[i],
			UpperOutliers: []float64{},
		}
		if i < len(xs) {
			stats.Label = ctx.xLabel(xs[i])
		}
		if i < len(outliers) {
			for _, o := range anyFloats(outliers[i]) {
				if o < stats.Min {
					stats.LowerOutliers = append(stats.LowerOutliers, o)
				} else if o > stats.Max {
					stats.UpperOutliers = append(stats.UpperOutliers, o)
				}
			}
		}
		b := accessplot.BoxBinding{Stats: stats}
		if container != "" {
			b.Selector = grob.ChildSelector(container, "g", i+1)
		}
		res.Boxes = append(res.Boxes, b)
	}
	return res, nil
}

// anyFloats coerces one outlier cell ([]float64 or []any) to floats.
func anyFloats(v any) []float64 {
	switch x := v.(type) {
	case []float64:
		return x
	case []any:
		out := make([]float64, 0, len(x))
		for _, e := range x {
			if f, ok := asFloat(e); ok {
				out = append(out, f)
			}
		}
		return out
	}
	return nil
}
