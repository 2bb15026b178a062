package baseplot

import (
	"math"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/aclements/go-moremath/vec"
)

// histProcessor bins the recorded value vector of a hist call: one
// point per bin carrying the bin boundaries and its count. The bin
// count follows the Sturges rule unless a breaks argument overrides
// it.
type histProcessor struct{}

func (p *histProcessor) Type() accessplot.ChartType { return accessplot.TypeHist }

func (p *histProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeHist,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	xs := ctx.Call.Args.Floats("x")
	if len(xs) == 0 {
		return res, nil
	}
	lo, hi, _ := floatRange(xs)
	if lo == hi {
		hi = lo + 1
	}

	bins := sturges(len(xs))
	if b, ok := ctx.Call.Args.Float("breaks"); ok && b >= 1 {
		bins = int(b)
	}
	edges := vec.Linspace(lo, hi, bins+1)

	counts := make([]float64, bins)
	for _, x := range xs {
		b := int(float64(bins) * (x - lo) / (hi - lo))
		if b == bins {
			b-- // right edge closes the last bin
		}
		counts[b]++
	}

	container := ctx.container("rect")
	for i := 0; i < bins; i++ {
		binLo, binHi := edges[i], edges[i+1]
		res.Points = append(res.Points, accessplot.Binding{
			Point: accessplot.Point{
				X:    (binLo + binHi) / 2,
				Y:    counts[i],
				XMin: &binLo,
				XMax: &binHi,
			},
			Selector: grob.ChildSelector(container, "rect", i+1),
		})
	}
	return res, nil
}

// sturges returns the Sturges-rule bin count, ceil(log2 n)+1.
func sturges(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}
