package baseplot

import (
	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/aclements/go-moremath/stats"
)

// boxProcessor summarizes boxplot calls: one five-number summary per
// group with whiskers at the Tukey 1.5 IQR fences and outliers split
// around them. A matrix argument yields one group per row; a plain
// vector is one group.
type boxProcessor struct{}

func (p *boxProcessor) Type() accessplot.ChartType { return accessplot.TypeBox }

func (p *boxProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeBox,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	groups := ctx.Call.Args.Matrix("x")
	if groups == nil {
		if xs := ctx.Call.Args.Floats("x"); len(xs) > 0 {
			groups = [][]float64{xs}
		}
	}
	if len(groups) == 0 {
		return res, nil
	}
	labels := categoryLabels(ctx.Call.Args.Strings("names"), len(groups))

	container := ctx.container("box")
	for i, xs := range groups {
		if len(xs) == 0 {
			continue
		}
		res.Boxes = append(res.Boxes, accessplot.BoxBinding{
			Stats:    summarize(labels[i], xs),
			Selector: grob.ChildSelector(container, "g", i+1),
		})
	}
	return res, nil
}

// summarize computes the five-number summary of one group. The
// whiskers reach the most extreme data points within 1.5 IQR of the
// quartiles; everything beyond them is an outlier.
func summarize(label string, xs []float64) accessplot.BoxStats {
	sample := stats.Sample{Xs: append([]float64(nil), xs...)}
	q1 := sample.Quantile(0.25)
	q2 := sample.Quantile(0.5)
	q3 := sample.Quantile(0.75)
	iqr := q3 - q1
	loFence, hiFence := q1-1.5*iqr, q3+1.5*iqr

	s := accessplot.BoxStats{
		Label:         label,
		LowerOutliers: []float64{},
		Q1:            q1,
		Q2:            q2,
		Q3:            q3,
		UpperOutliers: []float64{},
	}
	s.Min, s.Max = q1, q3
	first := true
	for _, x := range xs {
		if x < loFence {
			s.LowerOutliers = append(s.LowerOutliers, x)
			continue
		}
		if x > hiFence {
			s.UpperOutliers = append(s.UpperOutliers, x)
			continue
		}
		if first || x < s.Min {
			s.Min = x
		}
		if first || x > s.Max {
			s.Max = x
		}
		first = false
	}
	return s
}
