package ggplot

import (
	"sort"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
)

// barProcessor extracts simple bar layers: one point per category.
type barProcessor struct{}

func (p *barProcessor) Type() accessplot.ChartType { return accessplot.TypeBar }

// NeedsReordering reports that bar rows are re-sorted by category
// label before assignment, making DOM and keyboard order independent
// of input order.
func (p *barProcessor) NeedsReordering() bool { return true }

func (p *barProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeBar,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	xs := colValues(t, ctx.Layer.aes("x"))
	ys := colFloats(t, yColumn(ctx.Layer))
	if len(xs) == 0 || len(ys) == 0 {
		return res, nil
	}

	n := min(len(xs), len(ys))
	type row struct {
		label string
		value float64
	}
	rows := make([]row, n)
	for i := 0; i < n; i++ {
		rows[i] = row{label: ctx.xLabel(xs[i]), value: ys[i]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return scale.CompareLabels(rows[i].label, rows[j].label) < 0
	})

	container := ctx.findGeom("geom_rect")
	for i, r := range rows {
		b := accessplot.Binding{Point: accessplot.Point{X: r.label, Y: r.value}}
		if container != "" {
			b.Selector = grob.ChildSelector(container, "rect", i+1)
		}
		res.Points = append(res.Points, b)
	}
	return res, nil
}

// yColumn resolves the value column of a bar-family layer: the y
// aesthetic, falling back to the stat-count column.
func yColumn(l *Layer) string {
	if col := l.aes("y"); col != "" {
		return col
	}
	return "count"
}

// groupedBarProcessor extracts dodged and stacked bar layers: a
// two-key structure with the series as outer key and the category as
// inner key, both sorted ascending.
type groupedBarProcessor struct {
	typ accessplot.ChartType
}

func (p *groupedBarProcessor) Type() accessplot.ChartType { return p.typ }

func (p *groupedBarProcessor) NeedsReordering() bool { return true }

func (p *groupedBarProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  p.typ,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	groupCol := ctx.Layer.aes("fill")
	if groupCol == "" {
		groupCol = ctx.Layer.aes("group")
	}
	xs := colValues(t, ctx.Layer.aes("x"))
	ys := colFloats(t, yColumn(ctx.Layer))
	series := colStrings(t, groupCol)
	if len(xs) == 0 || len(ys) == 0 || len(series) == 0 {
		return res, nil
	}

	// Values stay attached to their (series, category) pair while both
	// key sets are re-sorted.
	cells := make(map[string]map[string]float64)
	n := min(len(xs), min(len(ys), len(series)))
	for i := 0; i < n; i++ {
		cat := ctx.xLabel(xs[i])
		if cells[series[i]] == nil {
			cells[series[i]] = make(map[string]float64)
		}
		cells[series[i]][cat] = ys[i]
	}

	seriesNames := scale.SortedKeys(cells)
	catSet := make(map[string]bool)
	for _, row := range cells {
		for cat := range row {
			catSet[cat] = true
		}
	}
	cats := scale.SortedKeys(catSet)

	container := ctx.findGeom("geom_rect")
	for i, name := range seriesNames {
		s := accessplot.Series{Name: name}
		if container != "" {
			s.Selector = grob.ChildSelector(container, "g", i+1)
		}
		for _, cat := range cats {
			s.Points = append(s.Points, accessplot.Point{X: cat, Y: cells[name][cat], Fill: name})
		}
		res.Series = append(res.Series, s)
	}
	return res, nil
}
