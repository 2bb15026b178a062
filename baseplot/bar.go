package baseplot

import (
	"sort"
	"strconv"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
)

// barProcessor extracts simple barplot calls: one point per category,
// sorted ascending by label so DOM and keyboard order are independent
// of input order.
type barProcessor struct{}

func (p *barProcessor) Type() accessplot.ChartType { return accessplot.TypeBar }

func (p *barProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeBar,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	heights := ctx.Call.Args.Floats("height")
	if len(heights) == 0 {
		return res, nil
	}
	labels := categoryLabels(ctx.Call.Args.Strings("names"), len(heights))

	type row struct {
		label string
		value float64
	}
	rows := make([]row, len(heights))
	for i, h := range heights {
		rows[i] = row{label: labels[i], value: h}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return scale.CompareLabels(rows[i].label, rows[j].label) < 0
	})

	container := ctx.container("rect")
	for i, r := range rows {
		res.Points = append(res.Points, accessplot.Binding{
			Point:    accessplot.Point{X: r.label, Y: r.value},
			Selector: grob.ChildSelector(container, "rect", i+1),
		})
	}
	return res, nil
}

// groupedBarProcessor extracts dodged and stacked barplot calls. The
// height matrix holds one series per row; both series and category
// keys are sorted ascending with values staying attached to their
// (series, category) pair.
type groupedBarProcessor struct {
	typ accessplot.ChartType
}

func (p *groupedBarProcessor) Type() accessplot.ChartType { return p.typ }

func (p *groupedBarProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  p.typ,
		Title: ctx.title(),
		Axes:  ctx.axes(),
	}

	m := ctx.Call.Args.Matrix("height")
	if len(m) == 0 || len(m[0]) == 0 {
		return res, nil
	}
	seriesLabels := seriesNames(ctx.Call.Args.Strings("legend"), len(m))
	catLabels := categoryLabels(ctx.Call.Args.Strings("names"), len(m[0]))

	cells := make(map[string]map[string]float64, len(m))
	for r, row := range m {
		cells[seriesLabels[r]] = make(map[string]float64, len(row))
		for c, v := range row {
			if c < len(catLabels) {
				cells[seriesLabels[r]][catLabels[c]] = v
			}
		}
	}

	names := scale.SortedKeys(cells)
	catSet := make(map[string]bool)
	for _, row := range cells {
		for cat := range row {
			catSet[cat] = true
		}
	}
	cats := scale.SortedKeys(catSet)

	container := ctx.container("rect")
	for i, name := range names {
		s := accessplot.Series{Name: name, Selector: grob.ChildSelector(container, "g", i+1)}
		for _, cat := range cats {
			s.Points = append(s.Points, accessplot.Point{X: cat, Y: cells[name][cat], Fill: name})
		}
		res.Series = append(res.Series, s)
	}
	return res, nil
}

// categoryLabels pads or truncates the names argument to n entries,
// filling gaps with 1-based position numbers.
func categoryLabels(names []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
		} else {
			out[i] = strconv.Itoa(i + 1)
		}
	}
	return out
}

// seriesNames resolves the legend labels of a grouped chart, falling
// back to "Series N".
func seriesNames(legend []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(legend) && legend[i] != "" {
			out[i] = legend[i]
		} else {
			out[i] = "Series " + strconv.Itoa(i+1)
		}
	}
	return out
}
