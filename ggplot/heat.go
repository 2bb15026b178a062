package ggplot

import (
	"sort"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
)

// heatProcessor extracts tile/raster layers into matrix-shaped data.
// Rows are emitted in reverse of the underlying matrix's natural row
// order (row 1 last): the matrix's first row sits at the bottom of the
// rendered panel, so reversing makes the emitted row index increase
// top-to-bottom in the visual, DOM-traversal sense.
type heatProcessor struct{}

func (p *heatProcessor) Type() accessplot.ChartType { return accessplot.TypeHeat }

func (p *heatProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeHeat,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	xs := colValues(t, ctx.Layer.aes("x"))
	ys := colValues(t, ctx.Layer.aes("y"))
	fills := colFloats(t, aesOr(ctx.Layer, "fill", "fill"))
	if len(xs) == 0 || len(ys) == 0 || len(fills) == 0 {
		return res, nil
	}
	n := min(len(xs), min(len(ys), len(fills)))

	xPos := positionOrder(xs[:n])
	yPos := positionOrder(ys[:n])

	cell := make(map[[2]string]float64, n)
	for i := 0; i < n; i++ {
		cell[[2]string{scale.Stringify(ys[i]), scale.Stringify(xs[i])}] = fills[i]
	}

	heat := &accessplot.HeatData{FillLabel: ctx.Built.FillLabel}
	for _, xp := range xPos {
		heat.X = append(heat.X, ctx.xLabel(xp.value))
	}
	// Natural row order is ascending y position; emit reversed.
	for r := len(yPos) - 1; r >= 0; r-- {
		yp := yPos[r]
		label := yp.key
		if l, ok := ctx.YMap.Lookup(yp.value); ok {
			label = l
		}
		heat.Y = append(heat.Y, label)
		row := make([]float64, len(xPos))
		for c, xp := range xPos {
			row[c] = cell[[2]string{yp.key, xp.key}]
		}
		heat.Rows = append(heat.Rows, row)
	}

	if container := ctx.findGeom("geom_tile"); container != "" {
		heat.Selector = grob.CSSSelector(container, "g", len(xPos)*len(yPos))
	}
	res.Heat = heat
	res.DOMMapping = &accessplot.DOMMapping{Order: "row"}
	return res, nil
}

// position is one distinct axis position of a matrix layer.
type position struct {
	key   string
	value any
	num   float64
	isNum bool
}

// positionOrder returns the distinct positions of an axis column in
// natural order: ascending numerically when positions are numeric,
// ascending by label otherwise.
func positionOrder(vals []any) []position {
	seen := map[string]bool{}
	var out []position
	for _, v := range vals {
		key := scale.Stringify(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		f, ok := asFloat(v)
		out = append(out, position{key: key, value: v, num: f, isNum: ok})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].isNum && out[j].isNum {
			return out[i].num < out[j].num
		}
		return scale.CompareLabels(out[i].key, out[j].key) < 0
	})
	return out
}
