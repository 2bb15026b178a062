package ggplot

import (
	"fmt"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
	"github.com/aclements/go-moremath/vec"
)

// rangePad is the fraction of the host data range added on each side
// when synthesizing reference line endpoints.
const rangePad = 0.05

// lineProcessor extracts line-family layers: single lines, grouped
// multilines, and reference lines (hline/vline/abline).
type lineProcessor struct{}

func (p *lineProcessor) Type() accessplot.ChartType { return accessplot.TypeLine }

func (p *lineProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{
		Type:  accessplot.TypeLine,
		Title: ctx.Built.Title,
		Axes:  ctx.axes(),
	}

	switch ctx.Layer.Geom {
	case "hline", "vline", "abline":
		return p.processReference(ctx, res)
	}

	t := ctx.Layer.facetTable(ctx.Facet)
	xs := colValues(t, ctx.Layer.aes("x"))
	ys := colValues(t, ctx.Layer.aes("y"))
	if len(xs) == 0 || len(ys) == 0 {
		return res, nil
	}
	n := min(len(xs), len(ys))

	groups := colStrings(t, ctx.Layer.aes("group"))
	if groups == nil {
		groups = colStrings(t, ctx.Layer.aes("fill"))
	}

	// The grob stem follows the layer geometry: geom_line, geom_path,
	// geom_step.
	container := ctx.findGeom("geom_" + ctx.Layer.Geom)
	if singleLineGroups(groups, n) {
		s := accessplot.Series{Selector: lineSelector(container, 1)}
		for i := 0; i < n; i++ {
			s.Points = append(s.Points, accessplot.Point{X: scale.Stringify(xs[i]), Y: ys[i]})
		}
		res.Series = []accessplot.Series{s}
		return res, nil
	}

	// Multiline: one ordered series per group value, in order of first
	// appearance, each point tagged with its series name.
	order := []string{}
	byGroup := map[string]*accessplot.Series{}
	for i := 0; i < n; i++ {
		name := groups[i]
		if name == "" {
			name = fmt.Sprintf("Series %d", len(order)+1)
		}
		s, ok := byGroup[name]
		if !ok {
			s = &accessplot.Series{Name: name}
			byGroup[name] = s
			order = append(order, name)
		}
		s.Points = append(s.Points, accessplot.Point{X: scale.Stringify(xs[i]), Y: ys[i], Fill: name})
	}
	for i, name := range order {
		s := byGroup[name]
		s.Selector = lineSelector(container, i+1)
		res.Series = append(res.Series, *s)
	}
	return res, nil
}

// singleLineGroups reports whether the grouping collapses to the
// single-line form: no grouping column, a constant group, or the
// engine's ungrouped marker. One distinct real group still renders as
// a single unnamed line rather than a one-series multiline.
func singleLineGroups(groups []string, n int) bool {
	if len(groups) == 0 {
		return true
	}
	first := groups[0]
	for i := 1; i < n && i < len(groups); i++ {
		if groups[i] != first {
			return false
		}
	}
	return true
}

// lineSelector addresses the nth polyline of a line container.
func lineSelector(container string, n int) string {
	if container == "" {
		return ""
	}
	return grob.ChildSelector(container, "polyline", n)
}

// processReference synthesizes the two endpoints of a reference line
// spanning the host plot's data range with rangePad padding per side.
func (p *lineProcessor) processReference(ctx *Context, res accessplot.LayerResult) (accessplot.LayerResult, error) {
	container := ctx.findGeom("geom_" + ctx.Layer.Geom)
	sel := lineSelector(container, 1)

	endpoints := func(a, b accessplot.Point) {
		res.Series = []accessplot.Series{{Points: []accessplot.Point{a, b}, Selector: sel}}
	}

	switch ctx.Layer.Geom {
	case "hline":
		y, ok := paramFloat(ctx.Layer, "yintercept")
		if !ok {
			return res, nil
		}
		lo, hi, ok := hostRange(ctx, "x")
		if !ok {
			return res, nil
		}
		span := vec.Linspace(lo, hi, 2)
		endpoints(
			accessplot.Point{X: span[0], Y: y},
			accessplot.Point{X: span[1], Y: y},
		)
	case "vline":
		x, ok := paramFloat(ctx.Layer, "xintercept")
		if !ok {
			return res, nil
		}
		lo, hi, ok := hostRange(ctx, "y")
		if !ok {
			return res, nil
		}
		span := vec.Linspace(lo, hi, 2)
		endpoints(
			accessplot.Point{X: x, Y: span[0]},
			accessplot.Point{X: x, Y: span[1]},
		)
	case "abline":
		a, aok := paramFloat(ctx.Layer, "intercept")
		b, bok := paramFloat(ctx.Layer, "slope")
		if !aok && !bok {
			return res, nil
		}
		lo, hi, ok := hostRange(ctx, "x")
		if !ok {
			return res, nil
		}
		span := vec.Linspace(lo, hi, 2)
		endpoints(
			accessplot.Point{X: span[0], Y: a + b*span[0]},
			accessplot.Point{X: span[1], Y: a + b*span[1]},
		)
	}
	return res, nil
}

// paramFloat reads a numeric fixed parameter.
func paramFloat(l *Layer, name string) (float64, bool) {
	v, ok := l.param(name)
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

// hostRange computes the padded data range of the host plot along one
// axis, scanning the first data-carrying layer that binds it.
func hostRange(ctx *Context, aesName string) (lo, hi float64, ok bool) {
	for _, l := range ctx.Built.Layers {
		col := l.aes(aesName)
		if col == "" {
			continue
		}
		vals := colFloats(l.facetTable(ctx.Facet), col)
		if len(vals) == 0 {
			continue
		}
		lo, hi, ok = floatRange(vals)
		if !ok {
			continue
		}
		pad := rangePad * (hi - lo)
		return lo - pad, hi + pad, true
	}
	return 0, 0, false
}
