package baseplot

import (
	"fmt"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/record"
)

// orchestrator drives the imperative layer processors. It partitions
// the surface's recorded calls into plot groups once at construction.
// Without an active layout only the most recent group renders; with a
// layout every group becomes one panel subplot.
type orchestrator struct {
	sys     *System
	grouped record.Grouped
	panels  record.PanelConfig
	layout  bool
}

func newOrchestrator(s *System) (*orchestrator, error) {
	grouped := s.store.GroupCalls(s.surface)
	if grouped.TotalGroups() == 0 {
		return nil, fmt.Errorf("baseplot: surface %q: %w", s.surface, record.ErrNoPlots)
	}
	panels, layout := s.store.DetectPanelConfig(s.surface)
	return &orchestrator{sys: s, grouped: grouped, panels: panels, layout: layout}, nil
}

// activeGroups returns the plot groups that render: every group under
// an active layout, otherwise just the most recent one.
func (o *orchestrator) activeGroups() []record.PlotGroup {
	if o.layout {
		return o.grouped.Groups
	}
	return o.grouped.Groups[len(o.grouped.Groups)-1:]
}

// firstPlotNumber returns the 1-based plot number of the first active
// group, matching the device's plot counter.
func (o *orchestrator) firstPlotNumber() int {
	if o.layout {
		return 1
	}
	return o.grouped.TotalGroups()
}

// Faceted reports whether an active layout partitions the surface into
// panel subplots.
func (o *orchestrator) Faceted() bool { return o.layout }

// Composite reports false: the imperative paradigm has no composed
// plot object, only recorded surfaces.
func (o *orchestrator) Composite() bool { return false }

// Layers enumerates the detected layer descriptors of every active
// group: the high-level call is layer 0, its annotations follow in
// recorded order. Index restarts per group; GroupIndex is the group's
// 0-based ordinal among all recorded groups.
func (o *orchestrator) Layers() []accessplot.LayerDescriptor {
	var out []accessplot.LayerDescriptor
	first := o.firstPlotNumber()
	for gi, g := range o.activeGroups() {
		gnum := first + gi - 1
		out = append(out, accessplot.LayerDescriptor{
			Index:      0,
			Type:       o.sys.DetectLayerType(g.High),
			Name:       g.High.Name,
			GroupIndex: gnum,
			Raw:        g.High,
		})
		for li, c := range g.Low {
			out = append(out, accessplot.LayerDescriptor{
				Index:      li + 1,
				Type:       o.sys.DetectLayerType(c),
				Name:       c.Name,
				GroupIndex: gnum,
				Raw:        c,
			})
		}
	}
	return out
}

// Document runs every layer processor and assembles the accessible
// document: one subplot per active plot group. A processor failure or
// panic degrades that layer to an empty result.
func (o *orchestrator) Document() (*accessplot.Document, error) {
	doc := &accessplot.Document{ID: accessplot.NewDocumentID()}
	first := o.firstPlotNumber()
	for gi, g := range o.activeGroups() {
		plot := first + gi
		head := &Context{Group: g, Call: g.High, Plot: plot}
		sp := accessplot.Subplot{
			ID:    fmt.Sprintf("subplot-%d", len(doc.Subplots)+1),
			Title: head.title(),
			Axes:  head.axes(),
		}

		calls := append([]record.Call{g.High}, g.Low...)
		for i, c := range calls {
			t := o.sys.DetectLayerType(c)
			if t == accessplot.TypeSkip {
				continue
			}
			ctx := &Context{Group: g, Call: c, Plot: plot, Index: i}
			sp.Layers = append(sp.Layers, o.processLayer(t, ctx))
		}
		doc.Subplots = append(doc.Subplots, sp)
	}
	return doc, nil
}

// processLayer runs one processor, degrading any error or panic to an
// empty result so one broken layer never takes down the document.
func (o *orchestrator) processLayer(t accessplot.ChartType, ctx *Context) (res accessplot.LayerResult) {
	empty := accessplot.LayerResult{Type: t, Title: ctx.title(), Axes: ctx.axes()}
	defer func() {
		if r := recover(); r != nil {
			accessplot.Logger().Warn("baseplot: layer processor panicked",
				"type", t, "call", ctx.Call.Name, "panic", r)
			res = empty
		}
	}()
	res, err := newProcessor(t).Process(ctx)
	if err != nil {
		accessplot.Logger().Warn("baseplot: layer processor failed",
			"type", t, "call", ctx.Call.Name, "err", err)
		return empty
	}
	return res
}
