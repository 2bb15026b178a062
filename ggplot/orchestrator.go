package ggplot

import (
	"fmt"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
	"github.com/accessplot/accessplot/scale"
)

// orchestrator drives the declarative layer processors. It resolves the
// plot's build step once at construction; Layers and Document then
// operate on the cached built representation.
type orchestrator struct {
	sys       *System
	builds    []*Built
	composite bool
}

func newOrchestrator(s *System, plot any) (*orchestrator, error) {
	var plots []Plot
	composite := false
	switch p := plot.(type) {
	case Composite:
		plots = p.Plots()
		composite = true
	case Plot:
		plots = []Plot{p}
	}
	if len(plots) == 0 {
		return nil, fmt.Errorf("%w: composite has no sub-plots", accessplot.ErrUnsupportedPlot)
	}

	o := &orchestrator{sys: s, composite: composite}
	for i, p := range plots {
		if p == nil {
			return nil, fmt.Errorf("%w: sub-plot %d is nil", accessplot.ErrUnsupportedPlot, i)
		}
		built, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("ggplot: building plot %d: %w", i, err)
		}
		if built == nil {
			return nil, fmt.Errorf("%w: plot %d built to nil", accessplot.ErrUnsupportedPlot, i)
		}
		o.builds = append(o.builds, built)
	}
	return o, nil
}

// Layers enumerates the detected layer descriptors of every sub-plot in
// render order. Index restarts per sub-plot; GroupIndex counts only
// data-carrying layers, matching the renderer's per-chart grob
// numbering.
func (o *orchestrator) Layers() []accessplot.LayerDescriptor {
	var out []accessplot.LayerDescriptor
	for _, built := range o.builds {
		group := 0
		for i, layer := range built.Layers {
			t := o.sys.DetectLayerType(layer, built)
			d := accessplot.LayerDescriptor{
				Index:      i,
				Type:       t,
				Name:       layer.Geom,
				GroupIndex: group,
				Raw:        layer,
			}
			if t != accessplot.TypeSkip {
				group++
			}
			out = append(out, d)
		}
	}
	return out
}

// Faceted reports whether any sub-plot carries facet panels.
func (o *orchestrator) Faceted() bool {
	for _, built := range o.builds {
		if len(built.Facets) > 0 {
			return true
		}
	}
	return false
}

// Composite reports whether the plot object composed independent
// sub-plots.
func (o *orchestrator) Composite() bool { return o.composite }

// Tree returns the rendered tree of a single plot. Composites carry
// one tree per sub-plot, so there is no single answer; Tree then
// returns nil and callers consult each sub-plot's layers instead.
func (o *orchestrator) Tree() grob.Node {
	if o.composite {
		return nil
	}
	return o.builds[0].Tree
}

// Document runs every layer processor and assembles the accessible
// document. Each facet of a faceted plot, and each sub-plot of a
// composite, becomes its own subplot. A processor failure or panic
// degrades that layer to an empty result.
func (o *orchestrator) Document() (*accessplot.Document, error) {
	doc := &accessplot.Document{ID: accessplot.NewDocumentID()}
	for _, built := range o.builds {
		facets := built.Facets
		if len(facets) == 0 {
			facets = []string{""}
		}
		for fi, flabel := range facets {
			sp := accessplot.Subplot{
				ID:    fmt.Sprintf("subplot-%d", len(doc.Subplots)+1),
				Title: built.Title,
				Axes:  accessplot.Axes{X: built.XLabel, Y: built.YLabel, Fill: built.FillLabel},
			}
			if flabel != "" {
				sp.Title = flabel
			}
			for i, layer := range built.Layers {
				t := o.sys.DetectLayerType(layer, built)
				if t == accessplot.TypeSkip {
					continue
				}
				ctx := &Context{
					Built:      built,
					Layer:      layer,
					Desc:       accessplot.LayerDescriptor{Index: i, Type: t, Name: layer.Geom, Raw: layer},
					Tree:       built.Tree,
					Facet:      fi,
					FacetLabel: flabel,
					XMap:       discreteMapping(built.XScale),
					YMap:       discreteMapping(built.YScale),
				}
				sp.Layers = append(sp.Layers, o.processLayer(t, ctx))
			}
			doc.Subplots = append(doc.Subplots, sp)
		}
	}
	return doc, nil
}

// processLayer runs one processor, degrading any error or panic to an
// empty result so one broken layer never takes down the document.
func (o *orchestrator) processLayer(t accessplot.ChartType, ctx *Context) (res accessplot.LayerResult) {
	empty := accessplot.LayerResult{Type: t, Title: ctx.Built.Title, Axes: ctx.axes()}
	defer func() {
		if r := recover(); r != nil {
			accessplot.Logger().Warn("ggplot: layer processor panicked",
				"type", t, "layer", ctx.Desc.Index, "panic", r)
			res = empty
		}
	}()
	res, err := newProcessor(t).Process(ctx)
	if err != nil {
		accessplot.Logger().Warn("ggplot: layer processor failed",
			"type", t, "layer", ctx.Desc.Index, "err", err)
		return empty
	}
	return res
}

// discreteMapping converts a built discrete scale to a lookup mapping;
// nil scales (continuous axes) map to nil, which Lookup treats as a
// universal miss.
func discreteMapping(s *DiscreteScale) *scale.Mapping {
	if s == nil {
		return nil
	}
	return scale.FromBreaks(s.Breaks, s.Labels)
}
