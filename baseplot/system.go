// Package baseplot adapts the imperative plotting paradigm to the
// accessible document model. It consumes the call log a record.Store
// accumulated for one rendering surface: recorded high-level calls
// become chart layers, their trailing low-level annotations become
// further layers, and layout calls partition the surface into panel
// subplots. Selectors are constructed against the renderer's
// per-chart grob naming ("graphics-plot-N-…") rather than searched,
// since the imperative renderer's ids are positional by convention.
package baseplot

import (
	"fmt"
	"strings"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/record"
)

// System is the imperative-paradigm adapter. Unlike the declarative
// adapter it ignores the plot object: the recorded state of its surface
// is the plot.
type System struct {
	store   *record.Store
	surface string
}

// NewSystem returns an adapter reading the given store and surface.
// A nil store falls back to the process-wide default store.
func NewSystem(store *record.Store, surface string) *System {
	if store == nil {
		store = record.Default()
	}
	return &System{store: store, surface: surface}
}

// Name identifies the system.
func (s *System) Name() string { return "baseplot" }

// Surface returns the surface id the adapter reads.
func (s *System) Surface() string { return s.surface }

// CanHandle reports whether the surface holds any recorded calls. The
// plot object is ignored.
func (s *System) CanHandle(plot any) bool {
	return s.store.HasCalls(s.surface)
}

// NewOrchestrator builds the orchestrator over the surface's recorded
// call groups.
func (s *System) NewOrchestrator(plot any) (accessplot.Orchestrator, error) {
	if !s.CanHandle(plot) {
		return nil, fmt.Errorf("baseplot: surface %q: %w", s.surface, record.ErrNoPlots)
	}
	return newOrchestrator(s)
}

// DetectLayerType classifies a recorded call. Bar charts discriminate
// simple, dodged, and stacked variants by the shape of the height
// argument and the beside flag; plot calls split into point and line
// charts on the type argument.
func (s *System) DetectLayerType(c record.Call) accessplot.ChartType {
	switch strings.TrimSuffix(c.Name, ".default") {
	case "barplot":
		// A matrix height of any row count is the grouped case; only a
		// plain vector draws simple bars.
		if m := c.Args.Matrix("height"); len(m) > 0 {
			if c.Args.Bool("beside") {
				return accessplot.TypeDodgedBar
			}
			return accessplot.TypeStackedBar
		}
		return accessplot.TypeBar
	case "hist":
		return accessplot.TypeHist
	case "boxplot":
		return accessplot.TypeBox
	case "image", "heatmap":
		return accessplot.TypeHeat
	case "smooth", "density":
		return accessplot.TypeSmooth
	case "plot":
		if c.Args.String("type") == "l" {
			return accessplot.TypeLine
		}
		return accessplot.TypePoint
	case "matplot", "curve", "lines", "abline", "segments":
		return accessplot.TypeLine
	case "points":
		return accessplot.TypePoint
	case "text", "mtext", "title", "axis", "legend", "rug", "grid":
		return accessplot.TypeSkip
	}
	return accessplot.TypeUnknown
}
