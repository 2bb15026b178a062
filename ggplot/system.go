package ggplot

import (
	"fmt"

	"github.com/accessplot/accessplot"
)

// System is the declarative-paradigm adapter. Register it once:
//
//	accessplot.Register(ggplot.NewSystem())
type System struct{}

// NewSystem returns the ggplot system adapter.
func NewSystem() *System { return &System{} }

// Name identifies the system.
func (s *System) Name() string { return "ggplot" }

// CanHandle reports whether the object is a declarative plot: anything
// implementing Plot or Composite.
func (s *System) CanHandle(plot any) bool {
	switch plot.(type) {
	case Plot, Composite:
		return true
	}
	return false
}

// NewOrchestrator builds the orchestrator, resolving the plot's build
// step up front.
func (s *System) NewOrchestrator(plot any) (accessplot.Orchestrator, error) {
	if !s.CanHandle(plot) {
		return nil, fmt.Errorf("%w: %T is not a declarative plot", accessplot.ErrUnsupportedPlot, plot)
	}
	return newOrchestrator(s, plot)
}

// DetectLayerType classifies a built layer. The policy is ordered;
// the first match wins:
//
//  1. bar-family geometries, discriminated by position adjustment and
//     a grouping aesthetic
//  2. histogram, box, heat, smooth/density
//  3. line-family geometries (incl. reference lines)
//  4. point geometries
//  5. text/label-only layers are skipped
//  6. everything else is unknown
//
// A nil layer classifies as unknown, not an error.
func (s *System) DetectLayerType(layer *Layer, built *Built) accessplot.ChartType {
	if layer == nil {
		return accessplot.TypeUnknown
	}
	switch layer.Geom {
	case "bar", "col":
		if layer.Stat == "bin" {
			return accessplot.TypeHist
		}
		grouped := layer.aes("fill") != "" || layer.aes("group") != ""
		switch {
		case grouped && layer.Position == "dodge":
			return accessplot.TypeDodgedBar
		case grouped && (layer.Position == "stack" || layer.Position == "fill"):
			return accessplot.TypeStackedBar
		default:
			return accessplot.TypeBar
		}
	case "histogram":
		return accessplot.TypeHist
	case "boxplot":
		return accessplot.TypeBox
	case "tile", "raster", "bin2d":
		return accessplot.TypeHeat
	case "smooth", "density", "loess":
		return accessplot.TypeSmooth
	case "line", "path", "step", "hline", "vline", "abline":
		return accessplot.TypeLine
	case "point", "jitter":
		return accessplot.TypePoint
	case "text", "label":
		return accessplot.TypeSkip
	}
	return accessplot.TypeUnknown
}
