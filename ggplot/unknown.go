package ggplot

import (
	"github.com/accessplot/accessplot"
)

// unknownProcessor is the fallback for unclassifiable layers. It
// returns empty data and selectors but still produces a well-formed
// layer result, salvaging whatever title and axis labels the context
// offers.
type unknownProcessor struct{}

func (p *unknownProcessor) Type() accessplot.ChartType { return accessplot.TypeUnknown }

func (p *unknownProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{Type: accessplot.TypeUnknown}
	if ctx != nil && ctx.Built != nil {
		res.Title = ctx.Built.Title
		res.Axes = ctx.axes()
	}
	if res.Title == "" {
		res.Title = "Unknown Plot Type"
	}
	if res.Axes.X == "" {
		res.Axes.X = "X"
	}
	if res.Axes.Y == "" {
		res.Axes.Y = "Y"
	}
	return res, nil
}
