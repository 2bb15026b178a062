package baseplot

import (
	"github.com/accessplot/accessplot"
)

// unknownProcessor is the fallback for unclassifiable calls: empty data
// and selectors, salvaging whatever title and axis labels the group
// offers.
type unknownProcessor struct{}

func (p *unknownProcessor) Type() accessplot.ChartType { return accessplot.TypeUnknown }

func (p *unknownProcessor) Process(ctx *Context) (accessplot.LayerResult, error) {
	res := accessplot.LayerResult{Type: accessplot.TypeUnknown}
	if ctx != nil {
		res.Title = ctx.title()
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
