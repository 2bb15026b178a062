package accessplot

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

// Axes carries the human-readable axis labels of a layer or subplot.
type Axes struct {
	X    string `json:"x"`
	Y    string `json:"y"`
	Fill string `json:"fill,omitempty"`
}

// Point is one accessible data point. X and Y hold the normalized
// values; categorical positions are stringified. Fill names the series
// or group a point belongs to, Color its mapped color. XMin/XMax carry
// bin boundaries for histogram bins. Optional fields are omitted
// entirely (never null) when absent.
type Point struct {
	X     any      `json:"x"`
	Y     any      `json:"y"`
	Fill  string   `json:"fill,omitempty"`
	Color string   `json:"color,omitempty"`
	XMin  *float64 `json:"xmin,omitempty"`
	XMax  *float64 `json:"xmax,omitempty"`
}

// Binding pairs one data point with the CSS selector addressing its
// rendered SVG element. Modeling the visual binding as ordered pairs,
// rather than two separately indexed arrays, keeps data and selectors
// aligned by construction.
type Binding struct {
	Point    Point
	Selector string
}

// Series is an ordered run of points sharing one rendered container
// (a polyline, or one bar group in a dodged/stacked chart). Selector
// addresses the container; Name is the series label and is copied onto
// each point's Fill field for grouped charts.
type Series struct {
	Name     string
	Points   []Point
	Selector string
}

// BoxStats is the five-number summary of one boxplot group plus its
// outliers, split around the whiskers.
type BoxStats struct {
	Label         string    `json:"label"`
	LowerOutliers []float64 `json:"lower_outliers"`
	Min           float64   `json:"min"`
	Q1            float64   `json:"q1"`
	Q2            float64   `json:"q2"`
	Q3            float64   `json:"q3"`
	Max           float64   `json:"max"`
	UpperOutliers []float64 `json:"upper_outliers"`
}

// BoxBinding pairs one box summary with its rendered selector.
type BoxBinding struct {
	Stats    BoxStats
	Selector string
}

// HeatData is matrix-shaped layer data. Rows are emitted bottom-to-top
// relative to the underlying matrix (row 1 last) so the row index
// increases in the visual, top-to-bottom DOM sense. X holds column
// labels, Y row labels in emitted order.
type HeatData struct {
	Rows      [][]float64
	X         []string
	Y         []string
	FillLabel string
	Selector  string
}

// DOMMapping records the DOM traversal convention the selectors of a
// layer follow, e.g. {Order: "row"} for matrix layers.
type DOMMapping struct {
	Order string `json:"order"`
}

// LayerResult is the normalized output of one layer processor. Exactly
// one of the payload fields (Points, Series, Boxes, Heat) is populated
// for data-carrying layers; all are empty for unknown layers. The
// result is immutable once produced.
type LayerResult struct {
	Type       ChartType
	Title      string
	Axes       Axes
	Points     []Binding
	Series     []Series
	Boxes      []BoxBinding
	Heat       *HeatData
	DOMMapping *DOMMapping
}

// DataLen returns the number of top-level data entries: points for
// point-per-element layers, series for grouped layers, boxes for box
// layers, rows for heat layers.
func (r *LayerResult) DataLen() int {
	switch {
	case r.Heat != nil:
		return len(r.Heat.Rows)
	case len(r.Boxes) > 0:
		return len(r.Boxes)
	case len(r.Series) > 0:
		if r.singleSeries() {
			return len(r.Series[0].Points)
		}
		return len(r.Series)
	default:
		return len(r.Points)
	}
}

// Selectors returns the ordered selector list of the layer, one entry
// per point, series, or box (a single entry for heat layers). Empty
// selectors, from layers whose rendered node was never matched, are
// omitted, so an unaddressable layer yields an empty list rather than
// a list of blanks.
func (r *LayerResult) Selectors() []string {
	sel := []string{}
	add := func(s string) {
		if s != "" {
			sel = append(sel, s)
		}
	}
	switch {
	case r.Heat != nil:
		add(r.Heat.Selector)
	case len(r.Boxes) > 0:
		for _, b := range r.Boxes {
			add(b.Selector)
		}
	case len(r.Series) > 0:
		for _, s := range r.Series {
			add(s.Selector)
		}
	default:
		for _, p := range r.Points {
			add(p.Selector)
		}
	}
	return sel
}

// singleSeries reports whether the series payload collapses to the
// single-line form: one unnamed series serializes as a flat point
// sequence with no fill tags.
func (r *LayerResult) singleSeries() bool {
	return len(r.Series) == 1 && r.Series[0].Name == ""
}

type heatJSON struct {
	Points    [][]float64 `json:"points"`
	X         []string    `json:"x"`
	Y         []string    `json:"y"`
	FillLabel string      `json:"fill,omitempty"`
}

type layerJSON struct {
	Type       ChartType       `json:"type"`
	Title      string          `json:"title,omitempty"`
	Axes       Axes            `json:"axes"`
	Data       json.RawMessage `json:"data"`
	Selectors  []string        `json:"selectors"`
	DOMMapping *DOMMapping     `json:"domMapping,omitempty"`
}

// MarshalJSON serializes the layer in the consumer document shape:
// {type, title, axes, data, selectors, domMapping?}. Data and selectors
// are flattened from the paired payload so their indices correspond.
func (r LayerResult) MarshalJSON() ([]byte, error) {
	var data any
	switch {
	case r.Heat != nil:
		data = heatJSON{Points: r.Heat.Rows, X: r.Heat.X, Y: r.Heat.Y, FillLabel: r.Heat.FillLabel}
	case len(r.Boxes) > 0:
		stats := make([]BoxStats, len(r.Boxes))
		for i, b := range r.Boxes {
			stats[i] = b.Stats
		}
		data = stats
	case len(r.Series) > 0:
		if r.singleSeries() {
			data = r.Series[0].Points
		} else {
			nested := make([][]Point, len(r.Series))
			for i, s := range r.Series {
				nested[i] = s.Points
			}
			data = nested
		}
	default:
		pts := make([]Point, len(r.Points))
		for i, b := range r.Points {
			pts[i] = b.Point
		}
		data = pts
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(layerJSON{
		Type:       r.Type,
		Title:      r.Title,
		Axes:       r.Axes,
		Data:       raw,
		Selectors:  r.Selectors(),
		DOMMapping: r.DOMMapping,
	})
}

// UnmarshalJSON restores a layer from the consumer document shape,
// re-pairing data entries with selectors by position. Selector lists
// shorter than the data leave trailing entries unaddressed.
func (r *LayerResult) UnmarshalJSON(b []byte) error {
	var lj layerJSON
	if err := json.Unmarshal(b, &lj); err != nil {
		return err
	}
	*r = LayerResult{Type: lj.Type, Title: lj.Title, Axes: lj.Axes, DOMMapping: lj.DOMMapping}
	sel := func(i int) string {
		if i < len(lj.Selectors) {
			return lj.Selectors[i]
		}
		return ""
	}
	if len(lj.Data) == 0 || string(lj.Data) == "null" {
		return nil
	}
	switch lj.Type {
	case TypeHeat:
		var h heatJSON
		if err := json.Unmarshal(lj.Data, &h); err != nil {
			return err
		}
		r.Heat = &HeatData{Rows: h.Points, X: h.X, Y: h.Y, FillLabel: h.FillLabel, Selector: sel(0)}
	case TypeBox:
		var stats []BoxStats
		if err := json.Unmarshal(lj.Data, &stats); err != nil {
			return err
		}
		for i, s := range stats {
			r.Boxes = append(r.Boxes, BoxBinding{Stats: s, Selector: sel(i)})
		}
	case TypeDodgedBar, TypeStackedBar:
		var nested [][]Point
		if err := json.Unmarshal(lj.Data, &nested); err != nil {
			return err
		}
		for i, pts := range nested {
			name := ""
			if len(pts) > 0 {
				name = pts[0].Fill
			}
			r.Series = append(r.Series, Series{Name: name, Points: pts, Selector: sel(i)})
		}
	case TypeLine, TypeSmooth:
		var nested [][]Point
		if err := json.Unmarshal(lj.Data, &nested); err == nil {
			for i, pts := range nested {
				name := ""
				if len(pts) > 0 {
					name = pts[0].Fill
				}
				r.Series = append(r.Series, Series{Name: name, Points: pts, Selector: sel(i)})
			}
			return nil
		}
		var pts []Point
		if err := json.Unmarshal(lj.Data, &pts); err != nil {
			return err
		}
		r.Series = []Series{{Points: pts, Selector: sel(0)}}
	default:
		var pts []Point
		if err := json.Unmarshal(lj.Data, &pts); err != nil {
			return err
		}
		for i, p := range pts {
			r.Points = append(r.Points, Binding{Point: p, Selector: sel(i)})
		}
	}
	return nil
}

// Subplot is one panel or facet of a document: its layers in render
// order plus panel-level title and axes.
type Subplot struct {
	ID     string        `json:"id"`
	Title  string        `json:"title,omitempty"`
	Axes   Axes          `json:"axes"`
	Layers []LayerResult `json:"layers"`
}

// Document is the combined accessible data document for one rendered
// plot. ID is globally unique per render.
type Document struct {
	ID       string    `json:"id"`
	Subplots []Subplot `json:"subplots"`
}

// JSON serializes the document for embedding into markup.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// docCounter disambiguates documents created within one clock tick.
var docCounter atomic.Uint64

// NewDocumentID returns a render-unique document identifier derived
// from the current time and a process-wide counter.
func NewDocumentID() string {
	return fmt.Sprintf("ap-%s-%d", time.Now().UTC().Format("20060102150405"), docCounter.Add(1))
}
