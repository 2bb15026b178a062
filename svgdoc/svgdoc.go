// Package svgdoc assembles the final deliverables of a render: the SVG
// markup carrying the accessible document as a data attribute, the
// standalone HTML page or embeddable widget wrapping it, and the
// tabular xlsx companion export.
package svgdoc

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
)

// DataAttr is the SVG root attribute carrying the serialized document.
const DataAttr = "data-accessplot"

// renderConfig holds the rendering knobs.
type renderConfig struct {
	width  int
	height int
}

// Option adjusts SVG rendering.
type Option func(*renderConfig)

// WithSize sets the rendered SVG dimensions in pixels.
func WithSize(width, height int) Option {
	return func(c *renderConfig) {
		c.width = width
		c.height = height
	}
}

// RenderSVG serializes the document, walks the rendered tree emitting
// one SVG element per node, and embeds the serialized document as a
// data attribute on the root SVG element. Group nodes become <g id>
// containers; mark leaves become the element their tag names, placed at
// their frame when one was recorded.
func RenderSVG(doc *accessplot.Document, tree grob.Node, opts ...Option) (string, error) {
	cfg := renderConfig{width: 800, height: 600}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := doc.JSON()
	if err != nil {
		return "", fmt.Errorf("svgdoc: serializing document: %w", err)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(cfg.width, cfg.height,
		fmt.Sprintf(`id=%q %s="%s"`, doc.ID, DataAttr, html.EscapeString(string(data))))
	if tree != nil {
		renderNode(canvas, tree)
	}
	canvas.End()
	return buf.String(), nil
}

// renderNode emits one tree node and its children.
func renderNode(canvas *svg.SVG, n grob.Node) {
	if mark, ok := n.(grob.Mark); ok && len(n.Children()) == 0 {
		renderMark(canvas, mark)
		return
	}
	canvas.Group(fmt.Sprintf(`id="%s"`, html.EscapeString(n.Name())))
	for _, c := range n.Children() {
		if c != nil {
			renderNode(canvas, c)
		}
	}
	canvas.Gend()
}

// renderMark emits one leaf element. Marks without a recorded frame
// still emit an addressable empty container so selectors resolve.
func renderMark(canvas *svg.SVG, m grob.Mark) {
	id := fmt.Sprintf(`id="%s"`, html.EscapeString(m.Name()))
	var x, y, w, h float64
	if framed, ok := m.(grob.Framed); ok {
		x, y, w, h = framed.Frame()
	}
	switch m.Tag() {
	case "rect":
		canvas.Rect(int(x), int(y), int(w), int(h), id)
	case "circle":
		canvas.Circle(int(x+w/2), int(y+h/2), int(max(w, h)/2), id)
	case "polyline":
		canvas.Polyline(
			[]int{int(x), int(x + w)},
			[]int{int(y + h), int(y)},
			id+` fill="none"`)
	default:
		canvas.Group(id)
		canvas.Gend()
	}
}

// SaveHTML writes the HTML string to path. The parent directory must
// already exist; it is never created.
func SaveHTML(path, content string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("svgdoc: saving %s: %w", path, ErrNoParentDir)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("svgdoc: saving %s: %w", path, err)
	}
	accessplot.Logger().Debug("svgdoc: html saved", "path", path, "bytes", len(content))
	return nil
}
