package svgdoc

import (
	"fmt"
	"strings"
)

// Dependency is one client-side asset the embedded document needs for
// keyboard navigation and sonification.
type Dependency struct {
	Name       string
	Script     string
	Stylesheet string
}

// defaultDependencies declares the standard client runtime.
func defaultDependencies() []Dependency {
	return []Dependency{
		{Name: "accessplot", Script: "accessplot.min.js", Stylesheet: "accessplot.css"},
	}
}

// SizingPolicy controls how an embedding host sizes the widget.
type SizingPolicy struct {
	DefaultWidth  int
	DefaultHeight int
	Fill          bool
	Padding       int
}

// Widget is an embeddable wrapper around rendered SVG markup: the
// markup itself plus the dependency declarations and sizing policy an
// embedding host needs.
type Widget struct {
	SVG          string
	ElementID    string
	Width        int
	Height       int
	Dependencies []Dependency
	Sizing       SizingPolicy
}

// WidgetOption adjusts widget wrapping.
type WidgetOption func(*Widget)

// WithElementID sets the host element id the widget mounts into.
func WithElementID(id string) WidgetOption {
	return func(w *Widget) { w.ElementID = id }
}

// WithDimensions sets explicit widget dimensions in pixels.
func WithDimensions(width, height int) WidgetOption {
	return func(w *Widget) {
		w.Width = width
		w.Height = height
	}
}

// WithSizingPolicy replaces the default sizing policy.
func WithSizingPolicy(p SizingPolicy) WidgetOption {
	return func(w *Widget) { w.Sizing = p }
}

// WithDependency appends a client-side asset declaration.
func WithDependency(d Dependency) WidgetOption {
	return func(w *Widget) { w.Dependencies = append(w.Dependencies, d) }
}

// WrapWidget wraps rendered SVG markup into an embeddable widget with
// the default client dependencies and a fill sizing policy.
func WrapWidget(svgMarkup string, opts ...WidgetOption) Widget {
	w := Widget{
		SVG:          svgMarkup,
		ElementID:    "accessplot-widget",
		Dependencies: defaultDependencies(),
		Sizing:       SizingPolicy{Fill: true, Padding: 0},
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// WrapHTML wraps rendered SVG markup into a minimal standalone page
// declaring the client script and style dependencies.
func WrapHTML(svgMarkup string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	for _, d := range defaultDependencies() {
		if d.Stylesheet != "" {
			fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", d.Stylesheet)
		}
		if d.Script != "" {
			fmt.Fprintf(&b, "<script src=\"%s\" defer></script>\n", d.Script)
		}
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(svgMarkup)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
