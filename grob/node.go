// Package grob provides a normalized view of a renderer's materialized
// node tree (grob/gtable equivalent) plus the search and CSS-selector
// helpers every layer processor uses to bind semantic data points to
// rendered SVG subtrees.
//
// Host renderers expose children in inconsistent shapes: an unnamed
// child list, a named child map, or a dedicated "grobs" field. All of
// them are converted once per render into the single Node interface;
// search and selector generation are written against Node only.
package grob

import "sort"

// Node is one renderable tree node with a stable, pattern-addressable
// name.
type Node interface {
	// Name returns the renderer-assigned node name. Names are the basis
	// of selector generation and must be stable across re-renders of
	// the same plot.
	Name() string

	// Children returns the ordered child nodes. Leaves return nil.
	Children() []Node
}

// Mark is an optional interface for leaf nodes that correspond to a
// concrete SVG element.
type Mark interface {
	Node

	// Tag returns the SVG element tag, e.g. "rect" or "polyline".
	Tag() string
}

// Framed is an optional interface for nodes that carry layout bounds,
// used by document assembly to position emitted elements.
type Framed interface {
	// Frame returns the node's x, y, width, height in rendered units.
	Frame() (x, y, w, h float64)
}

// Group is a container node holding an ordered child list. It adapts
// the "list of unnamed children" host shape.
type Group struct {
	name string
	kids []Node
}

// NewGroup creates a container node with the given children in order.
func NewGroup(name string, kids ...Node) *Group {
	return &Group{name: name, kids: kids}
}

// Name returns the node name.
func (g *Group) Name() string { return g.name }

// Children returns the ordered child nodes.
func (g *Group) Children() []Node { return g.kids }

// Add appends child nodes, preserving insertion order.
func (g *Group) Add(kids ...Node) *Group {
	g.kids = append(g.kids, kids...)
	return g
}

// FromMap adapts the "named children map" host shape. Children are
// ordered by name so traversal is deterministic regardless of map
// iteration order.
func FromMap(name string, kids map[string]Node) *Group {
	names := make([]string, 0, len(kids))
	for k := range kids {
		names = append(names, k)
	}
	sort.Strings(names)
	g := &Group{name: name, kids: make([]Node, 0, len(kids))}
	for _, k := range names {
		g.kids = append(g.kids, kids[k])
	}
	return g
}

// GrobLister is the "grobs field" host shape: a value exposing its
// child grobs as a list.
type GrobLister interface {
	Grobs() []Node
}

// FromGrobs adapts a GrobLister into a container node.
func FromGrobs(name string, host GrobLister) *Group {
	if host == nil {
		return &Group{name: name}
	}
	return &Group{name: name, kids: host.Grobs()}
}

// Leaf is a mark node: a leaf with an SVG element tag and optional
// frame.
type Leaf struct {
	name     string
	tag      string
	hasFrame bool
	x, y     float64
	w, h     float64
}

// NewLeaf creates a mark node with the given name and SVG tag.
func NewLeaf(name, tag string) *Leaf {
	return &Leaf{name: name, tag: tag}
}

// WithFrame sets the node's layout bounds.
func (l *Leaf) WithFrame(x, y, w, h float64) *Leaf {
	l.hasFrame = true
	l.x, l.y, l.w, l.h = x, y, w, h
	return l
}

// Name returns the node name.
func (l *Leaf) Name() string { return l.name }

// Children returns nil; marks are leaves.
func (l *Leaf) Children() []Node { return nil }

// Tag returns the SVG element tag.
func (l *Leaf) Tag() string { return l.tag }

// Frame returns the node bounds. Zero bounds when none were set.
func (l *Leaf) Frame() (x, y, w, h float64) { return l.x, l.y, l.w, l.h }

// HasFrame reports whether explicit bounds were set.
func (l *Leaf) HasFrame() bool { return l.hasFrame }
