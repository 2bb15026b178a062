package grob

import "testing"

// sampleTree builds a small tree mixing container and mark nodes:
//
//	gtable
//	├── panel-1
//	│   ├── geom_rect.rect.207
//	│   └── geom_point.points.311
//	└── panel-2
//	    └── geom_rect.rect.412
func sampleTree() Node {
	return NewGroup("gtable",
		NewGroup("panel-1",
			NewLeaf("geom_rect.rect.207", "rect"),
			NewLeaf("geom_point.points.311", "circle"),
		),
		NewGroup("panel-2",
			NewLeaf("geom_rect.rect.412", "rect"),
		),
	)
}

func TestFindNodeExactMatch(t *testing.T) {
	tree := sampleTree()

	n, ok := FindNode(tree, `geom_rect\.rect\.[0-9]+`)
	if !ok {
		t.Fatal("expected a match")
	}
	if n.Name() != "geom_rect.rect.207" {
		t.Errorf("got %q, want first match geom_rect.rect.207", n.Name())
	}
}

func TestFindNodeAnchored(t *testing.T) {
	tree := NewGroup("root",
		NewLeaf("prefix-geom_rect.rect.1", "rect"),
		NewLeaf("geom_rect.rect.1-suffix", "rect"),
	)

	// Extra prefix and extra suffix must both cause a miss.
	if _, ok := FindNode(tree, `geom_rect\.rect\.1`); ok {
		t.Error("substring match should not be accepted")
	}
}

func TestFindNodeNilAndInvalid(t *testing.T) {
	if _, ok := FindNode(nil, "x"); ok {
		t.Error("nil tree should not match")
	}
	if _, ok := FindNode(sampleTree(), "(unclosed"); ok {
		t.Error("invalid pattern should not match")
	}
}

func TestFindAllOrder(t *testing.T) {
	got := FindAll(sampleTree(), `geom_rect\.rect\.[0-9]+`)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	if got[0].Name() != "geom_rect.rect.207" || got[1].Name() != "geom_rect.rect.412" {
		t.Errorf("matches out of traversal order: %q, %q", got[0].Name(), got[1].Name())
	}
}

func TestFromMapDeterministicOrder(t *testing.T) {
	g := FromMap("root", map[string]Node{
		"b": NewLeaf("b", "rect"),
		"a": NewLeaf("a", "rect"),
		"c": NewLeaf("c", "rect"),
	})
	kids := g.Children()
	want := []string{"a", "b", "c"}
	for i, k := range kids {
		if k.Name() != want[i] {
			t.Fatalf("child %d = %q, want %q", i, k.Name(), want[i])
		}
	}
}

type grobHost struct{ kids []Node }

func (h grobHost) Grobs() []Node { return h.kids }

func TestFromGrobs(t *testing.T) {
	g := FromGrobs("wrap", grobHost{kids: []Node{NewLeaf("x", "rect")}})
	if len(g.Children()) != 1 || g.Children()[0].Name() != "x" {
		t.Fatalf("grobs children not adapted: %v", g.Children())
	}

	empty := FromGrobs("wrap", nil)
	if len(empty.Children()) != 0 {
		t.Error("nil host should adapt to an empty container")
	}
}

func TestCSSSelector(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		max  int
		want string
	}{
		{"geom_rect.rect.207", "rect", 0, `rect#geom_rect\.rect\.207`},
		{"geom_rect.rect.207", "rect", 3, `rect#geom_rect\.rect\.207:nth-child(-n+3)`},
		{"plain", "g", 0, "g#plain"},
	}
	for _, tt := range tests {
		if got := CSSSelector(tt.name, tt.tag, tt.max); got != tt.want {
			t.Errorf("CSSSelector(%q, %q, %d) = %q, want %q", tt.name, tt.tag, tt.max, got, tt.want)
		}
	}
}

func TestChildSelector(t *testing.T) {
	got := ChildSelector("graphics-plot-1-rect-1", "rect", 2)
	want := `#graphics-plot-1-rect-1 rect:nth-child(2)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
