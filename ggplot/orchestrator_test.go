package ggplot

import (
	"errors"
	"testing"

	"github.com/accessplot/accessplot"
	"github.com/aclements/go-gg/table"
)

// fakePlot is a pre-built declarative plot.
type fakePlot struct {
	built *Built
	err   error
}

func (p *fakePlot) Build() (*Built, error) { return p.built, p.err }

// fakeComposite arranges several plots into one figure.
type fakeComposite struct {
	plots []Plot
}

func (c *fakeComposite) Plots() []Plot { return c.plots }

// panicCurve blows up when sampled, simulating a broken fitted model.
type panicCurve struct{}

func (panicCurve) Sample() ([]float64, []float64) { panic("unfitted model") }

func barBuilt(title string) *Built {
	layer := &Layer{
		Geom: "col",
		Aes:  map[string]string{"x": "x", "y": "y"},
		Data: new(table.Builder).
			Add("x", []string{"A", "B"}).
			Add("y", []float64{10, 20}).
			Done(),
	}
	return &Built{
		Title:  title,
		XLabel: "cat", YLabel: "val",
		Layers: []*Layer{layer},
		Tree:   panelWith("geom_rect.rect.207"),
	}
}

func TestSystemCanHandle(t *testing.T) {
	sys := NewSystem()
	if !sys.CanHandle(&fakePlot{}) {
		t.Error("plot not recognized")
	}
	if !sys.CanHandle(&fakeComposite{}) {
		t.Error("composite not recognized")
	}
	if sys.CanHandle(42) || sys.CanHandle(nil) {
		t.Error("non-plot recognized")
	}
}

func TestNewOrchestratorErrors(t *testing.T) {
	sys := NewSystem()

	if _, err := sys.NewOrchestrator("not a plot"); !errors.Is(err, accessplot.ErrUnsupportedPlot) {
		t.Errorf("err = %v, want ErrUnsupportedPlot", err)
	}

	buildErr := errors.New("bad spec")
	if _, err := sys.NewOrchestrator(&fakePlot{err: buildErr}); !errors.Is(err, buildErr) {
		t.Errorf("err = %v, want wrapped build error", err)
	}

	if _, err := sys.NewOrchestrator(&fakeComposite{}); !errors.Is(err, accessplot.ErrUnsupportedPlot) {
		t.Errorf("empty composite err = %v, want ErrUnsupportedPlot", err)
	}
}

func TestOrchestratorLayers(t *testing.T) {
	built := barBuilt("t")
	built.Layers = append(built.Layers,
		&Layer{Geom: "text"},
		&Layer{Geom: "hline", Params: map[string]any{"yintercept": 1.0}},
	)

	orch, err := NewSystem().NewOrchestrator(&fakePlot{built: built})
	if err != nil {
		t.Fatalf("NewOrchestrator() error: %v", err)
	}
	descs := orch.Layers()
	if len(descs) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(descs))
	}
	wantTypes := []accessplot.ChartType{accessplot.TypeBar, accessplot.TypeSkip, accessplot.TypeLine}
	wantGroups := []int{0, 1, 1}
	for i, d := range descs {
		if d.Type != wantTypes[i] {
			t.Errorf("descriptor %d type = %v, want %v", i, d.Type, wantTypes[i])
		}
		if d.Index != i {
			t.Errorf("descriptor %d index = %d", i, d.Index)
		}
		if d.GroupIndex != wantGroups[i] {
			t.Errorf("descriptor %d group = %d, want %d", i, d.GroupIndex, wantGroups[i])
		}
	}
}

func TestDocumentSingle(t *testing.T) {
	orch, err := NewSystem().NewOrchestrator(&fakePlot{built: barBuilt("Sales")})
	if err != nil {
		t.Fatalf("NewOrchestrator() error: %v", err)
	}
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if doc.ID == "" {
		t.Error("document has no id")
	}
	if len(doc.Subplots) != 1 {
		t.Fatalf("got %d subplots, want 1", len(doc.Subplots))
	}
	sp := doc.Subplots[0]
	if sp.Title != "Sales" || sp.Axes.X != "cat" || sp.Axes.Y != "val" {
		t.Errorf("subplot = %+v", sp)
	}
	if len(sp.Layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(sp.Layers))
	}
	layer := sp.Layers[0]
	if layer.DataLen() != 2 {
		t.Errorf("DataLen() = %d, want 2", layer.DataLen())
	}
	if len(layer.Selectors()) != 2 {
		t.Errorf("Selectors() = %v, want 2 entries", layer.Selectors())
	}
}

func TestDocumentSkipsTextLayers(t *testing.T) {
	built := barBuilt("t")
	built.Layers = append(built.Layers, &Layer{Geom: "label"})

	orch, _ := NewSystem().NewOrchestrator(&fakePlot{built: built})
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if len(doc.Subplots[0].Layers) != 1 {
		t.Errorf("got %d layers, want text layer excluded", len(doc.Subplots[0].Layers))
	}
}

func TestDocumentDegradesPanickedLayer(t *testing.T) {
	built := barBuilt("t")
	built.Layers = append(built.Layers, &Layer{
		Geom:   "smooth",
		Params: map[string]any{"curve": panicCurve{}},
	})

	orch, _ := NewSystem().NewOrchestrator(&fakePlot{built: built})
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	layers := doc.Subplots[0].Layers
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if layers[0].DataLen() != 2 {
		t.Error("healthy layer lost data")
	}
	broken := layers[1]
	if broken.Type != accessplot.TypeSmooth {
		t.Errorf("degraded layer type = %v", broken.Type)
	}
	if broken.DataLen() != 0 || len(broken.Selectors()) != 0 {
		t.Error("panicked layer should degrade to an empty result")
	}
}

func TestDocumentFacets(t *testing.T) {
	gidA := table.RootGroupID.Extend("a")
	gidB := table.RootGroupID.Extend("b")
	tabA := new(table.Builder).
		Add("x", []string{"A", "B"}).
		Add("y", []float64{1, 2}).
		Done()
	tabB := new(table.Builder).
		Add("x", []string{"A", "B", "C"}).
		Add("y", []float64{3, 4, 5}).
		Done()
	layer := &Layer{
		Geom: "col",
		Aes:  map[string]string{"x": "x", "y": "y"},
		Data: table.NewGroupingBuilder(nil).Add(gidA, tabA).Add(gidB, tabB).Done(),
	}
	built := &Built{
		Title:  "Faceted",
		Layers: []*Layer{layer},
		Facets: []string{"north", "south"},
	}

	orch, _ := NewSystem().NewOrchestrator(&fakePlot{built: built})
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if len(doc.Subplots) != 2 {
		t.Fatalf("got %d subplots, want 2", len(doc.Subplots))
	}
	if doc.Subplots[0].Title != "north" || doc.Subplots[1].Title != "south" {
		t.Errorf("subplot titles = %q, %q", doc.Subplots[0].Title, doc.Subplots[1].Title)
	}
	if n := doc.Subplots[0].Layers[0].DataLen(); n != 2 {
		t.Errorf("facet 0 DataLen() = %d, want 2", n)
	}
	if n := doc.Subplots[1].Layers[0].DataLen(); n != 3 {
		t.Errorf("facet 1 DataLen() = %d, want 3", n)
	}
}

func TestOrchestratorQueries(t *testing.T) {
	sys := NewSystem()
	built := barBuilt("single")

	orch, err := sys.NewOrchestrator(&fakePlot{built: built})
	if err != nil {
		t.Fatalf("NewOrchestrator() error: %v", err)
	}
	if orch.Faceted() || orch.Composite() {
		t.Errorf("Faceted() = %v, Composite() = %v, want false, false",
			orch.Faceted(), orch.Composite())
	}
	tree, ok := orch.(accessplot.TreeOrchestrator)
	if !ok {
		t.Fatal("declarative orchestrator should expose its rendered tree")
	}
	if tree.Tree() != built.Tree {
		t.Error("Tree() does not return the built tree")
	}

	faceted := barBuilt("faceted")
	faceted.Facets = []string{"north", "south"}
	orch, _ = sys.NewOrchestrator(&fakePlot{built: faceted})
	if !orch.Faceted() {
		t.Error("Faceted() = false for a faceted plot")
	}

	comp := &fakeComposite{plots: []Plot{
		&fakePlot{built: barBuilt("left")},
		&fakePlot{built: barBuilt("right")},
	}}
	orch, _ = sys.NewOrchestrator(comp)
	if !orch.Composite() || orch.Faceted() {
		t.Errorf("Composite() = %v, Faceted() = %v, want true, false",
			orch.Composite(), orch.Faceted())
	}
	if orch.(accessplot.TreeOrchestrator).Tree() != nil {
		t.Error("composite Tree() should be nil")
	}
}

func TestDocumentComposite(t *testing.T) {
	comp := &fakeComposite{plots: []Plot{
		&fakePlot{built: barBuilt("left")},
		&fakePlot{built: barBuilt("right")},
	}}

	orch, err := NewSystem().NewOrchestrator(comp)
	if err != nil {
		t.Fatalf("NewOrchestrator() error: %v", err)
	}
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if len(doc.Subplots) != 2 {
		t.Fatalf("got %d subplots, want 2", len(doc.Subplots))
	}
	if doc.Subplots[0].Title != "left" || doc.Subplots[1].Title != "right" {
		t.Errorf("subplot titles = %q, %q", doc.Subplots[0].Title, doc.Subplots[1].Title)
	}
	if doc.Subplots[0].ID == doc.Subplots[1].ID {
		t.Error("subplot ids collide")
	}
}
