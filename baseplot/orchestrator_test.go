package baseplot

import (
	"strings"
	"testing"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/record"
)

func TestOrchestratorLayers(t *testing.T) {
	store, f := newSession("dev1")
	f.Barplot([]float64{1, 2}, record.Arg("names", []string{"A", "B"}))
	f.Abline(record.Arg("h", 1.0))
	f.Title("t")

	orch, err := NewSystem(store, "dev1").NewOrchestrator(nil)
	if err != nil {
		t.Fatalf("NewOrchestrator() error: %v", err)
	}
	descs := orch.Layers()
	if len(descs) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(descs))
	}
	wantTypes := []accessplot.ChartType{accessplot.TypeBar, accessplot.TypeLine, accessplot.TypeSkip}
	for i, d := range descs {
		if d.Type != wantTypes[i] {
			t.Errorf("descriptor %d type = %v, want %v", i, d.Type, wantTypes[i])
		}
		if d.Index != i {
			t.Errorf("descriptor %d index = %d", i, d.Index)
		}
		if d.GroupIndex != 0 {
			t.Errorf("descriptor %d group = %d, want 0", i, d.GroupIndex)
		}
	}
}

func TestDocumentMostRecentGroupOnly(t *testing.T) {
	store, f := newSession("dev1")
	f.Barplot([]float64{1}, record.Arg("main", "first"))
	f.Barplot([]float64{2, 3}, record.Arg("main", "second"))

	orch, _ := NewSystem(store, "dev1").NewOrchestrator(nil)
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if len(doc.Subplots) != 1 {
		t.Fatalf("got %d subplots, want only the most recent chart", len(doc.Subplots))
	}
	sp := doc.Subplots[0]
	if sp.Title != "second" {
		t.Errorf("title = %q, want second", sp.Title)
	}
	if sp.Layers[0].DataLen() != 2 {
		t.Errorf("DataLen() = %d, want 2", sp.Layers[0].DataLen())
	}
	// Selectors anchor to the device's plot counter, not to 1.
	sel := sp.Layers[0].Selectors()
	if len(sel) == 0 || !strings.Contains(sel[0], "graphics-plot-2-") {
		t.Errorf("selectors = %v, want graphics-plot-2 anchor", sel)
	}
}

func TestDocumentLayoutPanels(t *testing.T) {
	store, f := newSession("dev1")
	f.Par(record.Arg("mfrow", []int{1, 2}))
	f.Barplot([]float64{1}, record.Arg("main", "left"))
	f.Plot([]float64{1, 2, 3}, []float64{4, 5, 6}, record.Arg("main", "right"))

	orch, _ := NewSystem(store, "dev1").NewOrchestrator(nil)
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if len(doc.Subplots) != 2 {
		t.Fatalf("got %d subplots, want one per panel", len(doc.Subplots))
	}
	if doc.Subplots[0].Title != "left" || doc.Subplots[1].Title != "right" {
		t.Errorf("titles = %q, %q", doc.Subplots[0].Title, doc.Subplots[1].Title)
	}
	if doc.Subplots[1].Layers[0].Type != accessplot.TypePoint {
		t.Errorf("panel 2 layer type = %v", doc.Subplots[1].Layers[0].Type)
	}
	sel := doc.Subplots[1].Layers[0].Selectors()
	if len(sel) == 0 || !strings.Contains(sel[0], "graphics-plot-2-") {
		t.Errorf("panel 2 selectors = %v, want graphics-plot-2 anchor", sel)
	}
}

func TestOrchestratorQueries(t *testing.T) {
	store, f := newSession("dev1")
	f.Barplot([]float64{1, 2})

	orch, err := NewSystem(store, "dev1").NewOrchestrator(nil)
	if err != nil {
		t.Fatalf("NewOrchestrator() error: %v", err)
	}
	if orch.Faceted() || orch.Composite() {
		t.Errorf("Faceted() = %v, Composite() = %v, want false, false",
			orch.Faceted(), orch.Composite())
	}
	// Constructed selectors, no searchable tree.
	if _, ok := orch.(accessplot.TreeOrchestrator); ok {
		t.Error("imperative orchestrator should not expose a tree")
	}

	store2, f2 := newSession("dev2")
	f2.Par(record.Arg("mfrow", []int{1, 2}))
	f2.Barplot([]float64{1})
	f2.Barplot([]float64{2})

	orch, _ = NewSystem(store2, "dev2").NewOrchestrator(nil)
	if !orch.Faceted() {
		t.Error("Faceted() = false under an active layout")
	}
}

func TestDocumentAnnotationLayers(t *testing.T) {
	store, f := newSession("dev1")
	f.Plot([]float64{1, 2, 3}, []float64{4, 5, 6}, record.Arg("type", "l"))
	f.Points([]float64{1}, []float64{4})
	f.Title("annotated")

	orch, _ := NewSystem(store, "dev1").NewOrchestrator(nil)
	doc, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	sp := doc.Subplots[0]
	if sp.Title != "annotated" {
		t.Errorf("title = %q, want annotation title", sp.Title)
	}
	if len(sp.Layers) != 2 {
		t.Fatalf("got %d layers, want line + points (title skipped)", len(sp.Layers))
	}
	if sp.Layers[0].Type != accessplot.TypeLine || sp.Layers[1].Type != accessplot.TypePoint {
		t.Errorf("layer types = %v, %v", sp.Layers[0].Type, sp.Layers[1].Type)
	}
}

func TestDocumentIdempotent(t *testing.T) {
	store, f := newSession("dev1")
	f.Barplot([]float64{10, 20}, record.Arg("names", []string{"A", "B"}))

	orch, _ := NewSystem(store, "dev1").NewOrchestrator(nil)
	d1, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	d2, err := orch.Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	l1, l2 := d1.Subplots[0].Layers[0], d2.Subplots[0].Layers[0]
	if l1.DataLen() != l2.DataLen() {
		t.Fatal("data lengths differ between runs")
	}
	for i := range l1.Points {
		if l1.Points[i] != l2.Points[i] {
			t.Errorf("binding %d differs: %+v vs %+v", i, l1.Points[i], l2.Points[i])
		}
	}
}
