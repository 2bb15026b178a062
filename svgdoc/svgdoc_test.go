package svgdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/accessplot/accessplot"
	"github.com/accessplot/accessplot/grob"
)

func sampleDocument() *accessplot.Document {
	return &accessplot.Document{
		ID: "ap-test-1",
		Subplots: []accessplot.Subplot{{
			ID:    "subplot-1",
			Title: "Sales",
			Axes:  accessplot.Axes{X: "cat", Y: "val"},
			Layers: []accessplot.LayerResult{{
				Type: accessplot.TypeBar,
				Axes: accessplot.Axes{X: "cat", Y: "val"},
				Points: []accessplot.Binding{
					{Point: accessplot.Point{X: "A", Y: 10.0}, Selector: "#r rect:nth-child(1)"},
					{Point: accessplot.Point{X: "B", Y: 20.0}, Selector: "#r rect:nth-child(2)"},
				},
			}},
		}},
	}
}

func TestRenderSVG(t *testing.T) {
	tree := grob.NewGroup("layout",
		grob.NewGroup("panel.7",
			grob.NewLeaf("geom_rect.rect.207", "rect").WithFrame(10, 10, 40, 80),
			grob.NewLeaf("geom_line.polyline.5", "polyline").WithFrame(0, 0, 100, 50),
		),
	)

	out, err := RenderSVG(sampleDocument(), tree, WithSize(400, 300))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	for _, want := range []string{
		`width="400"`,
		`id="ap-test-1"`,
		DataAttr + `="`,
		`id="panel.7"`,
		`id="geom_rect.rect.207"`,
		"<rect",
		"<polyline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	// The embedded document survives attribute escaping.
	if !strings.Contains(out, "subplot-1") {
		t.Error("svg does not embed the serialized document")
	}
	if strings.Count(out, "</svg>") != 1 {
		t.Error("svg not closed exactly once")
	}
}

func TestRenderSVGNilTree(t *testing.T) {
	out, err := RenderSVG(sampleDocument(), nil)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(out, DataAttr) {
		t.Error("treeless svg still carries the document")
	}
}

func TestWrapHTML(t *testing.T) {
	page := WrapHTML("<svg></svg>")
	for _, want := range []string{
		"<!DOCTYPE html>",
		"accessplot.min.js",
		"accessplot.css",
		"<svg></svg>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestWrapWidget(t *testing.T) {
	w := WrapWidget("<svg/>",
		WithElementID("chart-1"),
		WithDimensions(640, 480),
		WithDependency(Dependency{Name: "sonifier", Script: "sonifier.js"}),
	)
	if w.ElementID != "chart-1" || w.Width != 640 || w.Height != 480 {
		t.Errorf("widget = %+v", w)
	}
	if len(w.Dependencies) != 2 || w.Dependencies[1].Name != "sonifier" {
		t.Errorf("dependencies = %+v", w.Dependencies)
	}
	if !w.Sizing.Fill {
		t.Error("default sizing should fill")
	}
}

func TestSaveHTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.html")
	if err := SaveHTML(path, "<html></html>"); err != nil {
		t.Fatalf("SaveHTML() error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "<html></html>" {
		t.Errorf("read back %q, %v", b, err)
	}

	missing := filepath.Join(dir, "no", "such", "plot.html")
	if err := SaveHTML(missing, "x"); !errors.Is(err, ErrNoParentDir) {
		t.Errorf("err = %v, want ErrNoParentDir", err)
	}
}

func TestExportXLSX(t *testing.T) {
	doc := sampleDocument()
	doc.Subplots = append(doc.Subplots, accessplot.Subplot{
		ID: "subplot-2",
		Layers: []accessplot.LayerResult{{
			Type: accessplot.TypeHeat,
			Heat: &accessplot.HeatData{
				Rows: [][]float64{{3, 4}, {1, 2}},
				X:    []string{"c1", "c2"},
				Y:    []string{"2", "1"},
			},
		}},
	})

	path := filepath.Join(t.TempDir(), "doc.xlsx")
	if err := ExportXLSX(doc, path); err != nil {
		t.Fatalf("ExportXLSX() error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Subplot 1" || sheets[1] != "Subplot 2" {
		t.Fatalf("sheets = %v", sheets)
	}
	v, err := f.GetCellValue("Subplot 1", "B1")
	if err != nil || v != "Sales" {
		t.Errorf("title cell = %q, %v", v, err)
	}
	v, _ = f.GetCellValue("Subplot 1", "A4")
	if v != "A" {
		t.Errorf("first category = %q, want A", v)
	}
	// Heat rows arrive already reversed; the first data row is [3, 4].
	v, _ = f.GetCellValue("Subplot 2", "B3")
	if v != "3" {
		t.Errorf("heat cell = %q, want 3", v)
	}
}

func TestExportXLSXEmpty(t *testing.T) {
	if err := ExportXLSX(&accessplot.Document{}, "x.xlsx"); !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("err = %v, want ErrEmptyDocument", err)
	}
}
