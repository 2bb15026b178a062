package svgdoc

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/accessplot/accessplot"
)

// ExportXLSX writes the document as a workbook: one sheet per subplot,
// one table block per layer. The tabular form is the screen-reader
// companion to the embedded SVG document.
func ExportXLSX(doc *accessplot.Document, path string) error {
	if doc == nil || len(doc.Subplots) == 0 {
		return ErrEmptyDocument
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sp := range doc.Subplots {
		sheet := fmt.Sprintf("Subplot %d", i+1)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("svgdoc: exporting xlsx: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("svgdoc: exporting xlsx: %w", err)
			}
		}
		if err := writeSubplot(f, sheet, sp); err != nil {
			return fmt.Errorf("svgdoc: exporting xlsx: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("svgdoc: exporting xlsx: %w", err)
	}
	accessplot.Logger().Debug("svgdoc: xlsx saved", "path", path, "subplots", len(doc.Subplots))
	return nil
}

// writeSubplot lays one subplot out on its sheet: a title row, then one
// block per layer separated by a blank row.
func writeSubplot(f *excelize.File, sheet string, sp accessplot.Subplot) error {
	row := 1
	set := func(col int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}
	setRow := func(vals ...any) error {
		for c, v := range vals {
			if err := set(c+1, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	if sp.Title != "" {
		if err := setRow("Title", sp.Title); err != nil {
			return err
		}
	}
	for _, layer := range sp.Layers {
		if err := setRow("Layer", string(layer.Type)); err != nil {
			return err
		}
		if err := writeLayer(setRow, sp, layer); err != nil {
			return err
		}
		row++ // blank separator
	}
	return nil
}

// writeLayer emits one layer's data block.
func writeLayer(setRow func(...any) error, sp accessplot.Subplot, layer accessplot.LayerResult) error {
	xLabel, yLabel := sp.Axes.X, sp.Axes.Y
	if xLabel == "" {
		xLabel = "x"
	}
	if yLabel == "" {
		yLabel = "y"
	}

	switch {
	case layer.Heat != nil:
		header := append([]any{""}, anySlice(layer.Heat.X)...)
		if err := setRow(header...); err != nil {
			return err
		}
		for i, r := range layer.Heat.Rows {
			vals := []any{labelAt(layer.Heat.Y, i)}
			for _, v := range r {
				vals = append(vals, v)
			}
			if err := setRow(vals...); err != nil {
				return err
			}
		}
	case len(layer.Boxes) > 0:
		if err := setRow("group", "min", "q1", "median", "q3", "max", "outliers"); err != nil {
			return err
		}
		for _, b := range layer.Boxes {
			s := b.Stats
			out := len(s.LowerOutliers) + len(s.UpperOutliers)
			if err := setRow(s.Label, s.Min, s.Q1, s.Q2, s.Q3, s.Max, out); err != nil {
				return err
			}
		}
	case len(layer.Series) > 0:
		if err := setRow("series", xLabel, yLabel); err != nil {
			return err
		}
		for _, s := range layer.Series {
			for _, p := range s.Points {
				if err := setRow(s.Name, p.X, p.Y); err != nil {
					return err
				}
			}
		}
	default:
		if err := setRow(xLabel, yLabel); err != nil {
			return err
		}
		for _, b := range layer.Points {
			if err := setRow(b.Point.X, b.Point.Y); err != nil {
				return err
			}
		}
	}
	return nil
}

func anySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprint(i + 1)
}
