package record

// PanelType is the multi-panel arrangement kind of a surface.
type PanelType string

// Panel arrangement kinds.
const (
	PanelSingle PanelType = "single"
	PanelMfrow  PanelType = "mfrow"
	PanelMfcol  PanelType = "mfcol"
	PanelLayout PanelType = "layout"
)

// PanelConfig describes the panel geometry of a surface: a row/column
// grid, or an explicit layout matrix of panel ids.
type PanelConfig struct {
	Type   PanelType
	Rows   int
	Cols   int
	Total  int
	Matrix [][]int
}

// SinglePanel returns the default 1x1 configuration.
func SinglePanel() PanelConfig {
	return PanelConfig{Type: PanelSingle, Rows: 1, Cols: 1, Total: 1}
}

// Grid reports whether the configuration is a row/column grid
// (mfrow/mfcol), for which Total equals Rows*Cols.
func (c PanelConfig) Grid() bool {
	return c.Type == PanelMfrow || c.Type == PanelMfcol
}

// parsePanelArgs recognizes a layout-arranging call. For par-style
// calls with an mfrow/mfcol pair (r, c) it yields a grid config; for a
// layout-style call with a panel-id matrix it yields a layout config
// whose Total counts the distinct positive ids. Any other argument
// shape yields ok=false and must leave the device config unchanged.
func parsePanelArgs(name string, args Args) (PanelConfig, bool) {
	switch name {
	case "par":
		for _, key := range []string{"mfrow", "mfcol"} {
			dims := args.Ints(key)
			if len(dims) != 2 || dims[0] < 1 || dims[1] < 1 {
				continue
			}
			t := PanelMfrow
			if key == "mfcol" {
				t = PanelMfcol
			}
			return PanelConfig{Type: t, Rows: dims[0], Cols: dims[1], Total: dims[0] * dims[1]}, true
		}
	case "layout":
		mat := layoutMatrix(args)
		if len(mat) == 0 || len(mat[0]) == 0 {
			return PanelConfig{}, false
		}
		ids := map[int]bool{}
		for _, row := range mat {
			for _, id := range row {
				if id > 0 {
					ids[id] = true
				}
			}
		}
		if len(ids) == 0 {
			return PanelConfig{}, false
		}
		return PanelConfig{
			Type:   PanelLayout,
			Rows:   len(mat),
			Cols:   len(mat[0]),
			Total:  len(ids),
			Matrix: mat,
		}, true
	}
	return PanelConfig{}, false
}

// layoutMatrix pulls the panel-id matrix from a layout call: the "mat"
// named argument or the first positional value.
func layoutMatrix(args Args) [][]int {
	coerce := func(v any) [][]int {
		switch m := v.(type) {
		case [][]int:
			return m
		case [][]float64:
			out := make([][]int, len(m))
			for i, row := range m {
				out[i] = make([]int, len(row))
				for j, f := range row {
					out[i][j] = int(f)
				}
			}
			return out
		}
		return nil
	}
	if v, ok := args.Get("mat"); ok {
		return coerce(v)
	}
	if len(args.Positional) > 0 {
		return coerce(args.Positional[0])
	}
	return nil
}

// DeviceState is the mutable per-surface plotting state. CurrentPlot
// counts high-level calls since the last reset (0 = none yet); the
// public group retrieval in group.go shares this numbering, so group n
// corresponds to CurrentPlot == n. CurrentPanel increases with every
// high-level call while a layout is active and is never wrapped;
// exceeding Panels.Total is a caller error that is not corrected here.
type DeviceState struct {
	CurrentPlot   int
	CurrentPanel  int
	Panels        PanelConfig
	LayoutActive  bool
	LastHighIndex int
}

// newDeviceState returns the reset state: no plots, single panel.
func newDeviceState() DeviceState {
	return DeviceState{Panels: SinglePanel(), LastHighIndex: -1}
}
