package record

import (
	"testing"
	"time"
)

// newTestStore returns a store with a deterministic clock.
func newTestStore() *Store {
	s := NewStore()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Millisecond)
	}
	return s
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Class
	}{
		{"barplot", ClassHigh},
		{"hist", ClassHigh},
		{"plot", ClassHigh},
		{"lines", ClassLow},
		{"abline", ClassLow},
		{"par", ClassLayout},
		{"layout", ClassLayout},
		{"plot.default", ClassHigh},
		{"boxplot.default", ClassHigh},
		{"frobnicate", ClassUnknown},
	}
	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLogCallSequence(t *testing.T) {
	s := newTestStore()
	s.LogCall("dev1", "barplot", NewArgs(nil))
	s.LogCall("dev1", "lines", NewArgs(nil))
	s.LogCall("dev1", "plot", NewArgs(nil))

	calls := s.Calls("dev1")
	if len(calls) != 3 {
		t.Fatalf("got %d calls, want 3", len(calls))
	}
	for i := 1; i < len(calls); i++ {
		if calls[i].Seq <= calls[i-1].Seq {
			t.Errorf("seq not strictly increasing: %d then %d", calls[i-1].Seq, calls[i].Seq)
		}
	}
	if calls[0].Expr != "barplot()" {
		t.Errorf("expr = %q", calls[0].Expr)
	}
}

func TestHighLevelCallAdvancesState(t *testing.T) {
	s := newTestStore()
	s.LogCall("dev1", "plot", NewArgs(nil))
	s.LogCall("dev1", "lines", NewArgs(nil))
	s.LogCall("dev1", "hist", NewArgs(nil))

	st := s.State("dev1")
	if st.CurrentPlot != 2 {
		t.Errorf("CurrentPlot = %d, want 2", st.CurrentPlot)
	}
	if st.LayoutActive {
		t.Error("layout should not be active")
	}
	if st.LastHighIndex != 2 {
		t.Errorf("LastHighIndex = %d, want 2", st.LastHighIndex)
	}
}

func TestLayoutCallConfiguresPanels(t *testing.T) {
	s := newTestStore()
	s.LogCall("dev1", "plot", NewArgs(nil))
	s.LogCall("dev1", "par", NewArgs(nil, Arg("mfrow", []int{2, 3})))

	st := s.State("dev1")
	if st.Panels.Type != PanelMfrow || st.Panels.Rows != 2 || st.Panels.Cols != 3 || st.Panels.Total != 6 {
		t.Errorf("panels = %+v", st.Panels)
	}
	if !st.LayoutActive {
		t.Error("layout should be active")
	}
	if st.CurrentPlot != 0 || st.CurrentPanel != 0 {
		t.Errorf("counters not reset: plot=%d panel=%d", st.CurrentPlot, st.CurrentPanel)
	}

	// Panel cursor advances with each high-level call, without wrapping.
	for i := 0; i < 7; i++ {
		s.LogCall("dev1", "plot", NewArgs(nil))
	}
	st = s.State("dev1")
	if st.CurrentPanel != 7 {
		t.Errorf("CurrentPanel = %d, want 7 (no wrap)", st.CurrentPanel)
	}
}

func TestParWithoutGridLeavesConfig(t *testing.T) {
	s := newTestStore()
	s.LogCall("dev1", "par", NewArgs(nil, Arg("mar", []float64{1, 1, 1, 1})))

	st := s.State("dev1")
	if st.Panels.Type != PanelSingle || st.LayoutActive {
		t.Errorf("unrecognized par args must leave config unchanged: %+v", st)
	}
}

func TestCallsByClass(t *testing.T) {
	s := newTestStore()
	s.LogCall("dev1", "plot", NewArgs(nil))
	s.LogCall("dev1", "lines", NewArgs(nil))
	s.LogCall("dev1", "points", NewArgs(nil))
	s.LogCall("dev1", "par", NewArgs(nil, Arg("mfrow", []int{1, 2})))

	lows := s.CallsByClass("dev1", ClassLow)
	if len(lows) != 2 || lows[0].Name != "lines" || lows[1].Name != "points" {
		t.Errorf("lows = %+v", lows)
	}
	if n := len(s.CallsByClass("dev1", ClassHigh)); n != 1 {
		t.Errorf("highs = %d, want 1", n)
	}
}

func TestClearAndHasCalls(t *testing.T) {
	s := newTestStore()
	if s.HasCalls("dev1") {
		t.Error("fresh surface should have no calls")
	}
	s.LogCall("dev1", "plot", NewArgs(nil))
	s.LogCall("dev2", "plot", NewArgs(nil))
	if !s.HasCalls("dev1") {
		t.Error("expected calls on dev1")
	}

	s.Clear("dev1")
	if s.HasCalls("dev1") || !s.HasCalls("dev2") {
		t.Error("Clear must only affect its surface")
	}
	if st := s.State("dev1"); st.CurrentPlot != 0 {
		t.Error("cleared surface must report reset state")
	}

	s.ClearAll()
	if s.HasCalls("dev2") {
		t.Error("ClearAll must drop every surface")
	}
}

func TestDisableSuppressesRecording(t *testing.T) {
	s := newTestStore()
	s.Disable()
	if _, ok := s.LogCall("dev1", "plot", NewArgs(nil)); ok {
		t.Error("disabled store must not record")
	}
	s.Enable()
	if _, ok := s.LogCall("dev1", "plot", NewArgs(nil)); !ok {
		t.Error("re-enabled store must record")
	}
}
