package record

import "testing"

// mockEngine records delegations and can re-enter a dispatch table the
// way a host engine invokes its own primitives internally.
type mockEngine struct {
	draws    []string
	dispatch Dispatch
	reenter  string
}

func (e *mockEngine) Draw(surface, name string, args Args) (any, error) {
	e.draws = append(e.draws, name)
	if e.reenter != "" && e.dispatch != nil {
		fn := e.dispatch[e.reenter]
		e.reenter = ""
		if fn != nil {
			fn(surface, Args{})
		}
	}
	return name + "-result", nil
}

func TestFacadeRecordsAndDelegates(t *testing.T) {
	s := newTestStore()
	eng := &mockEngine{}
	f := NewFacade(s, eng, "dev1")

	res, err := f.Barplot([]float64{10, 20}, Arg("names", []string{"A", "B"}))
	if err != nil {
		t.Fatalf("Barplot: %v", err)
	}
	if res != "barplot-result" {
		t.Errorf("engine return value not preserved: %v", res)
	}
	if len(eng.draws) != 1 || eng.draws[0] != "barplot" {
		t.Errorf("engine draws = %v", eng.draws)
	}

	calls := s.Calls("dev1")
	if len(calls) != 1 || calls[0].Class != ClassHigh {
		t.Fatalf("calls = %+v", calls)
	}
	if got := calls[0].Args.Strings("names"); len(got) != 2 || got[0] != "A" {
		t.Errorf("names arg = %v", got)
	}
}

func TestFacadeNilEngineRecordsOnly(t *testing.T) {
	s := newTestStore()
	f := NewFacade(s, nil, "dev1")

	if _, err := f.Plot([]float64{1, 2}, []float64{3, 4}, Arg("type", "l")); err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if !s.HasCalls("dev1") {
		t.Error("record-only facade must still record")
	}
}

func TestInstallWrapsAndRestores(t *testing.T) {
	s := newTestStore()
	var drawn []string
	d := Dispatch{
		"plot": func(surface string, args Args) (any, error) {
			drawn = append(drawn, "plot")
			return nil, nil
		},
	}
	restore := Install(d, s)

	d["plot"]("dev1", NewArgs(nil))
	if len(drawn) != 1 {
		t.Fatal("original primitive must still run")
	}
	if !s.HasCalls("dev1") {
		t.Fatal("installed hook must record")
	}

	restore()
	s.Clear("dev1")
	d["plot"]("dev1", NewArgs(nil))
	if s.HasCalls("dev1") {
		t.Error("restored primitive must not record")
	}
	if len(drawn) != 2 {
		t.Error("restored primitive must still draw")
	}
}

func TestReentrantEngineCallNotRecorded(t *testing.T) {
	s := newTestStore()
	eng := &mockEngine{}
	d := Dispatch{
		"abline": func(surface string, args Args) (any, error) { return nil, nil },
	}
	Install(d, s)
	eng.dispatch = d
	eng.reenter = "abline" // engine draws its own reference line internally

	f := NewFacade(s, eng, "dev1")
	f.Plot([]float64{1, 2}, []float64{3, 4})

	calls := s.Calls("dev1")
	if len(calls) != 1 || calls[0].Name != "plot" {
		t.Errorf("internal engine call leaked into the record: %+v", calls)
	}
}
