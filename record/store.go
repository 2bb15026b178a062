package record

import (
	"sync"
	"time"
)

// device is the per-surface call log and plotting state.
type device struct {
	calls []Call
	state DeviceState
	seq   int
}

// Store owns the recorded calls and device state of every surface. It
// is the explicit session context of the imperative paradigm: all
// recording flows through one store, and the re-entrancy guard for
// engine-internal calls lives here instead of in ambient global state.
//
// The store serializes access to its surface table, but it does not
// arbitrate two logical plotting sessions interleaving drawing calls
// against the same surface id; callers must clear the surface between
// sessions.
type Store struct {
	mu       sync.Mutex
	surfaces map[string]*device
	enabled  bool
	internal bool
	now      func() time.Time
}

// NewStore returns an empty store with recording enabled.
func NewStore() *Store {
	return &Store{
		surfaces: make(map[string]*device),
		enabled:  true,
		now:      time.Now,
	}
}

// defaultStore backs the package-level convenience functions.
var defaultStore = NewStore()

// Default returns the process-wide store used by the package-level
// functions and, typically, by an application's single facade.
func Default() *Store { return defaultStore }

// Enable turns recording on.
func (s *Store) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
}

// Disable turns recording off. Facade wrappers keep delegating to the
// engine; they just stop recording.
func (s *Store) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

// Enabled reports whether recording is on.
func (s *Store) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// beginInternal marks the start of an engine-delegated call so that
// primitives the engine invokes re-entrantly through installed hooks
// are not recorded twice. Returns false when already inside one.
func (s *Store) beginInternal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.internal {
		return false
	}
	s.internal = true
	return true
}

// endInternal clears the re-entrancy guard.
func (s *Store) endInternal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.internal = false
}

// dev returns the surface's device, creating it on first use. Caller
// holds s.mu.
func (s *Store) dev(surface string) *device {
	d, ok := s.surfaces[surface]
	if !ok {
		d = &device{state: newDeviceState()}
		s.surfaces[surface] = d
	}
	return d
}

// LogCall classifies and records one drawing primitive invocation on a
// surface, then applies its device-state transition: high-level calls
// advance the plot (and panel) counters, layout calls reconfigure the
// panel geometry. Returns the recorded call and true, or false when
// recording is disabled or suppressed by the re-entrancy guard.
func (s *Store) LogCall(surface, name string, args Args) (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.internal {
		return Call{}, false
	}

	d := s.dev(surface)
	c := Call{
		Name:  name,
		Class: Classify(name),
		Args:  args,
		Expr:  args.Expr(name),
		Time:  s.now(),
		Seq:   d.seq,
	}
	d.seq++
	d.calls = append(d.calls, c)

	switch c.Class {
	case ClassHigh:
		s.onHighLevelCall(d, len(d.calls)-1)
	case ClassLayout:
		s.onLayoutCall(d, name, args)
	}
	return c, true
}

// onHighLevelCall advances the plot counter and, while a layout is
// active, the panel cursor. Panel indices are never wrapped.
func (s *Store) onHighLevelCall(d *device, callIndex int) {
	d.state.CurrentPlot++
	d.state.LastHighIndex = callIndex
	if d.state.LayoutActive {
		d.state.CurrentPanel++
	}
}

// onLayoutCall applies a recognized panel configuration. Unrecognized
// argument shapes leave the configuration untouched.
func (s *Store) onLayoutCall(d *device, name string, args Args) {
	cfg, ok := parsePanelArgs(name, args)
	if !ok {
		return
	}
	d.state.Panels = cfg
	d.state.CurrentPlot = 0
	d.state.CurrentPanel = 0
	d.state.LayoutActive = true
}

// Calls returns the surface's calls in recorded order.
func (s *Store) Calls(surface string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.surfaces[surface]
	if !ok {
		return nil
	}
	out := make([]Call, len(d.calls))
	copy(out, d.calls)
	return out
}

// CallsByClass filters the surface's calls by class, preserving
// recorded order.
func (s *Store) CallsByClass(surface string, class Class) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.surfaces[surface]
	if !ok {
		return nil
	}
	var out []Call
	for _, c := range d.calls {
		if c.Class == class {
			out = append(out, c)
		}
	}
	return out
}

// HasCalls reports whether any call was recorded on the surface.
func (s *Store) HasCalls(surface string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.surfaces[surface]
	return ok && len(d.calls) > 0
}

// State returns a copy of the surface's device state. Unknown surfaces
// report the reset state.
func (s *Store) State(surface string) DeviceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.surfaces[surface]
	if !ok {
		return newDeviceState()
	}
	st := d.state
	st.Panels.Matrix = cloneMatrix(d.state.Panels.Matrix)
	return st
}

// Clear discards the surface's calls and resets its device state.
func (s *Store) Clear(surface string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.surfaces, surface)
}

// ClearAll discards every surface.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surfaces = make(map[string]*device)
}

// Surfaces returns the ids of surfaces holding recorded calls.
func (s *Store) Surfaces() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.surfaces))
	for id := range s.surfaces {
		out = append(out, id)
	}
	return out
}

func cloneMatrix(m [][]int) [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}
