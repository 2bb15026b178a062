package record

// Engine is the hookable dispatch surface of the host imperative
// plotting engine: one entry point per drawing primitive, dispatched by
// name. The engine renders; this package only observes. A nil engine is
// valid and turns a facade into a record-only sink, which is how tests
// and data-first embeddings use it.
type Engine interface {
	Draw(surface, name string, args Args) (any, error)
}

// Facade is the explicit recording wrapper around an engine: each
// method mirrors one drawing primitive, records the call on its store,
// and delegates to the engine with behavior and return value preserved.
// Applications call the facade instead of the engine so that recording
// never depends on ambient interception.
type Facade struct {
	store   *Store
	engine  Engine
	surface string
}

// NewFacade wraps an engine for one surface. store may not be nil;
// engine may be nil for record-only use.
func NewFacade(store *Store, engine Engine, surface string) *Facade {
	if store == nil {
		panic("record: NewFacade store is nil")
	}
	return &Facade{store: store, engine: engine, surface: surface}
}

// Surface returns the surface id the facade records against.
func (f *Facade) Surface() string { return f.surface }

// call records the primitive and delegates to the engine. The store's
// re-entrancy guard is held across the delegation so primitives the
// engine invokes internally through installed hooks are not recorded a
// second time.
func (f *Facade) call(name string, args Args) (any, error) {
	f.store.LogCall(f.surface, name, args)
	if f.engine == nil {
		return nil, nil
	}
	if f.store.beginInternal() {
		defer f.store.endInternal()
	}
	return f.engine.Draw(f.surface, name, args)
}

// Barplot records a bar chart. height is a value vector for simple
// bars or a series-by-category matrix for grouped bars; recognized
// named arguments include "names", "legend", "beside", "col", "main",
// "xlab", "ylab".
func (f *Facade) Barplot(height any, extra ...NamedArg) (any, error) {
	return f.call("barplot", NewArgs([]any{height}, append(extra, Arg("height", height))...))
}

// Hist records a histogram of the value vector x.
func (f *Facade) Hist(x []float64, extra ...NamedArg) (any, error) {
	return f.call("hist", NewArgs([]any{x}, append(extra, Arg("x", x))...))
}

// Boxplot records a box-and-whisker chart. x is a value vector or a
// per-group matrix; group labels ride in "names".
func (f *Facade) Boxplot(x any, extra ...NamedArg) (any, error) {
	return f.call("boxplot", NewArgs([]any{x}, append(extra, Arg("x", x))...))
}

// Plot records a scatter or line chart depending on the "type"
// argument ("p" points, "l" lines).
func (f *Facade) Plot(x, y []float64, extra ...NamedArg) (any, error) {
	return f.call("plot", NewArgs([]any{x, y}, append(extra, Arg("x", x), Arg("y", y))...))
}

// Matplot records a multi-series line chart: one line per column of y.
func (f *Facade) Matplot(y [][]float64, extra ...NamedArg) (any, error) {
	return f.call("matplot", NewArgs([]any{y}, append(extra, Arg("y", y))...))
}

// Image records a matrix heat image.
func (f *Facade) Image(z [][]float64, extra ...NamedArg) (any, error) {
	return f.call("image", NewArgs([]any{z}, append(extra, Arg("z", z))...))
}

// Heatmap records a clustered heat map of z.
func (f *Facade) Heatmap(z [][]float64, extra ...NamedArg) (any, error) {
	return f.call("heatmap", NewArgs([]any{z}, append(extra, Arg("z", z))...))
}

// Lines annotates the current chart with a connected line.
func (f *Facade) Lines(x, y []float64, extra ...NamedArg) (any, error) {
	return f.call("lines", NewArgs([]any{x, y}, append(extra, Arg("x", x), Arg("y", y))...))
}

// Points annotates the current chart with points.
func (f *Facade) Points(x, y []float64, extra ...NamedArg) (any, error) {
	return f.call("points", NewArgs([]any{x, y}, append(extra, Arg("x", x), Arg("y", y))...))
}

// Abline annotates the current chart with a reference line: "h" for a
// horizontal intercept, "v" for a vertical one, or "a"/"b" for
// intercept and slope.
func (f *Facade) Abline(extra ...NamedArg) (any, error) {
	return f.call("abline", NewArgs(nil, extra...))
}

// Title annotates the current chart with a main title.
func (f *Facade) Title(main string, extra ...NamedArg) (any, error) {
	return f.call("title", NewArgs(nil, append(extra, Arg("main", main))...))
}

// Axis annotates the current chart with an axis on the given side.
func (f *Facade) Axis(side int, extra ...NamedArg) (any, error) {
	return f.call("axis", NewArgs([]any{side}, append(extra, Arg("side", side))...))
}

// Legend annotates the current chart with a legend.
func (f *Facade) Legend(position string, labels []string, extra ...NamedArg) (any, error) {
	return f.call("legend", NewArgs([]any{position}, append(extra, Arg("legend", labels))...))
}

// Text annotates the current chart with text at (x, y).
func (f *Facade) Text(x, y float64, label string, extra ...NamedArg) (any, error) {
	return f.call("text", NewArgs([]any{x, y, label}, append(extra, Arg("labels", label))...))
}

// Mtext annotates a chart margin with text.
func (f *Facade) Mtext(label string, extra ...NamedArg) (any, error) {
	return f.call("mtext", NewArgs([]any{label}, append(extra, Arg("text", label))...))
}

// Par records a global parameter change; an "mfrow" or "mfcol" pair
// reconfigures the surface's panel grid.
func (f *Facade) Par(extra ...NamedArg) (any, error) {
	return f.call("par", NewArgs(nil, extra...))
}

// Layout records an explicit panel layout matrix.
func (f *Facade) Layout(mat [][]int, extra ...NamedArg) (any, error) {
	return f.call("layout", NewArgs([]any{mat}, append(extra, Arg("mat", mat))...))
}

// DrawFunc is one primitive of a hookable dispatch table.
type DrawFunc func(surface string, args Args) (any, error)

// Dispatch is a mutable name-to-primitive table, the transparent
// interception point for engines that route drawing through a function
// table instead of an interface.
type Dispatch map[string]DrawFunc

// Install wraps every primitive in the dispatch table with a recording
// wrapper and returns a restore function that reinstates the original
// entries. The wrapped primitive records on the store (subject to its
// enable and re-entrancy guards) and then calls the original with
// behavior and return value preserved. Installation is reversible and
// explicit; nothing is patched outside the given table.
func Install(d Dispatch, store *Store) (restore func()) {
	originals := make(map[string]DrawFunc, len(d))
	for name, fn := range d {
		originals[name] = fn
	}
	for name, fn := range d {
		name, fn := name, fn
		d[name] = func(surface string, args Args) (any, error) {
			store.LogCall(surface, name, args)
			if store.beginInternal() {
				defer store.endInternal()
			}
			return fn(surface, args)
		}
	}
	return func() {
		for name, fn := range originals {
			d[name] = fn
		}
	}
}
