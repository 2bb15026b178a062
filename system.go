package accessplot

import (
	"sort"
	"sync"

	"github.com/accessplot/accessplot/grob"
)

// System adapts one plotting paradigm. A system recognizes plot objects
// belonging to its paradigm and builds an orchestrator that drives the
// paradigm's layer processors.
type System interface {
	// Name identifies the system, e.g. "ggplot" or "baseplot".
	Name() string

	// CanHandle reports whether this system can process the given plot
	// object. The imperative system ignores the object and checks its
	// recording surface instead.
	CanHandle(plot any) bool

	// NewOrchestrator builds an orchestrator for the plot object. It
	// fails with ErrUnsupportedPlot (wrapped) when CanHandle would have
	// returned false.
	NewOrchestrator(plot any) (Orchestrator, error)
}

// Orchestrator drives the layer processors of one plot and assembles
// the combined accessible document.
type Orchestrator interface {
	// Layers enumerates the detected layer descriptors in layer order.
	Layers() []LayerDescriptor

	// Faceted reports whether the plot splits into multiple panel
	// subplots: facet panels for the declarative paradigm, an active
	// layout grid for the imperative one.
	Faceted() bool

	// Composite reports whether the plot object composes independent
	// sub-plots into one figure.
	Composite() bool

	// Document runs every layer processor and assembles the accessible
	// document. Individual processor failures degrade to empty layer
	// results; Document fails only on caller misuse.
	Document() (*Document, error)
}

// TreeOrchestrator is implemented by orchestrators whose paradigm
// materializes a searchable rendered tree. Paradigms that construct
// selectors positionally have no tree and do not implement it.
type TreeOrchestrator interface {
	Orchestrator

	// Tree returns the rendered node tree selector search runs
	// against; nil when none was materialized.
	Tree() grob.Node
}

// Registry holds the registered systems. The zero value is ready to
// use. Lookup order is registration order: the first system whose
// CanHandle accepts a plot wins.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	systems map[string]System
}

// NewRegistry returns an empty registry for session-scoped use.
// Most callers use the package-level functions instead, which operate
// on a process-wide default registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a system to the registry.
//
// Register panics if:
//   - s is nil
//   - a system with the same name is already registered
//
// This ensures duplicate registrations are caught during program
// initialization rather than silently overwriting systems.
func (r *Registry) Register(s System) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		panic("accessplot: Register system is nil")
	}
	if r.systems == nil {
		r.systems = make(map[string]System)
	}
	if _, dup := r.systems[s.Name()]; dup {
		panic("accessplot: Register called twice for " + s.Name())
	}
	r.systems[s.Name()] = s
	r.order = append(r.order, s.Name())
}

// Unregister removes a system from the registry.
// This is primarily useful for testing to clean up between tests.
// If the system is not registered, this is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.systems[name]; !ok {
		return
	}
	delete(r.systems, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Systems returns a sorted list of registered system names.
func (r *Registry) Systems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Find returns the first registered system that can handle the plot
// object, in registration order. Returns ErrNoSystem when none claims
// it.
func (r *Registry) Find(plot any) (System, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		s := r.systems[name]
		if s.CanHandle(plot) {
			return s, nil
		}
	}
	return nil, ErrNoSystem
}

// BuildDocument resolves a system for the plot object, builds its
// orchestrator, and assembles the accessible document.
func (r *Registry) BuildDocument(plot any, opts ...Option) (*Document, error) {
	s, err := r.Find(plot)
	if err != nil {
		return nil, err
	}
	orch, err := s.NewOrchestrator(plot)
	if err != nil {
		return nil, err
	}
	doc, err := orch.Document()
	if err != nil {
		return nil, err
	}
	applyOptions(doc, opts)
	Logger().Debug("accessplot: document assembled",
		"system", s.Name(), "id", doc.ID, "subplots", len(doc.Subplots))
	return doc, nil
}

// defaultRegistry backs the package-level registration functions.
var defaultRegistry Registry

// Register registers a system with the default registry, following the
// database/sql driver pattern:
//
//	accessplot.Register(ggplot.NewSystem())
func Register(s System) { defaultRegistry.Register(s) }

// Unregister removes a system from the default registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// Systems returns the system names registered with the default
// registry, sorted alphabetically.
func Systems() []string { return defaultRegistry.Systems() }

// FindSystem returns the first default-registry system that can handle
// the plot object.
func FindSystem(plot any) (System, error) { return defaultRegistry.Find(plot) }

// BuildDocument assembles an accessible document for the plot object
// using the default registry.
func BuildDocument(plot any, opts ...Option) (*Document, error) {
	return defaultRegistry.BuildDocument(plot, opts...)
}
