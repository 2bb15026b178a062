package accessplot

// Option configures document assembly.
//
// Example:
//
//	// Default: render-unique generated id
//	doc, err := accessplot.BuildDocument(plot)
//
//	// Deterministic id (useful in tests and snapshot pipelines)
//	doc, err := accessplot.BuildDocument(plot, accessplot.WithDocumentID("chart-1"))
type Option func(*buildOptions)

// buildOptions holds optional configuration for document assembly.
type buildOptions struct {
	id string
}

// WithDocumentID overrides the generated document identifier. The
// caller is responsible for uniqueness within the embedding page.
func WithDocumentID(id string) Option {
	return func(o *buildOptions) {
		o.id = id
	}
}

// applyOptions applies build options to an assembled document.
func applyOptions(doc *Document, opts []Option) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.id != "" {
		doc.ID = o.id
	}
}
