package accessplot

// ChartType classifies a single chart layer. The set is closed: every
// layer processor is keyed by one of these values and anything a system
// cannot classify maps to TypeUnknown.
type ChartType string

// Chart layer types.
const (
	TypeBar        ChartType = "bar"
	TypeDodgedBar  ChartType = "dodged_bar"
	TypeStackedBar ChartType = "stacked_bar"
	TypePoint      ChartType = "point"
	TypeLine       ChartType = "line"
	TypeHist       ChartType = "hist"
	TypeBox        ChartType = "box"
	TypeHeat       ChartType = "heat"
	TypeSmooth     ChartType = "smooth"

	// TypeSkip marks text/label-only layers that carry no data and are
	// excluded from the accessible output.
	TypeSkip ChartType = "skip"

	// TypeUnknown is the fallback for unclassifiable layers. The unknown
	// processor returns empty data and selectors but still produces a
	// well-formed layer result.
	TypeUnknown ChartType = "unknown"
)

// String returns the type tag.
func (t ChartType) String() string { return string(t) }

// IsBarFamily reports whether t is one of the bar chart variants.
func (t ChartType) IsBarFamily() bool {
	return t == TypeBar || t == TypeDodgedBar || t == TypeStackedBar
}

// LayerDescriptor identifies one detected chart layer before
// processing. Index is the zero-based layer position within its
// subplot; GroupIndex anchors selector generation to the renderer's
// per-chart grob numbering. Raw holds the paradigm's own layer
// representation (a built declarative layer, or a recorded call) and is
// read-only after creation.
type LayerDescriptor struct {
	Index      int
	Type       ChartType
	Name       string
	GroupIndex int
	Raw        any
}
