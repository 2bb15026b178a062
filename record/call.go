// Package record implements call interception and recording for the
// imperative plotting paradigm: drawing primitives are classified as
// chart-starting (high), chart-annotating (low), or panel-arranging
// (layout) and accumulated per rendering surface, together with the
// device state those calls mutate. The recorded sequence is later
// grouped into one plot group per chart by the baseplot system.
package record

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Class is the classification of one drawing primitive.
type Class int

// Call classifications.
const (
	// ClassUnknown marks primitives absent from the classification
	// table. They are recorded but never grouped.
	ClassUnknown Class = iota

	// ClassHigh marks chart-starting primitives (barplot, plot, hist…).
	ClassHigh

	// ClassLow marks chart-annotating primitives that attach to the
	// most recent high-level call (lines, points, abline…).
	ClassLow

	// ClassLayout marks panel-arranging primitives (par, layout).
	ClassLayout
)

// String returns the class tag.
func (c Class) String() string {
	switch c {
	case ClassHigh:
		return "high"
	case ClassLow:
		return "low"
	case ClassLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// classTable is the fixed primitive classification lookup.
var classTable = map[string]Class{
	"barplot":  ClassHigh,
	"boxplot":  ClassHigh,
	"hist":     ClassHigh,
	"plot":     ClassHigh,
	"matplot":  ClassHigh,
	"image":    ClassHigh,
	"heatmap":  ClassHigh,
	"pie":      ClassHigh,
	"curve":    ClassHigh,
	"contour":  ClassHigh,
	"smooth":   ClassHigh,
	"density":  ClassHigh,
	"lines":    ClassLow,
	"points":   ClassLow,
	"abline":   ClassLow,
	"segments": ClassLow,
	"arrows":   ClassLow,
	"polygon":  ClassLow,
	"rect":     ClassLow,
	"text":     ClassLow,
	"mtext":    ClassLow,
	"title":    ClassLow,
	"axis":     ClassLow,
	"legend":   ClassLow,
	"rug":      ClassLow,
	"grid":     ClassLow,
	"par":      ClassLayout,
	"layout":   ClassLayout,
}

// Classify looks up the class of a primitive name. A trailing
// default-dispatch suffix (".default") is stripped before lookup, so
// "plot.default" classifies like "plot".
func Classify(name string) Class {
	name = strings.TrimSuffix(name, ".default")
	if c, ok := classTable[name]; ok {
		return c
	}
	return ClassUnknown
}

// Args holds one call's arguments: ordered positional values plus named
// values.
type Args struct {
	Positional []any
	Named      map[string]any
}

// NamedArg is one name=value argument passed through a facade wrapper.
type NamedArg struct {
	Name  string
	Value any
}

// Arg constructs a named argument.
func Arg(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// NewArgs builds an Args value from positional values and named
// arguments.
func NewArgs(positional []any, named ...NamedArg) Args {
	a := Args{Positional: positional}
	if len(named) > 0 {
		a.Named = make(map[string]any, len(named))
		for _, n := range named {
			a.Named[n.Name] = n.Value
		}
	}
	return a
}

// Get returns a named argument value.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// Bool returns a named argument coerced to bool. Missing or
// non-boolean values yield false.
func (a Args) Bool(name string) bool {
	v, ok := a.Named[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// String returns a named argument coerced to string.
func (a Args) String(name string) string {
	v, ok := a.Named[name]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Float returns a named argument coerced to float64.
func (a Args) Float(name string) (float64, bool) {
	v, ok := a.Named[name]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Floats returns a named argument coerced to a float slice. Scalars
// coerce to a one-element slice.
func (a Args) Floats(name string) []float64 {
	v, ok := a.Named[name]
	if !ok {
		return nil
	}
	return toFloats(v)
}

// Strings returns a named argument coerced to a string slice.
func (a Args) Strings(name string) []string {
	v, ok := a.Named[name]
	if !ok {
		return nil
	}
	switch x := v.(type) {
	case []string:
		return x
	case string:
		return []string{x}
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Matrix returns a named argument coerced to a float matrix.
func (a Args) Matrix(name string) [][]float64 {
	v, ok := a.Named[name]
	if !ok {
		return nil
	}
	return toMatrix(v)
}

// Ints returns a named argument coerced to an int slice.
func (a Args) Ints(name string) []int {
	fs := a.Floats(name)
	if fs == nil {
		return nil
	}
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = int(f)
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	}
	return 0, false
}

func toFloats(v any) []float64 {
	switch x := v.(type) {
	case []float64:
		return x
	case []int:
		out := make([]float64, len(x))
		for i, e := range x {
			out[i] = float64(e)
		}
		return out
	case []any:
		out := make([]float64, 0, len(x))
		for _, e := range x {
			if f, ok := toFloat(e); ok {
				out = append(out, f)
			}
		}
		return out
	default:
		if f, ok := toFloat(v); ok {
			return []float64{f}
		}
	}
	return nil
}

func toMatrix(v any) [][]float64 {
	switch x := v.(type) {
	case [][]float64:
		return x
	case [][]int:
		out := make([][]float64, len(x))
		for i, row := range x {
			out[i] = toFloats(row)
		}
		return out
	}
	return nil
}

// Expr renders a diagnostic call expression, e.g.
// "barplot([10 20], names=[A B])". Named arguments print in sorted
// order so expressions are stable.
func (a Args) Expr(name string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range a.Positional {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", p)
	}
	keys := make([]string, 0, len(a.Named))
	for k := range a.Named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if b.Len() > len(name)+1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, a.Named[k])
	}
	b.WriteByte(')')
	return b.String()
}

// Call is one recorded drawing primitive invocation. Immutable once
// recorded. Seq is strictly increasing within a surface.
type Call struct {
	Name  string
	Class Class
	Args  Args
	Expr  string
	Time  time.Time
	Seq   int
}
