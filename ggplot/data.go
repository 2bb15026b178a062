package ggplot

import (
	"reflect"

	"github.com/accessplot/accessplot/scale"
	"github.com/aclements/go-gg/table"
)

// Column coercion helpers. Built tables carry columns as arbitrary
// slice types (table.Slice); processors normalize them to floats,
// strings, or generic values. Missing columns coerce to nil so
// extraction degrades instead of failing.

// colValues returns a column as generic values, or nil when absent.
func colValues(t *table.Table, col string) []any {
	if t == nil || col == "" {
		return nil
	}
	seq := t.Column(col)
	if seq == nil {
		return nil
	}
	switch s := seq.(type) {
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out
	case []float64:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out
	case []int:
		out := make([]any, len(s))
		for i, v := range s {
			out[i] = v
		}
		return out
	}
	rv := reflect.ValueOf(seq)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// colFloats returns a column as floats; non-numeric entries are
// dropped.
func colFloats(t *table.Table, col string) []float64 {
	vals := colValues(t, col)
	if vals == nil {
		return nil
	}
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if f, ok := asFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// colStrings returns a column stringified.
func colStrings(t *table.Table, col string) []string {
	vals := colValues(t, col)
	if vals == nil {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = scale.Stringify(v)
	}
	return out
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// floatRange returns the min and max of xs.
func floatRange(xs []float64) (lo, hi float64, ok bool) {
	if len(xs) == 0 {
		return 0, 0, false
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}
