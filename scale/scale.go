// Package scale recovers human-readable categorical axis labels from
// internal numeric position encodings, and fixes the deterministic
// label ordering used by bar-family reordering.
package scale

import (
	"fmt"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Mapping is a discrete-axis position-to-label table. Positions are
// keyed by their stringified form so integer and float encodings of the
// same break agree.
type Mapping struct {
	labels map[string]string
}

// FromBreaks builds a mapping from a discrete scale's numeric breaks
// and their labels. Returns nil (mapping absent) when there are no
// breaks or the labels do not line up, which is how continuous scales
// present themselves.
func FromBreaks(breaks []float64, labels []string) *Mapping {
	if len(breaks) == 0 || len(breaks) != len(labels) {
		return nil
	}
	m := &Mapping{labels: make(map[string]string, len(breaks))}
	for i, b := range breaks {
		m.labels[Stringify(b)] = labels[i]
	}
	return m
}

// FromLabels builds a mapping from explicit position strings.
func FromLabels(labels map[string]string) *Mapping {
	if len(labels) == 0 {
		return nil
	}
	m := &Mapping{labels: make(map[string]string, len(labels))}
	for k, v := range labels {
		m.labels[k] = v
	}
	return m
}

// Lookup returns the label for one position value and whether it was
// mapped.
func (m *Mapping) Lookup(value any) (string, bool) {
	if m == nil {
		return "", false
	}
	l, ok := m.labels[Stringify(value)]
	return l, ok
}

// Len returns the number of mapped positions.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.labels)
}

// Apply replaces each position value with its mapped label. Unmapped
// values fall back to their stringified form; no position is ever
// dropped. A nil mapping returns the input unchanged.
func Apply(values []any, m *Mapping) []any {
	if m == nil {
		return values
	}
	out := make([]any, len(values))
	for i, v := range values {
		if label, ok := m.labels[Stringify(v)]; ok {
			out[i] = label
		} else {
			out[i] = Stringify(v)
		}
	}
	return out
}

// Stringify normalizes a position value to its string key. Floats drop
// trailing zeros so 2.0 and 2 share a key.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	default:
		return fmt.Sprint(v)
	}
}

// collator fixes one collation for all label ordering so DOM traversal
// order is stable across locales and runs.
var collator = collate.New(language.Und)

// SortLabels returns the labels sorted ascending under the package
// collation. The input is not modified.
func SortLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	collator.SortStrings(out)
	return out
}

// CompareLabels compares two labels under the package collation:
// -1 if a sorts before b, 0 if equal, +1 otherwise.
func CompareLabels(a, b string) int {
	return collator.CompareString(a, b)
}

// SortedKeys returns the keys of a label-keyed map sorted ascending
// under the package collation.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	collator.SortStrings(keys)
	return keys
}
