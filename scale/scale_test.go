package scale

import (
	"reflect"
	"testing"
)

func TestApplyFallback(t *testing.T) {
	m := FromBreaks([]float64{1, 2, 3}, []string{"A", "B", "C"})

	got := Apply([]any{1.0, 2.0, 5.0}, m)
	want := []any{"A", "B", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestApplyAbsentMapping(t *testing.T) {
	in := []any{1.0, 2.0}
	got := Apply(in, nil)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("absent mapping must return values unchanged, got %v", got)
	}
}

func TestFromBreaksContinuous(t *testing.T) {
	if FromBreaks(nil, nil) != nil {
		t.Error("no breaks should yield an absent mapping")
	}
	if FromBreaks([]float64{1, 2}, []string{"A"}) != nil {
		t.Error("mismatched labels should yield an absent mapping")
	}
}

func TestLookupIntFloatAgree(t *testing.T) {
	m := FromBreaks([]float64{1, 2}, []string{"A", "B"})
	if l, ok := m.Lookup(2); !ok || l != "B" {
		t.Errorf("int key lookup = %q, %v", l, ok)
	}
	if l, ok := m.Lookup(2.0); !ok || l != "B" {
		t.Errorf("float key lookup = %q, %v", l, ok)
	}
}

func TestSortLabels(t *testing.T) {
	in := []string{"C", "A", "B"}
	got := SortLabels(in)
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("SortLabels = %v", got)
	}
	if !reflect.DeepEqual(in, []string{"C", "A", "B"}) {
		t.Error("input slice was modified")
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]float64{"C": 30, "A": 10, "B": 20})
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("SortedKeys = %v", got)
	}
}
