package record

import "fmt"

// PlotGroup is one chart worth of recorded calls: the high-level call
// that started it plus its trailing low-level annotations in encounter
// order. Indices are positions in the surface's recorded call list
// (0-based).
type PlotGroup struct {
	High       Call
	HighIndex  int
	Low        []Call
	LowIndices []int
}

// Grouped is the result of partitioning a surface's calls.
type Grouped struct {
	Groups      []PlotGroup
	LayoutCalls []Call
}

// TotalGroups returns the number of detected plot groups.
func (g Grouped) TotalGroups() int { return len(g.Groups) }

// GroupCalls partitions the surface's recorded calls into plot groups
// in a single pass: a high-level call opens a new group, subsequent
// low-level calls attach to the open group, and layout calls are
// collected separately. Low-level calls recorded before any high-level
// call have no chart to attach to and are silently dropped.
func (s *Store) GroupCalls(surface string) Grouped {
	var out Grouped
	var open *PlotGroup
	for i, c := range s.Calls(surface) {
		switch c.Class {
		case ClassHigh:
			out.Groups = append(out.Groups, PlotGroup{High: c, HighIndex: i})
			open = &out.Groups[len(out.Groups)-1]
		case ClassLow:
			if open == nil {
				continue // orphaned annotation, no chart yet
			}
			open.Low = append(open.Low, c)
			open.LowIndices = append(open.LowIndices, i)
		case ClassLayout:
			out.LayoutCalls = append(out.LayoutCalls, c)
		}
	}
	return out
}

// Group returns the nth plot group of a surface. Groups are numbered
// from 1, matching the device state's plot counter.
func (s *Store) Group(surface string, n int) (PlotGroup, error) {
	grouped := s.GroupCalls(surface)
	if len(grouped.Groups) == 0 {
		return PlotGroup{}, ErrNoPlots
	}
	if n < 1 || n > len(grouped.Groups) {
		return PlotGroup{}, fmt.Errorf("%w: group %d of %d", ErrGroupNotFound, n, len(grouped.Groups))
	}
	return grouped.Groups[n-1], nil
}

// DetectPanelConfig re-derives the surface's panel geometry strictly
// from its recorded layout calls; the last recognizable layout call
// wins. Returns ok=false when no layout call configures panels.
func (s *Store) DetectPanelConfig(surface string) (PanelConfig, bool) {
	var (
		cfg   PanelConfig
		found bool
	)
	for _, c := range s.CallsByClass(surface, ClassLayout) {
		if parsed, ok := parsePanelArgs(c.Name, c.Args); ok {
			cfg = parsed
			found = true
		}
	}
	return cfg, found
}
