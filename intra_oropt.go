package vrptw

import (
	"math"
	"sort"
)

// maxOrOptSegment is the longest segment length Or-opt will try to
// relocate, per §4.4.
const maxOrOptSegment = 4

// IntraOrOpt applies a single Or-opt (segment relocate) move: segment
// lengths from maxOrOptSegment down to 1, candidate insertion positions
// ordered by distance from the segment's original position (farthest
// first, since distant moves are more likely to improve), first improving
// move commits. Returns whether a move was committed.
func IntraOrOpt(r *Route) bool {
	n := r.Len()
	if n < 2 {
		return false
	}

	for segLen := maxOrOptSegment; segLen >= 1; segLen-- {
		if segLen > n {
			continue
		}
		for start := 0; start+segLen <= n; start++ {
			end := start + segLen

			positions := rankedInsertPositions(r, start, n)
			for _, insertJ := range positions {
				if insertJ >= start && insertJ <= end {
					continue // overlaps or no-op
				}
				delta, ok := r.DeltaForSegmentMove(start, end, insertJ)
				if !ok || delta >= -1e-6 {
					continue
				}
				if commitSegmentMove(r, start, end, insertJ) {
					return true
				}
			}
		}
	}
	return false
}

// rankedInsertPositions returns every valid insertion position in [0,n],
// sorted by descending distance (in position-index terms, a cheap proxy
// for geometric distance already used as the pre-filter in
// DeltaForSegmentMove) from start.
func rankedInsertPositions(r *Route, start, n int) []int {
	positions := make([]int, 0, n+1)
	for p := 0; p <= n; p++ {
		positions = append(positions, p)
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return math.Abs(float64(positions[i]-start)) > math.Abs(float64(positions[j]-start))
	})
	return positions
}

// commitSegmentMove physically relocates customers[start:end] to sit before
// insertJ, recomputes, and rolls back if infeasible (defensive: the delta
// was already checked via the read-only DeltaForSegmentMove, but commit
// still verifies before returning true).
func commitSegmentMove(r *Route, start, end, insertJ int) bool {
	segment := append([]int{}, r.customers[start:end]...)
	rest := make([]int, 0, len(r.customers)-len(segment))
	rest = append(rest, r.customers[:start]...)
	rest = append(rest, r.customers[end:]...)

	actualInsert := insertJ
	if insertJ > end {
		actualInsert = insertJ - len(segment)
	} else if insertJ > start {
		actualInsert = start
	}

	newCustomers := make([]int, 0, len(r.customers))
	newCustomers = append(newCustomers, rest[:actualInsert]...)
	newCustomers = append(newCustomers, segment...)
	newCustomers = append(newCustomers, rest[actualInsert:]...)

	oldCustomers := r.customers
	r.customers = newCustomers
	from := start
	if actualInsert < from {
		from = actualInsert
	}
	r.recalculateFrom(0)
	if !r.feasible {
		r.customers = oldCustomers
		r.recalculateFrom(from)
		return false
	}
	r.updateBoundingBox()
	return true
}
