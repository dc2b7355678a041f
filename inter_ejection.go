package vrptw

import "math"

// Variable-depth ejection chain (§4.5): eliminates a targeted route by
// relocating its customers one at a time, displacing "victims" from other
// routes when a direct relocation has no home. Depth escalates from a plain
// relocate (depth 1) to a single displaced victim (depth 2) to a second
// displaced victim (depth 3) only when the shallower depth fails for that
// customer.

const (
	depth2VictimTopK = 6
	depth3VictimTopK = 3
	// ejectionPruneBuffer scales with a route's average span (3x, per
	// §4.5) to skip clearly unrelated routes before scanning victims.
	ejectionPruneBuffer = 3.0
)

// EjectionChain attempts to eliminate target entirely: every customer on it
// must find a home, directly or via a victim displacement, or the whole
// attempt rolls back atomically via a solution-level snapshot/restore.
// Returns whether target was eliminated.
func EjectionChain(s *Solution, target *Route, opts Options) bool {
	if target.Empty() || len(s.Routes) < 2 {
		return false
	}
	snapshot := s.Snapshot()

	ids := target.CustomerIDs()
	allPlaced := true
	for _, id := range ids {
		pos := indexOf(target.customers, id)
		if pos < 0 {
			continue // already relocated by an earlier step in this pass
		}
		cust := target.table[id]

		if tryDirectRelocate(s, target, cust) {
			continue
		}
		if tryEjectionDepth2(s, target, cust) {
			continue
		}
		if tryEjectionDepth3(s, target, cust) {
			continue
		}
		allPlaced = false
		break
	}

	if !allPlaced || !target.Empty() {
		s.Restore(snapshot)
		return false
	}
	s.PruneEmptyRoutes()
	s.Recompute(opts)
	return true
}

// tryDirectRelocate is ejection-chain depth 1: find cust's best feasible
// position on any other route and move it there.
func tryDirectRelocate(s *Solution, target *Route, cust Customer) bool {
	bestDelta := 0.0
	var bestDst *Route
	bestPos := -1
	found := false

	for _, dst := range s.Routes {
		if dst == target {
			continue
		}
		for pos := 0; pos <= dst.Len(); pos++ {
			delta, ok := dst.DeltaForExternal(cust, pos)
			if !ok {
				continue
			}
			if !found || delta < bestDelta {
				bestDelta, bestDst, bestPos, found = delta, dst, pos, true
			}
		}
	}
	if !found {
		return false
	}
	if !bestDst.Insert(cust.ID, bestPos) {
		return false
	}
	target.RemoveAt(indexOf(target.customers, cust.ID))
	return true
}

// tryEjectionDepth2 picks a route A, evicts a top-scored victim v, and
// checks whether cust now fits on A; if so it then looks for any other
// route B (not target, not A) to rehome v. Restores A on any failure.
func tryEjectionDepth2(s *Solution, target *Route, cust Customer) bool {
	for _, a := range s.Routes {
		if a == target || a.Empty() {
			continue
		}
		if !target.Overlaps(a, ejectionPruneBuffer*avgSpanOr(target, a)) {
			continue
		}
		victims := topVictimPositions(a, depth2VictimTopK)
		for _, vPos := range victims {
			vID := a.customers[vPos]
			vCust := a.table[vID]

			a.RemoveAt(vPos)
			custPos, custOK := bestFeasiblePosition(a, cust)
			if !custOK {
				a.Insert(vID, vPos)
				continue
			}
			if dst, pos, ok := findHomeExcept(s, vCust, target, a); ok {
				if !dst.Insert(vID, pos) {
					a.Insert(vID, vPos)
					continue
				}
				if !a.Insert(cust.ID, custPos) {
					dst.RemoveAt(indexOf(dst.customers, vID))
					a.Insert(vID, vPos)
					continue
				}
				target.RemoveAt(indexOf(target.customers, cust.ID))
				return true
			}
			a.Insert(vID, vPos)
		}
	}
	return false
}

// tryEjectionDepth3 extends depth 2: when the first victim v1 (evicted from
// A to make room for cust) has no home anywhere, it tries evicting a second
// victim v2 from some other route B so that v1 fits on B, then looks for a
// home for v2 elsewhere (any route but target). Fully rolls back A and B on
// any failure.
func tryEjectionDepth3(s *Solution, target *Route, cust Customer) bool {
	for _, a := range s.Routes {
		if a == target || a.Empty() {
			continue
		}
		victims := topVictimPositions(a, depth3VictimTopK)
		for _, vPos := range victims {
			v1ID := a.customers[vPos]
			v1Cust := a.table[v1ID]

			a.RemoveAt(vPos)
			custPos, custOK := bestFeasiblePosition(a, cust)
			if !custOK {
				a.Insert(v1ID, vPos)
				continue
			}

			placed := false
			for _, b := range s.Routes {
				if b == target || b == a || b.Empty() {
					continue
				}
				v2Positions := topVictimPositions(b, depth3VictimTopK)
				for _, v2Pos := range v2Positions {
					v2ID := b.customers[v2Pos]
					v2Cust := b.table[v2ID]

					bBackup := b.CustomerIDs()
					b.RemoveAt(v2Pos)
					v1Pos, v1OK := bestFeasiblePosition(b, v1Cust)
					if !v1OK {
						b.ReplaceCustomers(bBackup)
						continue
					}
					if dst, pos, ok := findHomeExcept(s, v2Cust, target, a, b); ok {
						if !dst.Insert(v2ID, pos) {
							b.ReplaceCustomers(bBackup)
							continue
						}
						if !b.Insert(v1ID, v1Pos) {
							dst.RemoveAt(indexOf(dst.customers, v2ID))
							b.ReplaceCustomers(bBackup)
							continue
						}
						if !a.Insert(cust.ID, custPos) {
							dst.RemoveAt(indexOf(dst.customers, v2ID))
							b.ReplaceCustomers(bBackup)
							continue
						}
						target.RemoveAt(indexOf(target.customers, cust.ID))
						placed = true
						break
					}
					b.ReplaceCustomers(bBackup)
				}
				if placed {
					break
				}
			}
			if placed {
				return true
			}
			a.Insert(v1ID, vPos)
		}
	}
	return false
}

// bestFeasiblePosition returns the cheapest feasible insertion position for
// cust on r without mutating r.
func bestFeasiblePosition(r *Route, cust Customer) (int, bool) {
	bestDelta := 0.0
	bestPos := -1
	found := false
	for pos := 0; pos <= r.Len(); pos++ {
		delta, ok := r.DeltaForExternal(cust, pos)
		if !ok {
			continue
		}
		if !found || delta < bestDelta {
			bestDelta, bestPos, found = delta, pos, true
		}
	}
	return bestPos, found
}

// findHomeExcept finds the cheapest feasible (route, position) for cust
// among s.Routes, excluding the given routes.
func findHomeExcept(s *Solution, cust Customer, excluded ...*Route) (*Route, int, bool) {
	isExcluded := func(r *Route) bool {
		for _, e := range excluded {
			if r == e {
				return true
			}
		}
		return false
	}
	bestDelta := 0.0
	var bestDst *Route
	bestPos := -1
	found := false
	for _, r := range s.Routes {
		if isExcluded(r) {
			continue
		}
		pos, ok := bestFeasiblePosition(r, cust)
		if !ok {
			continue
		}
		delta, _ := r.DeltaForExternal(cust, pos)
		if !found || delta < bestDelta {
			bestDelta, bestDst, bestPos, found = delta, r, pos, true
		}
	}
	return bestDst, bestPos, found
}

// victimScore implements §4.5's victim-selection score:
//
//	0.35*demand + 0.30*min(window_slack/80, 2) + 0.35*position_score
//
// where position_score is 3 at a route boundary, 2 one position in, 1
// otherwise, and window_slack = due_date - ready_time.
func victimScore(r *Route, pos int) float64 {
	id := r.customers[pos]
	cust := r.table[id]
	slack := cust.DueDate - cust.ReadyTime
	slackTerm := math.Min(slack/80, 2)
	return 0.35*float64(cust.Demand) + 0.30*slackTerm + 0.35*positionScore(r.Len(), pos)
}

func positionScore(n, pos int) float64 {
	if pos == 0 || pos == n-1 {
		return 3
	}
	if pos == 1 || pos == n-2 {
		return 2
	}
	return 1
}

// topVictimPositions returns up to k positions in r ranked by descending
// victimScore.
func topVictimPositions(r *Route, k int) []int {
	n := r.Len()
	type scored struct {
		pos   int
		score float64
	}
	buf := make([]scored, n)
	for i := 0; i < n; i++ {
		buf[i] = scored{i, victimScore(r, i)}
	}
	// simple insertion sort: victims come from ordinary routes, whose length
	// is bounded by vehicle capacity, so n stays small
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && buf[j].score > buf[j-1].score; j-- {
			buf[j], buf[j-1] = buf[j-1], buf[j]
		}
	}
	if k > len(buf) {
		k = len(buf)
	}
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = buf[i].pos
	}
	return out
}

// avgSpanOr returns the average of the two routes' avgSpan, used to scale
// the bounding-box pruning buffer.
func avgSpanOr(a, b *Route) float64 {
	span := (a.avgSpan() + b.avgSpan()) / 2
	if span <= 0 {
		return 1
	}
	return span
}
