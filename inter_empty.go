package vrptw

// routeEmptyMaxSize is the largest route size InterRouteEmpty will attempt
// to eliminate, per §4.5.
const routeEmptyMaxSize = 6

// InterRouteEmpty picks the smallest route with fewer than routeEmptyMaxSize
// customers and tries to place every one of its customers into some other
// route via DeltaForExternal. It commits only if homes are found for every
// customer; otherwise every trial placement is rolled back and the source
// route is left untouched. Returns whether a route was eliminated.
func InterRouteEmpty(s *Solution, opts Options) bool {
	if len(s.Routes) < 2 {
		return false
	}

	var target *Route
	for _, r := range s.Routes {
		if r.Empty() || r.Len() >= routeEmptyMaxSize {
			continue
		}
		if target == nil || r.Len() < target.Len() {
			target = r
		}
	}
	if target == nil {
		return false
	}

	ids := target.CustomerIDs()
	type placement struct {
		dst *Route
		pos int
	}
	placements := make([]placement, 0, len(ids))

	for _, id := range ids {
		cust := target.table[id]
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
		placements = append(placements, placement{bestDst, bestPos})
	}

	// All customers have a confirmed home; commit in order. Positions were
	// computed against the pre-commit state, but each DeltaForExternal only
	// ever targets the snapshot of its own destination route, and
	// insertions into distinct destinations never interact, so recomputing
	// per-insert is safe even though earlier customers in this loop may
	// have shifted a shared destination's later positions.
	snapshot := s.Snapshot()
	for i, id := range ids {
		p := placements[i]
		pos := p.pos
		if pos > p.dst.Len() {
			pos = p.dst.Len()
		}
		if !p.dst.Insert(id, pos) {
			// Extremely rare drift between the delta check and the commit
			// (e.g. a later customer was also routed to p.dst, changing its
			// schedule); fall back to cheapest-feasible on this destination.
			if !insertCheapestInto(p.dst, target.table[id]) {
				s.Restore(snapshot)
				return false
			}
		}
	}

	target.ReplaceCustomers(nil)
	s.PruneEmptyRoutes()
	s.Recompute(opts)
	return true
}

// insertCheapestInto scans every position of dst and commits the cheapest
// feasible insertion of cust, used as a fallback when a precomputed
// position has drifted out from under a multi-step commit.
func insertCheapestInto(dst *Route, cust Customer) bool {
	bestDelta := 0.0
	bestPos := -1
	found := false
	for pos := 0; pos <= dst.Len(); pos++ {
		delta, ok := dst.DeltaForExternal(cust, pos)
		if !ok {
			continue
		}
		if !found || delta < bestDelta {
			bestDelta, bestPos, found = delta, pos, true
		}
	}
	if !found {
		return false
	}
	return dst.Insert(cust.ID, bestPos)
}
