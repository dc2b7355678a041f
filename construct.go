package vrptw

import "sort"

// ConstructInitialSolution builds a feasible starting Solution via the
// Regret-k MIH constructor (§4.8): customers are processed in
// (due_date, dist(depot,c)) order; each is inserted at the cheapest feasible
// position in any existing route, unless that cost exceeds
// depot->c->depot + NewRouteDeterrent, in which case a new route is opened.
// The first customer always opens the first route.
func ConstructInitialSolution(depot Customer, customers []Customer, capacity int, opts Options) *Solution {
	table := make(map[int]Customer, len(customers)+1)
	table[depot.ID] = depot
	for _, c := range customers {
		table[c.ID] = c
	}

	ordered := make([]Customer, len(customers))
	copy(ordered, customers)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DueDate != ordered[j].DueDate {
			return ordered[i].DueDate < ordered[j].DueDate
		}
		return dist(depot, ordered[i]) < dist(depot, ordered[j])
	})

	deterrent := opts.NewRouteDeterrent
	if deterrent <= 0 {
		deterrent = defaultNewRouteDeterrent
	}

	sol := NewSolution(depot, table, capacity)

	for i, cust := range ordered {
		if i == 0 {
			r := sol.NewEmptyRoute()
			r.Insert(cust.ID, 0)
			sol.Routes = append(sol.Routes, r)
			continue
		}

		bestDelta := 0.0
		var bestRoute *Route
		bestPos := -1
		found := false

		for _, r := range sol.Routes {
			for pos := 0; pos <= r.Len(); pos++ {
				delta, ok := r.DeltaForExternal(cust, pos)
				if !ok {
					continue
				}
				if !found || delta < bestDelta {
					bestDelta, bestRoute, bestPos, found = delta, r, pos, true
				}
			}
		}

		roundTrip := dist(depot, cust) * 2
		if !found || bestDelta > roundTrip+deterrent {
			r := sol.NewEmptyRoute()
			if r.Insert(cust.ID, 0) {
				sol.Routes = append(sol.Routes, r)
				continue
			}
			// Emergency fallback: the lone customer is itself infeasible
			// alone on a fresh route (e.g. service_time alone exceeds its
			// own due date). The route stays empty and is pruned later, so
			// the customer is missing and coverage validation reports
			// ErrCoverageViolation upstream.
			sol.Routes = append(sol.Routes, r)
			continue
		}

		if !bestRoute.Insert(cust.ID, bestPos) {
			// Best candidate turned out infeasible on commit (can't happen
			// given DeltaForExternal's own feasibility check, but guard
			// against drift between the two rather than silently drop the
			// customer).
			r := sol.NewEmptyRoute()
			r.Insert(cust.ID, 0)
			sol.Routes = append(sol.Routes, r)
		}
	}

	sol.PruneEmptyRoutes()
	sol.Recompute(opts)
	return sol
}
