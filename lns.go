package vrptw

import (
	"math"
	"math/rand"
	"sort"
)

// minLNSRemoval is the floor on how many customers a destroy pass removes,
// regardless of removalFraction*n, per §4.6.
const minLNSRemoval = 5

// DestroyRelatedRemoval implements §4.6's related-removal destroy step:
// seed with a uniformly random unremoved customer, then repeatedly add the
// unremoved customer whose minimum distance to any already-removed customer
// is smallest, until removalFraction*n (floored at minLNSRemoval) customers
// are out. Removed customers are taken out of their routes immediately.
// Returns the removed customers.
func DestroyRelatedRemoval(s *Solution, removalFraction float64, rng *rand.Rand) []Customer {
	allIDs := make([]int, 0, len(s.table))
	for id := range s.table {
		if id == s.depot.ID {
			continue
		}
		allIDs = append(allIDs, id)
	}
	sort.Ints(allIDs) // deterministic iteration order before the random seed pick

	n := len(allIDs)
	target := int(float64(n) * removalFraction)
	if target < minLNSRemoval {
		target = minLNSRemoval
	}
	if target > n {
		target = n
	}
	if target == 0 {
		return nil
	}

	removedSet := make(map[int]bool, target)
	removed := make([]int, 0, target)

	seedIdx := rng.Intn(n)
	seedID := allIDs[seedIdx]
	removedSet[seedID] = true
	removed = append(removed, seedID)

	for len(removed) < target {
		bestID := -1
		bestDist := math.Inf(1)
		for _, id := range allIDs {
			if removedSet[id] {
				continue
			}
			cust := s.table[id]
			minDist := math.Inf(1)
			for _, rID := range removed {
				d := dist(cust, s.table[rID])
				if d < minDist {
					minDist = d
				}
			}
			if minDist < bestDist {
				bestDist = minDist
				bestID = id
			}
		}
		if bestID < 0 {
			break
		}
		removedSet[bestID] = true
		removed = append(removed, bestID)
	}

	out := make([]Customer, 0, len(removed))
	for _, id := range removed {
		out = append(out, s.table[id])
	}
	removeFromRoutes(s, removedSet)
	return out
}

// removeFromRoutes strips every customer in ids from whatever route it
// currently sits on.
func removeFromRoutes(s *Solution, ids map[int]bool) {
	for _, r := range s.Routes {
		for pos := 0; pos < len(r.customers); {
			if ids[r.customers[pos]] {
				r.RemoveAt(pos)
				continue
			}
			pos++
		}
	}
	s.PruneEmptyRoutes()
}

// RepairRegret2 implements §4.6's regret-2 repair: removed customers are
// processed in order of increasing time-window width (tighter first); for
// each, the best and second-best feasible insertion costs across every
// current route/position are found, and the customer is inserted at the
// best-cost position of the route achieving the best cost. A customer with
// no feasible insertion anywhere opens a new single-customer route. Every
// touched route gets a 2-opt pass afterward.
func RepairRegret2(s *Solution, removed []Customer, opts Options) {
	ordered := make([]Customer, len(removed))
	copy(ordered, removed)
	sort.SliceStable(ordered, func(i, j int) bool {
		return (ordered[i].DueDate - ordered[i].ReadyTime) < (ordered[j].DueDate - ordered[j].ReadyTime)
	})

	touched := make(map[*Route]bool)

	for _, cust := range ordered {
		type option struct {
			route *Route
			pos   int
			delta float64
		}
		var best, second option
		best.delta, second.delta = math.Inf(1), math.Inf(1)
		hasBest, hasSecond := false, false

		for _, r := range s.Routes {
			for pos := 0; pos <= r.Len(); pos++ {
				delta, ok := r.DeltaForExternal(cust, pos)
				if !ok {
					continue
				}
				switch {
				case !hasBest || delta < best.delta:
					second, hasSecond = best, hasBest
					best, hasBest = option{r, pos, delta}, true
				case !hasSecond || delta < second.delta:
					second, hasSecond = option{r, pos, delta}, true
				}
			}
		}
		_ = second // regret value itself only reorders processing in fancier
		// variants; §4.6 fixes the processing order by time-window width, so
		// the second-best is computed (per spec) but only the best commits.

		if hasBest {
			best.route.Insert(cust.ID, best.pos)
			touched[best.route] = true
			continue
		}

		r := s.NewEmptyRoute()
		r.Insert(cust.ID, 0)
		s.Routes = append(s.Routes, r)
		touched[r] = true
	}

	for r := range touched {
		for IntraTwoOpt(r) {
		}
	}
	s.Recompute(opts)
}
