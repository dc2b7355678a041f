package vrptw

import "fmt"

// maxRestorationAttemptsPerCustomer bounds the safety net's repair attempts per
// customer before giving up and escalating to ErrCoverageViolation.
const maxRestorationAttemptsPerCustomer = 3

// ValidateCoverage checks the coverage invariant: every customer id in the
// table appears in exactly one route, no more, no less (the depot is not a
// customer and is excluded). On success it returns nil; on failure it
// returns ErrCoverageViolation wrapped with the offending ids.
func ValidateCoverage(s *Solution) error {
	seen := make(map[int]int, len(s.table))
	for _, id := range s.CoveredCustomers() {
		seen[id]++
	}

	var missing, duplicated []int
	for id := range s.table {
		if id == s.depot.ID {
			continue
		}
		switch seen[id] {
		case 0:
			missing = append(missing, id)
		case 1:
			// ok
		default:
			duplicated = append(duplicated, id)
		}
	}
	if len(missing) == 0 && len(duplicated) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing=%v duplicated=%v", ErrCoverageViolation, missing, duplicated)
}

// RepairCoverage attempts to restore the coverage invariant in place by
// brute-force cheapest-feasible-insertion for every missing customer, and by
// dropping every duplicate occurrence past the first. It makes at most
// maxRestorationAttemptsPerCustomer attempts per missing customer before
// giving up on that customer. It returns the still-missing ids (empty on
// full success) so the caller can decide whether to escalate.
//
// RepairCoverage exists as the safety net described for Options.StrictCoverage
// == false: production runs keep StrictCoverage on and treat any violation as
// a bug; this path is for callers who would rather degrade than abort.
func RepairCoverage(s *Solution, opts Options) []int {
	dropDuplicates(s)

	missing := findMissing(s)
	if len(missing) == 0 {
		return nil
	}

	stillMissing := make([]int, 0, len(missing))
	for _, id := range missing {
		cust := s.table[id]
		placed := false
		for attempt := 0; attempt < maxRestorationAttemptsPerCustomer && !placed; attempt++ {
			placed = tryCheapestInsertion(s, cust)
		}
		if !placed {
			stillMissing = append(stillMissing, id)
		}
	}
	if len(stillMissing) > 0 {
		s.Recompute(opts)
		return stillMissing
	}
	s.Recompute(opts)
	return nil
}

// findMissing returns customer ids present in the table but absent from
// every route.
func findMissing(s *Solution) []int {
	seen := make(map[int]bool, len(s.table))
	for _, id := range s.CoveredCustomers() {
		seen[id] = true
	}
	var missing []int
	for id := range s.table {
		if id == s.depot.ID || seen[id] {
			continue
		}
		missing = append(missing, id)
	}
	return missing
}

// dropDuplicates removes every occurrence of a customer id past its first
// appearance across the whole solution, scanning routes in order.
func dropDuplicates(s *Solution) {
	seen := make(map[int]bool, len(s.table))
	for _, r := range s.Routes {
		for pos := 0; pos < len(r.customers); {
			id := r.customers[pos]
			if seen[id] {
				r.RemoveAt(pos)
				continue
			}
			seen[id] = true
			pos++
		}
	}
}

// tryCheapestInsertion scans every route and every position for the
// cheapest feasible insertion of cust, falling back to a brand new route if
// no existing route can take it. Returns whether the customer was placed.
func tryCheapestInsertion(s *Solution, cust Customer) bool {
	bestDelta := 0.0
	var bestRoute *Route
	bestPos := -1
	found := false

	for _, r := range s.Routes {
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
	if found {
		return bestRoute.Insert(cust.ID, bestPos)
	}

	r := s.NewEmptyRoute()
	if !r.Insert(cust.ID, 0) {
		return false
	}
	s.Routes = append(s.Routes, r)
	return true
}
