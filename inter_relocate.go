package vrptw

import "sort"

// overlapBuffer is the bounding-box buffer used to geometrically prune
// unrelated route pairs before a full candidate-position scan (§4.5).
const overlapBuffer = 20.0

// InterRouteRelocate moves one customer from a source route to a better
// position on a different route: sources are scanned in descending waiting
// contribution, candidate destinations are restricted by bounding-box
// overlap and a per-customer candidate list, and the atomic
// insert-then-remove pattern is used so a failed destination insertion
// never disturbs the source. Empty source routes are discarded after a
// successful move. Returns whether a move was committed.
func InterRouteRelocate(s *Solution, cands *CandidateLists, opts Options) bool {
	if len(s.Routes) < 2 {
		return false
	}
	s.Recompute(opts)
	currentObj := s.TotalCost

	sources := make([]*Route, len(s.Routes))
	copy(sources, s.Routes)
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].TotalWaiting() > sources[j].TotalWaiting()
	})

	for _, src := range sources {
		if src.Empty() {
			continue
		}
		ids := orderByWaitingContribution(src)

		for _, custID := range ids {
			pos := indexOf(src.customers, custID)
			if pos < 0 {
				continue
			}
			cust := src.table[custID]

			for _, dst := range s.Routes {
				if dst == src {
					continue
				}
				if !src.Overlaps(dst, overlapBuffer) {
					continue
				}
				if dst.Load()+cust.Demand > dst.capacity {
					continue
				}

				positions := candidatePositions(dst, cust, cands)
				for _, dpos := range positions {
					delta, ok := dst.DeltaForExternal(cust, dpos)
					if !ok {
						continue
					}
					if !dst.Insert(custID, dpos) {
						continue
					}
					srcPos := indexOf(src.customers, custID)
					src.RemoveAt(srcPos)

					_ = delta
					s.Recompute(opts)
					if s.TotalCost < currentObj-1e-6 {
						IntraTwoOpt(dst)
						if !src.Empty() {
							IntraTwoOpt(src)
						}
						s.PruneEmptyRoutes()
						s.Recompute(opts)
						return true
					}

					// Rollback: remove from dst, reinsert into src at its
					// original position.
					dpos2 := indexOf(dst.customers, custID)
					dst.RemoveAt(dpos2)
					src.Insert(custID, pos)
					s.Recompute(opts)
				}
			}
		}
	}
	return false
}

// orderByWaitingContribution returns src's customer ids ordered by how much
// waiting time they individually incur, highest first.
func orderByWaitingContribution(src *Route) []int {
	type contrib struct {
		id   int
		wait float64
	}
	n := src.Len()
	contribs := make([]contrib, n)
	for i, id := range src.customers {
		contribs[i] = contrib{id, src.waitTimes[i]}
	}
	sort.SliceStable(contribs, func(i, j int) bool { return contribs[i].wait > contribs[j].wait })
	out := make([]int, n)
	for i, c := range contribs {
		out[i] = c.id
	}
	return out
}

// candidatePositions returns insertion positions in dst restricted to where
// the predecessor is one of cust's nearest neighbors, falling back to every
// position when cands is nil or the customer has no candidate list.
func candidatePositions(dst *Route, cust Customer, cands *CandidateLists) []int {
	n := dst.Len()
	if cands == nil {
		positions := make([]int, n+1)
		for i := range positions {
			positions[i] = i
		}
		return positions
	}
	neighborSet := make(map[int]bool, cands.K())
	for _, id := range cands.For(cust.ID) {
		neighborSet[id] = true
	}
	positions := make([]int, 0, n+1)
	positions = append(positions, 0)
	for i, id := range dst.customers {
		if neighborSet[id] {
			positions = append(positions, i+1)
		}
	}
	if len(positions) == 1 {
		for i := 0; i <= n; i++ {
			positions = append(positions, i)
		}
	}
	return positions
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
