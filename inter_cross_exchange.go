package vrptw

// crossExchangeMaxSegment is the longest segment length CrossExchange will
// try to swap between two routes, per §4.5.
const crossExchangeMaxSegment = 3

// crossExchangeOverlapBuffer is the bounding-box buffer used to skip
// clearly unrelated route pairs before the segment scan.
const crossExchangeOverlapBuffer = 20.0

// InterRouteCrossExchange swaps equal-length segments (lengths 1-3) between
// two routes: a capacity pre-filter on both swapped segments, then a
// commit-with-rollback on the route pair (§4.5). Returns whether a move was
// committed.
func InterRouteCrossExchange(s *Solution, opts Options) bool {
	routes := s.Routes
	if len(routes) < 2 {
		return false
	}

	for i := 0; i < len(routes); i++ {
		a := routes[i]
		if a.Empty() {
			continue
		}
		for j := i + 1; j < len(routes); j++ {
			b := routes[j]
			if b.Empty() {
				continue
			}
			if !a.Overlaps(b, crossExchangeOverlapBuffer) {
				continue
			}
			if tryCrossExchange(s, a, b, opts) {
				return true
			}
		}
	}
	return false
}

// tryCrossExchange scans segment lengths 1..crossExchangeMaxSegment and all
// start positions in both routes, committing the first capacity-feasible,
// schedule-feasible, improving swap it finds.
func tryCrossExchange(s *Solution, a, b *Route, opts Options) bool {
	idsA := a.CustomerIDs()
	idsB := b.CustomerIDs()
	oldCost := a.Cost() + b.Cost()

	for segLen := 1; segLen <= crossExchangeMaxSegment; segLen++ {
		if segLen > len(idsA) || segLen > len(idsB) {
			continue
		}
		for startA := 0; startA+segLen <= len(idsA); startA++ {
			segA := idsA[startA : startA+segLen]
			for startB := 0; startB+segLen <= len(idsB); startB++ {
				segB := idsB[startB : startB+segLen]

				newA := spliceSegment(idsA, startA, segLen, segB)
				newB := spliceSegment(idsB, startB, segLen, segA)

				if a.demandOf(newA) > a.capacity || b.demandOf(newB) > b.capacity {
					continue
				}

				okA := a.ReplaceCustomers(newA)
				okB := b.ReplaceCustomers(newB)
				if okA && okB && oldCost-(a.Cost()+b.Cost()) > 1e-6 {
					s.Recompute(opts)
					return true
				}
				a.ReplaceCustomers(idsA)
				b.ReplaceCustomers(idsB)
			}
		}
	}
	return false
}

// spliceSegment returns a copy of ids with the segLen-long run starting at
// start replaced by replacement (which must also have length segLen).
func spliceSegment(ids []int, start, segLen int, replacement []int) []int {
	out := make([]int, 0, len(ids))
	out = append(out, ids[:start]...)
	out = append(out, replacement...)
	out = append(out, ids[start+segLen:]...)
	return out
}
