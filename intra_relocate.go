package vrptw

// IntraRelocate moves a single customer to a better position within the
// same route: for each customer, tries every other position, keeping the
// best-improving move found across the whole scan (§4.4). Returns whether
// a move was committed.
func IntraRelocate(r *Route) bool {
	n := r.Len()
	if n < 2 {
		return false
	}
	baseCost := r.Cost()

	bestDelta := -1e-6
	bestFrom, bestTo := -1, -1
	found := false

	for from := 0; from < n; from++ {
		for to := 0; to <= n; to++ {
			if to == from || to == from+1 {
				continue
			}
			if !r.Relocate(from, to) {
				continue
			}
			delta := r.Cost() - baseCost
			r.undoRelocate(from, to)
			if delta < bestDelta {
				bestDelta = delta
				bestFrom, bestTo = from, to
				found = true
			}
		}
	}
	if !found {
		return false
	}
	return r.Relocate(bestFrom, bestTo)
}

// undoRelocate reverses the effect of Relocate(from, to): the moved
// customer now sits at insertPos (to, shifted left by one if to>from), so
// relocating insertPos back to index from restores the original order. When
// the customer moved left, Relocate's target is from+1, since removing it
// first shifts the following customers left by one.
func (r *Route) undoRelocate(from, to int) {
	insertPos := to
	back := from
	if to > from {
		insertPos = to - 1
	} else {
		back = from + 1
	}
	r.Relocate(insertPos, back)
}
