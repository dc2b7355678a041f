package vrptw

// IntraTemporalShift tries shifting the route's departure time to one of a
// small set of candidate values — current, the earliest feasible departure
// (ready_time(first) - dist(depot,first)), their midpoint, and
// earliest+1/earliest+2 — keeping whichever feasible candidate yields the
// lowest cost (§4.4). Returns whether the departure time changed.
func IntraTemporalShift(r *Route) bool {
	if r.Empty() {
		return false
	}
	first := r.table[r.customers[0]]
	earliest := first.ReadyTime - r.distanceBetween(r.depot, first)

	current := r.departureTime
	candidates := []float64{
		current,
		earliest,
		(current + earliest) / 2,
		earliest + 1,
		earliest + 2,
	}

	bestCost := r.Cost()
	bestT := current
	found := false

	for _, t := range candidates {
		if t == current {
			continue
		}
		if !r.AdjustDeparture(t) {
			continue
		}
		if r.Cost() < bestCost-1e-6 {
			bestCost = r.Cost()
			bestT = t
			found = true
		}
		r.AdjustDeparture(current)
	}

	if !found {
		return false
	}
	return r.AdjustDeparture(bestT)
}
