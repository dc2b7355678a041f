package vrptw

// Solution owns an ordered collection of Routes plus the aggregate
// objective. Solution uniquely owns its Routes; Routes hold only a
// borrowed reference to the shared Customer table.
type Solution struct {
	Routes []*Route

	depot    Customer
	table    map[int]Customer
	capacity int

	TotalBaseCost float64 // sum of route costs
	TotalCost     float64 // penalized objective: base + lambda*num_vehicles
	NumVehicles   int
	Lambda        float64 // resolved lambda actually used
}

// NewSolution returns an empty Solution over the given depot/customer
// table/capacity.
func NewSolution(depot Customer, table map[int]Customer, capacity int) *Solution {
	return &Solution{depot: depot, table: table, capacity: capacity}
}

// NewEmptyRoute returns a fresh Route wired to this Solution's depot, table,
// and capacity, but does not attach it — callers append to s.Routes
// themselves once the route has customers, keeping route lifetime explicit.
func (s *Solution) NewEmptyRoute() *Route {
	return NewRoute(s.depot, s.capacity, s.table)
}

// PruneEmptyRoutes discards every route with no customers.
func (s *Solution) PruneEmptyRoutes() {
	out := s.Routes[:0]
	for _, r := range s.Routes {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	s.Routes = out
}

// resolveLambda implements §4.2's penalty-weight formula: an explicit
// opts.VehiclePenalty overrides it; otherwise
// lambda = clamp(1.5*avg_route_cost + 0.5*avg_waiting + 3000, 3000, 5000).
// The high floor is load-bearing: it forces fleet size to dominate cost in
// the SA acceptance test.
func (s *Solution) resolveLambda(opts Options) float64 {
	if opts.VehiclePenalty > 0 {
		return opts.VehiclePenalty
	}
	n := 0
	totalCost := 0.0
	totalWaiting := 0.0
	for _, r := range s.Routes {
		if r.Empty() {
			continue
		}
		n++
		totalCost += r.Cost()
		totalWaiting += r.TotalWaiting()
	}
	if n == 0 {
		return defaultLambdaFloor
	}
	avgRouteCost := totalCost / float64(n)
	avgWaiting := totalWaiting / float64(n)
	lambda := 1.5*avgRouteCost + 0.5*avgWaiting + defaultLambdaFloor
	if lambda < defaultLambdaFloor {
		lambda = defaultLambdaFloor
	}
	if lambda > defaultLambdaCeil {
		lambda = defaultLambdaCeil
	}
	return lambda
}

// Recompute refreshes TotalBaseCost, NumVehicles, Lambda, and TotalCost from
// the current routes. Call after any batch of route mutations.
func (s *Solution) Recompute(opts Options) {
	base := 0.0
	vehicles := 0
	for _, r := range s.Routes {
		if r.Empty() {
			continue
		}
		vehicles++
		base += r.Cost()
	}
	s.TotalBaseCost = base
	s.NumVehicles = vehicles
	s.Lambda = s.resolveLambda(opts)
	s.TotalCost = base + s.Lambda*float64(vehicles)
}

// CoveredCustomers returns the multiset of customer ids currently assigned
// to some route, for the coverage-invariant check (validate.go).
func (s *Solution) CoveredCustomers() []int {
	out := make([]int, 0)
	for _, r := range s.Routes {
		out = append(out, r.CustomerIDs()...)
	}
	return out
}

// --- snapshot/restore (§3 lifecycle, §9 Design Notes) ---
//
// snapshot/restore replaces the source's whole-object deep clone around
// every SA step: it captures only what's needed to reconstruct routes
// (customer ids, departure times), not the distance cache, which is a
// per-route optimization rebuilt lazily on demand rather than state.

type routeSnapshot struct {
	customers     []int
	departureTime float64
}

// solutionSnapshot is an opaque, restorable capture of a Solution's route
// membership and schedule.
type solutionSnapshot struct {
	routes        []routeSnapshot
	totalBaseCost float64
	lambda        float64
}

// Snapshot captures the current route memberships and departure times.
func (s *Solution) Snapshot() solutionSnapshot {
	snap := solutionSnapshot{
		routes:        make([]routeSnapshot, len(s.Routes)),
		totalBaseCost: s.TotalBaseCost,
		lambda:        s.Lambda,
	}
	for i, r := range s.Routes {
		snap.routes[i] = routeSnapshot{
			customers:     r.CustomerIDs(),
			departureTime: r.DepartureTime(),
		}
	}
	return snap
}

// Restore rebuilds s.Routes from a prior Snapshot, recomputing each route's
// schedule, load, and cost from scratch.
func (s *Solution) Restore(snap solutionSnapshot) {
	routes := make([]*Route, 0, len(snap.routes))
	for _, rs := range snap.routes {
		r := s.NewEmptyRoute()
		r.departureTime = rs.departureTime
		for _, id := range rs.customers {
			cust := s.table[id]
			r.customers = append(r.customers, id)
			r.currentLoad += cust.Demand
		}
		r.recalculateFrom(0)
		r.updateBoundingBox()
		routes = append(routes, r)
	}
	s.Routes = routes
	s.TotalBaseCost = snap.totalBaseCost
	s.Lambda = snap.lambda
}

// Clone returns a deep, independent copy of the Solution (routes rebuilt
// from a snapshot). Used where the caller needs two solutions alive at
// once rather than a restore point (e.g. keeping the best-known solution
// while continuing to mutate the working one).
func (s *Solution) Clone() *Solution {
	clone := NewSolution(s.depot, s.table, s.capacity)
	clone.Restore(s.Snapshot())
	clone.TotalCost = s.TotalCost
	clone.NumVehicles = s.NumVehicles
	return clone
}
