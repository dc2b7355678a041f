package vrptw

// Report is a read-only summary of a Solution, derived purely from
// already-computed route state (no re-solving). It supplements spec.md's
// core contract with the kind of per-route breakdown
// original_source/evaluation/performance_metrics.py and route_analyzer.py
// compute, exposed here as a zero-cost view rather than a new algorithm.
type Report struct {
	NumVehicles   int
	TotalBaseCost float64 // travel + 1.1*waiting, what every operator optimizes
	TotalCost     float64 // penalized objective: TotalBaseCost + lambda*NumVehicles
	TravelCost    float64 // travel only, for external comparison (§9)
	TotalWaiting  float64
	Routes        []RouteReport
}

// RouteReport summarizes a single route.
type RouteReport struct {
	Index       int
	CustomerIDs []int
	Load        int
	Capacity    int
	LoadFactor  float64 // Load / Capacity
	Cost        float64 // travel + 1.1*waiting
	TravelCost  float64
	Waiting     float64
	AvgSlack    float64
}

// Report builds a Report from the Solution's current state. Call
// Solution.Recompute first if routes were mutated outside the engine's own
// operator calls (every operator in this package already keeps Solution
// aggregates current).
func (s *Solution) Report() Report {
	routes := make([]RouteReport, 0, len(s.Routes))
	totalTravel := 0.0
	totalWaiting := 0.0

	idx := 0
	for _, r := range s.Routes {
		if r.Empty() {
			continue
		}
		travel := r.TravelCost()
		totalTravel += travel
		totalWaiting += r.TotalWaiting()
		routes = append(routes, RouteReport{
			Index:       idx,
			CustomerIDs: r.CustomerIDs(),
			Load:        r.Load(),
			Capacity:    r.capacity,
			LoadFactor:  float64(r.Load()) / float64(r.capacity),
			Cost:        r.Cost(),
			TravelCost:  travel,
			Waiting:     r.TotalWaiting(),
			AvgSlack:    r.AvgSlack(),
		})
		idx++
	}

	return Report{
		NumVehicles:   s.NumVehicles,
		TotalBaseCost: s.TotalBaseCost,
		TotalCost:     s.TotalCost,
		TravelCost:    totalTravel,
		TotalWaiting:  totalWaiting,
		Routes:        routes,
	}
}
