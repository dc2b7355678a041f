package vrptw

import "sort"

// tightnessThreshold is the slack threshold (in time units) below which a
// stop counts as "tight" for TightCount (§4.7).
const tightnessThreshold = 10.0

// criticalityScore implements §4.7's route-criticality formula:
//
//	0.4*norm(total_waiting/100) + 0.4*norm(tight_count/10) + 0.2*(1 - avg_slack/50)
//
// where norm(x) = min(1, x). Higher is more critical. Empty routes score 0
// since they have nothing left to refine.
func criticalityScore(r *Route) float64 {
	if r.Empty() {
		return 0
	}
	waitTerm := norm(r.TotalWaiting() / 100)
	tightTerm := norm(float64(r.TightCount(tightnessThreshold)) / 10)
	slackTerm := 1 - r.AvgSlack()/50
	return 0.4*waitTerm + 0.4*tightTerm + 0.2*slackTerm
}

func norm(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < 0 {
		return 0
	}
	return x
}

// rankedRoute pairs a route index with its criticality score for sorting
// without losing the route's position in Solution.Routes.
type rankedRoute struct {
	index int
	route *Route
	score float64
}

// TopCriticalRoutes returns up to topN routes from s.Routes ranked by
// descending criticality score, for Phase 2's targeted refinement (§4.9).
func TopCriticalRoutes(s *Solution, topN int) []*Route {
	ranked := make([]rankedRoute, 0, len(s.Routes))
	for i, r := range s.Routes {
		if r.Empty() {
			continue
		}
		ranked = append(ranked, rankedRoute{index: i, route: r, score: criticalityScore(r)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]*Route, topN)
	for i := 0; i < topN; i++ {
		out[i] = ranked[i].route
	}
	return out
}
