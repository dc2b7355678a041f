package vrptw

// InterRouteMerge looks for an underfilled source route (load/capacity <=
// threshold) whose customers can all be appended, in order, onto some other
// destination route. The whole attempt is atomic: every insertion into the
// destination must succeed, and the destination must remain feasible,
// before the merge commits; any partial failure rolls the destination back
// to its pre-attempt state and leaves the source untouched (§4.5). A
// feasible merge always commits: emptying the source shrinks the fleet by
// one, and fleet reduction dominates base cost in the lexicographic
// objective. Returns whether a merge was committed.
func InterRouteMerge(s *Solution, threshold float64, opts Options) bool {
	if len(s.Routes) < 2 {
		return false
	}

	for _, src := range s.Routes {
		if src.Empty() {
			continue
		}
		if float64(src.Load())/float64(src.capacity) > threshold {
			continue
		}
		srcIDs := src.CustomerIDs()

		for _, dst := range s.Routes {
			if dst == src || dst.Empty() {
				continue
			}
			if dst.Load()+src.demandOf(srcIDs) > dst.capacity {
				continue
			}

			dstBackup := dst.CustomerIDs()
			committedAll := true
			for _, id := range srcIDs {
				if !dst.Insert(id, dst.Len()) {
					committedAll = false
					break
				}
			}
			if !committedAll || !dst.Feasible() {
				dst.ReplaceCustomers(dstBackup)
				continue
			}

			src.ReplaceCustomers(nil)
			s.PruneEmptyRoutes()
			s.Recompute(opts)
			return true
		}
	}
	return false
}
