package vrptw

import "sort"

// CandidateLists holds, for every customer id, the nearest-neighbor ids
// used to prune insertion positions in inter-route relocate (§4.3); the
// other operators do not consult them. It is a lean in-package replacement for a
// general-purpose matrix type: VRPTW only ever needs "my k nearest
// customers", never the full distance matrix as a first-class object, so a
// flat per-customer ranked list is the right shape rather than a dense
// matrix plus a separate top-k extraction pass.
type CandidateLists struct {
	k    int
	ids  []int
	near map[int][]int
}

// K returns the candidate-list size in effect.
func (c *CandidateLists) K() int { return c.k }

// For returns the precomputed nearest-neighbor ids for custID, nearest
// first. The returned slice must not be mutated by the caller.
func (c *CandidateLists) For(custID int) []int { return c.near[custID] }

// candidateK implements k = min(MaxCandidates, max(MinCandidates, n/CandidateRatio)),
// then caps k at n-1 (a customer has at most n-1 other customers).
func candidateK(opts Options, n int) int {
	ratio := opts.CandidateRatio
	if ratio <= 0 {
		ratio = defaultCandidateRatio
	}
	minK := opts.MinCandidates
	if minK <= 0 {
		minK = defaultMinCandidates
	}
	maxK := opts.MaxCandidates
	if maxK <= 0 {
		maxK = defaultMaxCandidates
	}
	k := n / ratio
	if k < minK {
		k = minK
	}
	if k > maxK {
		k = maxK
	}
	if k > n-1 {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}
	return k
}

// BuildCandidateLists computes, for every non-depot customer in table, its k
// nearest other customers by Euclidean distance (§4.3). The depot never
// appears as a candidate: insertion next to the depot is always considered
// separately by the constructor and operators.
func BuildCandidateLists(table map[int]Customer, depotID int, opts Options) *CandidateLists {
	ids := make([]int, 0, len(table))
	for id := range table {
		if id == depotID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	k := candidateK(opts, len(ids))
	near := make(map[int][]int, len(ids))

	type ranked struct {
		id int
		d  float64
	}
	buf := make([]ranked, 0, len(ids))

	for _, id := range ids {
		cust := table[id]
		buf = buf[:0]
		for _, other := range ids {
			if other == id {
				continue
			}
			buf = append(buf, ranked{other, dist(cust, table[other])})
		}
		sort.Slice(buf, func(i, j int) bool { return buf[i].d < buf[j].d })
		limit := k
		if limit > len(buf) {
			limit = len(buf)
		}
		list := make([]int, limit)
		for i := 0; i < limit; i++ {
			list[i] = buf[i].id
		}
		near[id] = list
	}

	return &CandidateLists{k: k, ids: ids, near: near}
}
