package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateK_ClampRange(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 9, candidateK(opts, 10))   // floored at MinCandidates (20), then capped at n-1
	assert.Equal(t, 50, candidateK(opts, 900)) // capped at MaxCandidates
	assert.Equal(t, 30, candidateK(opts, 90))  // 90/3 = 30, within range
}

func TestBuildCandidateLists_NearestFirst(t *testing.T) {
	depot := newDepot()
	custs := lineOfCustomers(5) // ids 1..5 at x=10,20,30,40,50
	table := buildTable(depot, custs...)

	opts := DefaultOptions()
	opts.MinCandidates = 2
	cands := BuildCandidateLists(table, depot.ID, opts)

	// Customer 3 (x=30)'s nearest neighbors should be 2 and 4 (x=20,40),
	// each at distance 10, before 1 and 5 at distance 20.
	near := cands.For(3)
	require.GreaterOrEqual(t, len(near), 2)
	assert.ElementsMatch(t, []int{2, 4}, near[:2])
}

func TestBuildCandidateLists_ExcludesDepot(t *testing.T) {
	depot := newDepot()
	custs := lineOfCustomers(3)
	table := buildTable(depot, custs...)

	opts := DefaultOptions()
	cands := BuildCandidateLists(table, depot.ID, opts)

	for _, id := range []int{1, 2, 3} {
		for _, n := range cands.For(id) {
			assert.NotEqual(t, depot.ID, n)
		}
	}
}

func TestBuildCandidateLists_NeverExceedsNMinus1(t *testing.T) {
	depot := newDepot()
	custs := lineOfCustomers(3)
	table := buildTable(depot, custs...)

	opts := DefaultOptions()
	cands := BuildCandidateLists(table, depot.ID, opts)
	assert.LessOrEqual(t, cands.K(), 2)
}
