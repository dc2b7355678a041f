package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolution_RecomputeAggregatesRouteCosts(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	c2 := newCustomer(2, 20, 0, 5, 0, 1000)
	table := buildTable(depot, c1, c2)

	sol := NewSolution(depot, table, 50)
	r1 := sol.NewEmptyRoute()
	require.True(t, r1.Insert(1, 0))
	r2 := sol.NewEmptyRoute()
	require.True(t, r2.Insert(2, 0))
	sol.Routes = []*Route{r1, r2}

	opts := DefaultOptions()
	opts.VehiclePenalty = 1000
	sol.Recompute(opts)

	assert.InDelta(t, r1.Cost()+r2.Cost(), sol.TotalBaseCost, 1e-9)
	assert.Equal(t, 2, sol.NumVehicles)
	assert.InDelta(t, sol.TotalBaseCost+2000, sol.TotalCost, 1e-9)
}

func TestSolution_LambdaClampsToFloorAndCeiling(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0))
	sol.Routes = []*Route{r}

	opts := DefaultOptions() // VehiclePenalty == 0: data-driven formula
	sol.Recompute(opts)

	assert.GreaterOrEqual(t, sol.Lambda, defaultLambdaFloor)
	assert.LessOrEqual(t, sol.Lambda, defaultLambdaCeil)
}

func TestSolution_SnapshotRestoreRoundTrip(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	c2 := newCustomer(2, 20, 0, 5, 0, 1000)
	table := buildTable(depot, c1, c2)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0))
	require.True(t, r.Insert(2, 1))
	sol.Routes = []*Route{r}
	opts := DefaultOptions()
	sol.Recompute(opts)

	snap := sol.Snapshot()
	r.RemoveAt(0)
	sol.Recompute(opts)
	assert.Equal(t, 1, sol.Routes[0].Len())

	sol.Restore(snap)
	assert.Equal(t, 2, sol.Routes[0].Len())
	assert.Equal(t, []int{1, 2}, sol.Routes[0].CustomerIDs())
}

func TestSolution_CloneIsIndependent(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0))
	sol.Routes = []*Route{r}
	opts := DefaultOptions()
	sol.Recompute(opts)

	clone := sol.Clone()
	clone.Routes[0].RemoveAt(0)
	clone.Recompute(opts)

	assert.Equal(t, 1, sol.Routes[0].Len())
	assert.Equal(t, 0, clone.Routes[0].Len())
}

func TestSolution_PruneEmptyRoutes(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 50)
	r1 := sol.NewEmptyRoute()
	require.True(t, r1.Insert(1, 0))
	r2 := sol.NewEmptyRoute() // left empty deliberately
	sol.Routes = []*Route{r1, r2}

	sol.PruneEmptyRoutes()
	assert.Len(t, sol.Routes, 1)
}
