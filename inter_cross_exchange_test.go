package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterRouteCrossExchange_NeverWorsensOrViolatesCapacity(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 3, 0, 10000)
	c2 := newCustomer(2, 40, 0, 3, 0, 10000)
	c3 := newCustomer(3, 10, 1, 3, 0, 10000)
	c4 := newCustomer(4, 40, 1, 3, 0, 10000)
	table := buildTable(depot, c1, c2, c3, c4)

	sol := NewSolution(depot, table, 10)
	routeA := sol.NewEmptyRoute()
	require.True(t, routeA.Insert(1, 0))
	require.True(t, routeA.Insert(2, 1))
	routeB := sol.NewEmptyRoute()
	require.True(t, routeB.Insert(3, 0))
	require.True(t, routeB.Insert(4, 1))
	sol.Routes = []*Route{routeA, routeB}
	opts := DefaultOptions()
	sol.Recompute(opts)

	before := sol.TotalCost
	InterRouteCrossExchange(sol, opts)

	assert.LessOrEqual(t, sol.TotalCost, before+1e-6)
	for _, r := range sol.Routes {
		assert.LessOrEqual(t, r.Load(), 10)
	}
	assert.NoError(t, ValidateCoverage(sol))
}

func TestInterRouteCrossExchange_NoOpWithSingleRoute(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 1, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 10)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0))
	sol.Routes = []*Route{r}
	opts := DefaultOptions()

	assert.False(t, InterRouteCrossExchange(sol, opts))
}
