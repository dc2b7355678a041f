package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalityScore_EmptyRouteScoresZero(t *testing.T) {
	depot := newDepot()
	table := buildTable(depot)
	r := NewRoute(depot, 50, table)
	assert.Equal(t, 0.0, criticalityScore(r))
}

func TestCriticalityScore_HigherWaitingIsMoreCritical(t *testing.T) {
	depot := newDepot()
	cLow := newCustomer(1, 10, 0, 5, 0, 1000)    // no forced waiting
	cHigh := newCustomer(2, 10, 0, 5, 200, 1000) // forces ~190 waiting
	table := buildTable(depot, cLow, cHigh)

	rLow := NewRoute(depot, 50, table)
	require.True(t, rLow.Insert(1, 0))
	rHigh := NewRoute(depot, 50, table)
	require.True(t, rHigh.Insert(2, 0))

	assert.Greater(t, criticalityScore(rHigh), criticalityScore(rLow))
}

func TestTopCriticalRoutes_RanksDescending(t *testing.T) {
	depot := newDepot()
	cLow := newCustomer(1, 10, 0, 5, 0, 1000)
	cHigh := newCustomer(2, 10, 0, 5, 200, 1000)
	table := buildTable(depot, cLow, cHigh)

	sol := NewSolution(depot, table, 50)
	rLow := sol.NewEmptyRoute()
	require.True(t, rLow.Insert(1, 0))
	rHigh := sol.NewEmptyRoute()
	require.True(t, rHigh.Insert(2, 0))
	sol.Routes = []*Route{rLow, rHigh}

	top := TopCriticalRoutes(sol, 2)
	require.Len(t, top, 2)
	assert.Same(t, rHigh, top[0])
}

func TestTopCriticalRoutes_CapsAtTopN(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0))
	sol.Routes = []*Route{r}

	top := TopCriticalRoutes(sol, 5)
	assert.Len(t, top, 1)
}
