package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructInitialSolution_SingleCustomer(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 100)
	opts := DefaultOptions()

	sol := ConstructInitialSolution(depot, []Customer{c1}, 50, opts)

	require.Len(t, sol.Routes, 1)
	assert.Equal(t, []int{1}, sol.Routes[0].CustomerIDs())
	assert.InDelta(t, 20.0, sol.Routes[0].Cost(), 1e-9)
}

func TestConstructInitialSolution_CapacitySplit(t *testing.T) {
	depot := newDepot()
	custs := make([]Customer, 4)
	for i := 0; i < 4; i++ {
		custs[i] = newCustomer(i+1, float64(10*(i+1)), 0, 30, 0, 1000)
	}
	opts := DefaultOptions()

	sol := ConstructInitialSolution(depot, custs, 50, opts)

	assert.GreaterOrEqual(t, len(sol.Routes), 2)
	for _, r := range sol.Routes {
		assert.LessOrEqual(t, r.Load(), 50)
	}
	assert.NoError(t, ValidateCoverage(sol))
}

func TestConstructInitialSolution_CoversEveryCustomerExactlyOnce(t *testing.T) {
	depot := newDepot()
	custs := lineOfCustomers(12)
	opts := DefaultOptions()

	sol := ConstructInitialSolution(depot, custs, 5, opts)
	assert.NoError(t, ValidateCoverage(sol))
}

func TestConstructInitialSolution_AllRoutesFeasible(t *testing.T) {
	depot := newDepot()
	custs := lineOfCustomers(10)
	opts := DefaultOptions()

	sol := ConstructInitialSolution(depot, custs, 3, opts)
	for _, r := range sol.Routes {
		assert.True(t, r.IsFeasible())
	}
}
