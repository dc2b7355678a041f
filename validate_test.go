package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoverage_PassesWhenComplete(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	c2 := newCustomer(2, 20, 0, 5, 0, 1000)
	table := buildTable(depot, c1, c2)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0))
	require.True(t, r.Insert(2, 1))
	sol.Routes = []*Route{r}

	assert.NoError(t, ValidateCoverage(sol))
}

func TestValidateCoverage_DetectsMissing(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	c2 := newCustomer(2, 20, 0, 5, 0, 1000)
	table := buildTable(depot, c1, c2)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0)) // c2 never routed
	sol.Routes = []*Route{r}

	err := ValidateCoverage(sol)
	assert.ErrorIs(t, err, ErrCoverageViolation)
}

func TestValidateCoverage_DetectsDuplicate(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 50)
	r1 := sol.NewEmptyRoute()
	require.True(t, r1.Insert(1, 0))
	r2 := sol.NewEmptyRoute()
	r2.customers = append(r2.customers, 1) // force a duplicate without recompute
	sol.Routes = []*Route{r1, r2}

	err := ValidateCoverage(sol)
	assert.ErrorIs(t, err, ErrCoverageViolation)
}

func TestRepairCoverage_RestoresMissingCustomer(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	c2 := newCustomer(2, 20, 0, 5, 0, 1000)
	table := buildTable(depot, c1, c2)

	sol := NewSolution(depot, table, 50)
	r := sol.NewEmptyRoute()
	require.True(t, r.Insert(1, 0)) // c2 missing entirely
	sol.Routes = []*Route{r}

	opts := DefaultOptions()
	stillMissing := RepairCoverage(sol, opts)
	assert.Empty(t, stillMissing)
	assert.NoError(t, ValidateCoverage(sol))
}

func TestRepairCoverage_DropsDuplicates(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 5, 0, 1000)
	table := buildTable(depot, c1)

	sol := NewSolution(depot, table, 50)
	r1 := sol.NewEmptyRoute()
	require.True(t, r1.Insert(1, 0))
	r2 := sol.NewEmptyRoute()
	r2.customers = append(r2.customers, 1)
	r2.arrivalTimes = append(r2.arrivalTimes, 0)
	r2.segmentCost = append(r2.segmentCost, 0)
	r2.waitTimes = append(r2.waitTimes, 0)
	sol.Routes = []*Route{r1, r2}

	opts := DefaultOptions()
	RepairCoverage(sol, opts)
	assert.NoError(t, ValidateCoverage(sol))
}
