package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntraRelocate_ImprovesOrStaysSame(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 1, 0, 10000)
	c2 := newCustomer(2, 30, 0, 1, 0, 10000)
	c3 := newCustomer(3, 20, 0, 1, 0, 10000) // misplaced between 1 and 2
	table := buildTable(depot, c1, c2, c3)

	r := NewRoute(depot, 10, table)
	require.True(t, r.Insert(2, 0))
	require.True(t, r.Insert(1, 1))
	require.True(t, r.Insert(3, 2))

	before := r.Cost()
	IntraRelocate(r)
	assert.LessOrEqual(t, r.Cost(), before+1e-9)
	assert.True(t, r.IsFeasible())
	assert.ElementsMatch(t, []int{1, 2, 3}, r.CustomerIDs())
}

func TestIntraRelocate_NoMoveOnSingleCustomer(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 1, 0, 1000)
	table := buildTable(depot, c1)
	r := NewRoute(depot, 10, table)
	require.True(t, r.Insert(1, 0))

	assert.False(t, IntraRelocate(r))
}
