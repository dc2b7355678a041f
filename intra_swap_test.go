package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntraSwap_ImprovesOrStaysSame(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 30, 0, 1, 0, 10000)
	c2 := newCustomer(2, 10, 0, 1, 0, 10000)
	table := buildTable(depot, c1, c2)

	r := NewRoute(depot, 10, table)
	require.True(t, r.Insert(1, 0)) // visits far customer first: suboptimal
	require.True(t, r.Insert(2, 1))

	before := r.Cost()
	IntraSwap(r)
	assert.LessOrEqual(t, r.Cost(), before+1e-9)
}

func TestIntraSwap_NoMoveOnSingleCustomer(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 1, 0, 1000)
	table := buildTable(depot, c1)
	r := NewRoute(depot, 10, table)
	require.True(t, r.Insert(1, 0))

	assert.False(t, IntraSwap(r))
}
