package vrptw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntraTwoOpt_UncrossesRoute(t *testing.T) {
	depot := newDepot()
	// Crossed order depot->(0,10)->(10,0)->(10,10)->depot has a crossing;
	// visiting in the other order removes it.
	c1 := newCustomer(1, 0, 10, 1, 0, 10000)
	c2 := newCustomer(2, 10, 0, 1, 0, 10000)
	c3 := newCustomer(3, 10, 10, 1, 0, 10000)
	table := buildTable(depot, c1, c2, c3)

	r := NewRoute(depot, 10, table)
	require.True(t, r.Insert(1, 0))
	require.True(t, r.Insert(2, 1))
	require.True(t, r.Insert(3, 2))
	before := r.Cost()

	for IntraTwoOpt(r) {
	}
	assert.LessOrEqual(t, r.Cost(), before+1e-9)
	assert.True(t, r.IsFeasible())
}

func TestIntraTwoOpt_NoMoveOnTooShortRoute(t *testing.T) {
	depot := newDepot()
	c1 := newCustomer(1, 10, 0, 1, 0, 1000)
	table := buildTable(depot, c1)
	r := NewRoute(depot, 10, table)
	require.True(t, r.Insert(1, 0))

	assert.False(t, IntraTwoOpt(r))
}
